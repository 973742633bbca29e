package domain

// Case is implemented by every exercise rule-set.
type Case interface {
	// ShortInfo is a one-line description of what the exercise checks.
	ShortInfo() string
	// Verify runs the checks. It returns nil on success and the first
	// violated check as a *model.Failure otherwise.
	Verify() error
}

// Constructor builds a rule-set bound to a Toolkit.
type Constructor func(t *Toolkit) Case

// Verification is a rule-set bound to one revision range. It is created by
// a Factory, verified once and discarded.
type Verification struct {
	*Toolkit

	rule Case
}

// Verify runs the exercise rule-set.
func (v *Verification) Verify() error {
	return v.rule.Verify()
}

// ShortInfo describes the exercise.
func (v *Verification) ShortInfo() string {
	return v.rule.ShortInfo()
}
