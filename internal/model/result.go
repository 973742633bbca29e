package model

// Status is the outcome of a single verification run.
type Status string

const (
	// StatusPassed means every check of the exercise held.
	StatusPassed Status = "passed"
	// StatusFailed means a check was violated; Result.Failure explains which.
	StatusFailed Status = "failed"
	// StatusError means the run could not complete (unknown exercise, git error).
	StatusError Status = "error"
)

// Result holds the outcome of verifying one revision range.
type Result struct {
	Exercise  string // registered exercise name, empty when it did not resolve
	Ref       string // exercise identifier or ref name as supplied
	Range     RevisionRange
	ShortInfo string
	Status    Status
	Failure   *Failure // set when Status is StatusFailed
	Err       error    // set when Status is StatusError
	Committer string
	Hints     string
}

// Passed reports whether the verification succeeded.
func (r Result) Passed() bool {
	return r.Status == StatusPassed
}

// Exercise describes a registered exercise for listings.
type Exercise struct {
	Name      string
	ShortInfo string
	HasHints  bool
}
