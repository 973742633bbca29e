package model

import "fmt"

// Failure describes a violated check. Template and Args are kept apart so
// callers can inspect them; rendering happens in the presentation layer.
type Failure struct {
	Template string
	Args     []any
}

// NewFailure creates a Failure from a printf-style template and its arguments.
func NewFailure(template string, args ...any) *Failure {
	return &Failure{Template: template, Args: args}
}

// Render formats the template with its arguments.
func (f *Failure) Render() string {
	if len(f.Args) == 0 {
		return f.Template
	}

	return fmt.Sprintf(f.Template, f.Args...)
}

func (f *Failure) Error() string {
	return f.Render()
}
