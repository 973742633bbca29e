package exercises

import (
	"strings"

	"github.com/mouse-blink/gitex/internal/domain"
)

var squashedLines = []string{"This is the first line.", "This is the second line."}

type tooManyCommits struct {
	*domain.Toolkit
}

// NewTooManyCommits requires the last two commits squashed into one.
func NewTooManyCommits(t *domain.Toolkit) domain.Case {
	return &tooManyCommits{Toolkit: t}
}

func (e *tooManyCommits) ShortInfo() string {
	return "Squash the last two commits into one"
}

func (e *tooManyCommits) Verify() error {
	commit, err := e.EnsureSingleCommit()
	if err != nil {
		return err
	}

	content, err := e.FileContent(commit, "file.txt")
	if err != nil {
		return err
	}

	for _, line := range squashedLines {
		if err := e.Ensure(strings.Contains(content, line), "The squashed commit should contain the line %q in %s.", line, "file.txt"); err != nil {
			return err
		}
	}

	return nil
}
