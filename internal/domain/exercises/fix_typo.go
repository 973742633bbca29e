package exercises

import (
	"strings"

	"github.com/mouse-blink/gitex/internal/domain"
)

type fixTypo struct {
	*domain.Toolkit
}

// NewFixTypo requires the typo in file.txt to be fixed in a single commit.
func NewFixTypo(t *domain.Toolkit) domain.Case {
	return &fixTypo{Toolkit: t}
}

func (e *fixTypo) ShortInfo() string {
	return "Fix typographic mistake in the last commit"
}

func (e *fixTypo) Verify() error {
	commit, err := e.EnsureSingleCommit()
	if err != nil {
		return err
	}

	file, err := e.EnsureSingleFile(commit)
	if err != nil {
		return err
	}

	if err := e.Ensure(file == "file.txt", "The commit should change only file.txt. Received %s.", file); err != nil {
		return err
	}

	content, err := e.FileContent(commit, file)
	if err != nil {
		return err
	}

	if err := e.Ensure(!strings.Contains(content, "wordl"), "The file %s still contains the typo %q.", file, "wordl"); err != nil {
		return err
	}

	return e.Ensure(strings.Contains(content, "world"), "The file %s should contain %q.", file, "world")
}
