package exercises

import (
	"github.com/mouse-blink/gitex/internal/domain"
	m "github.com/mouse-blink/gitex/internal/model"
)

type splitCommit struct {
	*domain.Toolkit
}

// NewSplitCommit requires two commits, each adding one of the files.
func NewSplitCommit(t *domain.Toolkit) domain.Case {
	return &splitCommit{Toolkit: t}
}

func (e *splitCommit) ShortInfo() string {
	return "Split the last commit"
}

func (e *splitCommit) Verify() error {
	commits, err := e.EnsureCommitsCount(2)
	if err != nil {
		return err
	}

	expected := []m.Path{"first.txt", "second.txt"}

	for i, commit := range commits {
		file, err := e.EnsureSingleFile(commit)
		if err != nil {
			return err
		}

		if err := e.Ensure(file == expected[i], "Commit %s should contain %s. Received %s.", commit.Short(), expected[i], file); err != nil {
			return err
		}
	}

	return nil
}
