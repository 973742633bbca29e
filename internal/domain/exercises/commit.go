package exercises

import (
	"github.com/mouse-blink/gitex/internal/domain"
	m "github.com/mouse-blink/gitex/internal/model"
)

type master struct {
	*domain.Toolkit
}

// NewMaster requires a single pushed commit.
func NewMaster(t *domain.Toolkit) domain.Case {
	return &master{Toolkit: t}
}

func (e *master) ShortInfo() string {
	return "Push a commit you have made"
}

func (e *master) Verify() error {
	_, err := e.EnsureSingleCommit()
	return err
}

// oneOfFiles requires a single commit touching exactly one of the allowed files.
type oneOfFiles struct {
	*domain.Toolkit

	info    string
	allowed []m.Path
}

// NewCommitOneFile requires one commit containing either A.txt or B.txt.
func NewCommitOneFile(t *domain.Toolkit) domain.Case {
	return &oneOfFiles{
		Toolkit: t,
		info:    "Commit one of two available files",
		allowed: []m.Path{"A.txt", "B.txt"},
	}
}

// NewCommitOneFileStaged requires one commit containing either A.txt or B.txt
// when both were staged.
func NewCommitOneFileStaged(t *domain.Toolkit) domain.Case {
	return &oneOfFiles{
		Toolkit: t,
		info:    "Commit one file of two currently staged",
		allowed: []m.Path{"A.txt", "B.txt"},
	}
}

func (e *oneOfFiles) ShortInfo() string {
	return e.info
}

func (e *oneOfFiles) Verify() error {
	commit, err := e.EnsureSingleCommit()
	if err != nil {
		return err
	}

	file, err := e.EnsureSingleFile(commit)
	if err != nil {
		return err
	}

	return e.Ensure(containsPath(e.allowed, file),
		"The commit should contain only one of the files %s or %s. Received %s.",
		e.allowed[0], e.allowed[1], file)
}

func containsPath(paths []m.Path, path m.Path) bool {
	for _, p := range paths {
		if p == path {
			return true
		}
	}

	return false
}
