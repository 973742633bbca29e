package exercises

import (
	"github.com/mouse-blink/gitex/internal/domain"
	m "github.com/mouse-blink/gitex/internal/model"
)

const (
	oldFilename m.Path = "File.txt"
	newFilename m.Path = "file.txt"
)

type caseSensitiveFilename struct {
	*domain.Toolkit
}

// NewCaseSensitiveFilename requires File.txt renamed to file.txt.
func NewCaseSensitiveFilename(t *domain.Toolkit) domain.Case {
	return &caseSensitiveFilename{Toolkit: t}
}

func (e *caseSensitiveFilename) ShortInfo() string {
	return "Change letter case of the filename in an already committed file"
}

func (e *caseSensitiveFilename) Verify() error {
	commit, err := e.EnsureSingleCommit()
	if err != nil {
		return err
	}

	files, err := e.EnsureFilesCount(commit, 2)
	if err != nil {
		return err
	}

	for _, want := range []m.Path{oldFilename, newFilename} {
		if err := e.Ensure(containsPath(files, want), "Commit %s should rename %s to %s.", commit.Short(), oldFilename, newFilename); err != nil {
			return err
		}
	}

	_, err = e.FileContent(commit, newFilename)

	return err
}
