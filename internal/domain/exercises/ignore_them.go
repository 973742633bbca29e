package exercises

import (
	"strings"

	"github.com/mouse-blink/gitex/internal/domain"
)

const gitignorePath = ".gitignore"

var requiredIgnores = []string{"*.exe", "*.o", "*.jar", "libraries/"}

type ignoreThem struct {
	*domain.Toolkit
}

// NewIgnoreThem requires a .gitignore covering build outputs and libraries.
func NewIgnoreThem(t *domain.Toolkit) domain.Case {
	return &ignoreThem{Toolkit: t}
}

func (e *ignoreThem) ShortInfo() string {
	return "Ignore unwanted files"
}

func (e *ignoreThem) Verify() error {
	commit, err := e.EnsureSingleCommit()
	if err != nil {
		return err
	}

	file, err := e.EnsureSingleFile(commit)
	if err != nil {
		return err
	}

	if err := e.Ensure(file == gitignorePath, "The commit should contain only the %s file. Received %s.", gitignorePath, file); err != nil {
		return err
	}

	content, err := e.FileContent(commit, file)
	if err != nil {
		return err
	}

	patterns := make(map[string]bool)

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			patterns[line] = true
		}
	}

	for _, want := range requiredIgnores {
		if err := e.Ensure(patterns[want], "The %s file should ignore %s.", gitignorePath, want); err != nil {
			return err
		}
	}

	return nil
}
