package domain

import (
	"fmt"

	"github.com/mouse-blink/gitex/internal/adapter"
	m "github.com/mouse-blink/gitex/internal/model"
)

const (
	commitsCountTemplate = "Expected number of commits: %d. Received %d."
	filesCountTemplate   = "Commit %s should contain %d files. %d received."
)

// Toolkit binds the assertion primitives to one revision range. Rule-sets
// embed it and express their checks as a short sequence of Ensure calls;
// the first violated check is returned as a *model.Failure.
type Toolkit struct {
	exercise string
	rng      m.RevisionRange
	vcs      adapter.VCSAdapter
	hints    adapter.HintStore
}

// NewToolkit creates a Toolkit for the exercise registered as name.
func NewToolkit(name string, rng m.RevisionRange, vcs adapter.VCSAdapter, hints adapter.HintStore) *Toolkit {
	return &Toolkit{
		exercise: name,
		rng:      rng,
		vcs:      vcs,
		hints:    hints,
	}
}

// Exercise returns the registered exercise name.
func (t *Toolkit) Exercise() string {
	return t.exercise
}

// Range returns the revision range under test.
func (t *Toolkit) Range() m.RevisionRange {
	return t.rng
}

// Ensure returns a Failure built from template and args when condition is false.
func (t *Toolkit) Ensure(condition bool, template string, args ...any) error {
	if condition {
		return nil
	}

	return m.NewFailure(template, args...)
}

// EnsureCommitsCount checks the range holds exactly expected commits and
// returns them in listing order.
func (t *Toolkit) EnsureCommitsCount(expected int) ([]m.CommitID, error) {
	commits, err := t.Commits()
	if err != nil {
		return nil, err
	}

	if err := t.Ensure(len(commits) == expected, commitsCountTemplate, expected, len(commits)); err != nil {
		return nil, err
	}

	return commits, nil
}

// EnsureSingleCommit checks the range holds exactly one commit and returns it.
func (t *Toolkit) EnsureSingleCommit() (m.CommitID, error) {
	commits, err := t.EnsureCommitsCount(1)
	if err != nil {
		return "", err
	}

	return commits[0], nil
}

// EnsureFilesCount checks commit touches exactly expected files and returns them.
func (t *Toolkit) EnsureFilesCount(commit m.CommitID, expected int) ([]m.Path, error) {
	files, err := t.Filenames(commit)
	if err != nil {
		return nil, err
	}

	if err := t.Ensure(len(files) == expected, filesCountTemplate, commit.Short(), expected, len(files)); err != nil {
		return nil, err
	}

	return files, nil
}

// EnsureSingleFile checks commit touches exactly one file and returns its path.
func (t *Toolkit) EnsureSingleFile(commit m.CommitID) (m.Path, error) {
	files, err := t.EnsureFilesCount(commit, 1)
	if err != nil {
		return "", err
	}

	return files[0], nil
}

// Commits lists the commits of the range.
func (t *Toolkit) Commits() ([]m.CommitID, error) {
	commits, err := t.vcs.ListCommits(t.rng.Old, t.rng.New)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits: %w", err)
	}

	return commits, nil
}

// Filenames lists the files touched by commit.
func (t *Toolkit) Filenames(commit m.CommitID) ([]m.Path, error) {
	files, err := t.vcs.ListChangedFiles(commit)
	if err != nil {
		return nil, fmt.Errorf("failed to list files of %s: %w", commit.Short(), err)
	}

	return files, nil
}

// FileContent reads path as of commit.
func (t *Toolkit) FileContent(commit m.CommitID, path m.Path) (string, error) {
	content, err := t.vcs.ReadFileContent(commit, path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s at %s: %w", path, commit.Short(), err)
	}

	return string(content), nil
}

// CommitterName returns the author of commit, or of the newest revision of
// the range when commit is empty.
func (t *Toolkit) CommitterName(commit m.CommitID) (string, error) {
	if commit == "" {
		commit = m.CommitID(t.rng.New)
	}

	name, err := t.vcs.AuthorName(commit)
	if err != nil {
		return "", fmt.Errorf("failed to read author of %s: %w", commit.Short(), err)
	}

	return name, nil
}

// Hints returns the hint text stored for the exercise.
func (t *Toolkit) Hints() (string, bool, error) {
	if t.hints == nil {
		return "", false, nil
	}

	return t.hints.Lookup(t.exercise)
}
