// Package adapter contains infrastructure adapters for the gitex CLI.
package adapter

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	m "github.com/mouse-blink/gitex/internal/model"
)

const defaultGitBinary = "git"

// VCSAdapter abstracts the version-control queries the verification core
// relies on. Implementations are called synchronously and may block.
type VCSAdapter interface {
	// ListCommits returns the commits between oldRev (exclusive) and newRev
	// (inclusive), oldest first.
	ListCommits(oldRev, newRev m.Revision) ([]m.CommitID, error)

	// ListChangedFiles returns the paths touched by a single commit.
	ListChangedFiles(commit m.CommitID) ([]m.Path, error)

	// ReadFileContent returns the content of path as of commit.
	ReadFileContent(commit m.CommitID, path m.Path) ([]byte, error)

	// AuthorName returns the author name recorded on commit.
	AuthorName(commit m.CommitID) (string, error)
}

// LocalGitAdapter implements VCSAdapter by running the git binary.
type LocalGitAdapter struct {
	// Dir is the repository to query; empty means the current working directory.
	Dir string
	// Binary is the git executable; empty means "git" from PATH.
	Binary string
}

// NewLocalGitAdapter constructs a LocalGitAdapter for the repository at dir.
func NewLocalGitAdapter(dir, binary string) *LocalGitAdapter {
	return &LocalGitAdapter{Dir: dir, Binary: binary}
}

// ListCommits lists commits in topological order, oldest first. A zero or
// empty oldRev lists every commit reachable from newRev.
func (a *LocalGitAdapter) ListCommits(oldRev, newRev m.Revision) ([]m.CommitID, error) {
	if newRev == "" {
		return nil, fmt.Errorf("new revision is empty")
	}

	spec := string(newRev)
	if oldRev != "" && !oldRev.IsZero() {
		spec = string(oldRev) + ".." + string(newRev)
	}

	out, err := a.run("rev-list", "--reverse", "--topo-order", spec)
	if err != nil {
		return nil, err
	}

	lines := splitLines(out)
	commits := make([]m.CommitID, 0, len(lines))

	for _, line := range lines {
		commits = append(commits, m.CommitID(line))
	}

	return commits, nil
}

// ListChangedFiles lists the paths touched by commit. Root commits are
// compared against the empty tree.
func (a *LocalGitAdapter) ListChangedFiles(commit m.CommitID) ([]m.Path, error) {
	out, err := a.run("diff-tree", "--no-commit-id", "--name-only", "-r", "--root", string(commit))
	if err != nil {
		return nil, err
	}

	lines := splitLines(out)
	files := make([]m.Path, 0, len(lines))

	for _, line := range lines {
		files = append(files, m.Path(line))
	}

	return files, nil
}

// ReadFileContent reads path as it exists in commit.
func (a *LocalGitAdapter) ReadFileContent(commit m.CommitID, path m.Path) ([]byte, error) {
	out, err := a.run("show", string(commit)+":"+string(path))
	if err != nil {
		return nil, err
	}

	return []byte(out), nil
}

// AuthorName returns the author of commit.
func (a *LocalGitAdapter) AuthorName(commit m.CommitID) (string, error) {
	out, err := a.run("log", "-1", "--format=%an", string(commit))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(out), nil
}

func (a *LocalGitAdapter) run(args ...string) (string, error) {
	binary := a.Binary
	if binary == "" {
		binary = defaultGitBinary
	}

	cmd := exec.Command(binary, args...)
	if a.Dir != "" {
		cmd.Dir = a.Dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}

		return "", fmt.Errorf("git %s failed: %s", strings.Join(args, " "), msg)
	}

	return stdout.String(), nil
}

func splitLines(out string) []string {
	var lines []string

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}
