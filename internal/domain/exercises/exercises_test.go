package exercises

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/mouse-blink/gitex/internal/adapter"
	adaptermocks "github.com/mouse-blink/gitex/internal/adapter/mocks"
	"github.com/mouse-blink/gitex/internal/domain"
	m "github.com/mouse-blink/gitex/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	c1 = m.CommitID("1111111aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	c2 = m.CommitID("2222222bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
)

var testRange = m.RevisionRange{Old: "old", New: "new"}

func newCase(t *testing.T, ctor domain.Constructor) (domain.Case, *adaptermocks.MockVCSAdapter) {
	t.Helper()

	vcs := adaptermocks.NewMockVCSAdapter(t)

	return ctor(domain.NewToolkit("Test", testRange, vcs, nil)), vcs
}

func expectCommits(vcs *adaptermocks.MockVCSAdapter, commits ...m.CommitID) {
	vcs.EXPECT().ListCommits(testRange.Old, testRange.New).Return(commits, nil)
}

func expectFiles(vcs *adaptermocks.MockVCSAdapter, commit m.CommitID, files ...m.Path) {
	vcs.EXPECT().ListChangedFiles(commit).Return(files, nil)
}

func expectContent(vcs *adaptermocks.MockVCSAdapter, commit m.CommitID, path m.Path, content string) {
	vcs.EXPECT().ReadFileContent(commit, path).Return([]byte(content), nil)
}

func requireFailure(t *testing.T, err error, template string, args ...any) {
	t.Helper()

	var failure *m.Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, template, failure.Template)
	assert.Equal(t, args, failure.Args)
}

func TestRegister(t *testing.T) {
	reg := domain.NewRegistry()
	Register(reg)

	assert.Equal(t, []string{
		"CaseSensitiveFilename",
		"CommitOneFile",
		"CommitOneFileStaged",
		"FixTypo",
		"IgnoreThem",
		"Master",
		"SplitCommit",
		"TooManyCommits",
	}, reg.Names())

	name, _, err := reg.Resolve("refs/heads/case-sensitive-filename")
	require.NoError(t, err)
	assert.Equal(t, "CaseSensitiveFilename", name)
}

func TestHints_EveryExerciseHasHints(t *testing.T) {
	reg := domain.NewRegistry()
	Register(reg)

	store := adapter.NewFSHintStore(Hints())

	for _, name := range reg.Names() {
		text, found, err := store.Lookup(name)
		require.NoError(t, err, name)
		assert.True(t, found, name)
		assert.NotEmpty(t, text, name)
	}

	entries, err := fs.ReadDir(Hints(), ".")
	require.NoError(t, err)
	assert.Len(t, entries, len(reg.Names()))
}

func TestMaster(t *testing.T) {
	t.Run("passes with one commit", func(t *testing.T) {
		rule, vcs := newCase(t, NewMaster)
		expectCommits(vcs, c1)

		require.NoError(t, rule.Verify())
		assert.Equal(t, "Push a commit you have made", rule.ShortInfo())
	})

	t.Run("fails with two commits", func(t *testing.T) {
		rule, vcs := newCase(t, NewMaster)
		expectCommits(vcs, c1, c2)

		requireFailure(t, rule.Verify(), "Expected number of commits: %d. Received %d.", 1, 2)
	})

	t.Run("reports git errors as is", func(t *testing.T) {
		rule, vcs := newCase(t, NewMaster)
		vcs.EXPECT().ListCommits(testRange.Old, testRange.New).Return(nil, errors.New("boom"))

		err := rule.Verify()
		require.ErrorContains(t, err, "boom")

		var failure *m.Failure
		assert.False(t, errors.As(err, &failure))
	})
}

func TestCommitOneFile(t *testing.T) {
	for _, ctor := range []domain.Constructor{NewCommitOneFile, NewCommitOneFileStaged} {
		t.Run("passes with B.txt", func(t *testing.T) {
			rule, vcs := newCase(t, ctor)
			expectCommits(vcs, c1)
			expectFiles(vcs, c1, "B.txt")

			require.NoError(t, rule.Verify())
		})

		t.Run("fails with both files", func(t *testing.T) {
			rule, vcs := newCase(t, ctor)
			expectCommits(vcs, c1)
			expectFiles(vcs, c1, "A.txt", "B.txt")

			requireFailure(t, rule.Verify(), "Commit %s should contain %d files. %d received.", "1111111", 1, 2)
		})

		t.Run("fails with another file", func(t *testing.T) {
			rule, vcs := newCase(t, ctor)
			expectCommits(vcs, c1)
			expectFiles(vcs, c1, "C.txt")

			requireFailure(t, rule.Verify(),
				"The commit should contain only one of the files %s or %s. Received %s.",
				m.Path("A.txt"), m.Path("B.txt"), m.Path("C.txt"))
		})
	}
}

func TestIgnoreThem(t *testing.T) {
	t.Run("passes with every pattern", func(t *testing.T) {
		rule, vcs := newCase(t, NewIgnoreThem)
		expectCommits(vcs, c1)
		expectFiles(vcs, c1, ".gitignore")
		expectContent(vcs, c1, ".gitignore", "# build\n*.exe\n*.o\n\n*.jar\r\nlibraries/\n")

		require.NoError(t, rule.Verify())
	})

	t.Run("fails on a missing pattern", func(t *testing.T) {
		rule, vcs := newCase(t, NewIgnoreThem)
		expectCommits(vcs, c1)
		expectFiles(vcs, c1, ".gitignore")
		expectContent(vcs, c1, ".gitignore", "*.exe\n*.o\n*.jar\n")

		requireFailure(t, rule.Verify(), "The %s file should ignore %s.", ".gitignore", "libraries/")
	})

	t.Run("fails when another file is committed", func(t *testing.T) {
		rule, vcs := newCase(t, NewIgnoreThem)
		expectCommits(vcs, c1)
		expectFiles(vcs, c1, "app.exe")

		requireFailure(t, rule.Verify(),
			"The commit should contain only the %s file. Received %s.", ".gitignore", m.Path("app.exe"))
	})
}

func TestFixTypo(t *testing.T) {
	t.Run("passes when fixed", func(t *testing.T) {
		rule, vcs := newCase(t, NewFixTypo)
		expectCommits(vcs, c1)
		expectFiles(vcs, c1, "file.txt")
		expectContent(vcs, c1, "file.txt", "Hello world\n")

		require.NoError(t, rule.Verify())
	})

	t.Run("fails while the typo is present", func(t *testing.T) {
		rule, vcs := newCase(t, NewFixTypo)
		expectCommits(vcs, c1)
		expectFiles(vcs, c1, "file.txt")
		expectContent(vcs, c1, "file.txt", "Hello wordl\n")

		requireFailure(t, rule.Verify(), "The file %s still contains the typo %q.", m.Path("file.txt"), "wordl")
	})

	t.Run("fails when the commit was not amended", func(t *testing.T) {
		rule, vcs := newCase(t, NewFixTypo)
		expectCommits(vcs, c1, c2)

		requireFailure(t, rule.Verify(), "Expected number of commits: %d. Received %d.", 1, 2)
	})
}

func TestSplitCommit(t *testing.T) {
	t.Run("passes with one file per commit", func(t *testing.T) {
		rule, vcs := newCase(t, NewSplitCommit)
		expectCommits(vcs, c1, c2)
		expectFiles(vcs, c1, "first.txt")
		expectFiles(vcs, c2, "second.txt")

		require.NoError(t, rule.Verify())
	})

	t.Run("fails on swapped order", func(t *testing.T) {
		rule, vcs := newCase(t, NewSplitCommit)
		expectCommits(vcs, c1, c2)
		expectFiles(vcs, c1, "second.txt")

		requireFailure(t, rule.Verify(),
			"Commit %s should contain %s. Received %s.", "1111111", m.Path("first.txt"), m.Path("second.txt"))
	})

	t.Run("fails when a commit holds both files", func(t *testing.T) {
		rule, vcs := newCase(t, NewSplitCommit)
		expectCommits(vcs, c1, c2)
		expectFiles(vcs, c1, "first.txt", "second.txt")

		requireFailure(t, rule.Verify(), "Commit %s should contain %d files. %d received.", "1111111", 1, 2)
	})
}

func TestTooManyCommits(t *testing.T) {
	t.Run("passes when squashed", func(t *testing.T) {
		rule, vcs := newCase(t, NewTooManyCommits)
		expectCommits(vcs, c1)
		expectContent(vcs, c1, "file.txt", "This is the first line.\nThis is the second line.\n")

		require.NoError(t, rule.Verify())
	})

	t.Run("fails when a line is lost", func(t *testing.T) {
		rule, vcs := newCase(t, NewTooManyCommits)
		expectCommits(vcs, c1)
		expectContent(vcs, c1, "file.txt", "This is the first line.\n")

		requireFailure(t, rule.Verify(),
			"The squashed commit should contain the line %q in %s.", "This is the second line.", "file.txt")
	})
}

func TestCaseSensitiveFilename(t *testing.T) {
	t.Run("passes on rename", func(t *testing.T) {
		rule, vcs := newCase(t, NewCaseSensitiveFilename)
		expectCommits(vcs, c1)
		expectFiles(vcs, c1, "File.txt", "file.txt")
		expectContent(vcs, c1, "file.txt", "content\n")

		require.NoError(t, rule.Verify())
	})

	t.Run("fails when only the new file is added", func(t *testing.T) {
		rule, vcs := newCase(t, NewCaseSensitiveFilename)
		expectCommits(vcs, c1)
		expectFiles(vcs, c1, "file.txt")

		requireFailure(t, rule.Verify(), "Commit %s should contain %d files. %d received.", "1111111", 2, 1)
	})

	t.Run("fails when another file is touched", func(t *testing.T) {
		rule, vcs := newCase(t, NewCaseSensitiveFilename)
		expectCommits(vcs, c1)
		expectFiles(vcs, c1, "file.txt", "other.txt")

		requireFailure(t, rule.Verify(),
			"Commit %s should rename %s to %s.", "1111111", oldFilename, newFilename)
	})
}
