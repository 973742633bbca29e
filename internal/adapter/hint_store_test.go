package adapter

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSHintStore_Lookup(t *testing.T) {
	store := NewFSHintStore(fstest.MapFS{
		"FixTypo.txt": {Data: []byte("Use git commit --amend.\n")},
	})

	t.Run("returns the exact stored text", func(t *testing.T) {
		text, found, err := store.Lookup("FixTypo")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "Use git commit --amend.\n", text)
	})

	t.Run("missing hint is not an error", func(t *testing.T) {
		text, found, err := store.Lookup("Master")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, text)
	})

	t.Run("names escaping the store are treated as missing", func(t *testing.T) {
		_, found, err := store.Lookup("../FixTypo")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestFSHintStore_NilFS(t *testing.T) {
	_, found, err := NewFSHintStore(nil).Lookup("Master")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFSHintStore_ReadError(t *testing.T) {
	store := NewFSHintStore(failingFS{})

	_, found, err := store.Lookup("Master")
	require.Error(t, err)
	assert.False(t, found)
	assert.Contains(t, err.Error(), "failed to read hints for Master")
}

func TestDirHintStore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Master.txt"), []byte("push it"), 0o600))

	text, found, err := NewDirHintStore(dir).Lookup("Master")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "push it", text)
}

type failingFS struct{}

func (failingFS) Open(_ string) (fs.File, error) {
	return nil, errors.New("disk on fire")
}
