package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

const hintFileExt = ".txt"

// HintStore looks up the static hint text of an exercise.
type HintStore interface {
	// Lookup returns the hint for name. found is false when no hint exists.
	Lookup(name string) (text string, found bool, err error)
}

// FSHintStore reads "<name>.txt" files from a filesystem.
type FSHintStore struct {
	fsys fs.FS
}

// NewFSHintStore constructs a HintStore over fsys.
func NewFSHintStore(fsys fs.FS) *FSHintStore {
	return &FSHintStore{fsys: fsys}
}

// NewDirHintStore constructs a HintStore reading hints from dir on disk.
func NewDirHintStore(dir string) *FSHintStore {
	return NewFSHintStore(os.DirFS(dir))
}

// Lookup reads the hint file for name.
func (s *FSHintStore) Lookup(name string) (string, bool, error) {
	if s.fsys == nil || !fs.ValidPath(name) || name == "." {
		return "", false, nil
	}

	content, err := fs.ReadFile(s.fsys, name+hintFileExt)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}

		return "", false, fmt.Errorf("failed to read hints for %s: %w", name, err)
	}

	return string(content), true, nil
}
