// Package exercises contains the rule-sets of the bundled git exercises.
// Each rule-set is built only on domain.Toolkit and registered by name.
package exercises

import (
	"embed"
	"io/fs"

	"github.com/mouse-blink/gitex/internal/domain"
)

//go:embed hints/*.txt
var hintFiles embed.FS

// Hints returns the bundled hint texts, one "<Exercise>.txt" per exercise.
func Hints() fs.FS {
	sub, err := fs.Sub(hintFiles, "hints")
	if err != nil {
		panic(err)
	}

	return sub
}

// Register adds every bundled exercise to reg.
func Register(reg *domain.Registry) {
	reg.MustRegister("Master", NewMaster)
	reg.MustRegister("CommitOneFile", NewCommitOneFile)
	reg.MustRegister("CommitOneFileStaged", NewCommitOneFileStaged)
	reg.MustRegister("IgnoreThem", NewIgnoreThem)
	reg.MustRegister("FixTypo", NewFixTypo)
	reg.MustRegister("SplitCommit", NewSplitCommit)
	reg.MustRegister("TooManyCommits", NewTooManyCommits)
	reg.MustRegister("CaseSensitiveFilename", NewCaseSensitiveFilename)
}
