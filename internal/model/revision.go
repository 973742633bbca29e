// Package model defines the data structures for commit range verification.
package model

import "strings"

// shortHashLength is the number of leading characters kept by CommitID.Short.
const shortHashLength = 7

// ZeroRevision is the all-zero object name git uses for a missing side of a ref update.
const ZeroRevision Revision = "0000000000000000000000000000000000000000"

// Revision names a revision as supplied by the caller (sha, ref name, HEAD~2, ...).
type Revision string

// IsZero reports whether the revision is the all-zero object name.
func (r Revision) IsZero() bool {
	return r != "" && strings.Trim(string(r), "0") == ""
}

// CommitID identifies a single commit.
type CommitID string

// Short returns the first seven characters of the commit id.
func (c CommitID) Short() string {
	if len(c) <= shortHashLength {
		return string(c)
	}

	return string(c[:shortHashLength])
}

// Path represents a file path inside the repository.
type Path string

// RevisionRange is the commit span under test.
type RevisionRange struct {
	Old Revision
	New Revision
}

// RefUpdate is one line of git's pre-receive input: "<old> <new> <ref>".
type RefUpdate struct {
	Old Revision
	New Revision
	Ref string
}

// Range returns the revision range covered by the update.
func (u RefUpdate) Range() RevisionRange {
	return RevisionRange{Old: u.Old, New: u.New}
}

// IsDeletion reports whether the update removes the ref.
func (u RefUpdate) IsDeletion() bool {
	return u.New.IsZero()
}
