// Package from implements the from-pattern matching engine: the literal
// directory prefix a glob can be partitioned on, paired with a walk that
// visits only regular files below it.
package from

import (
	"path/filepath"

	"github.com/antgroup/hugemv/modules/glob"
)

// FromPattern matches source files by wrapping a glob.Glob partitioned off
// its invariant literal directory prefix.
type FromPattern struct {
	prefix string
	glob   *glob.Glob
}

// New parses text into a FromPattern.
func New(text string) (*FromPattern, error) {
	prefix, g, err := glob.Partitioned(text)
	if err != nil {
		return nil, err
	}
	return &FromPattern{prefix: prefix, glob: g}, nil
}

// Walk visits every regular file below directory whose path (relative to the
// pattern's literal prefix) matches the residual glob. depth limits how many
// path components below the prefix are descended into; zero means
// unlimited.
func (f *FromPattern) Walk(directory string, depth int) ([]glob.Entry, error) {
	root := directory
	if f.prefix != "" {
		if filepath.IsAbs(f.prefix) {
			root = filepath.FromSlash(f.prefix)
		} else {
			root = filepath.Join(directory, filepath.FromSlash(f.prefix))
		}
	}
	entries, err := f.glob.Read(root, depth)
	if err != nil {
		return nil, err
	}
	files := entries[:0]
	for _, entry := range entries {
		if entry.DirEntry.Type().IsRegular() {
			files = append(files, entry)
		}
	}
	return files, nil
}

// Prefix returns the pattern's invariant literal directory prefix.
func (f *FromPattern) Prefix() string { return f.prefix }
