package glob

import (
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"
)

// Entry is one file-tree entry discovered by Read, along with the capture
// groups the whole pattern produced against it.
type Entry struct {
	Path     string
	DirEntry fs.DirEntry
	Captures *Captures
}

// componentRegexes compiles one anchored regular expression per leading
// path component of tokens, stopping at the first component that could
// itself span more than one directory level (a tree wildcard, or an
// alternative with a branch that could). Components past that boundary
// are only ever checked by matching the whole pattern.
func componentRegexes(tokens []Token) ([]*regexp.Regexp, error) {
	var regexes []*regexp.Regexp
	for _, component := range Components(tokens) {
		if componentHasBoundary(component) {
			break
		}
		re, err := Compile(component.Tokens)
		if err != nil {
			return nil, err
		}
		regexes = append(regexes, re)
	}
	return regexes, nil
}

func componentHasBoundary(c Component) bool {
	for _, token := range c.Tokens {
		if token.isComponentBoundary() {
			return true
		}
	}
	return false
}

// Read walks directory, pruned by the glob's literal prefix and
// per-component regular expressions, and returns every entry whose path
// relative to directory (absolute when the literal prefix is absolute)
// matches the full pattern. depth limits how many path components below the
// literal prefix are descended into; zero means unlimited.
func (g *Glob) Read(directory string, depth int) ([]Entry, error) {
	prefix, hasPrefix := literalPathPrefix(g.tokens)
	root := directory
	remainder := g.tokens
	if hasPrefix {
		remainder = g.tokens[literalPrefixUpperBound(g.tokens):]
		if strings.HasPrefix(prefix, "/") {
			// An absolute prefix replaces directory outright.
			root = filepath.FromSlash(prefix)
		} else {
			root = filepath.Join(directory, filepath.FromSlash(prefix))
		}
	}

	regexes, err := componentRegexes(remainder)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		components := strings.Split(rel, "/")

		if depth > 0 && len(components) > depth {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		// The full pattern still begins with the literal prefix, so it is
		// matched against the path with that prefix restored.
		full := rel
		if hasPrefix {
			full = strings.TrimSuffix(prefix, "/") + "/" + rel
		}
		matched, captures, skip := matchEntry(g, full, components, regexes)
		if skip {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if matched {
			entries = append(entries, Entry{Path: full, DirEntry: d, Captures: captures})
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return entries, nil
}

// matchEntry mirrors the reference walker's component/regex zip: a
// mismatched component prunes the subtree; a matched component tries the
// full pattern immediately, since a tree wildcard may match zero further
// components; once components run past the compiled regex list, only the
// full pattern decides.
func matchEntry(g *Glob, fullPath string, components []string, regexes []*regexp.Regexp) (matched bool, captures *Captures, skip bool) {
	n := len(components)
	if n > len(regexes) {
		n = len(regexes)
	}
	for i := 0; i < n; i++ {
		if !regexes[i].MatchString(components[i]) {
			return false, nil, true
		}
		if caps, ok := g.Captures(fullPath); ok {
			return true, caps, false
		}
	}
	if len(components) > len(regexes) {
		if caps, ok := g.Captures(fullPath); ok {
			return true, caps, false
		}
	}
	return false, nil, false
}
