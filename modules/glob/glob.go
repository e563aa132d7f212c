// Package glob implements the from-pattern matching engine: a glob dialect
// compiled to an anchored regular expression, with a pruning directory
// walker layered on top.
package glob

import (
	"fmt"
	"regexp"
	"strings"
)

// Glob is a parsed, validated, and compiled glob pattern.
type Glob struct {
	tokens []Token
	regex  *regexp.Regexp
}

// New parses, optimizes, validates, and compiles text into a Glob.
func New(text string) (*Glob, error) {
	tokens, err := Parse(text)
	if err != nil {
		return nil, err
	}
	tokens = Optimize(tokens)
	if err := Check(tokens); err != nil {
		return nil, err
	}
	regex, err := Compile(tokens)
	if err != nil {
		return nil, err
	}
	return &Glob{tokens: tokens, regex: regex}, nil
}

// Partitioned parses text and splits off its invariant literal directory
// prefix, returning the prefix separately from the residual Glob that
// matches everything after it. The residual's compiled pattern is relative
// to paths below the prefix, not the original text.
func Partitioned(text string) (string, *Glob, error) {
	tokens, err := Parse(text)
	if err != nil {
		return "", nil, err
	}
	tokens = Optimize(tokens)
	if err := Check(tokens); err != nil {
		return "", nil, err
	}
	prefix, _ := literalPathPrefix(tokens)
	tokens = tokens[literalPrefixUpperBound(tokens):]
	regex, err := Compile(tokens)
	if err != nil {
		return "", nil, err
	}
	return prefix, &Glob{tokens: tokens, regex: regex}, nil
}

// IsAbsolute reports whether the glob's literal prefix is an absolute path.
func (g *Glob) IsAbsolute() bool {
	prefix, ok := literalPathPrefix(g.tokens)
	return ok && strings.HasPrefix(prefix, "/")
}

// HasRoot reports whether the glob's literal prefix is rooted.
func (g *Glob) HasRoot() bool {
	return g.IsAbsolute()
}

// IsMatch reports whether path matches the pattern in full.
func (g *Glob) IsMatch(path string) bool {
	return g.regex.MatchString(path)
}

// Captures matches path against the pattern and returns the capture groups
// if it matches.
func (g *Glob) Captures(path string) (*Captures, bool) {
	indices := g.regex.FindStringSubmatchIndex(path)
	if indices == nil {
		return nil, false
	}
	return newCaptures(path, indices), true
}

// String renders the compiled regular expression, mostly useful for tests
// and debugging.
func (g *Glob) String() string {
	return fmt.Sprintf("glob(%s)", g.regex.String())
}
