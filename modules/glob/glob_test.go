package glob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGlob(t *testing.T, text string) *Glob {
	t.Helper()
	g, err := New(text)
	require.NoError(t, err, "pattern: %s", text)
	return g
}

func TestMatchWithTreeTokens(t *testing.T) {
	g := mustGlob(t, "a/**/b")

	assert.True(t, g.IsMatch("a/b"))
	assert.True(t, g.IsMatch("a/x/b"))
	assert.True(t, g.IsMatch("a/x/y/z/b"))

	assert.False(t, g.IsMatch("a"))
	assert.False(t, g.IsMatch("b/a"))

	captures, ok := g.Captures("a/x/y/z/b")
	require.True(t, ok)
	got, ok := captures.Get(1)
	require.True(t, ok)
	assert.Equal(t, "x/y/z/", got)
}

func TestMatchWithTreeAndZeroOrMoreTokens(t *testing.T) {
	g := mustGlob(t, "**/*.ext")

	assert.True(t, g.IsMatch("file.ext"))
	assert.True(t, g.IsMatch("a/file.ext"))
	assert.True(t, g.IsMatch("a/b/file.ext"))

	captures, ok := g.Captures("a/file.ext")
	require.True(t, ok)
	tree, _ := captures.Get(1)
	assert.Equal(t, "a/", tree)
	stem, _ := captures.Get(2)
	assert.Equal(t, "file", stem)
}

func TestMatchWithEagerAndLazyZeroOrMoreTokens(t *testing.T) {
	g := mustGlob(t, "$-*.*")

	assert.True(t, g.IsMatch("prefix-file.ext"))
	assert.True(t, g.IsMatch("a-b-c.ext"))

	captures, ok := g.Captures("a-b-c.ext")
	require.True(t, ok)
	first, _ := captures.Get(1)
	assert.Equal(t, "a", first)
	second, _ := captures.Get(2)
	assert.Equal(t, "b-c", second)
	third, _ := captures.Get(3)
	assert.Equal(t, "ext", third)
}

func TestMatchWithClassTokens(t *testing.T) {
	g := mustGlob(t, "a/[xyi-k]/**")

	assert.True(t, g.IsMatch("a/x/file.ext"))
	assert.True(t, g.IsMatch("a/y/file.ext"))
	assert.True(t, g.IsMatch("a/j/file.ext"))
	assert.False(t, g.IsMatch("a/b/file.ext"))

	captures, ok := g.Captures("a/i/file.ext")
	require.True(t, ok)
	got, _ := captures.Get(1)
	assert.Equal(t, "i", got)
}

func TestMatchWithLiteralEscapedClassTokens(t *testing.T) {
	g := mustGlob(t, "a/[\\[\\]\\-]/**")

	assert.True(t, g.IsMatch("a/[/file.ext"))
	assert.True(t, g.IsMatch("a/]/file.ext"))
	assert.True(t, g.IsMatch("a/-/file.ext"))
	assert.False(t, g.IsMatch("a/b/file.ext"))

	captures, ok := g.Captures("a/[/file.ext")
	require.True(t, ok)
	got, _ := captures.Get(1)
	assert.Equal(t, "[", got)
}

func TestMatchWithAlternativeTokens(t *testing.T) {
	g := mustGlob(t, "a/{x?z,y$}b/*")

	assert.True(t, g.IsMatch("a/xyzb/file.ext"))
	assert.True(t, g.IsMatch("a/yb/file.ext"))
	assert.False(t, g.IsMatch("a/xyz/file.ext"))
	assert.False(t, g.IsMatch("a/y/file.ext"))
	assert.False(t, g.IsMatch("a/xyzub/file.ext"))

	captures, ok := g.Captures("a/xyzb/file.ext")
	require.True(t, ok)
	got, _ := captures.Get(1)
	assert.Equal(t, "xyz", got)
}

func TestMatchWithNestedAlternativeTokens(t *testing.T) {
	g := mustGlob(t, "a/{y$,{x?z,?z}}b/*")

	captures, ok := g.Captures("a/xyzb/file.ext")
	require.True(t, ok)
	got, _ := captures.Get(1)
	assert.Equal(t, "xyz", got)
}

func TestMatchWithAlternativeTreeTokens(t *testing.T) {
	g := mustGlob(t, "a/{foo,bar,**/baz}/qux")

	assert.True(t, g.IsMatch("a/foo/qux"))
	assert.True(t, g.IsMatch("a/foo/baz/qux"))
	assert.True(t, g.IsMatch("a/foo/bar/baz/qux"))
	assert.False(t, g.IsMatch("a/foo/bar/qux"))
}

func TestPartitionWithLiteralAndNonLiteralParts(t *testing.T) {
	prefix, g, err := Partitioned("a/b/x?z/*.ext")
	require.NoError(t, err)

	assert.Equal(t, "a/b", prefix)
	assert.True(t, g.IsMatch("xyz/file.ext"))
}

func TestPartitionWithOnlyNonLiteralParts(t *testing.T) {
	prefix, g, err := Partitioned("x?z/*.ext")
	require.NoError(t, err)

	assert.Equal(t, "", prefix)
	assert.True(t, g.IsMatch("xyz/file.ext"))
}

func TestPartitionWithOnlyLiteralParts(t *testing.T) {
	prefix, g, err := Partitioned("a/b")
	require.NoError(t, err)

	assert.Equal(t, "a/b", prefix)
	assert.True(t, g.IsMatch(""))
}

func TestPartitionWithLiteralDotsAndTreeTokens(t *testing.T) {
	prefix, g, err := Partitioned("../**/*.ext")
	require.NoError(t, err)

	assert.Equal(t, "..", prefix)
	assert.True(t, g.IsMatch("xyz/file.ext"))
}
