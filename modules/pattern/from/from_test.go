package from

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
	}
}

func TestWalkMatchesUnderLiteralPrefix(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"archive/2024/a.log",
		"archive/2025/b.log",
		"other/2024/c.log",
	)

	pat, err := New("archive/*/*.log")
	require.NoError(t, err)
	assert.Equal(t, "archive", pat.Prefix())

	entries, err := pat.Walk(root, 0)
	require.NoError(t, err)

	var got []string
	for _, e := range entries {
		got = append(got, e.Path)
	}
	sort.Strings(got)
	assert.Equal(t, []string{"2024/a.log", "2025/b.log"}, got)
}

func TestWalkFiltersOutDirectories(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "data/one.txt")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "data", "subdir"), 0o755))

	pat, err := New("data/*")
	require.NoError(t, err)

	entries, err := pat.Walk(root, 0)
	require.NoError(t, err)

	var got []string
	for _, e := range entries {
		got = append(got, e.Path)
	}
	assert.Equal(t, []string{"one.txt"}, got)
}
