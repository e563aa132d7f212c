package glob

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

func TestReadPrunesNonMatchingDirectories(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"photos/2024/a.jpg",
		"photos/2024/b.txt",
		"videos/2024/c.jpg",
		"photos/notes/d.jpg",
	)

	g, err := New("photos/*/*.jpg")
	require.NoError(t, err)

	entries, err := g.Read(root, 0)
	require.NoError(t, err)

	var got []string
	for _, e := range entries {
		got = append(got, e.Path)
	}
	sort.Strings(got)
	assert.Equal(t, []string{"photos/2024/a.jpg", "photos/notes/d.jpg"}, got)
}

func TestReadWithPartitionedPrefixWalksOnlyBelowIt(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"archive/2024/x.log",
		"archive/2025/y.log",
		"other/2024/z.log",
	)

	prefix, g, err := Partitioned("archive/*/*.log")
	require.NoError(t, err)
	require.Equal(t, "archive", prefix)

	entries, err := g.Read(filepath.Join(root, prefix), 0)
	require.NoError(t, err)

	var got []string
	for _, e := range entries {
		got = append(got, e.Path)
	}
	sort.Strings(got)
	assert.Equal(t, []string{"2024/x.log", "2025/y.log"}, got)
}
