package actuator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/antgroup/hugemv/modules/manifest"
	"github.com/antgroup/hugemv/modules/policy"
	"github.com/antgroup/hugemv/modules/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planWith(t *testing.T, kind manifest.Kind, createParents bool, source, destination string) *transform.Plan {
	t.Helper()
	m := manifest.New(kind)
	require.NoError(t, m.Insert(source, destination))
	return &transform.Plan{Policy: policy.Policy{CreateParents: createParents}, Manifest: m}
}

func planWithOverwrite(t *testing.T, kind manifest.Kind, source, destination string) *transform.Plan {
	t.Helper()
	m := manifest.New(kind)
	require.NoError(t, m.Insert(source, destination))
	return &transform.Plan{Policy: policy.Policy{Overwrite: true}, Manifest: m}
}

func TestWriteCopyDuplicatesContent(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(source, []byte("hello"), 0o644))
	destination := filepath.Join(dir, "b.txt")

	plan := planWith(t, manifest.CopyKind, false, source, destination)
	require.NoError(t, New().Write(plan))

	got, err := os.ReadFile(destination)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))

	_, err = os.Stat(source)
	assert.NoError(t, err, "copy leaves source in place")
}

func TestWriteMoveRelocatesFile(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(source, []byte("hello"), 0o644))
	destination := filepath.Join(dir, "b.txt")

	plan := planWith(t, manifest.MoveKind, false, source, destination)
	require.NoError(t, New().Write(plan))

	_, err := os.Stat(source)
	assert.True(t, os.IsNotExist(err), "move removes source")
	got, err := os.ReadFile(destination)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestWriteHardLinkSharesContent(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(source, []byte("hello"), 0o644))
	destination := filepath.Join(dir, "b.txt")

	plan := planWith(t, manifest.HardLinkKind, false, source, destination)
	require.NoError(t, New().Write(plan))

	got, err := os.ReadFile(destination)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestWriteHardLinkReplacesExistingDestinationWhenOverwriteAllowed(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(source, []byte("hello"), 0o644))
	destination := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(destination, []byte("stale"), 0o644))

	plan := planWithOverwrite(t, manifest.HardLinkKind, source, destination)
	require.NoError(t, New().Write(plan))

	got, err := os.ReadFile(destination)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestWriteHardLinkFailsWhenDestinationExistsAndOverwriteNotAllowed(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(source, []byte("hello"), 0o644))
	destination := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(destination, []byte("stale"), 0o644))

	plan := planWith(t, manifest.HardLinkKind, false, source, destination)
	assert.Error(t, New().Write(plan))
}

func TestWriteCreatesParentsWhenPolicyAllows(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(source, []byte("hello"), 0o644))
	destination := filepath.Join(dir, "nested", "deep", "b.txt")

	plan := planWith(t, manifest.CopyKind, true, source, destination)
	require.NoError(t, New().Write(plan))

	got, err := os.ReadFile(destination)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestWriteFailsWhenParentMissingAndNotAllowed(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(source, []byte("hello"), 0o644))
	destination := filepath.Join(dir, "nested", "b.txt")

	plan := planWith(t, manifest.CopyKind, false, source, destination)
	assert.Error(t, New().Write(plan))
}
