package manifest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertPreservesOrder(t *testing.T) {
	m := New(CopyKind)
	require.NoError(t, m.Insert("b.txt", "out/b.txt"))
	require.NoError(t, m.Insert("a.txt", "out/a.txt"))

	routes := m.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, Route{Source: "b.txt", Destination: "out/b.txt"}, routes[0])
	assert.Equal(t, Route{Source: "a.txt", Destination: "out/a.txt"}, routes[1])
}

func TestInsertRejectsDestinationCollision(t *testing.T) {
	m := New(MoveKind)
	require.NoError(t, m.Insert("a.txt", "out/x.txt"))

	err := m.Insert("b.txt", "out/x.txt")
	require.Error(t, err)

	var collision *PathCollisionError
	require.True(t, errors.As(err, &collision))
	assert.Equal(t, "out/x.txt", collision.Destination)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "copy", CopyKind.String())
	assert.Equal(t, "hardlink", HardLinkKind.String())
	assert.Equal(t, "move", MoveKind.String())
	assert.Equal(t, "softlink", SoftLinkKind.String())
}
