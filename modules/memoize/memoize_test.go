package memoize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetComputesOnce(t *testing.T) {
	calls := 0
	m := From(func() (int, error) {
		calls++
		return 7, nil
	})
	v, err := m.Get()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	v, err = m.Get()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, calls)
}

func TestGetCachesError(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	m := From(func() (int, error) {
		calls++
		return 0, boom
	})
	_, err := m.Get()
	assert.Equal(t, boom, err)
	_, err = m.Get()
	assert.Equal(t, boom, err)
	assert.Equal(t, 1, calls)
}

func TestPeekBeforeGet(t *testing.T) {
	m := From(func() (int, error) { return 1, nil })
	_, ok := m.Peek()
	assert.False(t, ok)
	_, _ = m.Get()
	v, ok := m.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestDrainResetsCache(t *testing.T) {
	calls := 0
	m := From(func() (int, error) {
		calls++
		return calls, nil
	})
	v, _ := m.Get()
	assert.Equal(t, 1, v)
	drained, ok := m.Drain()
	require.True(t, ok)
	assert.Equal(t, 1, drained)
	_, ok = m.Peek()
	assert.False(t, ok)
	v, _ = m.Get()
	assert.Equal(t, 2, v)
}
