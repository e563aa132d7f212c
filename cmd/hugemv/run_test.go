package main

import (
	"testing"

	"github.com/antgroup/hugemv/modules/manifest"
	"github.com/antgroup/hugemv/modules/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationKindDefaultsToMove(t *testing.T) {
	kind, err := operationKind(&App{})
	require.NoError(t, err)
	assert.Equal(t, manifest.MoveKind, kind)
}

func TestOperationKindHonorsSingleFlag(t *testing.T) {
	kind, err := operationKind(&App{Copy: true})
	require.NoError(t, err)
	assert.Equal(t, manifest.CopyKind, kind)

	kind, err = operationKind(&App{SoftLink: true})
	require.NoError(t, err)
	assert.Equal(t, manifest.SoftLinkKind, kind)
}

func TestOperationKindRejectsMultipleFlags(t *testing.T) {
	_, err := operationKind(&App{Copy: true, HardLink: true})
	assert.Error(t, err)
}

func TestApplyOverridesParsesKnownKeys(t *testing.T) {
	p := policy.Policy{}
	depth := 0
	require.NoError(t, applyOverrides([]string{"overwrite=true", "create_parents=true", "depth=4"}, &p, &depth))
	assert.True(t, p.Overwrite)
	assert.True(t, p.CreateParents)
	assert.Equal(t, 4, depth)
}

func TestApplyOverridesRejectsUnknownKey(t *testing.T) {
	p := policy.Policy{}
	depth := 0
	assert.Error(t, applyOverrides([]string{"bogus=1"}, &p, &depth))
}

func TestApplyOverridesRejectsMalformedEntry(t *testing.T) {
	p := policy.Policy{}
	depth := 0
	assert.Error(t, applyOverrides([]string{"overwrite"}, &p, &depth))
}
