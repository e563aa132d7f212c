// Package transform drives one from-pattern walk through the to-pattern
// resolver and policy checker, accumulating accepted routes into a Plan an
// actuator can later carry out.
package transform

import (
	"path/filepath"

	"github.com/antgroup/hugemv/modules/manifest"
	"github.com/antgroup/hugemv/modules/pattern/from"
	"github.com/antgroup/hugemv/modules/pattern/to"
	"github.com/antgroup/hugemv/modules/policy"
	"github.com/antgroup/hugemv/modules/trace"
	"github.com/sirupsen/logrus"
)

// Transform pairs a from-pattern, a to-pattern, and the policy every
// resolved route must satisfy before it is admitted to a Plan.
type Transform struct {
	Policy policy.Policy
	From   *from.FromPattern
	To     *to.ToPattern
	Kind   manifest.Kind
}

// New constructs a Transform for the given operation kind.
func New(p policy.Policy, fromPattern *from.FromPattern, toPattern *to.ToPattern, kind manifest.Kind) *Transform {
	return &Transform{Policy: p, From: fromPattern, To: toPattern, Kind: kind}
}

// Plan is the accepted manifest of routes one Read call resolved, along
// with the policy it was checked against.
type Plan struct {
	Policy   policy.Policy
	Manifest *manifest.Manifest
}

// Read walks directory through From, resolves each match's destination
// through To, checks it against Policy, and inserts the route into a Plan.
// The first rejected route or resolution failure aborts the whole walk:
// Read builds a manifest all-or-nothing, it does not return partial plans.
func (t *Transform) Read(directory string, depth int) (*Plan, error) {
	entries, err := t.From.Walk(directory, depth)
	if err != nil {
		return nil, trace.Errorf("walk from-pattern: %v", err)
	}

	m := manifest.New(t.Kind)
	prefix := t.From.Prefix()
	base := filepath.Join(directory, filepath.FromSlash(prefix))
	if filepath.IsAbs(prefix) {
		// An absolute prefix replaces directory, as it does in From.Walk.
		base = filepath.FromSlash(prefix)
	}
	for _, entry := range entries {
		source := filepath.Join(base, filepath.FromSlash(entry.Path))

		name, err := t.To.Resolve(source, entry.Captures)
		if err != nil {
			return nil, trace.Errorf("resolve to-pattern for %q: %v", source, err)
		}
		destination := filepath.Join(directory, filepath.FromSlash(name))

		if err := policy.Check(t.Policy, source, destination); err != nil {
			return nil, err
		}
		if err := m.Insert(source, destination); err != nil {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{"source": source, "destination": destination}).Debug("route accepted")
	}
	return &Plan{Policy: t.Policy, Manifest: m}, nil
}
