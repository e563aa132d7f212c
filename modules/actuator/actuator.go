// Package actuator carries out a transform's accepted routes: copying,
// hard-linking, soft-linking, or moving each source to its destination.
package actuator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/antgroup/hugemv/modules/manifest"
	"github.com/antgroup/hugemv/modules/strengthen"
	"github.com/antgroup/hugemv/modules/trace"
	"github.com/antgroup/hugemv/modules/transform"
)

// Operation carries out one route.
type Operation interface {
	Write(route manifest.Route) error
}

// Copy duplicates source's content to destination.
type Copy struct{}

func (Copy) Write(route manifest.Route) error {
	src, err := os.Open(route.Source)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(route.Destination)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

// HardLink links destination to source's inode. Unlike Copy/Move, os.Link
// fails with an existing destination, so it never needs an overwrite probe
// of its own; the Actuator clears the destination first when the route's
// policy allows it.
type HardLink struct{}

func (HardLink) Write(route manifest.Route) error {
	return os.Link(route.Source, route.Destination)
}

// SoftLink creates destination as a symbolic link to source. Go's os.Symlink
// already abstracts the unix/windows difference the reference implementation
// splits by hand (CreateSymbolicLink vs. symlink(2)), so no platform split
// is needed here. Like HardLink, an existing destination must be cleared by
// the caller before Write runs.
type SoftLink struct{}

func (SoftLink) Write(route manifest.Route) error {
	return os.Symlink(route.Source, route.Destination)
}

// replacesExisting reports whether kind's Write call fails outright when
// Destination already exists, meaning the Actuator must clear it first when
// the route's policy allows overwriting.
func replacesExisting(kind manifest.Kind) bool {
	return kind == manifest.HardLinkKind || kind == manifest.SoftLinkKind
}

// Move renames source to destination.
type Move struct{}

func (Move) Write(route manifest.Route) error {
	return strengthen.Rename(route.Source, route.Destination)
}

// Append is intentionally unimplemented: appending a source's content to an
// existing destination has no clear manifest-route semantics (which of two
// sources wins when both append to the same file?) and no caller needs it.
type Append struct{}

func operationFor(kind manifest.Kind) (Operation, error) {
	switch kind {
	case manifest.CopyKind:
		return Copy{}, nil
	case manifest.HardLinkKind:
		return HardLink{}, nil
	case manifest.MoveKind:
		return Move{}, nil
	case manifest.SoftLinkKind:
		return SoftLink{}, nil
	default:
		return nil, fmt.Errorf("unsupported operation kind: %s", kind)
	}
}

// Actuator carries out a Plan's manifest.
type Actuator struct{}

// New constructs an Actuator.
func New() *Actuator { return &Actuator{} }

// Write carries out every route in plan.Manifest, creating each
// destination's parent directory first when plan.Policy.CreateParents is
// set. The first operation failure aborts the remaining routes.
func (a *Actuator) Write(plan *transform.Plan) error {
	op, err := operationFor(plan.Manifest.Kind)
	if err != nil {
		return err
	}
	for _, route := range plan.Manifest.Routes() {
		if plan.Policy.CreateParents {
			parent := filepath.Dir(route.Destination)
			if _, err := os.Stat(parent); os.IsNotExist(err) {
				if err := os.MkdirAll(parent, 0o755); err != nil {
					return trace.Errorf("create parent directory %q: %v", parent, err)
				}
			}
		}
		if plan.Policy.Overwrite && replacesExisting(plan.Manifest.Kind) {
			if _, err := os.Lstat(route.Destination); err == nil {
				if err := strengthen.Remove(route.Destination); err != nil {
					return trace.Errorf("remove existing destination %q: %v", route.Destination, err)
				}
			}
		}
		if err := op.Write(route); err != nil {
			return trace.Errorf("%s %q -> %q: %v", plan.Manifest.Kind, route.Source, route.Destination, err)
		}
		trace.DbgPrint("%s %q -> %q", plan.Manifest.Kind, route.Source, route.Destination)
	}
	return nil
}
