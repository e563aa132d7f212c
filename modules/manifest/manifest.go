// Package manifest accumulates the source -> destination routes a transform
// run resolves, detecting destination collisions before any operation
// actually touches the file system.
package manifest

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// PathCollisionError reports that two sources resolved to the same
// destination.
type PathCollisionError struct {
	Destination string
}

func (e *PathCollisionError) Error() string {
	return fmt.Sprintf("detected collision in route destination path: %q", e.Destination)
}

// Route pairs one resolved source with its destination.
type Route struct {
	Source      string
	Destination string
}

// Router accumulates routes and rejects destination collisions.
type Router interface {
	Insert(source, destination string) error
	Routes() []Route
}

// Bijective is a Router backed by an insertion-ordered source map plus a
// destination occupancy set, so Routes iterates sources in the order they
// were discovered while Insert still rejects any destination seen twice.
type Bijective struct {
	order        *linkedhashmap.Map
	destinations map[string]struct{}
}

// NewBijective constructs an empty Bijective router.
func NewBijective() *Bijective {
	return &Bijective{
		order:        linkedhashmap.New(),
		destinations: make(map[string]struct{}),
	}
}

// Insert records a source -> destination route, failing if destination has
// already been claimed by an earlier route.
func (b *Bijective) Insert(source, destination string) error {
	if _, taken := b.destinations[destination]; taken {
		return &PathCollisionError{Destination: destination}
	}
	b.order.Put(source, destination)
	b.destinations[destination] = struct{}{}
	return nil
}

// Routes returns every accumulated route, in insertion order.
func (b *Bijective) Routes() []Route {
	routes := make([]Route, 0, b.order.Size())
	it := b.order.Iterator()
	for it.Next() {
		routes = append(routes, Route{
			Source:      it.Key().(string),
			Destination: it.Value().(string),
		})
	}
	return routes
}

// Kind selects the operation a Manifest's routes will be actuated with.
type Kind int

const (
	CopyKind Kind = iota
	HardLinkKind
	MoveKind
	SoftLinkKind
)

func (k Kind) String() string {
	switch k {
	case CopyKind:
		return "copy"
	case HardLinkKind:
		return "hardlink"
	case MoveKind:
		return "move"
	case SoftLinkKind:
		return "softlink"
	default:
		return "unknown"
	}
}

// Manifest is a Kind-tagged Router. Every operation kind routes bijectively
// (one source, one destination), so a single router implementation serves
// all of them; Kind is what distinguishes a Copy manifest from a Move
// manifest once it reaches the actuator.
type Manifest struct {
	Kind   Kind
	router Router
}

// New constructs an empty Manifest for the given operation kind.
func New(kind Kind) *Manifest {
	return &Manifest{Kind: kind, router: NewBijective()}
}

// Insert records a resolved route.
func (m *Manifest) Insert(source, destination string) error {
	return m.router.Insert(source, destination)
}

// Routes returns every accumulated route.
func (m *Manifest) Routes() []Route {
	return m.router.Routes()
}
