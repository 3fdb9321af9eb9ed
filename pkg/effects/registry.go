// Package effects holds the per-card handler library: a compile-time
// registry keyed by (kind, slug), standing in for dynamic attribute-style
// dispatch. Every handler is registered once, at package init; a slug
// registered twice for the same kind is a programmer error and panics
// immediately rather than silently shadowing.
package effects

import (
	"fmt"

	"github.com/mtgsim/goldfish/pkg/state"
)

type key struct {
	kind string
	slug string
}

var table = map[key]state.HandlerFunc{}

// Register adds a handler for (kind, slug) to the compile-time table.
// Intended to be called only from this package's init functions.
func Register(kind, slug string, h state.HandlerFunc) {
	k := key{kind, slug}
	if _, exists := table[k]; exists {
		panic(fmt.Sprintf("effects: duplicate handler registered for kind=%q slug=%q", kind, slug))
	}
	table[k] = h
}

// Registry is the concrete state.HandlerTable backing every simulation;
// it is stateless and safe to share across goroutines, consulted only via
// Lookup.
type Registry struct{}

// NewRegistry returns the shared handler table. There is never a reason to
// construct more than one: the underlying map is a read-only compile-time
// table built by this package's init functions before any simulation runs.
func NewRegistry() Registry {
	return Registry{}
}

// Lookup implements state.HandlerTable.
func (Registry) Lookup(kind, slug string) (state.HandlerFunc, bool) {
	h, ok := table[key{kind, slug}]
	return h, ok
}
