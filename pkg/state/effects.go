package state

import "github.com/mtgsim/goldfish/pkg/catalog"

// HandlerFunc resolves one card's effect into the state(s) that follow,
// fanning out over every nondeterministic choice the effect offers (which
// land to fetch, which spare color to spend). It must never mutate its
// State argument.
type HandlerFunc func(State, *catalog.Catalog) Set

// HandlerTable resolves a (kind, slug) pair — kind is "play", "cast",
// "cycle", "sacrifice", or "suspend" — to its registered handler. Defined
// here as an interface, rather than depending on pkg/effects directly, so
// this package stays free of a dependency on the package that is built
// against it (pkg/effects imports pkg/state to write handlers in terms of
// State); cmd/goldfish wires the concrete registry in at the top, through
// simulate.Options.Handlers.
type HandlerTable interface {
	Lookup(kind, slug string) (HandlerFunc, bool)
}
