// Package search implements the turn driver: the frontier-based loop that
// expands every legal action available within a turn to a fixed point,
// then hands the engine the set of states that have passed into the next
// turn, short-circuiting as soon as a goal state is found and aborting
// the whole simulation if the state space explored grows past a budget.
package search

import (
	"errors"

	"github.com/mtgsim/goldfish/internal/logger"
	"github.com/mtgsim/goldfish/pkg/catalog"
	"github.com/mtgsim/goldfish/pkg/state"
)

// ErrOverflow is returned when a single simulation's explored-state count
// crosses Context.MaxStates. pkg/simulate turns this into a summary record
// with Overflowed set, rather than treating it as a hard failure.
var ErrOverflow = errors.New("search: exceeded maximum explored state count")

// Context threads the read-only catalog and a per-simulation resource
// budget through the turn driver. A Context is not safe for concurrent
// use by more than one simulation; pkg/simulate builds a fresh Context for
// every trial, so pkg/runner's goroutines never share one, only the
// *catalog.Catalog.
type Context struct {
	Catalog   *catalog.Catalog
	MaxStates int

	explored int
}

// NewContext builds a Context with the given state-count budget. A
// maxStates of zero or less disables the budget (not recommended outside
// of tests: a real deck's state space can blow up without one).
func NewContext(cat *catalog.Catalog, maxStates int) *Context {
	return &Context{Catalog: cat, MaxStates: maxStates}
}

// Explored is the number of distinct states seen across every RunTurn call
// made on this Context so far.
func (c *Context) Explored() int {
	return c.explored
}

// RunTurn expands every state in frontier to a fixed point of in-turn
// actions — tapping lands, casting and playing cards, cycling, sacrificing
// — stopping only once every reachable state this turn has either reached
// a dead end or passed the turn. It returns the states that passed into
// the next turn. If isGoal matches any state reached along the way
// (including mid-turn, before a pass), search stops immediately and that
// state is returned as goal, with found set to true.
func (c *Context) RunTurn(frontier state.Set, isGoal func(state.State) bool) (next state.Set, goal state.State, found bool, err error) {
	current := frontier
	passed := state.NewSet()
	explored := state.NewSet()

	for current.Len() > 0 {
		for _, st := range current.States() {
			if isGoal(st) {
				return state.Set{}, st, true, nil
			}
		}
		c.explored += current.Len()
		if c.MaxStates > 0 && c.explored > c.MaxStates {
			return state.Set{}, state.State{}, false, ErrOverflow
		}

		fanout := current.FlatMap(func(st state.State) state.Set {
			return st.NextStates(c.Catalog)
		})

		var freshCurrent []state.State
		for _, st := range fanout.States() {
			if explored.Add(st) {
				if st.Turn > stateTurnOf(current) {
					passed.Add(st)
				} else {
					freshCurrent = append(freshCurrent, st)
				}
			}
		}
		logger.LogTurn("expanded %d states, %d newly reachable this turn, %d passed onward",
			current.Len(), len(freshCurrent), passed.Len())

		if len(freshCurrent) == 0 {
			break
		}
		current = state.NewSet(freshCurrent...)
	}

	return passed, state.State{}, false, nil
}

// stateTurnOf returns the turn number shared by every state in a frontier;
// an empty frontier reports -1 so every state compares as "passed."
func stateTurnOf(frontier state.Set) int {
	states := frontier.States()
	if len(states) == 0 {
		return -1
	}
	return states[0].Turn
}
