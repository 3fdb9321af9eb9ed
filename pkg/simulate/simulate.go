// Package simulate runs one trial: shuffle a deck, draw an opening hand,
// and drive the turn-by-turn search for the earliest turn a named goal
// card reaches the battlefield.
package simulate

import (
	"math/rand"

	"github.com/mtgsim/goldfish/internal/logger"
	"github.com/mtgsim/goldfish/pkg/catalog"
	"github.com/mtgsim/goldfish/pkg/deck"
	"github.com/mtgsim/goldfish/pkg/results"
	"github.com/mtgsim/goldfish/pkg/search"
	"github.com/mtgsim/goldfish/pkg/state"
)

const openingHandSize = 7

// Options configures one trial.
type Options struct {
	Deck      deck.Deck
	Catalog   *catalog.Catalog
	Handlers  state.HandlerTable
	Goal      string // card name that must reach the battlefield
	MaxTurn   int
	MaxStates int
	OnThePlay bool
	Rand      *rand.Rand
}

// Run shuffles Options.Deck, draws an opening hand, and searches turns
// 1..MaxTurn for a state with Goal on the battlefield. A state-count
// overflow on any turn ends the trial early with Record.Overflowed set
// rather than propagating an error — the caller (pkg/runner) treats an
// overflowed trial as "goal not reached within budget," not as a
// failure.
func Run(opts Options) results.Record {
	shuffled := opts.Deck.Shuffle(opts.Rand)
	opening, library := shuffled.Draw(openingHandSize)

	initial := state.New(opening, library, opts.OnThePlay, opts.Handlers)
	frontier := state.NewSet(initial)

	ctx := search.NewContext(opts.Catalog, opts.MaxStates)
	isGoal := func(s state.State) bool { return s.Done || s.Battlefield.Contains(opts.Goal) }

	for turn := 1; turn <= opts.MaxTurn; turn++ {
		next, goalState, found, err := ctx.RunTurn(frontier, isGoal)
		if err != nil {
			logger.LogMeta("%s: overflowed exploring turn %d (%d states explored)", opts.Deck.Name, turn, ctx.Explored())
			return results.Record{Deck: opts.Deck.Name, OnThePlay: opts.OnThePlay, Overflowed: true}
		}
		if found {
			logger.LogMeta("%s: found %s on turn %d", opts.Deck.Name, opts.Goal, goalState.Turn)
			return results.Record{
				Deck:      opts.Deck.Name,
				Turn:      goalState.Turn,
				OnThePlay: opts.OnThePlay,
				Fast:      goalState.Battlefield.Contains(state.AmuletOfVigor),
				Notes:     goalState.Notes,
			}
		}
		if next.Len() == 0 {
			logger.LogMeta("%s: no legal continuations on turn %d", opts.Deck.Name, turn)
			return results.Record{Deck: opts.Deck.Name, Turn: opts.MaxTurn, OnThePlay: opts.OnThePlay, Overflowed: true}
		}
		frontier = next
	}

	logger.LogMeta("%s: did not find %s within %d turns", opts.Deck.Name, opts.Goal, opts.MaxTurn)
	return results.Record{Deck: opts.Deck.Name, Turn: opts.MaxTurn, OnThePlay: opts.OnThePlay, Overflowed: true}
}
