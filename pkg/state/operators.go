package state

import (
	"fmt"

	"github.com/mtgsim/goldfish/internal/logger"
	"github.com/mtgsim/goldfish/pkg/catalog"
	"github.com/mtgsim/goldfish/pkg/mana"
	"github.com/mtgsim/goldfish/pkg/types"
)

const maxLandDropsPerTurn = 1

// PassTurn advances to the next turn: untaps (clearing the mana pool),
// resets the land drop counter, raises mana to pay off any outstanding
// debt (the branch dies if it can't be paid in full), draws a card
// (skipped on the very first turn for the player on the play), and ticks
// down suspended cards. An empty battlefield after turn 0 is an illegal
// precondition and fans out to the empty set.
func (s State) PassTurn(cat *catalog.Catalog) Set {
	if s.Turn > 0 && len(s.Battlefield) == 0 {
		return NewSet()
	}

	next := s.clone()
	next.Turn++
	next.Pool = mana.Mana{}
	next.Tapped = nil
	next.LandDrops = 0
	next.SpellsCast = 0
	next = next.Note(fmt.Sprintf("---- turn %d", next.Turn))

	afterDebt := next.payUpkeepDebt(cat)

	skipDraw := next.Turn == 1 && next.OnThePlay
	result := afterDebt
	if !skipDraw {
		result = result.FlatMap(func(st State) Set { return st.Grab() })
	}
	return result.FlatMap(func(st State) Set { return st.tickDownAll(cat) })
}

// AmuletOfVigor is the card whose static ability untaps a permanent that
// enters the battlefield tapped; Play consults it directly rather than
// through a registered handler since it applies to every tapped land, not
// just its own ETB. Exported so callers can derive a "fast" outcome from
// its presence on the battlefield at goal time.
const AmuletOfVigor = "Amulet of Vigor"

// Play puts a land from hand onto the battlefield, spending this turn's
// land drop. Fans out to nothing if the card is not in hand, is not a
// land, or the land drop has already been used. A land that enters
// tapped is marked unavailable to tap for mana this turn, unless an
// Amulet of Vigor is already on the battlefield: then it is immediately
// untapped and tapped once more in place, fanning out over every color it
// can produce.
func (s State) Play(cat *catalog.Catalog, cardName string) Set {
	if s.LandDrops >= maxLandDropsPerTurn {
		return NewSet()
	}
	entry, ok := cat.Get(cardName)
	if !ok {
		logger.FatalCatalogMiss("play", cardName)
		return NewSet()
	}
	if !entry.IsLand() {
		return NewSet()
	}
	if !s.Hand.Contains(cardName) {
		return NewSet()
	}

	hand, _ := s.Hand.Remove(cardName)
	base := s.clone()
	base.Hand = hand
	base.LandDrops++
	base.Battlefield = base.Battlefield.Add(cardName)

	entered := NewSet()
	switch {
	case entry.EntersTapped != types.TappedTrue:
		entered.Add(base.AppendToLastLine(fmt.Sprintf("played %s", cardName)))

	case base.Battlefield.Contains(AmuletOfVigor):
		if len(entry.TapsFor) == 0 {
			next := base.clone()
			next.Tapped = next.Tapped.Add(cardName)
			next = next.AppendToLastLine(fmt.Sprintf("played %s tapped, Amulet of Vigor untaps it", cardName))
			entered.Add(next)
			break
		}
		for _, color := range entry.TapsFor {
			next := base.clone()
			next.Tapped = next.Tapped.Add(cardName)
			next.Pool = next.Pool.Add(colorToMana(color))
			next = next.AppendToLastLine(fmt.Sprintf("played %s tapped, Amulet of Vigor untaps it, tapped for %s", cardName, color))
			entered.Add(next)
		}

	default:
		next := base.clone()
		next.Tapped = next.Tapped.Add(cardName)
		next = next.AppendToLastLine(fmt.Sprintf("played %s tapped", cardName))
		entered.Add(next)
	}

	return entered.FlatMap(func(st State) Set { return playETB(st, cat, entry) })
}

func playETB(s State, cat *catalog.Catalog, entry catalog.Entry) Set {
	if s.handlers == nil {
		return NewSet(s)
	}
	h, ok := s.handlers.Lookup("play", entry.Slug)
	if !ok {
		// Missing play_* handler is a logged no-op: the land still entered
		// the battlefield and consumed the land drop.
		logger.LogCard("no play handler for %s, treating as vanilla land", entry.Name)
		return NewSet(s)
	}
	return h(s, cat)
}

// Cast pays cardName's mana cost out of the hand/pool and resolves its
// cast_ handler, fanning out over every distinct way the cost can be paid
// (nondeterministic payment) and then over every nondeterministic
// choice the handler itself offers. Fans out to nothing if the card is
// not in hand or its cost cannot be paid from the current pool. A
// registered card with no cast_ handler is a fatal configuration error
// — unlike a missing play_ handler, there is no sane default for
// "cast a spell and do nothing."
func (s State) Cast(cat *catalog.Catalog, cardName string) Set {
	entry, ok := cat.Get(cardName)
	if !ok {
		logger.FatalCatalogMiss("cast", cardName)
		return NewSet()
	}
	if !s.Hand.Contains(cardName) {
		return NewSet()
	}
	cost, err := mana.Parse(entry.Cost)
	if err != nil {
		logger.FatalCatalogMiss("cast (bad cost)", cardName)
		return NewSet()
	}
	remainders := s.Pool.Minus(cost)
	if remainders == nil {
		return NewSet()
	}

	out := NewSet()
	hand, _ := s.Hand.Remove(cardName)
	for _, remainder := range remainders {
		next := s.clone()
		next.Hand = hand
		next.Pool = remainder
		next.SpellsCast++
		next = next.AppendToLastLine(fmt.Sprintf("cast %s", cardName))
		out.Union(castResolve(next, cat, entry))
	}
	return out
}

// ResolveAsPermanent moves cardName onto the battlefield with no further
// effect — the common first step of any cast_ handler for a permanent
// spell (a creature or artifact) before it layers on an ETB trigger, if
// it has one.
func (s State) ResolveAsPermanent(cardName string) State {
	next := s.clone()
	next.Battlefield = next.Battlefield.Add(cardName)
	return next.AppendToLastLine(fmt.Sprintf("%s enters the battlefield", cardName))
}

func castResolve(s State, cat *catalog.Catalog, entry catalog.Entry) Set {
	if s.handlers == nil {
		return NewSet(s)
	}
	h, ok := s.handlers.Lookup("cast", entry.Slug)
	if !ok {
		logger.FatalMissingHandler("cast", entry.Slug)
		return NewSet()
	}
	return h(s, cat)
}

// Cycle pays cardName's cycling cost, discards it, draws a replacement,
// and resolves its cycle_ handler if one is registered (most cycling
// cards have no further effect beyond the draw). Fans out to nothing if
// the card is not in hand, is not cyclable, or its cycling cost cannot be
// paid.
func (s State) Cycle(cat *catalog.Catalog, cardName string) Set {
	entry, ok := cat.Get(cardName)
	if !ok {
		logger.FatalCatalogMiss("cycle", cardName)
		return NewSet()
	}
	if !entry.Cyclable() || !s.Hand.Contains(cardName) {
		return NewSet()
	}
	cost, err := mana.Parse(entry.CycleCost)
	if err != nil {
		logger.FatalCatalogMiss("cycle (bad cost)", cardName)
		return NewSet()
	}
	remainders := s.Pool.Minus(cost)
	if remainders == nil {
		return NewSet()
	}

	hand, _ := s.Hand.Remove(cardName)
	out := NewSet()
	for _, remainder := range remainders {
		next := s.clone()
		next.Hand = hand
		next.Pool = remainder
		next.Graveyard = next.Graveyard.Add(cardName)
		next = next.AppendToLastLine(fmt.Sprintf("cycled %s", cardName))
		drawn := next.Grab()
		out.Union(drawn.FlatMap(func(st State) Set { return cycleResolve(st, cat, entry) }))
	}
	return out
}

// cycleResolve applies a cycled card's further effect, if it has one.
// A card with no registered cycle_ handler gets nothing beyond the
// discard and the draw; unlike Cast, a missing handler here is not fatal.
func cycleResolve(s State, cat *catalog.Catalog, entry catalog.Entry) Set {
	if entry.CycleVerb == "" {
		return NewSet(s)
	}
	if s.handlers == nil {
		return NewSet(s)
	}
	h, ok := s.handlers.Lookup("cycle", entry.Slug)
	if !ok {
		logger.LogCard("no cycle handler for %s, plain cycling", entry.Name)
		return NewSet(s)
	}
	return h(s, cat)
}

// Sacrifice removes a permanent from the battlefield to the graveyard and
// resolves its sacrifice_ handler (e.g. a bounce land's "return a land to
// hand"). A registered permanent with a sacrifice verb but no handler is
// fatal, matching Cast's policy for required effects.
func (s State) Sacrifice(cat *catalog.Catalog, cardName string) Set {
	entry, ok := cat.Get(cardName)
	if !ok {
		logger.FatalCatalogMiss("sacrifice", cardName)
		return NewSet()
	}
	if !s.Battlefield.Contains(cardName) {
		return NewSet()
	}
	bf, _ := s.Battlefield.Remove(cardName)
	next := s.clone()
	next.Battlefield = bf
	if tapped, ok := next.Tapped.Remove(cardName); ok {
		next.Tapped = tapped
	}
	next.Graveyard = next.Graveyard.Add(cardName)
	next = next.AppendToLastLine(fmt.Sprintf("sacrificed %s", cardName))

	if entry.SacrificeVerb == "" {
		return NewSet(next)
	}
	if next.handlers == nil {
		return NewSet(next)
	}
	h, ok := next.handlers.Lookup("sacrifice", entry.Slug)
	if !ok {
		logger.FatalMissingHandler("sacrifice", entry.Slug)
		return NewSet()
	}
	return h(next, cat)
}
