package state

import (
	"fmt"

	"github.com/mtgsim/goldfish/pkg/cardset"
	"github.com/mtgsim/goldfish/pkg/catalog"
	"github.com/mtgsim/goldfish/pkg/types"
)

// Grab draws the top card of the library into hand. Drawing from an empty
// library fans out to nothing: a game line that decks itself out simply
// has no legal successor, modeling "can't reach the goal" rather than a
// distinguished loss state.
func (s State) Grab() Set {
	if len(s.Library) == 0 {
		return NewSet()
	}
	card := s.Library[0]
	next := s.clone()
	next.Library = next.Library[1:]
	next.Hand = next.Hand.Add(card)
	next = next.AppendToLastLine(fmt.Sprintf("drew %s", card))
	return NewSet(next)
}

// Top returns the name of the top card of the library without moving it,
// and ok=false if the library is empty.
func (s State) Top() (string, bool) {
	if len(s.Library) == 0 {
		return "", false
	}
	return s.Library[0], true
}

// Mill moves the top n library cards to the graveyard (fewer if the
// library runs out first).
func (s State) Mill(n int) Set {
	next := s.clone()
	moved := 0
	for moved < n && len(next.Library) > 0 {
		card := next.Library[0]
		next.Library = next.Library[1:]
		next.Graveyard = next.Graveyard.Add(card)
		moved++
	}
	if moved > 0 {
		next = next.AppendToLastLine(fmt.Sprintf("milled %d", moved))
	}
	return NewSet(next)
}

// Scry looks at the top card and fans out over both choices: keep it on
// top, or bury it on the bottom of the library. This is how the engine
// models a scry 1 without needing a standalone "bottom" operator.
func (s State) Scry() Set {
	card, ok := s.Top()
	if !ok {
		return NewSet(s)
	}
	keep := s.AppendToLastLine(fmt.Sprintf("scried, kept %s on top", card))

	bottomed := s.clone()
	bottomed.Library = append(append(cardset.Set(nil), bottomed.Library[1:]...), card)
	bottomed = bottomed.AppendToLastLine(fmt.Sprintf("scried %s to the bottom", card))

	return NewSet(keep, bottomed)
}

// Pitch discards cardName from hand to the graveyard, used by effects
// that require discarding as a cost (e.g. madness, or a cycling-like
// ability modeled outside of CycleCost). Fans out to nothing if the card
// is not in hand.
func (s State) Pitch(cardName string) Set {
	hand, ok := s.Hand.Remove(cardName)
	if !ok {
		return NewSet()
	}
	next := s.clone()
	next.Hand = hand
	next.Graveyard = next.Graveyard.Add(cardName)
	next = next.AppendToLastLine(fmt.Sprintf("pitched %s", cardName))
	return NewSet(next)
}

// Fetch searches the library for every card satisfying pred, fans out one
// state per matching card (moved to hand, library shuffled conceptually —
// order among the remaining cards no longer matters once a search has
// happened, so the remainder is left in place and only the matched card is
// removed), and applies the best-options dominance filter across the
// matches before fanning out. If nothing matches, fans
// out to a single state with nothing found (the search still happened).
func (s State) Fetch(cat *catalog.Catalog, pred func(catalog.Entry) bool) Set {
	var candidates cardset.Set
	for _, card := range s.Library {
		entry, ok := cat.Get(card)
		if !ok {
			continue
		}
		if pred(entry) {
			candidates = candidates.Add(card)
		}
	}
	if len(candidates) == 0 {
		return NewSet(s.AppendToLastLine("found nothing"))
	}

	pruned := cardset.BestOptions(candidates.Canonical())
	out := NewSet()
	for _, card := range pruned {
		next := s.clone()
		lib, _ := next.Library.Remove(card)
		next.Library = lib
		next.Hand = next.Hand.Add(card)
		next = next.AppendToLastLine(fmt.Sprintf("found %s", card))
		out.Add(next)
	}
	return out
}

// RevealTop looks at the top n cards of the library (fewer if the library
// runs out first), applies the best-options dominance filter across
// whichever of them satisfy pred, and fans out one state per surviving
// choice with that card moved to hand and the rest of the revealed cards
// milled to the graveyard. If none of the revealed cards satisfy pred,
// fans out to a single state with nothing found and the whole reveal
// milled. This is a bounded dig, unlike Fetch's unbounded library search.
func (s State) RevealTop(cat *catalog.Catalog, n int, pred func(catalog.Entry) bool) Set {
	revealed := s.Library
	if len(revealed) > n {
		revealed = revealed[:n]
	}

	var candidates cardset.Set
	for _, card := range revealed {
		entry, ok := cat.Get(card)
		if !ok {
			continue
		}
		if pred(entry) {
			candidates = candidates.Add(card)
		}
	}
	rest := append(cardset.Set(nil), revealed...)

	if len(candidates) == 0 {
		milled := s.clone()
		milled.Library = milled.Library[len(rest):]
		for _, card := range rest {
			milled.Graveyard = milled.Graveyard.Add(card)
		}
		milled = milled.AppendToLastLine(fmt.Sprintf("revealed top %d, found nothing", len(rest)))
		return NewSet(milled)
	}

	pruned := cardset.BestOptions(candidates.Canonical())
	out := NewSet()
	for _, card := range pruned {
		next := s.clone()
		next.Library = next.Library[len(rest):]
		next.Hand = next.Hand.Add(card)
		skipped := false
		for _, milled := range rest {
			if !skipped && milled == card {
				skipped = true
				continue
			}
			next.Graveyard = next.Graveyard.Add(milled)
		}
		next = next.AppendToLastLine(fmt.Sprintf("revealed top %d, took %s", len(rest), card))
		out.Add(next)
	}
	return out
}

// FetchToBattlefield is Fetch, but puts the found card straight onto the
// battlefield instead of into hand. A card that enters tapped is marked
// Tapped, as Play does when no Amulet of Vigor is out; Amulet of Vigor is
// not consulted here. Used by ramp spells that search a land directly into
// play.
func (s State) FetchToBattlefield(cat *catalog.Catalog, pred func(catalog.Entry) bool) Set {
	var candidates cardset.Set
	for _, card := range s.Library {
		entry, ok := cat.Get(card)
		if !ok {
			continue
		}
		if pred(entry) {
			candidates = candidates.Add(card)
		}
	}
	if len(candidates) == 0 {
		return NewSet(s.AppendToLastLine("found nothing"))
	}

	pruned := cardset.BestOptions(candidates.Canonical())
	out := NewSet()
	for _, card := range pruned {
		entry, _ := cat.Get(card)
		next := s.clone()
		lib, _ := next.Library.Remove(card)
		next.Library = lib
		next.Battlefield = next.Battlefield.Add(card)
		if entry.EntersTapped == types.TappedTrue {
			next.Tapped = next.Tapped.Add(card)
			next = next.AppendToLastLine(fmt.Sprintf("found %s, put it onto the battlefield tapped", card))
		} else {
			next = next.AppendToLastLine(fmt.Sprintf("found %s, put it onto the battlefield", card))
		}
		out.Add(next)
	}
	return out
}

// BounceLand returns one land from the battlefield to hand, used by the
// sacrifice_ handlers of Karoo-style bounce lands. Fans out one successor
// per land on the battlefield that satisfies pred (typically "is a
// land"); if none qualify, fans out to nothing (the land had no legal
// target, which means no successor rather than an error).
func (s State) BounceLand(cat *catalog.Catalog, pred func(catalog.Entry) bool) Set {
	out := NewSet()
	for _, card := range s.Battlefield.Canonical() {
		entry, ok := cat.Get(card)
		if !ok || !pred(entry) {
			continue
		}
		bf, _ := s.Battlefield.Remove(card)
		next := s.clone()
		next.Battlefield = bf
		if tapped, ok := next.Tapped.Remove(card); ok {
			next.Tapped = tapped
		}
		next.Hand = next.Hand.Add(card)
		next = next.AppendToLastLine(fmt.Sprintf("bounced %s", card))
		out.Add(next)
	}
	return out
}

// tickDownAll decrements every suspended card's counter by one, resolving
// (casting for free) any that reach zero. Called once per PassTurn.
func (s State) tickDownAll(cat *catalog.Catalog) Set {
	if len(s.Suspended) == 0 {
		return NewSet(s)
	}
	next := s.clone()
	var resolved []Suspended
	var remaining []Suspended
	for _, susp := range next.Suspended {
		susp.Counters--
		if susp.Counters <= 0 {
			resolved = append(resolved, susp)
		} else {
			remaining = append(remaining, susp)
		}
	}
	next.Suspended = remaining

	result := NewSet(next)
	for _, susp := range resolved {
		entry, ok := cat.Get(susp.Name)
		if !ok {
			continue
		}
		result = result.FlatMap(func(st State) Set {
			st = st.AppendToLastLine(fmt.Sprintf("%s's suspend counter hit zero", susp.Name))
			if st.handlers == nil {
				return NewSet(st)
			}
			h, ok := st.handlers.Lookup("suspend", entry.Slug)
			if !ok {
				return NewSet(st)
			}
			return h(st, cat)
		})
	}
	return result
}
