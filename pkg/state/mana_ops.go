package state

import (
	"fmt"

	"github.com/mtgsim/goldfish/pkg/catalog"
	"github.com/mtgsim/goldfish/pkg/mana"
	"github.com/mtgsim/goldfish/pkg/types"
)

// TapOut taps one untapped permanent named cardName for mana, fanning out
// over every color it can produce (a bounce land offers two choices, a
// Gemstone Mine offers five). Fans out to nothing if the card is not on
// the battlefield, has no untapped copy left this turn, or produces no
// mana. Tapped tracks which copies have already been tapped this turn;
// PassTurn's untap step clears it.
func (s State) TapOut(cat *catalog.Catalog, cardName string) Set {
	if s.Tapped.Count(cardName) >= s.Battlefield.Count(cardName) {
		return NewSet()
	}
	entry, ok := cat.Get(cardName)
	if !ok {
		return NewSet()
	}
	if len(entry.TapsFor) == 0 {
		return NewSet()
	}

	out := NewSet()
	for _, color := range entry.TapsFor {
		next := s.clone()
		next.Tapped = next.Tapped.Add(cardName)
		next.Pool = next.Pool.Add(colorToMana(color))
		next = next.AppendToLastLine(fmt.Sprintf("tapped %s for %s", cardName, color))
		out.Add(next)
	}
	return out
}

func colorToMana(c types.ManaType) mana.Mana {
	switch c {
	case types.White:
		return mana.Mana{W: 1}
	case types.Blue:
		return mana.Mana{U: 1}
	case types.Black:
		return mana.Mana{B: 1}
	case types.Red:
		return mana.Mana{R: 1}
	case types.Green:
		return mana.Mana{G: 1}
	default:
		return mana.Mana{Total: 1}
	}
}

// IncurDebt adds amount to the outstanding debt a pact-style spell owes;
// PassTurn attempts to pay it off at the following upkeep, dying if it
// cannot.
func (s State) IncurDebt(amount mana.Mana) State {
	next := s.clone()
	next.Debt = next.Debt.Add(amount)
	return next
}

// tapOutAll fans out over every way to tap every land currently on the
// battlefield for mana, one card at a time, folding each land's choices
// into every branch already produced by the lands before it. Used by
// PassTurn to raise mana for an outstanding debt at upkeep; a land with no
// further untapped copies or no mana to offer is simply left alone.
func (s State) tapOutAll(cat *catalog.Catalog) Set {
	out := NewSet(s)
	for _, card := range s.Battlefield.Canonical() {
		copies := s.Battlefield.Count(card)
		for i := 0; i < copies; i++ {
			out = out.FlatMap(func(st State) Set {
				tapped := st.TapOut(cat, card)
				if tapped.Len() == 0 {
					return NewSet(st)
				}
				return tapped
			})
		}
	}
	return out
}

// payUpkeepDebt fans out over every way to raise mana from the
// battlefield and spend it paying off an outstanding debt at upkeep. A
// state with no debt passes through unchanged; a state that cannot raise
// enough mana dies. The mana raised here does not carry into the turn's
// main phase: the pool and tap tracking are both reset once the debt is
// settled, so the turn's own taps start fresh.
func (s State) payUpkeepDebt(cat *catalog.Catalog) Set {
	if s.Debt.Empty() {
		return NewSet(s)
	}
	return s.tapOutAll(cat).FlatMap(func(st State) Set {
		return st.PayDebt(st.Debt).FlatMap(func(paid State) Set {
			next := paid.clone()
			next.Pool = mana.Mana{}
			next.Tapped = nil
			return NewSet(next)
		})
	})
}

// PayDebt settles amount of outstanding debt out of the current pool,
// fanning out over every way the payment can be made, same as Cast.
// Fans out to nothing if the debt cannot be paid in full this way.
func (s State) PayDebt(amount mana.Mana) Set {
	if !amount.LessEq(s.Debt) {
		return NewSet()
	}
	remainders := s.Pool.Minus(amount)
	if remainders == nil {
		return NewSet()
	}
	out := NewSet()
	for _, remainder := range remainders {
		next := s.clone()
		next.Pool = remainder
		next.Debt = mana.Mana{
			W: next.Debt.W - amount.W,
			U: next.Debt.U - amount.U,
			B: next.Debt.B - amount.B,
			R: next.Debt.R - amount.R,
			G: next.Debt.G - amount.G,
			Total: next.Debt.Total - amount.Total,
		}
		next = next.AppendToLastLine("paid off pact debt")
		out.Add(next)
	}
	return out
}
