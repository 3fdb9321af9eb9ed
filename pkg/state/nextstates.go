package state

import "github.com/mtgsim/goldfish/pkg/catalog"

// NextStates is the fan-out operator next_states: every
// legal successor of s reachable by one action this turn — tapping any
// untapped land for any mana it offers, casting or playing any card in
// hand, cycling any cyclable card in hand, sacrificing any sacrifice-able
// permanent, or passing the turn. Illegal actions contribute nothing
// (their operator already returns an empty Set), so NextStates never
// needs to distinguish "legal but boring" from "illegal."
func (s State) NextStates(cat *catalog.Catalog) Set {
	if s.Done {
		return NewSet(s)
	}

	out := NewSet()

	for _, card := range s.Battlefield.Canonical() {
		out.Union(s.TapOut(cat, card))
	}
	for _, card := range s.Hand.Canonical() {
		entry, ok := cat.Get(card)
		if !ok {
			continue
		}
		if entry.IsLand() {
			out.Union(s.Play(cat, card))
		} else {
			out.Union(s.Cast(cat, card))
		}
		if entry.Cyclable() {
			out.Union(s.Cycle(cat, card))
		}
	}
	for _, card := range s.Battlefield.Canonical() {
		entry, ok := cat.Get(card)
		if ok && entry.SacrificeVerb != "" {
			out.Union(s.Sacrifice(cat, card))
		}
	}

	out.Union(s.PassTurn(cat))
	return out
}
