package search

import (
	"errors"
	"testing"

	"github.com/mtgsim/goldfish/pkg/cardset"
	"github.com/mtgsim/goldfish/pkg/catalog"
	"github.com/mtgsim/goldfish/pkg/effects"
	"github.com/mtgsim/goldfish/pkg/state"
)

func newFrontierState(cat *catalog.Catalog, hand, battlefield cardset.Set) state.State {
	handlers := effects.NewRegistry()
	s := state.New(hand, cardset.Set{"Forest", "Forest", "Forest"}, true, handlers)
	s.Battlefield = battlefield
	return s
}

func TestRunTurnFindsGoalImmediately(t *testing.T) {
	cat := catalog.Load()
	s := newFrontierState(cat, cardset.Set{"Primeval Titan"}, nil)
	ctx := NewContext(cat, 1000)

	_, goal, found, err := ctx.RunTurn(state.NewSet(s), func(st state.State) bool {
		return st.Hand.Contains("Primeval Titan")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected the already-satisfying frontier state to be found immediately")
	}
	if !goal.Hand.Contains("Primeval Titan") {
		t.Errorf("expected the returned goal state to be the matching one, got hand %v", goal.Hand)
	}
}

func TestRunTurnPassesStatesIntoNextTurn(t *testing.T) {
	cat := catalog.Load()
	s := newFrontierState(cat, cardset.Set{"Forest"}, cardset.Set{"Forest"})
	ctx := NewContext(cat, 10000)

	next, _, found, err := ctx.RunTurn(state.NewSet(s), func(state.State) bool { return false })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("did not expect a goal match for an always-false predicate")
	}
	if next.Len() == 0 {
		t.Fatal("expected at least one state to pass into the next turn")
	}
	for _, st := range next.States() {
		if st.Turn != 1 {
			t.Errorf("expected every passed state to be on turn 1, got %d", st.Turn)
		}
	}
}

func TestRunTurnOverflowsPastStateBudget(t *testing.T) {
	cat := catalog.Load()
	s := newFrontierState(cat, cardset.Set{"Forest"}, cardset.Set{"Forest"})
	ctx := NewContext(cat, 1)

	_, _, found, err := ctx.RunTurn(state.NewSet(s), func(state.State) bool { return false })
	if found {
		t.Fatal("did not expect a goal match")
	}
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow once explored states cross the budget, got %v", err)
	}
}
