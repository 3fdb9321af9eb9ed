package state

import (
	"testing"

	"github.com/mtgsim/goldfish/pkg/catalog"
	"github.com/mtgsim/goldfish/pkg/cardset"
	"github.com/mtgsim/goldfish/pkg/mana"
)

func newTestState() State {
	cat := catalog.Load()
	_ = cat
	opening := cardset.Set{"Forest", "Forest", "Island"}
	library := cardset.Set{"Primeval Titan", "Forest"}
	return New(opening, library, true, nil)
}

func TestPassTurnSkipsDrawOnThePlayTurnOne(t *testing.T) {
	cat := catalog.Load()
	s := newTestState()
	result := s.PassTurn(cat)
	if result.Len() == 0 {
		t.Fatal("expected at least one successor")
	}
	for _, st := range result.States() {
		if st.Turn != 1 {
			t.Errorf("expected turn 1, got %d", st.Turn)
		}
		if len(st.Hand) != len(s.Hand) {
			t.Errorf("expected no draw on turn 1 while on the play: hand size %d -> %d", len(s.Hand), len(st.Hand))
		}
	}
}

func TestPassTurnDrawsOnLaterTurns(t *testing.T) {
	cat := catalog.Load()
	s := newTestState()
	turn1 := s.PassTurn(cat).States()[0]
	// Put a land into play so the empty-battlefield precondition doesn't
	// block passing again.
	turn1.Battlefield = turn1.Battlefield.Add("Forest")
	result := turn1.PassTurn(cat)
	if result.Len() == 0 {
		t.Fatal("expected at least one successor")
	}
	for _, st := range result.States() {
		if len(st.Hand) != len(turn1.Hand)+1 {
			t.Errorf("expected a draw on turn 2, hand size %d -> %d", len(turn1.Hand), len(st.Hand))
		}
	}
}

func TestPassTurnBlockedByEmptyBattlefield(t *testing.T) {
	cat := catalog.Load()
	s := newTestState()
	turn1 := s.PassTurn(cat).States()[0]
	// turn1 has no battlefield permanents yet.
	result := turn1.PassTurn(cat)
	if result.Len() != 0 {
		t.Errorf("expected passing turn with empty battlefield to be illegal, got %d successors", result.Len())
	}
}

func TestPlayLandDropLimit(t *testing.T) {
	cat := catalog.Load()
	s := newTestState()
	once := s.Play(cat, "Forest")
	if once.Len() == 0 {
		t.Fatal("expected playing a land to succeed")
	}
	played := once.States()[0]
	twice := played.Play(cat, "Forest")
	if twice.Len() != 0 {
		t.Errorf("expected second land drop this turn to be illegal, got %d successors", twice.Len())
	}
}

func TestPlayRejectsNonLand(t *testing.T) {
	cat := catalog.Load()
	s := newTestState()
	s.Hand = s.Hand.Add("Primeval Titan")
	result := s.Play(cat, "Primeval Titan")
	if result.Len() != 0 {
		t.Errorf("expected playing a nonland card to be illegal, got %d successors", result.Len())
	}
}

func TestCastRequiresAffordableCost(t *testing.T) {
	cat := catalog.Load()
	s := newTestState()
	s.Hand = s.Hand.Add("Primeval Titan")
	result := s.Cast(cat, "Primeval Titan")
	if result.Len() != 0 {
		t.Errorf("expected casting Primeval Titan with empty pool to be illegal, got %d successors", result.Len())
	}

	s.Pool = mana.Mana{G: 2, Total: 4}
	result = s.Cast(cat, "Primeval Titan")
	if result.Len() == 0 {
		t.Fatal("expected casting Primeval Titan with 4GG available to succeed")
	}
}

func TestEqualIgnoresNotesAndID(t *testing.T) {
	a := newTestState()
	b := newTestState()
	a = a.Note("some transcript line")
	if !a.Equal(b) {
		t.Error("expected states differing only in Notes/id to compare equal")
	}
}

func TestStateSetDedup(t *testing.T) {
	a := newTestState()
	b := newTestState()
	set := NewSet(a, b)
	if set.Len() != 1 {
		t.Errorf("expected identical states to dedup to 1, got %d", set.Len())
	}
}

func TestScryFansOutBothChoices(t *testing.T) {
	s := newTestState()
	result := s.Scry()
	if result.Len() != 2 {
		t.Fatalf("expected 2 outcomes from a scry, got %d", result.Len())
	}
}

func TestPassTurnPaysOffDebtWhenAffordable(t *testing.T) {
	cat := catalog.Load()
	s := newTestState()
	s.Battlefield = s.Battlefield.Add("Forest").Add("Forest").Add("Forest")
	s = s.IncurDebt(mana.Mana{G: 1, Total: 2})

	result := s.PassTurn(cat)
	if result.Len() == 0 {
		t.Fatal("expected at least one successor paying off a 3-mana debt with three Forests")
	}
	for _, st := range result.States() {
		if !st.Debt.Empty() {
			t.Errorf("expected debt cleared after PassTurn, got %v", st.Debt)
		}
		if !st.Pool.Empty() {
			t.Errorf("expected mana raised to pay debt not to carry into the new turn, got %v", st.Pool)
		}
		if len(st.Tapped) != 0 {
			t.Errorf("expected tap tracking cleared after paying upkeep debt, got %v", st.Tapped)
		}
	}
}

func TestPassTurnDiesWhenDebtUnpayable(t *testing.T) {
	cat := catalog.Load()
	s := newTestState()
	s.Battlefield = s.Battlefield.Add("Forest")
	s = s.IncurDebt(mana.Mana{G: 1, Total: 2})

	result := s.PassTurn(cat)
	if result.Len() != 0 {
		t.Errorf("expected a single Forest to be unable to pay 2G debt, got %d successors", result.Len())
	}
}

func TestPlayAmuletOfVigorUntapsLandThatEntersTapped(t *testing.T) {
	cat := catalog.Load()
	s := newTestState()
	s.Battlefield = s.Battlefield.Add("Amulet of Vigor")
	s.Hand = s.Hand.Add("Khalni Garden")

	result := s.Play(cat, "Khalni Garden")
	if result.Len() == 0 {
		t.Fatal("expected playing a tapped land with Amulet of Vigor in play to succeed")
	}
	for _, st := range result.States() {
		if st.Pool.Count() == 0 {
			t.Errorf("expected Amulet of Vigor to let the tapped land produce mana immediately, got empty pool")
		}
		if st.Tapped.Count("Khalni Garden") == 0 {
			t.Errorf("expected the land to be marked tapped after Amulet untaps and retaps it")
		}
	}
}

func TestPlayTappedLandWithoutAmuletCannotTapSameTurn(t *testing.T) {
	cat := catalog.Load()
	s := newTestState()
	s.Hand = s.Hand.Add("Khalni Garden")

	played := s.Play(cat, "Khalni Garden").States()[0]
	if played.Pool.Count() != 0 {
		t.Fatalf("expected a tapped-entering land to produce no mana the turn it's played, got %v", played.Pool)
	}
	if played.TapOut(cat, "Khalni Garden").Len() != 0 {
		t.Error("expected a tapped-entering land to already be marked tapped this turn")
	}
}

func TestNextStatesDoneShortCircuits(t *testing.T) {
	cat := catalog.Load()
	s := newTestState()
	s = s.MarkDone()
	result := s.NextStates(cat)
	if result.Len() != 1 {
		t.Fatalf("expected a done state to fan out to exactly itself, got %d successors", result.Len())
	}
	if !result.States()[0].Done {
		t.Error("expected the lone successor of a done state to still be done")
	}
}

func TestRevealTopFindsColorlessLandAmongRevealedCards(t *testing.T) {
	cat := catalog.Load()
	s := newTestState()
	s.Library = cardset.Set{"Island", "Forest", "Primeval Titan", "Boros Garrison", "Radiant Fountain"}

	result := s.RevealTop(cat, 5, func(e catalog.Entry) bool {
		m, err := mana.Parse(e.Cost)
		if err != nil {
			return false
		}
		return m.W == 0 && m.U == 0 && m.B == 0 && m.R == 0 && m.G == 0
	})
	if result.Len() == 0 {
		t.Fatal("expected at least one colorless option among the revealed cards")
	}
	for _, st := range result.States() {
		if st.Hand.Count("Island") != s.Hand.Count("Island") {
			t.Error("expected Island to be dominated by Forest and never chosen")
		}
	}
}

func TestFetchAppliesBestOptions(t *testing.T) {
	cat := catalog.Load()
	s := newTestState()
	s.Library = cardset.Set{"Forest", "Simic Growth Chamber"}
	result := s.Fetch(cat, catalog.Entry.IsLand)
	if result.Len() != 1 {
		t.Fatalf("expected best-options to prune Forest in favor of the bounce land, got %d successors", result.Len())
	}
	got := result.States()[0]
	if !got.Hand.Contains("Simic Growth Chamber") {
		t.Errorf("expected Simic Growth Chamber to be found, got hand %v", got.Hand)
	}
}
