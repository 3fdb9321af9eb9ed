package simulate

import (
	"math/rand"
	"testing"

	"github.com/mtgsim/goldfish/pkg/catalog"
	"github.com/mtgsim/goldfish/pkg/cardset"
	"github.com/mtgsim/goldfish/pkg/deck"
	"github.com/mtgsim/goldfish/pkg/effects"
)

func TestRunFindsGoalWhenTrivial(t *testing.T) {
	cat := catalog.Load()
	handlers := effects.NewRegistry()

	// One Primeval Titan among 59 Forests. Run always shuffles; with this
	// seed the Titan lands in the opening hand, so the search only has to
	// make enough land drops to cast it within MaxTurn.
	opening := cardset.Set{"Primeval Titan", "Forest", "Forest", "Forest", "Forest", "Forest", "Forest"}
	d := deck.Deck{Name: "trivial", Cards: append(append(cardset.Set(nil), opening...), makeFiller(53)...)}

	opts := Options{
		Deck:      d,
		Catalog:   cat,
		Handlers:  handlers,
		Goal:      "Primeval Titan",
		MaxTurn:   10,
		MaxStates: 50000,
		OnThePlay: true,
		Rand:      rand.New(rand.NewSource(6)),
	}
	record := Run(opts)
	if record.Overflowed {
		t.Fatal("did not expect overflow for a trivially small search")
	}
	if record.Turn <= 0 || record.Turn > opts.MaxTurn {
		t.Errorf("expected a goal turn within 1..%d, got %d", opts.MaxTurn, record.Turn)
	}
	if record.Fast {
		t.Error("did not expect Fast without an Amulet of Vigor on the battlefield")
	}
	if len(record.Notes) == 0 {
		t.Error("expected the winning state's transcript to be carried on the record")
	}
}

func makeFiller(n int) cardset.Set {
	out := make(cardset.Set, n)
	for i := range out {
		out[i] = "Forest"
	}
	return out
}
