package effects

import (
	"github.com/mtgsim/goldfish/pkg/catalog"
	"github.com/mtgsim/goldfish/pkg/mana"
	"github.com/mtgsim/goldfish/pkg/state"
	"github.com/mtgsim/goldfish/pkg/types"
)

func init() {
	Register("cast", "primeval_titan", castPrimevalTitan)
	Register("cast", "explore", castExplore)
	Register("cast", "ancient_stirrings", castAncientStirrings)
	Register("cast", "summoners_pact", castSummonersPact)
	Register("cast", "amulet_of_vigor", castAmuletOfVigor)

	Register("sacrifice", "simic_growth_chamber", sacrificeBounceLand)
	Register("sacrifice", "selesnya_sanctuary", sacrificeBounceLand)
	Register("sacrifice", "boros_garrison", sacrificeBounceLand)

	Register("cycle", "peer_into_the_abyss", cyclePeerIntoTheAbyss)
}

// castPrimevalTitan resolves onto the battlefield and searches the
// library for two lands, putting them onto the battlefield too (search
// twice, fanning out over each choice independently so a dominated first
// pick doesn't foreclose a better second pick), then marks the game done:
// Primeval Titan resolving is the goal this engine searches for, and
// nothing past it matters.
func castPrimevalTitan(s state.State, cat *catalog.Catalog) state.Set {
	s = s.ResolveAsPermanent("Primeval Titan")
	s = s.AppendToLastLine("search for two lands")
	first := s.FetchToBattlefield(cat, catalog.Entry.IsLand)
	second := first.FlatMap(func(st state.State) state.Set {
		return st.FetchToBattlefield(cat, catalog.Entry.IsLand)
	})
	return second.FlatMap(func(st state.State) state.Set {
		return state.NewSet(st.MarkDone())
	})
}

// castAmuletOfVigor resolves onto the battlefield with no further effect;
// its untap-on-ETB static ability is checked directly by Play for every
// tapped land, not implemented as a cast-time trigger here.
func castAmuletOfVigor(s state.State, cat *catalog.Catalog) state.Set {
	return state.NewSet(s.ResolveAsPermanent("Amulet of Vigor"))
}

// castExplore draws a card and, if the drawn card is a land, allows an
// extra land drop this turn. LandDrops counts the drops already used, so
// granting one more is done by decrementing it. A nonland draw grants
// nothing further.
func castExplore(s state.State, cat *catalog.Catalog) state.Set {
	drawn := s.Grab()
	return drawn.FlatMap(func(st state.State) state.Set {
		top, ok := peekLastDrawnIsLand(st, cat)
		if ok && top {
			st.LandDrops--
			st = st.AppendToLastLine("Explore revealed a land, extra land drop granted")
		} else {
			st = st.AppendToLastLine("Explore revealed a nonland, no extra land drop")
		}
		return state.NewSet(st)
	})
}

func peekLastDrawnIsLand(s state.State, cat *catalog.Catalog) (bool, bool) {
	if len(s.Hand) == 0 {
		return false, false
	}
	last := s.Hand[len(s.Hand)-1]
	entry, ok := cat.Get(last)
	if !ok {
		return false, false
	}
	return entry.IsLand(), true
}

// ancientStirringsRevealCount is how many cards Ancient Stirrings looks
// at off the top of the library before choosing.
const ancientStirringsRevealCount = 5

// castAncientStirrings reveals the top five cards of the library and puts
// a colorless card among them into hand — colorless meaning no colored
// mana symbols in its cost, land or not, the archetype's colorless-toolbox
// pattern.
func castAncientStirrings(s state.State, cat *catalog.Catalog) state.Set {
	s = s.AppendToLastLine("Ancient Stirrings digs for a colorless card")
	return s.RevealTop(cat, ancientStirringsRevealCount, func(e catalog.Entry) bool {
		cost, err := mana.Parse(e.Cost)
		if err != nil {
			return false
		}
		return cost.W == 0 && cost.U == 0 && cost.B == 0 && cost.R == 0 && cost.G == 0
	})
}

// castSummonersPact searches for a green creature, puts it into hand, and
// incurs the Pact's deferred cost: the next turn's upkeep must pay {2}{G}
// or the game cannot continue (modeled as a debt that PassTurn pays at
// upkeep; a branch that cannot pay it dies).
func castSummonersPact(s state.State, cat *catalog.Catalog) state.Set {
	s = s.AppendToLastLine("Summoner's Pact searches for a green creature")
	s = s.IncurDebt(mana.Mana{G: 1, Total: 2})
	return s.Fetch(cat, func(e catalog.Entry) bool {
		if e.IsLand() {
			return false
		}
		cost, err := mana.Parse(e.Cost)
		if err != nil {
			return false
		}
		return e.HasType(types.TypeCreature) && cost.G > 0
	})
}

// sacrificeBounceLand returns a land from the battlefield to hand, the
// shared effect behind every Karoo-style bounce land in the catalog.
func sacrificeBounceLand(s state.State, cat *catalog.Catalog) state.Set {
	return s.BounceLand(cat, catalog.Entry.IsLand)
}

// cyclePeerIntoTheAbyss mills two cards in addition to the draw every
// cycled card gets, flavoring the card's "look to the abyss" cycling text.
func cyclePeerIntoTheAbyss(s state.State, cat *catalog.Catalog) state.Set {
	return s.Mill(2)
}
