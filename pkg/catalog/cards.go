package catalog

import "github.com/mtgsim/goldfish/pkg/types"

// builtinCards is the compiled card table for the Amulet Titan archetype:
// basic lands, bounce lands, the accelerants that make that deck's
// goldfish lines fast, and the titan itself as the goal card.
var builtinCards = []Entry{
	{
		Name:         "Forest",
		Slug:         "forest",
		Types:        []types.CardType{types.TypeLand, types.TypeBasic},
		TapsFor:      []types.ManaType{types.Green},
		EntersTapped: types.TappedFalse,
	},
	{
		Name:         "Island",
		Slug:         "island",
		Types:        []types.CardType{types.TypeLand, types.TypeBasic},
		TapsFor:      []types.ManaType{types.Blue},
		EntersTapped: types.TappedFalse,
	},
	{
		Name:          "Simic Growth Chamber",
		Slug:          "simic_growth_chamber",
		Types:         []types.CardType{types.TypeLand},
		TapsFor:       []types.ManaType{types.Green, types.Blue},
		EntersTapped:  types.TappedTrue,
		SacrificeVerb: "bounce_land",
	},
	{
		Name:          "Selesnya Sanctuary",
		Slug:          "selesnya_sanctuary",
		Types:         []types.CardType{types.TypeLand},
		TapsFor:       []types.ManaType{types.Green, types.White},
		EntersTapped:  types.TappedTrue,
		SacrificeVerb: "bounce_land",
	},
	{
		Name:          "Boros Garrison",
		Slug:          "boros_garrison",
		Types:         []types.CardType{types.TypeLand},
		TapsFor:       []types.ManaType{types.Red, types.White},
		EntersTapped:  types.TappedTrue,
		SacrificeVerb: "bounce_land",
	},
	{
		Name:         "Khalni Garden",
		Slug:         "khalni_garden",
		Types:        []types.CardType{types.TypeLand},
		TapsFor:      []types.ManaType{types.Green},
		EntersTapped: types.TappedTrue,
	},
	{
		Name:         "Bojuka Bog",
		Slug:         "bojuka_bog",
		Types:        []types.CardType{types.TypeLand},
		TapsFor:      []types.ManaType{types.Black},
		EntersTapped: types.TappedTrue,
	},
	{
		Name:         "Radiant Fountain",
		Slug:         "radiant_fountain",
		Types:        []types.CardType{types.TypeLand},
		TapsFor:      []types.ManaType{types.Colorless},
		EntersTapped: types.TappedFalse,
	},
	{
		Name:         "Gemstone Mine",
		Slug:         "gemstone_mine",
		Types:        []types.CardType{types.TypeLand},
		TapsFor:      []types.ManaType{types.White, types.Blue, types.Black, types.Red, types.Green},
		EntersTapped: types.TappedFalse,
	},
	{
		Name:         "Amulet of Vigor",
		Slug:         "amulet_of_vigor",
		Types:        []types.CardType{types.TypeArtifact},
		Cost:         "{1}",
		EntersTapped: types.TappedFalse,
	},
	{
		Name: "Explore",
		Slug: "explore",
		Types: []types.CardType{types.TypeSorcery},
		Cost: "{1}{G}",
	},
	{
		Name: "Ancient Stirrings",
		Slug: "ancient_stirrings",
		Types: []types.CardType{types.TypeSorcery},
		Cost: "{G}",
	},
	{
		Name: "Summoner's Pact",
		Slug: "summoners_pact",
		Types: []types.CardType{types.TypeInstant},
		Cost: "{G}",
	},
	{
		Name:      "Peer into the Abyss",
		Slug:      "peer_into_the_abyss",
		Types:     []types.CardType{types.TypeSorcery},
		Cost:      "{4}{B}{B}",
		CycleCost: "{2}",
		CycleVerb: "cycle_peer_into_the_abyss",
	},
	{
		Name:  "Primeval Titan",
		Slug:  "primeval_titan",
		Types: []types.CardType{types.TypeCreature},
		Cost:  "{4}{G}{G}",
	},
}
