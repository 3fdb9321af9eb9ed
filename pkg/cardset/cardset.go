// Package cardset provides an ordered multiset of card names — the shape
// used for a hand, a library, or a battlefield — along with the filtered
// views the search engine's handlers query constantly (lands, creatures,
// basics, …) and the best-options dominance filter used to prune
// equivalent-or-worse choices out of a fan-out.
package cardset

import (
	"sort"

	"github.com/mtgsim/goldfish/pkg/catalog"
	"github.com/mtgsim/goldfish/pkg/types"
)

// Set is an ordered multiset of card names. It is a plain slice so that
// states built from it remain cheap, comparable-by-value structures; order
// matters only for determinism of iteration, never for equality (two sets
// with the same cards in different orders are sorted before comparison —
// see Canonical).
type Set []string

// Add returns a new set with name appended.
func (s Set) Add(name string) Set {
	out := make(Set, len(s), len(s)+1)
	copy(out, s)
	return append(out, name)
}

// Remove returns a new set with the first occurrence of name removed. ok
// is false if name was not present and the set is returned unchanged.
func (s Set) Remove(name string) (Set, bool) {
	for i, c := range s {
		if c == name {
			out := make(Set, 0, len(s)-1)
			out = append(out, s[:i]...)
			out = append(out, s[i+1:]...)
			return out, true
		}
	}
	return s, false
}

// Contains reports whether name appears at least once.
func (s Set) Contains(name string) bool {
	for _, c := range s {
		if c == name {
			return true
		}
	}
	return false
}

// Count returns how many copies of name are present.
func (s Set) Count(name string) int {
	n := 0
	for _, c := range s {
		if c == name {
			n++
		}
	}
	return n
}

// Canonical returns a sorted copy, used as the representation fed into a
// State's hash/equality so that hand/battlefield order never affects
// deduplication.
func (s Set) Canonical() Set {
	out := make(Set, len(s))
	copy(out, s)
	sort.Strings(out)
	return out
}

// filter returns the subset of s whose catalog entry satisfies pred.
// Missing catalog entries are a fatal configuration error elsewhere (see
// internal/logger.FatalCatalogMiss at the handler call sites); this
// internal helper assumes every name in s resolves.
func (s Set) filter(cat *catalog.Catalog, pred func(catalog.Entry) bool) Set {
	var out Set
	for _, name := range s {
		e, ok := cat.Get(name)
		if !ok {
			continue
		}
		if pred(e) {
			out = append(out, name)
		}
	}
	return out
}

// Lands returns every land (basic or nonbasic) in s.
func (s Set) Lands(cat *catalog.Catalog) Set {
	return s.filter(cat, catalog.Entry.IsLand)
}

// BasicLands returns every basic land in s.
func (s Set) BasicLands(cat *catalog.Catalog) Set {
	return s.filter(cat, func(e catalog.Entry) bool { return e.HasType(types.TypeBasic) })
}

// Creatures returns every creature in s.
func (s Set) Creatures(cat *catalog.Catalog) Set {
	return s.filter(cat, func(e catalog.Entry) bool { return e.HasType(types.TypeCreature) })
}

// CreaturesOrLands returns every card that is either a creature or a land.
func (s Set) CreaturesOrLands(cat *catalog.Catalog) Set {
	return s.filter(cat, func(e catalog.Entry) bool { return e.IsLand() || e.HasType(types.TypeCreature) })
}

// GreenCreatures returns every creature whose cost includes green mana (a
// proxy for "creature this deck can reasonably want").
func (s Set) GreenCreatures(cat *catalog.Catalog) Set {
	return s.filter(cat, func(e catalog.Entry) bool {
		if !e.HasType(types.TypeCreature) {
			return false
		}
		cost, err := parseCostSafe(e.Cost)
		if err != nil {
			return false
		}
		return cost.G > 0
	})
}

// Permanents returns every card that stays on the battlefield once it
// resolves: lands, creatures, artifacts, enchantments, planeswalkers.
func (s Set) Permanents(cat *catalog.Catalog) Set {
	return s.filter(cat, func(e catalog.Entry) bool {
		return e.IsLand() || e.HasType(types.TypeCreature) || e.HasType(types.TypeArtifact) ||
			e.HasType(types.TypeEnchantment) || e.HasType(types.TypePlaneswalker)
	})
}

// Colorless returns every card with no colored mana symbols in its cost
// (lands are excluded; this view is about spells).
func (s Set) Colorless(cat *catalog.Catalog) Set {
	return s.filter(cat, func(e catalog.Entry) bool {
		if e.IsLand() {
			return false
		}
		cost, err := parseCostSafe(e.Cost)
		if err != nil {
			return false
		}
		return cost.W == 0 && cost.U == 0 && cost.B == 0 && cost.R == 0 && cost.G == 0
	})
}

// Trinkets returns every nonland artifact costing one or zero mana, the
// Trinket Mage search pool in the archetype this engine models.
func (s Set) Trinkets(cat *catalog.Catalog) Set {
	return s.filter(cat, func(e catalog.Entry) bool {
		if e.IsLand() || !e.HasType(types.TypeArtifact) {
			return false
		}
		cost, err := parseCostSafe(e.Cost)
		if err != nil {
			return false
		}
		return cost.Count() <= 1
	})
}

// Zeros returns every card with zero total mana value, Moxen and the like.
func (s Set) Zeros(cat *catalog.Catalog) Set {
	return s.filter(cat, func(e catalog.Entry) bool {
		if e.Cost == "" {
			return false
		}
		cost, err := parseCostSafe(e.Cost)
		if err != nil {
			return false
		}
		return cost.Count() == 0
	})
}
