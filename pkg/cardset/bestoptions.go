package cardset

import (
	"github.com/mtgsim/goldfish/pkg/mana"
)

func parseCostSafe(cost string) (mana.Mana, error) {
	if cost == "" {
		return mana.Mana{}, nil
	}
	return mana.Parse(cost)
}

// dominance lists, for a reveal/tutor effect, which card names are
// strictly worse than which other names — the bounce-land/basic-land
// tradeoffs this archetype's fetch and scry effects constantly face. A
// name on the left is never worth choosing over any name on its right
// when both are available in the same reveal.
var dominance = map[string][]string{
	"Forest":           {"Simic Growth Chamber", "Selesnya Sanctuary", "Khalni Garden"},
	"Island":           {"Simic Growth Chamber", "Forest"},
	"Khalni Garden":    {"Simic Growth Chamber", "Selesnya Sanctuary"},
	"Radiant Fountain": {"Gemstone Mine", "Forest"},
}

// BestOptions prunes s down to the choices that are not strictly
// dominated by some other choice also present in s. A card with no entry
// in the dominance table is never pruned. Order is preserved among the
// survivors.
func BestOptions(s Set) Set {
	present := make(map[string]bool, len(s))
	for _, name := range s {
		present[name] = true
	}
	var out Set
	for _, name := range s {
		dominated := false
		for _, better := range dominance[name] {
			if present[better] {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, name)
		}
	}
	return out
}
