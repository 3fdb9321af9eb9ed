// Package catalog holds the read-only card data table the search engine
// consults for every operator: mana costs, type-line predicates, and the
// bookkeeping a few special lands and spells need (cycling, sacrifice
// triggers, alternate taps-for choices, enters-tapped rules).
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mtgsim/goldfish/pkg/mana"
	"github.com/mtgsim/goldfish/pkg/types"
)

// Entry is one card's static data. Cost is the mana::Parse-able cost
// string, empty for lands. TapsFor lists every mana a permanent can
// produce when tapped for mana; a land with more than one option (a
// bounce land, a filter land) lists all of them and the engine fans out
// over the choice.
type Entry struct {
	Name    string
	Slug    string
	Types   []types.CardType
	Cost    string
	TapsFor []types.ManaType

	// EntersTapped governs whether a permanent enters the battlefield
	// tapped: always (TappedTrue) or never (TappedFalse). TappedCheck marks
	// lands whose tapped-ness depends on board state; state.Play treats it
	// like TappedFalse and asks no handler.
	EntersTapped types.Tapped

	// CycleCost and CycleVerb describe a cycling ability, if any;
	// CycleVerb is empty for cards that can't be cycled.
	CycleCost string
	CycleVerb string

	// SacrificeVerb describes a sacrifice-for-effect ability (e.g. a
	// bounce land's "sacrifice: return a land to hand"); there is no
	// sacrifice cost field, so sacrificing costs no mana.
	SacrificeVerb string
}

// Catalog is an immutable, name-keyed lookup table. The zero value is
// useless; construct with Load or LoadFile.
type Catalog struct {
	byName map[string]Entry
}

// Get looks up a card by its display name. ok is false if the card is not
// in the catalog — callers must treat that as a fatal configuration error,
// never silently skip the card.
func (c *Catalog) Get(name string) (Entry, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// Size is the number of distinct cards known to the catalog.
func (c *Catalog) Size() int {
	return len(c.byName)
}

// Load builds the catalog from the built-in compiled card table.
func Load() *Catalog {
	c := &Catalog{byName: make(map[string]Entry, len(builtinCards))}
	for _, e := range builtinCards {
		c.byName[e.Name] = e
	}
	return c
}

// overlayEntry is the JSON shape accepted by LoadFile; it mirrors Entry's
// fields with string type/tapped/mana names instead of the typed enums so
// it can be authored by hand without importing this package.
type overlayEntry struct {
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Types         []string `json:"types"`
	Cost          string   `json:"cost"`
	TapsFor       []string `json:"taps_for"`
	EntersTapped  string   `json:"enters_tapped"`
	CycleCost     string   `json:"cycle_cost"`
	CycleVerb     string   `json:"cycle_verb"`
	SacrificeVerb string   `json:"sacrifice_verb"`
}

// LoadFile builds on Load, adding or overriding entries from a JSON
// overlay file. This is how a deck can introduce cards beyond the built-in
// table without recompiling the catalog package, grounded on the
// teacher's CardDB encoding/json load path.
func LoadFile(path string) (*Catalog, error) {
	c := Load()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: opening overlay %s: %w", path, err)
	}
	defer f.Close()

	var overlay []overlayEntry
	if err := json.NewDecoder(f).Decode(&overlay); err != nil {
		return nil, fmt.Errorf("catalog: decoding overlay %s: %w", path, err)
	}
	for _, oe := range overlay {
		entry, err := entryFromOverlay(oe)
		if err != nil {
			return nil, fmt.Errorf("catalog: overlay entry %q: %w", oe.Name, err)
		}
		c.byName[entry.Name] = entry
	}
	return c, nil
}

func entryFromOverlay(oe overlayEntry) (Entry, error) {
	e := Entry{
		Name:          oe.Name,
		Slug:          oe.Slug,
		Cost:          oe.Cost,
		CycleCost:     oe.CycleCost,
		CycleVerb:     oe.CycleVerb,
		SacrificeVerb: oe.SacrificeVerb,
	}
	for _, t := range oe.Types {
		e.Types = append(e.Types, types.CardType(t))
	}
	for _, m := range oe.TapsFor {
		e.TapsFor = append(e.TapsFor, types.ManaType(m))
	}
	switch oe.EntersTapped {
	case "", "false":
		e.EntersTapped = types.TappedFalse
	case "true":
		e.EntersTapped = types.TappedTrue
	case "check":
		e.EntersTapped = types.TappedCheck
	default:
		return Entry{}, fmt.Errorf("unrecognized enters_tapped value %q", oe.EntersTapped)
	}
	if e.Cost != "" {
		if _, err := mana.Parse(e.Cost); err != nil {
			return Entry{}, err
		}
	}
	return e, nil
}

// HasType reports whether the entry's type line includes t.
func (e Entry) HasType(t types.CardType) bool {
	for _, et := range e.Types {
		if et == t {
			return true
		}
	}
	return false
}

// IsLand reports whether the card is a land (including basics).
func (e Entry) IsLand() bool {
	return e.HasType(types.TypeLand) || e.HasType(types.TypeBasic)
}

// Cyclable reports whether the card has a cycling ability.
func (e Entry) Cyclable() bool {
	return e.CycleVerb != ""
}
