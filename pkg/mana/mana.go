// Package mana implements the five-color mana algebra: an immutable pool of
// colored and generic mana, and the nondeterministic payment operation used
// to spend it against a card's cost.
package mana

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mtgsim/goldfish/pkg/types"
)

// Mana is an immutable multiset of WUBRG mana plus an unlabeled generic
// total. Zero value is the empty pool.
type Mana struct {
	W, U, B, R, G int
	Total         int
}

var costToken = regexp.MustCompile(`\{([^}]+)\}`)

// Parse reads a mana cost string such as "{2}{G}{G}" or "1GG" into a Mana
// value. Braces are optional; bare digit-and-letter runs are also accepted
// so catalog entries can be written either way.
func Parse(cost string) (Mana, error) {
	var m Mana
	tokens := costToken.FindAllStringSubmatch(cost, -1)
	if tokens == nil {
		return parseBare(cost)
	}
	for _, tok := range tokens {
		if err := m.addSymbol(tok[1]); err != nil {
			return Mana{}, err
		}
	}
	return m, nil
}

func parseBare(cost string) (Mana, error) {
	var m Mana
	digits := ""
	for _, r := range cost {
		switch r {
		case 'W', 'U', 'B', 'R', 'G':
			if err := m.addSymbol(string(r)); err != nil {
				return Mana{}, err
			}
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			digits += string(r)
		default:
			return Mana{}, fmt.Errorf("mana: unrecognized symbol %q in cost %q", r, cost)
		}
	}
	if digits != "" {
		n, err := strconv.Atoi(digits)
		if err != nil {
			return Mana{}, fmt.Errorf("mana: bad generic amount in cost %q: %w", cost, err)
		}
		m.Total += n
	}
	return m, nil
}

func (m *Mana) addSymbol(sym string) error {
	switch sym {
	case "W":
		m.W++
	case "U":
		m.U++
	case "B":
		m.B++
	case "R":
		m.R++
	case "G":
		m.G++
	default:
		n, err := strconv.Atoi(sym)
		if err != nil {
			return fmt.Errorf("mana: unrecognized symbol %q", sym)
		}
		m.Total += n
	}
	return nil
}

// Colored returns the colored component for the requested color.
func (m Mana) Colored(c types.ManaType) int {
	switch c {
	case types.White:
		return m.W
	case types.Blue:
		return m.U
	case types.Black:
		return m.B
	case types.Red:
		return m.R
	case types.Green:
		return m.G
	default:
		return 0
	}
}

// Add returns the pool resulting from combining two pools, color by color.
func (m Mana) Add(other Mana) Mana {
	return Mana{
		W:     m.W + other.W,
		U:     m.U + other.U,
		B:     m.B + other.B,
		R:     m.R + other.R,
		G:     m.G + other.G,
		Total: m.Total + other.Total,
	}
}

// Count is the number of mana this pool represents, colored plus generic.
func (m Mana) Count() int {
	return m.W + m.U + m.B + m.R + m.G + m.Total
}

// Empty reports whether the pool holds no mana at all.
func (m Mana) Empty() bool {
	return m.Count() == 0
}

// LessEq is the coordinate-wise partial order: m <= other iff every one of
// m's colored counts and its total is no greater than other's.
func (m Mana) LessEq(other Mana) bool {
	return m.W <= other.W && m.U <= other.U && m.B <= other.B &&
		m.R <= other.R && m.G <= other.G && m.Total <= other.Total
}

// GreaterEq is the mirror of LessEq.
func (m Mana) GreaterEq(other Mana) bool {
	return other.LessEq(m)
}

// CanPay reports whether cost can be paid out of m using some assignment of
// colored mana to generic requirements — i.e. whether Minus(cost) is
// nonempty. It does not enumerate the ways.
func (m Mana) CanPay(cost Mana) bool {
	if m.W < cost.W || m.U < cost.U || m.B < cost.B || m.R < cost.R || m.G < cost.G {
		return false
	}
	spareColored := (m.W - cost.W) + (m.U - cost.U) + (m.B - cost.B) + (m.R - cost.R) + (m.G - cost.G)
	return m.Total+spareColored >= cost.Total
}

// Minus enumerates every distinct way to pay cost out of m, returning one
// Mana value (the pool remaining after payment) per distinct assignment of
// spare colored mana to cost's generic requirement. Returns nil if cost
// cannot be paid. Colored requirements are paid first and are never
// ambiguous, only the generic portion of the cost can be paid by more
// than one leftover
// color, and each distinct multiset of colors spent on it is a distinct
// resulting state.
func (m Mana) Minus(cost Mana) []Mana {
	if m.W < cost.W || m.U < cost.U || m.B < cost.B || m.R < cost.R || m.G < cost.G {
		return nil
	}
	afterColor := Mana{
		W: m.W - cost.W,
		U: m.U - cost.U,
		B: m.B - cost.B,
		R: m.R - cost.R,
		G: m.G - cost.G,
		Total: m.Total,
	}

	generic := cost.Total
	if generic <= afterColor.Total {
		remaining := afterColor
		remaining.Total -= generic
		return []Mana{remaining}
	}
	fromColorNeeded := generic - afterColor.Total
	spare := afterColor.spareColorCounts()
	combos := combinationsSumming(spare, fromColorNeeded)
	if len(combos) == 0 {
		return nil
	}
	out := make([]Mana, 0, len(combos))
	for _, spend := range combos {
		result := Mana{
			W: afterColor.W - spend[0],
			U: afterColor.U - spend[1],
			B: afterColor.B - spend[2],
			R: afterColor.R - spend[3],
			G: afterColor.G - spend[4],
			Total: 0,
		}
		out = append(out, result)
	}
	return out
}

func (m Mana) spareColorCounts() [5]int {
	return [5]int{m.W, m.U, m.B, m.R, m.G}
}

// combinationsSumming enumerates every distinct way to draw exactly need
// units total from the five independent pools in spare, returning each way
// as a [5]int of amounts drawn from each pool.
func combinationsSumming(spare [5]int, need int) [][5]int {
	var out [][5]int
	var rec func(idx, remaining int, acc [5]int)
	rec = func(idx, remaining int, acc [5]int) {
		if idx == len(spare) {
			if remaining == 0 {
				out = append(out, acc)
			}
			return
		}
		maxTake := spare[idx]
		if maxTake > remaining {
			maxTake = remaining
		}
		for take := 0; take <= maxTake; take++ {
			next := acc
			next[idx] = take
			rec(idx+1, remaining-take, next)
		}
	}
	rec(0, need, [5]int{})
	return out
}

// String renders the pool in the conventional {N}{W}{U}{B}{R}{G} order,
// omitting zero components, e.g. "{2}{G}{G}".
func (m Mana) String() string {
	var b strings.Builder
	if m.Total > 0 {
		fmt.Fprintf(&b, "{%d}", m.Total)
	}
	order := [5]struct {
		sym string
		n   int
	}{{"W", m.W}, {"U", m.U}, {"B", m.B}, {"R", m.R}, {"G", m.G}}
	for _, c := range order {
		for i := 0; i < c.n; i++ {
			b.WriteString("{" + c.sym + "}")
		}
	}
	if b.Len() == 0 {
		return "{0}"
	}
	return b.String()
}
