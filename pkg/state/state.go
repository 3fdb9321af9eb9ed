// Package state implements the immutable game-state value at the core of
// the search engine, its deduplicating set container, and the primitive
// operators every card handler is built from. Every operator is a pure
// function from one State to a StateSet: illegal preconditions fan out to
// zero successors rather than returning an error.
package state

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/mtgsim/goldfish/pkg/cardset"
	"github.com/mtgsim/goldfish/pkg/mana"
)

// Suspended is one card waiting out its suspend counters.
type Suspended struct {
	Name     string
	Counters int
}

// State is an immutable snapshot of one possible game line. Every operator
// returns a modified copy; the receiver is never mutated. id is a debug
// identifier only — it is excluded from equality and hashing, exactly like
// Notes (the transcript).
type State struct {
	Battlefield cardset.Set
	// Tapped is the subset of Battlefield already tapped for mana this
	// turn; PassTurn clears it during the untap step. Tracking this
	// separately (rather than letting TapOut be repeated at will) keeps
	// mana production finite within a turn — without it the BFS fixed
	// point used by pkg/search's turn driver would never converge, since
	// tapping the same land twice always produces a "new" state with a
	// bigger pool.
	Tapped cardset.Set

	Hand      cardset.Set
	Library   cardset.Set
	Graveyard cardset.Set

	Pool mana.Mana
	Debt mana.Mana

	LandDrops  int
	SpellsCast int
	Suspended  []Suspended

	Turn       int
	OnThePlay  bool
	Done       bool
	Overflowed bool

	Notes []string

	id       uuid.UUID
	handlers HandlerTable
}

// New builds the turn-zero starting state: an opening hand already drawn
// out of Library, an empty battlefield, and on-the-play bookkeeping.
// handlers is the compile-time effect registry (pkg/effects); it is carried
// on every descendant state but, like id, never consulted by Equal or Hash.
func New(opening cardset.Set, library cardset.Set, onThePlay bool, handlers HandlerTable) State {
	return State{
		Hand:      opening,
		Library:   library,
		OnThePlay: onThePlay,
		Turn:      0,
		id:        uuid.New(),
		handlers:  handlers,
	}
}

// clone returns a value copy with a fresh debug id; every operator starts
// from this instead of mutating the receiver.
func (s State) clone() State {
	next := s
	next.id = uuid.New()
	// Slices need a shallow copy so appends in the copy never alias the
	// original's backing array.
	next.Battlefield = append(cardset.Set(nil), s.Battlefield...)
	next.Tapped = append(cardset.Set(nil), s.Tapped...)
	next.Hand = append(cardset.Set(nil), s.Hand...)
	next.Library = append(cardset.Set(nil), s.Library...)
	next.Graveyard = append(cardset.Set(nil), s.Graveyard...)
	next.Suspended = append([]Suspended(nil), s.Suspended...)
	next.Notes = append([]string(nil), s.Notes...)
	return next
}

// Note appends a transcript line, used by every handler to narrate what it
// did ("comma-appended to the current line" applies at the
// call site, not here — Note always starts a new line; callers that want
// to extend the current line do so by mutating the last element before
// calling Note, or by using AppendToLastLine).
func (s State) Note(line string) State {
	next := s.clone()
	next.Notes = append(next.Notes, line)
	return next
}

// AppendToLastLine comma-appends text to the most recent transcript line,
// or starts a new line if there is none yet — this is how intra-turn
// actions accumulate onto one "---- turn N" line.
func (s State) AppendToLastLine(text string) State {
	next := s.clone()
	if len(next.Notes) == 0 {
		next.Notes = append(next.Notes, text)
		return next
	}
	last := len(next.Notes) - 1
	next.Notes[last] = next.Notes[last] + ", " + text
	return next
}

// MarkDone marks the state as having reached its goal. NextStates
// short-circuits on a done state, returning it unchanged, so no further
// branching happens past the goal card resolving.
func (s State) MarkDone() State {
	next := s.clone()
	next.Done = true
	return next
}

// id exposed for debug logging only (internal/logger correlates lines by
// this value); never consulted by Equal or Hash.
func (s State) ID() uuid.UUID { return s.id }

// Equal reports whether two states represent the same game line, ignoring
// debug identity and the transcript (both excluded from equality).
func (s State) Equal(other State) bool {
	return s.Hash() == other.Hash()
}

// Hash returns a deduplication key canonicalizing battlefield/hand/
// graveyard order so that two states differing only in the order cards were
// drawn or played compare equal. Library order is kept as is, since it
// decides every later draw.
func (s State) Hash() string {
	var b strings.Builder
	writeSet := func(label string, set cardset.Set) {
		b.WriteString(label)
		b.WriteByte(':')
		for _, name := range set.Canonical() {
			b.WriteString(name)
			b.WriteByte(',')
		}
		b.WriteByte(';')
	}
	writeSet("bf", s.Battlefield)
	writeSet("tapped", s.Tapped)
	writeSet("hand", s.Hand)
	b.WriteString("lib:")
	for _, name := range s.Library {
		b.WriteString(name)
		b.WriteByte(',')
	}
	b.WriteByte(';')
	writeSet("gy", s.Graveyard)
	b.WriteString(s.Pool.String())
	b.WriteString(s.Debt.String())
	for _, susp := range sortedSuspended(s.Suspended) {
		b.WriteString(susp.Name)
		b.WriteByte('@')
		b.WriteString(itoa(susp.Counters))
		b.WriteByte(',')
	}
	b.WriteByte(';')
	b.WriteString(itoa(s.LandDrops))
	b.WriteByte(',')
	b.WriteString(itoa(s.SpellsCast))
	b.WriteByte(',')
	b.WriteString(itoa(s.Turn))
	if s.OnThePlay {
		b.WriteByte('P')
	}
	if s.Done {
		b.WriteByte('D')
	}
	return b.String()
}

func sortedSuspended(in []Suspended) []Suspended {
	out := append([]Suspended(nil), in...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Counters < out[j].Counters
	})
	return out
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits [20]byte
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		digits[i] = '-'
	}
	return string(digits[i:])
}
