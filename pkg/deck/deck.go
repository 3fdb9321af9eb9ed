// Package deck reads a decklist file and shuffles it into a library.
package deck

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mtgsim/goldfish/pkg/cardset"
)

// Deck is a named, ordered list of card names — one entry per physical
// copy, so a 4-of appears four times — ready to be shuffled into a
// library.
type Deck struct {
	Cards cardset.Set
	Name  string
}

// ParseError describes a malformed line in a deck file, identified by its
// 1-based line number and the offending line content, reported fatally at
// startup.
type ParseError struct {
	File string
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v (line was %q)", e.File, e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads a deck file in the "<count> <name>" format: one entry per
// line, blank lines skipped, "#" starts a comment that runs to the end of
// the line (a whole-line comment or a trailing one). The deck's Name
// defaults to the file's base name without extension.
func Load(path string) (Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return Deck{}, fmt.Errorf("deck: opening %s: %w", path, err)
	}
	defer f.Close()

	var cards cardset.Set
	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := stripComment(raw)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, " ", 2)
		if len(parts) != 2 {
			return Deck{}, &ParseError{File: path, Line: lineNo, Text: raw, Err: fmt.Errorf("expected \"<count> <name>\"")}
		}
		count, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return Deck{}, &ParseError{File: path, Line: lineNo, Text: raw, Err: fmt.Errorf("bad count: %w", err)}
		}
		name := strings.TrimSpace(parts[1])
		if name == "" {
			return Deck{}, &ParseError{File: path, Line: lineNo, Text: raw, Err: fmt.Errorf("missing card name")}
		}
		for i := 0; i < count; i++ {
			cards = cards.Add(name)
		}
	}
	if err := scanner.Err(); err != nil {
		return Deck{}, fmt.Errorf("deck: reading %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Deck{Cards: cards, Name: name}, nil
}

func stripComment(line string) string {
	if idx := strings.IndexByte(line, '#'); idx != -1 {
		return line[:idx]
	}
	return line
}

// Shuffle returns a new Deck with Cards in a random order, grounded on the
// teacher's math/rand-based Fisher-Yates shuffle.
func (d Deck) Shuffle(r *rand.Rand) Deck {
	shuffled := make(cardset.Set, len(d.Cards))
	copy(shuffled, d.Cards)
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return Deck{Cards: shuffled, Name: d.Name}
}

// NewRand builds a time-seeded *rand.Rand for callers that don't want to
// manage their own source.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Draw splits off the top n cards as an opening hand, returning the hand
// and the remaining library in draw order.
func (d Deck) Draw(n int) (hand cardset.Set, library cardset.Set) {
	if n > len(d.Cards) {
		n = len(d.Cards)
	}
	hand = append(cardset.Set(nil), d.Cards[:n]...)
	library = append(cardset.Set(nil), d.Cards[n:]...)
	return hand, library
}

// Size is the number of cards in the deck.
func (d Deck) Size() int {
	return len(d.Cards)
}

// LoadDir loads every deck file in dir (non-recursive), used as the
// default "no positional deck names given" behavior of the CLI. Every
// file is returned, since the goldfish runner wants to run a batch of
// named decks rather than pick a single one.
func LoadDir(dir string) ([]Deck, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("deck: reading directory %s: %w", dir, err)
	}
	var decks []Deck
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		d, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		decks = append(decks, d)
	}
	return decks, nil
}
