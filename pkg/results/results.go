// Package results aggregates per-simulation outcomes into a per-deck
// append log and a confidence-interval summary: a normal-approximation
// binomial proportion interval reporting win rate by turn.
package results

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
)

// Record is the outcome of one simulation trial. Notes carries the
// winning line's annotated transcript when one was found; it is not
// persisted by Writer, only used for on-demand debug printing.
type Record struct {
	Deck       string
	Turn       int
	OnThePlay  bool
	Fast       bool
	Overflowed bool
	Notes      []string
}

// Writer appends Records to a per-deck CSV file, grounded on the
// teacher's Results type's "one file of accumulated outcomes" shape.
type Writer struct {
	f *os.File
}

// NewWriter opens (creating if necessary, appending if it exists) the
// results file for a deck.
func NewWriter(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("results: opening %s: %w", path, err)
	}
	return &Writer{f: f}, nil
}

// Write appends one record as a CSV line: turn,on_the_play,fast,overflowed.
func (w *Writer) Write(r Record) error {
	_, err := fmt.Fprintf(w.f, "%d,%t,%t,%t\n", r.Turn, r.OnThePlay, r.Fast, r.Overflowed)
	return err
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	return w.f.Close()
}

// ReadFile parses a per-deck result file previously written by Writer,
// stamping deckName onto every record (the file itself carries no deck
// name). Used by the aggregate-only reporting mode to summarize trials
// from a prior run without simulating any new ones.
func ReadFile(path, deckName string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("results: opening %s: %w", path, err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		r := Record{Deck: deckName}
		if _, err := fmt.Sscanf(line, "%d,%t,%t,%t", &r.Turn, &r.OnThePlay, &r.Fast, &r.Overflowed); err != nil {
			return nil, fmt.Errorf("results: parsing %s: %w", path, err)
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("results: reading %s: %w", path, err)
	}
	return records, nil
}

// Report is the confidence-interval summary over a batch of Records for
// one deck: for each turn T, the fraction of trials that reached the goal
// by turn T or earlier, with a 95% confidence interval.
type Report struct {
	Deck        string
	Trials      int
	Overflowed  int
	PerTurn     []TurnStat
}

// TurnStat is one turn's cumulative hit rate.
type TurnStat struct {
	Turn       int
	CumulativeHits int
	Rate       float64
	Low, High  float64 // 95% confidence bounds
}

// Summarize builds a Report from a batch of records for a single deck:
// for each turn present in the data, compute the cumulative fraction of
// trials whose Turn is less than or equal to it, plus a
// normal-approximation 95% confidence
// interval on that proportion.
func Summarize(deckName string, records []Record) Report {
	report := Report{Deck: deckName, Trials: len(records)}
	if len(records) == 0 {
		return report
	}

	maxTurn := 0
	for _, r := range records {
		if r.Overflowed {
			report.Overflowed++
			continue
		}
		if r.Turn > maxTurn {
			maxTurn = r.Turn
		}
	}

	counts := make([]int, maxTurn+1)
	for _, r := range records {
		if r.Overflowed {
			continue
		}
		counts[r.Turn]++
	}

	cumulative := 0
	for t := 0; t <= maxTurn; t++ {
		cumulative += counts[t]
		rate := float64(cumulative) / float64(report.Trials)
		low, high := binomialCI95(cumulative, report.Trials)
		report.PerTurn = append(report.PerTurn, TurnStat{
			Turn:           t,
			CumulativeHits: cumulative,
			Rate:           rate,
			Low:            low,
			High:           high,
		})
	}
	return report
}

// binomialCI95 is the normal approximation to the 95% confidence interval
// of a binomial proportion (Wald interval).
func binomialCI95(hits, trials int) (low, high float64) {
	if trials == 0 {
		return 0, 0
	}
	p := float64(hits) / float64(trials)
	const z = 1.96
	margin := z * math.Sqrt(p*(1-p)/float64(trials))
	low = p - margin
	high = p + margin
	if low < 0 {
		low = 0
	}
	if high > 1 {
		high = 1
	}
	return low, high
}

// Print writes a human-readable summary table to f, one line per turn.
func Print(f *os.File, r Report) {
	fmt.Fprintf(f, "%s: %d trials (%d overflowed)\n", r.Deck, r.Trials, r.Overflowed)
	for _, ts := range r.PerTurn {
		fmt.Fprintf(f, "  turn %2d: %6.2f%% (%5.2f%%-%5.2f%%) cumulative\n",
			ts.Turn, ts.Rate*100, ts.Low*100, ts.High*100)
	}
}

// SortByDeckName returns reports sorted alphabetically by deck name, for
// a stable multi-deck summary printout.
func SortByDeckName(reports []Report) []Report {
	out := append([]Report(nil), reports...)
	sort.Slice(out, func(i, j int) bool { return out[i].Deck < out[j].Deck })
	return out
}
