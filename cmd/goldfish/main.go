// Command goldfish brute-force goldfishes a deck: for each named deck (or
// every deck file in the default directory), it runs many independent
// trials searching for the earliest turn a goal card reaches the
// battlefield, and reports a per-turn hit-rate summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/mtgsim/goldfish/internal/logger"
	"github.com/mtgsim/goldfish/pkg/catalog"
	"github.com/mtgsim/goldfish/pkg/deck"
	"github.com/mtgsim/goldfish/pkg/effects"
	"github.com/mtgsim/goldfish/pkg/results"
	"github.com/mtgsim/goldfish/pkg/runner"
	"github.com/mtgsim/goldfish/pkg/simulate"
	"github.com/mtgsim/goldfish/pkg/state"
)

const defaultDeckDir = "decks"
const defaultResultsDir = "results"

func main() {
	var (
		ntrials    = flag.Int("ntrials", 100, "number of trials to run per deck")
		jobs       = flag.Int("jobs", 1, "number of trials to run concurrently")
		logLevel   = flag.String("log", "META", "log level: META, TURN, LINE, or CARD")
		debugFlag  = flag.String("debug", "", "run until a solution is found (optionally one that used this card, e.g. -debug=\"Amulet of Vigor\"), then print its transcript instead of aggregating")
		resultsOut = flag.Bool("results", false, "print the confidence-interval aggregate from prior runs' result files instead of simulating")
		resultsDir = flag.String("resultsdir", defaultResultsDir, "directory holding per-deck result files (read in -results mode, appended to otherwise)")
		goal       = flag.String("goal", "Primeval Titan", "name of the card whose earliest turn onto the battlefield is being searched for")
		maxTurn    = flag.Int("maxturn", 15, "give up searching a trial after this many turns")
		maxStates  = flag.Int("maxstates", 200000, "abort a trial as overflowed after exploring this many states")
		overlay    = flag.String("catalog", "", "path to a JSON catalog overlay file")
	)
	flag.Parse()
	debugRequested := isFlagPassed("debug")

	logger.SetLogLevel(logger.ParseLogLevel(*logLevel))

	cat := catalog.Load()
	if *overlay != "" {
		loaded, err := catalog.LoadFile(*overlay)
		if err != nil {
			fmt.Fprintf(os.Stderr, "goldfish: %v\n", err)
			os.Exit(1)
		}
		cat = loaded
	}

	deckPaths := flag.Args()
	decks, err := loadDecks(deckPaths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "goldfish: %v\n", err)
		os.Exit(1)
	}
	if len(decks) == 0 {
		fmt.Fprintln(os.Stderr, "goldfish: no decks to simulate")
		os.Exit(1)
	}

	if *resultsOut {
		if err := printAggregate(*resultsDir, decks); err != nil {
			fmt.Fprintf(os.Stderr, "goldfish: %v\n", err)
			os.Exit(1)
		}
		return
	}

	handlers := effects.NewRegistry()

	if debugRequested {
		runDebug(debugOptions{
			Deck:      decks[0],
			Catalog:   cat,
			Handlers:  handlers,
			Goal:      *goal,
			MaxTurn:   *maxTurn,
			MaxStates: *maxStates,
			Card:      *debugFlag,
		})
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var reports []results.Report

	for _, d := range decks {
		select {
		case <-ctx.Done():
			fmt.Fprintln(os.Stderr, "goldfish: interrupted")
			os.Exit(130)
		default:
		}

		tasks := make([]runner.Task, *ntrials)
		for i := 0; i < *ntrials; i++ {
			tasks[i] = runner.Task{
				Index: i,
				Opts: simulate.Options{
					Deck:      d,
					Catalog:   cat,
					Handlers:  handlers,
					Goal:      *goal,
					MaxTurn:   *maxTurn,
					MaxStates: *maxStates,
					OnThePlay: true,
				},
			}
		}

		records := runner.Run(tasks, *jobs)
		report := results.Summarize(d.Name, records)
		reports = append(reports, report)

		if err := appendResults(*resultsDir, d.Name, records); err != nil {
			fmt.Fprintf(os.Stderr, "goldfish: %v\n", err)
			os.Exit(1)
		}
	}

	for _, r := range results.SortByDeckName(reports) {
		results.Print(os.Stdout, r)
	}
}

func isFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func loadDecks(paths []string) ([]deck.Deck, error) {
	if len(paths) == 0 {
		return deck.LoadDir(defaultDeckDir)
	}
	var decks []deck.Deck
	for _, p := range paths {
		d, err := deck.Load(p)
		if err != nil {
			return nil, err
		}
		decks = append(decks, d)
	}
	return decks, nil
}

func appendResults(dir, deckName string, records []results.Record) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating results directory: %w", err)
	}
	path := filepath.Join(dir, deckName+".csv")
	w, err := results.NewWriter(path)
	if err != nil {
		return err
	}
	defer w.Close()
	for _, r := range records {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// printAggregate reads each deck's prior result file from dir and prints
// the confidence-interval summary, without running any new trials.
func printAggregate(dir string, decks []deck.Deck) error {
	var reports []results.Report
	for _, d := range decks {
		path := filepath.Join(dir, d.Name+".csv")
		records, err := results.ReadFile(path, d.Name)
		if err != nil {
			return err
		}
		reports = append(reports, results.Summarize(d.Name, records))
	}
	for _, r := range results.SortByDeckName(reports) {
		results.Print(os.Stdout, r)
	}
	return nil
}

type debugOptions struct {
	Deck      deck.Deck
	Catalog   *catalog.Catalog
	Handlers  state.HandlerTable
	Goal      string
	MaxTurn   int
	MaxStates int
	Card      string
}

// runDebug keeps simulating fresh trials of a single deck until one finds
// the goal (optionally one whose transcript mentions Card), then prints
// its annotated play-by-play transcript to stdout and returns. It does
// not bound the number of attempts: a deck that can never reach the goal
// under these constraints runs forever, same as -ntrials would simply
// never find a hit.
func runDebug(opts debugOptions) {
	rnd := rand.New(rand.NewSource(1))
	for attempt := 1; ; attempt++ {
		record := simulate.Run(simulate.Options{
			Deck:      opts.Deck,
			Catalog:   opts.Catalog,
			Handlers:  opts.Handlers,
			Goal:      opts.Goal,
			MaxTurn:   opts.MaxTurn,
			MaxStates: opts.MaxStates,
			OnThePlay: true,
			Rand:      rnd,
		})
		if record.Overflowed || record.Turn == 0 {
			continue
		}
		if opts.Card != "" && !transcriptMentions(record.Notes, opts.Card) {
			continue
		}
		fmt.Printf("%s: found %s on turn %d after %d attempt(s)\n", opts.Deck.Name, opts.Goal, record.Turn, attempt)
		for _, line := range record.Notes {
			fmt.Println(line)
		}
		return
	}
}

func transcriptMentions(notes []string, card string) bool {
	for _, line := range notes {
		if strings.Contains(line, card) {
			return true
		}
	}
	return false
}
