package results

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriterAppendsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.csv")
	w, err := NewWriter(path)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.Write(Record{Turn: 3, OnThePlay: true, Fast: true}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "3,true,true,false\n" {
		t.Errorf("unexpected contents: %q", data)
	}
}

func TestReadFileRoundTripsWrittenRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.csv")
	w, err := NewWriter(path)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	want := []Record{
		{Turn: 3, OnThePlay: true, Fast: true},
		{Turn: 0, Overflowed: true},
	}
	for _, r := range want {
		if err := w.Write(r); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := ReadFile(path, "amulet-titan")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i, r := range got {
		if r.Deck != "amulet-titan" {
			t.Errorf("record %d: expected Deck stamped, got %q", i, r.Deck)
		}
		if r.Turn != want[i].Turn || r.OnThePlay != want[i].OnThePlay || r.Fast != want[i].Fast || r.Overflowed != want[i].Overflowed {
			t.Errorf("record %d: got %+v, want fields matching %+v", i, r, want[i])
		}
	}
}

func TestSummarizeCumulativeRates(t *testing.T) {
	records := []Record{
		{Turn: 3}, {Turn: 3}, {Turn: 4}, {Turn: 5}, {Turn: 4},
	}
	r := Summarize("amulet-titan", records)
	if r.Trials != 5 {
		t.Fatalf("expected 5 trials, got %d", r.Trials)
	}
	if len(r.PerTurn) != 6 {
		t.Fatalf("expected stats for turns 0-5, got %d entries", len(r.PerTurn))
	}
	if r.PerTurn[3].CumulativeHits != 2 {
		t.Errorf("expected 2 cumulative hits by turn 3, got %d", r.PerTurn[3].CumulativeHits)
	}
	if r.PerTurn[5].CumulativeHits != 5 {
		t.Errorf("expected all 5 trials counted by turn 5, got %d", r.PerTurn[5].CumulativeHits)
	}
}

func TestSummarizeCountsOverflow(t *testing.T) {
	records := []Record{{Turn: 2}, {Overflowed: true}, {Overflowed: true}}
	r := Summarize("slow-deck", records)
	if r.Overflowed != 2 {
		t.Errorf("expected 2 overflowed trials, got %d", r.Overflowed)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	r := Summarize("empty", nil)
	if r.Trials != 0 || len(r.PerTurn) != 0 {
		t.Errorf("expected an empty report, got %+v", r)
	}
}
