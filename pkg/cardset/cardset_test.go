package cardset

import (
	"testing"

	"github.com/mtgsim/goldfish/pkg/catalog"
)

func TestAddRemoveContainsCount(t *testing.T) {
	var s Set
	s = s.Add("Forest").Add("Forest").Add("Island")
	if !s.Contains("Forest") {
		t.Error("expected Forest present")
	}
	if s.Count("Forest") != 2 {
		t.Errorf("expected 2 Forests, got %d", s.Count("Forest"))
	}
	s, ok := s.Remove("Forest")
	if !ok {
		t.Fatal("expected removal to succeed")
	}
	if s.Count("Forest") != 1 {
		t.Errorf("expected 1 Forest remaining, got %d", s.Count("Forest"))
	}
	if _, ok := s.Remove("Plains"); ok {
		t.Error("expected removal of absent card to fail")
	}
}

func TestCanonicalOrderIndependent(t *testing.T) {
	a := Set{"Island", "Forest"}
	b := Set{"Forest", "Island"}
	if a.Canonical()[0] != b.Canonical()[0] || a.Canonical()[1] != b.Canonical()[1] {
		t.Errorf("expected canonical forms to agree: %v vs %v", a.Canonical(), b.Canonical())
	}
}

func TestFilteredViews(t *testing.T) {
	cat := catalog.Load()
	s := Set{"Forest", "Island", "Primeval Titan", "Amulet of Vigor", "Simic Growth Chamber"}

	lands := s.Lands(cat)
	if len(lands) != 3 {
		t.Errorf("expected 3 lands, got %d: %v", len(lands), lands)
	}
	basics := s.BasicLands(cat)
	if len(basics) != 2 {
		t.Errorf("expected 2 basics, got %d: %v", len(basics), basics)
	}
	creatures := s.Creatures(cat)
	if len(creatures) != 1 || creatures[0] != "Primeval Titan" {
		t.Errorf("expected just Primeval Titan, got %v", creatures)
	}
}

func TestBestOptionsPrunesDominated(t *testing.T) {
	s := Set{"Forest", "Simic Growth Chamber"}
	got := BestOptions(s)
	if len(got) != 1 || got[0] != "Simic Growth Chamber" {
		t.Errorf("expected Forest pruned in favor of Simic Growth Chamber, got %v", got)
	}
}

func TestBestOptionsPrunesIslandWhenForestAvailable(t *testing.T) {
	s := Set{"Forest", "Island"}
	got := BestOptions(s)
	if len(got) != 1 || got[0] != "Forest" {
		t.Errorf("expected Island pruned in favor of Forest, got %v", got)
	}
}

func TestBestOptionsPrunesRadiantFountainWhenForestAvailable(t *testing.T) {
	s := Set{"Forest", "Radiant Fountain"}
	got := BestOptions(s)
	if len(got) != 1 || got[0] != "Forest" {
		t.Errorf("expected Radiant Fountain pruned in favor of Forest, got %v", got)
	}
}

func TestBestOptionsKeepsUndominated(t *testing.T) {
	s := Set{"Forest", "Boros Garrison"}
	got := BestOptions(s)
	if len(got) != 2 {
		t.Errorf("expected both cards kept, no dominance between them, got %v", got)
	}
}
