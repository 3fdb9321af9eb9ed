package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mtgsim/goldfish/pkg/types"
)

func TestLoadHasCoreCards(t *testing.T) {
	c := Load()
	for _, name := range []string{"Forest", "Primeval Titan", "Simic Growth Chamber", "Amulet of Vigor"} {
		if _, ok := c.Get(name); !ok {
			t.Errorf("expected built-in catalog to contain %q", name)
		}
	}
	if c.Size() == 0 {
		t.Error("expected nonzero catalog size")
	}
}

func TestGetMiss(t *testing.T) {
	c := Load()
	if _, ok := c.Get("Not A Real Card"); ok {
		t.Error("expected miss for unknown card name")
	}
}

func TestBounceLandShape(t *testing.T) {
	c := Load()
	e, ok := c.Get("Simic Growth Chamber")
	if !ok {
		t.Fatal("Simic Growth Chamber missing from catalog")
	}
	if e.EntersTapped != types.TappedTrue {
		t.Errorf("expected bounce land to enter tapped, got %v", e.EntersTapped)
	}
	if len(e.TapsFor) != 2 {
		t.Errorf("expected 2 taps-for options, got %d: %v", len(e.TapsFor), e.TapsFor)
	}
}

func TestLoadFileOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.json")
	overlay := []overlayEntry{
		{
			Name:         "Mountain",
			Slug:         "mountain",
			Types:        []string{"land", "basic"},
			TapsFor:      []string{"R"},
			EntersTapped: "false",
		},
	}
	data, err := json.Marshal(overlay)
	if err != nil {
		t.Fatalf("marshal overlay: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write overlay: %v", err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	e, ok := c.Get("Mountain")
	if !ok {
		t.Fatal("expected overlay entry to be present")
	}
	if !e.IsLand() {
		t.Error("expected Mountain to be a land")
	}
	if _, ok := c.Get("Forest"); !ok {
		t.Error("expected overlay load to retain built-in entries")
	}
}

func TestHasTypeAndCyclable(t *testing.T) {
	c := Load()
	peer, ok := c.Get("Peer into the Abyss")
	if !ok {
		t.Fatal("Peer into the Abyss missing")
	}
	if !peer.Cyclable() {
		t.Error("expected Peer into the Abyss to be cyclable")
	}
	if peer.IsLand() {
		t.Error("Peer into the Abyss should not be a land")
	}
}
