package capability

import (
	"errors"
	"strings"
	"testing"
)

func TestNewRegistryRegistersDefaults(t *testing.T) {
	reg, err := NewRegistry(DefaultToolCards(), "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range DefaultRequired() {
		if !reg.Has(name) {
			t.Fatalf("missing required tool %s", name)
		}
	}
}

func TestNewRegistryMissingRequired(t *testing.T) {
	cards := DefaultToolCards()[:2]
	_, err := NewRegistry(cards, "", nil)
	if err == nil {
		t.Fatal("expected error for missing required tools")
	}
	if !errors.Is(err, ErrToolMissing) {
		t.Fatalf("expected ErrToolMissing, got %v", err)
	}
}

func TestNewRegistryValidatesSignatures(t *testing.T) {
	secret := "topsecret"
	cards := DefaultToolCards()
	for i := range cards {
		sig, err := SignToolCard(cards[i], secret)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		cards[i].Signature = sig
	}
	if _, err := NewRegistry(cards, secret, nil); err != nil {
		t.Fatalf("valid signatures rejected: %v", err)
	}

	cards[0].Signature = "deadbeef"
	if _, err := NewRegistry(cards, secret, nil); err == nil {
		t.Fatal("tampered signature accepted")
	}
}

func TestRegistryKeepsHighestVersion(t *testing.T) {
	cards := DefaultToolCards()
	upgraded := cards[0]
	upgraded.Version = "v2"
	upgraded.Description = "newer"
	cards = append(cards, upgraded)

	reg, err := NewRegistry(cards, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tc, _ := reg.Tool(upgraded.Name)
	if tc.Version != "v2" {
		t.Fatalf("expected v2 to win, got %s", tc.Version)
	}
}

func TestCatalogListsEveryCapability(t *testing.T) {
	reg, err := NewRegistry(DefaultToolCards(), "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	catalog := reg.Catalog()
	for _, name := range DefaultRequired() {
		if !strings.Contains(catalog, "- "+name+": ") {
			t.Fatalf("catalog missing %s:\n%s", name, catalog)
		}
	}
}
