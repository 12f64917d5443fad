package catalog

import (
	"testing"
	"time"
)

func TestDefaultCatalog(t *testing.T) {
	weapons := Default()
	if len(weapons) != 5 {
		t.Fatalf("Expected 5 weapons, got %d", len(weapons))
	}

	tests := []struct {
		id       string
		damage   int
		fireRate time.Duration
		cost     int
		unlocked bool
		rarity   Rarity
	}{
		{"pistol", 25, 300 * time.Millisecond, 0, true, Common},
		{"shotgun", 60, 800 * time.Millisecond, 150, false, Common},
		{"rifle", 40, 150 * time.Millisecond, 300, false, Rare},
		{"sniper", 120, 1500 * time.Millisecond, 500, false, Epic},
		{"plasma", 80, 200 * time.Millisecond, 800, false, Legendary},
	}

	for _, tt := range tests {
		i := Find(weapons, tt.id)
		if i < 0 {
			t.Errorf("Weapon %q not found", tt.id)
			continue
		}
		w := weapons[i]
		if w.Damage != tt.damage || w.FireRate != tt.fireRate || w.Cost != tt.cost ||
			w.Unlocked != tt.unlocked || w.Rarity != tt.rarity {
			t.Errorf("Weapon %q mismatch: got %+v", tt.id, w)
		}
	}
}

func TestDefaultReturnsCopy(t *testing.T) {
	a := Default()
	a[1].Unlocked = true

	b := Default()
	if b[1].Unlocked {
		t.Error("Mutating one catalog copy leaked into another")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing id", "- name: x\n"},
		{"duplicate id", "- id: a\n- id: a\n"},
		{"negative cost", "- id: a\n  cost: -1\n"},
		{"bad rarity", "- id: a\n  rarity: mythic\n"},
		{"not a list", "id: a\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Errorf("Expected error for %s", tt.name)
			}
		})
	}
}

func TestRoundsPerMinute(t *testing.T) {
	w := Weapon{FireRate: 300 * time.Millisecond}
	if got := w.RoundsPerMinute(); got != 200 {
		t.Errorf("Expected 200 RPM, got %d", got)
	}
	if got := (Weapon{}).RoundsPerMinute(); got != 0 {
		t.Errorf("Expected 0 RPM for zero fire rate, got %d", got)
	}
}

func TestRarityString(t *testing.T) {
	for _, r := range []Rarity{Common, Rare, Epic, Legendary} {
		parsed, err := ParseRarity(r.String())
		if err != nil || parsed != r {
			t.Errorf("Rarity %v did not parse back: %v %v", r, parsed, err)
		}
	}
}
