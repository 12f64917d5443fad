// Package catalog holds the static weapon definitions
package catalog

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed weapons.yaml
var defaultWeapons []byte

// Weapon is an immutable definition except for Unlocked, which flips once on purchase
type Weapon struct {
	ID          string
	Name        string
	Damage      int
	FireRate    time.Duration // Minimum interval between shots
	Range       float64
	Cost        int
	Unlocked    bool
	Rarity      Rarity
	Description string
}

// RoundsPerMinute is the sustained fire rate shown in the shop
func (w Weapon) RoundsPerMinute() int {
	if w.FireRate <= 0 {
		return 0
	}
	return int(time.Minute / w.FireRate)
}

// weaponRecord is the on-disk shape of a catalog entry
type weaponRecord struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Damage      int     `yaml:"damage"`
	FireRateMs  int     `yaml:"fire_rate"`
	Range       float64 `yaml:"range"`
	Cost        int     `yaml:"cost"`
	Unlocked    bool    `yaml:"unlocked"`
	Rarity      Rarity  `yaml:"rarity"`
	Description string  `yaml:"description"`
}

// Parse decodes a YAML weapon list
// Ids must be unique and non-empty; stats must be non-negative
func Parse(data []byte) ([]Weapon, error) {
	var records []weaponRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode weapon catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(records))
	weapons := make([]Weapon, 0, len(records))
	for i, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("weapon %d: missing id", i)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("weapon %q: duplicate id", r.ID)
		}
		seen[r.ID] = struct{}{}
		if r.Damage < 0 || r.FireRateMs < 0 || r.Cost < 0 || r.Range < 0 {
			return nil, fmt.Errorf("weapon %q: negative stat", r.ID)
		}

		weapons = append(weapons, Weapon{
			ID:          r.ID,
			Name:        r.Name,
			Damage:      r.Damage,
			FireRate:    time.Duration(r.FireRateMs) * time.Millisecond,
			Range:       r.Range,
			Cost:        r.Cost,
			Unlocked:    r.Unlocked,
			Rarity:      r.Rarity,
			Description: r.Description,
		})
	}
	return weapons, nil
}

// Default returns a fresh copy of the built-in catalog
func Default() []Weapon {
	weapons, err := Parse(defaultWeapons)
	if err != nil {
		panic(fmt.Errorf("embedded weapon catalog: %w", err))
	}
	return weapons
}

// Find returns the index of the weapon with id, or -1
func Find(weapons []Weapon, id string) int {
	for i := range weapons {
		if weapons[i].ID == id {
			return i
		}
	}
	return -1
}
