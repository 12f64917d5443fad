package catalog

import "fmt"

// Rarity is the economic tier of a weapon
type Rarity uint8

const (
	Common Rarity = iota
	Rare
	Epic
	Legendary
)

var rarityNames = [...]string{
	Common:    "common",
	Rare:      "rare",
	Epic:      "epic",
	Legendary: "legendary",
}

func (r Rarity) String() string {
	if int(r) < len(rarityNames) {
		return rarityNames[r]
	}
	return fmt.Sprintf("rarity(%d)", uint8(r))
}

// ParseRarity maps a lowercase rarity name to its value
func ParseRarity(s string) (Rarity, error) {
	for i, name := range rarityNames {
		if name == s {
			return Rarity(i), nil
		}
	}
	return Common, fmt.Errorf("unknown rarity %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler for YAML decoding
func (r *Rarity) UnmarshalText(text []byte) error {
	v, err := ParseRarity(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
