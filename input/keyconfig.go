package input

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keymapFile is the on-disk keymap layout
//
//	[keys]
//	f = "fire"
//	space = "none"
//
//	[special]
//	"ctrl-q" = "quit"
type keymapFile struct {
	Keys    map[string]string `toml:"keys"`
	Special map[string]string `toml:"special"`
}

// specialKeyNames resolves lowercase tcell key names ("up", "ctrl-q", "esc")
var specialKeyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only sections and keys present in the data are populated
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var f keymapFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown section %q", undecoded[0].String())
	}

	kt := &KeyTable{}

	if f.Keys != nil {
		kt.Runes = make(map[rune]KeyEntry, len(f.Keys))
		for keyStr, action := range f.Keys {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			entry, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			kt.Runes[r] = entry
		}
	}

	if f.Special != nil {
		kt.SpecialKeys = make(map[tcell.Key]KeyEntry, len(f.Special))
		for keyStr, action := range f.Special {
			k, ok := specialKeyNames[strings.ToLower(keyStr)]
			if !ok {
				return nil, fmt.Errorf("[special] unknown key name: %q", keyStr)
			}
			entry, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[special] key %q: %w", keyStr, err)
			}
			kt.SpecialKeys[k] = entry
		}
	}

	return kt, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(strings.ToLower(s))
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, fmt.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	return result
}

func mergeMap[K comparable](base, override map[K]KeyEntry) {
	for k, v := range override {
		if v.Intent == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
