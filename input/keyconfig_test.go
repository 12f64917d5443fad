package input

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sketchy-shooter/engine"
)

func TestLoadKeyConfig(t *testing.T) {
	data := []byte(`
[keys]
f = "fire"
space = "none"
i = "move_up"

[special]
"ctrl-q" = "quit"
`)

	override, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}

	kt := MergeKeyTable(DefaultKeyTable(), override)

	if e := kt.Runes['f']; e.Intent != IntentFire {
		t.Errorf("Expected f bound to fire, got %v", e.Intent)
	}
	if _, ok := kt.Runes[' ']; ok {
		t.Error("Expected space unbound")
	}
	if e := kt.Runes['i']; e.Intent != IntentMove || e.Move != engine.KeyW {
		t.Errorf("Expected i bound to move up, got %+v", e)
	}
	if e := kt.SpecialKeys[tcell.KeyCtrlQ]; e.Intent != IntentQuit {
		t.Errorf("Expected Ctrl-Q bound to quit, got %v", e.Intent)
	}
	if e := kt.Runes['w']; e.Intent != IntentMove {
		t.Error("Unrelated default binding lost in merge")
	}
	if _, ok := DefaultKeyTable().Runes['f']; ok {
		t.Error("Merge modified the base table")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"syntax", `[keys`, "keymap parse"},
		{"unknown action", "[keys]\nf = \"jump\"", "unknown action"},
		{"bad rune", "[keys]\nfoo = \"fire\"", "invalid rune key"},
		{"unknown special", "[special]\nhyper = \"quit\"", "unknown key name"},
		{"unknown section", "[mouse]\nleft = \"fire\"", "unknown section"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyConfig([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
