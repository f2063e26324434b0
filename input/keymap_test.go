package input

import "testing"

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		got  Action
		want Action
	}{
		{"q quits", km.Rune('q'), ActionQuit},
		{"r resets", km.Rune('r'), ActionReset},
		{"c copies", km.Rune('c'), ActionCopySummary},
		{"esc quits", km.Key(KeyEscape), ActionQuit},
		{"ctrl+c quits", km.Key(KeyCtrlC), ActionQuit},
		{"f2 metrics", km.Key(KeyF2), ActionToggleMetrics},
		{"space hammers", km.Key(KeySpace), ActionHammer},
		{"unbound", km.Rune('z'), ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestParseAndMergeKeyMap(t *testing.T) {
	override, err := ParseKeyMap(map[string]string{
		"x":   "reset",
		"r":   "none",
		"F2":  "Toggle_Mute",
		"esc": " none ",
	})
	if err != nil {
		t.Fatalf("ParseKeyMap: %v", err)
	}

	km := Merge(DefaultKeyMap(), override)
	if km.Rune('x') != ActionReset {
		t.Error("x should reset")
	}
	if km.Rune('r') != ActionNone {
		t.Error("r should be unbound")
	}
	if km.Key(KeyF2) != ActionToggleMute {
		t.Error("f2 should toggle mute")
	}
	if km.Key(KeyEscape) != ActionNone {
		t.Error("esc should be unbound")
	}
	if km.Rune('q') != ActionQuit {
		t.Error("Untouched defaults must survive the merge")
	}

	if DefaultKeyMap().Rune('r') != ActionReset {
		t.Error("Merge mutated the base map")
	}
}

func TestParseKeyMapErrors(t *testing.T) {
	if _, err := ParseKeyMap(map[string]string{"q": "explode"}); err == nil {
		t.Error("Expected error for unknown action")
	}
	if _, err := ParseKeyMap(map[string]string{"qq": "quit"}); err == nil {
		t.Error("Expected error for multi-character key")
	}
}

func TestMergeNilOverride(t *testing.T) {
	km := Merge(DefaultKeyMap(), nil)
	if km.Rune('q') != ActionQuit {
		t.Error("Nil override should keep defaults")
	}
}

func TestActionString(t *testing.T) {
	if ActionCopySummary.String() != "copy_summary" || ActionNone.String() != "none" {
		t.Error("Unexpected action names")
	}
	if Action(200).String() != "unknown" {
		t.Error("Expected unknown")
	}
}
