package input

import (
	"fmt"
	"maps"
	"strings"
)

// Action is a front-end command bound to a key
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionReset
	ActionCopySummary
	ActionToggleMetrics
	ActionToggleMute
	ActionHammer
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
)

// actionNames maps canonical names used in config files to actions
// "none" unbinds a default key
var actionNames = map[string]Action{
	"none":           ActionNone,
	"quit":           ActionQuit,
	"reset":          ActionReset,
	"copy_summary":   ActionCopySummary,
	"toggle_metrics": ActionToggleMetrics,
	"toggle_mute":    ActionToggleMute,
	"hammer":         ActionHammer,
	"move_left":      ActionMoveLeft,
	"move_right":     ActionMoveRight,
	"move_up":        ActionMoveUp,
	"move_down":      ActionMoveDown,
}

// String returns the canonical action name
func (a Action) String() string {
	for name, v := range actionNames {
		if v == a {
			return name
		}
	}
	return "unknown"
}

// Named keys that are not a single printable rune
const (
	KeyEscape = "esc"
	KeyEnter  = "enter"
	KeySpace  = "space"
	KeyF2     = "f2"
	KeyCtrlC  = "ctrl+c"
	KeyLeft   = "left"
	KeyRight  = "right"
	KeyUp     = "up"
	KeyDown   = "down"
)

var namedKeys = map[string]bool{
	KeyEscape: true, KeyEnter: true, KeySpace: true, KeyF2: true, KeyCtrlC: true,
	KeyLeft: true, KeyRight: true, KeyUp: true, KeyDown: true,
}

// KeyMap resolves runes and named keys to actions
type KeyMap struct {
	Runes map[rune]Action
	Keys  map[string]Action
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Runes: map[rune]Action{
			'q': ActionQuit,
			'r': ActionReset,
			'c': ActionCopySummary,
			'm': ActionToggleMute,
			'h': ActionMoveLeft,
			'l': ActionMoveRight,
			'k': ActionMoveUp,
			'j': ActionMoveDown,
		},
		Keys: map[string]Action{
			KeyEscape: ActionQuit,
			KeyCtrlC:  ActionQuit,
			KeyF2:     ActionToggleMetrics,
			KeySpace:  ActionHammer,
			KeyEnter:  ActionHammer,
			KeyLeft:   ActionMoveLeft,
			KeyRight:  ActionMoveRight,
			KeyUp:     ActionMoveUp,
			KeyDown:   ActionMoveDown,
		},
	}
}

// ParseKeyMap converts key -> action name pairs into a sparse override map
// Keys are single characters or one of the named keys
func ParseKeyMap(bindings map[string]string) (*KeyMap, error) {
	km := &KeyMap{
		Runes: make(map[rune]Action),
		Keys:  make(map[string]Action),
	}

	for key, name := range bindings {
		action, ok := actionNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("key %q: unknown action: %q", key, name)
		}

		lower := strings.ToLower(key)
		if namedKeys[lower] {
			km.Keys[lower] = action
			continue
		}
		runes := []rune(key)
		if len(runes) != 1 {
			return nil, fmt.Errorf("invalid key: %q (expected single character or key name)", key)
		}
		km.Runes[runes[0]] = action
	}

	return km, nil
}

// Merge returns base overridden by override; ActionNone entries unbind the key
func Merge(base, override *KeyMap) *KeyMap {
	result := &KeyMap{
		Runes: make(map[rune]Action),
		Keys:  make(map[string]Action),
	}
	if base != nil {
		maps.Copy(result.Runes, base.Runes)
		maps.Copy(result.Keys, base.Keys)
	}
	if override == nil {
		return result
	}
	for r, a := range override.Runes {
		if a == ActionNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = a
		}
	}
	for k, a := range override.Keys {
		if a == ActionNone {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = a
		}
	}
	return result
}

// Rune returns the action bound to r
func (km *KeyMap) Rune(r rune) Action {
	return km.Runes[r]
}

// Key returns the action bound to a named key
func (km *KeyMap) Key(name string) Action {
	return km.Keys[name]
}
