package session

import (
	"github.com/lixenwraith/hammering-stuff/core"
	"github.com/lixenwraith/hammering-stuff/input"
)

// Instruction lines shown under the field
const (
	HintDesktopReady = "Click the shadow to hammer!"
	HintDesktopAim   = "Move mouse to cover 80% of an object, then click to hammer"
	HintTouchFirst   = "Touch and drag to move the shadow over objects"
	HintTouchReady   = "Tap the shadow to hammer the object!"
	HintTouchAim     = "Cover 80% of an object to make it ready for hammering"
)

// Hint returns the instruction text for the cursor's input mode
// An empty field has no hint; desktop hints stop once the game is complete
func Hint(cursor input.CursorState, state core.GameState, ready bool) string {
	if len(state.Objects) == 0 {
		return ""
	}

	if cursor.Mode == input.ModeMobile {
		switch {
		case cursor.FirstTouch:
			return HintTouchFirst
		case ready:
			return HintTouchReady
		default:
			return HintTouchAim
		}
	}

	if state.IsGameComplete {
		return ""
	}
	if ready {
		return HintDesktopReady
	}
	return HintDesktopAim
}
