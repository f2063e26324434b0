package input

import "github.com/lixenwraith/hammering-stuff/core"

// Mode is the detected input device family
type Mode uint8

const (
	ModeDesktop Mode = iota
	ModeMobile
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeDesktop:
		return "desktop"
	case ModeMobile:
		return "mobile"
	default:
		return "unknown"
	}
}

// TouchResult tells the caller what a touch start meant
type TouchResult uint8

const (
	TouchIgnored TouchResult = iota // Tracker disposed
	TouchMoved                      // First touch of a cycle moved the shadow
	TouchHammer                     // Second touch, caller should request a hammer
)

// CursorState is a copy of the tracker state for renderers
type CursorState struct {
	Cursor     core.Position // Raw pointer, header offset removed
	Shadow     core.Position // Where the shadow is drawn and tested
	Mode       Mode
	FirstTouch bool // Next touch moves the shadow rather than hammering
	Dragging   bool
}
