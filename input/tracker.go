// Package input turns pointer and touch events into shadow movement and
// hammer requests, and maps keys to front-end actions
package input

import "github.com/lixenwraith/hammering-stuff/core"

// Tracker holds pointer state for one mounted front-end
// Create one per game view and Dispose it on teardown; a disposed tracker
// ignores every event. Not safe for concurrent use
type Tracker struct {
	header float64 // Pixels above the play field, subtracted from y

	cursor     core.Position
	shadow     core.Position
	mode       Mode
	touched    bool // Touch was ever seen; mouse no longer drives the shadow
	firstTouch bool
	dragging   bool
	disposed   bool
}

// NewTracker creates a desktop-mode tracker
func NewTracker(headerOffset float64) *Tracker {
	return &Tracker{
		header:     headerOffset,
		firstTouch: true,
	}
}

func (t *Tracker) field(p core.Position) core.Position {
	return core.Position{X: p.X, Y: p.Y - t.header}
}

func (t *Tracker) detectTouch() {
	if !t.touched {
		t.touched = true
		t.mode = ModeMobile
	}
}

// MouseMove records pointer motion; the shadow follows until touch is detected
func (t *Tracker) MouseMove(p core.Position) {
	if t.disposed {
		return
	}
	t.cursor = t.field(p)
	if !t.touched {
		t.shadow = t.cursor
	}
}

// TouchStart handles a new touch
// The first touch of a cycle moves the shadow and starts a drag; the second
// ends the cycle and asks for a hammer
func (t *Tracker) TouchStart(p core.Position) TouchResult {
	if t.disposed {
		return TouchIgnored
	}
	t.detectTouch()
	t.cursor = t.field(p)

	if t.firstTouch {
		t.shadow = t.cursor
		t.firstTouch = false
		t.dragging = true
		return TouchMoved
	}

	t.firstTouch = true
	t.dragging = false
	return TouchHammer
}

// TouchMove follows a dragging finger
func (t *Tracker) TouchMove(p core.Position) {
	if t.disposed {
		return
	}
	t.detectTouch()
	t.cursor = t.field(p)
	if t.dragging {
		t.shadow = t.cursor
	}
}

// TouchEnd stops dragging; the shadow stays where the finger lifted
func (t *Tracker) TouchEnd() {
	if t.disposed {
		return
	}
	t.dragging = false
}

// ResetTouch starts a new touch cycle
func (t *Tracker) ResetTouch() {
	if t.disposed {
		return
	}
	t.firstTouch = true
	t.dragging = false
}

// SetShadow places the shadow directly, used by keyboard steering
func (t *Tracker) SetShadow(p core.Position) {
	if t.disposed {
		return
	}
	t.shadow = p
}

// Shadow returns the current shadow center in field coordinates
func (t *Tracker) Shadow() core.Position {
	return t.shadow
}

// Mode returns the detected input mode
func (t *Tracker) Mode() Mode {
	return t.mode
}

// State returns a copy of the tracker state
func (t *Tracker) State() CursorState {
	return CursorState{
		Cursor:     t.cursor,
		Shadow:     t.shadow,
		Mode:       t.mode,
		FirstTouch: t.firstTouch,
		Dragging:   t.dragging,
	}
}

// Dispose detaches the tracker; later events are ignored
func (t *Tracker) Dispose() {
	t.disposed = true
	t.dragging = false
}

// Disposed reports whether Dispose was called
func (t *Tracker) Disposed() bool {
	return t.disposed
}
