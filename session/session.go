// Package session ties the store, input tracker, coverage detector and hammer
// animator into the per-frame game loop shared by every front-end
package session

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/hammering-stuff/clock"
	"github.com/lixenwraith/hammering-stuff/core"
	"github.com/lixenwraith/hammering-stuff/coverage"
	"github.com/lixenwraith/hammering-stuff/game"
	"github.com/lixenwraith/hammering-stuff/hammer"
	"github.com/lixenwraith/hammering-stuff/input"
	"github.com/lixenwraith/hammering-stuff/status"
)

// Sounder plays the game cues; audio.Player satisfies it
type Sounder interface {
	Impact()
	Complete()
}

// Config holds the session tunables
type Config struct {
	ReadyThreshold float64 // Primary coverage needed before a hammer is accepted
	Shadow         core.ShadowConfig
	Timing         hammer.Timing
}

// Frame is everything a renderer needs for one frame
type Frame struct {
	State     core.GameState
	Coverage  coverage.Result
	Animation hammer.Snapshot
	Pose      hammer.Pose
	Cursor    input.CursorState
	Shadow    core.ShadowConfig
	Ready     bool
	Hint      string
}

// Target returns the object the hammer is aimed at: the swing target while
// animating, otherwise the primary object
func (f Frame) Target() (core.GameObject, bool) {
	id := f.Animation.TargetID
	if id == "" {
		id = f.Coverage.PrimaryObject
	}
	if id == "" {
		return core.GameObject{}, false
	}
	for _, obj := range f.State.Objects {
		if obj.ID == id {
			return obj, true
		}
	}
	return core.GameObject{}, false
}

// Session runs one game view
// Callbacks fire inside Frame on the caller's goroutine. Not safe for concurrent use
type Session struct {
	cfg      Config
	store    *game.Store
	tracker  *input.Tracker
	animator *hammer.Animator
	detector *coverage.Detector
	sound    Sounder

	generation uint64
	indexed    bool
	cued       bool // Completion cue played for the current field
	closed     bool

	statDropped *atomic.Int64
}

// New creates a session over an initialized store
// sound, tp and reg may be nil
func New(cfg Config, store *game.Store, tracker *input.Tracker, sound Sounder, tp clock.TimeProvider, reg *status.Registry) *Session {
	s := &Session{
		cfg:         cfg,
		store:       store,
		tracker:     tracker,
		detector:    coverage.NewDetector(cfg.Shadow, reg),
		sound:       sound,
		statDropped: reg.Counter(status.HammerDropped),
	}
	s.animator = hammer.NewAnimator(cfg.Timing, hammer.Hooks{
		OnImpact:   s.onImpact,
		OnHammered: s.onHammered,
	}, tp, reg)
	return s
}

func (s *Session) onImpact(id string) {
	s.store.TransformObject(id)
	if s.sound != nil {
		s.sound.Impact()
	}
}

func (s *Session) onHammered(id string) {
	s.store.HammerObject(id)
}

// Animator exposes the hammer animator
func (s *Session) Animator() *hammer.Animator {
	return s.animator
}

// Tracker exposes the input tracker
func (s *Session) Tracker() *input.Tracker {
	return s.tracker
}

// Store exposes the game store
func (s *Session) Store() *game.Store {
	return s.store
}

// Frame advances the animation to now and evaluates the shadow
func (s *Session) Frame(now time.Time) Frame {
	anim := s.animator.Tick(now)
	state := s.store.State()

	if !s.indexed || s.store.Generation() != s.generation {
		s.detector.Rebuild(state.Objects)
		s.generation = s.store.Generation()
		s.indexed = true
	}

	cursor := s.tracker.State()
	cov := s.detector.Detect(cursor.Shadow, state.Objects)
	ready := s.ready(cov)

	if state.IsGameComplete && !s.cued {
		s.cued = true
		if s.sound != nil {
			s.sound.Complete()
		}
	}

	return Frame{
		State:     state,
		Coverage:  cov,
		Animation: anim,
		Pose:      s.animator.Pose(now),
		Cursor:    cursor,
		Shadow:    s.cfg.Shadow,
		Ready:     ready,
		Hint:      Hint(cursor, state, ready),
	}
}

func (s *Session) ready(cov coverage.Result) bool {
	m, ok := cov.Primary()
	return ok && m.IntersectionPercentage >= s.cfg.ReadyThreshold
}

// Hammer swings at the primary object under the shadow
// Returns false when nothing is ready, a swing is active, or the session is closed
func (s *Session) Hammer(now time.Time) bool {
	if s.closed {
		return false
	}
	state := s.store.State()
	cov := coverage.Detect(s.tracker.Shadow(), s.cfg.Shadow.Radius, state.Objects)
	if !s.ready(cov) || s.animator.Active() {
		status.Inc(s.statDropped)
		return false
	}
	return s.animator.Trigger(cov.PrimaryObject, now)
}

// Touch feeds a touch start to the tracker and hammers on the second tap
func (s *Session) Touch(p core.Position, now time.Time) bool {
	if s.tracker.TouchStart(p) != input.TouchHammer {
		return false
	}
	return s.Hammer(now)
}

// Nudge moves the shadow by (dx, dy) pixels, clamped to the field
func (s *Session) Nudge(dx, dy float64) {
	b := s.store.Bounds()
	p := s.tracker.Shadow()
	p.X = min(max(p.X+dx, 0), b.Width)
	p.Y = min(max(p.Y+dy, 0), b.Height)
	s.tracker.SetShadow(p)
}

// Reset regenerates the field
// Refused while a swing is in flight unless every object is already hammered
func (s *Session) Reset(now time.Time) bool {
	if s.closed {
		return false
	}
	if s.animator.Active() && !s.store.State().IsGameComplete {
		return false
	}
	s.animator.Reset(now)
	s.store.Reset()
	s.tracker.ResetTouch()
	s.cued = false
	return true
}

// Resize regenerates the field for new bounds when they changed
func (s *Session) Resize(b core.Bounds, now time.Time) {
	if b == s.store.Bounds() {
		return
	}
	s.animator.Reset(now)
	s.store.SetBounds(b)
	s.store.Initialize()
	s.tracker.ResetTouch()
	s.cued = false
}

// Close cancels pending timers and detaches the tracker
func (s *Session) Close(now time.Time) {
	if s.closed {
		return
	}
	s.closed = true
	s.animator.Reset(now)
	s.tracker.Dispose()
}
