// Package hammer runs the hammer swing as an explicit time-gated state machine
package hammer

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/hammering-stuff/clock"
	"github.com/lixenwraith/hammering-stuff/status"
	"github.com/lixenwraith/hammering-stuff/vmath"
)

// Phase is the animator state
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRaising
	PhaseSwinging
	PhaseRecoiling
	PhaseImpact // Swing finished, waiting for the transform delay
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRaising:
		return "raising"
	case PhaseSwinging:
		return "swinging"
	case PhaseRecoiling:
		return "recoiling"
	case PhaseImpact:
		return "impact"
	default:
		return "unknown"
	}
}

// Timing holds the swing timeline
// RaiseEnd and SwingEnd are fractions of Swing where the phases change
type Timing struct {
	Swing     time.Duration
	Transform time.Duration
	Cooldown  time.Duration
	RaiseEnd  float64
	SwingEnd  float64
}

// DefaultTiming returns the stock 500ms swing, 200ms transform, 1s cool-down
func DefaultTiming() Timing {
	return Timing{
		Swing:     500 * time.Millisecond,
		Transform: 200 * time.Millisecond,
		Cooldown:  1000 * time.Millisecond,
		RaiseEnd:  0.5,
		SwingEnd:  0.75,
	}
}

// Hooks are invoked from Tick on the caller's goroutine; either may be nil
type Hooks struct {
	OnImpact   func(id string) // Swing reached the target
	OnHammered func(id string) // Transform delay elapsed, object is done
}

// Snapshot is the animation state exposed to renderers
type Snapshot struct {
	Active   bool
	TargetID string
	Phase    Phase
	Progress float64 // Swing progress [0, 1]
	Duration time.Duration
	Impact   float64 // Eased transform progress [0, 1] during PhaseImpact
}

// Animator sequences swing, impact, and cool-down for one hammer
// At most one swing is in flight; triggers during a swing are dropped
// Not safe for concurrent use
type Animator struct {
	timing Timing
	hooks  Hooks
	sched  *clock.Scheduler

	phase     Phase
	target    string
	start     time.Time
	progress  float64
	impactAt  time.Time
	idleSince time.Time
	triggered map[string]struct{}

	statTriggered *atomic.Int64
	statDropped   *atomic.Int64
	statCompleted *atomic.Int64
}

// NewAnimator creates an idle animator; reg may be nil
func NewAnimator(timing Timing, hooks Hooks, tp clock.TimeProvider, reg *status.Registry) *Animator {
	if tp == nil {
		tp = clock.NewTimeProvider()
	}
	return &Animator{
		timing:        timing,
		hooks:         hooks,
		sched:         clock.NewScheduler(tp),
		idleSince:     tp.Now(),
		triggered:     make(map[string]struct{}),
		statTriggered: reg.Counter(status.HammerTriggered),
		statDropped:   reg.Counter(status.HammerDropped),
		statCompleted: reg.Counter(status.HammerCompleted),
	}
}

// Active reports whether a swing or its transform delay is in progress
func (a *Animator) Active() bool {
	return a.phase != PhaseIdle
}

// Triggered reports whether id is inside its trigger cool-down window
func (a *Animator) Triggered(id string) bool {
	_, ok := a.triggered[id]
	return ok
}

// Pending returns the number of armed timers
func (a *Animator) Pending() int {
	return a.sched.Pending()
}

// Trigger starts a swing at id
// Returns false when a swing is already active or id is cooling down
func (a *Animator) Trigger(id string, now time.Time) bool {
	if a.Active() || a.Triggered(id) {
		status.Inc(a.statDropped)
		return false
	}

	a.triggered[id] = struct{}{}
	a.target = id
	a.start = now
	a.progress = 0
	a.phase = a.phaseAt(0)
	status.Inc(a.statTriggered)
	return true
}

// Tick advances the swing to now and fires due timers
func (a *Animator) Tick(now time.Time) Snapshot {
	switch a.phase {
	case PhaseRaising, PhaseSwinging, PhaseRecoiling:
		a.progress = a.swingProgress(now)
		if a.progress < 1 {
			a.phase = a.phaseAt(a.progress)
			break
		}
		a.impact()
	}

	a.sched.Run(now)
	return a.snapshot(now)
}

// impact ends the swing and arms the transform and cool-down chain
// Deadlines derive from the swing start so frame jitter does not shift them
func (a *Animator) impact() {
	id := a.target
	a.phase = PhaseImpact
	a.progress = 1
	a.impactAt = a.start.Add(a.timing.Swing)

	if a.hooks.OnImpact != nil {
		a.hooks.OnImpact(id)
	}

	done := a.impactAt.Add(a.timing.Transform)
	a.sched.At(done, func(time.Time) {
		if a.hooks.OnHammered != nil {
			a.hooks.OnHammered(id)
		}
		a.phase = PhaseIdle
		a.target = ""
		a.progress = 0
		a.idleSince = done
		status.Inc(a.statCompleted)

		a.sched.At(done.Add(a.timing.Cooldown), func(time.Time) {
			delete(a.triggered, id)
		})
	})
}

// Reset cancels every pending timer and clears the cool-down set
func (a *Animator) Reset(now time.Time) {
	a.sched.CancelAll()
	clear(a.triggered)
	a.phase = PhaseIdle
	a.target = ""
	a.progress = 0
	a.idleSince = now
}

// Snapshot returns the state as of the last Tick, with impact easing at now
func (a *Animator) Snapshot(now time.Time) Snapshot {
	return a.snapshot(now)
}

func (a *Animator) snapshot(now time.Time) Snapshot {
	s := Snapshot{
		Active:   a.Active(),
		TargetID: a.target,
		Phase:    a.phase,
		Progress: a.progress,
		Duration: a.timing.Swing,
	}
	if a.phase == PhaseImpact {
		s.Impact = vmath.EaseOutCubic(fraction(now.Sub(a.impactAt), a.timing.Transform))
	}
	return s
}

func (a *Animator) swingProgress(now time.Time) float64 {
	return fraction(now.Sub(a.start), a.timing.Swing)
}

func (a *Animator) phaseAt(p float64) Phase {
	switch {
	case p < a.timing.RaiseEnd:
		return PhaseRaising
	case p < a.timing.SwingEnd:
		return PhaseSwinging
	default:
		return PhaseRecoiling
	}
}

// fraction returns elapsed/total clamped to [0, 1]; a non-positive total is complete
func fraction(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	return math.Min(1, math.Max(0, float64(elapsed)/float64(total)))
}
