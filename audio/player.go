// Package audio plays the hammer cues through the system speaker
package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player owns the speaker mixer
// Every method is safe to call before Init, after Close, or when muted
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	muted       atomic.Bool
}

// NewPlayer creates a player; volume is the effects.Volume exponent (base 2)
func NewPlayer(volume float64, muted bool) *Player {
	p := &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	p.muted.Store(muted)
	return p
}

// Init opens the speaker at 44.1kHz with a 100ms buffer
// A second call is a no-op. Callers log the error and continue silently
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a cue on the mixer
func (p *Player) Play(s Sound) {
	if p.muted.Load() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	st := Build(s, p.volume)
	if st == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// Impact plays the hammer hit
func (p *Player) Impact() {
	p.Play(SoundImpact)
}

// Complete plays the end-of-game chime
func (p *Player) Complete() {
	p.Play(SoundComplete)
}

// SetMuted enables or disables playback
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// ToggleMute flips the mute state and returns the new value
func (p *Player) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports the mute state
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Initialized reports whether the speaker is open
func (p *Player) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Close drops queued sounds; beep has no speaker close, clearing the mixer
// silences it
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
