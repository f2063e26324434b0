package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies a game cue
type Sound uint8

const (
	SoundImpact   Sound = iota // Hammer reaches the object
	SoundComplete              // Last object hammered
)

// Impact thunk: fundamental plus sub-octave, fading out
const (
	impactDuration = 80 * time.Millisecond
	impactFreq     = 110.0
	impactSubFreq  = 55.0
)

// Completion chime: rising C major arpeggio
var chimeNotes = []float64{523.25, 659.25, 783.99}

const chimeNoteDuration = 120 * time.Millisecond

// decay fades a stream linearly to silence over a fixed sample count
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func newDecay(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: beep.Take(rate.N(d), s), total: rate.N(d)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1 - float64(d.position)/float64(d.total)
		if gain < 0 {
			gain = 0
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales amplitude by vol; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return newDecay(sine, d, sampleRate)
}

// Build returns a fresh streamer for s at the given effects.Volume exponent
func Build(s Sound, volume float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundImpact:
		st = beep.Mix(
			newVolume(tone(impactFreq, impactDuration), 0.6),
			newVolume(tone(impactSubFreq, impactDuration), 0.4),
		)
	case SoundComplete:
		notes := make([]beep.Streamer, len(chimeNotes))
		for i, f := range chimeNotes {
			notes[i] = tone(f, chimeNoteDuration)
		}
		st = beep.Seq(notes...)
	default:
		return nil
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: volume}
}
