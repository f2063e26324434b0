package audio

import (
	"testing"
	"time"
)

// TestPlayerGracefulDegradation verifies cues are safe without a speaker
func TestPlayerGracefulDegradation(t *testing.T) {
	p := NewPlayer(-1, false)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Player panicked without initialization: %v", r)
		}
	}()

	p.Impact()
	p.Complete()
	p.Play(Sound(99))
	p.Close()
	if p.Initialized() {
		t.Error("Player should not report initialized")
	}
}

// TestPlayerInitialization may fail without an audio device, which is not a failure
func TestPlayerInitialization(t *testing.T) {
	p := NewPlayer(-1, false)

	if err := p.Init(); err != nil {
		t.Logf("Speaker initialization failed (expected in test environment): %v", err)
		return
	}
	if err := p.Init(); err != nil {
		t.Errorf("Second Init should be a no-op, got %v", err)
	}

	p.Impact()
	p.Complete()
	p.Close()
	if p.Initialized() {
		t.Error("Close should reset the initialized flag")
	}
}

func TestPlayerMute(t *testing.T) {
	p := NewPlayer(0, true)
	if !p.Muted() {
		t.Fatal("Expected muted player")
	}
	if p.ToggleMute() {
		t.Error("Toggle from muted should return false")
	}
	if !p.ToggleMute() || !p.Muted() {
		t.Error("Toggle back should mute")
	}
	p.SetMuted(false)
	if p.Muted() {
		t.Error("SetMuted(false) did not unmute")
	}
}

func drain(t *testing.T, s Sound) (int, float64) {
	t.Helper()
	st := Build(s, 0)
	if st == nil {
		t.Fatalf("Build(%d) returned nil", s)
	}

	total := 0
	peak := 0.0
	buf := make([][2]float64, 512)
	for {
		n, ok := st.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if v < -1 || v > 1 {
					t.Fatalf("Sample %d out of range: %f", total+i, v)
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestImpactSound(t *testing.T) {
	n, peak := drain(t, SoundImpact)
	if want := sampleRate.N(impactDuration); n != want {
		t.Errorf("Impact length %d samples, want %d", n, want)
	}
	if peak == 0 {
		t.Error("Impact is silent")
	}
}

func TestCompleteSound(t *testing.T) {
	n, _ := drain(t, SoundComplete)
	if want := len(chimeNotes) * sampleRate.N(chimeNoteDuration); n != want {
		t.Errorf("Chime length %d samples, want %d", n, want)
	}
}

func TestDecayFadesOut(t *testing.T) {
	st := tone(440, 10*time.Millisecond)
	buf := make([][2]float64, sampleRate.N(10*time.Millisecond))
	n, _ := st.Stream(buf)
	if n == 0 {
		t.Fatal("No samples")
	}
	last := buf[n-1][0]
	if last > 0.01 || last < -0.01 {
		t.Errorf("Expected near silence at the tail, got %f", last)
	}
}

func TestBuildUnknown(t *testing.T) {
	if Build(Sound(42), 0) != nil {
		t.Error("Unknown sound should build nil")
	}
}
