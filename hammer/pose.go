package hammer

import (
	"math"
	"time"

	"github.com/lixenwraith/hammering-stuff/vmath"
)

// Rest offset of the hammer head from the shadow center, in pixels
const (
	RestOffsetX = 16.0
	RestOffsetY = -196.0
)

// Key poses in degrees and scale factors
const (
	RestRotation   = 5.0
	RaisedRotation = 50.0
	StrikeRotation = -30.0

	restScale   = 0.8
	raisedScale = 0.85
	strikeScale = 1.1

	floatAmplitude = 2.0
	floatRate      = 0.002 // Radians per millisecond

	blurFrom = 0.4
	blurTo   = 0.9
)

// Pose is the hammer transform relative to the shadow center
type Pose struct {
	OffsetX    float64
	OffsetY    float64
	Rotation   float64 // Degrees, positive is clockwise
	Scale      float64
	MotionBlur bool
}

// Pose returns the hammer transform at now
// Idle hammers bob by up to 2px; an active swing interpolates the key poses
func (a *Animator) Pose(now time.Time) Pose {
	if !a.Active() {
		ms := float64(now.Sub(a.idleSince).Milliseconds())
		return Pose{
			OffsetX:  RestOffsetX,
			OffsetY:  RestOffsetY + math.Sin(ms*floatRate)*floatAmplitude,
			Rotation: RestRotation,
			Scale:    restScale,
		}
	}

	p := a.progress
	pose := Pose{
		OffsetX:    RestOffsetX,
		OffsetY:    RestOffsetY,
		MotionBlur: p > blurFrom && p < blurTo,
	}

	raiseEnd, swingEnd := a.timing.RaiseEnd, a.timing.SwingEnd
	switch {
	case p < raiseEnd:
		t := vmath.Segment(p, 0, raiseEnd)
		pose.Rotation = vmath.Lerp(RestRotation, RaisedRotation, t)
		pose.Scale = vmath.Lerp(restScale, raisedScale, t)
	case p < swingEnd:
		t := vmath.Segment(p, raiseEnd, swingEnd)
		pose.Rotation = vmath.Lerp(RaisedRotation, StrikeRotation, t)
		pose.Scale = vmath.Lerp(raisedScale, strikeScale, t)
	default:
		t := vmath.Segment(p, swingEnd, 1)
		pose.Rotation = vmath.Lerp(StrikeRotation, RestRotation, t)
		pose.Scale = vmath.Lerp(strikeScale, restScale, t)
	}
	return pose
}
