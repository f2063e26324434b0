// Package coverage measures how much of each game object the shadow circle covers
package coverage

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/hammering-stuff/core"
	"github.com/lixenwraith/hammering-stuff/status"
	"github.com/lixenwraith/hammering-stuff/vmath"
)

// Result is the per-frame coverage outcome
type Result struct {
	IntersectingObjects []core.ObjectMaskData // Input order, hammered objects excluded
	PrimaryObject       string                // Most covered object id, "" when none
	TotalIntersections  int
}

// Primary returns the mask data of the primary object
func (r Result) Primary() (core.ObjectMaskData, bool) {
	if r.PrimaryObject == "" {
		return core.ObjectMaskData{}, false
	}
	for _, m := range r.IntersectingObjects {
		if m.ObjectID == r.PrimaryObject {
			return m, true
		}
	}
	return core.ObjectMaskData{}, false
}

// Mask returns the mask data for id when that object intersects the shadow
func (r Result) Mask(id string) (core.ObjectMaskData, bool) {
	for _, m := range r.IntersectingObjects {
		if m.ObjectID == id {
			return m, true
		}
	}
	return core.ObjectMaskData{}, false
}

// IntersectionPercentage approximates the covered fraction of an object's
// inscribed circle as an overlap-distance ratio, not an exact area
func IntersectionPercentage(shadowCenter core.Position, shadowRadius float64, objectCenter core.Position, objectRadius float64) float64 {
	distance := vmath.Distance(shadowCenter, objectCenter)

	if distance+objectRadius <= shadowRadius {
		return 1
	}
	if distance >= shadowRadius+objectRadius {
		return 0
	}

	maxOverlap := 2 * math.Min(shadowRadius, objectRadius)
	if maxOverlap <= 0 {
		return 0
	}
	overlap := shadowRadius + objectRadius - distance
	return math.Min(1, overlap/maxOverlap)
}

// FullyCovered reports whether the shadow contains the object's inscribed circle
func FullyCovered(shadowCenter core.Position, shadowRadius float64, objectCenter core.Position, objectRadius float64) bool {
	return vmath.Distance(shadowCenter, objectCenter)+objectRadius <= shadowRadius
}

// Evaluate computes the mask data for one object
// The intersection test uses the bounding square while the percentage uses the
// inscribed circle, so a corner graze can intersect at 0%
func Evaluate(shadow core.Position, radius float64, obj core.GameObject) (core.ObjectMaskData, bool) {
	if !vmath.CircleRectIntersects(shadow, radius, obj.Position, obj.Size) {
		return core.ObjectMaskData{}, false
	}

	center := obj.Center()
	objectRadius := obj.Size / 2
	rel := shadow.Sub(obj.Position)

	return core.ObjectMaskData{
		ObjectID:        obj.ID,
		HasIntersection: true,
		MaskCoordinates: core.MaskCoordinates{
			CenterX: rel.X,
			CenterY: rel.Y,
			Radius:  radius,
		},
		IntersectionPercentage: IntersectionPercentage(shadow, radius, center, objectRadius),
		IsFullyCovered:         FullyCovered(shadow, radius, center, objectRadius),
	}, true
}

// Detect evaluates every non-hammered object against the shadow circle
// Pure: inputs are not modified
func Detect(shadow core.Position, radius float64, objects []core.GameObject) Result {
	var result Result
	for _, obj := range objects {
		collect(&result, shadow, radius, obj)
	}
	finish(&result)
	return result
}

func collect(result *Result, shadow core.Position, radius float64, obj core.GameObject) {
	if obj.State == core.StateHammered {
		return
	}
	if mask, ok := Evaluate(shadow, radius, obj); ok {
		result.IntersectingObjects = append(result.IntersectingObjects, mask)
	}
}

// finish picks the primary object: strictly greatest percentage, first wins ties
// Any intersecting object qualifies, including a 0% corner graze
func finish(result *Result) {
	best := -1.0
	for _, m := range result.IntersectingObjects {
		if m.IntersectionPercentage > best {
			best = m.IntersectionPercentage
			result.PrimaryObject = m.ObjectID
		}
	}
	result.TotalIntersections = len(result.IntersectingObjects)
}

// Detector runs coverage with a fixed shadow radius and publishes metrics
// Above IndexThreshold objects it answers through a spatial Index
type Detector struct {
	radius    float64
	threshold int
	index     *Index

	statFrames  *atomic.Int64
	statPrimary *status.AtomicFloat
}

// IndexThreshold is the object count above which the Detector uses its grid index
const IndexThreshold = 64

// NewDetector creates a detector for the given shadow; reg may be nil
func NewDetector(shadow core.ShadowConfig, reg *status.Registry) *Detector {
	cell := shadow.Radius * 2
	return &Detector{
		radius:      shadow.Radius,
		threshold:   IndexThreshold,
		index:       NewIndex(cell),
		statFrames:  reg.Counter(status.CoverageFrames),
		statPrimary: reg.Gauge(status.CoveragePrimary),
	}
}

// Radius returns the shadow radius used for detection
func (d *Detector) Radius() float64 {
	return d.radius
}

// Rebuild refreshes the spatial index; call whenever positions or the list change
// Object order must match the slice later passed to Detect
func (d *Detector) Rebuild(objects []core.GameObject) {
	if len(objects) > d.threshold {
		d.index.Rebuild(objects)
	} else {
		d.index.Clear()
	}
}

// Detect evaluates objects against the shadow at position
func (d *Detector) Detect(shadow core.Position, objects []core.GameObject) Result {
	var result Result
	if len(objects) > d.threshold && d.index.Len() == len(objects) {
		for _, i := range d.index.Query(shadow, d.radius) {
			collect(&result, shadow, d.radius, objects[i])
		}
		finish(&result)
	} else {
		result = Detect(shadow, d.radius, objects)
	}

	status.Inc(d.statFrames)
	if m, ok := result.Primary(); ok {
		status.Set(d.statPrimary, m.IntersectionPercentage)
	} else {
		status.Set(d.statPrimary, 0)
	}
	return result
}
