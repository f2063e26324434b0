package vmath

import (
	"math"

	"github.com/lixenwraith/hammering-stuff/core"
)

// Distance returns the Euclidean distance between a and b
func Distance(a, b core.Position) float64 {
	return math.Sqrt(DistanceSq(a, b))
}

// DistanceSq returns the squared Euclidean distance, avoiding the sqrt for comparisons
func DistanceSq(a, b core.Position) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// CirclesOverlap reports whether two circles overlap
// Touching circles (distance == r1+r2) do not overlap
func CirclesOverlap(c1 core.Position, r1 float64, c2 core.Position, r2 float64) bool {
	return Distance(c1, c2) < r1+r2
}

// CircleRectIntersects reports whether a circle touches an axis-aligned square
// The circle center is clamped into the square to find the nearest point,
// then compared by squared distance. Tangent contact counts as intersecting
func CircleRectIntersects(center core.Position, radius float64, topLeft core.Position, side float64) bool {
	nearest := core.Position{
		X: Clamp(center.X, topLeft.X, topLeft.X+side),
		Y: Clamp(center.Y, topLeft.Y, topLeft.Y+side),
	}
	return DistanceSq(center, nearest) <= radius*radius
}

// Clamp restricts v to [lo, hi]
// When lo > hi the result is lo
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// PolarOffset returns center moved by radius along angle (radians)
func PolarOffset(center core.Position, radius, angle float64) core.Position {
	return core.Position{
		X: center.X + math.Cos(angle)*radius,
		Y: center.Y + math.Sin(angle)*radius,
	}
}
