package vmath

// Lerp interpolates between a and b by t without clamping t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Segment maps t from [start, end) onto [0, 1]
// Values outside the range are clamped; a degenerate range returns 1
func Segment(t, start, end float64) float64 {
	if end <= start {
		return 1
	}
	return Clamp((t-start)/(end-start), 0, 1)
}

// EaseOutCubic decelerates towards t = 1
func EaseOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1) - 1
	return t*t*t + 1
}

