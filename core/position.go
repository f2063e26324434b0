package core

// Position is a point in viewport pixel coordinates
type Position struct {
	X, Y float64
}

// Add returns p translated by q
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Bounds is the pixel size of the playable viewport
type Bounds struct {
	Width, Height float64
}

// Empty reports whether the bounds enclose no area
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Center returns the midpoint of the viewport
func (b Bounds) Center() Position {
	return Position{X: b.Width / 2, Y: b.Height / 2}
}
