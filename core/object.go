package core

import "time"

// ObjectState is the lifecycle stage of a game object
// Transitions only move forward: Normal -> Transformed -> Hammered
type ObjectState uint8

const (
	StateNormal ObjectState = iota
	StateTransformed
	StateHammered
)

// String returns the lowercase state name
func (s ObjectState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateTransformed:
		return "transformed"
	case StateHammered:
		return "hammered"
	default:
		return "unknown"
	}
}

// CanAdvance reports whether moving from s to next is a forward transition
func (s ObjectState) CanAdvance(next ObjectState) bool {
	return next > s && next <= StateHammered
}

// GameObject is one interactive item on the field
// Position is the top-left anchor of a square bounding box of side Size
type GameObject struct {
	ID         string
	Position   Position
	ObjectType string
	NailType   string
	State      ObjectState
	Radius     float64 // Size / 2
	Size       float64
}

// Center returns the middle of the bounding box
func (o GameObject) Center() Position {
	return Position{X: o.Position.X + o.Size/2, Y: o.Position.Y + o.Size/2}
}

// GameState aggregates the object list and progress counters
type GameState struct {
	Objects        []GameObject
	HammeredCount  int
	TotalCount     int
	IsGameComplete bool
	GameStartTime  time.Time
}

// Clone returns a copy that shares no slice memory with s
func (s GameState) Clone() GameState {
	c := s
	c.Objects = make([]GameObject, len(s.Objects))
	copy(c.Objects, s.Objects)
	return c
}

// ShadowConfig describes the cursor shadow
// Only Radius is used by collision; Opacity and BlurAmount are presentation hints
type ShadowConfig struct {
	Radius     float64
	Opacity    float64
	BlurAmount float64
}

// MaskCoordinates is the shadow circle relative to an object's top-left corner
type MaskCoordinates struct {
	CenterX float64
	CenterY float64
	Radius  float64
}

// ObjectMaskData is the per-frame coverage result for one object
type ObjectMaskData struct {
	ObjectID               string
	HasIntersection        bool
	MaskCoordinates        MaskCoordinates
	IntersectionPercentage float64 // [0, 1]
	IsFullyCovered         bool
}
