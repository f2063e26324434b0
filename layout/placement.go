// Package layout scatters game objects over the viewport without overlap
package layout

import (
	"log"
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/lixenwraith/hammering-stuff/core"
	"github.com/lixenwraith/hammering-stuff/status"
	"github.com/lixenwraith/hammering-stuff/vmath"
)

const (
	// Grid pre-pass runs once more than this many objects are placed
	gridThreshold = 20
	gridTries     = 10
	gridJitter    = 0.3
	gridSlack     = 0.8

	spiralAngleStep = 0.5
	spiralBase      = 40.0
	spiralGrowth    = 8.0

	// MaxRepairPasses bounds the post-placement overlap repair
	MaxRepairPasses = 10
)

// Strategy records which step produced a position
type Strategy uint8

const (
	StrategyGrid Strategy = iota
	StrategyRandom
	StrategySpiral
)

// String returns the strategy name
func (s Strategy) String() string {
	switch s {
	case StrategyGrid:
		return "grid"
	case StrategyRandom:
		return "random"
	case StrategySpiral:
		return "spiral"
	default:
		return "unknown"
	}
}

// Config holds placement parameters; it is an input, never stored on objects
type Config struct {
	MinDistance float64 // Minimum distance between anchors
	Margin      float64 // Keep-out band along every viewport edge
	MaxAttempts int     // Random samples before the spiral fallback
}

// Placer produces positions inside a fixed viewport
// Not safe for concurrent use: it owns a *rand.Rand
type Placer struct {
	cfg    Config
	bounds core.Bounds
	rng    *rand.Rand

	statGrid    *atomic.Int64
	statRandom  *atomic.Int64
	statSpiral  *atomic.Int64
	statPasses  *atomic.Int64
	statOverlap *atomic.Int64
}

// NewPlacer creates a placer for bounds; reg may be nil
func NewPlacer(cfg Config, bounds core.Bounds, rng *rand.Rand, reg *status.Registry) *Placer {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Placer{
		cfg:         cfg,
		bounds:      bounds,
		rng:         rng,
		statGrid:    reg.Counter(status.PlacementGrid),
		statRandom:  reg.Counter(status.PlacementRandom),
		statSpiral:  reg.Counter(status.PlacementSpiral),
		statPasses:  reg.Counter(status.PlacementRepairPass),
		statOverlap: reg.Counter(status.PlacementOverlapLeft),
	}
}

// area is the valid anchor rectangle [minX, maxX] x [minY, maxY]
type area struct {
	minX, maxX, minY, maxY float64
}

// validArea shrinks the viewport by the margin
// An axis narrower than twice the margin collapses to its midpoint
func (p *Placer) validArea() area {
	a := area{
		minX: p.cfg.Margin,
		maxX: p.bounds.Width - p.cfg.Margin,
		minY: p.cfg.Margin,
		maxY: p.bounds.Height - p.cfg.Margin,
	}
	if a.maxX < a.minX {
		a.minX = p.bounds.Width / 2
		a.maxX = a.minX
	}
	if a.maxY < a.minY {
		a.minY = p.bounds.Height / 2
		a.maxY = a.minY
	}
	return a
}

// Place returns a position for the next object given the anchors already placed
// It always returns; the spiral fallback skips conflict checks
func (p *Placer) Place(existing []core.Position) (core.Position, Strategy) {
	a := p.validArea()

	if len(existing) > gridThreshold {
		if pos, ok := p.tryGrid(existing, a); ok {
			status.Inc(p.statGrid)
			return pos, StrategyGrid
		}
	}

	for attempt := 0; attempt < p.cfg.MaxAttempts; attempt++ {
		candidate := core.Position{
			X: p.rng.Float64()*(a.maxX-a.minX) + a.minX,
			Y: p.rng.Float64()*(a.maxY-a.minY) + a.minY,
		}
		if !conflicts(candidate, existing, p.cfg.MinDistance) {
			status.Inc(p.statRandom)
			return candidate, StrategyRandom
		}
	}

	status.Inc(p.statSpiral)
	return Spiral(len(existing), a.minX, a.maxX, a.minY, a.maxY), StrategySpiral
}

// tryGrid samples jittered cells of a coarse grid with a looser spacing rule
func (p *Placer) tryGrid(existing []core.Position, a area) (core.Position, bool) {
	cell := p.cfg.MinDistance
	if cell <= 0 {
		return core.Position{}, false
	}

	cols := int(math.Floor((a.maxX - a.minX) / cell))
	rows := int(math.Floor((a.maxY - a.minY) / cell))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	for attempt := 0; attempt < gridTries; attempt++ {
		col := p.rng.Intn(cols)
		row := p.rng.Intn(rows)

		candidate := core.Position{
			X: a.minX + float64(col)*cell + p.rng.Float64()*cell*gridJitter,
			Y: a.minY + float64(row)*cell + p.rng.Float64()*cell*gridJitter,
		}
		if !conflicts(candidate, existing, cell*gridSlack) {
			return candidate, true
		}
	}
	return core.Position{}, false
}

// conflicts reports whether candidate is closer than minDistance to any anchor
func conflicts(candidate core.Position, existing []core.Position, minDistance float64) bool {
	for _, e := range existing {
		if vmath.Distance(candidate, e) < minDistance {
			return true
		}
	}
	return false
}

// Spiral is the deterministic last-resort position for the index-th object
func Spiral(index int, minX, maxX, minY, maxY float64) core.Position {
	center := core.Position{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}
	span := math.Min(maxX-minX, maxY-minY)
	radius := math.Min(spiralBase+float64(index)*spiralGrowth, span/3)
	return vmath.PolarOffset(center, radius, float64(index)*spiralAngleStep)
}

// ResponsiveScale maps a viewport width onto an object scale factor
func ResponsiveScale(width float64) float64 {
	const baseWidth = 1920
	return vmath.Clamp(width/baseWidth, 0.4, 1.2)
}

// logf is swapped out by tests
var logf = log.Printf
