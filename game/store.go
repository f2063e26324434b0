// Package game owns the object list and applies hammer transitions
package game

import (
	"fmt"
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/hammering-stuff/catalog"
	"github.com/lixenwraith/hammering-stuff/clock"
	"github.com/lixenwraith/hammering-stuff/core"
	"github.com/lixenwraith/hammering-stuff/layout"
	"github.com/lixenwraith/hammering-stuff/status"
)

// logf is swapped out by tests
var logf = log.Printf

// Config controls how a field is generated
type Config struct {
	ObjectCount    int
	Placement      layout.Config
	MinimumObjects int  // Fewer generated objects than this is reported
	Responsive     bool // Scale sizes and spacing by viewport width
}

// Store is the single owner of the game state
// All mutation goes through its methods; callers receive copies
// Not safe for concurrent use, the frame loop is the only caller
type Store struct {
	cfg     Config
	catalog *catalog.Catalog
	bounds  core.Bounds
	rng     *rand.Rand
	clock   clock.TimeProvider
	reg     *status.Registry

	state      core.GameState
	index      map[string]int // Object id -> slice position
	generation uint64

	statResets *atomic.Int64
}

// NewStore creates an empty store; call Initialize to generate the first field
// A nil catalog or one without types yields an empty field; reg may be nil
func NewStore(cfg Config, cat *catalog.Catalog, bounds core.Bounds, rng *rand.Rand, tp clock.TimeProvider, reg *status.Registry) *Store {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if tp == nil {
		tp = clock.NewTimeProvider()
	}
	return &Store{
		cfg:        cfg,
		catalog:    cat,
		bounds:     bounds,
		rng:        rng,
		clock:      tp,
		reg:        reg,
		index:      make(map[string]int),
		statResets: reg.Counter(status.GameResets),
	}
}

// Initialize replaces the field with a freshly generated one
func (s *Store) Initialize() {
	objects := s.generate()

	s.state = core.GameState{
		Objects:       objects,
		TotalCount:    len(objects),
		GameStartTime: s.clock.Now(),
	}
	clear(s.index)
	for i, obj := range objects {
		s.index[obj.ID] = i
	}
	s.generation++
}

// Reset discards every object and starts a new game with a new type selection
func (s *Store) Reset() {
	s.Initialize()
	status.Inc(s.statResets)
}

// SetBounds changes the viewport used by the next Initialize or Reset
func (s *Store) SetBounds(b core.Bounds) {
	s.bounds = b
}

// Bounds returns the viewport for generation
func (s *Store) Bounds() core.Bounds {
	return s.bounds
}

// Generation changes every time the object list is replaced
func (s *Store) Generation() uint64 {
	return s.generation
}

func (s *Store) generate() []core.GameObject {
	if s.catalog == nil || s.catalog.Len() == 0 {
		logf("game: no object types available, starting with an empty field")
		return nil
	}

	scale := 1.0
	if s.cfg.Responsive {
		scale = layout.ResponsiveScale(s.bounds.Width)
	}
	pcfg := s.cfg.Placement
	pcfg.MinDistance *= scale

	placer := layout.NewPlacer(pcfg, s.bounds, s.rng, s.reg)
	defs := s.catalog.Pick(s.cfg.ObjectCount, s.rng)

	objects := make([]core.GameObject, 0, len(defs))
	positions := make([]core.Position, 0, len(defs))
	for _, def := range defs {
		pos, _ := placer.Place(positions)
		size := def.BaseSize * scale
		objects = append(objects, core.GameObject{
			ID:         "obj_" + uuid.NewString(),
			Position:   pos,
			ObjectType: def.ID,
			NailType:   def.NailType,
			State:      core.StateNormal,
			Radius:     size / 2,
			Size:       size,
		})
		positions = append(positions, pos)
	}

	placer.Repair(objects)

	if len(objects) < s.cfg.MinimumObjects {
		logf("game: generated %d objects, below the minimum of %d", len(objects), s.cfg.MinimumObjects)
	}
	return objects
}

// State returns a copy of the current game state
func (s *Store) State() core.GameState {
	return s.state.Clone()
}

// HammerObject moves a non-hammered object straight to hammered
// Returns false without changing anything when the id is unknown or already hammered
func (s *Store) HammerObject(id string) bool {
	i, ok := s.index[id]
	if !ok || s.state.Objects[i].State == core.StateHammered {
		return false
	}

	s.state.Objects[i].State = core.StateHammered
	s.state.HammeredCount = s.count(core.StateHammered)
	if s.state.HammeredCount == s.state.TotalCount {
		s.state.IsGameComplete = true
	}
	return true
}

// UpdateObjectState applies a forward transition; anything else is ignored
func (s *Store) UpdateObjectState(id string, next core.ObjectState) bool {
	i, ok := s.index[id]
	if !ok || !s.state.Objects[i].State.CanAdvance(next) {
		return false
	}
	if next == core.StateHammered {
		return s.HammerObject(id)
	}
	s.state.Objects[i].State = next
	return true
}

// TransformObject marks a normal object as transformed at hammer impact
func (s *Store) TransformObject(id string) bool {
	return s.UpdateObjectState(id, core.StateTransformed)
}

// ObjectByID returns the object with the given id
func (s *Store) ObjectByID(id string) (core.GameObject, bool) {
	i, ok := s.index[id]
	if !ok {
		return core.GameObject{}, false
	}
	return s.state.Objects[i], true
}

// ObjectsInState returns copies of all objects in state st, in field order
func (s *Store) ObjectsInState(st core.ObjectState) []core.GameObject {
	var out []core.GameObject
	for _, obj := range s.state.Objects {
		if obj.State == st {
			out = append(out, obj)
		}
	}
	return out
}

func (s *Store) count(st core.ObjectState) int {
	n := 0
	for _, obj := range s.state.Objects {
		if obj.State == st {
			n++
		}
	}
	return n
}

// Elapsed returns the play time since the field was generated
func (s *Store) Elapsed(now time.Time) time.Duration {
	if s.state.GameStartTime.IsZero() {
		return 0
	}
	return now.Sub(s.state.GameStartTime)
}

// Summary formats a one-line run result
func (s *Store) Summary(now time.Time) string {
	elapsed := s.Elapsed(now).Round(time.Second)
	if s.state.IsGameComplete {
		return fmt.Sprintf("Hammered all %d objects in %s", s.state.TotalCount, elapsed)
	}
	return fmt.Sprintf("Hammered %d/%d objects in %s", s.state.HammeredCount, s.state.TotalCount, elapsed)
}
