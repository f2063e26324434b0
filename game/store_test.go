package game

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/hammering-stuff/catalog"
	"github.com/lixenwraith/hammering-stuff/clock"
	"github.com/lixenwraith/hammering-stuff/core"
	"github.com/lixenwraith/hammering-stuff/layout"
	"github.com/lixenwraith/hammering-stuff/status"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

var defaultConfig = Config{
	ObjectCount:    35,
	Placement:      layout.Config{MinDistance: 80, Margin: 40, MaxAttempts: 100},
	MinimumObjects: 20,
}

func newTestStore(t *testing.T, cfg Config, cat *catalog.Catalog, bounds core.Bounds) (*Store, *clock.MockTimeProvider, *status.Registry) {
	t.Helper()
	mock := clock.NewMockTimeProvider(epoch)
	reg := status.NewRegistry()
	s := NewStore(cfg, cat, bounds, rand.New(rand.NewSource(1)), mock, reg)
	s.Initialize()
	return s, mock, reg
}

func captureLog(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	saved := logf
	logf = func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}
	t.Cleanup(func() { logf = saved })
	return &lines
}

func TestInitialize(t *testing.T) {
	s, _, _ := newTestStore(t, defaultConfig, catalog.Default(), core.Bounds{Width: 1920, Height: 1080})
	st := s.State()

	if st.TotalCount != 35 || len(st.Objects) != 35 {
		t.Fatalf("Expected 35 objects, got total %d len %d", st.TotalCount, len(st.Objects))
	}
	if st.HammeredCount != 0 || st.IsGameComplete {
		t.Errorf("Fresh game has progress: %+v", st)
	}
	if !st.GameStartTime.Equal(epoch) {
		t.Errorf("GameStartTime = %v, want %v", st.GameStartTime, epoch)
	}

	types := map[string]bool{}
	ids := map[string]bool{}
	for _, obj := range st.Objects {
		if !strings.HasPrefix(obj.ID, "obj_") {
			t.Errorf("Unexpected id %q", obj.ID)
		}
		if ids[obj.ID] || types[obj.ObjectType] {
			t.Errorf("Duplicate id or type: %s %s", obj.ID, obj.ObjectType)
		}
		ids[obj.ID], types[obj.ObjectType] = true, true

		if obj.Radius != obj.Size/2 {
			t.Errorf("%s: radius %v != size/2", obj.ID, obj.Radius)
		}
		if obj.State != core.StateNormal {
			t.Errorf("%s: state %s", obj.ID, obj.State)
		}
		def, _ := catalog.Default().Lookup(obj.ObjectType)
		if obj.NailType != def.NailType || obj.Size != def.BaseSize {
			t.Errorf("%s: object does not match its definition", obj.ID)
		}
		if obj.Position.X < 40 || obj.Position.X > 1880 || obj.Position.Y < 40 || obj.Position.Y > 1040 {
			t.Errorf("%s: position %v outside valid area", obj.ID, obj.Position)
		}
	}

	if pairs := layout.Overlaps(st.Objects); len(pairs) != 0 {
		t.Errorf("Overlapping objects after repair: %v", pairs)
	}
}

func TestHammerObject(t *testing.T) {
	cat, err := catalog.New([]catalog.Definition{
		{ID: "key", NailType: "common-nail"},
		{ID: "lock", NailType: "wood-screw"},
		{ID: "map", NailType: "roofing-nail"},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	cfg := defaultConfig
	cfg.MinimumObjects = 0
	s, _, _ := newTestStore(t, cfg, cat, core.Bounds{Width: 800, Height: 600})

	objects := s.State().Objects
	if len(objects) != 3 {
		t.Fatalf("Expected 3 objects, got %d", len(objects))
	}

	for i, obj := range objects {
		if !s.HammerObject(obj.ID) {
			t.Fatalf("HammerObject(%s) failed", obj.ID)
		}
		st := s.State()
		if st.HammeredCount != i+1 {
			t.Errorf("HammeredCount = %d, want %d", st.HammeredCount, i+1)
		}
		if st.IsGameComplete != (i == len(objects)-1) {
			t.Errorf("IsGameComplete = %v after %d hammers", st.IsGameComplete, i+1)
		}

		// Second hammer is a no-op
		before := s.State()
		if s.HammerObject(obj.ID) {
			t.Error("Re-hammering should report false")
		}
		after := s.State()
		if after.HammeredCount != before.HammeredCount || after.IsGameComplete != before.IsGameComplete {
			t.Error("Re-hammering changed the state")
		}
	}

	if s.HammerObject("obj_missing") {
		t.Error("Unknown id should report false")
	}
	if !s.State().IsGameComplete {
		t.Error("Game should stay complete")
	}
}

func TestUpdateObjectStateForwardOnly(t *testing.T) {
	s, _, _ := newTestStore(t, defaultConfig, catalog.Default(), core.Bounds{Width: 1920, Height: 1080})
	id := s.State().Objects[0].ID

	if !s.TransformObject(id) {
		t.Fatal("normal -> transformed should succeed")
	}
	if s.TransformObject(id) {
		t.Error("transformed -> transformed should be ignored")
	}
	if s.UpdateObjectState(id, core.StateNormal) {
		t.Error("Backwards transition should be ignored")
	}
	if obj, _ := s.ObjectByID(id); obj.State != core.StateTransformed {
		t.Errorf("State = %s, want transformed", obj.State)
	}

	if !s.UpdateObjectState(id, core.StateHammered) {
		t.Fatal("transformed -> hammered should succeed")
	}
	if s.State().HammeredCount != 1 {
		t.Error("Hammering through UpdateObjectState must update the count")
	}
	if s.UpdateObjectState("obj_missing", core.StateHammered) {
		t.Error("Unknown id should be ignored")
	}
}

func TestObjectsInState(t *testing.T) {
	s, _, _ := newTestStore(t, defaultConfig, catalog.Default(), core.Bounds{Width: 1920, Height: 1080})
	objects := s.State().Objects

	s.HammerObject(objects[2].ID)
	s.TransformObject(objects[4].ID)

	if got := len(s.ObjectsInState(core.StateNormal)); got != 33 {
		t.Errorf("Expected 33 normal, got %d", got)
	}
	if got := s.ObjectsInState(core.StateHammered); len(got) != 1 || got[0].ID != objects[2].ID {
		t.Errorf("Unexpected hammered set %v", got)
	}
	if got := s.ObjectsInState(core.StateTransformed); len(got) != 1 || got[0].ID != objects[4].ID {
		t.Errorf("Unexpected transformed set %v", got)
	}
}

// TestResetMidGame: 15 of 35 hammered, reset yields a fresh field with new ids
func TestResetMidGame(t *testing.T) {
	s, mock, reg := newTestStore(t, defaultConfig, catalog.Default(), core.Bounds{Width: 1920, Height: 1080})
	before := s.State()
	for _, obj := range before.Objects[:15] {
		s.HammerObject(obj.ID)
	}
	if s.State().HammeredCount != 15 {
		t.Fatalf("Setup failed: %d hammered", s.State().HammeredCount)
	}
	gen := s.Generation()

	mock.Advance(90 * time.Second)
	s.Reset()
	after := s.State()

	if after.HammeredCount != 0 || after.IsGameComplete {
		t.Errorf("Reset left progress: %d hammered, complete %v", after.HammeredCount, after.IsGameComplete)
	}
	if after.TotalCount != 35 {
		t.Errorf("TotalCount = %d, want 35", after.TotalCount)
	}
	if !after.GameStartTime.Equal(epoch.Add(90 * time.Second)) {
		t.Errorf("GameStartTime not refreshed: %v", after.GameStartTime)
	}
	if s.Generation() == gen {
		t.Error("Generation should change on reset")
	}

	old := map[string]bool{}
	for _, obj := range before.Objects {
		old[obj.ID] = true
	}
	for _, obj := range after.Objects {
		if old[obj.ID] {
			t.Errorf("Id %s reused after reset", obj.ID)
		}
		if obj.State != core.StateNormal {
			t.Errorf("Object %s not normal after reset", obj.ID)
		}
	}
	if _, ok := s.ObjectByID(before.Objects[0].ID); ok {
		t.Error("Old ids must not resolve after reset")
	}
	if reg.Counter(status.GameResets).Load() != 1 {
		t.Error("Expected reset counter 1")
	}
}

func TestStateIsACopy(t *testing.T) {
	s, _, _ := newTestStore(t, defaultConfig, catalog.Default(), core.Bounds{Width: 1920, Height: 1080})

	st := s.State()
	st.Objects[0].State = core.StateHammered
	st.HammeredCount = 99

	if s.State().Objects[0].State != core.StateNormal || s.State().HammeredCount != 0 {
		t.Error("Mutating a snapshot leaked into the store")
	}
}

func TestEmptyCatalogDegrades(t *testing.T) {
	logged := captureLog(t)
	s, _, _ := newTestStore(t, defaultConfig, nil, core.Bounds{Width: 1920, Height: 1080})

	st := s.State()
	if len(st.Objects) != 0 || st.TotalCount != 0 || st.IsGameComplete {
		t.Errorf("Expected empty incomplete game, got %+v", st)
	}
	if len(*logged) == 0 || !strings.Contains((*logged)[0], "no object types") {
		t.Errorf("Expected the empty field to be reported, got %v", *logged)
	}
}

func TestMinimumObjectsWarning(t *testing.T) {
	logged := captureLog(t)
	cfg := defaultConfig
	cfg.ObjectCount = 5
	s, _, _ := newTestStore(t, cfg, catalog.Default(), core.Bounds{Width: 1920, Height: 1080})

	if s.State().TotalCount != 5 {
		t.Errorf("Expected play to continue with 5 objects, got %d", s.State().TotalCount)
	}
	if len(*logged) != 1 || !strings.Contains((*logged)[0], "below the minimum") {
		t.Errorf("Expected one minimum warning, got %v", *logged)
	}
}

func TestResponsiveScaling(t *testing.T) {
	cfg := defaultConfig
	cfg.Responsive = true
	cfg.ObjectCount = 10
	cfg.MinimumObjects = 0
	s, _, _ := newTestStore(t, cfg, catalog.Default(), core.Bounds{Width: 960, Height: 1080})

	for _, obj := range s.State().Objects {
		def, _ := catalog.Default().Lookup(obj.ObjectType)
		if obj.Size != def.BaseSize*0.5 || obj.Radius != obj.Size/2 {
			t.Errorf("%s: size %v, want %v", obj.ObjectType, obj.Size, def.BaseSize*0.5)
		}
	}
}

func TestSetBoundsAppliesOnReset(t *testing.T) {
	s, _, _ := newTestStore(t, defaultConfig, catalog.Default(), core.Bounds{Width: 1920, Height: 1080})
	s.SetBounds(core.Bounds{Width: 800, Height: 600})
	s.Reset()

	if s.Bounds() != (core.Bounds{Width: 800, Height: 600}) {
		t.Errorf("Bounds = %+v", s.Bounds())
	}
	for _, obj := range s.State().Objects {
		if obj.Position.X > 760 || obj.Position.Y > 560 {
			t.Errorf("%s at %v outside the new viewport", obj.ID, obj.Position)
		}
	}
}

func TestSummary(t *testing.T) {
	cat, _ := catalog.New([]catalog.Definition{
		{ID: "key", NailType: "common-nail"},
		{ID: "lock", NailType: "common-nail"},
	}, nil)
	cfg := defaultConfig
	cfg.MinimumObjects = 0
	s, mock, _ := newTestStore(t, cfg, cat, core.Bounds{Width: 800, Height: 600})

	now := mock.Advance(83 * time.Second)
	if got, want := s.Summary(now), "Hammered 0/2 objects in 1m23s"; got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
	if s.Elapsed(now) != 83*time.Second {
		t.Errorf("Elapsed = %v", s.Elapsed(now))
	}

	for _, obj := range s.State().Objects {
		s.HammerObject(obj.ID)
	}
	if got, want := s.Summary(now), "Hammered all 2 objects in 1m23s"; got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
}
