package coverage

import (
	"slices"
	"testing"

	"github.com/lixenwraith/hammering-stuff/core"
)

func TestIndexQuery(t *testing.T) {
	ix := NewIndex(90)
	objects := []core.GameObject{
		object("a", 10, 10, 60),   // cell (0,0)
		object("b", 80, 10, 60),   // spans cells (0,0) and (1,0)
		object("c", 400, 400, 60), // cell (4,4)
	}
	ix.Rebuild(objects)

	if ix.Len() != 3 {
		t.Fatalf("Len = %d, want 3", ix.Len())
	}

	got := ix.Query(core.Position{X: 40, Y: 40}, 30)
	if !slices.Equal(got, []int{0, 1}) {
		t.Errorf("Query near origin = %v, want [0 1]", got)
	}

	// b is listed in two cells but must be returned once
	got = ix.Query(core.Position{X: 90, Y: 40}, 45)
	if !slices.Equal(got, []int{0, 1}) {
		t.Errorf("Query across cells = %v, want [0 1]", got)
	}

	got = ix.Query(core.Position{X: 430, Y: 430}, 10)
	if !slices.Equal(got, []int{2}) {
		t.Errorf("Query far cell = %v, want [2]", got)
	}

	if got := ix.Query(core.Position{X: 1000, Y: 1000}, 10); len(got) != 0 {
		t.Errorf("Empty region returned %v", got)
	}
}

func TestIndexNegativeCoordinates(t *testing.T) {
	ix := NewIndex(50)
	ix.Rebuild([]core.GameObject{object("neg", -70, -70, 40)})

	if got := ix.Query(core.Position{X: -50, Y: -50}, 5); !slices.Equal(got, []int{0}) {
		t.Errorf("Query = %v, want [0]", got)
	}
	if got := ix.Query(core.Position{X: 30, Y: 30}, 5); len(got) != 0 {
		t.Errorf("Positive quadrant query returned %v", got)
	}
}

func TestIndexClearAndReuse(t *testing.T) {
	ix := NewIndex(0) // Falls back to a 1px cell
	ix.Rebuild([]core.GameObject{object("a", 0, 0, 3), object("b", 10, 10, 3)})
	ix.Clear()

	if ix.Len() != 0 {
		t.Errorf("Len after Clear = %d", ix.Len())
	}
	if got := ix.Query(core.Position{X: 1, Y: 1}, 2); len(got) != 0 {
		t.Errorf("Query after Clear = %v", got)
	}

	ix.Rebuild([]core.GameObject{object("c", 5, 5, 2)})
	if got := ix.Query(core.Position{X: 6, Y: 6}, 1); !slices.Equal(got, []int{0}) {
		t.Errorf("Query after reuse = %v", got)
	}
}
