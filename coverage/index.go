package coverage

import (
	"math"
	"sort"

	"github.com/lixenwraith/hammering-stuff/core"
)

// Index is a uniform grid over object bounding squares
// Each cell lists the indices of objects whose square touches it
type Index struct {
	cellSize float64
	cells    map[cellKey][]int
	count    int
	seen     []bool // Scratch for Query dedup, sized to count
}

type cellKey struct {
	x, y int
}

// NewIndex creates an empty index with the given cell side in pixels
func NewIndex(cellSize float64) *Index {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Index{
		cellSize: cellSize,
		cells:    make(map[cellKey][]int),
	}
}

// Len returns the number of indexed objects
func (ix *Index) Len() int {
	return ix.count
}

// Clear removes all entries
func (ix *Index) Clear() {
	clear(ix.cells)
	ix.count = 0
	ix.seen = ix.seen[:0]
}

// Rebuild replaces the index contents with objects
func (ix *Index) Rebuild(objects []core.GameObject) {
	ix.Clear()
	for i, obj := range objects {
		x0, y0 := ix.cellOf(obj.Position.X, obj.Position.Y)
		x1, y1 := ix.cellOf(obj.Position.X+obj.Size, obj.Position.Y+obj.Size)
		for cy := y0; cy <= y1; cy++ {
			for cx := x0; cx <= x1; cx++ {
				k := cellKey{cx, cy}
				ix.cells[k] = append(ix.cells[k], i)
			}
		}
	}
	ix.count = len(objects)
	if cap(ix.seen) < ix.count {
		ix.seen = make([]bool, ix.count)
	}
	ix.seen = ix.seen[:ix.count]
}

// Query returns, in ascending order, indices of objects whose cells touch the
// circle's bounding box. Candidates still need the exact intersection test
func (ix *Index) Query(center core.Position, radius float64) []int {
	x0, y0 := ix.cellOf(center.X-radius, center.Y-radius)
	x1, y1 := ix.cellOf(center.X+radius, center.Y+radius)

	var out []int
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			for _, i := range ix.cells[cellKey{cx, cy}] {
				if !ix.seen[i] {
					ix.seen[i] = true
					out = append(out, i)
				}
			}
		}
	}
	for _, i := range out {
		ix.seen[i] = false
	}

	// Ascending order keeps the first-wins tie rule of the linear scan
	sort.Ints(out)
	return out
}

func (ix *Index) cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / ix.cellSize)), int(math.Floor(y / ix.cellSize))
}
