package render

import (
	"math"

	"github.com/lixenwraith/hammering-stuff/core"
)

// HeaderRows is the number of terminal rows reserved for the status line
const HeaderRows = 1

// Viewport maps terminal cells to play field pixels
// Row HeaderRows is field y 0; each cell covers CellWidth x CellHeight pixels
type Viewport struct {
	CellWidth  float64
	CellHeight float64
}

// ToField returns the field position of the center of cell (x, y)
func (v Viewport) ToField(x, y int) core.Position {
	return core.Position{
		X: (float64(x) + 0.5) * v.CellWidth,
		Y: (float64(y-HeaderRows) + 0.5) * v.CellHeight,
	}
}

// ToCell returns the cell containing field position p
func (v Viewport) ToCell(p core.Position) (int, int) {
	return int(math.Floor(p.X / v.CellWidth)), int(math.Floor(p.Y/v.CellHeight)) + HeaderRows
}

// FieldBounds returns the pixel size of the play field for a screen of cols x rows
// The header row and the hint row are excluded
func (v Viewport) FieldBounds(cols, rows int) core.Bounds {
	fieldRows := max(rows-HeaderRows-1, 0)
	return core.Bounds{
		Width:  float64(max(cols, 0)) * v.CellWidth,
		Height: float64(fieldRows) * v.CellHeight,
	}
}

// CellRect returns the inclusive cell span covering a pixel square
func (v Viewport) CellRect(pos core.Position, size float64) (x0, y0, x1, y1 int) {
	x0, y0 = v.ToCell(pos)
	x1, y1 = v.ToCell(core.Position{X: pos.X + size, Y: pos.Y + size})
	// A square ending exactly on a cell edge does not spill into the next cell
	if math.Mod(pos.X+size, v.CellWidth) == 0 && x1 > x0 {
		x1--
	}
	if math.Mod(pos.Y+size, v.CellHeight) == 0 && y1 > y0 {
		y1--
	}
	return x0, y0, x1, y1
}
