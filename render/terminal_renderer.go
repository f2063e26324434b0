// Package render draws game frames onto a tcell screen and holds the palette
// shared with the window front-end
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hammering-stuff/core"
	"github.com/lixenwraith/hammering-stuff/hammer"
	"github.com/lixenwraith/hammering-stuff/session"
	"github.com/lixenwraith/hammering-stuff/status"
	"github.com/lixenwraith/hammering-stuff/vmath"
)

// Glyphs
const (
	glyphNormal      = '▒'
	glyphTransformed = '▓'
	glyphHammered    = '▁'
	glyphNail        = '┬'
	glyphHead        = '█'
	glyphHandle      = '│'
	glyphBlur        = '·'
)

// HUD carries front-end state that is not part of the game frame
type HUD struct {
	Elapsed time.Duration
	Muted   bool
	Message string // Transient status, e.g. clipboard result
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen      tcell.Screen
	view        Viewport
	reg         *status.Registry
	width       int
	height      int
	showMetrics bool
}

// NewTerminalRenderer creates a renderer for screen; reg may be nil
func NewTerminalRenderer(screen tcell.Screen, view Viewport, reg *status.Registry) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen: screen,
		view:   view,
		reg:    reg,
		width:  w,
		height: h,
	}
}

// Resize records new screen dimensions
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// FieldBounds returns the play field in pixels for the current screen size
func (r *TerminalRenderer) FieldBounds() core.Bounds {
	return r.view.FieldBounds(r.width, r.height)
}

// Viewport returns the cell to pixel mapping
func (r *TerminalRenderer) Viewport() Viewport {
	return r.view
}

// ToggleMetrics flips the metrics overlay
func (r *TerminalRenderer) ToggleMetrics() bool {
	r.showMetrics = !r.showMetrics
	return r.showMetrics
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(f session.Frame, hud HUD) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.fill(defaultStyle)

	for _, obj := range f.State.Objects {
		r.drawObject(obj, defaultStyle)
	}
	r.drawShadow(f, defaultStyle)
	r.drawHammer(f, defaultStyle)

	r.drawHeader(f, hud)
	r.drawHint(f.Hint, hud.Message, defaultStyle)

	if f.State.IsGameComplete {
		r.drawComplete(f.State, hud)
	}
	if r.showMetrics {
		r.drawMetrics()
	}

	r.screen.Show()
}

func (r *TerminalRenderer) fill(style tcell.Style) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// fieldRow reports whether y is inside the play field rows
func (r *TerminalRenderer) fieldRow(y int) bool {
	return y >= HeaderRows && y < r.height-1
}

func (r *TerminalRenderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.width || !r.fieldRow(y) {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// drawObject paints the object's bounding square with a state glyph and a label
// Hammered objects flatten to their bottom row with the nail head on top
func (r *TerminalRenderer) drawObject(obj core.GameObject, defaultStyle tcell.Style) {
	x0, y0, x1, y1 := r.view.CellRect(obj.Position, obj.Size)
	style := defaultStyle.Foreground(ObjectColor(obj.State))

	if obj.State == core.StateHammered {
		for x := x0; x <= x1; x++ {
			r.set(x, y1, glyphHammered, style)
		}
		r.set((x0+x1)/2, y1-1, glyphNail, defaultStyle.Foreground(RgbNail))
		return
	}

	glyph := glyphNormal
	if obj.State == core.StateTransformed {
		glyph = glyphTransformed
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.set(x, y, glyph, style)
		}
	}

	label := []rune(obj.ObjectType)
	if w := x1 - x0 + 1; len(label) > w {
		label = label[:w]
	}
	labelStyle := style.Foreground(RgbObjectLabel).Background(ObjectColor(obj.State))
	start := x0 + (x1-x0+1-len(label))/2
	for i, ch := range label {
		r.set(start+i, (y0+y1)/2, ch, labelStyle)
	}
}

// drawShadow darkens the background of every cell whose center lies in the disc
// The outer BlurAmount cells fade out; a ready shadow is tinted red
func (r *TerminalRenderer) drawShadow(f session.Frame, defaultStyle tcell.Style) {
	center := f.Cursor.Shadow
	radius := f.Shadow.Radius
	if radius <= 0 {
		return
	}

	tint := RgbShadow
	if f.Ready {
		tint = RgbShadowReady
	}
	fade := f.Shadow.BlurAmount * math.Min(r.view.CellWidth, r.view.CellHeight)

	x0, y0 := r.view.ToCell(core.Position{X: center.X - radius, Y: center.Y - radius})
	x1, y1 := r.view.ToCell(core.Position{X: center.X + radius, Y: center.Y + radius})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if x < 0 || x >= r.width || !r.fieldRow(y) {
				continue
			}
			d := vmath.Distance(r.view.ToField(x, y), center)
			if d > radius {
				continue
			}
			alpha := ShadowAlpha(d, radius, fade, f.Shadow.Opacity)

			ch, _, style, _ := r.screen.GetContent(x, y)
			_, bg, _ := style.Decompose()
			if bg == tcell.ColorDefault {
				_, bg, _ = defaultStyle.Decompose()
			}
			r.screen.SetContent(x, y, ch, nil, style.Background(Blend(bg, tint, alpha)))
		}
	}
}

// ShadowAlpha returns the shadow opacity at distance d from the center
// Opacity is full inside radius-fade and falls linearly to zero at the rim
func ShadowAlpha(d, radius, fade, opacity float64) float64 {
	if d > radius {
		return 0
	}
	if fade <= 0 || d <= radius-fade {
		return opacity
	}
	return opacity * (radius - d) / fade
}

// HeadPosition returns the field position of the hammer head
// Rotation maps to height: the rest pose hangs at the rest offset, the strike
// pose lands on the shadow center, and the raised pose lifts above rest
func HeadPosition(shadow core.Position, pose hammer.Pose) core.Position {
	lift := (pose.Rotation - hammer.StrikeRotation) / (hammer.RestRotation - hammer.StrikeRotation)
	lift = min(max(lift, 0), 1.25)
	return core.Position{
		X: shadow.X + pose.OffsetX*lift,
		Y: shadow.Y + pose.OffsetY*lift,
	}
}

func (r *TerminalRenderer) drawHammer(f session.Frame, defaultStyle tcell.Style) {
	head := HeadPosition(f.Cursor.Shadow, f.Pose)
	hx, hy := r.view.ToCell(head)

	// Keep the head on screen when the shadow is near the top edge
	hy = max(hy, HeaderRows)

	half := 1
	if f.Pose.Scale >= 1 {
		half = 2
	}

	if f.Pose.MotionBlur {
		blur := defaultStyle.Foreground(RgbMotionBlur)
		for x := hx - half; x <= hx+half; x++ {
			r.set(x, hy-1, glyphBlur, blur)
		}
	}

	headStyle := defaultStyle.Foreground(RgbHammerHead)
	for x := hx - half; x <= hx+half; x++ {
		r.set(x, hy, glyphHead, headStyle)
	}
	handleStyle := defaultStyle.Foreground(RgbHammerHandle)
	r.set(hx, hy+1, glyphHandle, handleStyle)
	r.set(hx, hy+2, glyphHandle, handleStyle)
}

func (r *TerminalRenderer) drawHeader(f session.Frame, hud HUD) {
	style := tcell.StyleDefault.Background(RgbHeader).Foreground(RgbHeaderText)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}

	left := fmt.Sprintf(" Progress: %d/%d | Input: %s | %s",
		f.State.HammeredCount, f.State.TotalCount, f.Cursor.Mode, hud.Elapsed.Round(time.Second))
	x := r.drawText(0, 0, left, style)
	if f.Ready {
		r.drawText(x+1, 0, "| Ready to hammer!", style.Foreground(RgbReadyText))
	}

	right := "r reset  q quit "
	if hud.Muted {
		right = "muted  " + right
	}
	r.drawText(r.width-len([]rune(right)), 0, right, style)
}

func (r *TerminalRenderer) drawHint(hint, message string, defaultStyle tcell.Style) {
	if message != "" {
		hint = message
	}
	if hint == "" || r.height < 2 {
		return
	}
	y := r.height - 1
	r.drawText((r.width-len([]rune(hint)))/2, y, hint, defaultStyle.Foreground(RgbHint))
}

func (r *TerminalRenderer) drawComplete(st core.GameState, hud HUD) {
	lines := []string{
		"All Objects Hammered!",
		fmt.Sprintf("You successfully hammered %d objects!", st.TotalCount),
		fmt.Sprintf("Time: %s", hud.Elapsed.Round(time.Second)),
		"r play again   c copy summary",
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 2

	x0 := (r.width - width) / 2
	y0 := (r.height - height) / 2
	box := tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbOverlayText)
	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			if x >= 0 && x < r.width && y >= 0 && y < r.height {
				r.screen.SetContent(x, y, ' ', nil, box)
			}
		}
	}
	for i, l := range lines {
		r.drawText(x0+(width-len([]rune(l)))/2, y0+1+i, l, box)
	}
}

// drawMetrics lists the registry right-aligned under the header
func (r *TerminalRenderer) drawMetrics() {
	style := tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbMetricsText)
	for i, line := range r.reg.Lines() {
		y := HeaderRows + i
		if y >= r.height-1 {
			break
		}
		line = " " + line + " "
		r.drawText(r.width-len(line), y, line, style)
	}
}

// drawText writes s at (x, y), clipping at the screen edges, and returns the
// column after the last rune
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	if y < 0 || y >= r.height {
		return x
	}
	for _, ch := range s {
		if x >= 0 && x < r.width {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}
