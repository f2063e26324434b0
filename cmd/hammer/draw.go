package main

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/hammering-stuff/core"
	"github.com/lixenwraith/hammering-stuff/hammer"
	"github.com/lixenwraith/hammering-stuff/render"
	"github.com/lixenwraith/hammering-stuff/session"
)

// Hammer sprite dimensions in pixels at scale 1
const (
	headWidth    = 44.0
	headHeight   = 22.0
	handleLength = 70.0
	handleWidth  = 6.0
)

// Draw renders the last frame computed by Update
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.RGBA(render.RgbBackground, 255))
	f := g.frame

	for _, obj := range f.State.Objects {
		g.drawObject(screen, obj, f)
	}
	g.drawShadow(screen, f)
	g.drawHammer(screen, f)
	g.drawHeader(screen, f)

	hint := f.Hint
	if g.message != "" {
		hint = g.message
	}
	if hint != "" {
		w := len(hint) * basicfont.Face7x13.Advance
		text.Draw(screen, hint, basicfont.Face7x13, (g.width-w)/2, g.height-16, render.RGBA(render.RgbHint, 255))
	}

	if f.State.IsGameComplete {
		g.drawComplete(screen, f.State)
	}
	if g.showMetrics {
		g.drawMetrics(screen)
	}
}

func (g *Game) screenPos(p core.Position) (float32, float32) {
	return float32(p.X), float32(p.Y + g.header)
}

// drawObject paints the object square; the impact squash follows the eased
// transform progress and hammered objects show the flattened base and nail
func (g *Game) drawObject(screen *ebiten.Image, obj core.GameObject, f session.Frame) {
	x, y := g.screenPos(obj.Position)
	size := float32(obj.Size)
	fill := render.RGBA(render.ObjectColor(obj.State), 255)

	switch obj.State {
	case core.StateHammered:
		flat := size * 0.25
		vector.DrawFilledRect(screen, x, y+size-flat, size, flat, fill, true)
		vector.DrawFilledCircle(screen, x+size/2, y+size-flat, size*0.12, render.RGBA(render.RgbNail, 255), true)
		return
	case core.StateTransformed:
		if f.Animation.TargetID == obj.ID {
			squash := float32(1 - 0.5*f.Animation.Impact)
			h := size * squash
			vector.DrawFilledRect(screen, x, y+size-h, size, h, fill, true)
			return
		}
	}

	vector.DrawFilledRect(screen, x, y, size, size, fill, true)
	vector.StrokeRect(screen, x, y, size, size, 2, render.RGBA(render.RgbObjectHammered, 255), true)

	label := obj.ObjectType
	if maxChars := int(size) / basicfont.Face7x13.Advance; len(label) > maxChars {
		label = label[:maxChars]
	}
	lw := len(label) * basicfont.Face7x13.Advance
	text.Draw(screen, label, basicfont.Face7x13, int(x)+(int(size)-lw)/2, int(y+size/2)+4, render.RGBA(render.RgbObjectLabel, 255))
}

// drawShadow fills the inner disc and fades the rim in rings over BlurAmount*4 pixels
func (g *Game) drawShadow(screen *ebiten.Image, f session.Frame) {
	cx, cy := g.screenPos(f.Cursor.Shadow)
	tint := render.RgbShadow
	if f.Ready {
		tint = render.RgbShadowReady
	}

	radius := f.Shadow.Radius
	fade := min(f.Shadow.BlurAmount*4, radius)
	inner := radius - fade
	if inner > 0 {
		vector.DrawFilledCircle(screen, cx, cy, float32(inner), render.RGBA(tint, uint8(f.Shadow.Opacity*255)), true)
	}

	steps := int(math.Ceil(fade))
	for i := range steps {
		width := fade / float64(steps)
		mid := inner + width*(float64(i)+0.5)
		a := render.ShadowAlpha(mid, radius, fade, f.Shadow.Opacity)
		vector.StrokeCircle(screen, cx, cy, float32(mid), float32(width), render.RGBA(tint, uint8(a*255)), true)
	}
}

// drawHammer draws the handle as a rotated line ending at the head
func (g *Game) drawHammer(screen *ebiten.Image, f session.Frame) {
	head := render.HeadPosition(f.Cursor.Shadow, f.Pose)
	hx, hy := g.screenPos(head)
	scale := float32(f.Pose.Scale)

	theta := (f.Pose.Rotation - hammer.RestRotation) * math.Pi / 180
	dx := float32(math.Sin(theta) * handleLength)
	dy := float32(math.Cos(theta) * handleLength)

	if f.Pose.MotionBlur {
		ghost := render.RGBA(render.RgbMotionBlur, 90)
		vector.DrawFilledRect(screen, hx-headWidth*scale/2, hy-headHeight*scale*1.5, headWidth*scale, headHeight*scale, ghost, true)
	}

	vector.StrokeLine(screen, hx, hy, hx-dx*scale, hy+dy*scale, handleWidth*scale, render.RGBA(render.RgbHammerHandle, 255), true)
	vector.DrawFilledRect(screen, hx-headWidth*scale/2, hy-headHeight*scale/2, headWidth*scale, headHeight*scale, render.RGBA(render.RgbHammerHead, 255), true)
}

func (g *Game) drawHeader(screen *ebiten.Image, f session.Frame) {
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.header), render.RGBA(render.RgbHeader, 255), false)

	now := g.clock.Now()
	left := fmt.Sprintf("Progress: %d/%d   Input: %s   %s",
		f.State.HammeredCount, f.State.TotalCount, f.Cursor.Mode, g.store.Elapsed(now).Round(time.Second))
	baseline := int(g.header)/2 + 5
	text.Draw(screen, left, basicfont.Face7x13, 12, baseline, render.RGBA(render.RgbHeaderText, 255))
	if f.Ready {
		x := 12 + (len(left)+3)*basicfont.Face7x13.Advance
		text.Draw(screen, "Ready to hammer!", basicfont.Face7x13, x, baseline, render.RGBA(render.RgbReadyText, 255))
	}

	right := "R reset  C copy  M mute  Q quit"
	if g.player.Muted() {
		right = "muted  " + right
	}
	text.Draw(screen, right, basicfont.Face7x13, g.width-12-len(right)*basicfont.Face7x13.Advance, baseline, render.RGBA(render.RgbHeaderText, 255))
}

func (g *Game) drawComplete(screen *ebiten.Image, st core.GameState) {
	lines := []string{
		"All Objects Hammered!",
		fmt.Sprintf("You successfully hammered %d objects!", st.TotalCount),
		"Press R to play again, C to copy your time",
	}
	w, h := 420, 100
	x, y := (g.width-w)/2, (g.height-h)/2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), render.RGBA(render.RgbOverlayBg, 230), true)
	for i, l := range lines {
		lw := len(l) * basicfont.Face7x13.Advance
		text.Draw(screen, l, basicfont.Face7x13, x+(w-lw)/2, y+30+i*22, render.RGBA(render.RgbOverlayText, 255))
	}
}

func (g *Game) drawMetrics(screen *ebiten.Image) {
	lines := g.reg.Lines()
	if len(lines) == 0 {
		return
	}
	w := 0
	for _, l := range lines {
		w = max(w, len(l)*basicfont.Face7x13.Advance)
	}
	x := g.width - w - 16
	y := int(g.header) + 8
	vector.DrawFilledRect(screen, float32(x-8), float32(y), float32(w+16), float32(len(lines)*16+8), color.RGBA{0, 0, 0, 180}, false)
	for i, l := range lines {
		text.Draw(screen, l, basicfont.Face7x13, x, y+16+i*16, render.RGBA(render.RgbMetricsText, 255))
	}
}
