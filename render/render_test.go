package render

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hammering-stuff/core"
	"github.com/lixenwraith/hammering-stuff/hammer"
	"github.com/lixenwraith/hammering-stuff/input"
	"github.com/lixenwraith/hammering-stuff/session"
	"github.com/lixenwraith/hammering-stuff/status"
)

var testView = Viewport{CellWidth: 10, CellHeight: 20}

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func testFrame() session.Frame {
	return session.Frame{
		State: core.GameState{
			Objects: []core.GameObject{
				{ID: "obj_a", ObjectType: "anvil", Position: core.Position{X: 100, Y: 100}, Size: 60, Radius: 30},
				{ID: "obj_b", ObjectType: "bolt", Position: core.Position{X: 300, Y: 100}, Size: 60, Radius: 30, State: core.StateHammered},
			},
			TotalCount:    2,
			HammeredCount: 1,
		},
		Cursor: input.CursorState{Shadow: core.Position{X: 500, Y: 400}, FirstTouch: true},
		Shadow: core.ShadowConfig{Radius: 45, Opacity: 0.7, BlurAmount: 2},
		Pose:   hammer.Pose{OffsetX: hammer.RestOffsetX, OffsetY: hammer.RestOffsetY, Rotation: hammer.RestRotation, Scale: 0.8},
		Hint:   session.HintDesktopAim,
	}
}

func TestViewport(t *testing.T) {
	if p := testView.ToField(0, HeaderRows); p != (core.Position{X: 5, Y: 10}) {
		t.Errorf("ToField = %+v", p)
	}
	tests := []struct {
		p    core.Position
		x, y int
	}{
		{core.Position{X: 0, Y: 0}, 0, 1},
		{core.Position{X: 9.9, Y: 19.9}, 0, 1},
		{core.Position{X: 10, Y: 20}, 1, 2},
		{core.Position{X: -1, Y: -1}, -1, 0},
	}
	for _, tt := range tests {
		if x, y := testView.ToCell(tt.p); x != tt.x || y != tt.y {
			t.Errorf("ToCell(%+v) = (%d, %d), want (%d, %d)", tt.p, x, y, tt.x, tt.y)
		}
	}

	if b := testView.FieldBounds(80, 30); b != (core.Bounds{Width: 800, Height: 560}) {
		t.Errorf("FieldBounds = %+v", b)
	}
	if b := testView.FieldBounds(10, 1); b.Height != 0 {
		t.Errorf("Tiny screen height = %v", b.Height)
	}

	x0, y0, x1, y1 := testView.CellRect(core.Position{X: 100, Y: 100}, 60)
	if x0 != 10 || x1 != 15 || y0 != 6 || y1 != 8 {
		t.Errorf("CellRect = %d,%d..%d,%d", x0, y0, x1, y1)
	}
}

func TestShadowAlpha(t *testing.T) {
	tests := []struct {
		d, want float64
	}{
		{0, 0.7},
		{25, 0.7},
		{35, 0.35},
		{45, 0},
		{50, 0},
	}
	for _, tt := range tests {
		if got := ShadowAlpha(tt.d, 45, 20, 0.7); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ShadowAlpha(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
	if ShadowAlpha(44, 45, 0, 0.5) != 0.5 {
		t.Error("No fade should be flat")
	}
}

func TestBlend(t *testing.T) {
	a := tcell.NewRGBColor(0, 0, 0)
	b := tcell.NewRGBColor(200, 100, 50)
	if Blend(a, b, 0) != a || Blend(a, b, 1) != b || Blend(a, b, 2) != b {
		t.Error("Blend endpoints wrong")
	}
	if got := Blend(a, b, 0.5); got != tcell.NewRGBColor(100, 50, 25) {
		r, g, bl := got.RGB()
		t.Errorf("Blend halfway = (%d,%d,%d)", r, g, bl)
	}

	c := RGBA(tcell.NewRGBColor(255, 0, 100), 255)
	if c.R != 255 || c.G != 0 || c.B != 100 || c.A != 255 {
		t.Errorf("RGBA = %+v", c)
	}
}

func TestHeadPosition(t *testing.T) {
	shadow := core.Position{X: 500, Y: 400}
	rest := hammer.Pose{OffsetX: 16, OffsetY: -196, Rotation: hammer.RestRotation}

	if p := HeadPosition(shadow, rest); p != (core.Position{X: 516, Y: 204}) {
		t.Errorf("Rest head = %+v", p)
	}
	strike := rest
	strike.Rotation = hammer.StrikeRotation
	if p := HeadPosition(shadow, strike); p != shadow {
		t.Errorf("Strike head = %+v, want the shadow center", p)
	}
	raised := rest
	raised.Rotation = hammer.RaisedRotation
	if p := HeadPosition(shadow, raised); p.Y >= 204 || p.Y < 400-196*1.25 {
		t.Errorf("Raised head = %+v", p)
	}
}

func TestRenderFrame(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, testView, nil)
	r.RenderFrame(testFrame(), HUD{Elapsed: 83 * time.Second})

	if header := rowText(screen, 0); !strings.HasPrefix(header, " Progress: 1/2 | Input: desktop | 1m23s") {
		t.Errorf("Header = %q", header)
	}
	if strings.Contains(rowText(screen, 0), "Ready") {
		t.Error("Header claims ready")
	}

	// Normal object: filled square with a centered label
	if ch, _, style, _ := screen.GetContent(15, 6); ch != glyphNormal {
		t.Errorf("Object corner = %q", ch)
	} else if fg, _, _ := style.Decompose(); fg != RgbObjectNormal {
		t.Errorf("Object color = %v", fg)
	}
	if !strings.Contains(rowText(screen, 7), "anvil") {
		t.Errorf("Label missing: %q", rowText(screen, 7))
	}
	if ch, _, _, _ := screen.GetContent(16, 6); ch != ' ' {
		t.Errorf("Object spilled into the next cell: %q", ch)
	}

	// Hammered object: flat base and nail head
	if ch, _, _, _ := screen.GetContent(30, 8); ch != glyphHammered {
		t.Errorf("Hammered base = %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(32, 7); ch != glyphNail {
		t.Errorf("Nail = %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(32, 6); ch == glyphNormal {
		t.Error("Hammered object still drawn full height")
	}

	// Shadow center cell is darkened by the full opacity
	_, _, style, _ := screen.GetContent(50, 21)
	if _, bg, _ := style.Decompose(); bg != Blend(RgbBackground, RgbShadow, 0.7) {
		t.Errorf("Shadow background = %v", bg)
	}
	_, _, style, _ = screen.GetContent(70, 21)
	if _, bg, _ := style.Decompose(); bg != RgbBackground {
		t.Errorf("Background outside the shadow = %v", bg)
	}

	// Hammer hangs at the rest offset
	if ch, _, _, _ := screen.GetContent(51, 11); ch != glyphHead {
		t.Errorf("Hammer head = %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(51, 12); ch != glyphHandle {
		t.Errorf("Hammer handle = %q", ch)
	}

	if hint := strings.TrimSpace(rowText(screen, 29)); hint != session.HintDesktopAim {
		t.Errorf("Hint row = %q", hint)
	}
}

func TestRenderReady(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, testView, nil)

	f := testFrame()
	f.Ready = true
	f.Pose.MotionBlur = true
	f.Pose.Scale = 1.1
	r.RenderFrame(f, HUD{Muted: true, Message: "Summary copied"})

	if header := rowText(screen, 0); !strings.Contains(header, "Ready to hammer!") || !strings.Contains(header, "muted") {
		t.Errorf("Header = %q", header)
	}
	_, _, style, _ := screen.GetContent(50, 21)
	if _, bg, _ := style.Decompose(); bg != Blend(RgbBackground, RgbShadowReady, 0.7) {
		t.Errorf("Ready shadow background = %v", bg)
	}
	// Wide head and blur trail
	if ch, _, _, _ := screen.GetContent(53, 11); ch != glyphHead {
		t.Errorf("Scaled head edge = %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(51, 10); ch != glyphBlur {
		t.Errorf("Motion blur = %q", ch)
	}
	if hint := strings.TrimSpace(rowText(screen, 29)); hint != "Summary copied" {
		t.Errorf("Message should replace the hint, got %q", hint)
	}
}

func TestRenderComplete(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, testView, nil)

	f := testFrame()
	f.State.IsGameComplete = true
	f.State.HammeredCount = 2
	r.RenderFrame(f, HUD{})

	found := false
	for y := 0; y < 30; y++ {
		if strings.Contains(rowText(screen, y), "All Objects Hammered!") {
			found = true
			if !strings.Contains(rowText(screen, y+1), "You successfully hammered 2 objects!") {
				t.Errorf("Count line = %q", rowText(screen, y+1))
			}
		}
	}
	if !found {
		t.Error("Completion box missing")
	}
}

func TestMetricsOverlay(t *testing.T) {
	screen := newTestScreen(t)
	reg := status.NewRegistry()
	reg.Counter(status.HammerTriggered).Add(3)
	r := NewTerminalRenderer(screen, testView, reg)

	r.RenderFrame(testFrame(), HUD{})
	if strings.Contains(rowText(screen, 1), status.HammerTriggered) {
		t.Fatal("Metrics drawn before toggle")
	}

	if !r.ToggleMetrics() {
		t.Fatal("Toggle should enable metrics")
	}
	r.RenderFrame(testFrame(), HUD{})
	if row := rowText(screen, 1); !strings.HasSuffix(row, " "+status.HammerTriggered+" 3 ") {
		t.Errorf("Metrics row = %q", row)
	}
}

func TestResizeAndClipping(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, testView, nil)

	screen.SetSize(20, 5)
	r.Resize(20, 5)
	if b := r.FieldBounds(); b != (core.Bounds{Width: 200, Height: 60}) {
		t.Errorf("FieldBounds = %+v", b)
	}

	f := testFrame()
	f.Cursor.Shadow = core.Position{X: 5, Y: 5}
	f.Pose.Rotation = hammer.RaisedRotation
	// Must not panic when everything is near or beyond the edges
	r.RenderFrame(f, HUD{})

	if ch, _, _, _ := screen.GetContent(0, 1); ch != glyphHead && ch != ' ' && ch != glyphHandle {
		t.Errorf("Unexpected cell %q", ch)
	}
}
