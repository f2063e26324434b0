package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/hammering-stuff/audio"
	"github.com/lixenwraith/hammering-stuff/clock"
	"github.com/lixenwraith/hammering-stuff/config"
	"github.com/lixenwraith/hammering-stuff/core"
	"github.com/lixenwraith/hammering-stuff/game"
	"github.com/lixenwraith/hammering-stuff/input"
	"github.com/lixenwraith/hammering-stuff/session"
	"github.com/lixenwraith/hammering-stuff/status"
)

const (
	defaultHeader   = 32.0 // Header bar height when the config leaves it unset
	messageDuration = 2 * time.Second
)

// Game implements ebiten.Game over one session
type Game struct {
	session *session.Session
	store   *game.Store
	keys    *input.KeyMap
	player  *audio.Player
	clock   clock.TimeProvider
	reg     *status.Registry
	header  float64

	width, height int
	lastMouseX    int
	lastMouseY    int
	activeTouch   ebiten.TouchID
	touching      bool
	touchIDs      []ebiten.TouchID
	showMetrics   bool

	frame        session.Frame
	message      string
	messageUntil time.Time
}

func newGame(cfg *config.Config, player *audio.Player, rng *rand.Rand, tp clock.TimeProvider, reg *status.Registry, width, height int) (*Game, error) {
	cat, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}
	keys, err := cfg.KeyMap()
	if err != nil {
		return nil, err
	}

	header := cfg.Game.HeaderOffset
	if header <= 0 {
		header = defaultHeader
	}

	bounds := core.Bounds{Width: float64(width), Height: max(float64(height)-header, 0)}
	store := game.NewStore(cfg.StoreConfig(), cat, bounds, rng, tp, reg)
	store.Initialize()

	tracker := input.NewTracker(header)
	tracker.SetShadow(core.Position{X: bounds.Width / 2, Y: bounds.Height / 2})

	return &Game{
		session: session.New(cfg.SessionConfig(), store, tracker, player, tp, reg),
		store:   store,
		keys:    keys,
		player:  player,
		clock:   tp,
		reg:     reg,
		header:  header,
		width:   width,
		height:  height,
	}, nil
}

// Layout tracks the window size; a new size regenerates the field
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.session.Resize(core.Bounds{
			Width:  float64(outsideWidth),
			Height: max(float64(outsideHeight)-g.header, 0),
		}, g.clock.Now())
	}
	return outsideWidth, outsideHeight
}

// Update polls input and advances the session
func (g *Game) Update() error {
	now := g.clock.Now()

	if err := g.updateKeys(now); err != nil {
		return err
	}
	g.updatePointer(now)
	g.updateTouches(now)

	if !g.messageUntil.IsZero() && !now.Before(g.messageUntil) {
		g.message = ""
		g.messageUntil = time.Time{}
	}
	g.frame = g.session.Frame(now)
	return nil
}

func (g *Game) updatePointer(now time.Time) {
	tracker := g.session.Tracker()
	mx, my := ebiten.CursorPosition()
	if mx != g.lastMouseX || my != g.lastMouseY {
		g.lastMouseX, g.lastMouseY = mx, my
		tracker.MouseMove(core.Position{X: float64(mx), Y: float64(my)})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && float64(my) >= g.header && tracker.Mode() == input.ModeDesktop {
		g.session.Hammer(now)
	}
}

// updateTouches follows one finger at a time; a new touch starts a cycle step
func (g *Game) updateTouches(now time.Time) {
	tracker := g.session.Tracker()

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		if g.touching {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		if float64(y) < g.header {
			continue
		}
		g.activeTouch = id
		g.touching = true
		g.session.Touch(core.Position{X: float64(x), Y: float64(y)}, now)
	}

	if !g.touching {
		return
	}
	if inpututil.IsTouchJustReleased(g.activeTouch) {
		g.touching = false
		tracker.TouchEnd()
		return
	}
	x, y := ebiten.TouchPosition(g.activeTouch)
	tracker.TouchMove(core.Position{X: float64(x), Y: float64(y)})
}

func (g *Game) updateKeys(now time.Time) error {
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		switch g.action(k) {
		case input.ActionQuit:
			return ebiten.Termination
		case input.ActionReset:
			if !g.session.Reset(now) {
				g.flash("Wait for the hammer", now)
			}
		case input.ActionCopySummary:
			summary := g.store.Summary(now)
			if err := clipboard.WriteAll(summary); err != nil {
				log.Printf("hammer: clipboard: %v", err)
				g.flash("Clipboard unavailable", now)
			} else {
				g.flash("Copied: "+summary, now)
			}
		case input.ActionToggleMetrics:
			g.showMetrics = !g.showMetrics
		case input.ActionToggleMute:
			if g.player.ToggleMute() {
				g.flash("Sound off", now)
			} else {
				g.flash("Sound on", now)
			}
		case input.ActionHammer:
			g.session.Hammer(now)
		case input.ActionMoveLeft:
			g.session.Nudge(-nudgeStep, 0)
		case input.ActionMoveRight:
			g.session.Nudge(nudgeStep, 0)
		case input.ActionMoveUp:
			g.session.Nudge(0, -nudgeStep)
		case input.ActionMoveDown:
			g.session.Nudge(0, nudgeStep)
		}
	}
	return nil
}

const nudgeStep = 10.0

// action resolves an ebiten key through the key map
func (g *Game) action(k ebiten.Key) input.Action {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	switch {
	case ctrl && k == ebiten.KeyC:
		return g.keys.Key(input.KeyCtrlC)
	case k >= ebiten.KeyA && k <= ebiten.KeyZ:
		return g.keys.Rune(rune('a' + (k - ebiten.KeyA)))
	case k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9:
		return g.keys.Rune(rune('0' + (k - ebiten.KeyDigit0)))
	}

	switch k {
	case ebiten.KeyEscape:
		return g.keys.Key(input.KeyEscape)
	case ebiten.KeyEnter:
		return g.keys.Key(input.KeyEnter)
	case ebiten.KeySpace:
		return g.keys.Key(input.KeySpace)
	case ebiten.KeyF2:
		return g.keys.Key(input.KeyF2)
	case ebiten.KeyArrowLeft:
		return g.keys.Key(input.KeyLeft)
	case ebiten.KeyArrowRight:
		return g.keys.Key(input.KeyRight)
	case ebiten.KeyArrowUp:
		return g.keys.Key(input.KeyUp)
	case ebiten.KeyArrowDown:
		return g.keys.Key(input.KeyDown)
	}
	return input.ActionNone
}

func (g *Game) flash(msg string, now time.Time) {
	g.message = msg
	g.messageUntil = now.Add(messageDuration)
}

func (g *Game) close() {
	g.session.Close(g.clock.Now())
}
