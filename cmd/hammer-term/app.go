package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hammering-stuff/audio"
	"github.com/lixenwraith/hammering-stuff/clock"
	"github.com/lixenwraith/hammering-stuff/config"
	"github.com/lixenwraith/hammering-stuff/core"
	"github.com/lixenwraith/hammering-stuff/game"
	"github.com/lixenwraith/hammering-stuff/input"
	"github.com/lixenwraith/hammering-stuff/render"
	"github.com/lixenwraith/hammering-stuff/session"
	"github.com/lixenwraith/hammering-stuff/status"
)

const messageDuration = 2 * time.Second

// writeClipboard is swapped in tests
var writeClipboard = clipboard.WriteAll

// app wires one terminal session
type app struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	session  *session.Session
	store    *game.Store
	keys     *input.KeyMap
	player   *audio.Player
	clock    clock.TimeProvider
	view     render.Viewport

	pressed      bool // Primary button held, hammer fires on press only
	message      string
	messageUntil time.Time
}

func newApp(screen tcell.Screen, cfg *config.Config, player *audio.Player, rng *rand.Rand, tp clock.TimeProvider, reg *status.Registry) (*app, error) {
	cat, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}
	keys, err := cfg.KeyMap()
	if err != nil {
		return nil, err
	}

	view := render.Viewport{CellWidth: cfg.Terminal.CellWidth, CellHeight: cfg.Terminal.CellHeight}
	renderer := render.NewTerminalRenderer(screen, view, reg)

	store := game.NewStore(cfg.StoreConfig(), cat, renderer.FieldBounds(), rng, tp, reg)
	store.Initialize()

	// The viewport already strips the header row from pointer positions
	tracker := input.NewTracker(0)
	b := store.Bounds()
	tracker.SetShadow(core.Position{X: b.Width / 2, Y: b.Height / 2})

	return &app{
		screen:   screen,
		renderer: renderer,
		session:  session.New(cfg.SessionConfig(), store, tracker, player, tp, reg),
		store:    store,
		keys:     keys,
		player:   player,
		clock:    tp,
		view:     view,
	}, nil
}

// handleEvent applies one terminal event; false means quit
func (a *app) handleEvent(ev tcell.Event) bool {
	now := a.clock.Now()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleAction(a.action(ev), now)

	case *tcell.EventMouse:
		x, y := ev.Position()
		down := ev.Buttons()&tcell.Button1 != 0
		wasPressed := a.pressed
		a.pressed = down
		if y < render.HeaderRows {
			return true
		}
		a.session.Tracker().MouseMove(a.view.ToField(x, y))

		if down && !wasPressed {
			a.session.Hammer(now)
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		a.screen.Sync()
		a.renderer.Resize(w, h)
		a.session.Resize(a.renderer.FieldBounds(), now)
	}
	return true
}

// action resolves a key event through the key map
func (a *app) action(ev *tcell.EventKey) input.Action {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return a.keys.Key(input.KeySpace)
		}
		return a.keys.Rune(ev.Rune())
	case tcell.KeyEscape:
		return a.keys.Key(input.KeyEscape)
	case tcell.KeyEnter:
		return a.keys.Key(input.KeyEnter)
	case tcell.KeyF2:
		return a.keys.Key(input.KeyF2)
	case tcell.KeyCtrlC:
		return a.keys.Key(input.KeyCtrlC)
	case tcell.KeyLeft:
		return a.keys.Key(input.KeyLeft)
	case tcell.KeyRight:
		return a.keys.Key(input.KeyRight)
	case tcell.KeyUp:
		return a.keys.Key(input.KeyUp)
	case tcell.KeyDown:
		return a.keys.Key(input.KeyDown)
	}
	return input.ActionNone
}

func (a *app) handleAction(action input.Action, now time.Time) bool {
	switch action {
	case input.ActionQuit:
		return false
	case input.ActionReset:
		if !a.session.Reset(now) {
			a.flash("Wait for the hammer", now)
		}
	case input.ActionCopySummary:
		a.copySummary(now)
	case input.ActionToggleMetrics:
		a.renderer.ToggleMetrics()
	case input.ActionToggleMute:
		if a.player.ToggleMute() {
			a.flash("Sound off", now)
		} else {
			a.flash("Sound on", now)
		}
	case input.ActionHammer:
		a.session.Hammer(now)
	case input.ActionMoveLeft:
		a.session.Nudge(-a.view.CellWidth, 0)
	case input.ActionMoveRight:
		a.session.Nudge(a.view.CellWidth, 0)
	case input.ActionMoveUp:
		a.session.Nudge(0, -a.view.CellHeight)
	case input.ActionMoveDown:
		a.session.Nudge(0, a.view.CellHeight)
	}
	return true
}

func (a *app) copySummary(now time.Time) {
	summary := a.store.Summary(now)
	if err := writeClipboard(summary); err != nil {
		log.Printf("hammer-term: clipboard: %v", err)
		a.flash("Clipboard unavailable", now)
		return
	}
	a.flash("Copied: "+summary, now)
}

func (a *app) flash(msg string, now time.Time) {
	a.message = msg
	a.messageUntil = now.Add(messageDuration)
}

// frame advances the game and draws it
func (a *app) frame() {
	now := a.clock.Now()
	if !a.messageUntil.IsZero() && !now.Before(a.messageUntil) {
		a.message = ""
		a.messageUntil = time.Time{}
	}

	f := a.session.Frame(now)
	a.renderer.RenderFrame(f, render.HUD{
		Elapsed: a.store.Elapsed(now),
		Muted:   a.player.Muted(),
		Message: a.message,
	})
}

func (a *app) close() {
	a.session.Close(a.clock.Now())
}
