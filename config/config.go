// Package config loads game settings from TOML with defaults for every key
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/hammering-stuff/catalog"
	"github.com/lixenwraith/hammering-stuff/core"
	"github.com/lixenwraith/hammering-stuff/game"
	"github.com/lixenwraith/hammering-stuff/hammer"
	"github.com/lixenwraith/hammering-stuff/input"
	"github.com/lixenwraith/hammering-stuff/layout"
	"github.com/lixenwraith/hammering-stuff/session"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full settings tree
type Config struct {
	Game      GameConfig           `toml:"game"`
	Shadow    ShadowConfig         `toml:"shadow"`
	Animation AnimationConfig      `toml:"animation"`
	Terminal  TerminalConfig       `toml:"terminal"`
	Audio     AudioConfig          `toml:"audio"`
	Keys      map[string]string    `toml:"keys"`
	Objects   []catalog.Definition `toml:"objects"`
	Nails     []catalog.Nail       `toml:"nails"`
}

type GameConfig struct {
	ObjectCount        int     `toml:"object_count"`
	MinObjectDistance  float64 `toml:"min_object_distance"`
	ScreenMargin       float64 `toml:"screen_margin"`
	PlacementAttempts  int     `toml:"placement_attempts"`
	MinimumGameObjects int     `toml:"minimum_game_objects"`
	ReadyThreshold     float64 `toml:"ready_threshold"`
	Responsive         bool    `toml:"responsive"`
	HeaderOffset       float64 `toml:"header_offset"`
}

type ShadowConfig struct {
	Radius     float64 `toml:"radius"`
	Opacity    float64 `toml:"opacity"`
	BlurAmount float64 `toml:"blur_amount"`
}

type AnimationConfig struct {
	HammerSwingMs int     `toml:"hammer_swing_ms"`
	TransformMs   int     `toml:"transform_ms"`
	CooldownMs    int     `toml:"cooldown_ms"`
	RaiseEnd      float64 `toml:"raise_end"`
	SwingEnd      float64 `toml:"swing_end"`
}

// TerminalConfig maps terminal cells to field pixels
type TerminalConfig struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
	FPS        int     `toml:"fps"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // beep effects.Volume exponent, base 2
}

// Default returns the stock settings
func Default() *Config {
	return &Config{
		Game: GameConfig{
			ObjectCount:        35,
			MinObjectDistance:  80,
			ScreenMargin:       40,
			PlacementAttempts:  100,
			MinimumGameObjects: 20,
			ReadyThreshold:     0.8,
		},
		Shadow: ShadowConfig{
			Radius:     45,
			Opacity:    0.7,
			BlurAmount: 2,
		},
		Animation: AnimationConfig{
			HammerSwingMs: 500,
			TransformMs:   200,
			CooldownMs:    1000,
			RaiseEnd:      0.5,
			SwingEnd:      0.75,
		},
		Terminal: TerminalConfig{
			CellWidth:  10,
			CellHeight: 20,
			FPS:        60,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  -1,
		},
	}
}

// Load reads path over the defaults; an empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.Decode(data); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays TOML data onto c and validates the result
// Unknown keys are rejected
func (c *Config) Decode(data []byte) error {
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}
	return c.Validate()
}

// Validate checks value ranges
func (c *Config) Validate() error {
	checks := []struct {
		field string
		ok    bool
	}{
		{"game.object_count", c.Game.ObjectCount >= 0},
		{"game.min_object_distance", c.Game.MinObjectDistance >= 0},
		{"game.screen_margin", c.Game.ScreenMargin >= 0},
		{"game.placement_attempts", c.Game.PlacementAttempts >= 0},
		{"game.minimum_game_objects", c.Game.MinimumGameObjects >= 0},
		{"game.ready_threshold", c.Game.ReadyThreshold >= 0 && c.Game.ReadyThreshold <= 1},
		{"game.header_offset", c.Game.HeaderOffset >= 0},
		{"shadow.radius", c.Shadow.Radius > 0},
		{"shadow.opacity", c.Shadow.Opacity >= 0 && c.Shadow.Opacity <= 1},
		{"shadow.blur_amount", c.Shadow.BlurAmount >= 0},
		{"animation.hammer_swing_ms", c.Animation.HammerSwingMs >= 0},
		{"animation.transform_ms", c.Animation.TransformMs >= 0},
		{"animation.cooldown_ms", c.Animation.CooldownMs >= 0},
		{"animation.raise_end", c.Animation.RaiseEnd >= 0 && c.Animation.RaiseEnd <= c.Animation.SwingEnd},
		{"animation.swing_end", c.Animation.SwingEnd <= 1},
		{"terminal.cell_width", c.Terminal.CellWidth > 0},
		{"terminal.cell_height", c.Terminal.CellHeight > 0},
		{"terminal.fps", c.Terminal.FPS > 0 && c.Terminal.FPS <= 240},
	}
	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, check.field)
		}
	}
	return nil
}

// Catalog returns the configured object catalog, or the built-in one when
// no [[objects]] are given
func (c *Config) Catalog() (*catalog.Catalog, error) {
	if len(c.Objects) == 0 {
		return catalog.Default(), nil
	}
	return catalog.New(c.Objects, c.Nails)
}

// KeyMap returns the default bindings with [keys] overrides applied
func (c *Config) KeyMap() (*input.KeyMap, error) {
	override, err := input.ParseKeyMap(c.Keys)
	if err != nil {
		return nil, fmt.Errorf("%w: keys: %v", ErrInvalidConfig, err)
	}
	return input.Merge(input.DefaultKeyMap(), override), nil
}

// StoreConfig derives the game store settings
func (c *Config) StoreConfig() game.Config {
	return game.Config{
		ObjectCount: c.Game.ObjectCount,
		Placement: layout.Config{
			MinDistance: c.Game.MinObjectDistance,
			Margin:      c.Game.ScreenMargin,
			MaxAttempts: c.Game.PlacementAttempts,
		},
		MinimumObjects: c.Game.MinimumGameObjects,
		Responsive:     c.Game.Responsive,
	}
}

// ShadowSettings derives the shadow description used by coverage
func (c *Config) ShadowSettings() core.ShadowConfig {
	return core.ShadowConfig{
		Radius:     c.Shadow.Radius,
		Opacity:    c.Shadow.Opacity,
		BlurAmount: c.Shadow.BlurAmount,
	}
}

// Timing derives the hammer timeline
func (c *Config) Timing() hammer.Timing {
	return hammer.Timing{
		Swing:     time.Duration(c.Animation.HammerSwingMs) * time.Millisecond,
		Transform: time.Duration(c.Animation.TransformMs) * time.Millisecond,
		Cooldown:  time.Duration(c.Animation.CooldownMs) * time.Millisecond,
		RaiseEnd:  c.Animation.RaiseEnd,
		SwingEnd:  c.Animation.SwingEnd,
	}
}

// SessionConfig derives the per-view game loop settings
func (c *Config) SessionConfig() session.Config {
	return session.Config{
		ReadyThreshold: c.Game.ReadyThreshold,
		Shadow:         c.ShadowSettings(),
		Timing:         c.Timing(),
	}
}

// FrameInterval returns the render tick period
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Terminal.FPS)
}
