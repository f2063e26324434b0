// Command hammer runs the game in a desktop or mobile window
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/hammering-stuff/audio"
	"github.com/lixenwraith/hammering-stuff/clock"
	"github.com/lixenwraith/hammering-stuff/config"
	"github.com/lixenwraith/hammering-stuff/status"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

var (
	configFlag  = flag.String("config", "", "Path to a TOML config file")
	muteFlag    = flag.Bool("mute", false, "Start with sound off")
	seedFlag    = flag.Int64("seed", 0, "Random seed for the field, 0 picks one")
	objectsFlag = flag.Int("objects", 0, "Override the number of objects per game")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *objectsFlag > 0 {
		cfg.Game.ObjectCount = *objectsFlag
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("hammer: seed %d", seed)

	player := audio.NewPlayer(cfg.Audio.Volume, *muteFlag || !cfg.Audio.Enabled)
	if err := player.Init(); err != nil {
		log.Printf("hammer: audio unavailable: %v", err)
	}
	defer player.Close()

	g, err := newGame(cfg, player, rand.New(rand.NewSource(seed)), clock.NewTimeProvider(), status.NewRegistry(), windowWidth, windowHeight)
	if err != nil {
		log.Fatalf("hammer: %v", err)
	}
	defer g.close()

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Hammering Stuff")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(480, 360, -1, -1)

	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		log.Fatalf("hammer: %v", err)
	}
	log.Printf("hammer: %s", g.store.Summary(time.Now()))
}
