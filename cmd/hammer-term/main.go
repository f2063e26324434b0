package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hammering-stuff/audio"
	"github.com/lixenwraith/hammering-stuff/clock"
	"github.com/lixenwraith/hammering-stuff/config"
	"github.com/lixenwraith/hammering-stuff/status"
)

var (
	configFlag  = flag.String("config", "", "Path to a TOML config file")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/hammer.log")
	muteFlag    = flag.Bool("mute", false, "Start with sound off")
	seedFlag    = flag.Int64("seed", 0, "Random seed for the field, 0 picks one")
	objectsFlag = flag.Int("objects", 0, "Override the number of objects per game")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

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
	log.Printf("hammer-term: seed %d", seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	crashScreen = screen
	defer func() {
		handleCrash(recover())
	}()
	defer screen.Fini()

	player := audio.NewPlayer(cfg.Audio.Volume, *muteFlag || !cfg.Audio.Enabled)
	if err := player.Init(); err != nil {
		// Non-fatal, game runs silently
		log.Printf("hammer-term: audio unavailable: %v", err)
	}
	defer player.Close()

	reg := status.NewRegistry()
	a, err := newApp(screen, cfg, player, rand.New(rand.NewSource(seed)), clock.NewTimeProvider(), reg)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer a.close()

	events := make(chan tcell.Event, 256)
	goSafe(func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(cfg.FrameInterval())
	defer ticker.Stop()

	a.frame()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handleEvent(ev) {
				log.Printf("hammer-term: %s", a.store.Summary(time.Now()))
				return
			}
		case <-ticker.C:
			a.frame()
		}
	}
}
