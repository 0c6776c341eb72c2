package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetrapit/audio"
	"github.com/plus3/tetrapit/config"
	"github.com/plus3/tetrapit/debugui"
	debugui_ebiten "github.com/plus3/tetrapit/debugui/ebiten"
	"github.com/plus3/tetrapit/game"
	"github.com/plus3/tetrapit/loop"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	title        = "tetrapit"
)

func main() {
	cfg, err := config.Parse(title, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, closeLog, err := cfg.OpenLog("", os.Stderr)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()

	session := game.NewSession(cfg.NewPit(), cfg.Gravity, logger)

	scheduler := loop.NewScheduler()
	game.Register(scheduler, session)

	g := &Game{
		session:   session,
		scheduler: scheduler,
		timer:     loop.NewFrameTimer(),
		keys:      game.NewKeymap(defaultBindings),
	}

	if cfg.Audio {
		player := audio.NewSpeaker()
		if err := player.Init(); err != nil {
			logger.Printf("audio disabled: %v", err)
		} else {
			defer player.Close()
			session.OnLock(audio.LockListener(player))
		}
	}

	if cfg.Debug {
		g.imgui = debugui_ebiten.NewImguiBackend(title, ScreenWidth, ScreenHeight)
		g.debug = &debugui.System{
			Panels: []debugui.Panel{
				&debugui.PitInspector{Session: session},
				debugui.NewPerformanceStats(scheduler, 120),
			},
		}
		scheduler.Register(g.debug)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle(title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Printf("starting %dx%d pit, gravity %s", cfg.Width, cfg.Height, cfg.Gravity)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Printf("game stopped: %v", err)
	}

	c := session.Counters()
	logger.Printf("session over: %d locks, %d lines cleared", c.Locks, c.LinesCleared)
}
