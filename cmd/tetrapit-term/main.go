package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetrapit/audio"
	"github.com/plus3/tetrapit/config"
	"github.com/plus3/tetrapit/game"
	"github.com/plus3/tetrapit/loop"
)

const frameInterval = time.Second / 60

func main() {
	cfg, err := config.Parse("tetrapit-term", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	// The screen owns stdout, so logs only go to a file.
	logger, closeLog, err := cfg.OpenLog("", nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	var player audio.Player = audio.Silent{}

	defer func() {
		if r := recover(); r != nil {
			crashed(r, debug.Stack(), screen, logger, player, closeLog, os.Stderr)
			os.Exit(1)
		}
	}()

	session := game.NewSession(cfg.NewPit(), cfg.Gravity, logger)

	if cfg.Audio {
		sp := audio.NewSpeaker()
		if err := sp.Init(); err != nil {
			logger.Printf("audio disabled: %v", err)
		} else {
			player = sp
		}
	}
	defer player.Close()
	session.OnLock(audio.LockListener(player))

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scheduler := loop.NewScheduler()
	scheduler.Register(newInputSystem(screen, events, session))
	game.Register(scheduler, session)
	scheduler.Register(&renderSystem{screen: screen, session: session})
	scheduler.Register(loop.SystemFunc(func(frame *loop.Frame) {
		if session.Quit() {
			cancel()
		}
	}))

	logger.Printf("starting %dx%d pit, gravity %s", cfg.Width, cfg.Height, cfg.Gravity)
	scheduler.Run(ctx, frameInterval)

	screen.Fini()
	c := session.Counters()
	logger.Printf("session over: %d locks, %d lines cleared", c.Locks, c.LinesCleared)
}

// crashed restores the terminal and releases audio and the log file after a
// panic. os.Exit skips deferred calls, so everything is closed here.
func crashed(r any, stack []byte, screen tcell.Screen, logger *log.Logger, player audio.Player, closeLog func() error, stderr io.Writer) {
	screen.Fini()
	logger.Printf("crashed: %v\n%s", r, stack)
	player.Close()
	if err := closeLog(); err != nil {
		fmt.Fprintf(stderr, "Failed to close log: %v\n", err)
	}
	fmt.Fprintf(stderr, "tetrapit crashed: %v\n%s\n", r, stack)
}
