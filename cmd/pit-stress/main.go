// Command pit-stress plays a pit with random input as fast as possible and
// reports frame timings, per-system costs and memory use.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/tetrapit/config"
	"github.com/plus3/tetrapit/game"
	"github.com/plus3/tetrapit/loop"
)

// simulatedFrame is the delta handed to every frame, so gravity advances as
// if the game were running at 60 fps regardless of real speed.
const simulatedFrame = time.Second / 60

func main() {
	cfg := config.Default()
	fs := flag.NewFlagSet("pit-stress", flag.ContinueOnError)
	cfg.RegisterHeadless(fs)
	duration := fs.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	actionsPerFrame := fs.Int("actions", 2, "The maximum number of random actions queued per frame.")
	gcPauseMetrics := fs.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, closeLog, err := cfg.OpenLog("", nil)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()

	log.Println("Starting pit stress test...")

	session := game.NewSession(cfg.NewPit(), cfg.Gravity, logger)
	scheduler := loop.NewScheduler()
	game.Register(scheduler, session)

	input := cfg.Rand()
	// Quit is left out so the run always lasts the full duration.
	moves := []game.Action{game.ActionLeft, game.ActionRight, game.ActionRotate, game.ActionSoftDrop}

	report := &Report{
		Duration:       *duration,
		Width:          cfg.Width,
		Height:         cfg.Height,
		Gravity:        cfg.Gravity,
		Seed:           cfg.Seed,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			for n := input.IntN(max(*actionsPerFrame, 0)+1); n > 0; n-- {
				session.Push(moves[input.IntN(len(moves))])
			}

			updateStart := time.Now()
			scheduler.Once(simulatedFrame)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Counters = session.Counters()
	report.Scheduler = scheduler.Stats()
	report.Board = session.Pit().String()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
