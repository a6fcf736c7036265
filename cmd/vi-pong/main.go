package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/logging"
	"github.com/lixenwraith/vi-pong/render"
)

var (
	debugFlag = flag.Bool("debug", false, "Write a debug log to logs/vi-pong.log")
	seedFlag  = flag.Uint64("seed", 0, "Session seed, 0 picks one from the clock")
	holdFlag  = flag.Duration("hold", constants.DefaultKeyHoldWindow, "How long a key press counts as held")
	muteFlag  = flag.Bool("mute", false, "Disable sound effects")
)

func main() {
	flag.Parse()

	if logFile := logging.Setup(*debugFlag, "vi-pong.log"); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			crash(screen, "VI-PONG CRASHED", r)
		}
	}()

	screen.HideCursor()

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	state := engine.NewSession(engine.NewRand(seed))
	log.Printf("session start: %d balls, seed %d", len(state.Balls), seed)

	tracker := input.NewHoldTracker(nil, *holdFlag, nil)
	go pumpEvents(screen, tracker)

	cfg := audio.LoadConfig()
	if *muteFlag {
		cfg.Enabled = false
	}
	player := audio.NewPlayer(cfg)
	if err := player.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	}
	defer player.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	driver := engine.NewDriver(state, tracker, render.NewTerminalRenderer(screen), engine.WithEventSink(player))
	if err := driver.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Printf("interrupted after %d frames", driver.Frames())
			return nil
		}
		return err
	}

	if driver.LastEvents().Escaped && player.Initialized() {
		time.Sleep(constants.GameOverLinger)
	}
	return nil
}

// pumpEvents feeds terminal events into the hold tracker until the screen closes
func pumpEvents(screen tcell.Screen, tracker *input.HoldTracker) {
	defer func() {
		if r := recover(); r != nil {
			crash(screen, "EVENT POLLER CRASHED", r)
		}
	}()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
			continue
		}
		tracker.HandleEvent(ev)
	}
}

func crash(screen tcell.Screen, what string, r any) {
	screen.Fini()
	fmt.Fprintf(os.Stderr, "\n\x1b[31m%s: %v\x1b[0m\n", what, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Exit(1)
}
