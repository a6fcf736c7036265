package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/logging"
	"github.com/lixenwraith/vi-pong/window"
)

var (
	debugFlag = flag.Bool("debug", false, "Write a debug log to logs/vi-pong-window.log")
	seedFlag  = flag.Uint64("seed", 0, "Session seed, 0 picks one from the clock")
	muteFlag  = flag.Bool("mute", false, "Disable sound effects")
)

func main() {
	flag.Parse()

	if logFile := logging.Setup(*debugFlag, "vi-pong-window.log"); logFile != nil {
		defer logFile.Close()
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	state := engine.NewSession(engine.NewRand(seed))
	log.Printf("session start: %d balls, seed %d", len(state.Balls), seed)

	cfg := audio.LoadConfig()
	if *muteFlag {
		cfg.Enabled = false
	}
	player := audio.NewPlayer(cfg)
	if err := player.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	}
	defer player.Close()

	driver := engine.NewDriver(state, window.NewKeyInput(nil), nil, engine.WithEventSink(player))
	game := window.NewGame(driver)

	if err := window.Run(game); err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong-window: %v\n", err)
		os.Exit(1)
	}

	if driver.LastEvents().Escaped && player.Initialized() {
		time.Sleep(constants.GameOverLinger)
	}
}
