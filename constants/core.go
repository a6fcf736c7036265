package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the simulation and rendering frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FrameUpdateTicks is FrameUpdateInterval in clock ticks (milliseconds)
	FrameUpdateTicks = uint32(FrameUpdateInterval / time.Millisecond)

	// MaxDeltaSeconds caps a single integration step so stalls and debugger
	// pauses do not produce huge jumps
	MaxDeltaSeconds = 0.05
)

// Terminal Input
const (
	// DefaultKeyHoldWindow is how long a terminal key press counts as held.
	// Terminals report presses and auto-repeats but never releases.
	DefaultKeyHoldWindow = 150 * time.Millisecond
)

// Session End
const (
	// GameOverLinger keeps the process alive long enough for the game over sound
	GameOverLinger = 500 * time.Millisecond
)
