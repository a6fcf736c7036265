package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
)

// HoldTracker turns terminal key press events into continuous key-down state.
// Terminals report presses and auto-repeats but no releases, so a key counts as
// held until the hold window expires after its latest press.
// Fed by the event pump goroutine and sampled by the frame driver
type HoldTracker struct {
	mu sync.Mutex

	table    *KeyTable
	window   time.Duration
	provider engine.TimeProvider

	lastPress [actionCount]time.Time
	pressed   [actionCount]bool

	// Quit and escape latch for the rest of the session
	quit   bool
	escape bool
}

// NewHoldTracker creates a tracker. Zero window uses constants.DefaultKeyHoldWindow,
// nil table the default bindings and nil provider the system clock
func NewHoldTracker(table *KeyTable, window time.Duration, provider engine.TimeProvider) *HoldTracker {
	if table == nil {
		table = DefaultKeyTable()
	}
	if window <= 0 {
		window = constants.DefaultKeyHoldWindow
	}
	if provider == nil {
		provider = engine.NewMonotonicTimeProvider()
	}
	return &HoldTracker{
		table:    table,
		window:   window,
		provider: provider,
	}
}

// HandleEvent records a terminal event. Returns the action it mapped to
func (h *HoldTracker) HandleEvent(ev tcell.Event) Action {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return ActionNone
	}

	action := h.table.Lookup(key)
	h.Press(action)
	return action
}

// Press marks action as pressed now
func (h *HoldTracker) Press(action Action) {
	if action == ActionNone || action >= actionCount {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	switch action {
	case ActionQuit:
		h.quit = true
	case ActionEscape:
		h.escape = true
	default:
		h.lastPress[action] = h.provider.Now()
		h.pressed[action] = true
	}
}

// Snapshot returns the key state as of now
func (h *HoldTracker) Snapshot() KeyState {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.provider.Now()
	ks := KeyState{Quit: h.quit, Escape: h.escape}
	for a := ActionLeftUp; a < actionCount; a++ {
		if h.pressed[a] && now.Sub(h.lastPress[a]) < h.window {
			ks.set(a)
		}
	}
	return ks
}

// Input implements engine.InputSource
func (h *HoldTracker) Input() engine.Input {
	return h.Snapshot().ToInput()
}
