package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
)

// Player plays sound effects through the system speaker
type Player struct {
	mu          sync.Mutex
	config      *Config
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player; nil cfg uses DefaultConfig
func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Player{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker. A disabled config stays silent and is not an error
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.config.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
		return fmt.Errorf("speaker init at %d Hz: %w", p.config.SampleRate, err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Initialized reports whether sound output is live
func (p *Player) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues a sound effect on the mixer
func (p *Player) Play(soundType SoundType) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return ErrNotInitialized
	}

	s := GetSoundEffect(soundType, p.config)
	if s == nil {
		return fmt.Errorf("%w: %d", ErrUnknownSound, soundType)
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return nil
}

// OnEvents implements engine.EventSink. One sound per frame, most important first
func (p *Player) OnEvents(ev engine.Events) {
	if soundType, ok := soundFor(ev); ok {
		_ = p.Play(soundType)
	}
}

// Close stops all sounds and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// soundFor picks the effect for a frame's events
func soundFor(ev engine.Events) (SoundType, bool) {
	switch {
	case ev.Escaped:
		return SoundGameOver, true
	case ev.PaddleHits > 0:
		return SoundPaddle, true
	case ev.WallHits > 0:
		return SoundWall, true
	default:
		return 0, false
	}
}
