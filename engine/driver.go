package engine

import (
	"context"
	"log"
	"time"

	"github.com/lixenwraith/vi-pong/constants"
)

// InputSource supplies the per-frame input directive
type InputSource interface {
	Input() Input
}

// Renderer draws a finished frame
type Renderer interface {
	Render(s *State)
}

// EventSink reacts to step events (sound, stats)
type EventSink interface {
	OnEvents(ev Events)
}

// Driver sequences input sampling, delta time, simulation and rendering at a fixed
// cadence. It exclusively owns the State it drives
type Driver struct {
	state    *State
	clock    *TickClock
	input    InputSource
	renderer Renderer
	sinks    []EventSink

	sleep  func(ctx context.Context, d time.Duration) error
	frames uint64
	last   Events
}

// DriverOption configures a Driver
type DriverOption func(*Driver)

// WithClock replaces the system tick clock
func WithClock(c *TickClock) DriverOption {
	return func(d *Driver) { d.clock = c }
}

// WithSleeper replaces the blocking wait used for frame pacing
func WithSleeper(sleep func(time.Duration)) DriverOption {
	return func(d *Driver) {
		d.sleep = func(ctx context.Context, dur time.Duration) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sleep(dur)
			return nil
		}
	}
}

// WithEventSink registers a receiver for step events
func WithEventSink(sink EventSink) DriverOption {
	return func(d *Driver) {
		if sink != nil {
			d.sinks = append(d.sinks, sink)
		}
	}
}

// NewDriver creates a driver for state. Renderer may be nil when the caller draws
// on its own schedule
func NewDriver(state *State, input InputSource, renderer Renderer, opts ...DriverOption) *Driver {
	d := &Driver{
		state:    state,
		input:    input,
		renderer: renderer,
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.clock == nil {
		d.clock = NewTickClock(nil)
	}
	d.state.LastTicks = d.clock.Ticks()
	return d
}

// State returns the driven state for rendering
func (d *Driver) State() *State {
	return d.state
}

// Frames returns the number of simulation steps taken
func (d *Driver) Frames() uint64 {
	return d.frames
}

// LastEvents returns the events of the most recent frame
func (d *Driver) LastEvents() Events {
	return d.last
}

// Advance runs one simulation frame without pacing and reports whether the session
// continues
func (d *Driver) Advance() bool {
	now := d.clock.Ticks()
	dt := DeltaSeconds(now, d.state.LastTicks)
	d.state.LastTicks = now

	in := d.input.Input()
	ev, running := Step(d.state, in, dt)
	d.frames++
	d.last = ev

	if ev.Any() {
		for _, sink := range d.sinks {
			sink.OnEvents(ev)
		}
	}
	if !running {
		log.Printf("session ended after %d frames: %s", d.frames, endReason(ev))
	}
	return running
}

// Run paces frames at constants.FrameUpdateInterval until the session stops or ctx is
// cancelled. A stopped session returns nil
func (d *Driver) Run(ctx context.Context) error {
	for {
		if err := d.waitFrame(ctx); err != nil {
			return err
		}

		running := d.Advance()
		if d.renderer != nil {
			d.renderer.Render(d.state)
		}
		if !running {
			return nil
		}
	}
}

// waitFrame sleeps until a full frame interval has passed since the last frame
func (d *Driver) waitFrame(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := d.state.LastTicks + constants.FrameUpdateTicks
	for !TicksPassed(d.clock.Ticks(), target) {
		if err := d.sleep(ctx, d.clock.Until(target)); err != nil {
			return err
		}
	}
	return nil
}

func sleepContext(ctx context.Context, dur time.Duration) error {
	timer := time.NewTimer(dur)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func endReason(ev Events) string {
	switch {
	case ev.Escaped && ev.Quit:
		return "quit requested, ball left the field"
	case ev.Escaped:
		return "ball left the field"
	case ev.Quit:
		return "quit requested"
	default:
		return "stopped"
	}
}
