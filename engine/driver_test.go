package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/vi-pong/constants"
)

// scriptedInput returns Quit on the Nth call, idle input otherwise
type scriptedInput struct {
	calls  int
	quitAt int
	dir    Direction
}

func (s *scriptedInput) Input() Input {
	s.calls++
	return Input{Left: s.dir, Quit: s.quitAt > 0 && s.calls >= s.quitAt}
}

type recordingRenderer struct {
	frames int
	last   State
}

func (r *recordingRenderer) Render(s *State) {
	r.frames++
	r.last = *s
}

type recordingSink struct {
	events []Events
}

func (r *recordingSink) OnEvents(ev Events) {
	r.events = append(r.events, ev)
}

func newMockDriver(state *State, in InputSource, r Renderer, opts ...DriverOption) (*Driver, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	opts = append([]DriverOption{WithClock(NewTickClock(mock)), WithSleeper(mock.Sleep)}, opts...)
	return NewDriver(state, in, r, opts...), mock
}

func TestDriverRunUntilQuit(t *testing.T) {
	state := newTestState(ball(512, 384, 0, 0))
	in := &scriptedInput{quitAt: 5}
	renderer := &recordingRenderer{}
	sink := &recordingSink{}

	d, mock := newMockDriver(state, in, renderer, WithEventSink(sink))

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run returned %v", err)
	}

	if d.Frames() != 5 {
		t.Errorf("frames = %d, want 5", d.Frames())
	}
	if renderer.frames != 5 {
		t.Errorf("rendered %d frames, want 5", renderer.frames)
	}
	if got, want := mock.Slept(), 5*constants.FrameUpdateInterval; got != want {
		t.Errorf("slept %v, want %v", got, want)
	}
	if len(sink.events) != 1 || !sink.events[0].Quit {
		t.Errorf("sink events = %+v, want single quit", sink.events)
	}
	if renderer.last.Running {
		t.Error("final rendered frame should show the stopped session")
	}
}

func TestDriverRunStopsWhenBallEscapes(t *testing.T) {
	state := newTestState(ball(5, 384, -1000, 0))
	sink := &recordingSink{}

	d, _ := newMockDriver(state, &scriptedInput{}, &recordingRenderer{}, WithEventSink(sink))

	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if d.Frames() != 1 {
		t.Errorf("frames = %d, want 1", d.Frames())
	}
	if len(sink.events) == 0 || !sink.events[len(sink.events)-1].Escaped {
		t.Errorf("expected an Escaped event, got %+v", sink.events)
	}
	if !d.LastEvents().Escaped {
		t.Errorf("LastEvents = %+v, want Escaped", d.LastEvents())
	}
}

func TestDriverFixedCadence(t *testing.T) {
	state := newTestState()
	in := &scriptedInput{quitAt: 4, dir: DirDown}

	d, _ := newMockDriver(state, in, nil)
	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("Run returned %v", err)
	}

	// Four frames of 16ms at 800 units/sec
	want := constants.FieldHeight/2 + 4*constants.PaddleSpeed*0.016
	if !approx(state.Left.Y, want) {
		t.Errorf("paddle Y = %v, want %v", state.Left.Y, want)
	}
	if state.LastTicks != 64 {
		t.Errorf("LastTicks = %d, want 64", state.LastTicks)
	}
}

func TestDriverAdvanceClampsStall(t *testing.T) {
	state := newTestState()
	d, mock := newMockDriver(state, &scriptedInput{dir: DirDown}, nil)

	mock.Advance(2 * time.Second)
	if !d.Advance() {
		t.Fatal("session stopped")
	}

	want := constants.FieldHeight/2 + constants.PaddleSpeed*constants.MaxDeltaSeconds
	if !approx(state.Left.Y, want) {
		t.Errorf("paddle Y after stall = %v, want %v", state.Left.Y, want)
	}
	if state.LastTicks != 2000 {
		t.Errorf("LastTicks = %d, want 2000", state.LastTicks)
	}
}

func TestDriverRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d, _ := newMockDriver(newTestState(), &scriptedInput{}, nil)
	err := d.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
	if d.Frames() != 0 {
		t.Errorf("frames = %d, want 0", d.Frames())
	}
}

func TestDriverRealClockCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	d := NewDriver(newTestState(), &scriptedInput{}, nil)
	err := d.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run error = %v, want deadline exceeded", err)
	}
	if d.Frames() == 0 {
		t.Error("expected some frames before the deadline")
	}
}

func TestEndReason(t *testing.T) {
	tests := []struct {
		ev   Events
		want string
	}{
		{Events{Escaped: true}, "ball left the field"},
		{Events{Quit: true}, "quit requested"},
		{Events{Quit: true, Escaped: true}, "quit requested, ball left the field"},
		{Events{}, "stopped"},
	}
	for _, tt := range tests {
		if got := endReason(tt.ev); got != tt.want {
			t.Errorf("endReason(%+v) = %q, want %q", tt.ev, got, tt.want)
		}
	}
}
