package input

import (
	"testing"

	"github.com/lixenwraith/vi-pong/engine"
)

func TestDirection(t *testing.T) {
	tests := []struct {
		up, down bool
		want     engine.Direction
	}{
		{false, false, engine.DirNone},
		{true, false, engine.DirUp},
		{false, true, engine.DirDown},
		{true, true, engine.DirNone},
	}
	for _, tt := range tests {
		if got := Direction(tt.up, tt.down); got != tt.want {
			t.Errorf("Direction(%v, %v) = %d, want %d", tt.up, tt.down, got, tt.want)
		}
	}
}

func TestKeyStateToInput(t *testing.T) {
	ks := KeyState{LeftUp: true, RightUp: true, RightDown: true}
	in := ks.ToInput()

	if in.Left != engine.DirUp {
		t.Errorf("Left = %d, want up", in.Left)
	}
	if in.Right != engine.DirNone {
		t.Errorf("Right = %d, want none when both keys held", in.Right)
	}
	if in.Quit {
		t.Error("unexpected quit")
	}

	if !(KeyState{Escape: true}).ToInput().Quit {
		t.Error("escape should request quit")
	}
	if !(KeyState{Quit: true}).ToInput().Quit {
		t.Error("quit should request quit")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeftDown.String() != "left-down" {
		t.Errorf("ActionLeftDown = %q", ActionLeftDown.String())
	}
	if Action(200).String() != "unknown" {
		t.Errorf("out of range action = %q", Action(200).String())
	}
}
