package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
)

// Bindings maps paddle and system actions to window keys
type Bindings map[input.Action]ebiten.Key

// DefaultBindings returns W/S for the left paddle, I/K for the right, ESC to end
func DefaultBindings() Bindings {
	return Bindings{
		input.ActionEscape:    ebiten.KeyEscape,
		input.ActionLeftUp:    ebiten.KeyW,
		input.ActionLeftDown:  ebiten.KeyS,
		input.ActionRightUp:   ebiten.KeyI,
		input.ActionRightDown: ebiten.KeyK,
	}
}

// KeyInput samples continuous key-down state each frame
type KeyInput struct {
	bindings Bindings

	// Overridable for tests; default to the live ebiten state
	pressed func(ebiten.Key) bool
	closing func() bool
}

// NewKeyInput creates an input source on live window state
func NewKeyInput(bindings Bindings) *KeyInput {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &KeyInput{
		bindings: bindings,
		pressed:  ebiten.IsKeyPressed,
		closing:  ebiten.IsWindowBeingClosed,
	}
}

// Snapshot reads the current key state
func (k *KeyInput) Snapshot() input.KeyState {
	held := func(a input.Action) bool {
		key, ok := k.bindings[a]
		return ok && k.pressed(key)
	}
	return input.KeyState{
		Escape:    held(input.ActionEscape),
		Quit:      k.closing(),
		LeftUp:    held(input.ActionLeftUp),
		LeftDown:  held(input.ActionLeftDown),
		RightUp:   held(input.ActionRightUp),
		RightDown: held(input.ActionRightDown),
	}
}

// Input implements engine.InputSource
func (k *KeyInput) Input() engine.Input {
	return k.Snapshot().ToInput()
}
