package input

import "github.com/lixenwraith/vi-pong/engine"

// KeyState is a snapshot of which bound keys are currently held
type KeyState struct {
	Escape    bool
	Quit      bool
	LeftUp    bool
	LeftDown  bool
	RightUp   bool
	RightDown bool
}

// Direction derives a paddle direction from an opposing key pair.
// Up contributes -1, down +1; both held cancel to 0
func Direction(up, down bool) engine.Direction {
	dir := engine.DirNone
	if up {
		dir--
	}
	if down {
		dir++
	}
	return dir
}

// ToInput converts the snapshot to a simulation input directive
func (k KeyState) ToInput() engine.Input {
	return engine.Input{
		Left:  Direction(k.LeftUp, k.LeftDown),
		Right: Direction(k.RightUp, k.RightDown),
		Quit:  k.Quit || k.Escape,
	}
}

// set marks the key bound to action as held
func (k *KeyState) set(action Action) {
	switch action {
	case ActionQuit:
		k.Quit = true
	case ActionEscape:
		k.Escape = true
	case ActionLeftUp:
		k.LeftUp = true
	case ActionLeftDown:
		k.LeftDown = true
	case ActionRightUp:
		k.RightUp = true
	case ActionRightDown:
		k.RightDown = true
	}
}
