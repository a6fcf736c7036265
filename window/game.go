package window

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/render"
)

const Title = "vi-pong"

// Game adapts the frame driver to ebiten's update/draw loop. Ebiten paces Update at
// its tick rate, so the driver only advances and never sleeps
type Game struct {
	driver *engine.Driver
	done   bool
}

// NewGame wraps a driver whose renderer is nil; drawing happens in Draw
func NewGame(driver *engine.Driver) *Game {
	return &Game{driver: driver}
}

// Update advances one simulation frame
func (g *Game) Update() error {
	if g.done {
		return ebiten.Termination
	}
	if !g.driver.Advance() {
		g.done = true
		return ebiten.Termination
	}
	return nil
}

// Draw fills walls, paddles and balls over the blue background
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.BackgroundRGBA)
	for _, shape := range render.Shapes(g.driver.State()) {
		r := shape.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), render.ForegroundRGBA, false)
	}
}

// Layout keeps the logical playfield size regardless of window size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(constants.FieldWidth), int(constants.FieldHeight)
}

// Done reports whether the session has ended
func (g *Game) Done() bool {
	return g.done
}

// Run opens the window and blocks until the session ends or the window closes
func Run(g *Game) error {
	ebiten.SetWindowSize(int(constants.FieldWidth), int(constants.FieldHeight))
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(int(time.Second / constants.FrameUpdateInterval))

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
