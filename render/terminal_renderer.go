package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
)

const fillRune = '█'

// TerminalRenderer draws the playfield stretched over the whole terminal
type TerminalRenderer struct {
	screen tcell.Screen

	background tcell.Style
	foreground tcell.Style
}

// NewTerminalRenderer creates a renderer on an initialized screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen:     screen,
		background: tcell.StyleDefault.Background(RgbBackground).Foreground(RgbBackground),
		foreground: tcell.StyleDefault.Background(RgbBackground).Foreground(RgbForeground),
	}
}

// Render implements engine.Renderer
func (r *TerminalRenderer) Render(s *engine.State) {
	width, height := r.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	r.screen.SetStyle(r.background)
	r.screen.Clear()

	sx := float64(width) / constants.FieldWidth
	sy := float64(height) / constants.FieldHeight

	for _, shape := range Shapes(s) {
		x0, x1 := cellSpan(shape.Rect.X, shape.Rect.W, sx, width)
		y0, y1 := cellSpan(shape.Rect.Y, shape.Rect.H, sy, height)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				r.screen.SetContent(x, y, fillRune, nil, r.foreground)
			}
		}
	}

	r.screen.Show()
}

// cellSpan maps a world interval to a half-open cell range clipped to [0, limit).
// A visible interval always covers at least one cell
func cellSpan(pos, size, scale float64, limit int) (int, int) {
	start := int(math.Floor(pos * scale))
	end := int(math.Floor((pos + size) * scale))
	if end <= start {
		end = start + 1
	}
	if start < 0 {
		start = 0
	}
	if end > limit {
		end = limit
	}
	if end < start {
		end = start
	}
	return start, end
}
