package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Playfield palette: blue background, white shapes
var (
	BackgroundRGBA = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	ForegroundRGBA = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	RgbBackground = tcell.NewRGBColor(0, 0, 255)
	RgbForeground = tcell.NewRGBColor(255, 255, 255)
)
