package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ebitenCanvas adapts an *ebiten.Image to the render.Canvas capability.
type ebitenCanvas struct {
	screen *ebiten.Image
}

func (c ebitenCanvas) FillCircle(x, y, r float32, col color.Color) {
	vector.DrawFilledCircle(c.screen, x, y, r, col, false)
}
