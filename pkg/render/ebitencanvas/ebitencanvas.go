// Package ebitencanvas renders playfields into offscreen ebiten images.
package ebitencanvas

import (
	"go-target-range/pkg/render"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageCanvas draws into an offscreen ebiten image sized to the playfield.
type ImageCanvas struct {
	Image *ebiten.Image
}

var _ render.Canvas = (*ImageCanvas)(nil)

// New allocates a width x height offscreen image.
func New(width, height int) *ImageCanvas {
	return &ImageCanvas{Image: ebiten.NewImage(width, height)}
}

func (c *ImageCanvas) Clear() {
	c.Image.Clear()
}

func (c *ImageCanvas) FillCircle(x, y, radius float64, clr color.Color) {
	vector.DrawFilledCircle(c.Image, float32(x), float32(y), float32(radius), clr, true)
}
