// Package rlcanvas replays playfield display lists with raylib.
package rlcanvas

import (
	"go-target-range/pkg/render"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ColorToRL converts color.Color to rl.Color.
func ColorToRL(c color.Color) rl.Color {
	n := render.ToRGBA(c)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}

// Draw paints list scaled into the rectangle (x, y, w, h). It must be called
// between rl.BeginDrawing and rl.EndDrawing.
func Draw(list *render.DisplayList, x, y, w, h, playfieldW, playfieldH float32) {
	sx, sy := w/playfieldW, h/playfieldH
	rl.BeginScissorMode(int32(x), int32(y), int32(w), int32(h))
	list.Replay(func(c render.Circle) {
		center := rl.NewVector2(x+float32(c.X)*sx, y+float32(c.Y)*sy)
		if sx == sy {
			rl.DrawCircleV(center, float32(c.Radius)*sx, ColorToRL(c.Color))
			return
		}
		rl.DrawEllipse(int32(center.X), int32(center.Y), float32(c.Radius)*sx, float32(c.Radius)*sy, ColorToRL(c.Color))
	})
	rl.EndScissorMode()
}
