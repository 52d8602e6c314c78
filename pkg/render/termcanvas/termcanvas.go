// Package termcanvas paints playfield display lists onto terminal cells.
package termcanvas

import (
	"go-target-range/pkg/render"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Cells is the part of tcell.Screen the painter needs.
type Cells interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Blend flattens a translucent colour onto bg.
func Blend(c color.Color, bg color.RGBA) tcell.Color {
	n := render.ToRGBA(c)
	a := float64(n.A) / 255
	mix := func(fg, back uint8) int32 {
		return int32(math.Round(float64(fg)*a + float64(back)*(1-a)))
	}
	return tcell.NewRGBColor(mix(n.R, bg.R), mix(n.G, bg.G), mix(n.B, bg.B))
}

// Paint fills the w x h cell rectangle at (x, y) with bg and then draws every
// circle of list, scaled from a playfieldW x playfieldH playfield. A circle
// always covers at least the cell holding its centre.
func Paint(screen Cells, list *render.DisplayList, x, y, w, h int, playfieldW, playfieldH float64, bg color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	base := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			screen.SetContent(x+col, y+row, ' ', nil, base)
		}
	}

	// Playfield units per cell.
	ux, uy := playfieldW/float64(w), playfieldH/float64(h)
	list.Replay(func(c render.Circle) {
		style := base.Background(Blend(c.Color, bg))
		c0 := int(math.Floor((c.X - c.Radius) / ux))
		c1 := int(math.Floor((c.X + c.Radius) / ux))
		r0 := int(math.Floor((c.Y - c.Radius) / uy))
		r1 := int(math.Floor((c.Y + c.Radius) / uy))
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				cx := (float64(col) + 0.5) * ux
				cy := (float64(row) + 0.5) * uy
				if math.Hypot(cx-c.X, cy-c.Y) > c.Radius {
					continue
				}
				set(screen, x, y, w, h, col, row, style)
			}
		}
		set(screen, x, y, w, h, int(math.Floor(c.X/ux)), int(math.Floor(c.Y/uy)), style)
	})
}

func set(screen Cells, x, y, w, h, col, row int, style tcell.Style) {
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}
	screen.SetContent(x+col, y+row, ' ', nil, style)
}

// Frame draws a single-line box just outside the w x h rectangle at (x, y).
func Frame(screen Cells, x, y, w, h int, style tcell.Style) {
	for col := 0; col < w; col++ {
		screen.SetContent(x+col, y-1, tcell.RuneHLine, nil, style)
		screen.SetContent(x+col, y+h, tcell.RuneHLine, nil, style)
	}
	for row := 0; row < h; row++ {
		screen.SetContent(x-1, y+row, tcell.RuneVLine, nil, style)
		screen.SetContent(x+w, y+row, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(x-1, y-1, tcell.RuneULCorner, nil, style)
	screen.SetContent(x+w, y-1, tcell.RuneURCorner, nil, style)
	screen.SetContent(x-1, y+h, tcell.RuneLLCorner, nil, style)
	screen.SetContent(x+w, y+h, tcell.RuneLRCorner, nil, style)
}
