package termcanvas

import (
	"image/color"
	"testing"

	"go-target-range/pkg/render"

	"github.com/gdamore/tcell/v2"
)

type cell struct {
	r     rune
	style tcell.Style
}

type fakeCells map[[2]int]cell

func (f fakeCells) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	f[[2]int{x, y}] = cell{primary, style}
}

var white = color.RGBA{255, 255, 255, 255}


func TestPaintFillsBackground(t *testing.T) {
	cells := fakeCells{}
	Paint(cells, render.NewDisplayList(), 2, 3, 10, 5, 500, 300, white)
	if len(cells) != 50 {
		t.Fatalf("expected 50 cells, got %d", len(cells))
	}
	if _, ok := cells[[2]int{2, 3}]; !ok {
		t.Fatal("top-left cell not painted")
	}
	if _, ok := cells[[2]int{12, 3}]; ok {
		t.Fatal("painted past the right edge")
	}
}

func TestPaintCircles(t *testing.T) {
	list := render.NewDisplayList()
	red := color.RGBA{255, 0, 0, 255}
	list.FillCircle(250, 150, 20, red) // big: several cells
	list.FillCircle(12, 12, 1, red)    // tiny: centre cell only
	list.FillCircle(-50, -50, 5, red)  // off the playfield

	cells := fakeCells{}
	// 50x30 cells: 10x10 playfield units each.
	Paint(cells, list, 0, 0, 50, 30, 500, 300, white)

	want := tcell.StyleDefault.Background(tcell.NewRGBColor(255, 0, 0))
	painted := 0
	for _, c := range cells {
		if c.style == want {
			painted++
		}
	}
	if cells[[2]int{25, 15}].style != want {
		t.Fatal("big circle centre not painted")
	}
	if cells[[2]int{1, 1}].style != want {
		t.Fatal("tiny circle not painted")
	}
	if cells[[2]int{0, 0}].style == want {
		t.Fatal("off-playfield circle leaked onto the corner")
	}
	if painted < 9 {
		t.Fatalf("big circle covers only %d cells", painted)
	}
}

func TestBlend(t *testing.T) {
	half := color.NRGBA{0, 0, 0, 128}
	got := Blend(half, white)
	r, g, b := got.RGB()
	if r != 127 || g != 127 || b != 127 {
		t.Fatalf("blend = (%d, %d, %d), want 127 grey", r, g, b)
	}
}
