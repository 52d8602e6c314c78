package render

import "image/color"

// Canvas is the drawing surface a playfield renders into. Coordinates are in
// playfield units.
type Canvas interface {
	Clear()
	FillCircle(x, y, radius float64, clr color.Color)
}

// Circle is one recorded FillCircle call.
type Circle struct {
	X, Y   float64
	Radius float64
	Color  color.Color
}

// DisplayList records the circles drawn since the last Clear. Frontends that
// cannot draw while the simulation runs (raylib, terminal) replay it later.
type DisplayList struct {
	Circles []Circle
	Clears  int
}

// NewDisplayList creates an empty display list.
func NewDisplayList() *DisplayList {
	return &DisplayList{}
}

func (d *DisplayList) Clear() {
	d.Circles = d.Circles[:0]
	d.Clears++
}

func (d *DisplayList) FillCircle(x, y, radius float64, clr color.Color) {
	d.Circles = append(d.Circles, Circle{X: x, Y: y, Radius: radius, Color: clr})
}

// Replay calls fn for every recorded circle in draw order.
func (d *DisplayList) Replay(fn func(c Circle)) {
	for _, c := range d.Circles {
		fn(c)
	}
}
