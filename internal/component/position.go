// internal/component/position.go
package component

import "math"

// Position: точка на игровом поле.
type Position struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance between p and (x, y).
func (p Position) DistanceTo(x, y float64) float64 {
	return math.Hypot(x-p.X, y-p.Y)
}

// AngleTo returns the angle in radians of the ray from p towards (x, y).
func (p Position) AngleTo(x, y float64) float64 {
	return math.Atan2(y-p.Y, x-p.X)
}

// Step moves p by length along direction.
func (p *Position) Step(direction, length float64) {
	p.X += math.Cos(direction) * length
	p.Y += math.Sin(direction) * length
}
