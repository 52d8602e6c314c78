// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator is a small dot next to a surface showing whether its target
// is alive. It pulses briefly after every click.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// PulseScale is the radius multiplier elapsed after a click.
func PulseScale(elapsed time.Duration) float64 {
	return 1.0 + 0.3*math.Exp(-elapsed.Seconds()*8)
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.Color, stroke color.Color) {
	currentRadius := i.Radius * float32(PulseScale(time.Since(i.LastClickTime)))
	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, stroke, true)
}

// HandleClick restarts the pulse.
func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
