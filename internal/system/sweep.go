// internal/system/sweep.go
package system

import (
	"go-target-range/internal/config"
	"go-target-range/internal/layout"
	"go-target-range/internal/scene"
	"go-target-range/internal/utils"
)

// SweepSystem places surfaces on screen according to the layout and slides
// the animated ones back and forth.
type SweepSystem struct {
	scene   *scene.Scene
	layout  *layout.Layout
	elapsed float64
}

func NewSweepSystem(sc *scene.Scene, l *layout.Layout) *SweepSystem {
	s := &SweepSystem{scene: sc, layout: l}
	s.apply()
	return s
}

// SetLayout swaps the layout, keeping the animation clock.
func (s *SweepSystem) SetLayout(l *layout.Layout) {
	s.layout = l
	s.apply()
}

func (s *SweepSystem) Update(deltaTime float64) {
	s.elapsed += deltaTime
	s.apply()
}

func (s *SweepSystem) apply() {
	for _, spec := range s.layout.Surfaces {
		s.scene.SetDisplay(spec.ID, DisplayRect(spec, s.elapsed))
	}
}

// DisplayRect is where spec's surface is shown after elapsed seconds.
func DisplayRect(spec layout.SurfaceSpec, elapsed float64) scene.Rect {
	r := scene.Rect{
		X: spec.X,
		Y: spec.Y,
		W: config.PlayfieldWidth * spec.Scale,
		H: config.PlayfieldHeight * spec.Scale,
	}
	if spec.Animate {
		// Плавное движение слева направо и обратно
		travel := spec.Span / spec.Sweep // seconds per leg
		t := utils.PingPong(elapsed, travel) / travel
		r.X = utils.Lerp(spec.X, spec.X+spec.Span, t)
	}
	return r
}
