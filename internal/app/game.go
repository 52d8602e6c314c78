// internal/app/game.go
package app

import (
	"fmt"
	"go-target-range/internal/config"
	"go-target-range/internal/event"
	"go-target-range/internal/layout"
	"go-target-range/internal/scene"
	"go-target-range/internal/system"
	"go-target-range/pkg/render"
	"go-target-range/pkg/render/ebitencanvas"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CanvasFactory creates the canvas a surface renders into.
type CanvasFactory func(id string) render.Canvas

// ImageCanvases allocates one offscreen playfield image per surface.
func ImageCanvases(string) render.Canvas {
	return ebitencanvas.New(config.PlayfieldWidth, config.PlayfieldHeight)
}

// Game holds the scene and the systems around it.
type Game struct {
	Scene           *scene.Scene
	EventDispatcher *event.Dispatcher
	ScoreSystem     *system.ScoreSystem
	SweepSystem     *system.SweepSystem
	layout          *layout.Layout
}

// NewGame binds one surface per layout entry, in layout order.
func NewGame(l *layout.Layout, newCanvas CanvasFactory, dispatcher *event.Dispatcher) (*Game, error) {
	if l == nil {
		return nil, fmt.Errorf("app: nil layout")
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}

	bindings := make([]scene.Binding, 0, len(l.Surfaces))
	for _, spec := range l.Surfaces {
		bindings = append(bindings, scene.Binding{
			ID:      spec.ID,
			Canvas:  newCanvas(spec.ID),
			Display: system.DisplayRect(spec, 0),
		})
	}
	sc, err := scene.New(dispatcher, bindings...)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	g := &Game{
		Scene:           sc,
		EventDispatcher: dispatcher,
		ScoreSystem:     system.NewScoreSystem(dispatcher),
		SweepSystem:     system.NewSweepSystem(sc, l),
		layout:          l,
	}
	return g, nil
}

// Layout returns the layout currently in effect.
func (g *Game) Layout() *layout.Layout {
	return g.layout
}

// ApplyLayout moves surfaces to a reloaded layout. Surface bindings are
// fixed once the game starts, so the new layout must name exactly the same
// surfaces.
func (g *Game) ApplyLayout(l *layout.Layout) error {
	if len(l.Surfaces) != len(g.layout.Surfaces) {
		return fmt.Errorf("app: layout has %d surfaces, game has %d", len(l.Surfaces), len(g.layout.Surfaces))
	}
	for _, spec := range l.Surfaces {
		if _, ok := g.Scene.Surface(spec.ID); !ok {
			return fmt.Errorf("app: layout names unknown surface %q", spec.ID)
		}
	}
	g.layout = l
	g.SweepSystem.SetLayout(l)
	g.EventDispatcher.Dispatch(event.Event{Type: event.LayoutReloaded, Data: l})
	log.Printf("layout reloaded: %d surfaces", len(l.Surfaces))
	return nil
}

// Update moves the surfaces and then runs one frame of the scene.
func (g *Game) Update(deltaTime float64) {
	g.SweepSystem.Update(deltaTime)
	g.Scene.FrameTick(time.Now())
}

// HandleClick routes a window click to the surface under it. Clicks between
// surfaces are ignored.
func (g *Game) HandleClick(x, y float64) bool {
	return g.Scene.OnWindowClick(x, y)
}

// Draw blits every surface's playfield image into its display rect.
func (g *Game) Draw(screen *ebiten.Image) {
	for _, s := range g.Scene.Surfaces() {
		d := s.Display
		vector.DrawFilledRect(screen, float32(d.X), float32(d.Y), float32(d.W), float32(d.H), config.SurfaceColor, false)

		canvas, ok := s.Canvas.(*ebitencanvas.ImageCanvas)
		if !ok {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(d.W/config.PlayfieldWidth, d.H/config.PlayfieldHeight)
		op.GeoM.Translate(d.X, d.Y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(canvas.Image, op)
	}
}
