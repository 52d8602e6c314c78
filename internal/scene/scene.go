// Package scene binds playfield surfaces to their targets, routes clicks and
// drives the per-frame draw/advance cycle.
package scene

import (
	"context"
	"fmt"
	"go-target-range/internal/config"
	"go-target-range/internal/entity"
	"go-target-range/internal/event"
	"go-target-range/pkg/render"
	"log"
	"math"
	"time"
)

// Surface is one playfield: a canvas, the target living on it and where it is
// currently shown.
type Surface struct {
	ID      string
	Canvas  render.Canvas
	Target  *entity.Target
	Display Rect
}

// Binding pairs a surface id with its canvas and initial display rect.
type Binding struct {
	ID      string
	Canvas  render.Canvas
	Display Rect
}

// Click is a click in display coordinates relative to the top-left corner of
// surface SurfaceID. With Window set, X and Y are host coordinates instead and
// the surface is found with SurfaceAt. With Cell set, X and Y are the column
// and row of a host cell and the click lands on the cell's centre.
type Click struct {
	SurfaceID string
	X, Y      float64
	Window    bool
	Cell      bool
}

// Scene owns the surface bindings. It is not safe for concurrent use; Run
// serialises clicks and frames onto one goroutine.
type Scene struct {
	surfaces   []*Surface
	byID       map[string]*Surface
	dispatcher *event.Dispatcher

	// AfterTick, if set, runs at the end of every FrameTick.
	AfterTick func(ts time.Time)

	frames   uint64
	lastTick time.Time
}

// New creates a target centred in each surface's playfield. Bindings keep the
// order they were given in.
func New(dispatcher *event.Dispatcher, bindings ...Binding) (*Scene, error) {
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	s := &Scene{
		byID:       make(map[string]*Surface, len(bindings)),
		dispatcher: dispatcher,
	}
	for _, b := range bindings {
		if b.Canvas == nil {
			return nil, fmt.Errorf("scene: surface %q has no canvas", b.ID)
		}
		if _, dup := s.byID[b.ID]; dup {
			return nil, fmt.Errorf("scene: duplicate surface %q", b.ID)
		}
		surface := &Surface{
			ID:      b.ID,
			Canvas:  b.Canvas,
			Target:  entity.NewTarget(config.PlayfieldWidth/2, config.PlayfieldHeight/2, config.TargetRadius),
			Display: b.Display,
		}
		s.surfaces = append(s.surfaces, surface)
		s.byID[b.ID] = surface
	}
	return s, nil
}

// Surfaces returns the surfaces in binding order.
func (s *Scene) Surfaces() []*Surface {
	return s.surfaces
}

// Surface looks up a surface by id.
func (s *Scene) Surface(id string) (*Surface, bool) {
	surface, ok := s.byID[id]
	return surface, ok
}

// Dispatcher returns the dispatcher scene events are published on.
func (s *Scene) Dispatcher() *event.Dispatcher {
	return s.dispatcher
}

// Frames returns how many ticks have run and the timestamp of the last one.
func (s *Scene) Frames() (uint64, time.Time) {
	return s.frames, s.lastTick
}

// SetDisplay moves or resizes where a surface is shown.
func (s *Scene) SetDisplay(id string, r Rect) bool {
	surface, ok := s.byID[id]
	if !ok {
		return false
	}
	surface.Display = r
	return true
}

// SurfaceAt finds the topmost surface shown under host point (x, y) and
// returns the point relative to that surface's top-left corner. Later
// bindings are drawn on top, so they are checked first.
func (s *Scene) SurfaceAt(x, y float64) (id string, localX, localY float64, ok bool) {
	for i := len(s.surfaces) - 1; i >= 0; i-- {
		d := s.surfaces[i].Display
		if d.Contains(x, y) {
			return s.surfaces[i].ID, x - d.X, y - d.Y, true
		}
	}
	return "", 0, 0, false
}

// ToPlayfield converts a display-relative position into playfield units.
// The position is rounded to whole display pixels first.
func (sf *Surface) ToPlayfield(x, y float64) (float64, float64) {
	return sf.scale(math.Round(x), math.Round(y))
}

func (sf *Surface) scale(x, y float64) (float64, float64) {
	if sf.Display.W <= 0 || sf.Display.H <= 0 {
		return x, y
	}
	return x / sf.Display.W * config.PlayfieldWidth, y / sf.Display.H * config.PlayfieldHeight
}

// OnClick routes a click on surface id to its target. Clicks for unknown
// surfaces are logged and dropped.
func (s *Scene) OnClick(id string, x, y float64) {
	surface, ok := s.byID[id]
	if !ok {
		log.Printf("scene: warning: no target bound to surface %q", id)
		s.dispatcher.Dispatch(event.Event{Type: event.ClickUnrouted, Data: event.SurfaceData{SurfaceID: id, X: x, Y: y}})
		return
	}

	cx, cy := surface.ToPlayfield(x, y)
	s.apply(surface, cx, cy)
}

func (s *Scene) apply(surface *Surface, cx, cy float64) {
	data := event.SurfaceData{SurfaceID: surface.ID, X: cx, Y: cy}
	inFlight := len(surface.Target.Projectiles)
	switch surface.Target.HandleClick(cx, cy) {
	case entity.ActionSpawned:
		s.dispatcher.Dispatch(event.Event{Type: event.TargetSpawned, Data: data})
	case entity.ActionKilled:
		data.Count = inFlight
		s.dispatcher.Dispatch(event.Event{Type: event.TargetKilled, Data: data})
	case entity.ActionFired:
		data.Count = 1
		s.dispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: data})
	}
}

// OnWindowClick routes a click in host coordinates to the surface shown under
// it. It reports false when the click missed every surface.
func (s *Scene) OnWindowClick(x, y float64) bool {
	id, lx, ly, ok := s.SurfaceAt(x, y)
	if !ok {
		return false
	}
	s.OnClick(id, lx, ly)
	return true
}

// OnCellClick routes a click on host cell (col, row), as reported by a
// character terminal, to the surface under the cell's centre.
func (s *Scene) OnCellClick(col, row int) bool {
	id, lx, ly, ok := s.SurfaceAt(float64(col)+0.5, float64(row)+0.5)
	if !ok {
		return false
	}
	surface := s.byID[id]
	cx, cy := surface.scale(lx, ly)
	s.apply(surface, cx, cy)
	return true
}

// FrameTick clears each surface, draws its target if alive and then advances
// the target one tick, surface by surface in binding order.
func (s *Scene) FrameTick(ts time.Time) {
	for _, surface := range s.surfaces {
		surface.Canvas.Clear()
		if surface.Target.Alive {
			surface.Target.Draw(surface.Canvas)
		}
		if n := surface.Target.Update(); n > 0 {
			s.dispatcher.Dispatch(event.Event{
				Type: event.ProjectilesExpired,
				Data: event.SurfaceData{SurfaceID: surface.ID, Count: n},
			})
		}
	}
	s.frames++
	s.lastTick = ts
	if s.AfterTick != nil {
		s.AfterTick(ts)
	}
}

// Run ticks once per value received on frames and applies clicks between
// ticks, all on the calling goroutine. It returns ctx.Err() when ctx is done
// and nil once frames is closed.
func (s *Scene) Run(ctx context.Context, frames <-chan time.Time, clicks <-chan Click) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ts, ok := <-frames:
			if !ok {
				return nil
			}
			s.FrameTick(ts)
		case c, ok := <-clicks:
			if !ok {
				clicks = nil
				continue
			}
			switch {
			case c.Cell:
				s.OnCellClick(int(c.X), int(c.Y))
			case c.Window:
				s.OnWindowClick(c.X, c.Y)
			default:
				s.OnClick(c.SurfaceID, c.X, c.Y)
			}
		}
	}
}
