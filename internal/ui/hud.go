// internal/ui/hud.go
package ui

import (
	"fmt"
	"go-target-range/internal/config"
	"go-target-range/internal/event"
	"go-target-range/internal/scene"
	"go-target-range/internal/system"
	"go-target-range/pkg/render"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const indicatorRadius = 5

// HUD draws a frame around each surface, a state dot and the surface's
// counters on the line above it.
type HUD struct {
	face       font.Face
	score      *system.ScoreSystem
	indicators map[string]*StateIndicator
}

func NewHUD(score *system.ScoreSystem, dispatcher *event.Dispatcher) *HUD {
	h := &HUD{
		face:       basicfont.Face7x13,
		score:      score,
		indicators: make(map[string]*StateIndicator),
	}
	dispatcher.SubscribeAll(h, event.TargetSpawned, event.TargetKilled, event.ProjectileFired)
	return h
}

func (h *HUD) OnEvent(e event.Event) {
	if data, ok := e.Data.(event.SurfaceData); ok {
		h.indicator(data.SurfaceID).HandleClick()
	}
}

func (h *HUD) indicator(id string) *StateIndicator {
	ind, ok := h.indicators[id]
	if !ok {
		ind = NewStateIndicator(0, 0, indicatorRadius)
		h.indicators[id] = ind
	}
	return ind
}

// StatusLine is the text shown above surface id.
func StatusLine(id string, t system.Tally) string {
	return fmt.Sprintf("%s  spawns %d  kills %d  shots %d  in flight %d", id, t.Spawns, t.Kills, t.Shots, t.InFlight())
}

// DrawFrame outlines a surface's display rect.
func DrawFrame(screen *ebiten.Image, r scene.Rect) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
		config.SurfaceStrokeWidth, config.SurfaceStrokeColor, false)
}

func (h *HUD) Draw(screen *ebiten.Image, surfaces []*scene.Surface) {
	for _, s := range surfaces {
		DrawFrame(screen, s.Display)

		ind := h.indicator(s.ID)
		ind.X = float32(s.Display.X) + indicatorRadius
		ind.Y = float32(s.Display.Y) - config.HUDLineHeight/2 - config.HUDOffsetY
		var stateColor color.Color = render.DarkenColor(config.SurfaceStrokeColor)
		if s.Target.Alive {
			stateColor = config.TargetColor
		}
		ind.Draw(screen, stateColor, config.SurfaceStrokeColor)

		x := int(s.Display.X) + 3*indicatorRadius
		y := int(s.Display.Y) - config.HUDOffsetY - 2
		text.Draw(screen, StatusLine(s.ID, h.score.Tally(s.ID)), h.face, x, y, config.TextColor)
	}
}
