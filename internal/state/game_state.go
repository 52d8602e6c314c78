// internal/state/game_state.go
package state

import (
	"fmt"
	game "go-target-range/internal/app"
	"go-target-range/internal/config"
	"go-target-range/internal/layout"
	"go-target-range/internal/ui"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// LayoutSource delivers reloaded layouts. A nil source never reloads.
type LayoutSource struct {
	Layouts <-chan *layout.Layout
	Errors  <-chan error
}

// GameState: поверхности с мишенями
type GameState struct {
	sm      *StateMachine
	game    *game.Game
	hud     *ui.HUD
	reloads LayoutSource
}

func NewGameState(sm *StateMachine, g *game.Game, reloads LayoutSource) *GameState {
	return &GameState{
		sm:      sm,
		game:    g,
		hud:     ui.NewHUD(g.ScoreSystem, g.EventDispatcher),
		reloads: reloads,
	}
}

func (g *GameState) Enter() {
	log.Printf("range started with %d surfaces", len(g.game.Scene.Surfaces()))
}

func (g *GameState) Update(deltaTime float64) {
	g.pollLayout()

	// Клики обрабатываем до кадра, как браузер до requestAnimationFrame
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.game.HandleClick(float64(x), float64(y))
	}

	g.game.Update(deltaTime)
}

func (g *GameState) pollLayout() {
	select {
	case l, ok := <-g.reloads.Layouts:
		if !ok {
			g.reloads.Layouts = nil
			return
		}
		if err := g.game.ApplyLayout(l); err != nil {
			log.Printf("layout reload rejected: %v", err)
		}
	case err, ok := <-g.reloads.Errors:
		if !ok {
			g.reloads.Errors = nil
			return
		}
		log.Printf("layout reload failed: %v", err)
	default:
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.game.Draw(screen)
	g.hud.Draw(screen, g.game.Scene.Surfaces())

	frames, _ := g.game.Scene.Frames()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f  frame: %d", ebiten.ActualTPS(), frames), 4, config.ScreenHeight-18)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
