// internal/state/menu_state.go
package state

import (
	"go-target-range/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var menuLines = []string{
	"TARGET RANGE",
	"",
	"click an empty field to place a target",
	"click outside a target to shoot at the click",
	"click a target to destroy it",
	"",
	"click or press space to start",
}

// MenuState: стартовый экран
type MenuState struct {
	sm   *StateMachine
	next func() State
}

func NewMenuState(sm *StateMachine, next func() State) *MenuState {
	return &MenuState{sm: sm, next: next}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(m.next())
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	y := config.ScreenHeight/2 - len(menuLines)*config.HUDLineHeight/2
	for _, line := range menuLines {
		x := (config.ScreenWidth - len(line)*7) / 2
		text.Draw(screen, line, face, x, y, config.TextColor)
		y += config.HUDLineHeight
	}
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
