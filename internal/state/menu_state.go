// internal/state/menu_state.go
package state

import (
	"go-hexnav/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState waits for the player to start a voyage.
type MenuState struct {
	sm *StateMachine
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewSailingState(m.sm))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "press space to set sail",
		basicfont.Face7x13,
		config.ScreenWidth/2-80, config.ScreenHeight/2, config.TextColor)
}

func (m *MenuState) Exit() {}
