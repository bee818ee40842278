// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"space-fighter/internal/component"
)

// Убеждаемся, что состояния соответствуют интерфейсу State
var (
	_ State = (*ArenaState)(nil)
	_ State = (*GameOverState)(nil)
)

// GameOverState — корабль уничтожен. Симуляция продолжается (взрыв,
// оставшиеся снаряды), пока игрок не нажмёт клавишу рестарта.
type GameOverState struct {
	sm     *StateMachine
	screen *Screen
	banner []string
}

func NewGameOverState(sm *StateMachine, screen *Screen) *GameOverState {
	return &GameOverState{sm: sm, screen: screen}
}

func (s *GameOverState) Enter() {
	winner := s.screen.Match.Winner()
	s.banner = []string{
		"GAME OVER",
		fmt.Sprintf("%s wins", winner),
		fmt.Sprintf("press %s to restart", s.screen.ResetKey),
	}
}

func (s *GameOverState) Update(deltaTime float64) {
	s.screen.Keys.Poll(s.screen.Match)
	s.screen.Match.Update(deltaTime)
	s.screen.Renderer.Update(s.screen.Match.ECS, deltaTime)

	if s.screen.Match.Phase() == component.Playing {
		s.sm.SetState(NewArenaState(s.sm, s.screen))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.screen.Renderer.Draw(screen, s.screen.Match.ECS)
	s.screen.Renderer.DrawBanner(screen, s.banner...)
}

func (s *GameOverState) Exit() {}
