// internal/state/arena_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	game "space-fighter/internal/app"
	"space-fighter/internal/component"
	"space-fighter/pkg/render"
)

// Screen — то, что разделяют экранные состояния одного матча
type Screen struct {
	Match    *game.Match
	Renderer *render.ArenaRenderer
	Keys     *KeyFeed
	ResetKey string
}

// ArenaState — идёт бой
type ArenaState struct {
	sm     *StateMachine
	screen *Screen
}

func NewArenaState(sm *StateMachine, screen *Screen) *ArenaState {
	return &ArenaState{sm: sm, screen: screen}
}

func (s *ArenaState) Enter() {}

func (s *ArenaState) Update(deltaTime float64) {
	s.screen.Keys.Poll(s.screen.Match)
	s.screen.Match.Update(deltaTime)
	s.screen.Renderer.Update(s.screen.Match.ECS, deltaTime)

	if s.screen.Match.Phase() == component.GameOver {
		s.sm.SetState(NewGameOverState(s.sm, s.screen))
	}
}

func (s *ArenaState) Draw(screen *ebiten.Image) {
	s.screen.Renderer.Draw(screen, s.screen.Match.ECS)
}

func (s *ArenaState) Exit() {}
