// internal/system/state.go
package system

import (
	"fmt"

	"github.com/google/uuid"

	"space-fighter/internal/component"
	"space-fighter/internal/config"
	"space-fighter/internal/entity"
	"space-fighter/internal/event"
	"space-fighter/internal/types"
	"space-fighter/internal/utils"
)

// ExplosionDebris — число обломков во взрыве
const ExplosionDebris = 10

// StateSystem ведёт жизненный цикл матча: Playing -> GameOver по касанию,
// GameOver -> Playing по рестарту.
type StateSystem struct {
	ecs             *entity.ECS
	blastSystem     *BlastSystem
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	width, height   float64
}

func NewStateSystem(ecs *entity.ECS, blastSystem *BlastSystem, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, width, height float64) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		blastSystem:     blastSystem,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		width:           width,
		height:          height,
	}
	eventDispatcher.Subscribe(ss, event.BlastContact)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if contact, ok := e.Data.(event.Contact); ok && e.Type == event.BlastContact {
		s.HandleContact(contact)
	}
}

// HandleContact обрабатывает касание снаряда и корабля. Срабатывает только в
// Playing, поэтому матч переходит в GameOver ровно один раз.
func (s *StateSystem) HandleContact(contact event.Contact) bool {
	if s.ecs.Match.Phase != component.Playing {
		return false
	}
	shipID, blastID, ok := s.resolve(contact)
	if !ok {
		return false
	}

	ship := s.ecs.Ships[shipID]
	s.ecs.NewExplosion(*s.ecs.Positions[shipID], s.rng.Angles(ExplosionDebris))
	s.ecs.RemoveEntity(shipID)
	s.blastSystem.Complete(blastID)

	// выживший замирает: незавершённая тяга отменяется
	for id, survivor := range s.ecs.Ships {
		survivor.CanFire = true
		delete(s.ecs.Motions, id)
	}
	s.ecs.Match.Phase = component.GameOver
	s.ecs.Match.Loser = ship.ID

	s.eventDispatcher.Dispatch(event.Event{Type: event.ShipDestroyed, Data: ship.ID})
	s.eventDispatcher.Dispatch(event.Event{Type: event.MatchOver, Data: ship.ID})
	return true
}

// resolve раскладывает пару тел на корабль и снаряд по их ролям.
func (s *StateSystem) resolve(contact event.Contact) (ship, blast types.EntityID, ok bool) {
	a, b := s.ecs.Roles[contact.A], s.ecs.Roles[contact.B]
	if a == nil || b == nil {
		return 0, 0, false
	}
	switch {
	case a.Kind == component.RoleShip && b.Kind == component.RoleBlast:
		return contact.A, contact.B, true
	case a.Kind == component.RoleBlast && b.Kind == component.RoleShip:
		return contact.B, contact.A, true
	}
	return 0, 0, false
}

// Setup очищает арену и расставляет корабли на стартовые позиции.
func (s *StateSystem) Setup() error {
	s.eventDispatcher.Drop()
	s.ecs.Clear()

	midX, midY := s.width/2, s.height/2
	spawns := map[types.ShipID]component.Position{
		types.Player1: {X: midX - config.SpawnOffsetX, Y: midY},
		types.Player2: {X: midX + config.SpawnOffsetX, Y: midY},
	}
	for _, ship := range types.Ships {
		if _, err := s.ecs.NewShip(ship, spawns[ship], 0); err != nil {
			return fmt.Errorf("setup match: %w", err)
		}
	}

	s.ecs.Match.Phase = component.Playing
	s.ecs.Match.Loser = types.NoShip
	s.ecs.Match.MatchID = uuid.NewString()

	s.eventDispatcher.Dispatch(event.Event{Type: event.MatchReset, Data: s.ecs.Match.MatchID})
	return nil
}

// Reset перезапускает матч. Вне GameOver ничего не делает и возвращает false.
func (s *StateSystem) Reset() (bool, error) {
	if s.ecs.Match.Phase != component.GameOver {
		return false, nil
	}
	return true, s.Setup()
}

func (s *StateSystem) Current() component.MatchPhase {
	return s.ecs.Match.Phase
}
