// internal/system/projectile.go
package system

import (
	"space-fighter/internal/component"
	"space-fighter/internal/entity"
	"space-fighter/internal/event"
	"space-fighter/internal/types"
)

// BlastSystem ведёт затухание и обратный отсчёт жизни снарядов.
type BlastSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewBlastSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *BlastSystem {
	return &BlastSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *BlastSystem) Update(deltaTime float64) {
	for id, fade := range s.ecs.Fades {
		fade.Elapsed += deltaTime
		progress := 1.0
		if fade.Duration > 0 {
			progress = min(fade.Elapsed/fade.Duration, 1)
		}
		if renderable, ok := s.ecs.Renderables[id]; ok {
			renderable.Alpha = float32(1 - progress)
		}
		if progress >= 1 {
			delete(s.ecs.Fades, id)
		}
	}

	for id, lifetime := range s.ecs.Lifetimes {
		lifetime.Remaining -= deltaTime
		if lifetime.Remaining <= component.TimeEpsilon {
			s.Complete(id)
		}
	}
}

// Complete убирает снаряд и возвращает стрелявшему кораблю право стрелять.
// Это единственный путь удаления снаряда: и по истечении времени, и при попадании.
func (s *BlastSystem) Complete(id types.EntityID) bool {
	blast, ok := s.ecs.Blasts[id]
	if !ok {
		return false
	}
	if shipID, alive := s.ecs.ShipEntity(blast.Owner); alive {
		s.ecs.Ships[shipID].CanFire = true
	}
	s.ecs.RemoveEntity(id)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.BlastExpired,
		Data: event.Shot{Owner: blast.Owner, Blast: id},
	})
	return true
}
