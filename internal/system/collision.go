// internal/system/collision.go
package system

import (
	"maps"
	"slices"

	"space-fighter/internal/config"
	"space-fighter/internal/entity"
	"space-fighter/internal/event"
	"space-fighter/internal/utils"
)

// CollisionSystem ищет касания снарядов и кораблей. Касания не обрабатываются
// на месте: они ставятся в очередь диспетчера и доставляются после обхода.
type CollisionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *CollisionSystem) Update() {
	const reach = config.ShipRadius + config.BlastRadius

	ships := slices.Sorted(maps.Keys(s.ecs.Ships))
	for _, blastID := range slices.Sorted(maps.Keys(s.ecs.Blasts)) {
		blast := s.ecs.Blasts[blastID]
		pos, ok := s.ecs.Positions[blastID]
		if !ok {
			continue
		}

		// любой снаряд задевает любой корабль, включая стрелявший
		for _, shipID := range ships {
			shipPos := s.ecs.Positions[shipID]
			if shipPos == nil {
				continue
			}
			if utils.SegmentDistance(blast.PrevX, blast.PrevY, pos.X, pos.Y, shipPos.X, shipPos.Y) <= reach {
				s.eventDispatcher.Queue(event.Event{
					Type: event.BlastContact,
					Data: event.Contact{A: blastID, B: shipID},
				})
				break
			}
		}
		blast.PrevX, blast.PrevY = pos.X, pos.Y
	}
}
