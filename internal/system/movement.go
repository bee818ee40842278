// internal/system/movement.go
package system

import (
	"space-fighter/internal/entity"
	"space-fighter/internal/utils"
)

// MovementSystem продвигает линейные перемещения (тяга кораблей, полёт снарядов).
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, motion := range s.ecs.Motions {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			delete(s.ecs.Motions, id)
			continue
		}

		motion.Elapsed += deltaTime
		t := motion.Progress()
		pos.X = utils.Lerp(motion.FromX, motion.ToX, t)
		pos.Y = utils.Lerp(motion.FromY, motion.ToY, t)

		if motion.Done() {
			delete(s.ecs.Motions, id)
		}
	}
}
