// internal/system/wrap.go
package system

import (
	"space-fighter/internal/entity"
	"space-fighter/internal/utils"
)

// WrapSystem переносит корабли, вылетевшие за край арены, на противоположный край.
// Снаряды не переносятся: они долетают за край и гаснут.
type WrapSystem struct {
	ecs           *entity.ECS
	width, height float64
}

func NewWrapSystem(ecs *entity.ECS, width, height float64) *WrapSystem {
	return &WrapSystem{ecs: ecs, width: width, height: height}
}

func (s *WrapSystem) Update() {
	for id := range s.ecs.Ships {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		x, wrappedX := utils.WrapCoord(pos.X, 0, s.width)
		y, wrappedY := utils.WrapCoord(pos.Y, 0, s.height)
		if !wrappedX && !wrappedY {
			continue
		}
		// незавершённое перемещение отменяется до переноса
		delete(s.ecs.Motions, id)
		pos.X, pos.Y = x, y
	}
}
