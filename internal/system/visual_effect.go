// internal/system/visual_effect.go
package system

import (
	"space-fighter/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами — взрывами кораблей.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update расширяет и гасит взрывы, завершившиеся удаляет.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, explosion := range s.ecs.Explosions {
		explosion.CurrentTimer += deltaTime

		if explosion.CurrentTimer >= explosion.Duration {
			s.ecs.RemoveEntity(id)
			continue
		}

		if renderable, ok := s.ecs.Renderables[id]; ok {
			progress := explosion.CurrentTimer / explosion.Duration
			renderable.Radius = float32(progress * explosion.MaxRadius)
			renderable.Alpha = float32(1 - progress)
		}
	}
}
