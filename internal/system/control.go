// internal/system/control.go
package system

import (
	"go.uber.org/zap"

	"space-fighter/internal/component"
	"space-fighter/internal/config"
	"space-fighter/internal/entity"
	"space-fighter/internal/event"
	"space-fighter/internal/input"
	"space-fighter/internal/types"
	"space-fighter/internal/utils"
)

// ControlSystem раз в кадр опрашивает удерживаемые клавиши и отдаёт команды кораблям.
type ControlSystem struct {
	ecs             *entity.ECS
	held            *input.Held
	bindings        *input.Bindings
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
}

func NewControlSystem(ecs *entity.ECS, held *input.Held, bindings *input.Bindings, eventDispatcher *event.Dispatcher, logger *zap.Logger) *ControlSystem {
	return &ControlSystem{
		ecs:             ecs,
		held:            held,
		bindings:        bindings,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// Update выполняет команды всех удерживаемых клавиш. Неназначенные клавиши пропускаются.
func (s *ControlSystem) Update() {
	for _, key := range s.held.Keys() {
		if cmd, ok := s.bindings.Lookup(key); ok {
			s.Execute(cmd)
		}
	}
}

// Execute применяет команду к кораблю. В GameOver все команды игнорируются.
// Возвращает false, если команда ничего не изменила.
func (s *ControlSystem) Execute(cmd input.Command) bool {
	if s.ecs.Match.Phase != component.Playing {
		return false
	}
	id, ok := s.ecs.ShipEntity(cmd.Ship)
	if !ok {
		return false
	}

	switch cmd.Action {
	case types.RotateLeft:
		s.ecs.Headings[id].Angle += config.RotationStep
	case types.RotateRight:
		s.ecs.Headings[id].Angle -= config.RotationStep
	case types.Thrust:
		s.thrust(id)
	case types.Fire:
		return s.fire(id)
	default:
		return false
	}
	return true
}

// thrust заменяет текущее перемещение корабля новым, от текущей позиции.
func (s *ControlSystem) thrust(id types.EntityID) {
	pos := s.ecs.Positions[id]
	tx, ty := utils.Ahead(pos.X, pos.Y, s.ecs.Headings[id].Angle, config.ThrustDistance)
	s.ecs.Motions[id] = &component.Motion{
		FromX:    pos.X,
		FromY:    pos.Y,
		ToX:      tx,
		ToY:      ty,
		Duration: config.ThrustDuration,
	}
}

func (s *ControlSystem) fire(id types.EntityID) bool {
	ship := s.ecs.Ships[id]
	if !ship.CanFire {
		return false
	}

	pos := s.ecs.Positions[id]
	angle := s.ecs.Headings[id].Angle
	sx, sy := utils.Ahead(pos.X, pos.Y, angle, config.BlastOffset)
	tx, ty := utils.Ahead(sx, sy, angle, config.BlastDistance)

	blastID, err := s.ecs.NewBlast(ship.ID, component.Position{X: sx, Y: sy}, angle, component.Position{X: tx, Y: ty})
	if err != nil {
		s.logger.Error("failed to spawn blast", zap.Stringer("ship", ship.ID), zap.Error(err))
		return false
	}
	ship.CanFire = false

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ShotFired,
		Data: event.Shot{Owner: ship.ID, Blast: blastID},
	})
	return true
}
