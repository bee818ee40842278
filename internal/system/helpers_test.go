package system

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"space-fighter/internal/config"
	"space-fighter/internal/entity"
	"space-fighter/internal/event"
	"space-fighter/internal/input"
	"space-fighter/internal/types"
	"space-fighter/internal/utils"
)

type world struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	held       *input.Held
	control    *ControlSystem
	movement   *MovementSystem
	blasts     *BlastSystem
	wrap       *WrapSystem
	collision  *CollisionSystem
	state      *StateSystem
	effects    *VisualEffectSystem
}

// newWorld собирает системы так же, как матч, и расставляет корабли.
func newWorld(t *testing.T) *world {
	t.Helper()
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	held := input.NewHeld()
	bindings := input.NewBindings(config.DefaultSettings().Keys)

	w := &world{
		ecs:        ecs,
		dispatcher: dispatcher,
		held:       held,
		control:    NewControlSystem(ecs, held, bindings, dispatcher, zap.NewNop()),
		movement:   NewMovementSystem(ecs),
		blasts:     NewBlastSystem(ecs, dispatcher),
		wrap:       NewWrapSystem(ecs, config.ScreenWidth, config.ScreenHeight),
		collision:  NewCollisionSystem(ecs, dispatcher),
		effects:    NewVisualEffectSystem(ecs),
	}
	w.state = NewStateSystem(ecs, w.blasts, dispatcher, utils.NewPRNGService(1), config.ScreenWidth, config.ScreenHeight)
	require.NoError(t, w.state.Setup())
	return w
}

// step прогоняет один кадр в том же порядке, что и матч.
func (w *world) step(dt float64) {
	w.control.Update()
	w.movement.Update(dt)
	w.blasts.Update(dt)
	w.wrap.Update()
	w.collision.Update()
	w.dispatcher.Flush()
	w.effects.Update(dt)
}

func (w *world) ship(t *testing.T, id types.ShipID) types.EntityID {
	t.Helper()
	e, ok := w.ecs.ShipEntity(id)
	require.True(t, ok, "ship %v is not in the arena", id)
	return e
}

type recorder struct {
	got []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.got = append(r.got, e)
}

func (r *recorder) count(eventType event.EventType) int {
	n := 0
	for _, e := range r.got {
		if e.Type == eventType {
			n++
		}
	}
	return n
}
