package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"space-fighter/internal/event"
	"space-fighter/internal/input"
	"space-fighter/internal/types"
)

func TestBlast_CompletesAfterFlightAndSettle(t *testing.T) {
	w := newWorld(t)
	expired := &recorder{}
	w.dispatcher.Subscribe(expired, event.BlastExpired)
	p1 := w.ship(t, types.Player1)

	w.held.KeyDown("Space")
	w.step(0.1)
	w.held.KeyUp("Space")
	require.Len(t, w.ecs.Blasts, 1)

	for i := 0; i < 4; i++ {
		w.step(0.1)
	}
	assert.Len(t, w.ecs.Blasts, 1, "blast still settling at 0.5s")
	assert.False(t, w.ecs.Ships[p1].CanFire)

	w.step(0.1)
	assert.Empty(t, w.ecs.Blasts, "blast gone at 0.6s")
	assert.True(t, w.ecs.Ships[p1].CanFire)
	assert.Equal(t, 1, expired.count(event.BlastExpired))
}

func TestBlast_FadesWhileFlying(t *testing.T) {
	w := newWorld(t)
	w.control.Execute(input.Command{Ship: types.Player1, Action: types.Fire})

	var id types.EntityID
	for blastID := range w.ecs.Blasts {
		id = blastID
	}
	start := *w.ecs.Positions[id]

	w.movement.Update(0.2)
	w.blasts.Update(0.2)
	assert.InDelta(t, 0.5, w.ecs.Renderables[id].Alpha, 1e-6)
	assert.InDelta(t, start.Y+200, w.ecs.Positions[id].Y, 1e-9)

	w.movement.Update(0.2)
	w.blasts.Update(0.2)
	assert.Zero(t, w.ecs.Renderables[id].Alpha)
	assert.InDelta(t, start.Y+400, w.ecs.Positions[id].Y, 1e-9)
	assert.NotContains(t, w.ecs.Motions, id)
	assert.NotContains(t, w.ecs.Fades, id)
	assert.Contains(t, w.ecs.Blasts, id, "blast waits after the fade")
}

func TestBlast_AutoFireWhileHeld(t *testing.T) {
	w := newWorld(t)
	fired := &recorder{}
	w.dispatcher.Subscribe(fired, event.ShotFired)

	w.held.KeyDown("Space")
	for i := 0; i < 11; i++ {
		w.step(0.1)
	}
	// выстрелы на кадрах 1 и 7: первый снаряд завершился на шестом
	assert.Equal(t, 2, fired.count(event.ShotFired))
	assert.Len(t, w.ecs.Blasts, 1)
}

func TestBlast_CompleteRestoresOwnerOnce(t *testing.T) {
	w := newWorld(t)
	p2 := w.ship(t, types.Player2)
	w.control.Execute(input.Command{Ship: types.Player2, Action: types.Fire})

	var id types.EntityID
	for blastID := range w.ecs.Blasts {
		id = blastID
	}
	assert.True(t, w.blasts.Complete(id))
	assert.True(t, w.ecs.Ships[p2].CanFire)
	assert.False(t, w.blasts.Complete(id), "second completion is a no-op")
}
