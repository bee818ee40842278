package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"space-fighter/internal/component"
	"space-fighter/internal/event"
	"space-fighter/internal/input"
	"space-fighter/internal/types"
)

func TestState_ShotEndsMatch(t *testing.T) {
	w := newWorld(t)
	events := &recorder{}
	w.dispatcher.Subscribe(events, event.ShipDestroyed, event.MatchOver, event.BlastExpired)
	p1 := w.ship(t, types.Player1)
	w.ecs.Headings[p1].Angle = -math.Pi / 2

	w.held.KeyDown("Space")
	for i := 0; i < 3; i++ {
		w.step(0.1)
	}

	assert.Equal(t, component.GameOver, w.state.Current())
	assert.Equal(t, types.Player2, w.ecs.Match.Loser)
	_, alive := w.ecs.ShipEntity(types.Player2)
	assert.False(t, alive)
	assert.Empty(t, w.ecs.Blasts)
	assert.Len(t, w.ecs.Explosions, 1)
	assert.True(t, w.ecs.Ships[p1].CanFire)

	assert.Equal(t, 1, events.count(event.ShipDestroyed))
	assert.Equal(t, 1, events.count(event.MatchOver))
	assert.Equal(t, 1, events.count(event.BlastExpired))

	// Space всё ещё зажат, но в GameOver огонь не открывается
	for i := 0; i < 10; i++ {
		w.step(0.1)
	}
	assert.Empty(t, w.ecs.Blasts)
	assert.Equal(t, 1, events.count(event.MatchOver))
}

func TestState_ContactEitherOrder(t *testing.T) {
	for _, swap := range []bool{false, true} {
		w := newWorld(t)
		p1 := w.ship(t, types.Player1)
		blast, err := w.ecs.NewBlast(types.Player2, component.Position{X: 250, Y: 310}, 0, component.Position{X: 250, Y: 700})
		require.NoError(t, err)

		contact := event.Contact{A: blast, B: p1}
		if swap {
			contact = event.Contact{A: p1, B: blast}
		}
		require.True(t, w.state.HandleContact(contact))
		assert.Equal(t, types.Player1, w.ecs.Match.Loser)
		assert.NotContains(t, w.ecs.Blasts, blast)
	}
}

func TestState_ContactResetsBothFlags(t *testing.T) {
	w := newWorld(t)
	p1 := w.ship(t, types.Player1)
	p2 := w.ship(t, types.Player2)

	// у первого снаряд в полёте, второй попадает сам в себя
	w.control.Execute(input.Command{Ship: types.Player1, Action: types.Fire})
	w.control.Execute(input.Command{Ship: types.Player2, Action: types.Fire})
	require.False(t, w.ecs.Ships[p1].CanFire)

	var p2Blast types.EntityID
	for id, blast := range w.ecs.Blasts {
		if blast.Owner == types.Player2 {
			p2Blast = id
		}
	}
	require.True(t, w.state.HandleContact(event.Contact{A: p2Blast, B: p2}))

	assert.True(t, w.ecs.Ships[p1].CanFire)
	assert.Len(t, w.ecs.Blasts, 1, "the other blast keeps flying")
	assert.Equal(t, types.Player2, w.ecs.Match.Loser)
}

func TestState_SurvivorStopsOnGameOver(t *testing.T) {
	w := newWorld(t)
	p1 := w.ship(t, types.Player1)
	p2 := w.ship(t, types.Player2)

	require.True(t, w.control.Execute(input.Command{Ship: types.Player1, Action: types.Thrust}))
	w.step(0.1)
	require.Contains(t, w.ecs.Motions, p1)

	blast, _ := w.ecs.NewBlast(types.Player1, component.Position{X: 550, Y: 300}, 0, component.Position{X: 550, Y: 700})
	require.True(t, w.state.HandleContact(event.Contact{A: blast, B: p2}))
	assert.NotContains(t, w.ecs.Motions, p1)

	stopped := *w.ecs.Positions[p1]
	for i := 0; i < 5; i++ {
		w.step(0.1)
	}
	assert.Equal(t, stopped, *w.ecs.Positions[p1])
}

func TestState_ContactInGameOverIgnored(t *testing.T) {
	w := newWorld(t)
	p1 := w.ship(t, types.Player1)
	p2 := w.ship(t, types.Player2)
	first, _ := w.ecs.NewBlast(types.Player1, component.Position{X: 550, Y: 300}, 0, component.Position{X: 550, Y: 700})
	second, _ := w.ecs.NewBlast(types.Player2, component.Position{X: 250, Y: 300}, 0, component.Position{X: 250, Y: 700})

	require.True(t, w.state.HandleContact(event.Contact{A: first, B: p2}))
	assert.False(t, w.state.HandleContact(event.Contact{A: second, B: p1}))

	assert.Contains(t, w.ecs.Ships, p1)
	assert.Contains(t, w.ecs.Blasts, second)
	assert.Equal(t, types.Player2, w.ecs.Match.Loser)
}

func TestState_ContactWithoutRolesIgnored(t *testing.T) {
	w := newWorld(t)
	p1 := w.ship(t, types.Player1)
	p2 := w.ship(t, types.Player2)

	assert.False(t, w.state.HandleContact(event.Contact{A: p1, B: p2}))
	assert.False(t, w.state.HandleContact(event.Contact{A: p1, B: 999}))
	assert.Equal(t, component.Playing, w.state.Current())
}

func TestState_ResetOnlyInGameOver(t *testing.T) {
	w := newWorld(t)
	p1 := w.ship(t, types.Player1)
	w.ecs.Positions[p1].X = 123
	matchID := w.ecs.Match.MatchID

	done, err := w.state.Reset()
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 123.0, w.ecs.Positions[p1].X)
	assert.Equal(t, matchID, w.ecs.Match.MatchID)
}

func TestState_ResetRecreatesShips(t *testing.T) {
	w := newWorld(t)
	p1 := w.ship(t, types.Player1)
	p2 := w.ship(t, types.Player2)
	matchID := w.ecs.Match.MatchID

	w.ecs.Headings[p2].Angle = 1
	w.control.Execute(input.Command{Ship: types.Player2, Action: types.Fire})
	blast, _ := w.ecs.NewBlast(types.Player2, component.Position{X: 250, Y: 300}, 0, component.Position{X: 250, Y: 700})
	require.True(t, w.state.HandleContact(event.Contact{A: blast, B: p1}))

	done, err := w.state.Reset()
	require.NoError(t, err)
	assert.True(t, done)

	assert.Equal(t, component.Playing, w.state.Current())
	assert.Equal(t, types.NoShip, w.ecs.Match.Loser)
	assert.NotEqual(t, matchID, w.ecs.Match.MatchID)
	assert.Empty(t, w.ecs.Blasts)
	assert.Empty(t, w.ecs.Explosions)
	assert.Len(t, w.ecs.Ships, 2)

	want := map[types.ShipID]component.Position{
		types.Player1: {X: 250, Y: 300},
		types.Player2: {X: 550, Y: 300},
	}
	for id, ship := range w.ecs.Ships {
		assert.Equal(t, want[ship.ID], *w.ecs.Positions[id])
		assert.Zero(t, w.ecs.Headings[id].Angle)
		assert.True(t, ship.CanFire)
	}
}
