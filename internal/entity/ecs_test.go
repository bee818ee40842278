package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"space-fighter/internal/component"
	"space-fighter/internal/config"
	"space-fighter/internal/types"
)

func TestNewShip_TagsRole(t *testing.T) {
	ecs := NewECS()
	id, err := ecs.NewShip(types.Player2, component.Position{X: 10, Y: 20}, 0.5)
	require.NoError(t, err)

	assert.Equal(t, &component.Role{Kind: component.RoleShip, Ship: types.Player2}, ecs.Roles[id])
	assert.True(t, ecs.Ships[id].CanFire)
	assert.Equal(t, 0.5, ecs.Headings[id].Angle)
	assert.Equal(t, component.Position{X: 10, Y: 20}, *ecs.Positions[id])

	found, ok := ecs.ShipEntity(types.Player2)
	assert.True(t, ok)
	assert.Equal(t, id, found)
}

func TestNewShip_RejectsMalformed(t *testing.T) {
	ecs := NewECS()
	_, err := ecs.NewShip(types.NoShip, component.Position{}, 0)
	assert.ErrorIs(t, err, ErrInvalidShip)

	_, err = ecs.NewShip(types.Player1, component.Position{}, 0)
	require.NoError(t, err)
	_, err = ecs.NewShip(types.Player1, component.Position{}, 0)
	assert.ErrorIs(t, err, ErrInvalidShip)
	assert.Len(t, ecs.Ships, 1)
}

func TestNewBlast_RequiresOwner(t *testing.T) {
	ecs := NewECS()
	_, err := ecs.NewBlast(types.NoShip, component.Position{}, 0, component.Position{})
	assert.ErrorIs(t, err, ErrNoOwner)
	assert.Empty(t, ecs.Blasts)
	assert.Empty(t, ecs.Positions)
}

func TestNewBlast_SchedulesFlight(t *testing.T) {
	ecs := NewECS()
	id, err := ecs.NewBlast(types.Player1, component.Position{X: 1, Y: 2}, 0.3, component.Position{X: 5, Y: 6})
	require.NoError(t, err)

	assert.Equal(t, types.Player1, ecs.Blasts[id].Owner)
	assert.Equal(t, 0.3, ecs.Blasts[id].Heading)
	assert.Equal(t, component.RoleBlast, ecs.Roles[id].Kind)
	assert.Equal(t, config.BlastDuration, ecs.Motions[id].Duration)
	assert.Equal(t, 5.0, ecs.Motions[id].ToX)
	assert.Equal(t, config.BlastDuration, ecs.Fades[id].Duration)
	assert.InDelta(t, 0.6, ecs.Lifetimes[id].Remaining, 1e-9)
}

func TestRemoveEntityAndClear(t *testing.T) {
	ecs := NewECS()
	ship, _ := ecs.NewShip(types.Player1, component.Position{}, 0)
	blast, _ := ecs.NewBlast(types.Player1, component.Position{}, 0, component.Position{X: 1})
	ecs.NewExplosion(component.Position{}, []float64{0, 1})

	ecs.RemoveEntity(blast)
	assert.NotContains(t, ecs.Positions, blast)
	assert.NotContains(t, ecs.Motions, blast)
	assert.Contains(t, ecs.Positions, ship)

	ecs.Match.Phase = component.GameOver
	ecs.Clear()
	assert.Empty(t, ecs.Positions)
	assert.Empty(t, ecs.Explosions)
	assert.Equal(t, component.GameOver, ecs.Match.Phase)
}
