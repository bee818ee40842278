// internal/entity/ecs.go
package entity

import (
	"errors"
	"fmt"

	"space-fighter/internal/component"
	"space-fighter/internal/config"
	"space-fighter/internal/types"
)

var (
	// ErrInvalidShip — корабль без игрока или второй корабль того же игрока
	ErrInvalidShip = errors.New("invalid ship")
	// ErrNoOwner — снаряд без стрелявшего корабля
	ErrNoOwner = errors.New("blast has no owner")
)

type ECS struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Headings    map[types.EntityID]*component.Heading
	Motions     map[types.EntityID]*component.Motion
	Roles       map[types.EntityID]*component.Role
	Ships       map[types.EntityID]*component.Ship
	Blasts      map[types.EntityID]*component.Blast
	Lifetimes   map[types.EntityID]*component.Lifetime
	Fades       map[types.EntityID]*component.Fade
	Renderables map[types.EntityID]*component.Renderable
	Explosions  map[types.EntityID]*component.Explosion
	Match       *component.MatchState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Headings:    make(map[types.EntityID]*component.Heading),
		Motions:     make(map[types.EntityID]*component.Motion),
		Roles:       make(map[types.EntityID]*component.Role),
		Ships:       make(map[types.EntityID]*component.Ship),
		Blasts:      make(map[types.EntityID]*component.Blast),
		Lifetimes:   make(map[types.EntityID]*component.Lifetime),
		Fades:       make(map[types.EntityID]*component.Fade),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Explosions:  make(map[types.EntityID]*component.Explosion),
		Match:       &component.MatchState{Phase: component.Playing},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Headings, id)
	delete(ecs.Motions, id)
	delete(ecs.Roles, id)
	delete(ecs.Ships, id)
	delete(ecs.Blasts, id)
	delete(ecs.Lifetimes, id)
	delete(ecs.Fades, id)
	delete(ecs.Renderables, id)
	delete(ecs.Explosions, id)
}

// Clear удаляет все сущности. Состояние матча не трогается.
func (ecs *ECS) Clear() {
	clear(ecs.Positions)
	clear(ecs.Headings)
	clear(ecs.Motions)
	clear(ecs.Roles)
	clear(ecs.Ships)
	clear(ecs.Blasts)
	clear(ecs.Lifetimes)
	clear(ecs.Fades)
	clear(ecs.Renderables)
	clear(ecs.Explosions)
}

// ShipEntity находит сущность корабля игрока.
func (ecs *ECS) ShipEntity(ship types.ShipID) (types.EntityID, bool) {
	for id, s := range ecs.Ships {
		if s.ID == ship {
			return id, true
		}
	}
	return 0, false
}

// NewShip создаёт корабль, готовый стрелять.
func (ecs *ECS) NewShip(ship types.ShipID, at component.Position, heading float64) (types.EntityID, error) {
	if !ship.Valid() {
		return 0, fmt.Errorf("new ship %v: %w", ship, ErrInvalidShip)
	}
	if _, exists := ecs.ShipEntity(ship); exists {
		return 0, fmt.Errorf("new ship %v: already in arena: %w", ship, ErrInvalidShip)
	}

	id := ecs.NewEntity()
	ecs.Positions[id] = &at
	ecs.Headings[id] = &component.Heading{Angle: heading}
	ecs.Roles[id] = &component.Role{Kind: component.RoleShip, Ship: ship}
	ecs.Ships[id] = &component.Ship{ID: ship, CanFire: true}
	ecs.Renderables[id] = &component.Renderable{
		Color:  config.ShipColors[ship],
		Radius: config.ShipRadius,
		Alpha:  1,
	}
	return id, nil
}

// NewBlast создаёт снаряд, летящий из at в target: полёт и затухание за
// BlastDuration, затем ожидание BlastSettle.
func (ecs *ECS) NewBlast(owner types.ShipID, at component.Position, heading float64, target component.Position) (types.EntityID, error) {
	if !owner.Valid() {
		return 0, fmt.Errorf("new blast: %w", ErrNoOwner)
	}

	id := ecs.NewEntity()
	ecs.Positions[id] = &at
	ecs.Headings[id] = &component.Heading{Angle: heading}
	ecs.Roles[id] = &component.Role{Kind: component.RoleBlast, Ship: owner}
	ecs.Blasts[id] = &component.Blast{Owner: owner, Heading: heading, PrevX: at.X, PrevY: at.Y}
	ecs.Motions[id] = &component.Motion{
		FromX:    at.X,
		FromY:    at.Y,
		ToX:      target.X,
		ToY:      target.Y,
		Duration: config.BlastDuration,
	}
	ecs.Fades[id] = &component.Fade{Duration: config.BlastDuration}
	ecs.Lifetimes[id] = &component.Lifetime{Remaining: config.BlastDuration + config.BlastSettle}
	ecs.Renderables[id] = &component.Renderable{
		Color:  config.BlastColor,
		Radius: config.BlastRadius,
		Alpha:  1,
	}
	return id, nil
}

// NewExplosion создаёт эффект взрыва в точке at с обломками, летящими под углами debris.
func (ecs *ECS) NewExplosion(at component.Position, debris []float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &at
	ecs.Explosions[id] = &component.Explosion{
		Duration:  config.ExplosionDuration,
		MaxRadius: config.ExplosionRadius,
		Debris:    debris,
	}
	ecs.Renderables[id] = &component.Renderable{
		Color: config.ExplosionColor,
		Alpha: 1,
	}
	return id
}
