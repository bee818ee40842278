// internal/app/match.go
package app

import (
	"fmt"

	"go.uber.org/zap"

	"space-fighter/internal/component"
	"space-fighter/internal/config"
	"space-fighter/internal/entity"
	"space-fighter/internal/event"
	"space-fighter/internal/input"
	"space-fighter/internal/system"
	"space-fighter/internal/types"
	"space-fighter/internal/utils"
)

// Match — контроллер матча: держит ECS и системы, принимает события клавиш
// и раз в кадр прогоняет симуляцию.
type Match struct {
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	ControlSystem      *system.ControlSystem
	MovementSystem     *system.MovementSystem
	BlastSystem        *system.BlastSystem
	WrapSystem         *system.WrapSystem
	CollisionSystem    *system.CollisionSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem
	Width, Height      float64

	held     *input.Held
	bindings *input.Bindings
	logger   *zap.Logger
	frame    uint64
}

// NewMatch собирает матч и расставляет корабли. rng задаёт разлёт обломков взрывов.
func NewMatch(settings config.Settings, logger *zap.Logger, rng *utils.PRNGService) (*Match, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("new match: %w", err)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	held := input.NewHeld()
	bindings := input.NewBindings(settings.Keys)
	width, height := settings.Arena.Width, settings.Arena.Height

	m := &Match{
		ECS:                ecs,
		EventDispatcher:    eventDispatcher,
		ControlSystem:      system.NewControlSystem(ecs, held, bindings, eventDispatcher, logger),
		MovementSystem:     system.NewMovementSystem(ecs),
		BlastSystem:        system.NewBlastSystem(ecs, eventDispatcher),
		WrapSystem:         system.NewWrapSystem(ecs, width, height),
		CollisionSystem:    system.NewCollisionSystem(ecs, eventDispatcher),
		VisualEffectSystem: system.NewVisualEffectSystem(ecs),
		Width:              width,
		Height:             height,
		held:               held,
		bindings:           bindings,
		logger:             logger,
	}
	m.StateSystem = system.NewStateSystem(ecs, m.BlastSystem, eventDispatcher, rng, width, height)

	listener := &MatchEventListener{match: m}
	eventDispatcher.Subscribe(listener,
		event.ShotFired,
		event.BlastExpired,
		event.ShipDestroyed,
		event.MatchOver,
		event.MatchReset,
	)

	if err := m.StateSystem.Setup(); err != nil {
		return nil, err
	}
	return m, nil
}

// KeyDown добавляет клавишу в набор удерживаемых. Команды выполнятся в Update.
func (m *Match) KeyDown(key string) { m.held.KeyDown(key) }

// KeyUp убирает клавишу из набора удерживаемых.
func (m *Match) KeyUp(key string) { m.held.KeyUp(key) }

// ReleaseAll отпускает все клавиши, например при потере фокуса окна.
func (m *Match) ReleaseAll() { m.held.Clear() }

// Update — один кадр симуляции.
func (m *Match) Update(deltaTime float64) {
	m.frame++

	if m.Phase() == component.GameOver && m.resetRequested() {
		if err := m.Reset(); err != nil {
			m.logger.Error("reset failed", zap.Error(err))
		}
	}

	before := m.Phase()
	m.ControlSystem.Update()
	m.MovementSystem.Update(deltaTime)
	m.BlastSystem.Update(deltaTime)
	m.WrapSystem.Update()
	m.CollisionSystem.Update()
	m.EventDispatcher.Flush()
	m.VisualEffectSystem.Update(deltaTime)

	// рестарт требует нового нажатия: клавиша, зажатая во время боя, сбрасывается
	if before == component.Playing && m.Phase() == component.GameOver {
		m.releaseReset()
	}
}

func (m *Match) releaseReset() {
	for _, key := range m.held.Keys() {
		if m.bindings.IsReset(key) {
			m.held.KeyUp(key)
		}
	}
}

func (m *Match) resetRequested() bool {
	for _, key := range m.held.Keys() {
		if m.bindings.IsReset(key) {
			return true
		}
	}
	return false
}

// Reset перезапускает матч из GameOver. В Playing ничего не делает.
func (m *Match) Reset() error {
	_, err := m.StateSystem.Reset()
	return err
}

func (m *Match) Phase() component.MatchPhase {
	return m.StateSystem.Current()
}

// Loser возвращает проигравшего в GameOver и NoShip во время игры.
func (m *Match) Loser() types.ShipID {
	return m.ECS.Match.Loser
}

// Winner — выживший корабль в GameOver, NoShip во время игры.
func (m *Match) Winner() types.ShipID {
	switch m.Loser() {
	case types.Player1:
		return types.Player2
	case types.Player2:
		return types.Player1
	}
	return types.NoShip
}

// Frame — число прогнанных кадров с запуска.
func (m *Match) Frame() uint64 {
	return m.frame
}
