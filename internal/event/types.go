// internal/event/types.go
package event

import "space-fighter/internal/types"

const (
	BlastContact  EventType = "BlastContact"  // Снаряд коснулся корабля
	ShotFired     EventType = "ShotFired"     // Корабль выстрелил
	BlastExpired  EventType = "BlastExpired"  // Снаряд убран, стрелок снова может стрелять
	ShipDestroyed EventType = "ShipDestroyed" // Корабль уничтожен
	MatchOver     EventType = "MatchOver"     // Матч окончен
	MatchReset    EventType = "MatchReset"    // Новый матч
)

// Contact — данные BlastContact. Порядок тел не гарантирован,
// роли определяет получатель.
type Contact struct {
	A, B types.EntityID
}

// Shot — данные ShotFired и BlastExpired
type Shot struct {
	Owner types.ShipID
	Blast types.EntityID
}
