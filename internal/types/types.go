// internal/types/types.go
package types

// EntityID — идентификатор сущности в ECS
type EntityID uint64

// ShipID — игрок, которому принадлежит корабль
type ShipID int

const (
	NoShip ShipID = iota
	Player1
	Player2
)

// Ships перечисляет оба корабля в порядке создания.
var Ships = [...]ShipID{Player1, Player2}

// Valid сообщает, обозначает ли id реального игрока.
func (id ShipID) Valid() bool {
	switch id {
	case Player1, Player2:
		return true
	}
	return false
}

func (id ShipID) String() string {
	switch id {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}
	return "none"
}

// Action — команда, которую игрок отдаёт своему кораблю
type Action int

const (
	RotateLeft Action = iota
	RotateRight
	Thrust
	Fire
)

func (a Action) String() string {
	switch a {
	case RotateLeft:
		return "rotate_left"
	case RotateRight:
		return "rotate_right"
	case Thrust:
		return "thrust"
	case Fire:
		return "fire"
	}
	return "unknown"
}
