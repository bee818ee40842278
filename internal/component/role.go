// component/role.go
package component

import "space-fighter/internal/types"

// RoleKind различает корабли и снаряды
type RoleKind int

const (
	RoleShip RoleKind = iota + 1
	RoleBlast
)

// Role есть у каждой сущности. Для корабля Ship — его игрок,
// для снаряда — игрок, который выстрелил.
type Role struct {
	Kind RoleKind
	Ship types.ShipID
}
