// component/ship.go
package component

import "space-fighter/internal/types"

// Ship — корабль игрока
type Ship struct {
	ID      types.ShipID
	CanFire bool // false, пока выпущенный снаряд летит или затухает
}
