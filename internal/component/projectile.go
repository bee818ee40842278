// component/projectile.go
package component

import "space-fighter/internal/types"

// Blast — снаряд. Направление фиксируется в момент выстрела.
type Blast struct {
	Owner   types.ShipID
	Heading float64
	// Позиция на прошлой проверке столкновений: снаряд проверяется по всему
	// отрезку, пройденному за кадр.
	PrevX, PrevY float64
}

// Lifetime — обратный отсчёт до завершения полёта снаряда (полёт + ожидание).
type Lifetime struct {
	Remaining float64
}
