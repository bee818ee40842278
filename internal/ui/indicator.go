// internal/ui/indicator.go
package ui

import "math"

// ReloadIndicator — кружок готовности к выстрелу рядом с подписью игрока.
// Когда корабль снова может стрелять, кружок коротко вспыхивает.
type ReloadIndicator struct {
	X, Y    float32
	Radius  float32
	Ready   bool
	elapsed float64 // с момента последней готовности
}

func NewReloadIndicator(x, y, radius float32) *ReloadIndicator {
	return &ReloadIndicator{
		X:       x,
		Y:       y,
		Radius:  radius,
		Ready:   true,
		elapsed: math.Inf(1),
	}
}

// Update принимает текущее состояние корабля.
func (i *ReloadIndicator) Update(canFire bool, deltaTime float64) {
	if canFire && !i.Ready {
		i.elapsed = 0
	} else {
		i.elapsed += deltaTime
	}
	i.Ready = canFire
}

// CurrentRadius учитывает вспышку: +30% в момент готовности, затем экспоненциально к Radius.
func (i *ReloadIndicator) CurrentRadius() float32 {
	scale := 1.0 + 0.3*math.Exp(-i.elapsed*8)
	return i.Radius * float32(scale)
}
