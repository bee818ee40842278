// component/visual.go
package component

// Explosion — визуальный эффект на месте уничтоженного корабля.
type Explosion struct {
	CurrentTimer float64 // Сколько времени эффект уже активен
	Duration     float64 // Общая продолжительность эффекта
	MaxRadius    float64
	Debris       []float64 // углы разлёта обломков
}
