// component/movement.go
package component

// TimeEpsilon поглощает ошибку накопления dt в таймерах.
const TimeEpsilon = 1e-9

// Position — позиция в единицах арены, ось Y направлена вверх
type Position struct {
	X, Y float64
}

// Heading — угол поворота в радианах. Не нормализуется: к [-π, π] его приводит
// терминальный рендер при выборе символа.
type Heading struct {
	Angle float64
}

// Motion — линейное перемещение из From в To за Duration секунд.
// Новый Motion заменяет старый: последняя команда побеждает.
type Motion struct {
	FromX, FromY float64
	ToX, ToY     float64
	Elapsed      float64
	Duration     float64
}

// Progress возвращает долю пройденного пути в диапазоне [0, 1].
func (m *Motion) Progress() float64 {
	if m.Duration <= 0 {
		return 1
	}
	t := m.Elapsed / m.Duration
	if t > 1 || m.Done() {
		return 1
	}
	return t
}

// Done сообщает, что перемещение завершено.
func (m *Motion) Done() bool {
	return m.Elapsed >= m.Duration-TimeEpsilon
}
