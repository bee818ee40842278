// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Forward возвращает единичный вектор направления носа корабля с углом angle.
// При angle == 0 нос смотрит вверх (+Y), положительный угол поворачивает влево.
func Forward(angle float64) (x, y float64) {
	return -math.Cos(angle - math.Pi/2), -math.Sin(angle - math.Pi/2)
}

// Ahead возвращает точку на расстоянии distance перед (x, y) по углу angle.
func Ahead(x, y, angle, distance float64) (float64, float64) {
	fx, fy := Forward(angle)
	return x + fx*distance, y + fy*distance
}

// WrapCoord переносит координату, вышедшую за [min, max], на противоположную
// границу. Второе значение сообщает, был ли перенос.
func WrapCoord(v, min, max float64) (float64, bool) {
	switch {
	case v > max:
		return min, true
	case v < min:
		return max, true
	}
	return v, false
}

// SegmentDistance — расстояние от точки (px, py) до отрезка (ax, ay)-(bx, by).
func SegmentDistance(ax, ay, bx, by, px, py float64) float64 {
	dx, dy := bx-ax, by-ay
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return math.Hypot(px-ax, py-ay)
	}
	t := ((px-ax)*dx + (py-ay)*dy) / lengthSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Triangle возвращает вершины корабля радиуса radius: нос и две кормовые точки.
func Triangle(x, y, angle, radius float64) [3][2]float64 {
	const rear = 2.5 // угол от носа до кормовых вершин, радиан
	var points [3][2]float64
	for i, offset := range [3]float64{0, rear, -rear} {
		points[i][0], points[i][1] = Ahead(x, y, angle+offset, radius)
	}
	return points
}
