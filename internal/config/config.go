// internal/config/config.go
package config

import (
	"image/color"
	"math"

	"space-fighter/internal/types"
)

// Арена
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06
)

// Корабль
const (
	RotationStep   = math.Pi / 20 // радиан за кадр удержания клавиши
	ThrustDistance = 150.0
	ThrustDuration = 0.8   // секунд
	SpawnOffsetX   = 150.0 // смещение стартовых позиций от центра
	ShipRadius     = 18.0
)

// Снаряд
const (
	BlastOffset   = 55.0  // расстояние от центра корабля до точки выстрела
	BlastDistance = 400.0 // дальность полёта
	BlastDuration = 0.4   // полёт и затухание идут одновременно
	BlastSettle   = BlastDuration / 2
	BlastRadius   = 5.0
)

// Взрыв
const (
	ExplosionDuration = 0.6
	ExplosionRadius   = 40.0
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	ShipColors      = map[types.ShipID]color.RGBA{
		types.Player1: {80, 200, 255, 255},
		types.Player2: {255, 120, 80, 255},
	}
	BlastColor     = color.RGBA{255, 240, 120, 255}
	ExplosionColor = color.RGBA{255, 160, 40, 255}
	TextColor      = color.RGBA{240, 240, 240, 255}
	ShipStroke     = float32(2.0)
)
