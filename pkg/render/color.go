// pkg/render/color.go
package render

import "image/color"

// WithAlpha умножает цвет на прозрачность alpha (0..1), как ожидает ebiten.
func WithAlpha(c color.RGBA, alpha float32) color.RGBA {
	alpha = max(0, min(alpha, 1))
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
