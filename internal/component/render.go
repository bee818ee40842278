// component/render.go
package component

import "image/color"

// Renderable — компонент для отрисовки
type Renderable struct {
	Color  color.RGBA
	Radius float32
	Alpha  float32 // 0..1
}

// Fade — затухание прозрачности до нуля за Duration секунд
type Fade struct {
	Elapsed  float64
	Duration float64
}
