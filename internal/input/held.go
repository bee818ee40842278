// Package input собирает нажатия клавиш в набор удерживаемых клавиш,
// который симуляция читает один раз за кадр.
package input

import (
	"maps"
	"slices"
)

// Held — набор удерживаемых клавиш. События хоста только меняют набор,
// игровую логику они не вызывают.
type Held struct {
	keys map[string]struct{}
}

func NewHeld() *Held {
	return &Held{keys: make(map[string]struct{})}
}

// KeyDown добавляет клавишу. Повтор ничего не меняет.
func (h *Held) KeyDown(key string) {
	h.keys[key] = struct{}{}
}

// KeyUp убирает клавишу. Отпускание неудерживаемой клавиши ничего не меняет.
func (h *Held) KeyUp(key string) {
	delete(h.keys, key)
}

func (h *Held) IsHeld(key string) bool {
	_, ok := h.keys[key]
	return ok
}

// Keys возвращает отсортированный снимок набора.
func (h *Held) Keys() []string {
	return slices.Sorted(maps.Keys(h.keys))
}

// Clear отпускает все клавиши.
func (h *Held) Clear() {
	clear(h.keys)
}
