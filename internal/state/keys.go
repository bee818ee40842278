// internal/state/keys.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "space-fighter/internal/app"
)

// KeyFeed переводит опрос клавиатуры ebiten в события нажатия и отпускания.
type KeyFeed struct {
	pressed  []ebiten.Key
	released []ebiten.Key
	focused  bool
}

func NewKeyFeed() *KeyFeed {
	return &KeyFeed{focused: true}
}

// Poll передаёт матчу клавиши, нажатые и отпущенные с прошлого тика.
// При потере фокуса все клавиши отпускаются: отпускание вне окна не придёт.
func (f *KeyFeed) Poll(match *game.Match) {
	focused := ebiten.IsFocused()
	if !focused && f.focused {
		match.ReleaseAll()
	}
	f.focused = focused

	f.pressed = inpututil.AppendJustPressedKeys(f.pressed[:0])
	for _, key := range f.pressed {
		match.KeyDown(key.String())
	}
	f.released = inpututil.AppendJustReleasedKeys(f.released[:0])
	for _, key := range f.released {
		match.KeyUp(key.String())
	}
}
