package main

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// keyName переводит клавишу терминала в имя ebiten.Key.String(), чтобы
// раскладка из settings.yaml работала в обоих хостах. Пустая строка — клавиша не нужна.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyLeft:
		return "ArrowLeft"
	case tcell.KeyRight:
		return "ArrowRight"
	case tcell.KeyUp:
		return "ArrowUp"
	case tcell.KeyDown:
		return "ArrowDown"
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyTab:
		return "Tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "Backspace"
	case tcell.KeyRune:
		return runeName(ev.Rune())
	}
	return ""
}

func runeName(r rune) string {
	switch {
	case r == ' ':
		return "Space"
	case r >= '0' && r <= '9':
		return "Digit" + string(r)
	case r < unicode.MaxASCII && unicode.IsLetter(r):
		return string(unicode.ToUpper(r))
	}
	return ""
}

// isQuit — Esc или Ctrl-C
func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}
