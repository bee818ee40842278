package main

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	game "space-fighter/internal/app"
	"space-fighter/internal/component"
	"space-fighter/internal/config"
	"space-fighter/internal/types"
	"space-fighter/internal/utils"
)

// hudRows — строка статуса внизу экрана
const hudRows = 1

// view рисует арену в сетке ячеек терминала.
type view struct {
	screen        tcell.Screen
	width, height int
	resetKey      string
}

func newView(screen tcell.Screen, resetKey string) *view {
	v := &view{screen: screen, resetKey: resetKey}
	v.resize()
	return v
}

func (v *view) resize() {
	v.width, v.height = v.screen.Size()
}

// toCell переводит координаты арены (ось Y вверх) в ячейку. ok=false — за пределами поля.
func (v *view) toCell(match *game.Match, x, y float64) (int, int, bool) {
	rows := v.height - hudRows
	if v.width <= 0 || rows <= 0 {
		return 0, 0, false
	}
	cx := int(math.Floor(x / match.Width * float64(v.width)))
	cy := int(math.Floor((match.Height - y) / match.Height * float64(rows)))
	if cx < 0 || cx >= v.width || cy < 0 || cy >= rows {
		return 0, 0, false
	}
	return cx, cy, true
}

func (v *view) draw(match *game.Match) {
	v.screen.Clear()
	ecs := match.ECS

	for id, explosion := range ecs.Explosions {
		pos := ecs.Positions[id]
		if pos == nil {
			continue
		}
		style := styleFor(config.ExplosionColor)
		for _, angle := range explosion.Debris {
			progress := explosion.CurrentTimer / explosion.Duration
			x, y := utils.Ahead(pos.X, pos.Y, angle, explosion.MaxRadius*progress)
			v.set(match, x, y, '*', style)
		}
	}

	for id := range ecs.Blasts {
		pos, renderable := ecs.Positions[id], ecs.Renderables[id]
		if pos == nil || renderable == nil || renderable.Alpha <= 0 {
			continue
		}
		glyph := '●'
		if renderable.Alpha < 0.5 {
			glyph = '·'
		}
		v.set(match, pos.X, pos.Y, glyph, styleFor(renderable.Color))
	}

	for id, ship := range ecs.Ships {
		pos, heading := ecs.Positions[id], ecs.Headings[id]
		if pos == nil || heading == nil {
			continue
		}
		style := styleFor(config.ShipColors[ship.ID])
		v.set(match, pos.X, pos.Y, shipGlyph(heading.Angle), style.Bold(true))
		if ship.CanFire {
			nx, ny := utils.Ahead(pos.X, pos.Y, heading.Angle, config.ShipRadius*1.5)
			v.set(match, nx, ny, '.', style)
		}
	}

	v.drawHUD(match)
	v.screen.Show()
}

func (v *view) set(match *game.Match, x, y float64, glyph rune, style tcell.Style) {
	if cx, cy, ok := v.toCell(match, x, y); ok {
		v.screen.SetContent(cx, cy, glyph, nil, style)
	}
}

func (v *view) drawHUD(match *game.Match) {
	line := "Esc to quit"
	if match.Phase() == component.GameOver {
		line = "GAME OVER: " + match.Winner().String() + " wins, press " + v.resetKey + " to restart"
	} else {
		for _, shipID := range types.Ships {
			status := "ready"
			if id, alive := match.ECS.ShipEntity(shipID); !alive {
				status = "destroyed"
			} else if !match.ECS.Ships[id].CanFire {
				status = "reloading"
			}
			line += "  " + shipID.String() + " " + status
		}
	}
	v.text(0, v.height-1, line, styleFor(config.TextColor))
}

func (v *view) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= v.width {
			return
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// shipGlyph — стрелка, ближайшая к направлению носа.
func shipGlyph(angle float64) rune {
	// против часовой стрелки от "вверх", как растёт угол
	glyphs := [...]rune{'↑', '↖', '←', '↙', '↓', '↘', '→', '↗'}
	sector := int(math.Round(utils.NormalizeAngle(angle) / (math.Pi / 4)))
	return glyphs[(sector+len(glyphs))%len(glyphs)]
}

func styleFor(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
