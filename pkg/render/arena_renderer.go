package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"space-fighter/internal/component"
	"space-fighter/internal/config"
	"space-fighter/internal/entity"
	"space-fighter/internal/types"
	"space-fighter/internal/ui"
	"space-fighter/internal/utils"
)

// ArenaRenderer рисует арену. Ось Y арены направлена вверх, экрана — вниз.
type ArenaRenderer struct {
	width, height float64
	fontFace      font.Face
	indicators    map[types.ShipID]*ui.ReloadIndicator
}

func NewArenaRenderer(width, height float64) *ArenaRenderer {
	return &ArenaRenderer{
		width:    width,
		height:   height,
		fontFace: basicfont.Face7x13,
		indicators: map[types.ShipID]*ui.ReloadIndicator{
			types.Player1: ui.NewReloadIndicator(16, 36, 5),
			types.Player2: ui.NewReloadIndicator(float32(width)-16, 36, 5),
		},
	}
}

// Update продвигает анимацию индикаторов перезарядки.
func (r *ArenaRenderer) Update(ecs *entity.ECS, deltaTime float64) {
	for shipID, indicator := range r.indicators {
		canFire := false
		if id, alive := ecs.ShipEntity(shipID); alive {
			canFire = ecs.Ships[id].CanFire
		}
		indicator.Update(canFire, deltaTime)
	}
}

func (r *ArenaRenderer) toScreen(x, y float64) (float32, float32) {
	return float32(x), float32(r.height - y)
}

func (r *ArenaRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	screen.Fill(config.BackgroundColor)

	for id, ship := range ecs.Ships {
		pos, heading := ecs.Positions[id], ecs.Headings[id]
		if pos == nil || heading == nil {
			continue
		}
		r.drawShip(screen, pos, heading.Angle, ecs.Renderables[id], ship)
	}

	for id := range ecs.Blasts {
		pos, renderable := ecs.Positions[id], ecs.Renderables[id]
		if pos == nil || renderable == nil || renderable.Alpha <= 0 {
			continue
		}
		x, y := r.toScreen(pos.X, pos.Y)
		vector.DrawFilledCircle(screen, x, y, renderable.Radius, WithAlpha(renderable.Color, renderable.Alpha), true)
	}

	for id, explosion := range ecs.Explosions {
		pos, renderable := ecs.Positions[id], ecs.Renderables[id]
		if pos == nil || renderable == nil {
			continue
		}
		r.drawExplosion(screen, pos, explosion, renderable)
	}

	r.drawHUD(screen, ecs)
}

func (r *ArenaRenderer) drawShip(screen *ebiten.Image, pos *component.Position, angle float64, renderable *component.Renderable, ship *component.Ship) {
	shipColor := config.ShipColors[ship.ID]
	radius := float64(config.ShipRadius)
	if renderable != nil {
		shipColor = WithAlpha(renderable.Color, renderable.Alpha)
		radius = float64(renderable.Radius)
	}

	points := utils.Triangle(pos.X, pos.Y, angle, radius)
	for i := range points {
		next := points[(i+1)%len(points)]
		x0, y0 := r.toScreen(points[i][0], points[i][1])
		x1, y1 := r.toScreen(next[0], next[1])
		vector.StrokeLine(screen, x0, y0, x1, y1, config.ShipStroke, shipColor, true)
	}

	// пока корабль перезаряжается, нос притушен
	noseColor := shipColor
	if !ship.CanFire {
		noseColor = DarkenColor(shipColor)
	}
	nx, ny := r.toScreen(points[0][0], points[0][1])
	vector.DrawFilledCircle(screen, nx, ny, 3, noseColor, true)
}

func (r *ArenaRenderer) drawExplosion(screen *ebiten.Image, pos *component.Position, explosion *component.Explosion, renderable *component.Renderable) {
	c := WithAlpha(renderable.Color, renderable.Alpha)
	x, y := r.toScreen(pos.X, pos.Y)
	vector.StrokeCircle(screen, x, y, renderable.Radius, 2, c, true)

	for _, angle := range explosion.Debris {
		inner := float64(renderable.Radius) * 0.5
		outer := float64(renderable.Radius) * 1.2
		ax, ay := utils.Ahead(pos.X, pos.Y, angle, inner)
		bx, by := utils.Ahead(pos.X, pos.Y, angle, outer)
		x0, y0 := r.toScreen(ax, ay)
		x1, y1 := r.toScreen(bx, by)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1.5, c, true)
	}
}

func (r *ArenaRenderer) drawHUD(screen *ebiten.Image, ecs *entity.ECS) {
	for _, shipID := range types.Ships {
		label := shipID.String()
		if id, alive := ecs.ShipEntity(shipID); !alive {
			label += " destroyed"
		} else if !ecs.Ships[id].CanFire {
			label += " reloading"
		}
		x := 10
		if shipID == types.Player2 {
			x = int(r.width) - 10 - len(label)*7
		}
		text.Draw(screen, label, r.fontFace, x, 20, config.ShipColors[shipID])

		indicator := r.indicators[shipID]
		indicatorColor := config.ShipColors[shipID]
		if !indicator.Ready {
			indicatorColor = DarkenColor(indicatorColor)
		}
		vector.DrawFilledCircle(screen, indicator.X, indicator.Y, indicator.CurrentRadius(), indicatorColor, true)
	}
}

// DrawBanner выводит строки по центру экрана.
func (r *ArenaRenderer) DrawBanner(screen *ebiten.Image, lines ...string) {
	const lineHeight = 18
	top := int(r.height)/2 - len(lines)*lineHeight/2
	for i, line := range lines {
		bounds := text.BoundString(r.fontFace, line)
		x := (int(r.width) - bounds.Dx()) / 2
		text.Draw(screen, line, r.fontFace, x, top+i*lineHeight, color.Color(config.TextColor))
	}
}
