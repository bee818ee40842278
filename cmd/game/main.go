// cmd/game/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	game "space-fighter/internal/app"
	"space-fighter/internal/config"
	"space-fighter/internal/logging"
	"space-fighter/internal/sound"
	"space-fighter/internal/state"
	"space-fighter/internal/utils"
	"space-fighter/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	width, height  int
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout фиксирует логический размер арены; при изменении окна ebiten
// масштабирует картинку с сохранением пропорций.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	settings, err := config.LoadSettings(config.SettingsFile)
	if err != nil {
		// логгер ещё не настроен
		bootstrap, _ := zap.NewDevelopment()
		bootstrap.Fatal("failed to load settings", zap.Error(err))
	}

	logger, err := logging.New(settings.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	match, err := game.NewMatch(settings, logger, utils.NewPRNGService(0))
	if err != nil {
		logger.Fatal("failed to start match", zap.Error(err))
	}

	player := sound.NewPlayer(settings.Sound, logger)
	defer player.Close()
	match.EventDispatcher.Subscribe(player, sound.Events()...)

	sm := state.NewStateMachine()
	sm.SetState(state.NewArenaState(sm, &state.Screen{
		Match:    match,
		Renderer: render.NewArenaRenderer(settings.Arena.Width, settings.Arena.Height),
		Keys:     state.NewKeyFeed(),
		ResetKey: settings.Keys.Reset,
	}))

	app := &AppGame{
		stateMachine:   sm,
		width:          int(settings.Arena.Width),
		height:         int(settings.Arena.Height),
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(app.width, app.height)
	ebiten.SetWindowTitle(settings.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("window opened",
		zap.Int("width", app.width),
		zap.Int("height", app.height),
	)
	if err := ebiten.RunGame(app); err != nil {
		logger.Fatal("game loop stopped", zap.Error(err))
	}
}
