// cmd/tui/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	game "space-fighter/internal/app"
	"space-fighter/internal/config"
	"space-fighter/internal/input"
	"space-fighter/internal/logging"
	"space-fighter/internal/sound"
	"space-fighter/internal/utils"
)

const (
	logFile   = "space-fighter.log"
	frameTime = 16 * time.Millisecond
	// Терминал не сообщает об отпускании клавиш. Удержание тяги и огня
	// перекрывает задержку автоповтора, иначе зажатая клавиша «мигает».
	keyHold = 300 * time.Millisecond
	// Поворот идёт каждый кадр удержания, поэтому нажатие держится один кадр:
	// касание поворачивает на π/20, а зажатая клавиша крутит корабль с частотой
	// автоповтора терминала, медленнее, чем в окне.
	rotateHold = frameTime
)

type tuiGame struct {
	screen tcell.Screen
	match  *game.Match
	view   *view
	latch  *input.Latch
	logger *zap.Logger
}

func (g *tuiGame) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		if key := keyName(ev); key != "" {
			g.latch.Press(key, now)
		}
	case *tcell.EventResize:
		g.view.resize()
		g.screen.Sync()
	}
	return true
}

func (g *tuiGame) run() {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// экран закрыт
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleEvent(ev, time.Now()) {
				return
			}

		case now := <-ticker.C:
			deltaTime := now.Sub(last).Seconds()
			if deltaTime > config.MaxDeltaTime {
				deltaTime = config.MaxDeltaTime
			}
			last = now

			g.latch.Expire(now)
			g.match.Update(deltaTime)
			g.view.draw(g.match)
		}
	}
}

func newLatch(match *game.Match, keys config.KeySettings) *input.Latch {
	latch := input.NewLatch(match, keyHold)
	for _, player := range []config.PlayerKeys{keys.Player1, keys.Player2} {
		latch.SetHold(player.RotateLeft, rotateHold)
		latch.SetHold(player.RotateRight, rotateHold)
	}
	return latch
}

func main() {
	settings, err := config.LoadSettings(config.SettingsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}

	// stdout занят экраном, поэтому лог пишется в файл
	logger, err := logging.NewFileLogger(settings.Log, logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	match, err := game.NewMatch(settings, logger, utils.NewPRNGService(time.Now().UnixNano()))
	if err != nil {
		logger.Error("failed to start match", zap.Error(err))
		fmt.Fprintf(os.Stderr, "failed to start match: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	player := sound.NewPlayer(settings.Sound, logger)
	defer player.Close()
	match.EventDispatcher.Subscribe(player, sound.Events()...)

	g := &tuiGame{
		screen: screen,
		match:  match,
		view:   newView(screen, settings.Keys.Reset),
		latch:  newLatch(match, settings.Keys),
		logger: logger,
	}
	logger.Info("terminal opened", zap.Int("cols", g.view.width), zap.Int("rows", g.view.height))
	g.run()
	logger.Info("terminal closed", zap.Uint64("frames", match.Frame()))
}
