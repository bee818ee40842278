// Package sound озвучивает события матча короткими тонами.
package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"space-fighter/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// Tone — синусоида частоты Freq длительностью Duration
type Tone struct {
	Freq     float64
	Duration time.Duration
}

var tones = map[event.EventType]Tone{
	event.ShotFired:     {Freq: 880, Duration: 40 * time.Millisecond},
	event.ShipDestroyed: {Freq: 110, Duration: 350 * time.Millisecond},
	event.MatchReset:    {Freq: 440, Duration: 80 * time.Millisecond},
}

// ToneFor возвращает тон события. Остальные события беззвучны.
func ToneFor(eventType event.EventType) (Tone, bool) {
	tone, ok := tones[eventType]
	return tone, ok
}

// Events перечисляет события, на которые стоит подписать Player.
func Events() []event.EventType {
	return []event.EventType{event.ShotFired, event.ShipDestroyed, event.MatchReset}
}

// Player проигрывает тоны через системный аудиовыход.
type Player struct {
	enabled bool
	logger  *zap.Logger
}

// NewPlayer открывает аудиовыход. Без звука игра работает: ошибка только пишется в лог.
func NewPlayer(enabled bool, logger *zap.Logger) *Player {
	p := &Player{logger: logger}
	if !enabled {
		return p
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		logger.Warn("audio initialization failed", zap.Error(err))
		return p
	}
	p.enabled = true
	return p
}

func (p *Player) OnEvent(e event.Event) {
	if !p.enabled {
		return
	}
	tone, ok := ToneFor(e.Type)
	if !ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, tone.Freq)
	if err != nil {
		p.logger.Debug("tone rejected", zap.Float64("freq", tone.Freq), zap.Error(err))
		return
	}
	speaker.Play(beep.Take(sampleRate.N(tone.Duration), sine))
}

func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}
