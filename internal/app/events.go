// internal/app/events.go
package app

import (
	"go.uber.org/zap"

	"space-fighter/internal/event"
	"space-fighter/internal/types"
)

// MatchEventListener пишет события матча в лог.
type MatchEventListener struct {
	match *Match
}

func (l *MatchEventListener) OnEvent(e event.Event) {
	logger := l.match.logger.With(
		zap.String("match_id", l.match.ECS.Match.MatchID),
		zap.Uint64("frame", l.match.frame),
	)

	switch e.Type {
	case event.ShotFired:
		if shot, ok := e.Data.(event.Shot); ok {
			logger.Debug("shot fired", zap.Stringer("ship", shot.Owner), zap.Uint64("blast", uint64(shot.Blast)))
		}
	case event.BlastExpired:
		if shot, ok := e.Data.(event.Shot); ok {
			logger.Debug("blast expired", zap.Stringer("ship", shot.Owner), zap.Uint64("blast", uint64(shot.Blast)))
		}
	case event.ShipDestroyed:
		if ship, ok := e.Data.(types.ShipID); ok {
			logger.Info("ship destroyed", zap.Stringer("ship", ship))
		}
	case event.MatchOver:
		if loser, ok := e.Data.(types.ShipID); ok {
			logger.Info("match over", zap.Stringer("loser", loser))
		}
	case event.MatchReset:
		logger.Info("match started")
	}
}
