// component/game_state.go
package component

import "space-fighter/internal/types"

// MatchPhase — фаза матча
type MatchPhase int

const (
	Playing MatchPhase = iota
	GameOver
)

func (p MatchPhase) String() string {
	if p == GameOver {
		return "game_over"
	}
	return "playing"
}

// MatchState — состояние матча. Loser задан только в GameOver.
type MatchState struct {
	Phase   MatchPhase
	Loser   types.ShipID
	MatchID string
}
