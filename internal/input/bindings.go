package input

import (
	"space-fighter/internal/config"
	"space-fighter/internal/types"
)

// Command — действие конкретного корабля
type Command struct {
	Ship   types.ShipID
	Action types.Action
}

// Bindings сопоставляет клавиши командам кораблей и хранит клавишу рестарта.
type Bindings struct {
	commands map[string]Command
	reset    string
}

func NewBindings(keys config.KeySettings) *Bindings {
	b := &Bindings{
		commands: make(map[string]Command),
		reset:    keys.Reset,
	}
	b.bindPlayer(types.Player1, keys.Player1)
	b.bindPlayer(types.Player2, keys.Player2)
	return b
}

func (b *Bindings) bindPlayer(ship types.ShipID, keys config.PlayerKeys) {
	b.commands[keys.RotateLeft] = Command{Ship: ship, Action: types.RotateLeft}
	b.commands[keys.RotateRight] = Command{Ship: ship, Action: types.RotateRight}
	b.commands[keys.Thrust] = Command{Ship: ship, Action: types.Thrust}
	b.commands[keys.Fire] = Command{Ship: ship, Action: types.Fire}
}

// Lookup возвращает команду для клавиши. Неназначенные клавиши дают ok == false.
func (b *Bindings) Lookup(key string) (Command, bool) {
	cmd, ok := b.commands[key]
	return cmd, ok
}

func (b *Bindings) IsReset(key string) bool {
	return key == b.reset
}
