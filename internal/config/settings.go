// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// SettingsFile — путь к файлу настроек по умолчанию
const SettingsFile = "settings.yaml"

// Settings — настройки хоста: окно, размер арены, раскладка клавиш, логирование.
// Правила игры сюда не входят, они зафиксированы константами выше.
type Settings struct {
	WindowTitle string        `yaml:"window_title"`
	Arena       ArenaSettings `yaml:"arena"`
	Keys        KeySettings   `yaml:"keys"`
	Log         LogSettings   `yaml:"log"`
	Sound       bool          `yaml:"sound"`
}

type ArenaSettings struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerKeys — имена клавиш в нотации ebiten.Key.String()
type PlayerKeys struct {
	RotateLeft  string `yaml:"rotate_left"`
	RotateRight string `yaml:"rotate_right"`
	Thrust      string `yaml:"thrust"`
	Fire        string `yaml:"fire"`
}

type KeySettings struct {
	Player1 PlayerKeys `yaml:"player1"`
	Player2 PlayerKeys `yaml:"player2"`
	Reset   string     `yaml:"reset"`
}

type LogSettings struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"` // json или console
	Development bool   `yaml:"development"`
}

// DefaultSettings возвращает настройки, с которыми игра запускается без файла.
func DefaultSettings() Settings {
	return Settings{
		WindowTitle: "Space Fighter",
		Arena: ArenaSettings{
			Width:  ScreenWidth,
			Height: ScreenHeight,
		},
		Keys: KeySettings{
			Player1: PlayerKeys{RotateLeft: "A", RotateRight: "D", Thrust: "W", Fire: "Space"},
			Player2: PlayerKeys{RotateLeft: "ArrowLeft", RotateRight: "ArrowRight", Thrust: "ArrowUp", Fire: "Enter"},
			Reset:   "R",
		},
		Log: LogSettings{
			Level:       "info",
			Format:      "console",
			Development: true,
		},
		Sound: true,
	}
}

// LoadSettings читает YAML поверх настроек по умолчанию.
// Отсутствующий файл не ошибка: возвращаются значения по умолчанию.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return settings, nil
}

// Validate проверяет размер арены и раскладку: каждая клавиша задана и не повторяется.
func (s Settings) Validate() error {
	if s.Arena.Width <= 0 || s.Arena.Height <= 0 {
		return fmt.Errorf("arena must be positive, got %vx%v", s.Arena.Width, s.Arena.Height)
	}

	seen := make(map[string]string)
	check := func(name, key string) error {
		if key == "" {
			return fmt.Errorf("key %s is not bound", name)
		}
		if other, dup := seen[key]; dup {
			return fmt.Errorf("key %q bound to both %s and %s", key, other, name)
		}
		seen[key] = name
		return nil
	}

	for _, binding := range []struct {
		name string
		key  string
	}{
		{"player1.rotate_left", s.Keys.Player1.RotateLeft},
		{"player1.rotate_right", s.Keys.Player1.RotateRight},
		{"player1.thrust", s.Keys.Player1.Thrust},
		{"player1.fire", s.Keys.Player1.Fire},
		{"player2.rotate_left", s.Keys.Player2.RotateLeft},
		{"player2.rotate_right", s.Keys.Player2.RotateRight},
		{"player2.thrust", s.Keys.Player2.Thrust},
		{"player2.fire", s.Keys.Player2.Fire},
		{"reset", s.Keys.Reset},
	} {
		if err := check(binding.name, binding.key); err != nil {
			return err
		}
	}
	return nil
}
