package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadSettings_MissingFileGivesDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoadSettings_OverridesOnlyGivenFields(t *testing.T) {
	path := writeSettings(t, `
window_title: Duel
keys:
  player2:
    fire: ShiftRight
log:
  level: debug
`)
	settings, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "Duel", settings.WindowTitle)
	assert.Equal(t, "ShiftRight", settings.Keys.Player2.Fire)
	assert.Equal(t, "ArrowUp", settings.Keys.Player2.Thrust)
	assert.Equal(t, "Space", settings.Keys.Player1.Fire)
	assert.Equal(t, "debug", settings.Log.Level)
	assert.Equal(t, float64(ScreenWidth), settings.Arena.Width)
}

func TestLoadSettings_RejectsDuplicateKey(t *testing.T) {
	path := writeSettings(t, `
keys:
  player2:
    fire: Space
`)
	_, err := LoadSettings(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player1.fire")
}

func TestLoadSettings_RejectsBadArena(t *testing.T) {
	path := writeSettings(t, `
arena:
  width: 0
`)
	_, err := LoadSettings(path)
	require.Error(t, err)
}

func TestLoadSettings_RejectsMalformedYAML(t *testing.T) {
	path := writeSettings(t, "keys: [unterminated")
	_, err := LoadSettings(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal settings")
}

func TestValidate_UnboundKey(t *testing.T) {
	settings := DefaultSettings()
	settings.Keys.Reset = ""
	assert.EqualError(t, settings.Validate(), "key reset is not bound")
}
