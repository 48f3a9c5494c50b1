package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	require.NoError(t, cfg.Validate())
	require.NotNil(t, cfg.Logger)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, 120.0, cfg.Tempo.Initial)
	assert.Equal(t, 10*time.Millisecond, cfg.Tempo.PollInterval)
	assert.Equal(t, 0.9, cfg.Feedback.Opacity)
	assert.Equal(t, 0.02, cfg.Feedback.ZoomFactor)
	assert.Equal(t, 110.0, cfg.Controller.Base)
	assert.Equal(t, 5.0, cfg.Controller.Divisor)
	assert.Equal(t, 100.0, cfg.Controller.MinTempo)
	assert.Equal(t, ControllerModeOffset, cfg.Controller.Mode)
	assert.Equal(t, "default", cfg.Scene)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pulse.yaml")
	data := []byte(`
log_level: debug
tempo:
  initial: 128
  poll_interval: 5ms
feedback:
  opacity: 0.75
scene: classic
controller:
  mode: range
  port_patterns: ["nanoKONTROL2"]
  controller: 16
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 128.0, cfg.Tempo.Initial)
	assert.Equal(t, 5*time.Millisecond, cfg.Tempo.PollInterval)
	assert.Equal(t, 0.75, cfg.Feedback.Opacity)
	assert.Equal(t, []string{"nanoKONTROL2"}, cfg.Controller.PortPatterns)
	assert.Equal(t, uint8(16), cfg.Controller.Controller)
	assert.Equal(t, ControllerModeRange, cfg.Controller.Mode)
	assert.Equal(t, "classic", cfg.Scene)

	// untouched keys keep their defaults
	assert.Equal(t, 0.02, cfg.Feedback.ZoomFactor)
	assert.Equal(t, 200.0, cfg.Tempo.Max)
	assert.Equal(t, 800, cfg.Window.Width)
}

func TestLoadEmptyPath(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, NewConfig().Tempo, cfg.Tempo)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pulse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("feedback:\n  opacity: 1.5\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feedback.opacity")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"inverted tempo range", func(c *Config) { c.Tempo.Min, c.Tempo.Max = 200, 30 }},
		{"initial tempo out of range", func(c *Config) { c.Tempo.Initial = 300 }},
		{"zero beats per bar", func(c *Config) { c.Tempo.BeatsPerBar = 0 }},
		{"zero poll interval", func(c *Config) { c.Tempo.PollInterval = 0 }},
		{"negative opacity", func(c *Config) { c.Feedback.Opacity = -0.1 }},
		{"negative zoom", func(c *Config) { c.Feedback.ZoomFactor = -0.02 }},
		{"zero divisor", func(c *Config) { c.Controller.Divisor = 0 }},
		{"channel out of range", func(c *Config) { c.Controller.Channel = 16 }},
		{"controller out of range", func(c *Config) { c.Controller.Controller = 128 }},
		{"unknown controller mode", func(c *Config) { c.Controller.Mode = "log" }},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			testCase.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
