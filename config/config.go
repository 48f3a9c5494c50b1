package config

import (
	"fmt"
	"os"
	"time"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/pulse/logger"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config represents options that configure the global behavior of the program
type Config struct {
	// Project logger
	Logger *logrus.Logger `yaml:"-"`

	// LogLevel is applied to the project logger at startup.
	LogLevel string `yaml:"log_level"`

	// Scene selects the effect lineup, see the scene package.
	Scene string `yaml:"scene"`

	Window     WindowConfig     `yaml:"window"`
	Tempo      TempoConfig      `yaml:"tempo"`
	Feedback   FeedbackConfig   `yaml:"feedback"`
	Controller ControllerConfig `yaml:"controller"`
}

// WindowConfig describes the visible surface.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// TempoConfig configures the metronome.
type TempoConfig struct {
	// Initial tempo in BPM.
	Initial float64 `yaml:"initial"`

	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`

	// Nudge is the BPM delta applied by the up/down keys.
	Nudge float64 `yaml:"nudge"`

	BeatsPerBar int `yaml:"beats_per_bar"`

	// PollInterval is how often the background updater recomputes the phase.
	PollInterval time.Duration `yaml:"poll_interval"`
}

// FeedbackConfig configures the zoom feedback compositor.
type FeedbackConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Opacity    float64 `yaml:"opacity"`
	ZoomFactor float64 `yaml:"zoom_factor"`
}

// Controller mapping modes.
const (
	ControllerModeOffset = "offset"
	ControllerModeRange  = "range"
)

// ControllerConfig maps a MIDI control change onto the tempo. The mapped tempo is
// Base + value/Divisor in offset mode, or the control's travel spread over the
// tempo range in range mode. It is only applied when it exceeds MinTempo.
type ControllerConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"`

	// PortPatterns restricts which input ports are opened. Empty opens every port.
	PortPatterns []string `yaml:"port_patterns"`

	// ExcludedPorts are never opened, even when they match PortPatterns.
	ExcludedPorts []string `yaml:"excluded_ports"`

	Channel    uint8   `yaml:"channel"`
	Controller uint8   `yaml:"controller"`
	Base       float64 `yaml:"base"`
	Divisor    float64 `yaml:"divisor"`
	MinTempo   float64 `yaml:"min_tempo"`
}

// NewConfig creates a Config object with reasonable defaults for real usage.
func NewConfig() Config {
	return Config{
		Logger:   logger.GetProjectLogger(),
		LogLevel: "info",
		Scene:    "default",
		Window: WindowConfig{
			Title:  "pulse",
			Width:  800,
			Height: 600,
		},
		Tempo: TempoConfig{
			Initial:      120,
			Min:          30,
			Max:          200,
			Nudge:        1,
			BeatsPerBar:  4,
			PollInterval: 10 * time.Millisecond,
		},
		Feedback: FeedbackConfig{
			Enabled:    true,
			Opacity:    0.9,
			ZoomFactor: 0.02,
		},
		Controller: ControllerConfig{
			Enabled:       true,
			Mode:          ControllerModeOffset,
			ExcludedPorts: []string{"Midi Through", "Through Port"},
			Channel:       0,
			Controller:    0,
			Base:          110,
			Divisor:       5,
			MinTempo:      100,
		},
	}
}

// Load reads a YAML file and overlays it on the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := NewConfig()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.WithStackTrace(err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.Logger.WithFields(logrus.Fields{"path": path}).Debug("Loaded config file")
	return cfg, cfg.Validate()
}

// Validate checks the config for values the render loop cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Tempo.Min <= 0 || c.Tempo.Min > c.Tempo.Max:
		return fmt.Errorf("tempo range is invalid: min=%v max=%v", c.Tempo.Min, c.Tempo.Max)
	case c.Tempo.Initial < c.Tempo.Min || c.Tempo.Initial > c.Tempo.Max:
		return fmt.Errorf("tempo.initial (%v) is outside [%v,%v]", c.Tempo.Initial, c.Tempo.Min, c.Tempo.Max)
	case c.Tempo.BeatsPerBar <= 0:
		return fmt.Errorf("tempo.beats_per_bar must be positive, got %d", c.Tempo.BeatsPerBar)
	case c.Tempo.PollInterval <= 0:
		return fmt.Errorf("tempo.poll_interval must be positive, got %v", c.Tempo.PollInterval)
	case c.Feedback.Opacity < 0 || c.Feedback.Opacity > 1:
		return fmt.Errorf("feedback.opacity must be within [0,1], got %v", c.Feedback.Opacity)
	case c.Feedback.ZoomFactor < 0:
		return fmt.Errorf("feedback.zoom_factor must not be negative, got %v", c.Feedback.ZoomFactor)
	case c.Controller.Mode != ControllerModeOffset && c.Controller.Mode != ControllerModeRange:
		return fmt.Errorf("controller.mode must be %q or %q, got %q", ControllerModeOffset, ControllerModeRange, c.Controller.Mode)
	case c.Controller.Divisor == 0:
		return fmt.Errorf("controller.divisor must not be zero")
	case c.Controller.Channel > 15:
		return fmt.Errorf("controller.channel must be within [0,15], got %d", c.Controller.Channel)
	case c.Controller.Controller > 127:
		return fmt.Errorf("controller.controller must be within [0,127], got %d", c.Controller.Controller)
	}
	return nil
}
