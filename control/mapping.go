package control

import (
	"fmt"

	"github.com/robmorgan/pulse/config"
	"github.com/robmorgan/pulse/scale"
	"gitlab.com/gomidi/midi/v2"
)

const maxControllerValue = 127

// Mapping translates control changes from a single slider or knob into tempo
// commands. In offset mode bpm = Base + value/Divisor; in range mode the full
// travel of the control sweeps the metronome's tempo range. Either way the
// command is dropped unless the tempo exceeds MinTempo.
type Mapping struct {
	cfg     config.ControllerConfig
	toTempo func(float64) float64
}

func NewMapping(cfg config.ControllerConfig, tempo config.TempoConfig) (*Mapping, error) {
	m := &Mapping{cfg: cfg}
	switch cfg.Mode {
	case "", config.ControllerModeOffset:
		m.toTempo = func(v float64) float64 { return cfg.Base + v/cfg.Divisor }
	case config.ControllerModeRange:
		m.toTempo = scale.Clamp(0, maxControllerValue, tempo.Min, tempo.Max)
	default:
		return nil, fmt.Errorf("unknown controller mode %q", cfg.Mode)
	}
	return m, nil
}

// Tempo returns the BPM a controller value maps to.
func (m *Mapping) Tempo(value uint8) float64 {
	return m.toTempo(float64(value))
}

// Translate returns the command for msg, if msg is a control change from the
// mapped channel and controller whose tempo clears the threshold.
func (m *Mapping) Translate(msg midi.Message) (Command, bool) {
	var ch, cc, val uint8
	if !msg.GetControlChange(&ch, &cc, &val) {
		return Command{}, false
	}
	if ch != m.cfg.Channel || cc != m.cfg.Controller {
		return Command{}, false
	}

	bpm := m.Tempo(val)
	if bpm <= m.cfg.MinTempo {
		return Command{}, false
	}
	return Command{Type: CommandSetTempo, Value: bpm}, true
}
