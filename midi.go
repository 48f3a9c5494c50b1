package main

import (
	"fmt"

	"github.com/robmorgan/pulse/config"
	"github.com/robmorgan/pulse/control"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

const controllerQueueSize = 64

// openController starts a MIDI listener on the configured input ports. The
// returned func closes the listener and the driver.
func openController(cfg config.Config) (*control.Listener, func(), error) {
	mapping, err := control.NewMapping(cfg.Controller, cfg.Tempo)
	if err != nil {
		return nil, nil, err
	}

	drv, err := rtmididrv.New()
	if err != nil {
		return nil, nil, fmt.Errorf("rtmididrv: %w", err)
	}

	ins, err := drv.Ins()
	if err != nil {
		drv.Close()
		return nil, nil, fmt.Errorf("listing MIDI inputs: %w", err)
	}

	listener := control.NewListener(mapping, controllerQueueSize)
	if n := listener.Open(ins, cfg.Controller.PortPatterns, cfg.Controller.ExcludedPorts); n == 0 {
		cfg.Logger.Warn("No MIDI input matched, tempo is keyboard controlled only")
	}

	return listener, func() {
		listener.Close()
		drv.Close()
	}, nil
}
