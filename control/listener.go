package control

import (
	"fmt"
	"strings"
	"sync"

	"github.com/robmorgan/pulse/logger"
	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// Listener receives MIDI from one or more input ports and forwards mapped
// commands on a buffered channel. Commands are dropped when the channel is full
// so a flood of controller messages can never block the MIDI driver.
type Listener struct {
	mu      sync.Mutex
	mapping *Mapping
	events  chan Command
	ports   []drivers.In
	stops   []func()
}

func NewListener(mapping *Mapping, buffer int) *Listener {
	return &Listener{
		mapping: mapping,
		events:  make(chan Command, buffer),
	}
}

// Events returns the channel commands are delivered on.
func (l *Listener) Events() <-chan Command {
	return l.events
}

// Open starts listening on every input whose name matches one of patterns and
// none of excluded (both case-insensitive). An empty pattern list matches every
// port. It returns the number of ports open; ports that fail to open are logged
// and skipped.
func (l *Listener) Open(ins []drivers.In, patterns, excluded []string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	log := logger.GetProjectLogger()
	for _, in := range ins {
		name := in.String()
		if !selectPort(name, patterns, excluded) {
			log.WithFields(logrus.Fields{"port": name}).Debug("Skipping MIDI input")
			continue
		}
		if err := l.listen(in); err != nil {
			log.WithFields(logrus.Fields{"port": name}).Warnf("Could not open MIDI input: %v", err)
			continue
		}
		log.WithFields(logrus.Fields{"port": name}).Info("Listening to MIDI input")
	}
	return len(l.ports)
}

func (l *Listener) listen(in drivers.In) error {
	if err := in.Open(); err != nil {
		return fmt.Errorf("open %q: %w", in.String(), err)
	}

	name := in.String()
	stop, err := midi.ListenTo(in, l.handle, midi.HandleError(func(err error) {
		logger.GetProjectLogger().WithFields(logrus.Fields{"port": name}).Warnf("MIDI listener error: %v", err)
	}))
	if err != nil {
		_ = in.Close()
		return fmt.Errorf("listen %q: %w", name, err)
	}

	l.ports = append(l.ports, in)
	l.stops = append(l.stops, stop)
	return nil
}

func (l *Listener) handle(msg midi.Message, _ int32) {
	cmd, ok := l.mapping.Translate(msg)
	if !ok {
		return
	}
	select {
	case l.events <- cmd:
	default:
		logger.GetProjectLogger().WithFields(logrus.Fields{"bpm": cmd.Value}).Debug("Dropped controller command, queue full")
	}
}

// Close stops every listener and closes the ports.
func (l *Listener) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, stop := range l.stops {
		stop()
	}
	for _, in := range l.ports {
		_ = in.Close()
	}
	l.stops = nil
	l.ports = nil
}

func selectPort(name string, patterns, excluded []string) bool {
	if containsAny(name, excluded) {
		return false
	}
	return len(patterns) == 0 || containsAny(name, patterns)
}

func containsAny(name string, patterns []string) bool {
	lower := strings.ToLower(name)
	for _, pat := range patterns {
		if strings.Contains(lower, strings.ToLower(pat)) {
			return true
		}
	}
	return false
}
