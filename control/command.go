// Package control turns keyboard and MIDI input into commands for the metronome
// and the frame driver.
package control

import "fmt"

// CommandType identifies what a Command does.
type CommandType int

const (
	CommandReset CommandType = iota
	CommandSetTempo
	CommandAdjustTempo
	CommandToggleFeedback
	CommandQuit
)

func (t CommandType) String() string {
	switch t {
	case CommandReset:
		return "reset"
	case CommandSetTempo:
		return "set_tempo"
	case CommandAdjustTempo:
		return "adjust_tempo"
	case CommandToggleFeedback:
		return "toggle_feedback"
	case CommandQuit:
		return "quit"
	default:
		return fmt.Sprintf("command(%d)", int(t))
	}
}

// Command is a single control input. Value carries the BPM for CommandSetTempo
// and the delta for CommandAdjustTempo.
type Command struct {
	Type  CommandType
	Value float64
}

// Tempo is the part of the metronome commands can drive.
type Tempo interface {
	Reset()
	SetTempo(bpm float64)
	AdjustTempo(delta float64)
}

// Apply executes a tempo command against t. It returns false for commands that
// are not tempo commands, leaving them to the caller.
func Apply(cmd Command, t Tempo) bool {
	switch cmd.Type {
	case CommandReset:
		t.Reset()
	case CommandSetTempo:
		t.SetTempo(cmd.Value)
	case CommandAdjustTempo:
		t.AdjustTempo(cmd.Value)
	default:
		return false
	}
	return true
}
