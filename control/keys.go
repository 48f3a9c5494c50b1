package control

// Binding maps a key, by its W3C key name, to a command. Repeat bindings fire
// again while the key is held.
type Binding struct {
	Key     string
	Command Command
	Repeat  bool
}

// DefaultBindings returns the keyboard layout: Space resets the clock, the up
// and down arrows nudge the tempo, F toggles the feedback trail and Escape quits.
func DefaultBindings(nudge float64) []Binding {
	return []Binding{
		{Key: "Space", Command: Command{Type: CommandReset}},
		{Key: "ArrowUp", Command: Command{Type: CommandAdjustTempo, Value: nudge}, Repeat: true},
		{Key: "ArrowDown", Command: Command{Type: CommandAdjustTempo, Value: -nudge}, Repeat: true},
		{Key: "KeyF", Command: Command{Type: CommandToggleFeedback}},
		{Key: "Escape", Command: Command{Type: CommandQuit}},
	}
}
