package rhythm

import "fmt"

// Snapshot is a point-in-time view of the metronome's timeline.
type Snapshot struct {
	Phase       BeatPhase
	Tempo       float64
	BeatsPerBar int
}

// GetTempo gets the metronome's tempo.
func (s Snapshot) GetTempo() float64 {
	return s.Tempo
}

// GetBeatInterval gets the metronome's beat length in milliseconds.
func (s Snapshot) GetBeatInterval() float64 {
	return beatsToMilliseconds(1, s.Tempo)
}

// GetBarInterval gets the metronome's bar length in milliseconds.
func (s Snapshot) GetBarInterval() float64 {
	return beatsToMilliseconds(s.beatsPerBar(), s.Tempo)
}

// GetBeat gets the metronome's beat number, counting from 1.
func (s Snapshot) GetBeat() int64 {
	return s.Phase.Beat() + 1
}

// GetBar gets the metronome's bar number, counting from 1.
func (s Snapshot) GetBar() int64 {
	return s.Phase.Beat()/int64(s.beatsPerBar()) + 1
}

// GetBeatPhase gets the metronome's beat phase at the time of the snapshot.
func (s Snapshot) GetBeatPhase() float64 {
	return s.Phase.Fraction()
}

// GetBarPhase gets the metronome's bar phase at the time of the snapshot.
func (s Snapshot) GetBarPhase() float64 {
	bpb := s.beatsPerBar()
	within := s.Phase.Beat() % int64(bpb)
	return (float64(within) + s.Phase.Fraction()) / float64(bpb)
}

// GetBeatWithinBar returns the beat number of the snapshot relative to the start of the bar.
func (s Snapshot) GetBeatWithinBar() int {
	return int(s.Phase.Beat()%int64(s.beatsPerBar())) + 1
}

// IsDownBeat checks whether the current beat at the time of the snapshot was the first beat in its bar.
func (s Snapshot) IsDownBeat() bool {
	return s.GetBeatWithinBar() == 1
}

// GetMarker returns the time represented by the snapshot as "bar.beat".
func (s Snapshot) GetMarker() string {
	return fmt.Sprintf("%d.%d", s.GetBar(), s.GetBeatWithinBar())
}

func (s Snapshot) beatsPerBar() int {
	if s.BeatsPerBar <= 0 {
		return 1
	}
	return s.BeatsPerBar
}
