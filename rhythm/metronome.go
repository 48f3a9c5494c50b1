package rhythm

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robmorgan/pulse/config"
	"github.com/robmorgan/pulse/logger"
	"github.com/robmorgan/pulse/utils"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"
)

// Metronome turns wall-clock time and an adjustable tempo into a BeatPhase.
// Originally based on https://github.com/Deep-Symmetry/electro/blob/main/src/main/java/org/deepsymmetry/electro/Metronome.java#L449
//
// Tempo and timeline origin are guarded by mu. The most recently computed phase
// is published as an atomic snapshot so the render thread never takes the lock.
type Metronome struct {
	mu          sync.Mutex
	clock       clock.PassiveClock
	anchor      time.Time
	anchorPhase float64
	tempo       float64
	minTempo    float64
	maxTempo    float64
	beatsPerBar int

	phase atomic.Uint64
}

// NewMetronome creates a new Metronome starting at phase zero.
func NewMetronome(clk clock.PassiveClock, cfg config.TempoConfig) *Metronome {
	return &Metronome{
		clock:       clk,
		anchor:      clk.Now(),
		tempo:       utils.Clamp(cfg.Initial, cfg.Min, cfg.Max),
		minTempo:    cfg.Min,
		maxTempo:    cfg.Max,
		beatsPerBar: cfg.BeatsPerBar,
	}
}

// Phase returns the most recently published beat phase.
func (m *Metronome) Phase() BeatPhase {
	return BeatPhase(math.Float64frombits(m.phase.Load()))
}

// Tick recomputes the phase from the clock and publishes it.
func (m *Metronome) Tick() BeatPhase {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := m.phaseAt(m.clock.Now())
	m.publish(p)
	return BeatPhase(p)
}

// Reset restarts the timeline so the phase is exactly zero now.
func (m *Metronome) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.anchor = m.clock.Now()
	m.anchorPhase = 0
	m.publish(0)

	logger.GetProjectLogger().WithFields(logrus.Fields{"bpm": m.tempo}).Info("Metronome reset")
}

func (m *Metronome) GetTempo() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tempo
}

// SetTempo sets a new tempo for the Metronome, clamped to the configured range.
// The timeline is re-anchored so the current phase is unaffected by the change.
func (m *Metronome) SetTempo(bpm float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setTempo(bpm)
}

// AdjustTempo nudges the tempo by delta BPM.
func (m *Metronome) AdjustTempo(delta float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setTempo(m.tempo + delta)
}

func (m *Metronome) setTempo(bpm float64) {
	bpm = utils.Clamp(bpm, m.minTempo, m.maxTempo)
	if bpm == m.tempo {
		return
	}

	now := m.clock.Now()
	m.anchorPhase = m.phaseAt(now)
	m.anchor = now
	old := m.tempo
	m.tempo = bpm
	m.publish(m.anchorPhase)

	logger.GetProjectLogger().WithFields(logrus.Fields{"from": old, "to": bpm}).Debug("Tempo changed")
}

// GetBeatInterval returns the number of milliseconds a beat lasts.
func (m *Metronome) GetBeatInterval() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return beatsToMilliseconds(1, m.tempo)
}

// GetSnapshot captures the published phase together with the tempo and bar length.
func (m *Metronome) GetSnapshot() Snapshot {
	m.mu.Lock()
	tempo := m.tempo
	bpb := m.beatsPerBar
	m.mu.Unlock()

	return Snapshot{
		Phase:       m.Phase(),
		Tempo:       tempo,
		BeatsPerBar: bpb,
	}
}

// phaseAt must be called with mu held.
func (m *Metronome) phaseAt(instant time.Time) float64 {
	elapsed := instant.Sub(m.anchor)
	if elapsed < 0 {
		elapsed = 0
	}
	return m.anchorPhase + elapsed.Minutes()*m.tempo
}

func (m *Metronome) publish(p float64) {
	m.phase.Store(math.Float64bits(p))
}

// beatsToMilliseconds calculates milliseconds for given beats and tempo
func beatsToMilliseconds(beats int, tempo float64) float64 {
	return (60000.0 / tempo) * float64(beats)
}
