package rhythm

import (
	"testing"
	"time"

	"github.com/robmorgan/pulse/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"
)

func newTestMetronome() (*Metronome, *clocktesting.FakeClock) {
	clk := clocktesting.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewMetronome(clk, config.NewConfig().Tempo), clk
}

func TestMetronome(t *testing.T) {
	t.Parallel()

	// Create a new metronome with a default of 120 bpm
	m, _ := newTestMetronome()

	// The beat interval should be every 500ms
	assert.Equal(t, 500.0, m.GetBeatInterval())

	// Try to change the tempo
	m.SetTempo(128.0)

	// The beat interval should change to  be
	assert.Equal(t, 468.75, m.GetBeatInterval())
}

func TestPhaseAdvancesWithTime(t *testing.T) {
	t.Parallel()

	m, clk := newTestMetronome()
	require.Equal(t, BeatPhase(0), m.Tick())

	clk.Step(time.Second)
	require.InDelta(t, 2.0, float64(m.Tick()), 1e-9)

	clk.Step(250 * time.Millisecond)
	require.InDelta(t, 2.5, float64(m.Tick()), 1e-9)
	require.InDelta(t, 2.5, float64(m.Phase()), 1e-9)
}

func TestPhaseIsPublishedOnlyOnTick(t *testing.T) {
	t.Parallel()

	m, clk := newTestMetronome()
	clk.Step(time.Second)
	require.Equal(t, BeatPhase(0), m.Phase())

	m.Tick()
	require.InDelta(t, 2.0, float64(m.Phase()), 1e-9)
}

func TestReset(t *testing.T) {
	t.Parallel()

	m, clk := newTestMetronome()
	clk.Step(3 * time.Second)
	m.Tick()

	m.Reset()
	require.Equal(t, BeatPhase(0), m.Phase())

	clk.Step(500 * time.Millisecond)
	require.InDelta(t, 1.0, float64(m.Tick()), 1e-9)
}

func TestSetTempoKeepsPhaseContinuous(t *testing.T) {
	t.Parallel()

	m, clk := newTestMetronome()
	clk.Step(time.Second)
	require.InDelta(t, 2.0, float64(m.Tick()), 1e-9)

	m.SetTempo(60)
	require.InDelta(t, 2.0, float64(m.Phase()), 1e-9)

	clk.Step(time.Second)
	require.InDelta(t, 3.0, float64(m.Tick()), 1e-9)
}

func TestSetTempoClamps(t *testing.T) {
	t.Parallel()

	m, _ := newTestMetronome()

	m.SetTempo(500)
	assert.Equal(t, 200.0, m.GetTempo())

	m.SetTempo(1)
	assert.Equal(t, 30.0, m.GetTempo())
}

func TestAdjustTempo(t *testing.T) {
	t.Parallel()

	m, _ := newTestMetronome()

	m.AdjustTempo(1)
	assert.Equal(t, 121.0, m.GetTempo())

	m.AdjustTempo(-10)
	assert.Equal(t, 111.0, m.GetTempo())

	m.AdjustTempo(1000)
	assert.Equal(t, 200.0, m.GetTempo())
}

func TestPhaseNeverDecreasesAcrossTempoChanges(t *testing.T) {
	t.Parallel()

	m, clk := newTestMetronome()
	last := m.Tick()
	for i, bpm := range []float64{140, 90, 200, 30, 175} {
		clk.Step(time.Duration(i+1) * 37 * time.Millisecond)
		m.SetTempo(bpm)
		p := m.Tick()
		require.GreaterOrEqual(t, float64(p), float64(last))
		last = p
	}
}

func TestGetSnapshot(t *testing.T) {
	t.Parallel()

	m, clk := newTestMetronome()
	clk.Step(2750 * time.Millisecond)
	m.Tick()

	s := m.GetSnapshot()
	assert.Equal(t, 120.0, s.GetTempo())
	assert.Equal(t, 4, s.BeatsPerBar)
	assert.InDelta(t, 5.5, float64(s.Phase), 1e-9)
	assert.Equal(t, "2.2", s.GetMarker())
}
