package rhythm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotPositions(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		phase         BeatPhase
		beat          int64
		bar           int64
		beatWithinBar int
		downBeat      bool
		marker        string
	}{
		{0, 1, 1, 1, true, "1.1"},
		{0.9, 1, 1, 1, true, "1.1"},
		{1.0, 2, 1, 2, false, "1.2"},
		{3.99, 4, 1, 4, false, "1.4"},
		{4.0, 5, 2, 1, true, "2.1"},
		{13.5, 14, 4, 2, false, "4.2"},
	}

	for _, testCase := range testCases {
		s := Snapshot{Phase: testCase.phase, Tempo: 120, BeatsPerBar: 4}
		assert.Equal(t, testCase.beat, s.GetBeat())
		assert.Equal(t, testCase.bar, s.GetBar())
		assert.Equal(t, testCase.beatWithinBar, s.GetBeatWithinBar())
		assert.Equal(t, testCase.downBeat, s.IsDownBeat())
		assert.Equal(t, testCase.marker, s.GetMarker())
	}
}

func TestSnapshotIntervals(t *testing.T) {
	t.Parallel()

	s := Snapshot{Phase: 6.5, Tempo: 120, BeatsPerBar: 4}
	assert.Equal(t, 500.0, s.GetBeatInterval())
	assert.Equal(t, 2000.0, s.GetBarInterval())
	assert.InDelta(t, 0.5, s.GetBeatPhase(), 1e-9)
	assert.InDelta(t, 2.5/4, s.GetBarPhase(), 1e-9)
}

func TestSnapshotWithoutBarLength(t *testing.T) {
	t.Parallel()

	s := Snapshot{Phase: 3.2, Tempo: 90}
	assert.Equal(t, int64(4), s.GetBar())
	assert.Equal(t, 1, s.GetBeatWithinBar())
	assert.True(t, s.IsDownBeat())
}
