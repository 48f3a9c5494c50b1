package effect

import (
	"math"
	"testing"

	"github.com/fogleman/ease"
	"github.com/robmorgan/pulse/render"
	"github.com/robmorgan/pulse/render/rendertest"
	"github.com/robmorgan/pulse/rhythm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var magenta = render.MustHex("#ff00ff")

func TestBeatBarsScenario(t *testing.T) {
	t.Parallel()

	bars := NewBeatBars(4, 200, 600, magenta)
	rec := rendertest.New(800, 600)

	bars.Draw(rec, 1.5)

	calls := rec.Filter(rendertest.OpFillRect)
	require.Len(t, calls, 1)
	assert.Equal(t, []float64{200, 300, 200, 300}, calls[0].Args)
	assert.Equal(t, magenta, calls[0].Color)
}

func TestBeatBarsFormula(t *testing.T) {
	t.Parallel()

	bars := NewBeatBars(4, 200, 600, magenta)
	for _, phase := range []float64{0, 0.1, 0.99, 1, 2.25, 3.75, 4, 5.5, 17.125, 1023.5} {
		x, y, w, h := bars.Geometry(rhythm.BeatPhase(phase))

		index := math.Mod(math.Floor(phase), 4)
		frac := phase - math.Floor(phase)
		assert.InDelta(t, index*200, x, 1e-9, "phase=%v", phase)
		assert.InDelta(t, 600*frac, h, 1e-9, "phase=%v", phase)
		assert.InDelta(t, 600-h, y, 1e-9, "phase=%v", phase)
		assert.Equal(t, 200.0, w)
	}
}

func TestBeatBarsIntegerPhase(t *testing.T) {
	t.Parallel()

	bars := NewBeatBars(4, 200, 600, magenta)
	for k := 0; k < 12; k++ {
		x, y, _, h := bars.Geometry(rhythm.BeatPhase(k))
		assert.Equal(t, 0.0, h)
		assert.Equal(t, 600.0, y)
		assert.Equal(t, float64(k%4)*200, x)
	}
}

func TestBeatBarsHugePhase(t *testing.T) {
	t.Parallel()

	bars := NewBeatBars(4, 200, 600, magenta)
	rec := rendertest.New(800, 600)
	require.NotPanics(t, func() {
		bars.Draw(rec, rhythm.BeatPhase(math.MaxFloat64))
		bars.Draw(rec, 1e300)
	})
	for _, c := range rec.Calls {
		assert.GreaterOrEqual(t, c.Args[0], 0.0)
		assert.Less(t, c.Args[0], 800.0)
	}
}

func TestBeatBarsZeroBars(t *testing.T) {
	t.Parallel()

	bars := NewBeatBars(0, 200, 600, magenta)
	require.NotPanics(t, func() {
		x, _, _, _ := bars.Geometry(7.5)
		assert.Equal(t, 0.0, x)
	})
}

func TestPulsingCircle(t *testing.T) {
	t.Parallel()

	circle := NewPulsingCircle(400, 300, 50, 100, render.White)
	rec := rendertest.New(800, 600)

	circle.Draw(rec, 2.25)

	calls := rec.Filter(rendertest.OpFillCircle)
	require.Len(t, calls, 1)
	assert.Equal(t, []float64{400, 300, 75}, calls[0].Args)
}

func TestPulsingCircleResetsEveryBeat(t *testing.T) {
	t.Parallel()

	circle := NewPulsingCircle(400, 300, 50, 100, render.White)

	for beat := 0; beat < 3; beat++ {
		assert.Equal(t, 50.0, circle.Radius(rhythm.BeatPhase(beat)))

		last := circle.Radius(rhythm.BeatPhase(beat))
		for step := 1; step < 100; step++ {
			r := circle.Radius(rhythm.BeatPhase(float64(beat) + float64(step)/100))
			assert.GreaterOrEqual(t, r, last)
			assert.Less(t, r, 150.0)
			last = r
		}
	}
}

func TestWaveScenario(t *testing.T) {
	t.Parallel()

	wave := NewWave(50, 0.5, 100, 800, render.White)
	rec := rendertest.New(800, 600)

	wave.Draw(rec, 0)

	lines := rec.Filter(rendertest.OpLine)
	require.Len(t, lines, 799)
	assert.Equal(t, 0.0, lines[0].Args[0])
	assert.Equal(t, 100.0, lines[0].Args[1])
	assert.Equal(t, 2.0, lines[0].Args[4])

	// segments are connected
	for i := 1; i < len(lines); i++ {
		assert.Equal(t, lines[i-1].Args[2], lines[i].Args[0])
		assert.Equal(t, lines[i-1].Args[3], lines[i].Args[1])
	}
	assert.Equal(t, 799.0, lines[len(lines)-1].Args[2])
}

func TestWaveShiftsContinuously(t *testing.T) {
	t.Parallel()

	wave := NewWave(50, 0.5, 100, 800, render.White)

	// phase*frequency is a horizontal shift, so the wave does not repeat per beat
	assert.NotEqual(t, wave.Y(0, 0), wave.Y(0, 1))
	assert.InDelta(t, 100+50*math.Sin(0.5), wave.Y(0, 1), 1e-9)
	assert.InDelta(t, 100+50*math.Sin(2+1.5), wave.Y(200, 3), 1e-9)
}

func TestWaveTooNarrow(t *testing.T) {
	t.Parallel()

	rec := rendertest.New(800, 600)
	NewWave(50, 0.5, 100, 1, render.White).Draw(rec, 3)
	assert.Empty(t, rec.Calls)
}

func TestSpiral(t *testing.T) {
	t.Parallel()

	spiral := NewSpiral(400, 300, render.White)
	rec := rendertest.New(800, 600)

	spiral.Draw(rec, 0)

	lines := rec.Filter(rendertest.OpLine)
	require.Len(t, lines, 499)

	// the curve starts at the center and the first sample is untouched by phase 0
	assert.Equal(t, []float64{400, 300}, lines[0].Args[:2])
	x, y := spiral.Point(50, 0)
	assert.InDelta(t, 400+20*math.Cos(1), x, 1e-9)
	assert.InDelta(t, 300+20*math.Sin(1), y, 1e-9)
}

func TestSpiralRotatesWithPhase(t *testing.T) {
	t.Parallel()

	spiral := NewSpiral(400, 300, render.White)

	x, y := spiral.Point(50, 0.25)
	assert.InDelta(t, 400+20*math.Cos(1.5), x, 1e-9)
	assert.InDelta(t, 300+20*math.Sin(1.5), y, 1e-9)

	// rotation is independent of beat boundaries: phase 1 is a 2 radian turn
	x, y = spiral.Point(100, 1)
	assert.InDelta(t, 400+40*math.Cos(4), x, 1e-9)
	assert.InDelta(t, 300+40*math.Sin(4), y, 1e-9)
}

func TestBeatFlashDecays(t *testing.T) {
	t.Parallel()

	flash := NewBeatFlash(4, 200, 600, magenta, nil)

	x, y, w, h := flash.Geometry(0)
	assert.Equal(t, []float64{0, 0, 200, 600}, []float64{x, y, w, h})

	x, y, _, h = flash.Geometry(2.25)
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 450.0, h)
	assert.Equal(t, 150.0, y)
}

func TestBeatFlashEased(t *testing.T) {
	t.Parallel()

	flash := NewBeatFlash(4, 200, 600, magenta, Eased(BuildFixedSawtoothShapeFn(true), ease.InQuad))

	_, _, _, h := flash.Geometry(0.5)
	assert.InDelta(t, 600*(1-0.25), h, 1e-9)
}

func TestShapeFunctions(t *testing.T) {
	t.Parallel()

	up := BuildFixedSawtoothShapeFn(false)
	down := BuildFixedSawtoothShapeFn(true)
	assert.Equal(t, 0.25, up(0.25))
	assert.Equal(t, 0.75, down(0.25))

	assert.Equal(t, 0.25, Eased(up, nil)(0.25))
	assert.Equal(t, 0.5, Eased(up, ease.Linear)(0.5))
}

func TestEffectsAreDeterministic(t *testing.T) {
	t.Parallel()

	effects := []Effect{
		NewBeatBars(4, 200, 600, magenta),
		NewPulsingCircle(400, 300, 50, 100, render.White),
		NewWave(50, 0.5, 100, 800, render.White),
		NewSpiral(400, 300, render.White),
		NewBeatFlash(4, 200, 600, magenta, nil),
	}

	for _, e := range effects {
		a := rendertest.New(800, 600)
		b := rendertest.New(800, 600)
		e.Draw(a, 6.875)
		e.Draw(b, 6.875)
		assert.Equal(t, a.Calls, b.Calls, e.Name())
		assert.NotEmpty(t, e.Name())
	}
}
