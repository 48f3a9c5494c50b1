// Package scene assembles effect lineups and renders frames through the
// optional feedback compositor. It knows nothing about the windowing toolkit.
package scene

import (
	"fmt"
	"sort"

	"github.com/fogleman/ease"
	"github.com/robmorgan/pulse/effect"
	"github.com/robmorgan/pulse/render"
)

const (
	Default = "default"
	Classic = "classic"
)

var lineups = map[string]func(w, h float64) []effect.Effect{
	// The four beat-synced effects layered over each other.
	Default: func(w, h float64) []effect.Effect {
		return []effect.Effect{
			effect.NewBeatBars(4, w/4, h, render.MustHex("#ff00ff")),
			effect.NewPulsingCircle(w/2, h/2, h/12, h/6, render.HSV(190, 0.8, 1)),
			effect.NewWave(50, 0.5, h/6, int(w), render.MustHex("#ffd700")),
			effect.NewSpiral(w/2, h/2, render.White),
		}
	},
	// A single decaying flash per beat.
	Classic: func(w, h float64) []effect.Effect {
		shape := effect.Eased(effect.BuildFixedSawtoothShapeFn(true), ease.InOutQuad)
		return []effect.Effect{
			effect.NewBeatFlash(4, w/4, h, render.MustHex("#ff00ff"), shape),
		}
	},
}

// Names returns the known lineups in sorted order.
func Names() []string {
	names := make([]string, 0, len(lineups))
	for name := range lineups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named lineup sized for a width x height surface.
func New(name string, width, height int) (*effect.Composite, error) {
	build, ok := lineups[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q, expected one of %v", name, Names())
	}

	c := effect.NewComposite()
	for _, e := range build(float64(width), float64(height)) {
		c.Add(e)
	}
	return c, nil
}
