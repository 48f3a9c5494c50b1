package display

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/robmorgan/pulse/config"
	"github.com/robmorgan/pulse/control"
	"github.com/robmorgan/pulse/effect"
	"github.com/robmorgan/pulse/feedback"
	"github.com/robmorgan/pulse/logger"
	"github.com/robmorgan/pulse/render"
	"github.com/robmorgan/pulse/rhythm"
	"github.com/robmorgan/pulse/scene"
	"github.com/sirupsen/logrus"
)

// held keys repeat after repeatDelay ticks, then every repeatInterval ticks
const (
	repeatDelay    = 30
	repeatInterval = 4
)

var keyCodes = map[string]ebiten.Key{
	"Space":     ebiten.KeySpace,
	"ArrowUp":   ebiten.KeyArrowUp,
	"ArrowDown": ebiten.KeyArrowDown,
	"KeyF":      ebiten.KeyF,
	"Escape":    ebiten.KeyEscape,
}

type keyBinding struct {
	key ebiten.Key
	control.Binding
}

// Game drives one window: it applies keyboard and controller commands in
// Update and renders the effect lineup at the metronome's phase in Draw.
type Game struct {
	ctx       context.Context
	cfg       config.Config
	metronome *rhythm.Metronome
	canvas    *Canvas
	renderer  *scene.Renderer
	commands  <-chan control.Command
	keys      []keyBinding

	// lastErr stops the loop on the next Update.
	lastErr error
}

// NewGame wires a lineup to the metronome. commands may be nil when no
// controller is attached. Cancelling ctx closes the window.
func NewGame(ctx context.Context, cfg config.Config, m *rhythm.Metronome, composite *effect.Composite, commands <-chan control.Command) *Game {
	canvas := NewCanvas()
	params := feedback.Params{Opacity: cfg.Feedback.Opacity, ZoomFactor: cfg.Feedback.ZoomFactor}
	compositor := feedback.NewCompositor(canvas, params, cfg.Window.Width, cfg.Window.Height)

	g := &Game{
		ctx:       ctx,
		cfg:       cfg,
		metronome: m,
		canvas:    canvas,
		renderer:  scene.NewRenderer(composite, compositor, cfg.Feedback.Enabled),
		commands:  commands,
	}
	for _, b := range control.DefaultBindings(cfg.Tempo.Nudge) {
		key, ok := keyCodes[b.Key]
		if !ok {
			cfg.Logger.WithFields(logrus.Fields{"key": b.Key}).Warn("Ignoring binding for unknown key")
			continue
		}
		g.keys = append(g.keys, keyBinding{key: key, Binding: b})
	}
	return g
}

func (g *Game) Update() error {
	if g.lastErr != nil {
		return g.lastErr
	}
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	for _, k := range g.keys {
		if !g.triggered(k) {
			continue
		}
		if err := g.handle(k.Command); err != nil {
			return err
		}
	}

	for {
		select {
		case cmd := <-g.commands:
			if err := g.handle(cmd); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (g *Game) triggered(k keyBinding) bool {
	if !k.Repeat {
		return inpututil.IsKeyJustPressed(k.key)
	}
	d := inpututil.KeyPressDuration(k.key)
	return d == 1 || (d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0)
}

func (g *Game) handle(cmd control.Command) error {
	log := logger.GetProjectLogger()
	switch cmd.Type {
	case control.CommandQuit:
		return ebiten.Termination
	case control.CommandToggleFeedback:
		on := g.renderer.ToggleFeedback()
		log.WithFields(logrus.Fields{"enabled": on}).Info("Toggled feedback")
	default:
		control.Apply(cmd, g.metronome)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.lastErr != nil {
		return
	}

	g.canvas.Bind(screen)
	snap := g.metronome.GetSnapshot()
	err := g.renderer.Render(g.canvas, snap.Phase, func(render.Drawer) {
		g.drawHUD(snap)
	})
	if err != nil {
		g.lastErr = err
	}
}

func (g *Game) drawHUD(snap rhythm.Snapshot) {
	status := fmt.Sprintf("BPM: %.1f  %s", snap.GetTempo(), snap.GetMarker())
	if !g.renderer.FeedbackEnabled() {
		status += "  [feedback off]"
	}
	ebitenutil.DebugPrintAt(g.canvas.Target(), status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
