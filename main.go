package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/robmorgan/pulse/config"
	"github.com/robmorgan/pulse/control"
	"github.com/robmorgan/pulse/display"
	"github.com/robmorgan/pulse/logger"
	"github.com/robmorgan/pulse/rhythm"
	"github.com/robmorgan/pulse/scene"
	"k8s.io/utils/clock"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Run(ctx, *configPath, *debug); err != nil {
		logger.GetProjectLogger().Fatalf("pulse exited with error: %v", err)
	}
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
func Run(ctx context.Context, configPath string, debug bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// initialize the logger
	log := logger.GetProjectLogger()

	log.Info("Initializing config...")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if debug {
		cfg.LogLevel = "debug"
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	log.Info("Initializing metronome...")
	clk := clock.RealClock{}
	metronome := rhythm.NewMetronome(clk, cfg.Tempo)

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		if err := rhythm.RunUpdater(ctx, metronome, clk, cfg.Tempo.PollInterval, &wg); err != nil && !errors.Is(err, context.Canceled) {
			log.Errorf("metronome updater stopped: %v", err)
		}
	}()

	composite, err := scene.New(cfg.Scene, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}
	log.Infof("Loaded scene %q with %d effects: %v", cfg.Scene, composite.Len(), composite.Names())

	var commands <-chan control.Command
	if cfg.Controller.Enabled {
		log.Info("Connecting to MIDI controller...")
		listener, closeMIDI, err := openController(cfg)
		if err != nil {
			log.Errorf("could not start MIDI controller input: %v", err)
		} else {
			defer closeMIDI()
			commands = listener.Events()
		}
	}

	game := display.NewGame(ctx, cfg, metronome, composite, commands)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	log.Info("Running...")
	err = ebiten.RunGame(game)

	log.Println("shutting down pulse")
	cancel()
	wg.Wait()

	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
