package rhythm

import (
	"context"
	"sync"
	"time"

	"github.com/robmorgan/pulse/logger"
	"k8s.io/utils/clock"
)

// Ticker is anything whose state is refreshed on a fixed interval.
type Ticker interface {
	Tick() BeatPhase
}

// RunUpdater polls the metronome every interval until ctx is cancelled, keeping
// the published phase fresh for the render thread.
func RunUpdater(ctx context.Context, m Ticker, clk clock.Clock, interval time.Duration, wg *sync.WaitGroup) error {
	defer wg.Done()

	log := logger.GetProjectLogger()
	log.Debugf("Metronome updater started, interval=%v", interval)

	t := clk.NewTimer(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("Metronome updater shutdown")
			return ctx.Err()
		case <-t.C():
			m.Tick()
			t.Reset(interval)
		}
	}
}
