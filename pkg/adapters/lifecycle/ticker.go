package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/lifecycle"
)

// DefaultAutosaveInterval is how often the autosave ticker fires.
const DefaultAutosaveInterval = 30 * time.Second

// Tick is emitted by the ticker source.
type Tick struct {
	At time.Time
}

func (t Tick) String() string {
	return "tick " + t.At.Format(time.RFC3339)
}

type tickerSource struct {
	interval time.Duration
	out      chan lifecycle.Event
}

// NewTicker creates a lifecycle.Source that emits a Tick every interval.
// Ticks are dropped, not queued, while the consumer is busy.
func NewTicker(interval time.Duration) lifecycle.Source {
	return &tickerSource{
		interval: interval,
		out:      make(chan lifecycle.Event),
	}
}

func (s *tickerSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *tickerSource) Start(ctx context.Context) error {
	if s.interval <= 0 {
		return fmt.Errorf("ticker interval must be positive, got %s", s.interval)
	}
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		t := time.NewTicker(s.interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case at := <-t.C:
				select {
				case s.out <- Tick{At: at}:
				case <-ctx.Done():
					return nil
				default:
				}
			}
		}
	})
	return nil
}
