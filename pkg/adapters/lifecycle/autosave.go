package lifecycle

import (
	"context"
	"log/slog"

	"github.com/aretw0/lifecycle"
)

// Autosaver is the store hook driven by ticks.
type Autosaver interface {
	Tick(ctx context.Context) (bool, error)
}

// Autosave starts src and calls target.Tick for every Tick it emits, until
// ctx is done or the source closes. Save failures are logged and the loop
// keeps going: the next tick retries while the note is still dirty.
func Autosave(ctx context.Context, target Autosaver, src lifecycle.Source, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := src.Start(ctx); err != nil {
		return err
	}

	events := src.Events()
	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-events:
			if !ok {
				return nil
			}
			if _, isTick := e.(Tick); !isTick {
				continue
			}
			saved, err := target.Tick(ctx)
			if err != nil {
				logger.Warn("autosave failed", "error", err)
				continue
			}
			if saved {
				logger.Debug("autosaved")
			}
		}
	}
}
