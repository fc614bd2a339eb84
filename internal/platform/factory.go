package platform

import (
	"context"
	"io"

	"github.com/aretw0/notepad/pkg/codec"
	"github.com/aretw0/notepad/pkg/core"
)

// New opens the configured blob store and loads a note store on top of it.
//
//	store, err := notepad.New("./notes", notepad.WithAdapter("sqlite"))
//
// The URI argument is adapter-specific (see Init).
func New(ctx context.Context, uri string, opts ...Option) (*core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	c, err := codec.ByName(o.codec)
	if err != nil {
		return nil, err
	}

	blob, err := o.open(uri)
	if err != nil {
		return nil, err
	}

	strict, _ := o.config["strict_load"].(bool)
	seed := true
	if val, ok := o.config["seed"].(bool); ok {
		seed = val
	}

	logger := o.logOrDiscard()
	store, err := core.NewStore(ctx, core.Config{
		Blob:       blob,
		Codec:      c,
		Key:        o.key,
		Logger:     logger,
		Clock:      o.clock,
		StrictLoad: strict,
		SkipSeed:   !seed,
	})
	if err != nil {
		// Injected stores belong to the caller.
		if closer, ok := blob.(io.Closer); ok && o.blob == nil {
			if cerr := closer.Close(); cerr != nil {
				logger.Warn("failed to close blob store", "error", cerr)
			}
		}
		return nil, err
	}

	logger.Debug("notepad store ready", "adapter", o.adapter, "codec", c.Name(), "key", o.key)
	return store, nil
}
