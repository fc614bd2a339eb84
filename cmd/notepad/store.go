package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/aretw0/notepad"
	"github.com/aretw0/notepad/internal/config"
	"github.com/aretw0/notepad/pkg/core"
)

// storePath picks the configured path, then a project-local .notepad
// directory, then the user data directory.
func storePath() (string, error) {
	if cfg.Path != "" {
		return cfg.Path, nil
	}

	wd, err := os.Getwd()
	if err == nil {
		if root, err := notepad.FindRoot(wd); err == nil {
			return root, nil
		}
	}
	return config.DefaultDataDir()
}

func storeOptions(blob core.BlobStore) []notepad.Option {
	opts := []notepad.Option{
		notepad.WithAdapter(cfg.Adapter),
		notepad.WithCodec(cfg.Codec),
		notepad.WithSeed(cfg.Seed),
		notepad.WithLogger(slog.Default()),
	}
	if cfg.Key != "" {
		opts = append(opts, notepad.WithKey(cfg.Key))
	}
	if blob != nil {
		opts = append(opts, notepad.WithBlobStore(blob))
	}
	return opts
}

// openStore opens the blob store and loads the notes. The blob store is
// returned too so callers can watch it.
func openStore(ctx context.Context) (*core.Store, core.BlobStore, error) {
	path, err := storePath()
	if err != nil {
		return nil, nil, err
	}

	blob, err := notepad.Open(path, storeOptions(nil)...)
	if err != nil {
		return nil, nil, err
	}

	store, err := notepad.New(ctx, path, storeOptions(blob)...)
	if err != nil {
		if closer, ok := blob.(interface{ Close() error }); ok {
			err = errors.Join(err, closer.Close())
		}
		return nil, nil, err
	}

	slog.Debug("store opened", "path", path, "adapter", cfg.Adapter)
	return store, blob, nil
}

// mustOpenStore is the one-shot variant used by the plain subcommands.
func mustOpenStore(ctx context.Context) *core.Store {
	store, _, err := openStore(ctx)
	if err != nil {
		fatal("Error opening notes", err)
	}
	return store
}

func closeStore(store *core.Store) {
	if err := store.Close(); err != nil {
		slog.Warn("failed to close store", "error", err)
	}
}
