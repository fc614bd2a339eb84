package platform

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/notepad/pkg/adapters/bolt"
	"github.com/aretw0/notepad/pkg/adapters/fs"
	"github.com/aretw0/notepad/pkg/adapters/memory"
	"github.com/aretw0/notepad/pkg/adapters/sqlite"
	"github.com/aretw0/notepad/pkg/core"
)

// Adapter names accepted by WithAdapter.
const (
	AdapterFS     = "fs"
	AdapterMemory = "memory"
	AdapterSQLite = "sqlite"
	AdapterBolt   = "bolt"
)

const (
	sqliteFile = "notepad.db"
	boltFile   = "notepad.bolt"
)

// Init opens the blob store selected by the options.
// The 'uri' argument is adapter-specific: a directory for 'fs', and a
// directory or database file for 'sqlite' and 'bolt'. It is ignored by 'memory'.
func Init(uri string, opts ...Option) (core.BlobStore, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o.open(uri)
}

func (o *options) open(uri string) (core.BlobStore, error) {
	if o.blob != nil {
		return o.blob, nil
	}

	switch o.adapter {
	case AdapterFS:
		return initFS(o.resolvePath(uri), o)
	case AdapterMemory:
		return memory.New(), nil
	case AdapterSQLite:
		path := dbPath(o.resolvePath(uri), sqliteFile)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("%w: %w", core.ErrStorageUnavailable, err)
		}
		store, err := sqlite.New(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", core.ErrStorageUnavailable, err)
		}
		return store, nil
	case AdapterBolt:
		store, err := bolt.New(dbPath(o.resolvePath(uri), boltFile))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", core.ErrStorageUnavailable, err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
}

// resolvePath applies the dev sandbox to a user supplied path.
func (o *options) resolvePath(path string) string {
	tempDir, _ := o.config["temp_dir"].(bool)
	devSafety := true
	if val, ok := o.config["dev_safety"].(bool); ok {
		devSafety = val
	}

	useTemp := tempDir || (IsDevRun() && devSafety)
	resolved := ResolveStorePath(path, useTemp)

	if o.logger != nil {
		if IsDevRun() && !devSafety {
			o.logger.Warn("running in UNSAFE mode (bypassing dev sandbox)", "path", resolved)
		}
		if useTemp {
			o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", path, "resolved_path", resolved)
		}
	}
	return resolved
}

// initFS handles the initialization logic for the Filesystem adapter.
func initFS(path string, o *options) (core.BlobStore, error) {
	mustExist, _ := o.config["must_exist"].(bool)
	ext, _ := o.config["ext"].(string)
	if ext == "" && (o.codec == "yaml" || o.codec == "yml") {
		ext = ".yaml"
	}
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))

	store := fs.NewStore(fs.Config{
		Dir:          path,
		Ext:          ext,
		MustExist:    mustExist,
		Logger:       o.logger,
		ErrorHandler: errorHandler,
	})
	if err := store.Initialize(context.Background()); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrStorageUnavailable, err)
	}
	return store, nil
}

// dbPath treats paths without an extension as directories holding a
// default-named database file.
func dbPath(path, file string) string {
	if filepath.Ext(path) != "" {
		return path
	}
	return filepath.Join(path, file)
}

func (o *options) logOrDiscard() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return slog.New(slog.DiscardHandler)
}
