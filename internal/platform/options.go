package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/notepad/pkg/core"
)

// options holds the internal configuration for the notepad store.
type options struct {
	blob    core.BlobStore
	logger  *slog.Logger
	adapter string
	codec   string
	key     string
	clock   func() time.Time
	config  map[string]interface{}
}

// Option defines a functional option for configuring the notepad store.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		blob:    nil,
		logger:  nil,
		adapter: "fs",
		codec:   "json",
		key:     core.DefaultKey,
		config:  make(map[string]interface{}),
	}
}

// WithAdapter selects the blob store by name: "fs", "memory", "sqlite" or "bolt".
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithBlobStore injects a custom blob store. If provided, the adapter name
// and path are ignored.
func WithBlobStore(blob core.BlobStore) Option {
	return func(o *options) {
		o.blob = blob
	}
}

// WithCodec selects the stored representation by name ("json" or "yaml").
func WithCodec(name string) Option {
	return func(o *options) {
		o.codec = name
	}
}

// WithKey sets the storage key of the envelope. Defaults to core.DefaultKey.
func WithKey(key string) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithLogger sets the logger for the store and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock overrides the time source used for note timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithStrictLoad makes loading fail with core.ErrMalformedData instead of
// backing up unreadable data and starting empty.
func WithStrictLoad(strict bool) Option {
	return func(o *options) {
		o.config["strict_load"] = strict
	}
}

// WithSeed controls whether demo notes are written when nothing is stored yet.
// By default, seeding is enabled.
func WithSeed(enabled bool) Option {
	return func(o *options) {
		o.config["seed"] = enabled
	}
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.config["temp_dir"] = force
	}
}

// WithMustExist ensures the storage directory must already exist (fs adapter).
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithExtension sets the file extension of blobs written by the fs adapter.
func WithExtension(ext string) Option {
	return func(o *options) {
		o.config["ext"] = ext
	}
}

// WithWatcherErrorHandler registers a callback for errors raised while
// watching the fs adapter for external changes.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watcher_error_handler"] = fn
	}
}

// WithDevSafety controls the "Sandbox" safety mechanism when running via `go run`.
// By default (true), storage is redirected to a temporary directory to prevent
// accidental writes to real notes. Setting this to false allows operating on
// the real path even during `go run`.
//
// CAUTION: Only disable this if you are sure your code is safe.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.config["dev_safety"] = enabled
	}
}
