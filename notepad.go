package notepad

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/notepad/internal/platform"
	"github.com/aretw0/notepad/pkg/core"
)

// --- Types ---

// Store is the note collection with its editing session.
type Store = core.Store

// Note is a public alias for the domain note.
type Note = core.Note

// View is a snapshot of the store for rendering.
type View = core.View

// --- Configuration ---

// Option defines a functional option for configuring the store.
type Option = platform.Option

// WithAdapter selects the blob store by name ("fs", "memory", "sqlite", "bolt").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithBlobStore injects a custom blob store.
func WithBlobStore(blob core.BlobStore) Option {
	return platform.WithBlobStore(blob)
}

// WithCodec selects the stored representation ("json" or "yaml").
func WithCodec(name string) Option {
	return platform.WithCodec(name)
}

// WithKey sets the storage key of the note collection.
func WithKey(key string) Option {
	return platform.WithKey(key)
}

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock overrides the time source for timestamps.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithStrictLoad fails loading on malformed data instead of recovering.
func WithStrictLoad(strict bool) Option {
	return platform.WithStrictLoad(strict)
}

// WithSeed controls demo notes on first run.
func WithSeed(enabled bool) Option {
	return platform.WithSeed(enabled)
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithMustExist ensures the storage directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithExtension sets the file extension used by the fs adapter.
func WithExtension(ext string) Option {
	return platform.WithExtension(ext)
}

// WithWatcherErrorHandler registers a callback for fs watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// WithDevSafety controls the temporary-directory sandbox used under `go run`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// --- Factory ---

// New opens the storage at path and loads the note store.
func New(ctx context.Context, path string, opts ...Option) (*Store, error) {
	return platform.New(ctx, path, opts...)
}

// Open initializes the blob store explicitly, without loading notes.
func Open(path string, opts ...Option) (core.BlobStore, error) {
	return platform.Init(path, opts...)
}

// --- Safety & Utils ---

// ResolveStorePath determines the actual storage path based on safety rules.
func ResolveStorePath(userPath string, forceTemp bool) string {
	return platform.ResolveStorePath(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// FindRoot looks upwards for a project-local .notepad directory.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
