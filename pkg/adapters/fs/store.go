package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/notepad/pkg/core"
)

// DefaultExt is appended to keys to build file names.
const DefaultExt = ".json"

// Config holds the configuration for the filesystem blob store.
type Config struct {
	Dir          string
	Ext          string // defaults to DefaultExt
	MustExist    bool
	Logger       *slog.Logger
	ErrorHandler func(error) // receives watcher failures
}

// Store implements core.BlobStore with one file per key inside Dir.
// Writes are atomic (temp file + rename).
type Store struct {
	Path   string
	config Config

	mu            sync.RWMutex
	known         map[string][]byte // last content written or observed, per key
	watcherActive bool
	lastWrite     *time.Time
}

// NewStore creates a filesystem-backed blob store. Call Initialize before use.
func NewStore(config Config) *Store {
	if config.Ext == "" {
		config.Ext = DefaultExt
	}
	return &Store{
		Path:   config.Dir,
		config: config,
		known:  make(map[string][]byte),
	}
}

// Initialize ensures the directory exists.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.MustExist {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("store path does not exist: %s", s.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("store path is not a directory: %s", s.Path)
		}
		return nil
	}
	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return nil
}

// Get reads the file backing key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.filename(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, core.ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// Put atomically replaces the file backing key.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.filename(key)
	if err != nil {
		return err
	}

	// Recorded before the rename so the watcher never mistakes it for an external change.
	s.remember(key, data)
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return err
	}

	s.mu.Lock()
	now := time.Now()
	s.lastWrite = &now
	s.mu.Unlock()

	if s.config.Logger != nil {
		s.config.Logger.Debug("blob written", "key", key, "path", path, "bytes", len(data))
	}
	return nil
}

// filename maps a key to a file inside the store directory.
// Keys are plain names: separators and parent references are rejected.
func (s *Store) filename(key string) (string, error) {
	if key == "" || key == "." || key == ".." ||
		strings.ContainsAny(key, `/\`) || strings.ContainsRune(key, 0) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.Path, key+s.config.Ext), nil
}

func (s *Store) remember(key string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.known[key] = append([]byte(nil), data...)
}

// isKnown reports whether data equals the last content written or observed for key.
func (s *Store) isKnown(key string, data []byte) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	last, ok := s.known[key]
	return ok && string(last) == string(data)
}
