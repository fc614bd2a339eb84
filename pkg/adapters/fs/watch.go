package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/notepad/pkg/core"
)

// Watch reports changes to the file backing key that this process did not make.
// The channel is closed when ctx is cancelled.
func (s *Store) Watch(ctx context.Context, key string) (<-chan core.Event, error) {
	path, err := s.filename(key)
	if err != nil {
		return nil, err
	}
	path = filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	// Atomic writes replace the file, so the directory is watched, not the file.
	if err := watcher.Add(s.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.Path, err)
	}

	out := make(chan core.Event, 16)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(out)
		defer s.setWatcherActive(false)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				e, changed := s.classify(key, path, event)
				if !changed {
					continue
				}
				if s.config.Logger != nil {
					s.config.Logger.Debug("external change detected", "key", key, "type", e.Type)
				}
				select {
				case out <- e:
				case <-ctx.Done():
					return nil
				}

			case wErr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				s.handleWatcherError(wErr)
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		s.handleWatcherError(fmt.Errorf("watcher panic: %w", err))
	}))

	return out, nil
}

// classify maps a filesystem event on the watched file to a core.Event.
// Content identical to the last known write is not a change.
func (s *Store) classify(key, path string, event fsnotify.Event) (core.Event, bool) {
	switch {
	case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
		data, err := os.ReadFile(path)
		if err != nil || s.isKnown(key, data) {
			return core.Event{}, false
		}
		s.remember(key, data)
		return core.Event{Type: core.EventModify, Key: key, Timestamp: time.Now().Unix()}, true

	case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
		if _, err := os.Stat(path); err == nil {
			return core.Event{}, false
		}
		s.forget(key)
		return core.Event{Type: core.EventDelete, Key: key, Timestamp: time.Now().Unix()}, true
	}
	return core.Event{}, false
}

func (s *Store) forget(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.known, key)
}

func (s *Store) handleWatcherError(err error) {
	if s.config.Logger != nil {
		s.config.Logger.Error("fsnotify error", "error", err)
	}
	if s.config.ErrorHandler != nil {
		s.config.ErrorHandler(err)
	}
}

var _ core.Watchable = (*Store)(nil)
