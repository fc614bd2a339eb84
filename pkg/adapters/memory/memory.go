// Package memory provides an in-process BlobStore, used for ephemeral
// sessions and tests.
package memory

import (
	"bytes"
	"context"
	"sync"

	"github.com/aretw0/notepad/pkg/core"
)

// Store keeps blobs in a map. The zero value is not usable; use New.
type Store struct {
	mu    sync.RWMutex
	blobs map[string][]byte
	puts  int
}

// New creates an empty in-memory blob store.
func New() *Store {
	return &Store{blobs: make(map[string][]byte)}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[key]
	if !ok {
		return nil, core.ErrBlobNotFound
	}
	return bytes.Clone(data), nil
}

func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = bytes.Clone(data)
	s.puts++
	return nil
}

// Puts returns how many writes the store has accepted.
func (s *Store) Puts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.puts
}

// Keys returns the stored keys in no particular order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.blobs))
	for k := range s.blobs {
		keys = append(keys, k)
	}
	return keys
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "memory"
}
