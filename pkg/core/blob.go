package core

import "context"

// BlobStore is the persistence medium: opaque bytes addressed by a key.
// Adhering to this interface keeps the Store independent of the underlying
// storage mechanism (filesystem, SQLite, bbolt, memory).
type BlobStore interface {
	// Get returns the bytes stored under key, or ErrBlobNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the bytes stored under key.
	Put(ctx context.Context, key string, data []byte) error
}

// Codec converts an Envelope to and from its stored representation.
type Codec interface {
	Name() string
	Encode(env Envelope) ([]byte, error)
	Decode(data []byte) (Envelope, error)
}

// EventType represents the kind of change observed on a blob.
type EventType string

const (
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a stored blob made outside this process.
type Event struct {
	Type      EventType
	Key       string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return string(e.Type) + " " + e.Key
}

// Watchable is implemented by blob stores that can report external changes.
type Watchable interface {
	Watch(ctx context.Context, key string) (<-chan Event, error)
}
