package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Key         string          `json:"key"`
	Codec       string          `json:"codec"`
	BlobType    string          `json:"blob_type"`
	NoteIDs     []string        `json:"note_ids"`
	NextID      int             `json:"next_id"`
	CurrentID   string          `json:"current_id,omitempty"`
	State       State           `json:"state"`
	Pending     *DeferredAction `json:"pending,omitempty"`
	Query       string          `json:"query,omitempty"`
	RecoveredTo string          `json:"recovered_to,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	blobType := "blob"
	if comp, ok := s.blob.(introspection.Component); ok {
		blobType = comp.ComponentType()
	}

	state := StateClean
	if s.dirty {
		state = StateDirty
	}
	var pending *DeferredAction
	if s.pending != nil {
		p := *s.pending
		pending = &p
		state = StatePendingConfirmation
	}

	return StoreState{
		Key:         s.key,
		Codec:       s.codec.Name(),
		BlobType:    blobType,
		NoteIDs:     s.ids(),
		NextID:      s.nextID,
		CurrentID:   s.current,
		State:       state,
		Pending:     pending,
		Query:       s.query,
		RecoveredTo: s.recoveredTo,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "note-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
