package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultKey is the blob key the envelope is stored under.
const DefaultKey = "notepad-notes"

// StatusUnsaved is the status text shown after an edit.
const StatusUnsaved = "Unsaved changes"

// Config holds the configuration for a Store.
type Config struct {
	Blob   BlobStore
	Codec  Codec
	Key    string // defaults to DefaultKey
	Logger *slog.Logger
	Clock  func() time.Time

	// StrictLoad makes NewStore fail with ErrMalformedData on a corrupt envelope
	// instead of backing it up and starting empty.
	StrictLoad bool

	// SkipSeed leaves a fresh store empty instead of writing the demo notes.
	SkipSeed bool
}

// Store owns the notes collection, the open note and its unsaved edits.
// Every method runs to completion under one mutex, so the autosave ticker
// and user events never interleave mid-mutation.
type Store struct {
	mu sync.Mutex

	blob   BlobStore
	codec  Codec
	key    string
	logger *slog.Logger
	now    func() time.Time

	notes   map[string]Note
	nextID  int
	current string
	draft   Draft
	dirty   bool
	pending *DeferredAction
	query   string
	status  string

	recoveredTo string
}

// NewStore creates a Store and loads the envelope from the blob store.
//
// Loading policy:
//   - no blob: the demo notes are written (unless SkipSeed).
//   - unreadable blob store: ErrStorageUnavailable.
//   - corrupt blob: the bytes are copied to "<key>.corrupt-<uuid>", the error
//     is logged and the Store starts empty; with StrictLoad, ErrMalformedData.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Blob == nil {
		return nil, errors.New("blob store is required")
	}
	if cfg.Codec == nil {
		return nil, errors.New("codec is required")
	}

	s := &Store{
		blob:   cfg.Blob,
		codec:  cfg.Codec,
		key:    cfg.Key,
		logger: cfg.Logger,
		now:    cfg.Clock,
		notes:  make(map[string]Note),
		nextID: 1,
	}
	if s.key == "" {
		s.key = DefaultKey
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}

	if err := s.load(ctx, cfg); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load(ctx context.Context, cfg Config) error {
	data, err := s.blob.Get(ctx, s.key)
	if errors.Is(err, ErrBlobNotFound) {
		if cfg.SkipSeed {
			s.logger.Debug("no stored notes, starting empty", "key", s.key)
			return nil
		}
		return s.seed(ctx)
	}
	if err != nil {
		return fmt.Errorf("%w: read %q: %w", ErrStorageUnavailable, s.key, err)
	}

	env, err := s.decode(data)
	if err != nil {
		if cfg.StrictLoad {
			return err
		}
		s.quarantine(ctx, data, err)
		return nil
	}

	s.notes = env.Notes
	s.nextID = env.NextID
	s.logger.Debug("notes loaded", "key", s.key, "count", len(s.notes), "next_id", s.nextID)
	return nil
}

func (s *Store) decode(data []byte) (Envelope, error) {
	env, err := s.codec.Decode(data)
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: %w", ErrMalformedData, err)
	}
	if err := env.normalize(); err != nil {
		return Envelope{}, err
	}
	return env, nil
}

func (s *Store) seed(ctx context.Context) error {
	env := DemoEnvelope(s.now())
	if err := s.persist(ctx, env.Notes, env.NextID); err != nil {
		return err
	}
	s.notes = env.Notes
	s.nextID = env.NextID
	s.logger.Info("seeded demo notes", "key", s.key, "count", len(env.Notes))
	return nil
}

// quarantine keeps a copy of an undecodable envelope so the next write
// does not destroy it.
func (s *Store) quarantine(ctx context.Context, data []byte, cause error) {
	backup := fmt.Sprintf("%s.corrupt-%s", s.key, uuid.NewString())
	if err := s.blob.Put(ctx, backup, data); err != nil {
		s.logger.Error("stored notes are malformed and could not be backed up",
			"key", s.key, "error", cause, "backup_error", err)
		return
	}
	s.recoveredTo = backup
	s.logger.Error("stored notes are malformed, starting empty",
		"key", s.key, "backup", backup, "error", cause)
}

// persist writes the envelope. Callers commit in-memory state only after it succeeds.
func (s *Store) persist(ctx context.Context, notes map[string]Note, nextID int) error {
	data, err := s.codec.Encode(Envelope{Notes: notes, NextID: nextID})
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}
	if err := s.blob.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("%w: write %q: %w", ErrStorageUnavailable, s.key, err)
	}
	return nil
}

// --- Operations ---

// Create opens a new untitled note. While dirty, the request is deferred and
// the returned View asks for confirmation.
func (s *Store) Create(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		return s.viewLocked(), ErrConfirmationPending
	}
	if s.dirty {
		return s.deferLocked(DeferredAction{Kind: ActionCreate}), nil
	}
	return s.createLocked(ctx)
}

// Select opens the note with the given id. Unknown ids and the already open
// note are no-ops. While dirty, the request is deferred.
func (s *Store) Select(ctx context.Context, id string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		return s.viewLocked(), ErrConfirmationPending
	}
	if _, ok := s.notes[id]; !ok {
		s.logger.Debug("select ignored", "id", id, "reason", ErrNotFound)
		return s.viewLocked(), nil
	}
	if id == s.current {
		return s.viewLocked(), nil
	}
	if s.dirty {
		return s.deferLocked(DeferredAction{Kind: ActionSelect, NoteID: id}), nil
	}
	s.openLocked(id)
	return s.viewLocked(), nil
}

// UpdateDraft applies an edit to the open note's draft and marks it dirty.
// It is a no-op when no note is open.
func (s *Store) UpdateDraft(edit Edit) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		return s.viewLocked(), ErrConfirmationPending
	}
	if s.current == "" || edit.empty() {
		return s.viewLocked(), nil
	}
	if edit.Title != nil {
		s.draft.Title = *edit.Title
	}
	if edit.Content != nil {
		s.draft.Content = *edit.Content
	}
	s.dirty = true
	s.status = StatusUnsaved
	return s.viewLocked(), nil
}

// Save writes the draft of the open note. On a storage failure the note
// stays dirty and the error wraps ErrStorageUnavailable.
func (s *Store) Save(ctx context.Context, kind SaveKind) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		return s.viewLocked(), ErrConfirmationPending
	}
	_, err := s.saveLocked(ctx, kind)
	return s.viewLocked(), err
}

// Delete removes a note. Unsaved edits do not defer it: deleting the open
// note drops its draft and closes it. Unknown ids are no-ops.
func (s *Store) Delete(ctx context.Context, id string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		return s.viewLocked(), ErrConfirmationPending
	}
	if _, ok := s.notes[id]; !ok {
		s.logger.Debug("delete ignored", "id", id, "reason", ErrNotFound)
		return s.viewLocked(), nil
	}

	next := cloneNotes(s.notes)
	delete(next, id)
	if err := s.persist(ctx, next, s.nextID); err != nil {
		s.logger.Error("delete failed", "id", id, "error", err)
		return s.viewLocked(), err
	}
	s.notes = next
	if id == s.current {
		s.current = ""
		s.draft = Draft{}
		s.dirty = false
		s.status = ""
	}
	s.logger.Info("note deleted", "id", id, "remaining", len(s.notes))
	return s.viewLocked(), nil
}

// SetSearchQuery changes the list filter. It never touches notes or the dirty flag.
func (s *Store) SetSearchQuery(query string) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = query
	return s.viewLocked()
}

// Resolve answers the pending confirmation request.
// If SaveAndContinue cannot persist, the request stays pending.
func (s *Store) Resolve(ctx context.Context, r Resolution) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return s.viewLocked(), ErrNoPendingAction
	}
	action := *s.pending

	switch r {
	case Cancel:
		s.pending = nil
		s.logger.Debug("deferred action cancelled", "action", action)
		return s.viewLocked(), nil
	case SaveAndContinue:
		if _, err := s.saveLocked(ctx, SaveManual); err != nil {
			return s.viewLocked(), err
		}
	case Discard:
		s.discardLocked()
	default:
		return s.viewLocked(), fmt.Errorf("unknown resolution %d", int(r))
	}

	s.pending = nil
	s.logger.Debug("deferred action resumed", "action", action, "resolution", r)
	return s.runLocked(ctx, action)
}

// Tick is the autosave hook. It saves only when the open note is dirty and no
// confirmation is pending, and reports whether a write happened.
func (s *Store) Tick(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty || s.current == "" || s.pending != nil {
		return false, nil
	}
	return s.saveLocked(ctx, SaveAuto)
}

// BeforeExit returns ErrUnsavedChanges while there are unsaved edits.
// It never saves; hosts use it to warn or block termination.
func (s *Store) BeforeExit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dirty {
		return ErrUnsavedChanges
	}
	return nil
}

// View returns the current state without changing it.
func (s *Store) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Get returns a copy of a stored note.
func (s *Store) Get(id string) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok {
		return Note{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return n, nil
}

// Notes returns every stored note, newest modification first.
func (s *Store) Notes() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked()
}

// Close releases the blob store if it holds resources.
func (s *Store) Close() error {
	if c, ok := s.blob.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// --- Internals (caller holds mu) ---

func (s *Store) deferLocked(action DeferredAction) View {
	s.pending = &action
	s.logger.Debug("confirmation requested", "action", action, "current", s.current)
	return s.viewLocked()
}

func (s *Store) runLocked(ctx context.Context, action DeferredAction) (View, error) {
	switch action.Kind {
	case ActionCreate:
		return s.createLocked(ctx)
	case ActionSelect:
		if _, ok := s.notes[action.NoteID]; ok {
			s.openLocked(action.NoteID)
		}
		return s.viewLocked(), nil
	default:
		return s.viewLocked(), fmt.Errorf("unknown deferred action %d", int(action.Kind))
	}
}

func (s *Store) createLocked(ctx context.Context) (View, error) {
	id := formatNoteID(s.nextID)
	now := s.now()
	note := Note{
		ID:           id,
		Title:        UntitledTitle,
		DateCreated:  now,
		DateModified: now,
	}

	next := cloneNotes(s.notes)
	next[id] = note
	if err := s.persist(ctx, next, s.nextID+1); err != nil {
		s.logger.Error("create failed", "id", id, "error", err)
		return s.viewLocked(), err
	}
	s.notes = next
	s.nextID++
	s.openLocked(id)
	s.logger.Info("note created", "id", id)
	return s.viewLocked(), nil
}

func (s *Store) openLocked(id string) {
	n := s.notes[id]
	s.current = id
	s.draft = Draft{Title: n.Title, Content: n.Content}
	s.dirty = false
	s.status = ""
}

func (s *Store) discardLocked() {
	if n, ok := s.notes[s.current]; ok {
		s.draft = Draft{Title: n.Title, Content: n.Content}
	}
	s.dirty = false
	s.status = ""
}

func (s *Store) saveLocked(ctx context.Context, kind SaveKind) (bool, error) {
	note, ok := s.notes[s.current]
	if s.current == "" || !ok {
		return false, nil
	}

	title := strings.TrimSpace(s.draft.Title)
	if title == "" {
		title = UntitledTitle
	}
	now := s.now()
	if now.Before(note.DateCreated) {
		now = note.DateCreated
	}
	note.Title = title
	note.Content = s.draft.Content
	note.DateModified = now

	next := cloneNotes(s.notes)
	next[note.ID] = note
	if err := s.persist(ctx, next, s.nextID); err != nil {
		s.logger.Error("save failed", "id", note.ID, "autosave", kind == SaveAuto, "error", err)
		return false, err
	}
	s.notes = next
	s.draft.Title = title
	s.dirty = false
	s.status = statusText(kind, now)
	s.logger.Debug("note saved", "id", note.ID, "autosave", kind == SaveAuto)
	return true, nil
}

func statusText(kind SaveKind, at time.Time) string {
	stamp := at.Local().Format("15:04")
	if kind == SaveAuto {
		return "Auto-saved at " + stamp
	}
	return "Saved at " + stamp
}

func (s *Store) listLocked() []Note {
	out := make([]Note, 0, len(s.notes))
	for _, n := range s.notes {
		out = append(out, n)
	}
	SortByModified(out)
	return out
}

func (s *Store) viewLocked() View {
	v := View{
		Screen: ScreenWelcome,
		State:  StateClean,
		Draft:  s.draft,
		Dirty:  s.dirty,
		Query:  s.query,
		Status: s.status,
		Notes:  Filter(s.listLocked(), s.query),
	}
	if s.dirty {
		v.State = StateDirty
	}
	if s.pending != nil {
		p := *s.pending
		v.Pending = &p
		v.State = StatePendingConfirmation
	}
	if n, ok := s.notes[s.current]; ok {
		v.Current = &n
		v.Screen = ScreenEditor
		v.Stats = ComputeStats(s.draft.Content)
	}
	if len(v.Notes) == 0 {
		v.EmptyReason = EmptyNoNotes
		if s.query != "" {
			v.EmptyReason = EmptyNoMatches
		}
	}
	return v
}

// ids returns the stored ids in ascending order.
func (s *Store) ids() []string {
	out := make([]string, 0, len(s.notes))
	for id := range s.notes {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
