// Package notepad is the Composition Root for the notepad application.
//
// It connects the note store (Domain Layer) with the blob store adapters
// (Persistence Layer) using the Hexagonal Architecture pattern.
//
// The store keeps a collection of plain-text notes, tracks unsaved edits of
// the open note, and asks for confirmation before an action would discard
// them. The whole collection is persisted as a single envelope under one
// key, so any byte-addressed medium can hold it.
//
// Features:
//
//   - **Confirmation Protocol**: creating or switching notes with unsaved edits is deferred until the caller resolves it.
//   - **Pluggable Storage**: filesystem (default), SQLite, bbolt and in-memory adapters behind `core.BlobStore`.
//   - **Codecs**: JSON (compatible with the browser layout) or YAML.
//   - **Autosave**: the store exposes a `Tick` hook driven by a lifecycle ticker.
//   - **Recovery**: unreadable data is backed up under a new key instead of being overwritten.
//
// Usage:
//
//	store, err := notepad.New(ctx, "./notes",
//		notepad.WithAdapter("fs"),
//		notepad.WithLogger(logger),
//	)
//
//	view, err := store.Create(ctx)
//	view, err = store.UpdateDraft(core.EditTitle("Groceries"))
//	view, err = store.Save(ctx, core.SaveManual)
package notepad
