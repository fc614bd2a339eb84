package core

import "errors"

// Common errors.
var (
	// ErrNotFound reports a reference to a note id that is not in the collection.
	// Store operations treat it as a silent no-op; it is exported for adapters
	// and callers that look notes up directly.
	ErrNotFound = errors.New("note not found")

	// ErrStorageUnavailable wraps any failure of the blob store to read or write.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrMalformedData reports a stored envelope that cannot be decoded.
	ErrMalformedData = errors.New("malformed stored data")

	// ErrBlobNotFound is returned by BlobStore.Get when the key holds no data.
	ErrBlobNotFound = errors.New("blob not found")

	// ErrConfirmationPending rejects mutations while a deferred action awaits resolution.
	ErrConfirmationPending = errors.New("confirmation pending")

	// ErrNoPendingAction is returned by Resolve when nothing awaits confirmation.
	ErrNoPendingAction = errors.New("no pending action")

	// ErrUnsavedChanges is returned by BeforeExit while the open note is dirty.
	ErrUnsavedChanges = errors.New("you have unsaved changes")
)
