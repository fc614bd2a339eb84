package core

import "fmt"

// ActionKind tags a DeferredAction.
type ActionKind int

const (
	ActionCreate ActionKind = iota + 1
	ActionSelect
)

// DeferredAction is a navigation request captured while the open note is dirty.
// NoteID is only set for ActionSelect.
type DeferredAction struct {
	Kind   ActionKind `json:"kind"`
	NoteID string     `json:"note_id,omitempty"`
}

func (a DeferredAction) String() string {
	switch a.Kind {
	case ActionCreate:
		return "create note"
	case ActionSelect:
		return fmt.Sprintf("select %s", a.NoteID)
	default:
		return "unknown action"
	}
}

// Resolution answers a confirmation request.
type Resolution int

const (
	// SaveAndContinue saves the open note, then runs the deferred action.
	SaveAndContinue Resolution = iota + 1
	// Discard reverts the draft to its persisted values, then runs the deferred action.
	Discard
	// Cancel drops the deferred action and keeps the edits.
	Cancel
)

func (r Resolution) String() string {
	switch r {
	case SaveAndContinue:
		return "save-and-continue"
	case Discard:
		return "discard"
	case Cancel:
		return "cancel"
	default:
		return fmt.Sprintf("resolution(%d)", int(r))
	}
}

// ParseResolution maps the user-facing names (and their first letter) to a Resolution.
func ParseResolution(s string) (Resolution, error) {
	switch s {
	case "save", "s", "save-and-continue":
		return SaveAndContinue, nil
	case "discard", "d":
		return Discard, nil
	case "cancel", "c":
		return Cancel, nil
	}
	return 0, fmt.Errorf("unknown resolution %q", s)
}
