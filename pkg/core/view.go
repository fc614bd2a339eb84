package core

// State is the position of the Store in the save/navigate protocol.
type State string

const (
	StateClean               State = "clean"
	StateDirty               State = "dirty"
	StatePendingConfirmation State = "pending_confirmation"
)

// Screen tells the renderer which surface to show.
type Screen string

const (
	ScreenWelcome Screen = "welcome"
	ScreenEditor  Screen = "editor"
)

// EmptyReason explains an empty note list.
type EmptyReason string

const (
	EmptyNone      EmptyReason = ""
	EmptyNoNotes   EmptyReason = "no_notes"
	EmptyNoMatches EmptyReason = "no_matches"
)

// SaveKind distinguishes user saves from timer saves. It only affects the status text.
type SaveKind int

const (
	SaveManual SaveKind = iota
	SaveAuto
)

// Draft is the editor buffer of the open note.
type Draft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Edit carries a change to the draft. Nil fields are left untouched.
type Edit struct {
	Title   *string
	Content *string
}

// EditTitle builds an Edit that replaces the draft title.
func EditTitle(title string) Edit {
	return Edit{Title: &title}
}

// EditContent builds an Edit that replaces the draft content.
func EditContent(content string) Edit {
	return Edit{Content: &content}
}

func (e Edit) empty() bool {
	return e.Title == nil && e.Content == nil
}

// View is the state a renderer needs after an operation.
// Current holds the persisted note, Draft the in-editor values.
type View struct {
	Screen      Screen          `json:"screen"`
	State       State           `json:"state"`
	Current     *Note           `json:"current,omitempty"`
	Draft       Draft           `json:"draft"`
	Stats       Stats           `json:"stats"`
	Dirty       bool            `json:"dirty"`
	Pending     *DeferredAction `json:"pending,omitempty"`
	Notes       []Note          `json:"notes"`
	Query       string          `json:"query,omitempty"`
	EmptyReason EmptyReason     `json:"empty_reason,omitempty"`
	Status      string          `json:"status,omitempty"`
}

// NeedsConfirmation reports whether the renderer must ask the user to resolve a deferred action.
func (v View) NeedsConfirmation() bool {
	return v.Pending != nil
}
