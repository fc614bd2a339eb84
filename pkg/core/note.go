package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// UntitledTitle replaces empty or whitespace-only titles on save.
const UntitledTitle = "Untitled Note"

// noteIDPrefix is prepended to the envelope counter to build note ids.
const noteIDPrefix = "note_"

// Note is the central entity of the domain.
// ID and DateCreated never change after creation.
type Note struct {
	ID           string    `json:"id" yaml:"id"`
	Title        string    `json:"title" yaml:"title"`
	Content      string    `json:"content" yaml:"content"`
	DateCreated  time.Time `json:"dateCreated" yaml:"dateCreated"`
	DateModified time.Time `json:"dateModified" yaml:"dateModified"`
}

// Preview returns the first max runes of the content, suffixed with "..."
// when the content was cut.
func (n Note) Preview(max int) string {
	if max <= 0 || utf8.RuneCountInString(n.Content) <= max {
		return n.Content
	}
	runes := []rune(n.Content)
	return string(runes[:max]) + "..."
}

// Envelope is the persisted representation of the whole collection.
type Envelope struct {
	Notes  map[string]Note `json:"notes" yaml:"notes"`
	NextID int             `json:"nextNoteId" yaml:"nextNoteId"`
}

// normalize checks structural consistency and repairs what can be repaired
// without guessing: missing ids are taken from the map key, the counter is
// raised above every numeric id in use.
func (e *Envelope) normalize() error {
	if e.Notes == nil {
		e.Notes = make(map[string]Note)
	}
	if e.NextID < 1 {
		e.NextID = 1
	}

	for key, n := range e.Notes {
		if key == "" {
			return fmt.Errorf("%w: note with empty key", ErrMalformedData)
		}
		if n.ID == "" {
			n.ID = key
		}
		if n.ID != key {
			return fmt.Errorf("%w: note key %q does not match id %q", ErrMalformedData, key, n.ID)
		}
		if n.DateModified.Before(n.DateCreated) {
			n.DateModified = n.DateCreated
		}
		e.Notes[key] = n

		if seq, ok := parseNoteID(n.ID); ok && seq >= e.NextID {
			e.NextID = seq + 1
		}
	}
	return nil
}

func formatNoteID(seq int) string {
	return noteIDPrefix + strconv.Itoa(seq)
}

func parseNoteID(id string) (int, bool) {
	raw, ok := strings.CutPrefix(id, noteIDPrefix)
	if !ok {
		return 0, false
	}
	seq, err := strconv.Atoi(raw)
	if err != nil || seq < 1 {
		return 0, false
	}
	return seq, true
}

// Stats holds word and character counts of a text.
type Stats struct {
	Words      int `json:"words"`
	Characters int `json:"characters"`
}

// ComputeStats counts whitespace-separated words and runes.
func ComputeStats(content string) Stats {
	return Stats{
		Words:      len(strings.Fields(content)),
		Characters: utf8.RuneCountInString(content),
	}
}
