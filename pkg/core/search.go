package core

import (
	"slices"
	"strings"
)

// Filter returns the notes whose title or content contains query,
// case-insensitively, newest modification first. An empty query keeps every
// note. The input slice is not modified.
func Filter(notes []Note, query string) []Note {
	q := strings.ToLower(query)
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if q == "" ||
			strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Content), q) {
			out = append(out, n)
		}
	}
	SortByModified(out)
	return out
}

// SortByModified orders notes by DateModified descending; equal timestamps
// fall back to id order so the listing is stable.
func SortByModified(notes []Note) {
	slices.SortStableFunc(notes, func(a, b Note) int {
		if c := b.DateModified.Compare(a.DateModified); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}
