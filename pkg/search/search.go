// Package search provides the optional list filters of the CLI: fuzzy
// matching over titles and content, and glob patterns over titles.
//
// The store's own search is a plain case-insensitive substring filter
// (see core.Filter); these are extra lookups layered on top of it.
package search

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sahilm/fuzzy"

	"github.com/aretw0/notepad/pkg/core"
)

// Fuzzy returns the notes whose title or content fuzzy-matches query, best
// match first. Ties keep the input order. An empty query returns notes as-is.
func Fuzzy(notes []core.Note, query string) []core.Note {
	if strings.TrimSpace(query) == "" {
		return notes
	}

	haystack := make([]string, len(notes))
	for i, n := range notes {
		haystack[i] = searchString(n)
	}

	matches := fuzzy.Find(query, haystack)
	out := make([]core.Note, 0, len(matches))
	for _, match := range matches {
		out = append(out, notes[match.Index])
	}
	return out
}

// Glob returns the notes whose title matches pattern. Matching is
// case-insensitive and supports doublestar syntax ("*", "?", "[a-z]", "{a,b}").
// Order is preserved.
func Glob(notes []core.Note, pattern string) ([]core.Note, error) {
	pattern = strings.ToLower(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	var out []core.Note
	for _, n := range notes {
		ok, err := doublestar.Match(pattern, strings.ToLower(n.Title))
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", pattern, err)
		}
		if ok {
			out = append(out, n)
		}
	}
	return out, nil
}

func searchString(n core.Note) string {
	return n.Title + " " + strings.ReplaceAll(n.Content, "\n", " ")
}
