package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aretw0/notepad/pkg/core"
)

const previewLength = 100

// relativeDate renders t relative to now the way the note list shows it.
func relativeDate(now, t time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}

	minutes := int(diff / time.Minute)
	hours := int(diff / time.Hour)
	days := int(diff / (24 * time.Hour))

	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return plural(minutes, "minute") + " ago"
	case hours < 24:
		return plural(hours, "hour") + " ago"
	case days < 7:
		return plural(days, "day") + " ago"
	default:
		return t.Local().Format("2006-01-02")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// oneLine flattens a preview so list rows stay on a single line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func printNoteList(w io.Writer, now time.Time, notes []core.Note, currentID string) {
	for _, n := range notes {
		marker := " "
		if n.ID == currentID {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-10s %-32s %s\n", marker, n.ID, n.Title, relativeDate(now, n.DateModified))
		if preview := oneLine(n.Preview(previewLength)); preview != "" {
			fmt.Fprintf(w, "             %s\n", preview)
		}
	}
}

func emptyListMessage(reason core.EmptyReason, query string) string {
	switch reason {
	case core.EmptyNoMatches:
		return fmt.Sprintf("No notes found matching %q", query)
	case core.EmptyNoNotes:
		return "No notes yet. Create one with 'new'."
	default:
		return ""
	}
}

func printNote(w io.Writer, now time.Time, n core.Note) {
	stats := core.ComputeStats(n.Content)
	fmt.Fprintf(w, "%s (%s)\n", n.Title, n.ID)
	fmt.Fprintf(w, "Created %s, modified %s\n", relativeDate(now, n.DateCreated), relativeDate(now, n.DateModified))
	fmt.Fprintf(w, "%d words, %d characters\n\n", stats.Words, stats.Characters)
	fmt.Fprintln(w, n.Content)
}
