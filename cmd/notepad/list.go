package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/notepad/pkg/core"
	"github.com/aretw0/notepad/pkg/search"
)

var (
	listJSON  bool
	listFuzzy bool
	listGlob  bool
)

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List notes, newest first",
	Long: `List prints every note, most recently modified first.
With a query, only notes whose title or content contains it are shown
(case-insensitive). --fuzzy and --glob switch to fuzzy matching or to a
glob pattern over titles.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if listFuzzy && listGlob {
			fatal("Error", fmt.Errorf("--fuzzy and --glob are mutually exclusive"))
		}
		query := strings.Join(args, " ")

		store := mustOpenStore(context.Background())
		defer closeStore(store)

		var notes []core.Note
		var reason core.EmptyReason
		switch {
		case listFuzzy:
			notes = search.Fuzzy(store.Notes(), query)
		case listGlob:
			pattern := query
			if pattern == "" {
				pattern = "*"
			}
			matched, err := search.Glob(store.Notes(), pattern)
			if err != nil {
				fatal("Error matching notes", err)
			}
			notes = matched
		default:
			view := store.SetSearchQuery(query)
			notes = view.Notes
			reason = view.EmptyReason
		}
		if len(notes) == 0 && reason == core.EmptyNone {
			reason = core.EmptyNoMatches
			if len(store.Notes()) == 0 {
				reason = core.EmptyNoNotes
			}
		}

		if listJSON {
			if notes == nil {
				notes = []core.Note{}
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		if len(notes) == 0 {
			fmt.Println(emptyListMessage(reason, query))
			return
		}
		printNoteList(os.Stdout, time.Now(), notes, "")
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listFuzzy, "fuzzy", false, "Fuzzy match the query against titles and content")
	listCmd.Flags().BoolVar(&listGlob, "glob", false, "Treat the query as a glob pattern over titles")
}
