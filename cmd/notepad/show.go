package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := mustOpenStore(context.Background())
		defer closeStore(store)

		note, err := store.Get(args[0])
		if err != nil {
			fatal("Error reading note", err)
		}
		printNote(os.Stdout, time.Now(), note)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
