package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the internal state of the store as JSON",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store := mustOpenStore(context.Background())
		defer closeStore(store)

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(store.State()); err != nil {
			fatal("Error encoding state", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
}
