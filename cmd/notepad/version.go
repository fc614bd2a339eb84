package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notepad"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of notepad",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("notepad version %s\n", notepad.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
