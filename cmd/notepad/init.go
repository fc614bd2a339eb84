package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/notepad"
	"github.com/aretw0/notepad/internal/platform"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a project-local notepad in the current directory",
	Long: `Init creates a .notepad directory in the current directory. Commands run
below it use that directory instead of the user data directory.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fatal("Failed to get CWD", err)
		}

		dir := filepath.Join(cwd, platform.MarkerDir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			fatal("Failed to create notepad directory", err)
		}

		store, err := notepad.New(context.Background(), dir, storeOptions(nil)...)
		if err != nil {
			fatal("Failed to initialize notepad", err)
		}
		closeStore(store)

		fmt.Println("Initialized notepad in", dir)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
