package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Long:  `Delete permanently removes a note. It asks for confirmation unless --yes is given.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		ctx := context.Background()
		store := mustOpenStore(ctx)
		defer closeStore(store)

		note, err := store.Get(id)
		if err != nil {
			fatal("Error deleting note", err)
		}

		if !deleteYes && !askYesNo(cmd.InOrStdin(), os.Stdout, fmt.Sprintf("Delete %q? [y/N] ", note.Title)) {
			fmt.Println("Cancelled.")
			return
		}

		if _, err := store.Delete(ctx, id); err != nil {
			fatal("Error deleting note", err)
		}
		fmt.Printf("Note deleted: %s\n", id)
	},
}

// askYesNo prints prompt and reads one line. Only "y" and "yes" confirm.
func askYesNo(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return isYes(line)
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Do not ask for confirmation")
}
