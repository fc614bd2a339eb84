package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aretw0/notepad/pkg/core"
)

var (
	writeTitle   string
	writeContent string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a note",
	Long: `New creates a note and saves it immediately. An empty title becomes
"Untitled Note". Use --content - to read the content from stdin.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store := mustOpenStore(ctx)
		defer closeStore(store)

		view, err := store.Create(ctx)
		if err != nil {
			fatal("Error creating note", err)
		}
		id := view.Current.ID

		if err := applyEdit(ctx, store, cmd, editFromFlags(cmd)); err != nil {
			fatal("Error saving note", err)
		}
		fmt.Printf("Note created: %s\n", id)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Change the title or content of a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		edit := editFromFlags(cmd)
		if edit.Title == nil && edit.Content == nil {
			fatal("Error", fmt.Errorf("nothing to change: pass --title and/or --content"))
		}

		ctx := context.Background()
		store := mustOpenStore(ctx)
		defer closeStore(store)

		id := args[0]
		if _, err := store.Get(id); err != nil {
			fatal("Error editing note", err)
		}
		if _, err := store.Select(ctx, id); err != nil {
			fatal("Error opening note", err)
		}
		if err := applyEdit(ctx, store, cmd, edit); err != nil {
			fatal("Error saving note", err)
		}
		fmt.Printf("Note saved: %s\n", id)
	},
}

func editFromFlags(cmd *cobra.Command) core.Edit {
	var edit core.Edit
	if cmd.Flags().Changed("title") {
		title := writeTitle
		edit.Title = &title
	}
	if cmd.Flags().Changed("content") {
		content := writeContent
		edit.Content = &content
	}
	return edit
}

// applyEdit writes edit into the open note and saves it.
func applyEdit(ctx context.Context, store *core.Store, cmd *cobra.Command, edit core.Edit) error {
	if edit.Content != nil && *edit.Content == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		content := string(data)
		edit.Content = &content
	}
	if edit.Title == nil && edit.Content == nil {
		return nil
	}
	if _, err := store.UpdateDraft(edit); err != nil {
		return err
	}
	_, err := store.Save(ctx, core.SaveManual)
	return err
}

func init() {
	for _, cmd := range []*cobra.Command{newCmd, editCmd} {
		rootCmd.AddCommand(cmd)
		cmd.Flags().StringVarP(&writeTitle, "title", "t", "", "Note title")
		cmd.Flags().StringVarP(&writeContent, "content", "c", "", "Note content (- reads stdin)")
	}
}
