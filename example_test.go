package notepad_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aretw0/notepad"
	"github.com/aretw0/notepad/pkg/core"
)

// Example_basic demonstrates how to open a store, write a note, and read it back.
func Example_basic() {
	ctx := context.Background()

	store, err := notepad.New(ctx, "", notepad.WithAdapter("memory"), notepad.WithSeed(false))
	if err != nil {
		log.Fatal(err)
	}

	view, err := store.Create(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := store.UpdateDraft(core.EditContent("Remember the milk")); err != nil {
		log.Fatal(err)
	}
	if _, err := store.Save(ctx, core.SaveManual); err != nil {
		log.Fatal(err)
	}

	note, err := store.Get(view.Current.ID)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s: %s (%s)\n", note.ID, note.Title, note.Content)
	// Output:
	// note_1: Untitled Note (Remember the milk)
}

// Example_confirmation shows the deferred action flow when switching away from unsaved edits.
func Example_confirmation() {
	ctx := context.Background()

	store, err := notepad.New(ctx, "", notepad.WithAdapter("memory"))
	if err != nil {
		log.Fatal(err)
	}

	if _, err := store.Select(ctx, "note_1"); err != nil {
		log.Fatal(err)
	}
	if _, err := store.UpdateDraft(core.EditTitle("Renamed")); err != nil {
		log.Fatal(err)
	}

	view, err := store.Create(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(view.State, view.Pending)

	if _, err := store.Create(ctx); errors.Is(err, core.ErrConfirmationPending) {
		fmt.Println("still waiting")
	}

	view, err = store.Resolve(ctx, core.Discard)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(view.State, view.Current.ID)
	// Output:
	// pending_confirmation create note
	// still waiting
	// clean note_4
}
