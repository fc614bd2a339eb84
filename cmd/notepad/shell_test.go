package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notepad/pkg/adapters/memory"
	"github.com/aretw0/notepad/pkg/codec"
	"github.com/aretw0/notepad/pkg/core"
)

func runShell(t *testing.T, script ...string) (*core.Store, string) {
	t.Helper()
	ctx := context.Background()
	store, err := core.NewStore(ctx, core.Config{Blob: memory.New(), Codec: codec.JSON{}})
	require.NoError(t, err)

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(script, "\n") + "\n")
	require.NoError(t, newShell(store, in, &out).run(ctx))
	return store, out.String()
}

func TestShell_DiscardThenCreate(t *testing.T) {
	store, out := runShell(t,
		"open note_1",
		"title Changed",
		"new",
		"d",
		"quit",
	)

	assert.Contains(t, out, "You have unsaved changes (create note)")
	assert.Contains(t, out, "== Untitled Note (note_4) ==")

	note, err := store.Get("note_1")
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Notepad!", note.Title)
	assert.Equal(t, core.StateClean, store.View().State)
}

func TestShell_SaveAndContinue(t *testing.T) {
	store, out := runShell(t,
		"open note_2",
		"write hello",
		"open note_3",
		"s",
		"quit",
	)

	assert.Contains(t, out, "Unsaved changes")
	note, err := store.Get("note_2")
	require.NoError(t, err)
	assert.Equal(t, "hello", note.Content)

	v := store.View()
	require.NotNil(t, v.Current)
	assert.Equal(t, "note_3", v.Current.ID)
	assert.False(t, v.Dirty)
}

func TestShell_CancelKeepsEditsAndQuitAsks(t *testing.T) {
	store, out := runShell(t,
		"open note_1",
		"title Draft title",
		"new",
		"maybe",
		"c",
		"quit",
		"y",
	)

	assert.Contains(t, out, "Please answer save, discard or cancel.")
	assert.Contains(t, out, "Cancelled. Still editing note_1.")
	assert.Contains(t, out, "Quit anyway?")

	v := store.View()
	assert.True(t, v.Dirty)
	assert.Equal(t, "Draft title", v.Draft.Title)
	assert.Len(t, store.Notes(), 3, "create was cancelled")
}

func TestShell_QuitDeclined(t *testing.T) {
	_, out := runShell(t,
		"open note_1",
		"append one more line",
		"quit",
		"n",
		"save",
		"quit",
	)

	assert.Contains(t, out, "Saved at")
	assert.Equal(t, 1, strings.Count(out, "Quit anyway?"))
}

func TestShell_Append(t *testing.T) {
	store, _ := runShell(t,
		"new",
		"append first",
		"append second",
		"save",
		"quit",
	)

	note, err := store.Get("note_4")
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond", note.Content)
	assert.Equal(t, core.UntitledTitle, note.Title)
}

func TestShell_Delete(t *testing.T) {
	store, out := runShell(t,
		"delete note_2",
		"n",
		"delete note_3",
		"yes",
		"quit",
	)

	assert.Contains(t, out, `Delete "Shopping List"? [y/N]`)
	assert.Contains(t, out, "Deleted note_3.")
	_, err := store.Get("note_2")
	assert.NoError(t, err)
	_, err = store.Get("note_3")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestShell_Search(t *testing.T) {
	_, out := runShell(t,
		"search zzz",
		"search MILK",
		"quit",
	)

	assert.Contains(t, out, `No notes found matching "zzz"`)
	assert.Contains(t, out, "note_2")
}

func TestShell_Errors(t *testing.T) {
	_, out := runShell(t,
		"title nothing open",
		"open note_99",
		"frobnicate",
		"quit",
	)

	assert.Contains(t, out, "Error: no note is open")
	assert.Contains(t, out, "Error: note not found")
	assert.Contains(t, out, `unknown command "frobnicate"`)
}

func TestShell_EndOfInputWarnsAboutUnsavedChanges(t *testing.T) {
	store, out := runShell(t,
		"open note_1",
		"write lost",
	)

	assert.Contains(t, out, "you have unsaved changes. They were not saved.")
	note, err := store.Get("note_1")
	require.NoError(t, err)
	assert.NotEqual(t, "lost", note.Content)
}

type exitStub struct{ err error }

func (e exitStub) BeforeExit() error { return e.err }

func TestExitGuard(t *testing.T) {
	t.Run("Clean quits at once", func(t *testing.T) {
		g := &exitGuard{store: exitStub{}}
		quit, _ := g.interrupt()
		assert.True(t, quit)
	})

	t.Run("Dirty needs a second interrupt", func(t *testing.T) {
		g := &exitGuard{store: exitStub{err: core.ErrUnsavedChanges}}
		quit, msg := g.interrupt()
		assert.False(t, quit)
		assert.Contains(t, msg, "Ctrl-C again")

		quit, _ = g.interrupt()
		assert.True(t, quit)
	})
}
