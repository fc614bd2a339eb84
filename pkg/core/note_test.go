package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeNormalize(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Fills Missing Pieces", func(t *testing.T) {
		env := Envelope{
			NextID: 0,
			Notes: map[string]Note{
				"note_4":  {Title: "no id", DateCreated: t0, DateModified: t0.Add(-time.Hour)},
				"custom":  {ID: "custom", DateCreated: t0, DateModified: t0},
				"note_x1": {ID: "note_x1", DateCreated: t0, DateModified: t0},
			},
		}
		require.NoError(t, env.normalize())
		assert.Equal(t, "note_4", env.Notes["note_4"].ID)
		assert.True(t, env.Notes["note_4"].DateModified.Equal(t0), "dateModified is clamped to dateCreated")
		assert.Equal(t, 5, env.NextID)
	})

	t.Run("Nil Notes", func(t *testing.T) {
		var env Envelope
		require.NoError(t, env.normalize())
		assert.NotNil(t, env.Notes)
		assert.Equal(t, 1, env.NextID)
	})

	t.Run("Mismatched Key", func(t *testing.T) {
		env := Envelope{Notes: map[string]Note{"note_1": {ID: "note_2"}}}
		assert.ErrorIs(t, env.normalize(), ErrMalformedData)
	})
}

func TestParseNoteID(t *testing.T) {
	seq, ok := parseNoteID("note_12")
	assert.True(t, ok)
	assert.Equal(t, 12, seq)

	for _, id := range []string{"note_", "note_0", "note_-3", "memo_1", "note_1a"} {
		_, ok := parseNoteID(id)
		assert.False(t, ok, id)
	}
	assert.Equal(t, "note_3", formatNoteID(3))
}

func TestNotePreview(t *testing.T) {
	n := Note{Content: "héllo wörld"}
	assert.Equal(t, "héllo wörld", n.Preview(100))
	assert.Equal(t, "héllo...", n.Preview(5))
	assert.Equal(t, "héllo wörld", n.Preview(0))
}

func TestComputeStats(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(""))
	assert.Equal(t, Stats{Words: 0, Characters: 3}, ComputeStats("   "))
	assert.Equal(t, Stats{Words: 3, Characters: 14}, ComputeStats(" one\ttwo\nthree"))
}

func TestFilter(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	notes := []Note{
		{ID: "note_1", Title: "Groceries", Content: "- Milk", DateModified: t0},
		{ID: "note_2", Title: "Ideas", Content: "milkshake bar", DateModified: t0.Add(time.Hour)},
		{ID: "note_3", Title: "Travel", Content: "passport", DateModified: t0.Add(time.Hour)},
	}

	got := Filter(notes, "MiLk")
	require.Len(t, got, 2)
	assert.Equal(t, "note_2", got[0].ID, "newest first")
	assert.Equal(t, "note_1", got[1].ID)

	all := Filter(notes, "")
	require.Len(t, all, 3)
	assert.Equal(t, []string{"note_2", "note_3", "note_1"}, []string{all[0].ID, all[1].ID, all[2].ID})

	assert.Equal(t, "note_1", notes[0].ID, "input is not reordered")
	assert.Empty(t, Filter(notes, "nothing"))
}

func TestFilter_OnlyMatchingNote(t *testing.T) {
	notes := []Note{
		{ID: "note_1", Title: "Shopping List", Content: "Groceries:\n- mILK\n- Bread"},
		{ID: "note_2", Title: "Welcome", Content: "Search through all your notes"},
	}
	got := Filter(notes, "milk")
	require.Len(t, got, 1)
	assert.Equal(t, "note_1", got[0].ID)
}

func TestDemoEnvelope(t *testing.T) {
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	env := DemoEnvelope(now)
	require.Len(t, env.Notes, 3)
	assert.Equal(t, 4, env.NextID)
	assert.True(t, env.Notes["note_3"].DateCreated.Equal(now.Add(-4*time.Hour)))
	require.NoError(t, env.normalize())
}

func TestParseResolution(t *testing.T) {
	for in, want := range map[string]Resolution{"s": SaveAndContinue, "save": SaveAndContinue, "d": Discard, "cancel": Cancel} {
		got, err := ParseResolution(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseResolution("maybe")
	assert.Error(t, err)
}
