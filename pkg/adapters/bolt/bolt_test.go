package bolt_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notepad/pkg/adapters/bolt"
	"github.com/aretw0/notepad/pkg/core"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "notes.db")

	s, err := bolt.New(path)
	require.NoError(t, err)

	_, err = s.Get(ctx, "notepad-notes")
	assert.ErrorIs(t, err, core.ErrBlobNotFound)

	require.NoError(t, s.Put(ctx, "notepad-notes", []byte("v1")))
	require.NoError(t, s.Put(ctx, "notepad-notes", []byte("v2")))
	got, err := s.Get(ctx, "notepad-notes")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(got))

	require.NoError(t, s.Close())

	reopened, err := bolt.New(path)
	require.NoError(t, err)
	defer reopened.Close()
	got, err = reopened.Get(ctx, "notepad-notes")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(got))
}

func TestNew_RequiresPath(t *testing.T) {
	_, err := bolt.New("  ")
	assert.Error(t, err)
}
