package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "bustrip.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestSetGetDelete(t *testing.T) {
	s, _ := openTemp(t)
	ctx := context.Background()

	_, err := s.GetItem(ctx, KeyHasOnboarded)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.SetItem(ctx, KeyHasOnboarded, "true"))
	v, err := s.GetItem(ctx, KeyHasOnboarded)
	require.NoError(t, err)
	assert.Equal(t, "true", v)

	require.NoError(t, s.SetItem(ctx, KeyHasOnboarded, "false"))
	v, err = s.GetItem(ctx, KeyHasOnboarded)
	require.NoError(t, err)
	assert.Equal(t, "false", v)

	require.NoError(t, s.DeleteItem(ctx, KeyHasOnboarded))
	require.NoError(t, s.DeleteItem(ctx, KeyHasOnboarded))
	_, err = s.GetItem(ctx, KeyHasOnboarded)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValuesSurviveReopen(t *testing.T) {
	s, path := openTemp(t)
	ctx := context.Background()
	require.NoError(t, s.SetItem(ctx, KeyToken, "abc"))
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, err := reopened.GetItem(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
}
