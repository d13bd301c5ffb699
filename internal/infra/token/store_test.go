package token

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestStore_roundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	require.NoError(t, s.Save("pk_12345"))

	got, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "pk_12345", got)

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_missing(t *testing.T) {
	s := NewStore(t.TempDir())

	_, err := s.Token()

	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func TestStore_clear(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.Save("pk_12345"))

	require.NoError(t, s.Clear())

	_, err := s.Token()
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)

	// Clearing twice is not an error.
	require.NoError(t, s.Clear())
}

func TestStore_trimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	require.NoError(t, os.WriteFile(s.Path(), []byte("  pk_abc \n"), 0o600))

	got, err := s.Token()

	require.NoError(t, err)
	assert.Equal(t, "pk_abc", got)
}
