package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorageRoundtrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "session")
	storage, err := NewFileStorage(dir)
	require.NoError(t, err)

	require.NoError(t, storage.Set(KeyToken, "tok-abc"))

	got, ok := storage.Get(KeyToken)
	require.True(t, ok)
	assert.Equal(t, "tok-abc", got)

	// Survives a fresh storage over the same directory.
	reopened, err := NewFileStorage(dir)
	require.NoError(t, err)
	got, ok = reopened.Get(KeyToken)
	require.True(t, ok)
	assert.Equal(t, "tok-abc", got)
}

func TestFileStorageMissingKey(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	_, ok := storage.Get("absent")
	assert.False(t, ok)
}

func TestFileStorageRemove(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, storage.Set(KeyRole, "manager"))
	require.NoError(t, storage.Remove(KeyRole))

	_, ok := storage.Get(KeyRole)
	assert.False(t, ok)

	// Removing again is not an error.
	require.NoError(t, storage.Remove(KeyRole))
}

func TestFileStoragePermissions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "session")
	storage, err := NewFileStorage(dir)
	require.NoError(t, err)
	require.NoError(t, storage.Set(KeyToken, "tok-abc"))

	dirInfo, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	fileInfo, err := os.Stat(filepath.Join(dir, KeyToken))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fileInfo.Mode().Perm())
}

func TestFileStorageTrimsTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewFileStorage(dir)
	require.NoError(t, err)

	// Hand-edited files often gain a trailing newline.
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyToken), []byte("tok-abc\n"), 0o600))

	got, ok := storage.Get(KeyToken)
	require.True(t, ok)
	assert.Equal(t, "tok-abc", got)
}

func TestMemoryStorage(t *testing.T) {
	storage := NewMemoryStorage()

	_, ok := storage.Get(KeyUser)
	assert.False(t, ok)

	require.NoError(t, storage.Set(KeyUser, `{"email":"ada@dayflow.io"}`))
	got, ok := storage.Get(KeyUser)
	require.True(t, ok)
	assert.Equal(t, `{"email":"ada@dayflow.io"}`, got)

	require.NoError(t, storage.Remove(KeyUser))
	_, ok = storage.Get(KeyUser)
	assert.False(t, ok)
}
