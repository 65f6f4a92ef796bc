package storage

import (
	"strings"
	"testing"

	"github.com/autoexpert/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, maxSize int64) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(&config.StorageConfig{
		UploadDir:     t.TempDir(),
		MaxUploadSize: maxSize,
	})
	require.NoError(t, err)
	return store
}

func TestLocalStore_Save(t *testing.T) {
	store := newTestStore(t, 1024)

	stored, err := store.Save("photo front.jpg", strings.NewReader("jpeg bytes"))
	require.NoError(t, err)

	assert.Equal(t, "photo front.jpg", stored.Name)
	assert.Equal(t, int64(len("jpeg bytes")), stored.Size)
	assert.True(t, strings.HasSuffix(stored.Path, ".jpg"))
	assert.NotContains(t, stored.Path, "photo front")
}

func TestLocalStore_Save_TooLarge(t *testing.T) {
	store := newTestStore(t, 4)

	_, err := store.Save("big.pdf", strings.NewReader("more than four bytes"))
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestLocalStore_Save_SanitizesName(t *testing.T) {
	store := newTestStore(t, 1024)

	stored, err := store.Save("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "passwd", stored.Name)
}

func TestLocalStore_Remove(t *testing.T) {
	store := newTestStore(t, 1024)

	stored, err := store.Save("doc.pdf", strings.NewReader("content"))
	require.NoError(t, err)

	assert.NoError(t, store.Remove(stored.Path))
	assert.NoError(t, store.Remove(stored.Path), "removing a missing file is not an error")
}
