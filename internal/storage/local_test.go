package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	t.Run("creates the directory", func(t *testing.T) {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("save and read back", func(t *testing.T) {
		require.NoError(t, store.Save("photo.jpg", strings.NewReader("jpeg-bytes")))

		b, err := os.ReadFile(filepath.Join(dir, "photo.jpg"))
		require.NoError(t, err)
		assert.Equal(t, "jpeg-bytes", string(b))
	})

	t.Run("same name overwrites silently", func(t *testing.T) {
		require.NoError(t, store.Save("photo.jpg", strings.NewReader("newer-bytes")))

		b, err := os.ReadFile(filepath.Join(dir, "photo.jpg"))
		require.NoError(t, err)
		assert.Equal(t, "newer-bytes", string(b))
	})

	t.Run("url is a relative uploads path", func(t *testing.T) {
		assert.Equal(t, "/uploads/photo.jpg", store.URL("photo.jpg"))
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, store.Delete("photo.jpg"))
		_, err := os.Stat(filepath.Join(dir, "photo.jpg"))
		assert.True(t, os.IsNotExist(err))

		assert.NoError(t, store.Delete("photo.jpg"))
	})
}
