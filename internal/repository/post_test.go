package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicapires/backend/internal/model"
)

func TestJSONPostRepository_Load(t *testing.T) {
	t.Run("missing file loads as empty sequence", func(t *testing.T) {
		repo := NewJSONPostRepository(filepath.Join(t.TempDir(), "posts.json"))

		posts, err := repo.Load()
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("corrupt file loads as empty sequence", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "posts.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"id":`), 0o644))
		repo := NewJSONPostRepository(path)

		posts, err := repo.Load()
		require.NoError(t, err)
		assert.Empty(t, posts)
	})
}

func TestJSONPostRepository_RoundTripPreservesOrder(t *testing.T) {
	repo := NewJSONPostRepository(filepath.Join(t.TempDir(), "posts.json"))

	posts := []model.Post{
		{ID: "3", Text: "newest", FileURL: strptr("/uploads/clip.mp4"), FileType: strptr(model.FileTypeVideo)},
		{ID: "2", Text: "middle"},
		{ID: "1", Text: "oldest"},
	}
	require.NoError(t, repo.Save(posts))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, posts, loaded)
}
