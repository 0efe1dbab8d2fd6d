package repository

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicapires/backend/internal/db"
	"github.com/clinicapires/backend/internal/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	database, err := db.Init("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))
	return database
}

func TestSQLUserRepository_RoundTrip(t *testing.T) {
	repo := NewSQLUserRepository(newTestDB(t))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	users := map[string]*model.User{
		"a@example.com": {PasswordHash: "hash-a"},
		"b@example.com": {
			PasswordHash:  "hash-b",
			RecoveryToken: strptr("12345678"),
			SessionToken:  strptr("session-b"),
		},
	}
	require.NoError(t, repo.Save(users))

	loaded, err = repo.Load()
	require.NoError(t, err)
	assert.Equal(t, users, loaded)
}

func TestSQLUserRepository_SaveReplacesWholeDocument(t *testing.T) {
	repo := NewSQLUserRepository(newTestDB(t))

	require.NoError(t, repo.Save(map[string]*model.User{
		"a@example.com": {PasswordHash: "hash-a"},
		"b@example.com": {PasswordHash: "hash-b"},
	}))
	require.NoError(t, repo.Save(map[string]*model.User{
		"a@example.com": {PasswordHash: "hash-a2"},
	}))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "hash-a2", loaded["a@example.com"].PasswordHash)
}

func TestSQLPostRepository_RoundTripPreservesOrder(t *testing.T) {
	repo := NewSQLPostRepository(newTestDB(t))

	posts := []model.Post{
		{ID: "3", Text: "newest", FileURL: strptr("/uploads/clip.mp4"), FileType: strptr(model.FileTypeVideo)},
		{ID: "2", Text: "middle"},
		{ID: "1", Text: "oldest"},
	}
	require.NoError(t, repo.Save(posts))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, posts, loaded)

	// replace-all keeps only what the caller handed over
	require.NoError(t, repo.Save(posts[:1]))
	loaded, err = repo.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "3", loaded[0].ID)
}
