package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clinicapires/backend/internal/model"
)

// sqlPostRepository stores the feed in a table with an explicit position
// column so the newest-first document order survives the round trip.
type sqlPostRepository struct {
	db *sqlx.DB
}

func NewSQLPostRepository(db *sqlx.DB) PostRepository {
	return &sqlPostRepository{db: db}
}

func (r *sqlPostRepository) Load() ([]model.Post, error) {
	posts := []model.Post{}
	err := r.db.Select(&posts, `SELECT id, texto, file_url, file_type FROM posts ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}
	return posts, nil
}

func (r *sqlPostRepository) Save(posts []model.Post) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.Exec(`DELETE FROM posts`)
	if err != nil {
		return fmt.Errorf("failed to clear posts: %w", err)
	}

	for i, post := range posts {
		_, err = tx.Exec(
			`INSERT INTO posts (position, id, texto, file_url, file_type) VALUES ($1, $2, $3, $4, $5)`,
			i, post.ID, post.Text, post.FileURL, post.FileType,
		)
		if err != nil {
			return fmt.Errorf("failed to insert post: %w", err)
		}
	}

	return tx.Commit()
}
