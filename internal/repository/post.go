package repository

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/clinicapires/backend/internal/model"
)

// PostRepository is the content store: an ordered whole-document sequence
// of posts, newest first. Same load-mutate-save contract as the credential
// store; there is no query or partial write support.
type PostRepository interface {
	Load() ([]model.Post, error)
	Save(posts []model.Post) error
}

type jsonPostRepository struct {
	path string
}

func NewJSONPostRepository(path string) PostRepository {
	return &jsonPostRepository{path: path}
}

// Load reads the whole posts document, falling back to an empty sequence
// when the file is missing or unparsable.
func (r *jsonPostRepository) Load() ([]model.Post, error) {
	posts := []model.Post{}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("posts document unreadable, using empty default", "path", r.path, "error", err)
		}
		return posts, nil
	}

	err = json.Unmarshal(data, &posts)
	if err != nil {
		slog.Warn("posts document corrupt, using empty default", "path", r.path, "error", err)
		return []model.Post{}, nil
	}

	return posts, nil
}

func (r *jsonPostRepository) Save(posts []model.Post) error {
	data, err := json.MarshalIndent(posts, "", "    ")
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(r.path), 0o755)
	if err != nil {
		return err
	}

	return os.WriteFile(r.path, data, 0o644)
}
