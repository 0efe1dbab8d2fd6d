package repository

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/clinicapires/backend/internal/model"
)

// UserRepository is the credential store: a whole-document mapping from
// email to credential record. Every caller loads the full mapping, mutates
// it in memory, and writes it back; the last writer wins.
type UserRepository interface {
	Load() (map[string]*model.User, error)
	Save(users map[string]*model.User) error
}

type jsonUserRepository struct {
	path string
}

func NewJSONUserRepository(path string) UserRepository {
	return &jsonUserRepository{path: path}
}

// Load reads the whole users document. A missing or unparsable file is a
// recoverable default: it loads as an empty mapping and is never surfaced
// to the caller.
func (r *jsonUserRepository) Load() (map[string]*model.User, error) {
	users := map[string]*model.User{}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("users document unreadable, using empty default", "path", r.path, "error", err)
		}
		return users, nil
	}

	err = json.Unmarshal(data, &users)
	if err != nil {
		slog.Warn("users document corrupt, using empty default", "path", r.path, "error", err)
		return map[string]*model.User{}, nil
	}

	return users, nil
}

func (r *jsonUserRepository) Save(users map[string]*model.User) error {
	data, err := json.MarshalIndent(users, "", "    ")
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(r.path), 0o755)
	if err != nil {
		return err
	}

	return os.WriteFile(r.path, data, 0o644)
}
