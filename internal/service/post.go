package service

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/clinicapires/backend/internal/model"
	"github.com/clinicapires/backend/internal/repository"
	"github.com/clinicapires/backend/internal/storage"
)

type PostService struct {
	posts   repository.PostRepository
	storage storage.Storage
}

func NewPostService(posts repository.PostRepository, storage storage.Storage) *PostService {
	return &PostService{
		posts:   posts,
		storage: storage,
	}
}

// List returns the full stored feed, newest first. No authentication.
func (s *PostService) List() ([]model.Post, error) {
	return s.posts.Load()
}

// Create prepends a new post to the feed. An attached file is stored in the
// blob store under a sanitized name (a name collision silently overwrites)
// and its type is derived from the extension.
func (s *PostService) Create(text string, file multipart.File, header *multipart.FileHeader) (*model.Post, error) {
	post := model.Post{
		ID:   uuid.New().String(),
		Text: text,
	}

	if file != nil && header != nil {
		filename := sanitizeFilename(header.Filename)

		err := s.storage.Save(filename, file)
		if err != nil {
			return nil, fmt.Errorf("failed to store attachment: %w", err)
		}

		url := s.storage.URL(filename)
		fileType := fileTypeForName(filename)
		post.FileURL = &url
		post.FileType = &fileType
	}

	posts, err := s.posts.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	posts = append([]model.Post{post}, posts...)
	err = s.posts.Save(posts)
	if err != nil {
		return nil, fmt.Errorf("failed to persist posts: %w", err)
	}

	slog.Info("post created", "post_id", post.ID, "has_file", post.FileURL != nil)
	return &post, nil
}

// fileTypeForName classifies an attachment by extension: mp4 and webm are
// video, any other supplied file counts as an image.
func fileTypeForName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mp4", ".webm":
		return model.FileTypeVideo
	default:
		return model.FileTypeImage
	}
}

// sanitizeFilename strips path components and keeps only ASCII letters,
// digits, dots, dashes and underscores, turning spaces into underscores.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}

	clean := strings.Trim(b.String(), "._")
	if clean == "" {
		clean = "file"
	}
	return clean
}
