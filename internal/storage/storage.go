package storage

import (
	"fmt"
	"io"
	"log/slog"

	cfg "github.com/clinicapires/backend/internal/config"
)

// Storage is the blob store holding uploaded post attachments.
type Storage interface {
	// Save stores a file under the given name. An existing file with the
	// same name is silently overwritten.
	Save(name string, file io.Reader) error

	// Delete removes a stored file
	Delete(name string) error

	// URL returns the public URL for accessing the file
	URL(name string) string
}

// New creates the blob store selected by configuration.
// "local" keeps uploads on disk and serves them from /uploads/;
// "s3" works with AWS S3, MinIO, DigitalOcean Spaces, Cloudflare R2, etc.
func New(c *cfg.Config) (Storage, error) {
	switch c.StorageDriver {
	case "local":
		slog.Info("initializing local storage", "dir", c.UploadDir)
		return NewLocalStorage(c.UploadDir)

	case "s3":
		slog.Info("initializing S3 storage",
			"bucket", c.S3Bucket,
			"region", c.S3Region,
			"endpoint", c.S3Endpoint,
		)
		return NewS3Storage(S3Config{
			Region:        c.S3Region,
			Bucket:        c.S3Bucket,
			AccessKey:     c.S3AccessKey,
			SecretKey:     c.S3SecretKey,
			Endpoint:      c.S3Endpoint,
			PresignExpiry: c.S3PresignExpiryPublic,
		})

	default:
		return nil, fmt.Errorf("unknown storage driver: %s (supported: local, s3)", c.StorageDriver)
	}
}
