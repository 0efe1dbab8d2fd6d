package model

// Post is one entry of the content feed. The store keeps posts
// newest-first; creation prepends and nothing updates or deletes.
// JSON field names match what the clinic frontend consumes.
type Post struct {
	ID       string  `json:"id" db:"id"`
	Text     string  `json:"texto" db:"texto"`
	FileURL  *string `json:"file_url" db:"file_url"`
	FileType *string `json:"file_type" db:"file_type"`
}

const (
	FileTypeImage = "image"
	FileTypeVideo = "video"
)
