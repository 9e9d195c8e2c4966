package uploads

import "time"

// Upload represents an image accepted for analysis.
type Upload struct {
	ID         string
	FileName   string
	StorageKey string
	MimeType   string
	SizeBytes  int64
	CreatedAt  time.Time
}
