package uploads

import "time"

// UploadResponse is the outward-facing representation of an upload.
type UploadResponse struct {
	UploadID  string    `json:"upload_id"`
	Filename  string    `json:"filename"`
	FileSize  int64     `json:"file_size"`
	ImageURL  string    `json:"image_url"`
	Timestamp time.Time `json:"timestamp"`
}

func toResponse(up Upload) UploadResponse {
	return UploadResponse{
		UploadID:  up.ID,
		Filename:  up.StorageKey,
		FileSize:  up.SizeBytes,
		ImageURL:  "/uploads/" + up.StorageKey,
		Timestamp: up.CreatedAt,
	}
}
