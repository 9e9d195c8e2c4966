package uploads

import "context"

// Repo defines persistence operations for uploads.
type Repo interface {
	Create(ctx context.Context, up Upload) error
	GetByID(ctx context.Context, uploadID string) (Upload, error)
	List(ctx context.Context, limit, offset int) ([]Upload, error)
}
