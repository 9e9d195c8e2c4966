package uploads

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Kritchanaxt/skinvision-ai-backend/internal/shared/config"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/shared/metrics"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/shared/storage/object"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/shared/util"
)

// Service contains business logic for uploads.
type Service struct {
	Store  object.Store
	Repo   Repo
	Config config.Config
}

// Upload validates the declared content type and size, then saves the file
// under a generated identifier. A rejected upload never touches disk.
func (s *Service) Upload(ctx context.Context, fileName, contentType string, size int64, r io.Reader) (Upload, error) {
	fileName, err := util.SanitizeFileName(fileName)
	if err != nil {
		return Upload{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if !s.Config.AllowsImageType(contentType) {
		metrics.UploadsRejectedTotal.WithLabelValues("content_type").Inc()
		return Upload{}, fmt.Errorf("%w: %s (allowed: %s)", ErrUnsupportedType, contentType, strings.Join(s.Config.AllowedImageTypes, ", "))
	}
	if size > s.Config.MaxUploadBytes {
		metrics.UploadsRejectedTotal.WithLabelValues("size").Inc()
		return Upload{}, fmt.Errorf("%w: maximum size is %d bytes", ErrTooLarge, s.Config.MaxUploadBytes)
	}

	uploadID := uuid.NewString()
	storageKey := fmt.Sprintf("%s.%s", uploadID, fileExtension(fileName))

	written, mimeType, err := s.Store.Save(ctx, storageKey, r)
	if err != nil {
		return Upload{}, fmt.Errorf("save upload: %w", err)
	}

	up := Upload{
		ID:         uploadID,
		FileName:   fileName,
		StorageKey: storageKey,
		MimeType:   mimeType,
		SizeBytes:  written,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, up); err != nil {
		return Upload{}, err
	}

	metrics.UploadsTotal.Inc()
	return up, nil
}

// List returns recent uploads.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Upload, error) {
	return s.Repo.List(ctx, limit, offset)
}

func fileExtension(fileName string) string {
	if idx := strings.LastIndex(fileName, "."); idx >= 0 && idx < len(fileName)-1 {
		ext := strings.ToLower(fileName[idx+1:])
		if ext != "" && !strings.ContainsAny(ext, `/\`) {
			return ext
		}
	}
	return "jpg"
}
