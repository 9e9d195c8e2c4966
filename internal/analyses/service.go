package analyses

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/Kritchanaxt/skinvision-ai-backend/internal/imaging"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/shared/metrics"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/shared/storage/object"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/shared/telemetry"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/skin"
)

// Service contains business logic for skin analyses.
type Service struct {
	Repo      Repo
	Store     object.Store
	Detector  imaging.Detector
	Predictor ConditionPredictor
}

// AnalyzeInput carries the parameters of an analysis request.
type AnalyzeInput struct {
	UploadID string
	UserID   string
	Zones    []skin.Zone
	Detailed bool
}

// Analyze locates the uploaded image, runs face detection and the
// condition predictor, and stores the aggregated result.
func (s *Service) Analyze(ctx context.Context, in AnalyzeInput) (Analysis, error) {
	start := time.Now()

	if in.UploadID == "" {
		return Analysis{}, fmt.Errorf("upload id is required")
	}
	zones := in.Zones
	if len(zones) == 0 {
		zones = []skin.Zone{skin.ZoneOverall}
	}

	storageKey, err := s.Store.FindByPrefix(ctx, in.UploadID)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Analysis{}, fmt.Errorf("upload %s: %w", in.UploadID, ErrNotFound)
		}
		return Analysis{}, fmt.Errorf("locate upload: %w", err)
	}

	f, err := s.Store.Open(ctx, storageKey)
	if err != nil {
		return Analysis{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("failed").Inc()
		return Analysis{}, fmt.Errorf("process image: %w", err)
	}
	img = imaging.Preprocess(img)

	face, err := s.Detector.Detect(img)
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("failed").Inc()
		return Analysis{}, fmt.Errorf("detect face: %w", err)
	}
	if !face.Detected {
		metrics.AnalysesTotal.WithLabelValues("no_face").Inc()
		return Analysis{}, ErrNoFace
	}

	bounds := img.Bounds()
	var conditions []skin.DetectedCondition
	if in.Detailed {
		conditions = s.Predictor.PredictDetailed(zones, bounds.Dx(), bounds.Dy())
	} else {
		conditions = s.Predictor.PredictBasic(zones)
	}

	analysis := Analysis{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		Timestamp: time.Now().UTC(),
		FaceDetection: FaceDetection{
			FaceDetected: true,
			FaceCount:    face.Count,
			FaceBBox:     face.Box,
		},
		DetectedConditions: conditions,
		SkinHealthScore:    HealthScore(conditions),
		ProcessingTime:     time.Since(start).Seconds(),
		ImageQuality:       imaging.AnalyzeQuality(img),
	}

	if err := s.Repo.Create(ctx, analysis); err != nil {
		metrics.AnalysesTotal.WithLabelValues("failed").Inc()
		return Analysis{}, err
	}

	metrics.AnalysesTotal.WithLabelValues("completed").Inc()
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	telemetry.Info("analysis.complete", map[string]any{
		"analysis_id":  analysis.ID,
		"upload_id":    in.UploadID,
		"conditions":   len(conditions),
		"health_score": analysis.SkinHealthScore,
		"detailed":     in.Detailed,
	})

	return analysis, nil
}

// Get returns a stored analysis by ID.
func (s *Service) Get(ctx context.Context, analysisID string) (Analysis, error) {
	if analysisID == "" {
		return Analysis{}, fmt.Errorf("analysis id is required")
	}
	return s.Repo.GetByID(ctx, analysisID)
}
