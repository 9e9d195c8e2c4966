package analyses

import (
	"time"

	"github.com/Kritchanaxt/skinvision-ai-backend/internal/imaging"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/skin"
)

// FaceDetection is the face detection portion of an analysis result.
type FaceDetection struct {
	FaceDetected bool             `json:"face_detected"`
	FaceCount    int              `json:"face_count"`
	FaceBBox     *imaging.FaceBox `json:"face_bbox,omitempty"`
}

// Analysis is a complete skin analysis result.
type Analysis struct {
	ID                 string                   `json:"analysis_id"`
	UserID             string                   `json:"-"`
	Timestamp          time.Time                `json:"timestamp"`
	FaceDetection      FaceDetection            `json:"face_detection"`
	DetectedConditions []skin.DetectedCondition `json:"detected_conditions"`
	SkinHealthScore    float64                  `json:"skin_health_score"`
	ProcessingTime     float64                  `json:"processing_time"`
	ImageQuality       imaging.Quality          `json:"image_quality"`
}
