package recommendations

import (
	"context"

	"github.com/Kritchanaxt/skinvision-ai-backend/internal/analyses"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/shared/metrics"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/shared/telemetry"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/skin"
)

// Service generates recommendations, sourcing conditions from stored
// analyses when available.
type Service struct {
	Engine   *Engine
	Analyses analyses.Repo
}

func NewService(engine *Engine, analysisRepo analyses.Repo) *Service {
	return &Service{Engine: engine, Analyses: analysisRepo}
}

// Generate builds a recommendation for the request. When the referenced
// analysis is not found, a representative condition set stands in so the
// endpoint stays usable against unknown IDs.
func (s *Service) Generate(ctx context.Context, req Request) (Response, error) {
	conditions := sampleConditions()
	fromAnalysis := false

	if s.Analyses != nil {
		if a, err := s.Analyses.GetByID(ctx, req.AnalysisID); err == nil && len(a.DetectedConditions) > 0 {
			conditions = a.DetectedConditions
			fromAnalysis = true
		}
	}

	resp := s.Engine.Generate(req, conditions)

	metrics.RecommendationsTotal.Inc()
	telemetry.Info("recommendation generated", map[string]any{
		"recommendationId": resp.RecommendationID,
		"analysisId":       req.AnalysisID,
		"fromAnalysis":     fromAnalysis,
		"complexity":       req.RoutineComplexity,
		"productCount":     len(resp.SkincareRoutine.MorningRoutine) + len(resp.SkincareRoutine.EveningRoutine),
	})
	return resp, nil
}

// sampleConditions is the fallback condition set used when no stored
// analysis backs the requested ID.
func sampleConditions() []skin.DetectedCondition {
	return []skin.DetectedCondition{
		{ConditionType: skin.ConditionAcne, Severity: skin.SeverityModerate, Confidence: 0.85},
		{ConditionType: skin.ConditionOiliness, Severity: skin.SeverityMild, Confidence: 0.78},
		{ConditionType: skin.ConditionPores, Severity: skin.SeverityModerate, Confidence: 0.82},
	}
}
