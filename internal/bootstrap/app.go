// Package bootstrap assembles the application dependency graph.
package bootstrap

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kritchanaxt/skinvision-ai-backend/internal/analyses"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/health"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/imaging"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/recommendations"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/shared/config"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/shared/server"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/shared/storage/object"
	localstore "github.com/Kritchanaxt/skinvision-ai-backend/internal/shared/storage/object/local"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/shared/telemetry"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/skin"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/uploads"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	Store  object.Store

	UploadsRepo  uploads.Repo
	AnalysesRepo analyses.Repo

	UploadService         *uploads.Service
	AnalysisService       *analyses.Service
	RecommendationEngine  *recommendations.Engine
	RecommendationService *recommendations.Service

	UploadHandler         *uploads.Handler
	AnalysisHandler       *analyses.Handler
	RecommendationHandler *recommendations.Handler
	HealthHandler         *health.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", cfg.UploadDir, err)
	}
	store := localstore.New(cfg.UploadDir)

	detector := buildDetector(cfg)
	conditions := parseConditions(cfg.SkinConditions)
	predictor := analyses.NewRandomPredictor(
		conditions,
		cfg.ModelConfidenceThreshold,
		rand.NewSource(time.Now().UnixNano()),
	)

	engine, err := recommendations.NewEngine(cfg.WeeklyDoubleListing)
	if err != nil {
		return nil, err
	}

	uploadRepo := uploads.NewMemoryRepo()
	analysisRepo := analyses.NewMemoryRepo()

	uploadSvc := &uploads.Service{Store: store, Repo: uploadRepo, Config: cfg}
	analysisSvc := &analyses.Service{
		Repo:      analysisRepo,
		Store:     store,
		Detector:  detector,
		Predictor: predictor,
	}
	recSvc := recommendations.NewService(engine, analysisRepo)

	app := &App{
		Config:                cfg,
		Store:                 store,
		UploadsRepo:           uploadRepo,
		AnalysesRepo:          analysisRepo,
		UploadService:         uploadSvc,
		AnalysisService:       analysisSvc,
		RecommendationEngine:  engine,
		RecommendationService: recSvc,
		UploadHandler:         uploads.NewHandler(uploadSvc),
		AnalysisHandler:       analyses.NewHandler(analysisSvc, cfg.SkinConditions),
		RecommendationHandler: recommendations.NewHandler(recSvc),
		HealthHandler:         health.NewHandler(),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:                cfg,
		UploadHandler:         app.UploadHandler,
		AnalysisHandler:       app.AnalysisHandler,
		RecommendationHandler: app.RecommendationHandler,
		HealthHandler:         app.HealthHandler,
	})

	return app, nil
}

// buildDetector loads the face cascade, falling back to the placeholder
// detector when the model file is unavailable. The fallback keeps local
// development working without the cascade asset.
func buildDetector(cfg config.Config) imaging.Detector {
	detector, err := imaging.NewPigoDetector(cfg.FaceCascadeFile, cfg.FaceDetectionConfidence)
	if err != nil {
		telemetry.Error("face cascade unavailable, using placeholder detector", map[string]any{
			"cascadeFile": cfg.FaceCascadeFile,
			"error":       err.Error(),
		})
		return imaging.PlaceholderDetector{}
	}
	return detector
}

func parseConditions(raw []string) []skin.ConditionType {
	var conditions []skin.ConditionType
	for _, r := range raw {
		if cond, ok := skin.ParseCondition(r); ok {
			conditions = append(conditions, cond)
		}
	}
	if len(conditions) == 0 {
		conditions = skin.AllConditions()
	}
	return conditions
}
