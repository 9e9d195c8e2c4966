package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Kritchanaxt/skinvision-ai-backend/internal/analyses"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/health"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/recommendations"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/shared/config"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/shared/server/middleware"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/shared/server/respond"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/uploads"
)

// RouterDeps carries the handlers wired into the router.
type RouterDeps struct {
	Config                config.Config
	UploadHandler         *uploads.Handler
	AnalysisHandler       *analyses.Handler
	RecommendationHandler *recommendations.Handler
	HealthHandler         *health.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigins),
	)

	r.GET("/", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{
			"message":     "Welcome to SkinVision AI Backend",
			"description": "AI-based Facial Skin Analysis for Personalized Skincare Recommendation",
			"version":     "1.0.0",
			"health":      "/api/v1/health",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Uploaded images are served back for client preview.
	r.Static("/uploads", deps.Config.UploadDir)

	api := r.Group("/api/v1")
	deps.HealthHandler.RegisterRoutes(api)
	deps.UploadHandler.RegisterRoutes(api)
	deps.AnalysisHandler.RegisterRoutes(api)
	deps.RecommendationHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
