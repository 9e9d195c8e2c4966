package recommendations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kritchanaxt/skinvision-ai-backend/internal/shared/server/respond"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/skin"
)

// Handler wires HTTP handlers to the recommendation service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches recommendation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommend", h.recommend)
	rg.GET("/recommend/:analysis_id", h.recommendByAnalysis)
	rg.GET("/products/categories", h.productCategories)
	rg.GET("/products/ingredients", h.activeIngredients)
	rg.GET("/routines/templates", h.routineTemplates)
	rg.GET("/advice/general", h.generalAdvice)
}

type recommendRequest struct {
	AnalysisID        string         `json:"analysis_id" binding:"required"`
	UserProfile       map[string]any `json:"user_profile"`
	BudgetPreference  string         `json:"budget_preference"`
	RoutineComplexity string         `json:"routine_complexity"`
	FocusAreas        []string       `json:"focus_areas"`
}

func (h *Handler) recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body: "+err.Error(), nil)
		return
	}
	h.generate(c, req)
}

func (h *Handler) recommendByAnalysis(c *gin.Context) {
	h.generate(c, recommendRequest{
		AnalysisID:        c.Param("analysis_id"),
		BudgetPreference:  c.Query("budget"),
		RoutineComplexity: c.DefaultQuery("complexity", "beginner"),
	})
}

func (h *Handler) generate(c *gin.Context, req recommendRequest) {
	if req.RoutineComplexity == "" {
		req.RoutineComplexity = "beginner"
	}

	// Unknown focus areas are dropped rather than rejected.
	var focus []skin.ConditionType
	for _, raw := range req.FocusAreas {
		if cond, ok := skin.ParseCondition(raw); ok {
			focus = append(focus, cond)
		}
	}

	resp, err := h.Svc.Generate(c.Request.Context(), Request{
		AnalysisID:        req.AnalysisID,
		UserProfile:       req.UserProfile,
		BudgetPreference:  req.BudgetPreference,
		RoutineComplexity: req.RoutineComplexity,
		FocusAreas:        focus,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Recommendation generation failed: "+err.Error(), nil)
		return
	}

	respond.OK(c, resp)
}

func (h *Handler) productCategories(c *gin.Context) {
	respond.OK(c, gin.H{
		"categories":  AllCategories(),
		"description": "Available skincare product categories",
	})
}

func (h *Handler) activeIngredients(c *gin.Context) {
	info := ingredientReference()
	respond.OK(c, gin.H{
		"ingredients":       info,
		"total_ingredients": len(info),
	})
}

func (h *Handler) routineTemplates(c *gin.Context) {
	templates := skinTypeTemplates()
	respond.OK(c, gin.H{
		"templates":       templates,
		"total_templates": len(templates),
	})
}

func (h *Handler) generalAdvice(c *gin.Context) {
	respond.OK(c, generalAdvice())
}
