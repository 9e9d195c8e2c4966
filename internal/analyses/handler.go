package analyses

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Kritchanaxt/skinvision-ai-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc                 *Service
	SupportedConditions []string
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, supportedConditions []string) *Handler {
	return &Handler{Svc: svc, SupportedConditions: supportedConditions}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.GET("/analysis/:id", h.getAnalysis)
	rg.GET("/supported-conditions", h.supportedConditions)
}

func (h *Handler) analyze(c *gin.Context) {
	uploadID := c.PostForm("upload_id")
	if uploadID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "upload_id is required", nil)
		return
	}

	detailed := true
	if v := c.PostForm("detailed_analysis"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			detailed = parsed
		}
	}

	zonesRaw := c.DefaultPostForm("analyze_zones", "overall")

	analysis, err := h.Svc.Analyze(c.Request.Context(), AnalyzeInput{
		UploadID: uploadID,
		UserID:   c.PostForm("user_id"),
		Zones:    ParseZones(zonesRaw),
		Detailed: detailed,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Upload not found", nil)
		case errors.Is(err, ErrNoFace):
			respond.Error(c, http.StatusBadRequest, "no_face_detected", "No face detected in image", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Analysis failed: "+err.Error(), nil)
		}
		return
	}

	c.Set("analysisId", analysis.ID)
	respond.OK(c, analysis)
}

func (h *Handler) getAnalysis(c *gin.Context) {
	analysisID := c.Param("id")
	if analysisID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "analysis id is required", nil)
		return
	}

	analysis, err := h.Svc.Get(c.Request.Context(), analysisID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		}
		return
	}

	respond.OK(c, analysis)
}

func (h *Handler) supportedConditions(c *gin.Context) {
	respond.OK(c, gin.H{
		"conditions":  h.SupportedConditions,
		"description": "List of skin conditions that can be detected by the system",
	})
}
