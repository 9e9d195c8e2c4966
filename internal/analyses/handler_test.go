package analyses

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Kritchanaxt/skinvision-ai-backend/internal/imaging"
	"github.com/Kritchanaxt/skinvision-ai-backend/internal/skin"
)

func newHandlerRouter(t *testing.T, svc *Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	conditions := make([]string, 0, len(skin.AllConditions()))
	for _, c := range skin.AllConditions() {
		conditions = append(conditions, string(c))
	}
	NewHandler(svc, conditions).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeEndpointReturnsAnalysis(t *testing.T) {
	svc, _ := newTestService(t,
		stubDetector{result: imaging.FaceResult{Detected: true, Count: 1}},
		stubPredictor{detailed: []skin.DetectedCondition{
			{ConditionType: skin.ConditionAcne, Severity: skin.SeverityModerate, Confidence: 0.85, AffectedZones: []skin.Zone{skin.ZoneCheeks}},
		}},
	)
	r := newHandlerRouter(t, svc)

	w := postForm(r, "/api/v1/analyze", url.Values{
		"upload_id":     {"upload-1"},
		"analyze_zones": {"cheeks"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp Analysis
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" {
		t.Fatal("missing analysis_id")
	}
	if !resp.FaceDetection.FaceDetected {
		t.Fatal("expected face_detected true")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis/"+resp.ID, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get analysis status = %d", w.Code)
	}
}

func TestAnalyzeEndpointRequiresUploadID(t *testing.T) {
	svc, _ := newTestService(t, stubDetector{}, stubPredictor{})
	r := newHandlerRouter(t, svc)

	w := postForm(r, "/api/v1/analyze", url.Values{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAnalyzeEndpointUnknownUploadIs404(t *testing.T) {
	svc, _ := newTestService(t,
		stubDetector{result: imaging.FaceResult{Detected: true, Count: 1}},
		stubPredictor{},
	)
	r := newHandlerRouter(t, svc)

	w := postForm(r, "/api/v1/analyze", url.Values{"upload_id": {"missing"}})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestAnalyzeEndpointNoFaceIs400(t *testing.T) {
	svc, _ := newTestService(t,
		stubDetector{result: imaging.FaceResult{Detected: false}},
		stubPredictor{},
	)
	r := newHandlerRouter(t, svc)

	w := postForm(r, "/api/v1/analyze", url.Values{"upload_id": {"upload-1"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "no_face_detected") {
		t.Fatalf("expected no_face_detected code, body = %s", w.Body.String())
	}
}

func TestGetAnalysisUnknownIs404(t *testing.T) {
	svc, _ := newTestService(t, stubDetector{}, stubPredictor{})
	r := newHandlerRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestSupportedConditionsEndpoint(t *testing.T) {
	svc, _ := newTestService(t, stubDetector{}, stubPredictor{})
	r := newHandlerRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/supported-conditions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Conditions []string `json:"conditions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Conditions) != len(skin.AllConditions()) {
		t.Fatalf("expected %d conditions, got %d", len(skin.AllConditions()), len(resp.Conditions))
	}
}
