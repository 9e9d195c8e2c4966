// Package health exposes liveness endpoints, including a detailed view
// of host resources.
package health

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/Kritchanaxt/skinvision-ai-backend/internal/shared/server/respond"
)

const (
	serviceName    = "SkinVision AI Backend"
	serviceVersion = "1.0.0"
)

// Handler serves health check endpoints.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches health routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.basic)
	rg.GET("/health/detailed", h.detailed)
}

func (h *Handler) basic(c *gin.Context) {
	respond.JSON(c, http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
		"version":   serviceVersion,
	})
}

func (h *Handler) detailed(c *gin.Context) {
	base := gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
		"version":   serviceVersion,
	}

	system, err := systemInfo()
	if err != nil {
		// Host probes can fail in restricted environments. The service is
		// still up, so degrade to the basic payload with a note.
		base["note"] = "Basic health check only"
		base["error"] = err.Error()
		respond.JSON(c, http.StatusOK, base)
		return
	}

	base["system"] = system
	respond.JSON(c, http.StatusOK, base)
}

func systemInfo() (gin.H, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, err
	}
	du, err := disk.Usage("/")
	if err != nil {
		return nil, err
	}
	cpuCount, err := cpu.Counts(true)
	if err != nil {
		return nil, err
	}

	return gin.H{
		"platform":   runtime.GOOS,
		"go_version": runtime.Version(),
		"cpu_count":  cpuCount,
		"memory": gin.H{
			"total":     vm.Total,
			"available": vm.Available,
			"percent":   vm.UsedPercent,
		},
		"disk": gin.H{
			"total":   du.Total,
			"free":    du.Free,
			"percent": du.UsedPercent,
		},
	}, nil
}
