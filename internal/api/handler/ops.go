package handler

import (
	"net/http"
	"time"

	"github.com/sunwindow/sunwindow/internal/api/models"
	"github.com/sunwindow/sunwindow/internal/api/response"
	"github.com/sunwindow/sunwindow/internal/provider/resilience"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	providers *resilience.Registry
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, providers *resilience.Registry) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		providers: providers,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   time.Now(),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check.
// Reports degraded when any provider circuit is open; the service still
// serves cached and computed responses in that state.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   time.Now(),
	}

	if h.providers != nil {
		for _, p := range h.providers.Health() {
			status := models.HealthStatusOK
			if !p.Healthy() {
				status = models.HealthStatusDegraded
				health.Status = models.HealthStatusDegraded
			}
			health.Providers = append(health.Providers, models.ProviderStatus{
				Provider: p.Name,
				Status:   status,
				Circuit:  p.CircuitState.String(),
			})
		}
	}

	response.JSON(w, r, http.StatusOK, health)
}
