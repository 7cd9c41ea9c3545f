package models

import "time"

// HealthStatus values for operational endpoints.
const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
)

// Health is the payload for the liveness and readiness endpoints.
type Health struct {
	Status    string                 `json:"status"`
	Time      time.Time              `json:"time"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Providers []ProviderStatus       `json:"providers,omitempty"`
}

// ProviderStatus reports a forecast provider's circuit health.
type ProviderStatus struct {
	Provider string `json:"provider"`
	Status   string `json:"status"`
	Circuit  string `json:"circuit"`
}
