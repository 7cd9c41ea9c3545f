package exposure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunwindow/sunwindow/internal/exposure"
)

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		name string
		uv   float64
		want exposure.RiskLevel
	}{
		{"zero", 0, exposure.RiskLow},
		{"low upper edge", 2.9, exposure.RiskLow},
		{"moderate boundary", 3.0, exposure.RiskModerate},
		{"moderate upper edge", 5.9, exposure.RiskModerate},
		{"high boundary", 6.0, exposure.RiskHigh},
		{"high upper edge", 7.9, exposure.RiskHigh},
		{"very high boundary", 8.0, exposure.RiskVeryHigh},
		{"very high upper edge", 10.9, exposure.RiskVeryHigh},
		{"extreme boundary", 11.0, exposure.RiskExtreme},
		{"extreme", 14.2, exposure.RiskExtreme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exposure.ClassifyRisk(tt.uv))
		})
	}
}

func TestClassifyRisk_Monotonic(t *testing.T) {
	prev := exposure.ClassifyRisk(0)
	for uv := 0.0; uv <= 15.0; uv += 0.1 {
		level := exposure.ClassifyRisk(uv)
		assert.GreaterOrEqual(t, level.Rank(), prev.Rank(), "risk decreased at uv=%.1f", uv)
		prev = level
	}
}

func TestRecommendedExposureMinutes(t *testing.T) {
	tests := []struct {
		uv   float64
		want int
	}{
		{0, 60},
		{2, 60},
		{2.1, 30},
		{5, 30},
		{6.5, 20},
		{7, 20},
		{9, 15},
		{10, 15},
		{10.1, 10},
		{13, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, exposure.RecommendedExposureMinutes(tt.uv), "uv=%.1f", tt.uv)
	}
}

func TestRecommendedExposureMinutes_NonIncreasing(t *testing.T) {
	prev := exposure.RecommendedExposureMinutes(0)
	for uv := 0.0; uv <= 15.0; uv += 0.25 {
		minutes := exposure.RecommendedExposureMinutes(uv)
		assert.LessOrEqual(t, minutes, prev, "budget increased at uv=%.2f", uv)
		prev = minutes
	}
}
