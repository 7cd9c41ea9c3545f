package exposure

// Risk thresholds are half-open with an exclusive upper bound at every
// boundary: a UV index of exactly 3.0 is MODERATE, 6.0 is HIGH, 8.0 is
// VERY_HIGH, and 11.0 is EXTREME.

// ClassifyRisk maps a UV index to its risk category.
func ClassifyRisk(uvIndex float64) RiskLevel {
	switch {
	case uvIndex < 3:
		return RiskLow
	case uvIndex < 6:
		return RiskModerate
	case uvIndex < 8:
		return RiskHigh
	case uvIndex < 11:
		return RiskVeryHigh
	default:
		return RiskExtreme
	}
}

// RecommendedExposureMinutes returns a coarse unprotected-exposure budget
// for the given UV index. This is a deliberately simplified stand-in for
// skin-type-specific dosimetry.
func RecommendedExposureMinutes(uvIndex float64) int {
	switch {
	case uvIndex <= 2:
		return 60
	case uvIndex <= 5:
		return 30
	case uvIndex <= 7:
		return 20
	case uvIndex <= 10:
		return 15
	default:
		return 10
	}
}
