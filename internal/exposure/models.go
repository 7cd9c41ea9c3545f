// Package exposure classifies ambient UV risk and derives sun exposure
// recommendations from an hourly UV-index series.
//
// All times entering this package are local wall-clock times for the
// target location; the package never performs timezone conversion.
package exposure

import "time"

// RiskLevel represents the WHO UV-index risk category.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskModerate RiskLevel = "MODERATE"
	RiskHigh     RiskLevel = "HIGH"
	RiskVeryHigh RiskLevel = "VERY_HIGH"
	RiskExtreme  RiskLevel = "EXTREME"
)

// riskRanks orders levels by increasing UV threshold.
var riskRanks = map[RiskLevel]int{
	RiskLow:      0,
	RiskModerate: 1,
	RiskHigh:     2,
	RiskVeryHigh: 3,
	RiskExtreme:  4,
}

// Rank returns the level's position in the low→extreme ordering.
func (r RiskLevel) Rank() int {
	return riskRanks[r]
}

// HourlySample is a single hour of the day's UV forecast, expressed in
// the location's local wall-clock time.
type HourlySample struct {
	// Time is the start of the hour, local wall clock.
	Time time.Time

	// Hour is the local hour of day, 0-23.
	Hour int

	// UVIndex is the forecast UV index, non-negative.
	UVIndex float64
}

// Reason tags why a window was (or was not) recommended. The presentation
// layer maps tags plus Params to localized copy.
type Reason string

const (
	ReasonOptimalUV      Reason = "OPTIMAL_UV"
	ReasonLowUVToday     Reason = "LOW_UV_TODAY"
	ReasonVeryLowUVToday Reason = "VERY_LOW_UV_TODAY"
	ReasonHighUVToday    Reason = "HIGH_UV_TODAY"
	ReasonExtremeUVToday Reason = "EXTREME_UV_TODAY"
)

// Window is a recommended contiguous block of hours for sun exposure.
type Window struct {
	// Start is the first hour's start, local wall clock.
	Start time.Time

	// End is the last hour's start plus one hour, so the window covers
	// the final hour's full span.
	End time.Time

	// UVMin and UVMax are taken over exactly the selected hours.
	UVMin float64
	UVMax float64

	// DurationMinutes is the number of selected hours times 60.
	DurationMinutes int

	// GoodForVitaminD is true when the window supports meaningful
	// vitamin-D synthesis without excessive burn risk.
	GoodForVitaminD bool

	// Reason tags the rationale; Params carries the numbers the
	// presentation layer interpolates into it.
	Reason Reason
	Params map[string]float64
}

// GoldenHourBounds are the low-intensity-light reference periods adjacent
// to sunrise and sunset.
type GoldenHourBounds struct {
	MorningStart time.Time
	MorningEnd   time.Time
	EveningStart time.Time
	EveningEnd   time.Time
}
