// Package models defines the wire shapes served by the SunWindow API.
package models

import "time"

// SunPositionResponse is the payload for GET /v1/sun/position.
type SunPositionResponse struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	At        time.Time `json:"at"`

	AzimuthDegrees    float64 `json:"azimuthDegrees"`
	ElevationDegrees  float64 `json:"elevationDegrees"`
	AboveHorizon      bool    `json:"aboveHorizon"`
	CardinalDirection string  `json:"cardinalDirection"`

	// Sunrise and Sunset are omitted during polar day/night.
	Sunrise    *time.Time  `json:"sunrise,omitempty"`
	Sunset     *time.Time  `json:"sunset,omitempty"`
	GoldenHour *GoldenHour `json:"goldenHour,omitempty"`
}

// GoldenHour is the pair of low-intensity-light periods adjacent to
// sunrise and sunset.
type GoldenHour struct {
	MorningStart time.Time `json:"morningStart"`
	MorningEnd   time.Time `json:"morningEnd"`
	EveningStart time.Time `json:"eveningStart"`
	EveningEnd   time.Time `json:"eveningEnd"`
}

// ExposureAdviceResponse is the payload for GET /v1/sun/exposure.
type ExposureAdviceResponse struct {
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Timezone    string    `json:"timezone"`
	GeneratedAt time.Time `json:"generatedAt"`

	CurrentUV                  float64 `json:"currentUv"`
	CurrentRisk                string  `json:"currentRisk"`
	RecommendedExposureMinutes int     `json:"recommendedExposureMinutes"`

	// Window is null when no recommendation is available; that is a
	// valid outcome, not an error.
	Window *ExposureWindow `json:"window"`

	GoldenHour *GoldenHour  `json:"goldenHour,omitempty"`
	Hours      []HourlyRisk `json:"hours"`
}

// ExposureWindow is the recommended exposure block.
type ExposureWindow struct {
	StartTime         time.Time          `json:"startTime"`
	EndTime           time.Time          `json:"endTime"`
	UVMin             float64            `json:"uvMin"`
	UVMax             float64            `json:"uvMax"`
	DurationMinutes   int                `json:"durationMinutes"`
	IsGoodForVitaminD bool               `json:"isGoodForVitaminD"`
	ReasonTag         string             `json:"reasonTag"`
	ReasonParams      map[string]float64 `json:"reasonParams,omitempty"`
}

// HourlyRisk is one hour of the day's UV series with its risk category.
type HourlyRisk struct {
	Time    time.Time `json:"time"`
	Hour    int       `json:"hour"`
	UVIndex float64   `json:"uvIndex"`
	Risk    string    `json:"risk"`
}
