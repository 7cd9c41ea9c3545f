// Package uv provides UV-index forecast data access, normalization, and caching.
package uv

import (
	"errors"
	"time"
)

// Provider errors.
var (
	ErrProviderUnavailable = errors.New("uv provider unavailable")
	ErrNoDataForLocation   = errors.New("no uv data for location")
	ErrInvalidCoordinates  = errors.New("invalid coordinates")
)

// HourlyUV is a single hour of forecast UV index. Time is the start of the
// hour, already resolved to the forecast location's timezone.
type HourlyUV struct {
	Time    time.Time
	UVIndex float64
}

// Forecast represents one day of UV data for a location.
// All timestamps carry the location's timezone; downstream analysis code
// never converts timezones itself.
type Forecast struct {
	// Location coordinates as resolved by the provider.
	Lat float64
	Lon float64

	// Timezone is the IANA identifier the provider resolved for the
	// location (e.g. "Europe/Amsterdam").
	Timezone string

	// Location is the loaded timezone all timestamps are expressed in.
	Location *time.Location

	// Hourly is the ordered UV series for the forecast day.
	Hourly []HourlyUV

	// Sunrise and Sunset are local times for the forecast day.
	// Zero when the sun never crosses the horizon (polar day/night).
	Sunrise time.Time
	Sunset  time.Time

	// FetchedAt is when the forecast was retrieved from the provider.
	FetchedAt time.Time

	// Provider identifies the data source.
	Provider string
}

// PeakUV returns the highest hourly UV index in the forecast, or 0 for an
// empty series.
func (f *Forecast) PeakUV() float64 {
	peak := 0.0
	for _, h := range f.Hourly {
		if h.UVIndex > peak {
			peak = h.UVIndex
		}
	}
	return peak
}

// UVAt returns the forecast UV index for the hour containing t, or 0 when
// t falls outside the series.
func (f *Forecast) UVAt(t time.Time) float64 {
	local := t.In(f.timezoneOrUTC())
	for _, h := range f.Hourly {
		if !local.Before(h.Time) && local.Before(h.Time.Add(time.Hour)) {
			return h.UVIndex
		}
	}
	return 0
}

func (f *Forecast) timezoneOrUTC() *time.Location {
	if f.Location != nil {
		return f.Location
	}
	return time.UTC
}
