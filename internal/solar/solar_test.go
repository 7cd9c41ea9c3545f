package solar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunwindow/sunwindow/internal/solar"
)

func TestComputePosition_OutputRanges(t *testing.T) {
	lats := []float64{-89, -60, -33.87, 0, 20.9, 51.5, 69.6, 89}
	lons := []float64{-156.43, -122.03, -0.13, 4.9, 103.82, 151.21, 179.9}
	instants := []time.Time{
		time.Date(2024, 1, 15, 3, 30, 0, 0, time.UTC),
		time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 21, 18, 45, 0, 0, time.UTC),
		time.Date(2024, 9, 22, 23, 59, 59, 0, time.UTC),
		time.Date(2024, 12, 21, 9, 10, 0, 0, time.UTC),
	}

	for _, lat := range lats {
		for _, lon := range lons {
			for _, at := range instants {
				pos := solar.ComputePosition(lat, lon, at)

				assert.GreaterOrEqual(t, pos.AzimuthDegrees, 0.0,
					"azimuth below range for lat=%v lon=%v at=%v", lat, lon, at)
				assert.Less(t, pos.AzimuthDegrees, 360.0,
					"azimuth above range for lat=%v lon=%v at=%v", lat, lon, at)
				assert.GreaterOrEqual(t, pos.ElevationDegrees, -90.0)
				assert.LessOrEqual(t, pos.ElevationDegrees, 90.0)
				assert.Equal(t, pos.ElevationDegrees > 0, pos.AboveHorizon)
			}
		}
	}
}

func TestComputePosition_EquinoxNoonAtEquator(t *testing.T) {
	// March 2024 equinox, solar noon at the prime meridian.
	at := time.Date(2024, 3, 20, 12, 7, 0, 0, time.UTC)

	pos := solar.ComputePosition(0, 0, at)

	// The sun passes almost directly overhead; the simplified ephemeris
	// should land within a few degrees of the zenith.
	assert.Greater(t, pos.ElevationDegrees, 85.0)
	assert.True(t, pos.AboveHorizon)
}

func TestComputePosition_SummerSolsticeLondon(t *testing.T) {
	// London is close enough to the prime meridian that 12:00 UTC is
	// near solar noon. Max elevation = 90 - lat + declination ≈ 61.9.
	at := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)

	pos := solar.ComputePosition(51.5074, -0.1278, at)

	assert.InDelta(t, 61.9, pos.ElevationDegrees, 1.5)
	assert.InDelta(t, 180.0, pos.AzimuthDegrees, 8.0)
	assert.True(t, pos.AboveHorizon)
}

func TestComputePosition_MorningAndAfternoonAzimuth(t *testing.T) {
	// Northern mid-latitudes: sun bears east of south in the morning,
	// west of south in the afternoon.
	lat, lon := 52.37, 4.90 // Amsterdam

	morning := solar.ComputePosition(lat, lon, time.Date(2024, 6, 21, 7, 0, 0, 0, time.UTC))
	afternoon := solar.ComputePosition(lat, lon, time.Date(2024, 6, 21, 16, 0, 0, 0, time.UTC))

	require.True(t, morning.AboveHorizon)
	require.True(t, afternoon.AboveHorizon)
	assert.Less(t, morning.AzimuthDegrees, 180.0)
	assert.Greater(t, afternoon.AzimuthDegrees, 180.0)
}

func TestComputePosition_NightBelowHorizon(t *testing.T) {
	// Local midnight in western Europe.
	pos := solar.ComputePosition(52.37, 4.90, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	assert.Negative(t, pos.ElevationDegrees)
	assert.False(t, pos.AboveHorizon)
}

func TestComputePosition_Idempotent(t *testing.T) {
	at := time.Date(2024, 8, 1, 14, 33, 21, 0, time.UTC)

	first := solar.ComputePosition(-33.87, 151.21, at)
	second := solar.ComputePosition(-33.87, 151.21, at)

	assert.Equal(t, first, second)
}

func TestCardinal(t *testing.T) {
	tests := []struct {
		name    string
		azimuth float64
		want    solar.CardinalDirection
	}{
		{"due north", 0, solar.North},
		{"north upper edge", 22.4, solar.North},
		{"north-east", 45, solar.NorthEast},
		{"east", 90, solar.East},
		{"south-east", 135, solar.SouthEast},
		{"south", 180, solar.South},
		{"south-west", 225, solar.SouthWest},
		{"west", 270, solar.West},
		{"north-west", 315, solar.NorthWest},
		{"wraps back to north", 359.9, solar.North},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, solar.Cardinal(tt.azimuth))
		})
	}
}

func TestPosition_Cardinal(t *testing.T) {
	pos := solar.Position{AzimuthDegrees: 92.0}
	assert.Equal(t, solar.East, pos.Cardinal())
}
