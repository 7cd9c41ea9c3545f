package solar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunwindow/sunwindow/internal/solar"
)

func TestRiseSet_EquatorEquinox(t *testing.T) {
	date := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	sunrise, sunset, ok := solar.RiseSet(0, 0, date, time.UTC)

	require.True(t, ok)
	// Near the equinox at the equator the day is almost exactly 12 hours,
	// roughly 06:00 to 18:00 UTC at the prime meridian.
	assert.InDelta(t, 6.0, float64(sunrise.Hour())+float64(sunrise.Minute())/60.0, 0.35)
	assert.InDelta(t, 18.0, float64(sunset.Hour())+float64(sunset.Minute())/60.0, 0.35)
	assert.True(t, sunrise.Before(sunset))
}

func TestRiseSet_LocalTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)

	date := time.Date(2024, 6, 21, 0, 0, 0, 0, loc)
	sunrise, sunset, ok := solar.RiseSet(52.37, 4.90, date, loc)

	require.True(t, ok)
	assert.Equal(t, loc, sunrise.Location())
	assert.Equal(t, loc, sunset.Location())
	// Midsummer in Amsterdam: sunrise ~05:20, sunset ~22:05 local.
	assert.InDelta(t, 5.3, float64(sunrise.Hour())+float64(sunrise.Minute())/60.0, 0.5)
	assert.InDelta(t, 22.1, float64(sunset.Hour())+float64(sunset.Minute())/60.0, 0.5)
}

func TestRiseSet_PolarDay(t *testing.T) {
	// Longyearbyen in midsummer: the sun never sets.
	date := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)

	_, _, ok := solar.RiseSet(78.22, 15.65, date, time.UTC)

	assert.False(t, ok)
}

func TestRiseSet_PolarNight(t *testing.T) {
	// Longyearbyen in midwinter: the sun never rises.
	date := time.Date(2024, 12, 21, 0, 0, 0, 0, time.UTC)

	_, _, ok := solar.RiseSet(78.22, 15.65, date, time.UTC)

	assert.False(t, ok)
}

func TestRiseSet_NilLocationDefaultsToUTC(t *testing.T) {
	date := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	sunrise, _, ok := solar.RiseSet(0, 0, date, nil)

	require.True(t, ok)
	assert.Equal(t, time.UTC, sunrise.Location())
}
