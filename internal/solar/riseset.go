package solar

import (
	"math"
	"time"
)

// standardZenith is the zenith angle used for sunrise/sunset: 90°50',
// accounting for atmospheric refraction and the sun's apparent radius.
const standardZenith = 90.833

// RiseSet computes local sunrise and sunset times for the calendar date of
// `date` interpreted in `loc`, at the given latitude and longitude.
//
// ok is false when the sun never crosses the horizon on that date
// (polar day or polar night); callers must treat that as data, not an error.
func RiseSet(lat, lon float64, date time.Time, loc *time.Location) (sunrise, sunset time.Time, ok bool) {
	if loc == nil {
		loc = time.UTC
	}
	local := date.In(loc)
	year, month, day := local.Date()

	// Ephemeris at local noon is accurate enough for minute-level rise/set.
	noonUTC := time.Date(year, month, day, 12, 0, 0, 0, loc).UTC()
	jc := (julianDay(noonUTC) - 2451545.0) / 36525.0
	eph := sunEphemeris(jc)

	latRad := radians(lat)
	declRad := radians(eph.declinationDeg)

	cosHA := (math.Cos(radians(standardZenith)) - math.Sin(latRad)*math.Sin(declRad)) /
		(math.Cos(latRad) * math.Cos(declRad))
	if cosHA < -1 || cosHA > 1 {
		return time.Time{}, time.Time{}, false
	}

	haDegrees := degrees(math.Acos(cosHA))

	// Minutes past midnight UTC.
	solarNoon := 720.0 - 4.0*lon - eph.eqTimeMinutes
	riseMinutes := solarNoon - 4.0*haDegrees
	setMinutes := solarNoon + 4.0*haDegrees

	midnightUTC := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	sunrise = midnightUTC.Add(time.Duration(riseMinutes * float64(time.Minute))).In(loc)
	sunset = midnightUTC.Add(time.Duration(setMinutes * float64(time.Minute))).In(loc)

	return sunrise, sunset, true
}
