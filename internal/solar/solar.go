// Package solar computes the sun's apparent position in the sky for a
// geographic coordinate and instant, using a NOAA-style ephemeris
// approximation. Accuracy is degree-level, sufficient for compass and
// advisory use, not survey-grade.
package solar

import (
	"math"
	"time"
)

// Position represents the sun's apparent position as seen from a point
// on the Earth's surface.
type Position struct {
	// AzimuthDegrees is the compass bearing toward the sun,
	// clockwise from true north, in [0, 360).
	AzimuthDegrees float64

	// ElevationDegrees is the angle above the horizon plane, in [-90, 90].
	// Negative when the sun is below the horizon.
	ElevationDegrees float64

	// AboveHorizon is true when elevation is strictly positive.
	AboveHorizon bool
}

// CardinalDirection is an eight-point compass direction.
type CardinalDirection string

const (
	North     CardinalDirection = "N"
	NorthEast CardinalDirection = "NE"
	East      CardinalDirection = "E"
	SouthEast CardinalDirection = "SE"
	South     CardinalDirection = "S"
	SouthWest CardinalDirection = "SW"
	West      CardinalDirection = "W"
	NorthWest CardinalDirection = "NW"
)

var cardinals = [8]CardinalDirection{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// Cardinal returns the eight-point compass direction for an azimuth in degrees.
func Cardinal(azimuthDegrees float64) CardinalDirection {
	idx := int(math.Round(normalizeDegrees(azimuthDegrees)/45.0)) % 8
	return cardinals[idx]
}

// Cardinal returns the compass direction toward the sun.
func (p Position) Cardinal() CardinalDirection {
	return Cardinal(p.AzimuthDegrees)
}

// sinZenithEpsilon guards the azimuth formula when the sun is at the
// zenith or nadir and the bearing is undefined.
const sinZenithEpsilon = 1e-4

// ComputePosition calculates the sun's azimuth and elevation for the given
// latitude and longitude (degrees) at the given instant. The instant is
// converted to UTC internally; the result depends only on the absolute time.
//
// The function is pure and total for finite in-range inputs. NaN or
// out-of-range coordinates are the caller's contract violation and
// propagate as NaN outputs.
func ComputePosition(lat, lon float64, at time.Time) Position {
	t := at.UTC()

	jd := julianDay(t)
	jc := (jd - 2451545.0) / 36525.0

	eph := sunEphemeris(jc)

	declRad := radians(eph.declinationDeg)
	latRad := radians(lat)

	// True solar time in minutes, then hour angle in degrees.
	utcMinutes := float64(t.Hour()*60+t.Minute()) + float64(t.Second())/60.0
	solarMinutes := utcMinutes + eph.eqTimeMinutes + 4.0*lon
	hourAngle := solarMinutes/4.0 - 180.0
	haRad := radians(hourAngle)

	cosZenith := math.Sin(latRad)*math.Sin(declRad) +
		math.Cos(latRad)*math.Cos(declRad)*math.Cos(haRad)
	zenithRad := math.Acos(clamp(cosZenith, -1, 1))

	elevation := 90.0 - degrees(zenithRad)

	azimuth := 0.0
	if math.Abs(math.Sin(zenithRad)) >= sinZenithEpsilon {
		cosAz := (math.Sin(declRad) - math.Sin(latRad)*cosZenith) /
			(math.Cos(latRad) * math.Sin(zenithRad))
		azimuth = degrees(math.Acos(clamp(cosAz, -1, 1)))
		if hourAngle > 0 {
			azimuth = 360.0 - azimuth
		}
		azimuth = normalizeDegrees(azimuth)
	}

	return Position{
		AzimuthDegrees:   azimuth,
		ElevationDegrees: elevation,
		AboveHorizon:     elevation > 0,
	}
}

// ephemeris holds the solar coordinates shared by position and
// rise/set calculations.
type ephemeris struct {
	declinationDeg    float64
	rightAscensionDeg float64
	eqTimeMinutes     float64
}

// sunEphemeris computes the sun's declination, right ascension, and the
// equation of time for the given number of Julian centuries since J2000.
func sunEphemeris(jc float64) ephemeris {
	// Geometric mean longitude and mean anomaly of the sun (degrees).
	meanLong := normalizeDegrees(280.46646 + jc*(36000.76983+jc*0.0003032))
	meanAnom := normalizeDegrees(357.52911 + jc*(35999.05029-jc*0.0001537))

	// Eccentricity of Earth's orbit.
	eccent := 0.016708634 - jc*(0.000042037+jc*0.0000001267)

	// Equation of center.
	center := math.Sin(radians(meanAnom))*(1.914602-jc*(0.004817+jc*0.000014)) +
		math.Sin(radians(2*meanAnom))*(0.019993-jc*0.000101) +
		math.Sin(radians(3*meanAnom))*0.000289

	trueLong := meanLong + center

	// Apparent longitude corrected for nutation.
	omega := 125.04 - 1934.136*jc
	apparentLong := trueLong - 0.00569 - 0.00478*math.Sin(radians(omega))

	// Mean obliquity of the ecliptic, then corrected obliquity.
	meanObliq := 23.0 + (26.0+(21.448-jc*(46.815+jc*(0.00059-jc*0.001813)))/60.0)/60.0
	obliq := meanObliq + 0.00256*math.Cos(radians(omega))

	obliqRad := radians(obliq)
	appRad := radians(apparentLong)

	rightAscension := normalizeDegrees(degrees(math.Atan2(
		math.Cos(obliqRad)*math.Sin(appRad),
		math.Cos(appRad),
	)))

	declination := degrees(math.Asin(math.Sin(obliqRad) * math.Sin(appRad)))

	// Equation of time in minutes.
	y := math.Tan(obliqRad / 2.0)
	y *= y

	meanLongRad := radians(meanLong)
	meanAnomRad := radians(meanAnom)
	eqTime := 4.0 * degrees(y*math.Sin(2*meanLongRad)-
		2.0*eccent*math.Sin(meanAnomRad)+
		4.0*eccent*y*math.Sin(meanAnomRad)*math.Cos(2*meanLongRad)-
		0.5*y*y*math.Sin(4*meanLongRad)-
		1.25*eccent*eccent*math.Sin(2*meanAnomRad))

	return ephemeris{
		declinationDeg:    declination,
		rightAscensionDeg: rightAscension,
		eqTimeMinutes:     eqTime,
	}
}

// julianDay converts a UTC time to the Julian Day number, including the
// fractional day. Months January and February count as months 13 and 14
// of the previous year per the standard Gregorian correction.
func julianDay(t time.Time) float64 {
	year := t.Year()
	month := int(t.Month())
	day := t.Day()

	if month <= 2 {
		year--
		month += 12
	}

	a := year / 100
	b := 2 - a + a/4

	jd := math.Floor(365.25*float64(year+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		float64(day) + float64(b) - 1524.5

	dayFraction := (float64(t.Hour()) +
		float64(t.Minute())/60.0 +
		float64(t.Second())/3600.0) / 24.0

	return jd + dayFraction
}

// normalizeDegrees wraps an angle into [0, 360).
func normalizeDegrees(deg float64) float64 {
	return deg - 360.0*math.Floor(deg/360.0)
}

func radians(deg float64) float64 { return deg * math.Pi / 180.0 }

func degrees(rad float64) float64 { return rad * 180.0 / math.Pi }

// clamp guards trigonometric domains against floating-point overshoot
// at the ±1 boundary.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
