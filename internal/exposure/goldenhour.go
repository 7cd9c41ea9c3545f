package exposure

import "time"

// GoldenHour derives the morning and evening golden-hour bounds from local
// sunrise and sunset times. Pure time arithmetic; no UV dependency.
func GoldenHour(sunrise, sunset time.Time) GoldenHourBounds {
	return GoldenHourBounds{
		MorningStart: sunrise,
		MorningEnd:   sunrise.Add(time.Hour),
		EveningStart: sunset.Add(-time.Hour),
		EveningEnd:   sunset,
	}
}
