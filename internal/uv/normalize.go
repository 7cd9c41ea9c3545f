package uv

import (
	"github.com/sunwindow/sunwindow/internal/exposure"
)

// Daylight hours considered by the exposure analyzer. Hours outside this
// band never carry enough UV to matter and would only dilute the search.
const (
	firstDaylightHour = 6
	lastDaylightHour  = 20
)

// DaylightSamples converts a forecast's hourly series into analyzer samples
// restricted to local hours 6 through 20. This is the single place where
// provider timestamps are committed to local wall-clock hours; everything
// downstream treats the hours as already resolved.
func DaylightSamples(f *Forecast) []exposure.HourlySample {
	if f == nil {
		return nil
	}

	loc := f.timezoneOrUTC()
	var samples []exposure.HourlySample
	for _, h := range f.Hourly {
		local := h.Time.In(loc)
		hour := local.Hour()
		if hour < firstDaylightHour || hour > lastDaylightHour {
			continue
		}
		samples = append(samples, exposure.HourlySample{
			Time:    local,
			Hour:    hour,
			UVIndex: h.UVIndex,
		})
	}
	return samples
}
