package exposure

import "time"

// UV bands used by the window search.
const (
	// optimalMinUV..optimalMaxUV is the band favorable for vitamin-D
	// synthesis without excessive burn risk.
	optimalMinUV = 3.0
	optimalMaxUV = 7.0

	// meaningfulUV is the floor below which an hour contributes no
	// useful synthesis.
	meaningfulUV = 1.0

	// safeMinUV..safeMaxUV is the tolerable band on extreme-UV days.
	safeMinUV = 2.0
	safeMaxUV = 7.0

	// maxLowUVWindowHours caps the recommendation on low-UV days.
	maxLowUVWindowHours = 4
)

// FindOptimalWindow selects the best contiguous block of hours for sun
// exposure from an hourly UV series. Samples must be ordered by hour and
// already restricted to daylight-relevant local hours.
//
// A nil result means no recommendation is available; callers must treat
// that as data, not failure.
func FindOptimalWindow(samples []HourlySample) *Window {
	if len(samples) == 0 {
		return nil
	}

	// Case A: a contiguous run inside the optimal band.
	optimal := filterUV(samples, optimalMinUV, optimalMaxUV)
	if runs := contiguousRuns(optimal); len(runs) > 0 {
		best := runs[0]
		for _, run := range runs[1:] {
			if len(run) > len(best) {
				best = run
			}
		}
		w := windowOver(best, ReasonOptimalUV, true)
		w.Params = map[string]float64{"uvMin": w.UVMin, "uvMax": w.UVMax}
		return w
	}

	peak := peakSample(samples)

	// Case B: the whole day stays below the optimal band.
	if peak.UVIndex < optimalMinUV {
		return lowUVWindow(samples, peak)
	}

	// Case C: the day peaks at or above the top of the optimal band.
	safe := filterUV(samples, safeMinUV, safeMaxUV)
	if runs := contiguousRuns(safe); len(runs) > 0 {
		selected := runs[0]
		for _, run := range runs {
			if run[0].Hour < 12 {
				selected = run
				break
			}
		}
		w := windowOver(selected, ReasonHighUVToday, true)
		w.Params = map[string]float64{"peakUV": peak.UVIndex}
		return w
	}

	// Case D: no safe hours at all; suggest early morning if present.
	var early []HourlySample
	for _, s := range samples {
		if s.Hour >= 7 && s.Hour <= 9 {
			early = append(early, s)
		}
	}
	if len(early) > 0 {
		w := windowOver(early, ReasonExtremeUVToday, false)
		w.Params = map[string]float64{"peakUV": peak.UVIndex}
		return w
	}

	return nil
}

// lowUVWindow recommends the most useful block on a day that never reaches
// the optimal band.
func lowUVWindow(samples []HourlySample, peak HourlySample) *Window {
	meaningful := filterUV(samples, meaningfulUV, -1)
	if len(meaningful) == 0 {
		// Nothing useful all day: report the single peak hour so the
		// caller still has a concrete answer.
		return &Window{
			Start:           peak.Time,
			End:             peak.Time.Add(time.Hour),
			UVMin:           peak.UVIndex,
			UVMax:           peak.UVIndex,
			DurationMinutes: 60,
			GoodForVitaminD: false,
			Reason:          ReasonVeryLowUVToday,
			Params:          map[string]float64{"maxUV": peak.UVIndex},
		}
	}

	runs := contiguousRuns(meaningful)
	selected := runs[0]
	for _, run := range runs {
		if containsHour(run, peak.Hour) {
			selected = run
			break
		}
	}

	if len(selected) > maxLowUVWindowHours {
		selected = trimAroundPeak(selected, maxLowUVWindowHours)
	}

	w := windowOver(selected, ReasonLowUVToday, false)
	w.Params = map[string]float64{"maxUV": peak.UVIndex}
	return w
}

// trimAroundPeak reduces a run to `size` hours centered on the run's
// peak-UV hour, shifting the sub-window as needed to stay within the
// run's bounds. The clamping deliberately truncates asymmetrically when
// the peak sits near either end.
func trimAroundPeak(run []HourlySample, size int) []HourlySample {
	peakIdx := 0
	for i, s := range run {
		if s.UVIndex > run[peakIdx].UVIndex {
			peakIdx = i
		}
	}

	start := peakIdx - size/2
	if start < 0 {
		start = 0
	}
	if start+size > len(run) {
		start = len(run) - size
	}
	return run[start : start+size]
}

// contiguousRuns partitions ordered samples into maximal runs of
// consecutive hour-of-day values.
func contiguousRuns(samples []HourlySample) [][]HourlySample {
	if len(samples) == 0 {
		return nil
	}

	var runs [][]HourlySample
	current := []HourlySample{samples[0]}
	for _, s := range samples[1:] {
		if s.Hour == current[len(current)-1].Hour+1 {
			current = append(current, s)
		} else {
			runs = append(runs, current)
			current = []HourlySample{s}
		}
	}
	return append(runs, current)
}

// filterUV keeps samples with min <= UVIndex <= max. A negative max
// disables the upper bound.
func filterUV(samples []HourlySample, min, max float64) []HourlySample {
	var out []HourlySample
	for _, s := range samples {
		if s.UVIndex < min {
			continue
		}
		if max >= 0 && s.UVIndex > max {
			continue
		}
		out = append(out, s)
	}
	return out
}

// peakSample returns the first-encountered sample with the day's highest UV.
func peakSample(samples []HourlySample) HourlySample {
	peak := samples[0]
	for _, s := range samples[1:] {
		if s.UVIndex > peak.UVIndex {
			peak = s
		}
	}
	return peak
}

func containsHour(run []HourlySample, hour int) bool {
	for _, s := range run {
		if s.Hour == hour {
			return true
		}
	}
	return false
}

// windowOver builds a Window spanning the given run. The end time covers
// the last hour's full span.
func windowOver(run []HourlySample, reason Reason, goodForVitaminD bool) *Window {
	uvMin, uvMax := run[0].UVIndex, run[0].UVIndex
	for _, s := range run[1:] {
		if s.UVIndex < uvMin {
			uvMin = s.UVIndex
		}
		if s.UVIndex > uvMax {
			uvMax = s.UVIndex
		}
	}

	last := run[len(run)-1]
	return &Window{
		Start:           run[0].Time,
		End:             last.Time.Add(time.Hour),
		UVMin:           uvMin,
		UVMax:           uvMax,
		DurationMinutes: len(run) * 60,
		GoodForVitaminD: goodForVitaminD,
		Reason:          reason,
	}
}
