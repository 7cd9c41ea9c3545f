// Package handler contains HTTP handlers for the SunWindow API.
package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/sunwindow/sunwindow/internal/api/models"
	"github.com/sunwindow/sunwindow/internal/api/response"
	"github.com/sunwindow/sunwindow/internal/exposure"
	"github.com/sunwindow/sunwindow/internal/solar"
	"github.com/sunwindow/sunwindow/internal/uv"
)

// SunHandler handles sun position and exposure advice endpoints.
type SunHandler struct {
	uvService *uv.Service
	logger    zerolog.Logger
}

// NewSunHandler creates a new SunHandler.
func NewSunHandler(uvService *uv.Service, logger zerolog.Logger) *SunHandler {
	return &SunHandler{
		uvService: uvService,
		logger:    logger,
	}
}

// Position handles GET /v1/sun/position - compute the sun's apparent position.
//
// Query parameters:
//   - lat, lon: required coordinates
//   - at: optional RFC3339 timestamp, defaults to now
func (h *SunHandler) Position(w http.ResponseWriter, r *http.Request) {
	lat, lon, fieldErrors := parseCoordinates(r)

	at := time.Now()
	atProvided := false
	if raw := r.URL.Query().Get("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field:   "at",
				Message: "must be an RFC3339 timestamp",
				Code:    "invalid_format",
			})
		} else {
			at = parsed
			atProvided = true
		}
	}

	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "invalid query parameters", fieldErrors)
		return
	}

	// Without an explicit instant, "today" means the queried location's
	// local day, not the server's. Approximate the zone from longitude
	// so rise/set land on the right calendar date.
	if !atProvided {
		at = at.In(nauticalZone(lon))
	}

	pos := solar.ComputePosition(lat, lon, at)

	resp := models.SunPositionResponse{
		Latitude:          lat,
		Longitude:         lon,
		At:                at,
		AzimuthDegrees:    pos.AzimuthDegrees,
		ElevationDegrees:  pos.ElevationDegrees,
		AboveHorizon:      pos.AboveHorizon,
		CardinalDirection: string(pos.Cardinal()),
	}

	if sunrise, sunset, ok := solar.RiseSet(lat, lon, at, at.Location()); ok {
		resp.Sunrise = &sunrise
		resp.Sunset = &sunset
		resp.GoldenHour = toGoldenHour(exposure.GoldenHour(sunrise, sunset))
	}

	response.JSON(w, r, http.StatusOK, resp)
}

// Exposure handles GET /v1/sun/exposure - advise on today's best sun
// exposure window for a location.
func (h *SunHandler) Exposure(w http.ResponseWriter, r *http.Request) {
	lat, lon, fieldErrors := parseCoordinates(r)
	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "invalid query parameters", fieldErrors)
		return
	}

	forecast, err := h.uvService.GetForecast(r.Context(), lat, lon)
	if err != nil {
		switch {
		case errors.Is(err, uv.ErrInvalidCoordinates):
			response.BadRequest(w, r, "coordinates out of range", nil)
		case errors.Is(err, uv.ErrNoDataForLocation):
			response.NotFound(w, r, "no UV forecast available for this location")
		case errors.Is(err, uv.ErrProviderUnavailable):
			response.ServiceUnavailable(w, r, "UV forecast provider is unavailable")
		default:
			h.logger.Error().Err(err).Msg("unexpected forecast error")
			response.InternalError(w, r, "failed to retrieve UV forecast")
		}
		return
	}

	samples := uv.DaylightSamples(forecast)
	window := exposure.FindOptimalWindow(samples)

	now := time.Now()
	currentUV := forecast.UVAt(now)

	resp := models.ExposureAdviceResponse{
		Latitude:                   lat,
		Longitude:                  lon,
		Timezone:                   forecast.Timezone,
		GeneratedAt:                now,
		CurrentUV:                  currentUV,
		CurrentRisk:                string(exposure.ClassifyRisk(currentUV)),
		RecommendedExposureMinutes: exposure.RecommendedExposureMinutes(currentUV),
		Window:                     toExposureWindow(window),
		Hours:                      toHourlyRisks(samples),
	}

	if sunrise, sunset, ok := riseSetFor(forecast, now); ok {
		resp.GoldenHour = toGoldenHour(exposure.GoldenHour(sunrise, sunset))
	}

	response.JSON(w, r, http.StatusOK, resp)
}

// nauticalZone approximates a longitude's timezone as a fixed offset of
// whole hours (15° per hour). Good enough to pick the right calendar date.
func nauticalZone(lon float64) *time.Location {
	return time.FixedZone("", int(math.Round(lon/15.0))*3600)
}

// riseSetFor prefers the provider's sunrise/sunset and falls back to the
// local ephemeris when the provider omitted them.
func riseSetFor(f *uv.Forecast, now time.Time) (time.Time, time.Time, bool) {
	if !f.Sunrise.IsZero() && !f.Sunset.IsZero() {
		return f.Sunrise, f.Sunset, true
	}
	loc := time.UTC
	if f.Location != nil {
		loc = f.Location
	}
	return solar.RiseSet(f.Lat, f.Lon, now.In(loc), loc)
}

// parseCoordinates extracts and validates lat/lon query parameters.
func parseCoordinates(r *http.Request) (lat, lon float64, fieldErrors []models.FieldError) {
	q := r.URL.Query()

	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	if errLat != nil {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "lat",
			Message: "must be a number",
			Code:    "invalid_format",
		})
	} else if lat < -90 || lat > 90 {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "lat",
			Message: "must be between -90 and 90",
			Code:    "out_of_range",
		})
	}

	lon, errLon := strconv.ParseFloat(q.Get("lon"), 64)
	if errLon != nil {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "lon",
			Message: "must be a number",
			Code:    "invalid_format",
		})
	} else if lon < -180 || lon > 180 {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "lon",
			Message: "must be between -180 and 180",
			Code:    "out_of_range",
		})
	}

	return lat, lon, fieldErrors
}

func toGoldenHour(b exposure.GoldenHourBounds) *models.GoldenHour {
	return &models.GoldenHour{
		MorningStart: b.MorningStart,
		MorningEnd:   b.MorningEnd,
		EveningStart: b.EveningStart,
		EveningEnd:   b.EveningEnd,
	}
}

func toExposureWindow(w *exposure.Window) *models.ExposureWindow {
	if w == nil {
		return nil
	}
	return &models.ExposureWindow{
		StartTime:         w.Start,
		EndTime:           w.End,
		UVMin:             w.UVMin,
		UVMax:             w.UVMax,
		DurationMinutes:   w.DurationMinutes,
		IsGoodForVitaminD: w.GoodForVitaminD,
		ReasonTag:         string(w.Reason),
		ReasonParams:      w.Params,
	}
}

func toHourlyRisks(samples []exposure.HourlySample) []models.HourlyRisk {
	out := make([]models.HourlyRisk, 0, len(samples))
	for _, s := range samples {
		out = append(out, models.HourlyRisk{
			Time:    s.Time,
			Hour:    s.Hour,
			UVIndex: s.UVIndex,
			Risk:    string(exposure.ClassifyRisk(s.UVIndex)),
		})
	}
	return out
}
