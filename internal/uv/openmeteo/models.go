package openmeteo

// forecastResponse is the wire format for the Open-Meteo forecast endpoint,
// restricted to the fields we request.
type forecastResponse struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	Timezone         string  `json:"timezone"`
	UTCOffsetSeconds int     `json:"utc_offset_seconds"`

	Hourly struct {
		// Time entries are local wall-clock strings without an offset,
		// e.g. "2024-07-15T14:00".
		Time    []string  `json:"time"`
		UVIndex []float64 `json:"uv_index"`
	} `json:"hourly"`

	Daily struct {
		Sunrise []string `json:"sunrise"`
		Sunset  []string `json:"sunset"`
	} `json:"daily"`
}
