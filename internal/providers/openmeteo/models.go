package openmeteo

// CurrentAPIResponse is the subset of the forecast response requested with current=...
type CurrentAPIResponse struct {
	Latitude             float64           `json:"latitude"`
	Longitude            float64           `json:"longitude"`
	Timezone             string            `json:"timezone"`
	TimezoneAbbreviation string            `json:"timezone_abbreviation"`
	UtcOffsetSeconds     int               `json:"utc_offset_seconds"`
	Elevation            float64           `json:"elevation"`
	CurrentUnits         map[string]string `json:"current_units"`
	Current              CurrentValues     `json:"current"`
}

// CurrentValues holds the current conditions. Pointers are nil when the provider sends null.
type CurrentValues struct {
	Time          string   `json:"time"`
	Interval      int      `json:"interval"`
	Temperature2m *float64 `json:"temperature_2m"`
	Precipitation *float64 `json:"precipitation"`
	WindSpeed10m  *float64 `json:"wind_speed_10m"` // m/s
}

// ArchiveAPIResponse is the subset of the archive response requested with daily=...
type ArchiveAPIResponse struct {
	Latitude         float64           `json:"latitude"`
	Longitude        float64           `json:"longitude"`
	Timezone         string            `json:"timezone"`
	UtcOffsetSeconds int               `json:"utc_offset_seconds"`
	Elevation        float64           `json:"elevation"`
	DailyUnits       map[string]string `json:"daily_units"`
	Daily            DailyValues       `json:"daily"`
}

// DailyValues holds one entry per returned date. The metric arrays are
// positionally aligned with Time; null elements decode as nil.
type DailyValues struct {
	Time             []string   `json:"time"`
	Temperature2mMax []*float64 `json:"temperature_2m_max"`
	PrecipitationSum []*float64 `json:"precipitation_sum"`
	WindSpeed10mMax  []*float64 `json:"wind_speed_10m_max"` // m/s
}
