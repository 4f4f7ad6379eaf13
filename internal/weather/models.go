package weather

import (
	"weatherwise/internal/stats"
	"weatherwise/internal/types"
)

const (
	UnitCelsius     = "°C"
	UnitMillimeters = "mm"
	UnitKph         = "km/h"
)

// CurrentWeather is the current conditions snapshot plus location metadata
type CurrentWeather struct {
	types.LocationInfo
	Temperature   *float64          `json:"currentTemperature" example:"21.4"`
	Precipitation *float64          `json:"currentPrecipitation" example:"0"`
	WindSpeed     float64           `json:"currentWindSpeed" example:"12.6"` // km/h
	Units         map[string]string `json:"units"`
}

// MetricSeries is one metric over the date axis. Values are positionally
// aligned with Years; Stats is null when no valid value remains.
type MetricSeries struct {
	Unit   string         `json:"unit" example:"°C"`
	Years  []int          `json:"years"`
	Values []*float64     `json:"values"`
	Stats  *stats.Summary `json:"stats"`
}

// HistoricalDetails holds the three compared metrics for one calendar date
type HistoricalDetails struct {
	Temperatures  MetricSeries `json:"temperatures"`
	Precipitation MetricSeries `json:"precipitation"`
	WindSpeeds    MetricSeries `json:"windSpeeds"`
}
