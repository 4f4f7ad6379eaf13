package weather

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"weatherwise/internal/providers/openmeteo"
	"weatherwise/internal/stats"
	"weatherwise/internal/types"
)

// GetHistorical fetches the whole date axis with one archive call and summarizes
// each metric independently.
func (s *weatherService) GetHistorical(ctx context.Context, coords types.Coords, month, day int) (*HistoricalDetails, error) {
	if err := requireCoords(coords); err != nil {
		return nil, err
	}

	dates := BuildDateAxis(month, day, s.opts.LookbackYears, s.opts.Now())

	s.logger.Info("fetching historical data",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"from", dates[0],
		"to", dates[len(dates)-1],
	)

	resp, err := s.archive.GetDaily(ctx, coords.Latitude, coords.Longitude, dates)
	if err != nil {
		return nil, upstreamErr(err)
	}
	if resp == nil {
		return nil, upstreamErr(fmt.Errorf("empty archive response"))
	}

	daily := resp.Daily
	if len(daily.Time) == 0 {
		return nil, ErrNoHistoricalData
	}

	years, err := parseYears(daily.Time)
	if err != nil {
		return nil, upstreamErr(err)
	}

	if s.opts.StrictAlignment {
		if err := checkAlignment(daily); err != nil {
			return nil, upstreamErr(err)
		}
	}

	wind := types.WindSeriesToKph(daily.WindSpeed10mMax)

	details := &HistoricalDetails{
		Temperatures:  newSeries(UnitCelsius, years, daily.Temperature2mMax),
		Precipitation: newSeries(UnitMillimeters, years, daily.PrecipitationSum),
		WindSpeeds:    newSeries(UnitKph, years, wind),
	}

	s.logger.Info("successfully fetched historical data",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"years", len(years),
	)

	return details, nil
}

func newSeries(unit string, years []int, values []*float64) MetricSeries {
	if values == nil {
		values = []*float64{}
	}
	return MetricSeries{
		Unit:   unit,
		Years:  years,
		Values: values,
		Stats:  stats.Summarize(values),
	}
}

// parseYears takes the year component of each "YYYY-MM-DD" date
func parseYears(dates []string) ([]int, error) {
	years := make([]int, len(dates))
	for i, d := range dates {
		prefix, _, _ := strings.Cut(d, "-")
		year, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("unparsable date %q in archive response: %w", d, err)
		}
		years[i] = year
	}
	return years, nil
}

func checkAlignment(daily openmeteo.DailyValues) error {
	want := len(daily.Time)
	series := map[string]int{
		"temperature_2m_max": len(daily.Temperature2mMax),
		"precipitation_sum":  len(daily.PrecipitationSum),
		"wind_speed_10m_max": len(daily.WindSpeed10mMax),
	}
	for name, got := range series {
		if got != want {
			return fmt.Errorf("archive series %s has %d values for %d dates", name, got, want)
		}
	}
	return nil
}
