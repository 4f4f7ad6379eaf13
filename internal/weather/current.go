package weather

import (
	"context"
	"fmt"

	"weatherwise/internal/location"
	"weatherwise/internal/types"
)

// GetCurrent fetches live conditions first, then resolves the location using
// the zone the provider reported.
func (s *weatherService) GetCurrent(ctx context.Context, coords types.Coords) (*CurrentWeather, error) {
	if err := requireCoords(coords); err != nil {
		return nil, err
	}

	resp, err := s.forecast.GetCurrent(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		return nil, upstreamErr(err)
	}
	if resp == nil {
		return nil, upstreamErr(fmt.Errorf("empty forecast response"))
	}

	zone := s.resolveTimezone(resp.Timezone, coords)

	var info types.LocationInfo
	if s.location != nil {
		info = s.location.Resolve(ctx, coords, zone).Info()
	} else {
		info = types.LocationInfo{Name: coords.Label(), LocalTime: location.TimeNotAvailable}
	}

	return &CurrentWeather{
		LocationInfo:  info,
		Temperature:   resp.Current.Temperature2m,
		Precipitation: resp.Current.Precipitation,
		WindSpeed:     types.NewWindSpeedFromMps(resp.Current.WindSpeed10m).Kph,
		Units:         nonNilUnits(resp.CurrentUnits),
	}, nil
}
