package weather

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"weatherwise/internal/config"
	"weatherwise/internal/location"
	"weatherwise/internal/providers/openmeteo"
	"weatherwise/internal/providers/upstream"
	"weatherwise/internal/timezone"
	"weatherwise/internal/types"
)

// fallbackTimezone is used when neither the provider nor the offline finder knows the zone
const fallbackTimezone = "UTC"

// Service answers the current-weather and historical-statistics questions
type Service interface {
	// GetCurrent returns current conditions and location metadata for a coordinate
	GetCurrent(ctx context.Context, coords types.Coords) (*CurrentWeather, error)
	// GetHistorical returns the same-date statistics over the configured lookback window
	GetHistorical(ctx context.Context, coords types.Coords, month, day int) (*HistoricalDetails, error)
}

// ForecastProvider defines the interface for live conditions providers
type ForecastProvider interface {
	GetCurrent(ctx context.Context, latitude, longitude float64) (*openmeteo.CurrentAPIResponse, error)
}

// ArchiveProvider defines the interface for historical daily data providers
type ArchiveProvider interface {
	GetDaily(ctx context.Context, latitude, longitude float64, dates []string) (*openmeteo.ArchiveAPIResponse, error)
}

// Options tunes the historical pipeline
type Options struct {
	LookbackYears int
	// StrictAlignment rejects archive answers whose metric arrays differ in length from the dates
	StrictAlignment bool
	// Now defaults to time.Now
	Now func() time.Time
}

type weatherService struct {
	forecast ForecastProvider
	archive  ArchiveProvider
	location location.Service
	timezone timezone.Finder
	opts     Options
	logger   *slog.Logger
}

// NewWeatherService creates a service with real Open-Meteo clients built from cfg
func NewWeatherService(cfg *config.Config, locationSvc location.Service, logger *slog.Logger) (Service, error) {
	tzFinder, err := timezone.NewFinder()
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.Providers.HTTPTimeout}

	forecast := openmeteo.NewForecastClient(
		httpClient,
		cfg.Providers.ForecastURL,
		cfg.Providers.UserAgent,
		upstream.NewBreaker("openmeteo-forecast", cfg.Breaker, logger),
		logger,
	)
	archive := openmeteo.NewArchiveClient(
		httpClient,
		cfg.Providers.ArchiveURL,
		cfg.Providers.UserAgent,
		upstream.NewBreaker("openmeteo-archive", cfg.Breaker, logger),
		logger,
	)

	return NewWeatherServiceWithProviders(forecast, archive, locationSvc, tzFinder, Options{
		LookbackYears:   cfg.App.LookbackYears,
		StrictAlignment: cfg.App.StrictAlignment,
	}, logger), nil
}

// NewWeatherServiceWithProviders creates a new weather service with custom providers
// This is useful for testing with mock providers
func NewWeatherServiceWithProviders(
	forecast ForecastProvider,
	archive ArchiveProvider,
	locationSvc location.Service,
	tzFinder timezone.Finder,
	opts Options,
	logger *slog.Logger,
) Service {
	if opts.LookbackYears <= 0 {
		opts.LookbackYears = DefaultLookbackYears
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &weatherService{
		forecast: forecast,
		archive:  archive,
		location: locationSvc,
		timezone: tzFinder,
		opts:     opts,
		logger:   logger.With("component", "weather-service"),
	}
}

// resolveTimezone prefers the provider's zone, then the offline finder, then UTC
func (s *weatherService) resolveTimezone(providerZone string, coords types.Coords) string {
	if providerZone != "" {
		return providerZone
	}
	if s.timezone != nil {
		zone, err := s.timezone.GetTimezone(coords.Latitude, coords.Longitude)
		if err == nil {
			return zone
		}
		s.logger.Debug("offline timezone lookup failed", "error", err)
	}
	return fallbackTimezone
}

func nonNilUnits(units map[string]string) map[string]string {
	if units == nil {
		return map[string]string{}
	}
	return units
}

func requireCoords(coords types.Coords) error {
	if !coords.Valid() {
		return fmt.Errorf("%w: coordinates must be finite", ErrInvalidParameter)
	}
	return nil
}
