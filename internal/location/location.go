package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"weatherwise/internal/types"
)

const (
	// LocalTimeLayout renders e.g. "03:04 PM, Mon Jan 02"
	LocalTimeLayout = "03:04 PM, Mon Jan 02"
	// TimeNotAvailable replaces the local time when the zone cannot be loaded
	TimeNotAvailable = "Not Available"
	// UnknownCity is used when the address has no city, town or village
	UnknownCity = "Unknown Location"

	DefaultGeocodeTimeout = 10 * time.Second
)

var (
	ErrNoAddress       = errors.New("geocoder returned no address")
	ErrEmptyTimezone   = errors.New("empty timezone")
	ErrAddressNotNamed = errors.New("address has neither country nor formatted address")
)

// Service turns coordinates into display metadata. It never fails: every
// lookup that goes wrong is replaced by a fallback value.
type Service interface {
	Resolve(ctx context.Context, coords types.Coords, timezoneID string) Resolution
}

// ReverseGeocodeProvider defines the interface for reverse geocoding providers
type ReverseGeocodeProvider interface {
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (*types.Address, error)
}

// Resolution keeps both sub-results so callers can tell real values from fallbacks
type Resolution struct {
	Name      types.Outcome[string]
	LocalTime types.Outcome[string]
}

// Info flattens the resolution for the response body
func (r Resolution) Info() types.LocationInfo {
	return types.LocationInfo{
		Name:      r.Name.Value,
		LocalTime: r.LocalTime.Value,
	}
}

type locationService struct {
	geocoder ReverseGeocodeProvider
	timeout  time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

// NewLocationService creates a resolver around a geocoder built once at startup.
// A non-positive timeout selects DefaultGeocodeTimeout.
func NewLocationService(geocoder ReverseGeocodeProvider, timeout time.Duration, logger *slog.Logger) Service {
	return NewLocationServiceWithClock(geocoder, timeout, logger, time.Now)
}

// NewLocationServiceWithClock is NewLocationService with an injectable clock for tests
func NewLocationServiceWithClock(geocoder ReverseGeocodeProvider, timeout time.Duration, logger *slog.Logger, now func() time.Time) Service {
	if timeout <= 0 {
		timeout = DefaultGeocodeTimeout
	}
	return &locationService{
		geocoder: geocoder,
		timeout:  timeout,
		now:      now,
		logger:   logger.With("component", "location-service"),
	}
}

func (s *locationService) Resolve(ctx context.Context, coords types.Coords, timezoneID string) Resolution {
	res := Resolution{
		Name:      s.resolveName(ctx, coords),
		LocalTime: s.resolveLocalTime(timezoneID),
	}

	if !res.Name.Resolved {
		s.logger.Warn("using fallback location name",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", res.Name.Cause,
		)
	}
	if !res.LocalTime.Resolved {
		s.logger.Warn("local time not available",
			"timezone", timezoneID,
			"error", res.LocalTime.Cause,
		)
	}

	return res
}

func (s *locationService) resolveName(ctx context.Context, coords types.Coords) types.Outcome[string] {
	if s.geocoder == nil {
		return types.Fallback(coords.Label(), ErrNoAddress)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	addr, err := s.geocoder.ReverseGeocode(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		return types.Fallback(coords.Label(), fmt.Errorf("failed to reverse geocode: %w", err))
	}
	if addr == nil {
		return types.Fallback(coords.Label(), ErrNoAddress)
	}

	name, ok := DisplayName(addr)
	if !ok {
		return types.Fallback(coords.Label(), ErrAddressNotNamed)
	}
	return types.Resolved(name)
}

func (s *locationService) resolveLocalTime(timezoneID string) types.Outcome[string] {
	if timezoneID == "" {
		return types.Fallback(TimeNotAvailable, ErrEmptyTimezone)
	}

	loc, err := time.LoadLocation(timezoneID)
	if err != nil {
		return types.Fallback(TimeNotAvailable, fmt.Errorf("failed to load timezone %q: %w", timezoneID, err))
	}

	return types.Resolved(s.now().In(loc).Format(LocalTimeLayout))
}

// DisplayName picks the name shown for an address: "City, Country" when a
// country is known, otherwise the last segment of the formatted address.
// It reports false when neither is available.
func DisplayName(addr *types.Address) (string, bool) {
	city := firstNonEmpty(addr.City, addr.Town, addr.Village)
	if city == "" {
		city = UnknownCity
	}

	if addr.Country != "" {
		return city + ", " + addr.Country, true
	}

	if addr.FormattedAddress != "" {
		parts := strings.Split(addr.FormattedAddress, ", ")
		if tail := strings.TrimSpace(parts[len(parts)-1]); tail != "" {
			return tail, true
		}
	}

	return "", false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
