// Package google adapts the Google Maps reverse geocoder to the location resolver.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/kelvins/geocoder"

	"weatherwise/internal/types"
)

// ErrNoResult is returned when Google has no address for the coordinates
var ErrNoResult = errors.New("no reverse geocoding result")

// geocoder keeps the API key in a package variable, so lookups are serialized
var keyMu sync.Mutex

type reverseFunc func(geocoder.Location) ([]geocoder.Address, error)

type Client struct {
	apiKey  string
	reverse reverseFunc
	logger  *slog.Logger
}

func NewClient(apiKey string, logger *slog.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		reverse: geocoder.GeocodingReverse,
		logger:  logger.With("component", "google-geocoder"),
	}
}

// ReverseGeocode resolves the coordinates to a provider-neutral address.
// The underlying library takes no context, so ctx only bounds how long we wait.
func (c *Client) ReverseGeocode(ctx context.Context, latitude, longitude float64) (*types.Address, error) {
	type result struct {
		addresses []geocoder.Address
		err       error
	}
	done := make(chan result, 1)

	go func() {
		keyMu.Lock()
		defer keyMu.Unlock()
		geocoder.ApiKey = c.apiKey
		addresses, err := c.reverse(geocoder.Location{Latitude: latitude, Longitude: longitude})
		done <- result{addresses: addresses, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("google reverse geocoding: %w", ctx.Err())
	case res := <-done:
		if res.err != nil {
			c.logger.Warn("google reverse geocoding failed",
				"latitude", latitude,
				"longitude", longitude,
				"error", res.err,
			)
			return nil, fmt.Errorf("google reverse geocoding: %w", res.err)
		}
		if len(res.addresses) == 0 {
			return nil, ErrNoResult
		}
		return toAddress(res.addresses[0]), nil
	}
}

// toAddress maps the most specific Google result. Google has no town/village
// split, so only City is filled.
func toAddress(a geocoder.Address) *types.Address {
	return &types.Address{
		City:             a.City,
		Country:          a.Country,
		FormattedAddress: a.FormattedAddress,
	}
}
