package openstreetmap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"weatherwise/internal/providers/upstream"
	"weatherwise/internal/types"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Reverse/
// Sample request: https://nominatim.openstreetmap.org/reverse?lat=40.71&lon=-74.01&format=json&accept-language=en
const (
	baseURL = "https://nominatim.openstreetmap.org/reverse"
)

// ErrNoResult is returned when Nominatim has no place for the coordinates
var ErrNoResult = errors.New("no reverse geocoding result")

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	language   string
	breaker    *upstream.Breaker
	logger     *slog.Logger
}

// NewClient creates a Nominatim client. Nominatim's usage policy requires an
// identifying User-Agent, so callers should always pass one.
func NewClient(httpClient *http.Client, baseURLOverride, userAgent, language string, breaker *upstream.Breaker, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if baseURLOverride == "" {
		baseURLOverride = baseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURLOverride,
		userAgent:  userAgent,
		language:   language,
		breaker:    breaker,
		logger:     logger.With("component", "openstreetmap-client"),
	}
}

// Lookup returns the raw reverse geocoding response for the coordinates
func (c *Client) Lookup(ctx context.Context, latitude, longitude float64) (*ReverseAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("format", "json")
	if c.language != "" {
		q.Set("accept-language", c.language)
	}
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching OpenStreetMap location data",
		"latitude", latitude,
		"longitude", longitude,
		"url", u.String(),
	)

	var apiResp ReverseAPIResponse
	err = c.breaker.Execute(func() error {
		return upstream.GetJSON(ctx, c.httpClient, u.String(), c.userAgent, &apiResp)
	})
	if err != nil {
		c.logger.Warn("failed to fetch OpenStreetMap data",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, err
	}

	if apiResp.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrNoResult, apiResp.Error)
	}

	c.logger.Debug("successfully fetched OpenStreetMap location data",
		"latitude", latitude,
		"longitude", longitude,
		"display_name", apiResp.DisplayName,
	)

	return &apiResp, nil
}

// ReverseGeocode resolves the coordinates to a provider-neutral address
func (c *Client) ReverseGeocode(ctx context.Context, latitude, longitude float64) (*types.Address, error) {
	resp, err := c.Lookup(ctx, latitude, longitude)
	if err != nil {
		return nil, err
	}

	return &types.Address{
		City:             resp.Address.City,
		Town:             resp.Address.Town,
		Village:          resp.Address.Village,
		Country:          resp.Address.Country,
		FormattedAddress: resp.DisplayName,
	}, nil
}
