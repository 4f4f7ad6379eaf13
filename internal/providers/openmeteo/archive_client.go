package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"weatherwise/internal/providers/upstream"
)

// API Docs: https://open-meteo.com/en/docs/historical-weather-api
// Sample request: https://archive-api.open-meteo.com/v1/archive?latitude=40.71&longitude=-74.01&daily=temperature_2m_max,precipitation_sum,wind_speed_10m_max&time=2004-07-04,2005-07-04&wind_speed_unit=ms
const (
	baseArchiveURL = "https://archive-api.open-meteo.com/v1/archive"
)

var dailyVars = []string{
	"temperature_2m_max",
	"precipitation_sum",
	"wind_speed_10m_max",
}

type ArchiveClient struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	breaker    *upstream.Breaker
	logger     *slog.Logger
}

// NewArchiveClient creates an archive client. An empty baseURL selects the public endpoint.
func NewArchiveClient(httpClient *http.Client, baseURL, userAgent string, breaker *upstream.Breaker, logger *slog.Logger) *ArchiveClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if baseURL == "" {
		baseURL = baseArchiveURL
	}
	return &ArchiveClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		breaker:    breaker,
		logger:     logger.With("component", "openmeteo-archive-client"),
	}
}

// GetDaily fetches daily aggregates for every date in dates with a single request
func (c *ArchiveClient) GetDaily(ctx context.Context, latitude, longitude float64, dates []string) (*ArchiveAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", formatCoord(latitude))
	q.Set("longitude", formatCoord(longitude))
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("time", strings.Join(dates, ","))
	q.Set("wind_speed_unit", "ms")
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching daily archive data",
		"latitude", latitude,
		"longitude", longitude,
		"dates", len(dates),
		"url", u.String(),
	)

	var apiResp ArchiveAPIResponse
	err = c.breaker.Execute(func() error {
		return upstream.GetJSON(ctx, c.httpClient, u.String(), c.userAgent, &apiResp)
	})
	if err != nil {
		c.logger.Error("failed to fetch daily archive data",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, err
	}

	return &apiResp, nil
}
