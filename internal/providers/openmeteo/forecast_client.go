package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"weatherwise/internal/providers/upstream"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=40.71&longitude=-74.01&current=temperature_2m,precipitation,wind_speed_10m&timezone=auto&wind_speed_unit=ms
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"
)

var currentVars = []string{
	"temperature_2m",
	"precipitation",
	"wind_speed_10m",
}

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	breaker    *upstream.Breaker
	logger     *slog.Logger
}

// NewForecastClient creates a forecast client. An empty baseURL selects the public endpoint.
func NewForecastClient(httpClient *http.Client, baseURL, userAgent string, breaker *upstream.Breaker, logger *slog.Logger) *ForecastClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if baseURL == "" {
		baseURL = baseForecastURL
	}
	return &ForecastClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		breaker:    breaker,
		logger:     logger.With("component", "openmeteo-forecast-client"),
	}
}

// GetCurrent fetches current conditions for the given coordinates. The provider
// resolves the local timezone itself (timezone=auto).
func (c *ForecastClient) GetCurrent(ctx context.Context, latitude, longitude float64) (*CurrentAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", formatCoord(latitude))
	q.Set("longitude", formatCoord(longitude))
	q.Set("current", strings.Join(currentVars, ","))
	q.Set("timezone", "auto")
	q.Set("wind_speed_unit", "ms")
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching current conditions",
		"latitude", latitude,
		"longitude", longitude,
		"url", u.String(),
	)

	var apiResp CurrentAPIResponse
	err = c.breaker.Execute(func() error {
		return upstream.GetJSON(ctx, c.httpClient, u.String(), c.userAgent, &apiResp)
	})
	if err != nil {
		c.logger.Error("failed to fetch current conditions",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, err
	}

	return &apiResp, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
