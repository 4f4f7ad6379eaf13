package openmeteo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"weatherwise/internal/config"
	"weatherwise/internal/providers/upstream"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestForecastClient_GetCurrent(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"latitude": 40.71,
			"longitude": -74.0,
			"timezone": "America/New_York",
			"current_units": {"temperature_2m": "°C", "precipitation": "mm", "wind_speed_10m": "m/s"},
			"current": {"time": "2024-07-04T12:00", "interval": 900, "temperature_2m": 27.5, "precipitation": null, "wind_speed_10m": 4.2}
		}`))
	}))
	defer server.Close()

	client := NewForecastClient(server.Client(), server.URL, "weatherwise-test", nil, discardLogger())

	resp, err := client.GetCurrent(context.Background(), 40.7128, -74.006)
	if err != nil {
		t.Fatalf("GetCurrent() unexpected error = %v", err)
	}

	wantQuery := map[string]string{
		"latitude":        "40.7128",
		"longitude":       "-74.006",
		"current":         "temperature_2m,precipitation,wind_speed_10m",
		"timezone":        "auto",
		"wind_speed_unit": "ms",
	}
	for k, want := range wantQuery {
		if got := gotQuery.Get(k); got != want {
			t.Errorf("query %s = %q, want %q", k, got, want)
		}
	}

	if resp.Timezone != "America/New_York" {
		t.Errorf("Timezone = %q", resp.Timezone)
	}
	if resp.Current.Temperature2m == nil || *resp.Current.Temperature2m != 27.5 {
		t.Errorf("Temperature2m = %v, want 27.5", resp.Current.Temperature2m)
	}
	if resp.Current.Precipitation != nil {
		t.Errorf("Precipitation = %v, want nil", *resp.Current.Precipitation)
	}
	if resp.CurrentUnits["temperature_2m"] != "°C" {
		t.Errorf("CurrentUnits = %v", resp.CurrentUnits)
	}
}

func TestForecastClient_GetCurrent_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":true,"reason":"Latitude must be in range of -90 to 90°."}`, http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewForecastClient(server.Client(), server.URL, "", nil, discardLogger())

	_, err := client.GetCurrent(context.Background(), 999, 0)
	var statusErr *upstream.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("GetCurrent() error = %v, want StatusError", err)
	}
	if statusErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", statusErr.StatusCode)
	}
}

func TestArchiveClient_GetDaily(t *testing.T) {
	var calls int
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"daily_units": {"temperature_2m_max": "°C"},
			"daily": {
				"time": ["2022-07-04", "2023-07-04"],
				"temperature_2m_max": [30.1, null],
				"precipitation_sum": [0.0, 2.5],
				"wind_speed_10m_max": [null, 5.0]
			}
		}`))
	}))
	defer server.Close()

	client := NewArchiveClient(server.Client(), server.URL, "", nil, discardLogger())

	dates := []string{"2022-07-04", "2023-07-04"}
	resp, err := client.GetDaily(context.Background(), 40.7128, -74.006, dates)
	if err != nil {
		t.Fatalf("GetDaily() unexpected error = %v", err)
	}

	if calls != 1 {
		t.Errorf("upstream calls = %d, want 1", calls)
	}
	if got := gotQuery.Get("time"); got != "2022-07-04,2023-07-04" {
		t.Errorf("time = %q", got)
	}
	if got := gotQuery.Get("daily"); got != "temperature_2m_max,precipitation_sum,wind_speed_10m_max" {
		t.Errorf("daily = %q", got)
	}

	if len(resp.Daily.Time) != 2 {
		t.Fatalf("len(Time) = %d, want 2", len(resp.Daily.Time))
	}
	if resp.Daily.Temperature2mMax[1] != nil {
		t.Error("expected null temperature to decode as nil")
	}
	if resp.Daily.WindSpeed10mMax[0] != nil {
		t.Error("expected null wind speed to decode as nil")
	}
	if resp.Daily.PrecipitationSum[1] == nil || *resp.Daily.PrecipitationSum[1] != 2.5 {
		t.Errorf("PrecipitationSum[1] = %v, want 2.5", resp.Daily.PrecipitationSum[1])
	}
}

func TestArchiveClient_BreakerOpens(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	breaker := upstream.NewBreaker("archive", config.BreakerConfig{
		Enabled:             true,
		MaxRequests:         1,
		ConsecutiveFailures: 2,
		Timeout:             time.Minute,
	}, discardLogger())
	client := NewArchiveClient(server.Client(), server.URL, "", breaker, discardLogger())

	for range 2 {
		if _, err := client.GetDaily(context.Background(), 1, 2, []string{"2023-01-01"}); err == nil {
			t.Fatal("GetDaily() expected error but got none")
		}
	}

	_, err := client.GetDaily(context.Background(), 1, 2, []string{"2023-01-01"})
	if !errors.Is(err, upstream.ErrCircuitOpen) {
		t.Errorf("GetDaily() error = %v, want ErrCircuitOpen", err)
	}
	if calls != 2 {
		t.Errorf("upstream calls = %d, want 2", calls)
	}
}
