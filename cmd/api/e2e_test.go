package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"weatherwise/internal/config"
	"weatherwise/internal/stats"
)

// fakeUpstream serves forecast, archive and reverse geocoding answers and counts every call
type fakeUpstream struct {
	server       *httptest.Server
	calls        atomic.Int32
	archiveCalls atomic.Int32
	emptyArchive bool
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	t.Helper()
	f := &fakeUpstream{}

	mux := http.NewServeMux()
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		writeJSON(w, map[string]any{
			"timezone":      "America/New_York",
			"current_units": map[string]string{"temperature_2m": "°C", "precipitation": "mm", "wind_speed_10m": "m/s"},
			"current":       map[string]any{"temperature_2m": 24.3, "precipitation": 0.0, "wind_speed_10m": 5.0},
		})
	})
	mux.HandleFunc("/archive", func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		f.archiveCalls.Add(1)
		if f.emptyArchive {
			writeJSON(w, map[string]any{"daily": map[string]any{"time": []string{}}})
			return
		}

		dates := strings.Split(r.URL.Query().Get("time"), ",")
		temps := make([]any, len(dates))
		precip := make([]any, len(dates))
		wind := make([]any, len(dates))
		for i := range dates {
			temps[i] = 25.0 + float64(i%7)
			if i%4 == 0 {
				precip[i] = nil
			} else {
				precip[i] = float64(i) / 2
			}
			wind[i] = 3.0 + float64(i%5)
		}
		writeJSON(w, map[string]any{
			"daily": map[string]any{
				"time":               dates,
				"temperature_2m_max": temps,
				"precipitation_sum":  precip,
				"wind_speed_10m_max": wind,
			},
		})
	})
	mux.HandleFunc("/reverse", func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		writeJSON(w, map[string]any{
			"display_name": "City Hall, Manhattan, New York, United States",
			"address":      map[string]string{"city": "New York", "country": "United States"},
		})
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func newE2EApp(t *testing.T, f *fakeUpstream) *App {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 5000, GinMode: gin.TestMode, AllowedOrigins: []string{"*"}},
		App:    config.AppConfig{LookbackYears: 20},
		Providers: config.ProvidersConfig{
			ForecastURL: f.server.URL + "/forecast",
			ArchiveURL:  f.server.URL + "/archive",
			UserAgent:   "weatherwise-test",
		},
		Geocoder: config.GeocoderConfig{
			Provider: "nominatim",
			URL:      f.server.URL + "/reverse",
			Timeout:  time.Second,
			Language: "en",
		},
	}

	app, err := NewApp(cfg, discardLogger())
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	return app
}

func TestE2E_HistoricalStats(t *testing.T) {
	f := newFakeUpstream(t)
	rec := doGet(t, newE2EApp(t, f), "/api/historical-stats?lat=40.7128&lon=-74.0060&month=7&day=4")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := f.archiveCalls.Load(); got != 1 {
		t.Errorf("archive calls = %d, want 1", got)
	}

	var body HistoricalStatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	d := body.HistoricalDetails
	lastYear := time.Now().Year() - 1
	for name, series := range map[string][]int{
		"temperatures":  d.Temperatures.Years,
		"precipitation": d.Precipitation.Years,
		"windSpeeds":    d.WindSpeeds.Years,
	} {
		if len(series) != 20 {
			t.Fatalf("%s: %d years, want 20", name, len(series))
		}
		if series[0] != lastYear-19 || series[19] != lastYear {
			t.Errorf("%s: years %d..%d, want %d..%d", name, series[0], series[19], lastYear-19, lastYear)
		}
	}

	for name, series := range map[string]struct {
		got, want string
		summary   *stats.Summary
	}{
		"temperatures":  {d.Temperatures.Unit, "°C", d.Temperatures.Stats},
		"precipitation": {d.Precipitation.Unit, "mm", d.Precipitation.Stats},
		"windSpeeds":    {d.WindSpeeds.Unit, "km/h", d.WindSpeeds.Stats},
	} {
		if series.got != series.want {
			t.Errorf("%s: unit = %q, want %q", name, series.got, series.want)
		}
		if series.summary == nil {
			t.Fatalf("%s: stats missing", name)
		}
		if series.summary.Max < series.summary.Mean || series.summary.Mean < series.summary.Min {
			t.Errorf("%s: max %v, mean %v, min %v out of order", name, series.summary.Max, series.summary.Mean, series.summary.Min)
		}
	}

	// wind is converted from m/s: 3 m/s is the smallest fake reading
	if got := d.WindSpeeds.Stats.Min; got < 10.79 || got > 10.81 {
		t.Errorf("wind min = %v km/h, want 10.8", got)
	}
	// null precipitation stays null in values
	if d.Precipitation.Values[0] != nil {
		t.Errorf("precipitation[0] = %v, want null", *d.Precipitation.Values[0])
	}
}

func TestE2E_HistoricalStats_NoData(t *testing.T) {
	f := newFakeUpstream(t)
	f.emptyArchive = true

	rec := doGet(t, newE2EApp(t, f), "/api/historical-stats?lat=40.7128&lon=-74.0060&month=7&day=4")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := rec.Body.String(); got != `{"error":"No historical data found for this date range."}` {
		t.Errorf("body = %s", got)
	}
}

func TestE2E_InvalidParams_NoUpstreamCalls(t *testing.T) {
	f := newFakeUpstream(t)
	app := newE2EApp(t, f)

	targets := []string{
		"/api/current-weather?lat=abc&lon=1",
		"/api/current-weather",
		"/api/historical-stats?lat=1&lon=2&month=x&day=4",
		"/api/historical-stats?lat=1&lon=2",
	}
	for _, target := range targets {
		rec := doGet(t, app, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
	}

	if got := f.calls.Load(); got != 0 {
		t.Errorf("upstream calls = %d, want 0", got)
	}
}

func TestE2E_CurrentWeather(t *testing.T) {
	f := newFakeUpstream(t)
	rec := doGet(t, newE2EApp(t, f), "/api/current-weather?lat=40.7128&lon=-74.0060")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		LocationName string            `json:"locationName"`
		LocalTime    string            `json:"localTime"`
		Temperature  *float64          `json:"currentTemperature"`
		WindSpeed    float64           `json:"currentWindSpeed"`
		Units        map[string]string `json:"units"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if body.LocationName != "New York, United States" {
		t.Errorf("locationName = %q", body.LocationName)
	}
	if body.LocalTime == "" || body.LocalTime == "Not Available" {
		t.Errorf("localTime = %q", body.LocalTime)
	}
	if body.Temperature == nil || *body.Temperature != 24.3 {
		t.Errorf("currentTemperature = %v", body.Temperature)
	}
	if fmt.Sprintf("%.1f", body.WindSpeed) != "18.0" {
		t.Errorf("currentWindSpeed = %v, want 18", body.WindSpeed)
	}
	if body.Units["temperature_2m"] != "°C" {
		t.Errorf("units = %v", body.Units)
	}
}
