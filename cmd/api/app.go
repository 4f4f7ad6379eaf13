package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"weatherwise/internal/config"
	"weatherwise/internal/location"
	"weatherwise/internal/providers/google"
	"weatherwise/internal/providers/openstreetmap"
	"weatherwise/internal/providers/upstream"
	"weatherwise/internal/weather"
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	weatherService weather.Service
	cfg            *config.Config
}

// NewApp creates a new application with real provider clients
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	geocoder, err := newGeocoder(cfg, logger)
	if err != nil {
		return nil, err
	}
	locationSvc := location.NewLocationService(geocoder, cfg.Geocoder.Timeout, logger)

	weatherSvc, err := weather.NewWeatherService(cfg, locationSvc, logger)
	if err != nil {
		return nil, err
	}

	return NewAppWithServices(cfg, logger, weatherSvc), nil
}

// NewAppWithServices creates an application around an existing weather service
func NewAppWithServices(cfg *config.Config, logger *slog.Logger, weatherSvc weather.Service) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()

	app := &App{
		router:         router,
		logger:         logger,
		weatherService: weatherSvc,
		cfg:            cfg,
	}

	router.Use(
		app.recovery(),
		requestID(),
		requestLogger(logger),
		cors(cfg.Server.AllowedOrigins),
	)

	app.registerRoutes()

	return app
}

// newGeocoder builds the reverse geocoding client selected by geocoder.provider
func newGeocoder(cfg *config.Config, logger *slog.Logger) (location.ReverseGeocodeProvider, error) {
	switch cfg.Geocoder.Provider {
	case "", "nominatim":
		return openstreetmap.NewClient(
			&http.Client{},
			cfg.Geocoder.URL,
			cfg.Providers.UserAgent,
			cfg.Geocoder.Language,
			upstream.NewBreaker("nominatim", cfg.Breaker, logger),
			logger,
		), nil
	case "google":
		return google.NewClient(cfg.Geocoder.GoogleAPIKey, logger), nil
	default:
		return nil, fmt.Errorf("unknown geocoder provider %q", cfg.Geocoder.Provider)
	}
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
