package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	App       AppConfig
	Providers ProvidersConfig
	Geocoder  GeocoderConfig
	Breaker   BreakerConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           int    `validate:"min=1,max=65535"`
	GinMode        string `validate:"oneof=debug release test"`
	AllowedOrigins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	LookbackYears   int `validate:"min=1"` // Number of past years in the historical date axis
	StrictAlignment bool
}

// ProvidersConfig holds the weather provider endpoints
type ProvidersConfig struct {
	ForecastURL string        `validate:"required,url"`
	ArchiveURL  string        `validate:"required,url"`
	HTTPTimeout time.Duration `validate:"min=0"` // 0 disables the timeout
	UserAgent   string        `validate:"required"`
}

// GeocoderConfig holds reverse geocoding configuration
type GeocoderConfig struct {
	Provider     string        `validate:"oneof=nominatim google"`
	URL          string        `validate:"required,url"`
	Timeout      time.Duration `validate:"gt=0"`
	Language     string
	GoogleAPIKey string `validate:"required_if=Provider google"`
}

// BreakerConfig holds circuit breaker settings for upstream calls
type BreakerConfig struct {
	Enabled             bool
	MaxRequests         uint32
	Interval            time.Duration
	Timeout             time.Duration
	ConsecutiveFailures uint32 `validate:"required_if=Enabled true"`
}

// Load reads configuration from .env, config file and environment variables
func Load() (*Config, error) {
	// Missing .env is fine, the environment may already be populated
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.weatherwise")

	setDefaults(v)

	// Read from environment variables, e.g. WEATHERWISE_SERVER_PORT
	v.SetEnvPrefix("WEATHERWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.ginMode", "release")
	v.SetDefault("server.allowedOrigins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("app.lookbackYears", 20)
	v.SetDefault("app.strictAlignment", false)
	v.SetDefault("providers.forecastURL", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("providers.archiveURL", "https://archive-api.open-meteo.com/v1/archive")
	v.SetDefault("providers.httpTimeout", time.Duration(0))
	v.SetDefault("providers.userAgent", "weather_wise_app")
	v.SetDefault("geocoder.provider", "nominatim")
	v.SetDefault("geocoder.url", "https://nominatim.openstreetmap.org/reverse")
	v.SetDefault("geocoder.timeout", 10*time.Second)
	v.SetDefault("geocoder.language", "en")
	v.SetDefault("geocoder.googleAPIKey", "")
	v.SetDefault("breaker.enabled", false)
	v.SetDefault("breaker.maxRequests", 1)
	v.SetDefault("breaker.interval", time.Minute)
	v.SetDefault("breaker.timeout", 30*time.Second)
	v.SetDefault("breaker.consecutiveFailures", 5)
}

// Validate checks field constraints and normalizes the geocoder language tag
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.Geocoder.Language != "" {
		tag, err := language.Parse(c.Geocoder.Language)
		if err != nil {
			return fmt.Errorf("invalid config: geocoder language %q: %w", c.Geocoder.Language, err)
		}
		c.Geocoder.Language = tag.String()
	}

	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
