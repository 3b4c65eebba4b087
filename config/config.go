package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppName    string `mapstructure:"app_name"`
	LogLevel   string `mapstructure:"log_level"`
	PrettyLogs bool   `mapstructure:"pretty_logs"`

	// Matching
	TopMatchLimit      int     `mapstructure:"top_match_limit"`
	MinTopScore        int     `mapstructure:"min_top_score"`
	NearbyRadiusKm     float64 `mapstructure:"nearby_radius_km"`
	SentinelDistanceKm float64 `mapstructure:"sentinel_distance_km"`

	// Tracing
	TracingEnabled  bool          `mapstructure:"tracing_enabled"`
	OTLPEndpoint    string        `mapstructure:"otlp_endpoint"`
	OTLPProtocol    string        `mapstructure:"otlp_protocol"`
	OTLPInsecure    bool          `mapstructure:"otlp_insecure"`
	OTLPTimeout     time.Duration `mapstructure:"otlp_timeout"`
}

// Load reads configuration from the environment, with a .env file taken into
// account when present. Every key has a usable default so a bare environment
// still yields a valid Config.
func Load() (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("FERN")
	v.AutomaticEnv()

	v.SetDefault("app_name", "fern")
	v.SetDefault("log_level", "info")
	v.SetDefault("pretty_logs", false)

	v.SetDefault("top_match_limit", 5)
	v.SetDefault("min_top_score", 40)
	v.SetDefault("nearby_radius_km", 100.0)
	v.SetDefault("sentinel_distance_km", 500.0)

	v.SetDefault("tracing_enabled", false)
	v.SetDefault("otlp_endpoint", "")
	v.SetDefault("otlp_protocol", "grpc")
	v.SetDefault("otlp_insecure", true)
	v.SetDefault("otlp_timeout", 10*time.Second)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.TopMatchLimit <= 0 {
		return nil, fmt.Errorf("top_match_limit must be positive, got %d", cfg.TopMatchLimit)
	}
	if cfg.NearbyRadiusKm <= 0 {
		return nil, fmt.Errorf("nearby_radius_km must be positive, got %f", cfg.NearbyRadiusKm)
	}
	if cfg.SentinelDistanceKm <= 0 {
		return nil, fmt.Errorf("sentinel_distance_km must be positive, got %f", cfg.SentinelDistanceKm)
	}

	return &cfg, nil
}
