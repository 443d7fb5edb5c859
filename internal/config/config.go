package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultSessionSecret = "change-me-session-secret"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Session configuration
	SessionSecret   string        `mapstructure:"SESSION_SECRET"`
	SessionTTL      time.Duration `mapstructure:"SESSION_TTL"`
	ProfileCacheTTL time.Duration `mapstructure:"PROFILE_CACHE_TTL"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Sign-in throttling, per client IP
	SignInRatePerSecond float64 `mapstructure:"SIGNIN_RATE_PER_SECOND"`
	SignInRateBurst     int     `mapstructure:"SIGNIN_RATE_BURST"`

	// Avatar storage
	AvatarStorageDir string `mapstructure:"AVATAR_STORAGE_DIR"`
	AvatarBaseURL    string `mapstructure:"AVATAR_BASE_URL"`

	// Tracing
	OTLPEndpoint string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPInsecure bool   `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "crm")
	v.SetDefault("DB_SSL_MODE", "disable")

	// Session defaults: 30 days, profile lookups cached for a minute
	v.SetDefault("SESSION_SECRET", defaultSessionSecret)
	v.SetDefault("SESSION_TTL", 30*24*time.Hour)
	v.SetDefault("PROFILE_CACHE_TTL", time.Minute)

	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	v.SetDefault("SIGNIN_RATE_PER_SECOND", 1.0)
	v.SetDefault("SIGNIN_RATE_BURST", 5)

	v.SetDefault("AVATAR_STORAGE_DIR", "./data")
	v.SetDefault("AVATAR_BASE_URL", "/static")

	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", false)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.IsProduction() && config.SessionSecret == defaultSessionSecret {
		return fmt.Errorf("SESSION_SECRET must be set in production")
	}
	if config.SessionSecret == "" {
		return fmt.Errorf("session secret is required")
	}
	if config.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}
	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
