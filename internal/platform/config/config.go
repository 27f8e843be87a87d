package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port           string   `validate:"required,numeric"`
	IsProduction   bool
	RateLimit      string   `validate:"required"` // ulule/limiter formatted rate, e.g. "120-M"
	AllowedOrigins []string `validate:"min=1,dive,required"`
	MaxBatchSize   int      `validate:"min=1,max=1000"`
	FixturePath    string   `validate:"required"`

	// Optional PostHog analytics; disabled when the key is empty
	PosthogAPIKey   string
	PosthogEndpoint string `validate:"omitempty,url"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("MAX_BATCH_SIZE", 100)
	viper.SetDefault("FIXTURE_PATH", "fixtures/cheque_amounts.csv")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "")

	// Values from the .env file are already in the environment, so actual
	// environment variables and .env entries both override the defaults above.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.AllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.MaxBatchSize = viper.GetInt("MAX_BATCH_SIZE")
	cfg.FixturePath = viper.GetString("FIXTURE_PATH")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")

	if cfg.IsProduction && len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		log.Println("Warning: CORS_ALLOWED_ORIGINS allows every origin in production.")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// splitList turns "a, b,,c" into [a b c].
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
