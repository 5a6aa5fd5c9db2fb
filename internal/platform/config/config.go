package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret string
	JWTIssuer string
	// JWTExpiryDuration of zero means issued tokens never expire, which is
	// the historical behavior of this API. Set JWT_EXPIRY_DURATION to opt
	// into expiring tokens.
	JWTExpiryDuration time.Duration

	// AuthRateLimit is an ulule/limiter formatted rate (e.g. "10-M") applied
	// to the public register/login endpoints.
	AuthRateLimit string
}

// LoadConfig loads configuration from environment variables and a .env file
// if one is present. Environment variables win over .env values.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "secret_key_change_me_in_prod")
	viper.SetDefault("JWT_ISSUER", "stockpos-backend")
	viper.SetDefault("JWT_EXPIRY_DURATION", "0")
	viper.SetDefault("AUTH_RATE_LIMIT", "10-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "secret_key_change_me_in_prod" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 0
		if jwtExpiryStr != "" && jwtExpiryStr != "0" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Tokens will not expire.\n", jwtExpiryStr)
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")

	return cfg, nil
}
