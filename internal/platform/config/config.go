package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DevJWTSecret is the signing secret used outside production when JWT_SECRET is unset.
const DevJWTSecret = "dev-only-insecure-jwt-secret"

// ErrInsecureJWTSecret is returned when production starts without a real signing secret.
var ErrInsecureJWTSecret = errors.New("JWT_SECRET must be set to a non-default value in production")

// Config holds application configuration.
type Config struct {
	Port         string
	BaseURL      string
	IsProduction bool

	MongoURI           string
	MongoDatabase      string
	DBOperationTimeout time.Duration
	RunMigrations      bool

	JWTSecret                  string
	JWTExpiryDuration          time.Duration
	RefreshTokenExpiryDuration time.Duration
	BcryptCost                 int

	RateLimitWindow time.Duration
	RateLimitMax    int64
	LoginRateLimit  string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	setDefaults()
	viper.AutomaticEnv()

	return fromViper()
}

func setDefaults() {
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("BASE_URL", "/api")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGODB_DB", "garage")
	viper.SetDefault("DB_OPERATION_TIMEOUT", "5s")
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("BCRYPT_COST", 10)
	viper.SetDefault("RATE_LIMIT_WINDOW", "15m")
	viper.SetDefault("RATE_LIMIT_MAX", 1000)
	viper.SetDefault("LOGIN_RATE_LIMIT", "20-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "https://carlinegarage.netlify.app")
}

func fromViper() (*Config, error) {
	cfg := &Config{
		Port:          viper.GetString("PORT"),
		BaseURL:       viper.GetString("BASE_URL"),
		IsProduction:  viper.GetBool("IS_PRODUCTION"),
		MongoURI:      viper.GetString("MONGODB_URI"),
		MongoDatabase: viper.GetString("MONGODB_DB"),
		RunMigrations: viper.GetBool("RUN_MIGRATIONS"),
		BcryptCost:    viper.GetInt("BCRYPT_COST"),
		RateLimitMax:  viper.GetInt64("RATE_LIMIT_MAX"),
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.MongoURI == "" {
		log.Println("Warning: MONGODB_URI environment variable not set.")
	}

	cfg.DBOperationTimeout = durationOr("DB_OPERATION_TIMEOUT", 5*time.Second)
	cfg.JWTExpiryDuration = durationOr("JWT_EXPIRY_DURATION", time.Hour)
	cfg.RefreshTokenExpiryDuration = durationOr("REFRESH_TOKEN_EXPIRY_DURATION", 7*24*time.Hour)
	cfg.RateLimitWindow = durationOr("RATE_LIMIT_WINDOW", 15*time.Minute)

	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == DevJWTSecret {
		if cfg.IsProduction {
			return nil, ErrInsecureJWTSecret
		}
		cfg.JWTSecret = DevJWTSecret
		log.Println("Warning: JWT_SECRET environment variable not set. Using development key.")
	}

	return cfg, nil
}

// durationOr parses key as a duration, logging and falling back to def when it is invalid.
func durationOr(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}
