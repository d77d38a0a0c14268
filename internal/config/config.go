package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	JWTSecret   string
	Port        string
	AccessTTL   time.Duration
	RefreshTTL  time.Duration
}

// Load reads configuration from the environment, with .env as a fallback for
// local development. DATABASE_URL and JWT_SECRET are required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return &Config{
		DatabaseURL: dsn,
		JWTSecret:   secret,
		Port:        getEnv("PORT", "8080"),
		AccessTTL:   minutes("ACCESS_TOKEN_TTL_MINUTES", 15),
		RefreshTTL:  minutes("REFRESH_TOKEN_TTL_MINUTES", 7*24*60),
	}, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}

func minutes(key string, defaultVal int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return time.Duration(parsed) * time.Minute
		}
	}
	return time.Duration(defaultVal) * time.Minute
}
