package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config gathers the environment the binaries run with. Values come from
// the process environment, with a .env file loaded first when present.
type Config struct {
	DatabaseURL          string
	RedisURL             string
	Port                 string
	FrontendURL          string
	FeedBaseURL          string
	FetchInterval        time.Duration
	TopStoriesCategoryID int64
}

func Load() Config {
	godotenv.Load()

	return Config{
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		RedisURL:             os.Getenv("REDIS_URL"),
		Port:                 getenv("PORT", "8080"),
		FrontendURL:          os.Getenv("FRONTEND_URL"),
		FeedBaseURL:          os.Getenv("FEED_BASE_URL"),
		FetchInterval:        getenvDuration("FETCH_INTERVAL", 15*time.Minute),
		TopStoriesCategoryID: getenvInt64("TOP_STORIES_CATEGORY_ID", 28),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvInt64(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
