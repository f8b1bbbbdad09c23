package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	// HTTP
	Port int

	// Database
	DBHost     string
	DBPort     string
	DBUsername string
	DBPassword string
	DBDatabase string

	// Redis
	RedisHost string
	RedisPort string

	// CORS
	AllowedOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUsername: os.Getenv("DB_USERNAME"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBDatabase: os.Getenv("DB_DATABASE"),
		RedisHost:  getEnv("REDIS_HOST", "localhost"),
		RedisPort:  getEnv("REDIS_PORT", "6379"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	cfg.Port = port

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitAndTrim(origins)
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	if cfg.DBHost == "" {
		return nil, fmt.Errorf("DB_HOST environment variable is required")
	}
	if cfg.DBUsername == "" {
		return nil, fmt.Errorf("DB_USERNAME environment variable is required")
	}
	if cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE environment variable is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
