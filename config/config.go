package config

import (
	"fmt"
	"os"
)

// Config holds everything the server needs from the environment.
// Built once in main and passed down; nothing else reads os.Getenv.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	StaticDir   string
}

func Load() Config {
	cfg := Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getenv("JWT_SECRET", "mauma_secret_key"),
		StaticDir:   getenv("STATIC_DIR", "./static"),
	}

	// Fall back to discrete DB_* variables when DATABASE_URL is not set
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getenv("DB_HOST", "localhost"),
			getenv("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			getenv("DB_NAME", "mauma"),
			getenv("DB_PORT", "5432"),
		)
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
