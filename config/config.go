package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port              string
	DBPath            string
	StaticDir         string
	ConflictTolerance time.Duration
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	tol, err := time.ParseDuration(get("CONFLICT_TOLERANCE", "1s"))
	if err != nil || tol <= 0 {
		log.Printf("[cfg] bad CONFLICT_TOLERANCE, falling back to 1s: %v", err)
		tol = time.Second
	}
	cfg := AppConfig{
		Port:              get("PORT", "8080"),
		DBPath:            get("DB_PATH", "surveys.db"),
		StaticDir:         get("STATIC_DIR", "static"),
		ConflictTolerance: tol,
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
