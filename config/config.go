package config

import (
	"os"
	"strings"
)

// Config holds all configuration for the part matching service
type Config struct {
	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Server configuration
	Host string
	Port string

	// Auth service configuration
	AuthServiceURL string

	// Extra brand synonym pairs, on top of the built-in list.
	// Format: "caterpillar:cat,john deere:deere"
	SynonymPairs [][2]string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "3306"),
		DBUser:         getEnv("DB_USER", "server"),
		DBPassword:     getEnv("DB_PASSWORD", "secret_app"),
		DBName:         getEnv("DB_NAME", "partmatch"),
		Host:           getEnv("HOST", "0.0.0.0"),
		Port:           getEnv("PORT", "8080"),
		AuthServiceURL: getEnv("AUTH_SERVICE_URL", "http://auth-service:8080"),
	}

	cfg.SynonymPairs = parseSynonymPairs(getEnv("SYNONYM_PAIRS", ""))

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseSynonymPairs(raw string) [][2]string {
	if raw == "" {
		return nil
	}

	var pairs [][2]string
	for _, entry := range strings.Split(raw, ",") {
		parts := strings.SplitN(entry, ":", 2)
		if len(parts) != 2 {
			continue
		}
		a := strings.TrimSpace(parts[0])
		b := strings.TrimSpace(parts[1])
		if a == "" || b == "" {
			continue
		}
		pairs = append(pairs, [2]string{a, b})
	}
	return pairs
}
