package config

import (
	"os"
)

// AppConfig collects the environment settings the server consumes. The JWT
// secret is read from the environment at the point of use, like the auth
// middleware does.
type AppConfig struct {
	Port           string
	GeoapifyAPIKey string
	AllowedOrigin  string
}

func LoadConfig() *AppConfig {
	return &AppConfig{
		Port:           getEnv("PORT", "8090"),
		GeoapifyAPIKey: os.Getenv("GEOAPIFY_API_KEY"),
		AllowedOrigin:  getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
