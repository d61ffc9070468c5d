package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBDSN string

	// Admin login is a configured credential pair compared in plaintext.
	// Placeholder only, not for production use.
	AdminEmail    string
	AdminPassword string

	JWTSecret string
}

func LoadEnv() Env {
	// .env is optional; real env vars win.
	_ = godotenv.Load()

	return Env{
		AppAddr:       getEnv("APP_ADDR", ":8080"),
		GinMode:       getEnv("GIN_MODE", ""),
		DBDSN:         getEnv("DB_DSN", ""),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@travelmavericks.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		JWTSecret:     getEnv("JWT_SECRET", "super-secret-key-change-me"),
	}
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
