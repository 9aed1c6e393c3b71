package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string
	AppEnv    string
)

// LoadEnv reads .env when present and hydrates the settings the app needs
// at boot. Missing JWT_SECRET is fatal: login tokens cannot be signed
// without it.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file, using system environment")
	}

	JWTSecret = os.Getenv("JWT_SECRET")
	AppEnv = GetEnv("APP_ENV", "development")

	if JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET is not set")
	}
}

// GetEnv returns the env value or a fallback when unset/empty.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// IsProduction reports whether SPA static serving should be enabled.
func IsProduction() bool { return AppEnv == "production" }
