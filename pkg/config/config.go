package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Store driver names accepted in STORE_DRIVER.
const (
	DriverFirestore = "firestore"
	DriverPostgres  = "postgres"
)

type Config struct {
	Port        string
	StoreDriver string

	// firestore driver
	FirebaseServiceAccount     string
	FirebaseServiceAccountFile string

	// postgres driver
	DatabaseURL   string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:                       getEnv("PORT", "3000"),
		StoreDriver:                getEnv("STORE_DRIVER", DriverFirestore),
		FirebaseServiceAccount:     os.Getenv("FIREBASE_SERVICE_ACCOUNT"),
		FirebaseServiceAccountFile: getEnv("FIREBASE_SERVICE_ACCOUNT_FILE", "./firebase-service-account.json"),
		DatabaseURL:                os.Getenv("DATABASE_URL"),
		JWTSecret:                  getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:                  getEnv("JWT_ISSUER", "dalili-api"),
		JWTTTLMinutes:              getEnvInt("JWT_TTL_MINUTES", 60),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
