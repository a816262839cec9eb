package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort      string
	ClientOrigin string
	DataDir      string
	LogLevel     string

	JWTKey []byte
	JWTExp time.Duration

	SeedDemoData bool
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		APIPort:      getEnv("API_PORT", "4000"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		DataDir:      getEnv("DATA_DIR", "./data"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		JWTKey:       []byte(getEnv("JWT_SECRET", "change-me")),
		// Earlier deployments disagreed on this value (1 day vs 7 days);
		// a single knob with the 7-day default is authoritative now.
		JWTExp:       time.Duration(getEnvAsInt("JWT_EXPIRATION_HOURS", 168)) * time.Hour,
		SeedDemoData: getEnvAsBool("SEED_DEMO_DATA", true),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}
