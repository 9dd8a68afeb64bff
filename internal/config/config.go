package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/Sheyman13214/todoright-api/internal/constants"
)

type Config struct {
	DBDriver           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	TokenSecret        string
	TokenTTL           time.Duration
	MinPasswordLength  int
	DescriptionWordCap int
	GinMode            string
	Port               string
}

func Load() *Config {
	// Optional .env for local development; real env vars win.
	_ = godotenv.Load()

	return &Config{
		DBDriver:           getEnv("DB_DRIVER", "mysql"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "3306"),
		DBUser:             getEnv("DB_USER", "todouser"),
		DBPassword:         getEnv("DB_PASSWORD", "todopassword"),
		DBName:             getEnv("DB_NAME", "todoright"),
		TokenSecret:        getEnv("TOKEN_SECRET", "default-secret-key-change-me"),
		TokenTTL:           getDurationEnv("TOKEN_TTL", 168*time.Hour),
		MinPasswordLength:  getIntEnv("MIN_PASSWORD_LENGTH", constants.DefaultMinPasswordLength),
		DescriptionWordCap: getIntEnv("DESCRIPTION_WORD_CAP", constants.DefaultDescriptionWordCap),
		GinMode:            getEnv("GIN_MODE", "debug"),
		Port:               getEnv("PORT", "8080"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getDurationEnv parses a Go duration string, e.g. "24h".
// "0" disables token expiry and is kept as a zero duration.
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if value == "0" {
		return 0
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
