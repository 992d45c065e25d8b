package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config holds all application configuration.
type Config struct {
	Store       string
	DBPath      string
	RedisURL    string
	StorageKey  string
	ImportFile  string
	TriviaCount int
	HTTPTimeout time.Duration
	LogLevel    string
	LogFormat   string
	LogFile     string
}

// Load reads configuration from environment variables with defaults. A .env file in
// the working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Store:       normalizeStore(getEnv("QUIZ_STORE", StoreSQLite)),
		DBPath:      getEnv("QUIZ_DB_PATH", "quiz.db"),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),
		StorageKey:  getEnv("QUIZ_STORAGE_KEY", "mman1130StudyGameV1"),
		ImportFile:  getEnv("QUIZ_IMPORT_FILE", ""),
		TriviaCount: getEnvInt("QUIZ_TRIVIA_COUNT", 10),
		HTTPTimeout: time.Duration(getEnvInt("QUIZ_HTTP_TIMEOUT_SECONDS", 5)) * time.Second,
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		LogFile:     getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func normalizeStore(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case StoreRedis:
		return StoreRedis
	case StoreMemory:
		return StoreMemory
	default:
		return StoreSQLite
	}
}
