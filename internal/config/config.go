package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultBaseURL = "http://localhost:8000/api"

// Config - структура для хранения конфигурации клиента
type Config struct {
	// API Config
	BaseURL       string        `env:"API_BASE_URL"`
	APITimeout    time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
	APIRetryCount int           `env:"API_RETRY_COUNT" envDefault:"0"`

	// Session Config
	SessionDBPath string `env:"SESSION_DB_PATH" envDefault:"firewatcher_session.db"`

	// Refresh Config
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"30s"`
	StatsCacheTTL   time.Duration `env:"STATS_CACHE_TTL" envDefault:"1m"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Optional credentials for non-interactive login
	LoginEmail    string `env:"LOGIN_EMAIL"`
	LoginPassword string `env:"LOGIN_PASSWORD"`
	LoginRole     string `env:"LOGIN_ROLE" envDefault:"fire_team"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		BaseURL:         normalizeBaseURL(getEnv("API_BASE_URL", defaultBaseURL)),
		APITimeout:      getEnvAsDuration("API_TIMEOUT", 30*time.Second),
		APIRetryCount:   getEnvAsInt("API_RETRY_COUNT", 0),
		SessionDBPath:   getEnv("SESSION_DB_PATH", "firewatcher_session.db"),
		RefreshInterval: getEnvAsDuration("REFRESH_INTERVAL", 30*time.Second),
		StatsCacheTTL:   getEnvAsDuration("STATS_CACHE_TTL", time.Minute),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		LoginEmail:      os.Getenv("LOGIN_EMAIL"),
		LoginPassword:   os.Getenv("LOGIN_PASSWORD"),
		LoginRole:       getEnv("LOGIN_ROLE", "fire_team"),
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL environment variable is required")
	}

	return cfg, nil
}

// normalizeBaseURL убирает завершающие слэши из базового URL
func normalizeBaseURL(raw string) string {
	return strings.TrimRight(raw, "/")
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
