package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port    string
	GinMode string

	// Empty DBDriver selects the in-memory provider.
	DBDriver         string
	DBDSN            string
	DBConnectRetries int

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	MenuCacheTTL  time.Duration

	CORSOrigins    []string
	OrderRateLimit int

	LogLevel  string
	LogFormat string

	APIBaseURL   string
	PollInterval time.Duration
}

// Load reads .env (if any) and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		Port:             getEnv("PORT", "5000"),
		GinMode:          getEnv("GIN_MODE", "debug"),
		DBDriver:         strings.ToLower(getEnv("DB_DRIVER", "")),
		DBDSN:            getEnv("DB_DSN", ""),
		DBConnectRetries: getEnvAsInt("DB_CONNECT_RETRIES", 5),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          getEnvAsInt("REDIS_DB", 0),
		MenuCacheTTL:     getEnvAsDuration("MENU_CACHE_TTL", 5*time.Minute),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		OrderRateLimit:   getEnvAsInt("ORDER_RATE_LIMIT", 10),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		APIBaseURL:       strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:5000"), "/"),
		PollInterval:     getEnvAsDuration("POLL_INTERVAL", 10*time.Second),
	}
}

// UsesDatabase reports whether a durable provider is configured.
func (c *Config) UsesDatabase() bool {
	return c.DBDriver != "" && c.DBDSN != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
