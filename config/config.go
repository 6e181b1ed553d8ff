package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	AppEnv      string
	LogLevel    string
	APITitle    string
	APIVersion  string
	Debug       bool
	CORSOrigins []string
	// Database
	DBUrl            string
	DBMaxConns       int
	DBMinConns       int
	DBSimpleProtocol bool
	DBAutoMigrate    bool
	// Redis (optional, rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	RateLimitRequests      int
	// Server
	ShutdownTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	// Load .env file if present; real environment variables win
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		APITitle:    getEnv("API_TITLE", "Form Data API"),
		APIVersion:  getEnv("API_VERSION", "1.0.0"),
		Debug:       getEnvBool("DEBUG", false),
		CORSOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		// Database
		DBUrl:            getEnv("DATABASE_URL", ""),
		DBMaxConns:       getEnvInt("DB_MAX_CONNS", 25),
		DBMinConns:       getEnvInt("DB_MIN_CONNS", 5),
		DBSimpleProtocol: getEnvBool("DB_SIMPLE_PROTOCOL", true),
		DBAutoMigrate:    getEnvBool("DB_AUTO_MIGRATE", true),
		// Redis
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60), // 1 minute window
		RateLimitRequests:      getEnvInt("RATE_LIMIT_REQUESTS", 100),      // 100 requests per window
		ShutdownTimeout:        time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 5)) * time.Second,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot start with
func (c *Config) Validate() error {
	if c.DBUrl == "" {
		return errors.New("DATABASE_URL environment variable is not set")
	}
	if c.RateLimitWindowSeconds <= 0 || c.RateLimitRequests <= 0 {
		return errors.New("rate limit window and request count must be positive")
	}
	if c.DBMaxConns <= 0 {
		return errors.New("DB_MAX_CONNS must be positive")
	}
	return nil
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimRight(strings.TrimSpace(part), "/"); p != "" {
			out = append(out, p)
		}
	}
	return out
}
