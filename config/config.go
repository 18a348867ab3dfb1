package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	AppEnv      string
	LogLevel    string
	FrontendURL string
	// Auth
	JWTSecret string
	JWKSURL   string
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitSearchThreshold int
	// Search Configuration
	SearchDefaultLimit int
	SearchMaxLimit     int
	ExportMaxRows      int
	// Export Archive (S3-compatible, disabled when bucket is empty)
	ExportArchiveBucket string
	ExportArchivePrefix string
	S3Provider          string
	S3Region            string
	S3AccessKeyID       string
	S3SecretAccessKey   string
	S3Endpoint          string
	// Observability
	MetricsEnabled bool
}

// IsProduction reports whether APP_ENV is production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// DebugErrors enables underlying error messages in responses outside production
func (c *Config) DebugErrors() bool {
	return !c.IsProduction()
}

func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		AppEnv:      getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "debug"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWKSURL:     getEnv("JWKS_URL", ""),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),   // 1 minute window
		RateLimitSearchThreshold: getEnvInt("RATE_LIMIT_SEARCH_THRESHOLD", 60), // 60 searches per window
		// Search Configuration
		SearchDefaultLimit: getEnvInt("SEARCH_DEFAULT_LIMIT", 20),
		SearchMaxLimit:     getEnvInt("SEARCH_MAX_LIMIT", 100),
		ExportMaxRows:      getEnvInt("EXPORT_MAX_ROWS", 10000),
		// Export Archive
		ExportArchiveBucket: getEnv("EXPORT_ARCHIVE_BUCKET", ""),
		ExportArchivePrefix: getEnv("EXPORT_ARCHIVE_PREFIX", "exports"),
		S3Provider:          getEnv("S3_PROVIDER", "aws"),
		S3Region:            getEnv("S3_REGION", "ap-southeast-1"),
		S3AccessKeyID:       getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey:   getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Endpoint:          getEnv("S3_ENDPOINT", ""),
		// Observability
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
	}

	if cfg.SearchMaxLimit < 1 {
		cfg.SearchMaxLimit = 100
	}
	if cfg.SearchDefaultLimit < 1 || cfg.SearchDefaultLimit > cfg.SearchMaxLimit {
		cfg.SearchDefaultLimit = min(20, cfg.SearchMaxLimit)
	}
	if cfg.ExportMaxRows < 1 {
		cfg.ExportMaxRows = 10000
	}

	if cfg.DBUrl == "" {
		slog.Warn("DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" && cfg.JWKSURL == "" {
		slog.Warn("JWT_SECRET is missing. Every authenticated request will be rejected.")
	}
	if cfg.RedisURL == "" {
		slog.Warn("REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
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
