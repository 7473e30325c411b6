package config

import (
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultDatabaseName is used when neither DATABASE_NAME nor the URL path names one.
const DefaultDatabaseName = "doctor_profile"

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	MinIO     MinIOConfig
	LogLevel  string
}

type ServerConfig struct {
	Port        string
	Host        string
	Environment string
}

type DatabaseConfig struct {
	URL             string
	Name            string
	Timeout         time.Duration
	ConnectAttempts int
	MemoryFallback  bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Enabled       bool
	UseRedis      bool
	RPS           float64
	Burst         int
	WindowSeconds int
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	LinkTTL   time.Duration
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// LoadConfig loads configuration from environment variables and an optional .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8000")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("SERVER_ENVIRONMENT", "development")
	v.SetDefault("MONGODB_TIMEOUT", 10)
	v.SetDefault("MONGODB_CONNECT_ATTEMPTS", 5)
	v.SetDefault("STORE_MEMORY_FALLBACK", true)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("RATE_LIMIT_ENABLED", false)
	v.SetDefault("RATE_LIMIT_USE_REDIS", false)
	v.SetDefault("RATE_LIMIT_RPS", 1.0)
	v.SetDefault("RATE_LIMIT_BURST", 5)
	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
	v.SetDefault("MINIO_BUCKET", "doctor-profile")
	v.SetDefault("MINIO_LINK_TTL_MINUTES", 15)
	v.SetDefault("LOG_LEVEL", "info")

	dbURL := strings.TrimSpace(v.GetString("DATABASE_URL"))
	dbName := v.GetString("DATABASE_NAME")
	if dbName == "" {
		dbName = DatabaseNameFromURL(dbURL)
	}
	if dbName == "" {
		dbName = DefaultDatabaseName
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        v.GetString("PORT"),
			Host:        v.GetString("HOST"),
			Environment: v.GetString("SERVER_ENVIRONMENT"),
		},
		Database: DatabaseConfig{
			URL:             dbURL,
			Name:            dbName,
			Timeout:         time.Duration(v.GetInt("MONGODB_TIMEOUT")) * time.Second,
			ConnectAttempts: v.GetInt("MONGODB_CONNECT_ATTEMPTS"),
			MemoryFallback:  v.GetBool("STORE_MEMORY_FALLBACK"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       v.GetBool("RATE_LIMIT_ENABLED"),
			UseRedis:      v.GetBool("RATE_LIMIT_USE_REDIS"),
			RPS:           v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         v.GetInt("RATE_LIMIT_BURST"),
			WindowSeconds: v.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		MinIO: MinIOConfig{
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
			Bucket:    v.GetString("MINIO_BUCKET"),
			LinkTTL:   time.Duration(v.GetInt("MINIO_LINK_TTL_MINUTES")) * time.Minute,
		},
		LogLevel: v.GetString("LOG_LEVEL"),
	}
	if cfg.Database.ConnectAttempts < 1 {
		cfg.Database.ConnectAttempts = 1
	}

	return cfg, nil
}

// DatabaseNameFromURL returns the first path segment of a mongodb URL, or "".
func DatabaseNameFromURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	name := strings.Trim(u.Path, "/")
	if idx := strings.Index(name, "/"); idx >= 0 {
		name = name[:idx]
	}
	return name
}
