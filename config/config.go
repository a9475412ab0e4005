package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Upstream   UpstreamConfig
	Redis      RedisConfig
	Cloudinary CloudinaryConfig
	Audit      AuditConfig
	Admin      AdminConfig
}

type ServerConfig struct {
	AppEnv   string
	HTTPAddr string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type UpstreamConfig struct {
	BaseURL      string
	ServiceToken string
	Timeout      time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type CloudinaryConfig struct {
	URL string
}

type AuditConfig struct {
	DBPath string
}

type AdminConfig struct {
	PageSize          int
	LowStockThreshold int
	CacheTTL          time.Duration
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "dev"),
			HTTPAddr: getEnv("HTTP_ADDR", ":8090"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Upstream: UpstreamConfig{
			BaseURL:      getEnv("UPSTREAM_BASE_URL", "http://localhost:5000/api"),
			ServiceToken: getEnv("UPSTREAM_SERVICE_TOKEN", ""),
			Timeout:      getEnvDuration("UPSTREAM_TIMEOUT", 30*time.Second),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Cloudinary: CloudinaryConfig{
			URL: getEnv("CLOUDINARY_URL", ""),
		},
		Audit: AuditConfig{
			DBPath: getEnv("AUDIT_DB_PATH", "./admin_audit.db"),
		},
		Admin: AdminConfig{
			PageSize:          getEnvInt("ADMIN_PAGE_SIZE", 10),
			LowStockThreshold: getEnvInt("ADMIN_LOW_STOCK_THRESHOLD", 10),
			CacheTTL:          getEnvDuration("ADMIN_CACHE_TTL", 5*time.Minute),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
