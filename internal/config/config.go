package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Product ProductConfig
	Fetch   FetchConfig
	Redis   RedisConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type ProductConfig struct {
	// URL checked when a request does not carry its own ?url=.
	URL string
}

type FetchConfig struct {
	// Mode is "http" or "browser".
	Mode            string
	Timeout         time.Duration
	RequestInterval time.Duration
	UserAgent       string
	AcceptLanguage  string
	Accept          string
	Headless        bool
}

type RedisConfig struct {
	// Addr empty disables the snapshot cache.
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnvOrDefault("SERVER_PORT", "8080"),
			Host:            getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:     getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationOrDefault("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDurationOrDefault("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Product: ProductConfig{
			URL: getEnvOrDefault("PRODUCT_URL", ""),
		},
		Fetch: FetchConfig{
			Mode:            getEnvOrDefault("FETCH_MODE", "http"),
			Timeout:         getDurationOrDefault("FETCH_TIMEOUT", 30*time.Second),
			RequestInterval: getDurationOrDefault("FETCH_REQUEST_INTERVAL", 2*time.Second),
			UserAgent:       getEnvOrDefault("FETCH_USER_AGENT", "Mozilla/5.0 (one-product-check)"),
			AcceptLanguage:  getEnvOrDefault("FETCH_ACCEPT_LANGUAGE", "de-CH,de;q=0.9,en;q=0.8"),
			Accept:          getEnvOrDefault("FETCH_ACCEPT", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"),
			Headless:        getBoolOrDefault("BROWSER_HEADLESS", true),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", ""),
			Password: getEnvOrDefault("REDIS_PASSWORD", ""),
			DB:       getIntOrDefault("REDIS_DB", 0),
			CacheTTL: getDurationOrDefault("CACHE_TTL", 60*time.Second),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Fetch.Mode != "http" && c.Fetch.Mode != "browser" {
		return fmt.Errorf("FETCH_MODE must be http or browser, got %q", c.Fetch.Mode)
	}

	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive")
	}

	if c.Fetch.RequestInterval < 0 {
		return fmt.Errorf("FETCH_REQUEST_INTERVAL cannot be negative")
	}

	if c.Redis.CacheTTL <= 0 && c.Redis.Addr != "" {
		return fmt.Errorf("CACHE_TTL must be positive when REDIS_ADDR is set")
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
