// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration for server, cache, retrieval, AI, storage and logging

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultAlternateEndpoints are the public pass-through fetchers tried after the direct fetch.
// {url} is replaced with the query-escaped target URL.
var DefaultAlternateEndpoints = []string{
	"https://api.allorigins.win/raw?url={url}",
	"https://corsproxy.io/?url={url}",
	"https://api.codetabs.com/v1/proxy?quest={url}",
}

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig `yaml:"server"`

	// Cache contains cache configuration
	Cache CacheConfig `yaml:"cache"`

	// Retrieval contains page retrieval configuration
	Retrieval RetrievalConfig `yaml:"retrieval"`

	// AI contains the optional CSS generation collaborator configuration
	AI AIConfig `yaml:"ai"`

	// Storage contains website store configuration
	Storage StorageConfig `yaml:"storage"`

	// Log contains logging configuration
	Log LogConfig `yaml:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `yaml:"port"`

	// RateLimit is the number of requests allowed per client per RateWindow
	RateLimit int `yaml:"rate_limit"`

	// RateWindow is the rate limit window
	RateWindow time.Duration `yaml:"rate_window"`
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory/sqlite)
	Type string `yaml:"type"`

	// Redis contains Redis-specific configuration
	Redis RedisConfig `yaml:"redis"`

	// Memory contains in-memory cache configuration
	Memory MemoryConfig `yaml:"memory"`

	// SQLite contains SQLite cache configuration
	SQLite SQLiteConfig `yaml:"sqlite"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string `yaml:"address"`

	// Password is the Redis authentication password
	Password string `yaml:"password"`

	// DB is the Redis database number
	DB int `yaml:"db"`
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are swept, in seconds
	CleanupInterval int `yaml:"cleanup_interval"`
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// RetrievalConfig holds page retrieval configuration
type RetrievalConfig struct {
	// Transport selects the HTTP client implementation (standard/colly)
	Transport string `yaml:"transport"`

	// DirectTimeout bounds the direct fetch
	DirectTimeout time.Duration `yaml:"direct_timeout"`

	// AlternateTimeout bounds each alternate endpoint attempt
	AlternateTimeout time.Duration `yaml:"alternate_timeout"`

	// OverallTimeout bounds the whole fallback chain, 0 disables it
	OverallTimeout time.Duration `yaml:"overall_timeout"`

	// MaxRedirects is the number of redirects followed per request
	MaxRedirects int `yaml:"max_redirects"`

	// AlternateEndpoints are URL templates containing {url}
	AlternateEndpoints []string `yaml:"alternate_endpoints"`

	// BrowserFallback appends a headless browser render as the final path
	BrowserFallback bool `yaml:"browser_fallback"`

	// CacheTTL is how long retrieved markup is cached, 0 disables caching
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// AIConfig holds configuration for the CSS generation collaborator
type AIConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

// Enabled reports whether an API key is configured
func (c AIConfig) Enabled() bool {
	return c.APIKey != ""
}

// StorageConfig holds website store configuration
type StorageConfig struct {
	// Path is the SQLite database file for website records
	Path string `yaml:"path"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is one of debug/info/warn/error
	Level string `yaml:"level"`

	// Format is json or text
	Format string `yaml:"format"`

	// File enables rotated file output when set
	File string `yaml:"file"`
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "8000"),
			RateLimit:  getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateWindow: getEnvAsDurationOrDefault("RATE_WINDOW", time.Minute),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				CleanupInterval: getEnvAsIntOrDefault("MEMORY_CACHE_CLEANUP_INTERVAL", 600),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "cache.db"),
			},
		},
		Retrieval: RetrievalConfig{
			Transport:          getEnvOrDefault("RETRIEVAL_TRANSPORT", "standard"),
			DirectTimeout:      getEnvAsDurationOrDefault("RETRIEVAL_DIRECT_TIMEOUT", 15*time.Second),
			AlternateTimeout:   getEnvAsDurationOrDefault("RETRIEVAL_ALTERNATE_TIMEOUT", 20*time.Second),
			OverallTimeout:     getEnvAsDurationOrDefault("RETRIEVAL_OVERALL_TIMEOUT", 60*time.Second),
			MaxRedirects:       getEnvAsIntOrDefault("RETRIEVAL_MAX_REDIRECTS", 5),
			AlternateEndpoints: getEnvAsListOrDefault("RETRIEVAL_ALTERNATE_ENDPOINTS", DefaultAlternateEndpoints),
			BrowserFallback:    getEnvAsBoolOrDefault("RETRIEVAL_BROWSER_FALLBACK", false),
			CacheTTL:           getEnvAsDurationOrDefault("RETRIEVAL_CACHE_TTL", 30*time.Minute),
		},
		AI: AIConfig{
			APIKey:  getEnvOrDefault("OPENAI_API_KEY", ""),
			BaseURL: getEnvOrDefault("OPENAI_BASE_URL", ""),
			Model:   getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
			Timeout: getEnvAsDurationOrDefault("OPENAI_TIMEOUT", 30*time.Second),
		},
		Storage: StorageConfig{
			Path: getEnvOrDefault("STORAGE_PATH", "websites.db"),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// ApplyFile overlays the YAML file at path onto the configuration.
// Keys absent from the file keep their current values.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("15s") or plain seconds ("15")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma separated environment variable
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return append([]string(nil), defaultValue...)
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 0 {
		return errors.New("rate limit cannot be negative")
	}

	switch c.Cache.Type {
	case "redis", "memory", "sqlite":
	default:
		return errors.New("cache type must be 'redis', 'memory' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Retrieval.Transport != "standard" && c.Retrieval.Transport != "colly" {
		return errors.New("retrieval transport must be 'standard' or 'colly'")
	}

	if c.Retrieval.DirectTimeout <= 0 || c.Retrieval.AlternateTimeout <= 0 {
		return errors.New("retrieval timeouts must be positive")
	}

	if c.Retrieval.OverallTimeout < 0 {
		return errors.New("retrieval overall timeout cannot be negative")
	}

	if c.Retrieval.MaxRedirects < 0 {
		return errors.New("max redirects cannot be negative")
	}

	for _, endpoint := range c.Retrieval.AlternateEndpoints {
		if !strings.Contains(endpoint, "{url}") {
			return fmt.Errorf("alternate endpoint %q must contain {url}", endpoint)
		}
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return errors.New("log format must be 'json' or 'text'")
	}

	return nil
}
