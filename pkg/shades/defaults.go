// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package shades

import (
	"io"
	"os"
	"time"

	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
	"github.com/DTI-Technologies/shades-webapp/infrastructure/cache/memory"
	"github.com/DTI-Technologies/shades-webapp/infrastructure/cache/sqlite"
	stdhttp "github.com/DTI-Technologies/shades-webapp/infrastructure/http/standard"
	"github.com/DTI-Technologies/shades-webapp/infrastructure/logger/structured"
	"github.com/DTI-Technologies/shades-webapp/pkg/config"
)

// DefaultHTTPClient creates a default HTTP client with sensible timeouts
func DefaultHTTPClient() interfaces.HTTPClient {
	return stdhttp.NewStandardHTTPClient(30*time.Second, 5)
}

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache()
}

// DefaultSQLiteCache creates a SQLite cache at filePath
func DefaultSQLiteCache(filePath string, logger interfaces.Logger) (interfaces.Cache, error) {
	return sqlite.NewSQLiteCache(filePath, logger)
}

// DefaultRetrievalConfig mirrors the server defaults
func DefaultRetrievalConfig() config.RetrievalConfig {
	return config.RetrievalConfig{
		Transport:          "standard",
		DirectTimeout:      15 * time.Second,
		AlternateTimeout:   20 * time.Second,
		OverallTimeout:     60 * time.Second,
		MaxRedirects:       5,
		AlternateEndpoints: config.DefaultAlternateEndpoints,
		CacheTTL:           30 * time.Minute,
	}
}

// DefaultLogger creates a logger that writes text to stderr at the given level
func DefaultLogger(level string) interfaces.Logger {
	return LoggerTo(level, os.Stderr)
}

// LoggerTo creates a text logger writing to out
func LoggerTo(level string, out io.Writer) interfaces.Logger {
	return structured.NewLogger(level, "text", out)
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

// CacheOption represents cache configuration options
type CacheOption struct {
	Type     CacheType
	FilePath string // For SQLite cache
}

// CacheType represents the type of cache
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeSQLite CacheType = "sqlite"
)

// WithCacheOption creates a cache based on the provided options.
// Apply it after WithLogger so the SQLite cache logs through the same logger.
func WithCacheOption(opt CacheOption) Option {
	return func(c *Config) error {
		switch opt.Type {
		case CacheTypeMemory:
			c.Cache = DefaultMemoryCache()
		case CacheTypeSQLite:
			if opt.FilePath == "" {
				opt.FilePath = "shades_cache.db"
			}
			cache, err := DefaultSQLiteCache(opt.FilePath, c.Logger)
			if err != nil {
				return NewError(ErrorTypeConfiguration, "failed to open SQLite cache").WithCause(err)
			}
			c.Cache = cache
		default:
			return NewError(ErrorTypeConfiguration, "invalid cache type").
				WithContext("type", string(opt.Type))
		}
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}
