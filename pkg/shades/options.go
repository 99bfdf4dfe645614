// ABOUTME: Configuration options for the Shades library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package shades

import (
	"github.com/DTI-Technologies/shades-webapp/core/domain"
	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
	"github.com/DTI-Technologies/shades-webapp/pkg/config"
)

// Config holds the configuration for the client
type Config struct {
	Cache      interfaces.Cache
	HTTPClient interfaces.HTTPClient
	Logger     interfaces.Logger

	// Retrieval configures the fallback chain
	Retrieval config.RetrievalConfig

	// StyleGenerator enables the AI CSS supplement when set
	StyleGenerator interfaces.StyleGenerator

	// SampleLogoColors enables logo color sampling for Analyze
	SampleLogoColors bool

	// Concurrency bounds AnalyzeBatch
	Concurrency int
}

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithRetrieval replaces the retrieval configuration
func WithRetrieval(cfg config.RetrievalConfig) Option {
	return func(c *Config) error {
		c.Retrieval = cfg
		return nil
	}
}

// WithStyleGenerator enables AI generated CSS for rebrands that request it
func WithStyleGenerator(gen interfaces.StyleGenerator) Option {
	return func(c *Config) error {
		c.StyleGenerator = gen
		return nil
	}
}

// WithLogoColors enables or disables logo color sampling
func WithLogoColors(enabled bool) Option {
	return func(c *Config) error {
		c.SampleLogoColors = enabled
		return nil
	}
}

// WithConcurrency sets how many pages a batch analyzes at once
func WithConcurrency(n int) Option {
	return func(c *Config) error {
		c.Concurrency = n
		return nil
	}
}

// RebrandOption is a functional option for RebrandURL
type RebrandOption func(*RebrandOptions)

// RebrandOptions holds options for RebrandURL
type RebrandOptions struct {
	PreferAlternatePath bool
	GenerateCSS         bool
	// Original replaces the extracted brand when set
	Original *domain.BrandElements
}

// WithAlternatePath skips the direct fetch
func WithAlternatePath() RebrandOption {
	return func(o *RebrandOptions) {
		o.PreferAlternatePath = true
	}
}

// WithGeneratedCSS appends AI generated CSS when a generator is configured
func WithGeneratedCSS() RebrandOption {
	return func(o *RebrandOptions) {
		o.GenerateCSS = true
	}
}

// WithOriginal supplies the brand currently on the page instead of extracting it
func WithOriginal(original domain.BrandElements) RebrandOption {
	return func(o *RebrandOptions) {
		o.Original = &original
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Cache:            DefaultMemoryCache(),
		HTTPClient:       DefaultHTTPClient(),
		Logger:           QuietLogger(),
		Retrieval:        DefaultRetrievalConfig(),
		SampleLogoColors: true,
		Concurrency:      4,
	}
}

func defaultRebrandOptions() RebrandOptions {
	return RebrandOptions{}
}
