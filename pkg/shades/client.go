// ABOUTME: Main client for the Shades library providing brand extraction and rebranding
// ABOUTME: Offers a clean API for using core functionality without HTTP dependencies

package shades

import (
	"context"
	"io"

	"github.com/DTI-Technologies/shades-webapp/core/domain"
	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
	"github.com/DTI-Technologies/shades-webapp/core/pipeline"
	"github.com/DTI-Technologies/shades-webapp/core/retrieval"
	"github.com/DTI-Technologies/shades-webapp/core/services"
)

// Client is the main entry point for the Shades library.
// It satisfies interfaces.BrandPipeline.
type Client struct {
	pipeline *pipeline.Service
	deps     interfaces.Dependencies
	config   Config
}

var _ interfaces.BrandPipeline = (*Client)(nil)

// NewClient creates a new Shades client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Cache:      config.Cache,
		Logger:     config.Logger,
	}

	opts := []pipeline.Option{pipeline.WithConcurrency(config.Concurrency)}
	if config.SampleLogoColors {
		opts = append(opts, pipeline.WithLogoColors(services.NewLogoColorService(deps)))
	}
	if config.StyleGenerator != nil {
		opts = append(opts, pipeline.WithStyleGenerator(config.StyleGenerator))
	}

	return &Client{
		pipeline: pipeline.NewService(deps, retrieval.NewService(deps, config.Retrieval), opts...),
		deps:     deps,
		config:   config,
	}, nil
}

// Close releases the cache when it holds resources
func (c *Client) Close() error {
	if closer, ok := c.config.Cache.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Scrape retrieves and parses a page
func (c *Client) Scrape(ctx context.Context, url string, preferAlternatePath bool) (*domain.ScrapedContent, error) {
	return c.pipeline.Scrape(ctx, url, preferAlternatePath)
}

// Extract infers the brand of already scraped content
func (c *Client) Extract(content domain.ScrapedContent) domain.BrandElements {
	return c.pipeline.Extract(content)
}

// Analyze scrapes a page and infers its brand
func (c *Client) Analyze(ctx context.Context, url string, opts interfaces.AnalyzeOptions) (*interfaces.Analysis, error) {
	return c.pipeline.Analyze(ctx, url, opts)
}

// AnalyzeBatch analyzes up to pipeline.MaxBatchSize pages; results keep input order
func (c *Client) AnalyzeBatch(ctx context.Context, urls []string, opts interfaces.AnalyzeOptions) []interfaces.BatchResult {
	return c.pipeline.AnalyzeBatch(ctx, urls, opts)
}

// Rebrand rewrites content from the original brand to the target brand
func (c *Client) Rebrand(ctx context.Context, content domain.ScrapedContent, original, target domain.BrandElements, opts interfaces.RebrandOptions) (*domain.RebrandedContent, error) {
	return c.pipeline.Rebrand(ctx, content, original, target, opts)
}

// RebrandURL scrapes a page, extracts its brand and rewrites it to target
func (c *Client) RebrandURL(ctx context.Context, url string, target domain.BrandElements, opts ...RebrandOption) (*domain.RebrandedContent, error) {
	options := defaultRebrandOptions()
	for _, opt := range opts {
		opt(&options)
	}

	content, err := c.pipeline.Scrape(ctx, url, options.PreferAlternatePath)
	if err != nil {
		return nil, err
	}

	original := c.pipeline.Extract(*content)
	if options.Original != nil {
		original = *options.Original
	}

	return c.pipeline.Rebrand(ctx, *content, original, target, interfaces.RebrandOptions{
		GenerateCSS: options.GenerateCSS,
	})
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if config.HTTPClient == nil {
		return NewError(ErrorTypeConfiguration, "HTTP client is required")
	}

	if config.Cache == nil {
		return NewError(ErrorTypeConfiguration, "cache is required")
	}

	if config.Logger == nil {
		return NewError(ErrorTypeConfiguration, "logger is required")
	}

	if config.Concurrency < 1 {
		return NewError(ErrorTypeConfiguration, "concurrency must be positive").
			WithContext("concurrency", config.Concurrency)
	}

	return nil
}
