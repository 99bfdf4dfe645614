// ABOUTME: Pipeline service runs Retrieve, Parse, Extract and Rebrand for callers
// ABOUTME: Adds optional logo color sampling, AI CSS and bounded concurrent batch analysis

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/DTI-Technologies/shades-webapp/core/brand"
	"github.com/DTI-Technologies/shades-webapp/core/domain"
	coreerrors "github.com/DTI-Technologies/shades-webapp/core/errors"
	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
	"github.com/DTI-Technologies/shades-webapp/core/parser"
	"github.com/DTI-Technologies/shades-webapp/core/rebrand"
)

// Service implements interfaces.BrandPipeline
type Service struct {
	deps        interfaces.Dependencies
	retriever   interfaces.Retriever
	extractor   *brand.Extractor
	rebrander   *rebrand.Rebrander
	logoColors  interfaces.LogoColorService
	styles      interfaces.StyleGenerator
	concurrency int
}

// NewService creates a pipeline over the given retriever
func NewService(deps interfaces.Dependencies, retriever interfaces.Retriever, opts ...Option) *Service {
	s := &Service{
		deps:        deps,
		retriever:   retriever,
		extractor:   brand.NewExtractor(deps.Logger),
		rebrander:   rebrand.NewRebrander(deps.Logger),
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scrape retrieves and parses a page
func (s *Service) Scrape(ctx context.Context, url string, preferAlternatePath bool) (*domain.ScrapedContent, error) {
	markup, err := s.retriever.Retrieve(ctx, url, preferAlternatePath)
	if err != nil {
		return nil, err
	}

	content := parser.Parse(markup, url)

	s.deps.Logger.Debug("Page parsed", map[string]interface{}{
		"url":         url,
		"stylesheets": len(content.Stylesheets()),
		"styles":      len(content.InlineStyles()),
		"images":      len(content.Images),
		"sections":    content.Structure.Sections,
	})

	return &content, nil
}

// Extract infers the brand of already scraped content
func (s *Service) Extract(content domain.ScrapedContent) domain.BrandElements {
	return s.extractor.Extract(content)
}

// Analyze scrapes a page and infers its brand
func (s *Service) Analyze(ctx context.Context, url string, opts interfaces.AnalyzeOptions) (*interfaces.Analysis, error) {
	content, err := s.Scrape(ctx, url, opts.PreferAlternatePath)
	if err != nil {
		return nil, err
	}

	analysis := &interfaces.Analysis{
		Content: *content,
		Brand:   s.Extract(*content),
	}

	if opts.SampleLogoColor && s.logoColors != nil && analysis.Brand.Logo != "" {
		logoURL := parser.Resolve(analysis.Brand.Logo, content.URL)
		if color, err := s.logoColors.SampleColor(ctx, logoURL); err == nil {
			analysis.LogoColor = color
		} else {
			s.deps.Logger.Debug("Logo color unavailable", map[string]interface{}{
				"url":   url,
				"logo":  logoURL,
				"error": err.Error(),
			})
		}
	}

	s.deps.Logger.Info("Brand extracted", map[string]interface{}{
		"url":     url,
		"name":    analysis.Brand.Name,
		"primary": analysis.Brand.Colors.Primary,
		"font":    analysis.Brand.Typography.Primary,
	})

	return analysis, nil
}

// AnalyzeBatch analyzes up to MaxBatchSize URLs with bounded concurrency.
// Results keep the input order and carry per-URL errors.
func (s *Service) AnalyzeBatch(ctx context.Context, urls []string, opts interfaces.AnalyzeOptions) []interfaces.BatchResult {
	results := make([]interfaces.BatchResult, len(urls))
	if len(urls) > MaxBatchSize {
		err := &coreerrors.ValidationError{
			Field:   "urls",
			Message: fmt.Sprintf("at most %d URLs per batch", MaxBatchSize),
		}
		for i, u := range urls {
			results[i] = interfaces.BatchResult{URL: u, Err: err}
		}
		return results
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			analysis, err := s.Analyze(gctx, u, opts)
			results[i] = interfaces.BatchResult{URL: u, Analysis: analysis, Err: err}
			// Per-URL failures must not cancel the rest of the batch
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	s.deps.Logger.Info("Batch analysis completed", map[string]interface{}{
		"requested":   len(urls),
		"failed":      failed,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return results
}

// Rebrand transforms content from original to target. When requested and configured,
// AI generated CSS is appended; its failure is logged and ignored.
func (s *Service) Rebrand(ctx context.Context, content domain.ScrapedContent, original, target domain.BrandElements, opts interfaces.RebrandOptions) (*domain.RebrandedContent, error) {
	result, err := s.rebrander.Rebrand(content, original, target)
	if err != nil {
		return nil, err
	}

	if opts.GenerateCSS && s.styles != nil {
		css, err := s.styles.GenerateCSS(ctx, interfaces.StyleRequest{
			Original: original,
			Target:   target,
			Page:     content,
		})
		if err != nil {
			s.deps.Logger.Warn("AI style generation failed", map[string]interface{}{
				"url":   content.URL,
				"error": err.Error(),
			})
		} else if css = strings.TrimSpace(css); css != "" {
			if result.CSS != "" {
				result.CSS += "\n"
			}
			result.CSS += css
		}
	}

	s.deps.Logger.Info("Page rebranded", map[string]interface{}{
		"url":                content.URL,
		"target":             target.Name,
		"name_replacements":  result.Changes.NameReplacements,
		"color_replacements": result.Changes.ColorReplacements,
		"font_replacements":  result.Changes.FontReplacements,
		"logo_replaced":      result.Changes.LogoReplaced,
	})

	return result, nil
}
