// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for the retrieval, enrichment and orchestration services

package interfaces

import (
	"context"

	"github.com/DTI-Technologies/shades-webapp/core/domain"
)

// Retriever fetches raw markup for an absolute URL through a fallback chain
type Retriever interface {
	Retrieve(ctx context.Context, url string, preferAlternatePath bool) (string, error)
}

// LogoColorService samples the dominant color of a logo image
type LogoColorService interface {
	SampleColor(ctx context.Context, imageURL string) (*domain.RGBColor, error)
}

// StyleRequest describes the brands and page handed to a StyleGenerator
type StyleRequest struct {
	Original domain.BrandElements
	Target   domain.BrandElements
	Page     domain.ScrapedContent
}

// StyleGenerator produces a supplementary stylesheet fragment for a rebrand.
// The returned string is treated as opaque CSS.
type StyleGenerator interface {
	GenerateCSS(ctx context.Context, req StyleRequest) (string, error)
}

// Analysis is the result of scraping a page and inferring its brand
type Analysis struct {
	Content   domain.ScrapedContent
	Brand     domain.BrandElements
	LogoColor *domain.RGBColor
}

// AnalyzeOptions controls optional analysis work
type AnalyzeOptions struct {
	PreferAlternatePath bool
	SampleLogoColor     bool
}

// RebrandOptions controls optional rebrand work
type RebrandOptions struct {
	GenerateCSS bool
}

// BatchResult is the outcome of analyzing one URL in a batch
type BatchResult struct {
	URL      string
	Analysis *Analysis
	Err      error
}

// BrandPipeline runs retrieval, parsing, brand extraction and rebranding
type BrandPipeline interface {
	Scrape(ctx context.Context, url string, preferAlternatePath bool) (*domain.ScrapedContent, error)
	Extract(content domain.ScrapedContent) domain.BrandElements
	Analyze(ctx context.Context, url string, opts AnalyzeOptions) (*Analysis, error)
	AnalyzeBatch(ctx context.Context, urls []string, opts AnalyzeOptions) []BatchResult
	Rebrand(ctx context.Context, content domain.ScrapedContent, original, target domain.BrandElements, opts RebrandOptions) (*domain.RebrandedContent, error)
}

// WebsiteService stores and loads website records for a caller
type WebsiteService interface {
	CreateWebsite(ctx context.Context, input WebsiteInput) (*domain.Website, error)
	GetWebsite(ctx context.Context, id, callerID string) (*domain.Website, error)
}

// WebsiteInput carries everything needed to build a website record
type WebsiteInput struct {
	Name            string
	CreatorID       string
	Visibility      domain.Visibility
	CollaboratorIDs []string
	Content         domain.ScrapedContent
	Brand           domain.BrandElements
	Rebranded       *domain.RebrandedContent
}
