// ABOUTME: Brand handler exposes scraping, brand extraction, rebranding and batch analysis
// ABOUTME: Logs each activity with the caller identity resolved by middleware

package handlers

import (
	"context"
	"net/http"

	"github.com/DTI-Technologies/shades-webapp/api/dto/mappers"
	"github.com/DTI-Technologies/shades-webapp/api/dto/requests"
	"github.com/DTI-Technologies/shades-webapp/api/dto/responses"
	"github.com/DTI-Technologies/shades-webapp/api/middleware"
	"github.com/DTI-Technologies/shades-webapp/core/domain"
	coreerrors "github.com/DTI-Technologies/shades-webapp/core/errors"
	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
	"github.com/DTI-Technologies/shades-webapp/core/parser"
	"github.com/DTI-Technologies/shades-webapp/core/retrieval"
	"github.com/danielgtaylor/huma/v2"
)

// BrandHandler handles brand pipeline requests
type BrandHandler struct {
	pipeline interfaces.BrandPipeline
	logger   interfaces.Logger
}

// NewBrandHandler creates a new brand handler
func NewBrandHandler(pipeline interfaces.BrandPipeline, logger interfaces.Logger) *BrandHandler {
	return &BrandHandler{
		pipeline: pipeline,
		logger:   logger,
	}
}

// RegisterRoutes registers all brand-related routes
func (h *BrandHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "scrapePage",
		Method:      http.MethodPost,
		Path:        "/scrape",
		Summary:     "Scrape a page",
		Description: "Retrieves a page through the fallback chain and returns its parsed content",
		Tags:        []string{"Brand"},
	}, h.Scrape)

	huma.Register(api, huma.Operation{
		OperationID: "extractBrand",
		Method:      http.MethodPost,
		Path:        "/extract",
		Summary:     "Extract a page's brand",
		Description: "Infers name, logo, palette, typography and style from a page",
		Tags:        []string{"Brand"},
	}, h.Extract)

	huma.Register(api, huma.Operation{
		OperationID: "rebrandPage",
		Method:      http.MethodPost,
		Path:        "/rebrand",
		Summary:     "Rebrand a page",
		Description: "Rewrites a page from its original brand to a target brand and reports every substitution",
		Tags:        []string{"Brand"},
	}, h.Rebrand)

	huma.Register(api, huma.Operation{
		OperationID: "analyzeBrands",
		Method:      http.MethodPost,
		Path:        "/analyze",
		Summary:     "Analyze many pages",
		Description: "Extracts brands for up to 20 URLs; failures are reported per URL",
		Tags:        []string{"Brand"},
	}, h.Analyze)
}

// ScrapeInput defines the input for the Scrape operation
type ScrapeInput struct {
	Body requests.ScrapeRequest
}

// ScrapeOutput defines the output for the Scrape operation
type ScrapeOutput struct {
	Body domain.ScrapedContent
}

// Scrape handles POST /scrape
func (h *BrandHandler) Scrape(ctx context.Context, input *ScrapeInput) (*ScrapeOutput, error) {
	content, err := h.pipeline.Scrape(ctx, input.Body.URL, input.Body.UseAlternate)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ScrapeOutput{Body: *content}, nil
}

// ExtractInput defines the input for the Extract operation
type ExtractInput struct {
	Body requests.ExtractRequest
}

// ExtractOutput defines the output for the Extract operation
type ExtractOutput struct {
	Body responses.ExtractResponse
}

// Extract handles POST /extract
func (h *BrandHandler) Extract(ctx context.Context, input *ExtractInput) (*ExtractOutput, error) {
	analysis, err := h.pipeline.Analyze(ctx, input.Body.URL, interfaces.AnalyzeOptions{
		PreferAlternatePath: input.Body.UseAlternate,
		SampleLogoColor:     input.Body.SampleLogoColor,
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	h.logger.Info("Brand extraction requested", map[string]interface{}{
		"user_id": middleware.CallerID(ctx),
		"url":     input.Body.URL,
	})

	return &ExtractOutput{Body: *mappers.ToExtractResponse(analysis)}, nil
}

// RebrandInput defines the input for the Rebrand operation
type RebrandInput struct {
	Body requests.RebrandRequest
}

// RebrandOutput defines the output for the Rebrand operation
type RebrandOutput struct {
	Body domain.RebrandedContent
}

// Rebrand handles POST /rebrand
func (h *BrandHandler) Rebrand(ctx context.Context, input *RebrandInput) (*RebrandOutput, error) {
	req := input.Body

	content, err := h.loadContent(ctx, req.URL, req.HTML, req.UseAlternate)
	if err != nil {
		return nil, toHumaError(err)
	}

	var original domain.BrandElements
	if req.Original != nil {
		original = mappers.ToBrandElements(req.Original)
	} else {
		original = h.pipeline.Extract(*content)
	}

	target, err := resolveTarget(original, req.Target, req.Overrides)
	if err != nil {
		return nil, toHumaError(err)
	}

	result, err := h.pipeline.Rebrand(ctx, *content, original, target, interfaces.RebrandOptions{
		GenerateCSS: req.GenerateCSS,
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	h.logger.Info("Rebrand requested", map[string]interface{}{
		"user_id":  middleware.CallerID(ctx),
		"url":      content.URL,
		"original": original.Name,
		"target":   target.Name,
	})

	return &RebrandOutput{Body: *result}, nil
}

// AnalyzeInput defines the input for the Analyze operation
type AnalyzeInput struct {
	Body requests.AnalyzeRequest
}

// AnalyzeOutput defines the output for the Analyze operation
type AnalyzeOutput struct {
	Body responses.AnalyzeResponse
}

// Analyze handles POST /analyze
func (h *BrandHandler) Analyze(ctx context.Context, input *AnalyzeInput) (*AnalyzeOutput, error) {
	if len(input.Body.URLs) == 0 {
		return nil, huma.Error400BadRequest("No URLs provided")
	}

	results := h.pipeline.AnalyzeBatch(ctx, input.Body.URLs, interfaces.AnalyzeOptions{
		PreferAlternatePath: input.Body.UseAlternate,
	})

	h.logger.Info("Batch analysis requested", map[string]interface{}{
		"user_id": middleware.CallerID(ctx),
		"count":   len(input.Body.URLs),
	})

	return &AnalyzeOutput{Body: *mappers.ToAnalyzeResponse(results)}, nil
}

// loadContent parses supplied markup or retrieves the page
func (h *BrandHandler) loadContent(ctx context.Context, url, markup string, useAlternate bool) (*domain.ScrapedContent, error) {
	if markup == "" {
		return h.pipeline.Scrape(ctx, url, useAlternate)
	}
	if err := retrieval.ValidateURL(url); err != nil {
		return nil, err
	}
	content := parser.Parse(markup, url)
	return &content, nil
}

// resolveTarget picks the explicit target or applies overrides to the original brand
func resolveTarget(original domain.BrandElements, target, overrides *requests.BrandInput) (domain.BrandElements, error) {
	switch {
	case target != nil:
		return mappers.ToBrandElements(target), nil
	case overrides != nil:
		return mappers.ToBrandOverrides(overrides).Apply(original)
	default:
		return domain.BrandElements{}, &coreerrors.ValidationError{
			Field:   "target",
			Message: "either target or overrides is required",
		}
	}
}
