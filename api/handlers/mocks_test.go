package handlers

import (
	"context"

	"github.com/DTI-Technologies/shades-webapp/api/middleware"
	"github.com/DTI-Technologies/shades-webapp/core/domain"
	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
)

// mockPipeline is a mock implementation of the BrandPipeline interface
type mockPipeline struct {
	scrapeFunc       func(ctx context.Context, url string, preferAlternatePath bool) (*domain.ScrapedContent, error)
	extractFunc      func(content domain.ScrapedContent) domain.BrandElements
	analyzeFunc      func(ctx context.Context, url string, opts interfaces.AnalyzeOptions) (*interfaces.Analysis, error)
	analyzeBatchFunc func(ctx context.Context, urls []string, opts interfaces.AnalyzeOptions) []interfaces.BatchResult
	rebrandFunc      func(ctx context.Context, content domain.ScrapedContent, original, target domain.BrandElements, opts interfaces.RebrandOptions) (*domain.RebrandedContent, error)
}

func (m *mockPipeline) Scrape(ctx context.Context, url string, preferAlternatePath bool) (*domain.ScrapedContent, error) {
	if m.scrapeFunc != nil {
		return m.scrapeFunc(ctx, url, preferAlternatePath)
	}
	return &domain.ScrapedContent{URL: url}, nil
}

func (m *mockPipeline) Extract(content domain.ScrapedContent) domain.BrandElements {
	if m.extractFunc != nil {
		return m.extractFunc(content)
	}
	return domain.BrandElements{}
}

func (m *mockPipeline) Analyze(ctx context.Context, url string, opts interfaces.AnalyzeOptions) (*interfaces.Analysis, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, url, opts)
	}
	return &interfaces.Analysis{Content: domain.ScrapedContent{URL: url}}, nil
}

func (m *mockPipeline) AnalyzeBatch(ctx context.Context, urls []string, opts interfaces.AnalyzeOptions) []interfaces.BatchResult {
	if m.analyzeBatchFunc != nil {
		return m.analyzeBatchFunc(ctx, urls, opts)
	}
	return nil
}

func (m *mockPipeline) Rebrand(ctx context.Context, content domain.ScrapedContent, original, target domain.BrandElements, opts interfaces.RebrandOptions) (*domain.RebrandedContent, error) {
	if m.rebrandFunc != nil {
		return m.rebrandFunc(ctx, content, original, target, opts)
	}
	return &domain.RebrandedContent{OriginalURL: content.URL}, nil
}

// mockWebsiteService is a mock implementation of the WebsiteService interface
type mockWebsiteService struct {
	createFunc func(ctx context.Context, input interfaces.WebsiteInput) (*domain.Website, error)
	getFunc    func(ctx context.Context, id, callerID string) (*domain.Website, error)
}

func (m *mockWebsiteService) CreateWebsite(ctx context.Context, input interfaces.WebsiteInput) (*domain.Website, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, input)
	}
	return nil, nil
}

func (m *mockWebsiteService) GetWebsite(ctx context.Context, id, callerID string) (*domain.Website, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id, callerID)
	}
	return nil, nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

// withCaller installs a huma middleware that resolves every request to callerID
func withCaller(api huma.API, callerID string) {
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, middleware.WithCallerID(ctx.Context(), callerID)))
	})
}
