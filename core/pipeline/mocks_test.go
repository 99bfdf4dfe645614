package pipeline

import (
	"context"
	"sync"

	"github.com/DTI-Technologies/shades-webapp/core/domain"
	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
)

// mockRetriever is a mock implementation of the Retriever interface
type mockRetriever struct {
	retrieveFunc func(ctx context.Context, url string, preferAlternatePath bool) (string, error)
}

func (m *mockRetriever) Retrieve(ctx context.Context, url string, preferAlternatePath bool) (string, error) {
	if m.retrieveFunc != nil {
		return m.retrieveFunc(ctx, url, preferAlternatePath)
	}
	return "", nil
}

// mockLogoColors is a mock implementation of the LogoColorService interface
type mockLogoColors struct {
	sampleFunc func(ctx context.Context, imageURL string) (*domain.RGBColor, error)

	mu   sync.Mutex
	urls []string
}

func (m *mockLogoColors) SampleColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	m.mu.Lock()
	m.urls = append(m.urls, imageURL)
	m.mu.Unlock()
	if m.sampleFunc != nil {
		return m.sampleFunc(ctx, imageURL)
	}
	return nil, nil
}

// mockStyleGenerator is a mock implementation of the StyleGenerator interface
type mockStyleGenerator struct {
	generateFunc func(ctx context.Context, req interfaces.StyleRequest) (string, error)
	calls        int
}

func (m *mockStyleGenerator) GenerateCSS(ctx context.Context, req interfaces.StyleRequest) (string, error) {
	m.calls++
	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}
	return "", nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
