package retrieval

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
)

// mockPath is a scripted retrieval path that counts its calls
type mockPath struct {
	name      string
	fetchFunc func(ctx context.Context, targetURL string) (string, error)

	mu    sync.Mutex
	calls int
}

func (m *mockPath) Name() string { return m.name }

func (m *mockPath) Fetch(ctx context.Context, targetURL string) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, targetURL)
	}
	return "", nil
}

func (m *mockPath) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int { return m.statusCode }
func (m *mockResponse) Body() io.ReadCloser { return io.NopCloser(strings.NewReader(m.body)) }
func (m *mockResponse) Header(key string) string { return "" }

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc func(ctx context.Context, key string) ([]byte, error)
	setFunc func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	return nil
}

type logCall struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// mockLogger records every call
type mockLogger struct {
	mu    sync.Mutex
	calls []logCall
}

func (m *mockLogger) record(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, logCall{level: level, msg: msg, fields: fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("debug", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{}) { m.record("info", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) { m.record("warn", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("error", msg, fields) }

func (m *mockLogger) byLevel(level string) []logCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []logCall
	for _, c := range m.calls {
		if c.level == level {
			out = append(out, c)
		}
	}
	return out
}
