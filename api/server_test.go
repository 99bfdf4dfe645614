package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/DTI-Technologies/shades-webapp/api/middleware"
)

func TestNewAPI(t *testing.T) {
	api, router := NewAPI()

	if api == nil {
		t.Error("NewAPI returned nil API")
	}
	if router == nil {
		t.Error("NewAPI returned nil router")
	}
}

func TestNewAPI_HasCorrectTitle(t *testing.T) {
	api, _ := NewAPI()

	info := api.OpenAPI().Info
	expectedTitle := "Shades API"

	if info.Title != expectedTitle {
		t.Errorf("API title = %s, want %s", info.Title, expectedTitle)
	}
}

func TestNewAPI_HasCorrectVersion(t *testing.T) {
	api, _ := NewAPI()

	info := api.OpenAPI().Info
	expectedVersion := "1.0.0"

	if info.Version != expectedVersion {
		t.Errorf("API version = %s, want %s", info.Version, expectedVersion)
	}
}

func TestAPI_UsesChiRouter(t *testing.T) {
	_, router := NewAPI()

	if router == nil {
		t.Fatal("Router is nil")
	}

	// The router should implement http.Handler
	handler := http.Handler(router)
	if handler == nil {
		t.Error("Router does not implement http.Handler")
	}
}

func TestAPI_OpenAPIEndpoint(t *testing.T) {
	_, router := NewAPI()

	// Create a test request
	req := httptest.NewRequest("GET", "/openapi.json", nil)
	w := httptest.NewRecorder()

	// Serve the request
	router.ServeHTTP(w, req)

	resp := w.Result()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("OpenAPI endpoint status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "application/vnd.oai.openapi+json" {
		t.Errorf("OpenAPI content-type = %s, want application/vnd.oai.openapi+json", contentType)
	}
}

func TestAPI_DocsEndpoint(t *testing.T) {
	_, router := NewAPI()

	// Create a test request
	req := httptest.NewRequest("GET", "/docs", nil)
	w := httptest.NewRecorder()

	// Serve the request
	router.ServeHTTP(w, req)

	resp := w.Result()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Docs endpoint status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "text/html" {
		t.Errorf("Docs content-type = %s, want text/html", contentType)
	}
}
type whoAmIOutput struct {
	Body struct {
		Caller string `json:"caller"`
	}
}

func registerWhoAmI(api huma.API) {
	huma.Get(api, "/whoami", func(ctx context.Context, _ *struct{}) (*whoAmIOutput, error) {
		out := &whoAmIOutput{}
		out.Body.Caller = middleware.CallerID(ctx)
		return out, nil
	})
}

func TestAPI_ResolvesCallerIdentity(t *testing.T) {
	api, router := NewAPI()
	registerWhoAmI(api)

	tests := []struct {
		header string
		want   string
	}{
		{"user-42", `"caller":"user-42"`},
		{"", `"caller":"anonymous"`},
	}

	for _, tt := range tests {
		req := httptest.NewRequest("GET", "/whoami", nil)
		if tt.header != "" {
			req.Header.Set(middleware.UserIDHeader, tt.header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if !strings.Contains(w.Body.String(), tt.want) {
			t.Errorf("body = %s, want it to contain %s", w.Body.String(), tt.want)
		}
	}
}

func TestNewAPIWithMiddleware_RateLimits(t *testing.T) {
	api, router := NewAPIWithMiddleware(APIConfig{RateLimit: 1, RateWindow: time.Minute})
	registerWhoAmI(api)

	codes := make([]int, 2)
	for i := range codes {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.RemoteAddr = "203.0.113.7:5000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes[i] = w.Code
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("status codes = %v, want [200 429]", codes)
	}
}
