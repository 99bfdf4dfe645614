package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DTI-Technologies/shades-webapp/core/domain"
	coreerrors "github.com/DTI-Technologies/shades-webapp/core/errors"
	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
	"github.com/DTI-Technologies/shades-webapp/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func chatServer(t *testing.T, status int, reply string, seen *chatRequest) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if seen != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(seen))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"` + reply + `","type":"rate_limit_error"}}`))
			return
		}
		body, _ := json.Marshal(map[string]interface{}{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": time.Now().Unix(),
			"model":   "test-model",
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]string{"role": "assistant", "content": reply},
				},
			},
		})
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server
}

func styleRequest() interfaces.StyleRequest {
	return interfaces.StyleRequest{
		Original: domain.BrandElements{Name: "Acme", Colors: domain.BrandColors{Primary: "#112233"}},
		Target:   domain.BrandElements{Name: "Zenith", Colors: domain.BrandColors{Primary: "#ff0000"}},
		Page: domain.ScrapedContent{
			URL:  "https://example.com",
			HTML: "<html><body><article><p>Acme sells anvils to coyotes across the desert and ships them overnight.</p></article></body></html>",
		},
	}
}

func TestAIStyleGenerator_GenerateCSS(t *testing.T) {
	var seen chatRequest
	server := chatServer(t, http.StatusOK, "```css\nbody { color: #ff0000; }\n```", &seen)

	gen := NewAIStyleGenerator(config.AIConfig{
		APIKey:  "test-key",
		BaseURL: server.URL + "/v1",
		Model:   "test-model",
		Timeout: 5 * time.Second,
	}, &mockLogger{})

	css, err := gen.GenerateCSS(context.Background(), styleRequest())
	require.NoError(t, err)
	assert.Equal(t, "body { color: #ff0000; }", css)

	assert.Equal(t, "test-model", seen.Model)
	require.Len(t, seen.Messages, 2)
	assert.Equal(t, "system", seen.Messages[0].Role)
	assert.Contains(t, seen.Messages[1].Content, `"Zenith"`)
	assert.Contains(t, seen.Messages[1].Content, `"Acme"`)
}

func TestAIStyleGenerator_APIError(t *testing.T) {
	server := chatServer(t, http.StatusTooManyRequests, "slow down", nil)

	gen := NewAIStyleGenerator(config.AIConfig{APIKey: "test-key", BaseURL: server.URL + "/v1"}, &mockLogger{})

	_, err := gen.GenerateCSS(context.Background(), styleRequest())
	require.Error(t, err)
	require.True(t, coreerrors.IsExternalAPI(err))

	apiErr := err.(*coreerrors.ExternalAPIError)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, "openai", apiErr.API)
}

func TestAIStyleGenerator_EmptyReply(t *testing.T) {
	server := chatServer(t, http.StatusOK, "  ", nil)

	gen := NewAIStyleGenerator(config.AIConfig{APIKey: "test-key", BaseURL: server.URL + "/v1"}, &mockLogger{})

	_, err := gen.GenerateCSS(context.Background(), styleRequest())
	assert.True(t, coreerrors.IsExternalAPI(err))
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "body{}", want: "body{}"},
		{in: "```css\nbody{}\n```", want: "body{}"},
		{in: "```\n.a{}\n.b{}\n```\n", want: ".a{}\n.b{}"},
		{in: "```", want: ""},
	}
	for _, tt := range tests {
		if got := stripCodeFence(tt.in); got != tt.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	assert.False(t, strings.Contains(stripCodeFence("```css\nx\n```"), "```"))
}
