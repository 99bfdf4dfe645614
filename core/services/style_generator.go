// ABOUTME: AI style generator asks an OpenAI-compatible model for supplementary rebrand CSS
// ABOUTME: Sends both brands plus a readable summary of the page and returns the CSS fragment

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	coreerrors "github.com/DTI-Technologies/shades-webapp/core/errors"
	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
	"github.com/DTI-Technologies/shades-webapp/core/reader"
	"github.com/DTI-Technologies/shades-webapp/pkg/config"
	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultStyleModel   = openai.GPT4oMini
	defaultStyleTimeout = 30 * time.Second
	pageSummaryLimit    = 4000

	styleSystemPrompt = "You are a front-end designer. Given an original brand, a target brand and a summary " +
		"of a web page, write CSS that restyles the page for the target brand. " +
		"Reply with CSS only, no explanations."
)

// AIStyleGenerator implements interfaces.StyleGenerator
type AIStyleGenerator struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  interfaces.Logger
}

// NewAIStyleGenerator creates a generator from the AI configuration
func NewAIStyleGenerator(cfg config.AIConfig, logger interfaces.Logger) *AIStyleGenerator {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = defaultStyleModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultStyleTimeout
	}

	return &AIStyleGenerator{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
}

type brandPair struct {
	Original interface{} `json:"original"`
	Target   interface{} `json:"target"`
}

// GenerateCSS returns a stylesheet fragment for restyling the page
func (g *AIStyleGenerator) GenerateCSS(ctx context.Context, req interfaces.StyleRequest) (string, error) {
	brands, err := json.Marshal(brandPair{Original: req.Original, Target: req.Target})
	if err != nil {
		return "", fmt.Errorf("encode brands: %w", err)
	}

	var prompt strings.Builder
	prompt.WriteString("Brands:\n")
	prompt.Write(brands)
	if summary := g.pageSummary(req); summary != "" {
		prompt.WriteString("\n\nPage summary:\n")
		prompt.WriteString(summary)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: styleSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt.String()},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", toExternalAPIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", &coreerrors.ExternalAPIError{API: "openai", Message: "no choices returned"}
	}

	css := stripCodeFence(resp.Choices[0].Message.Content)
	if css == "" {
		return "", &coreerrors.ExternalAPIError{API: "openai", Message: "empty stylesheet returned"}
	}

	if g.logger != nil {
		g.logger.Debug("Generated rebrand CSS", map[string]interface{}{
			"url":         req.Page.URL,
			"model":       g.model,
			"bytes":       len(css),
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}

	return css, nil
}

// pageSummary condenses the page into markdown, or "" when nothing readable is found
func (g *AIStyleGenerator) pageSummary(req interfaces.StyleRequest) string {
	if strings.TrimSpace(req.Page.HTML) == "" {
		return ""
	}
	view, err := reader.Extract(req.Page.HTML, req.Page.URL)
	if err != nil {
		if g.logger != nil {
			g.logger.Debug("Failed to summarize page for style generation", map[string]interface{}{
				"url":   req.Page.URL,
				"error": err.Error(),
			})
		}
		return ""
	}
	return view.Summary(pageSummaryLimit)
}

// stripCodeFence removes a surrounding ```css fence if the model added one
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	} else {
		s = ""
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func toExternalAPIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &coreerrors.ExternalAPIError{
			StatusCode: apiErr.HTTPStatusCode,
			Message:    apiErr.Message,
			API:        "openai",
		}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &coreerrors.ExternalAPIError{
			StatusCode: reqErr.HTTPStatusCode,
			Message:    reqErr.Error(),
			API:        "openai",
		}
	}
	return coreerrors.WrapError(err, "style generation failed")
}
