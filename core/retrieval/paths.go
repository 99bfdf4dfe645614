// ABOUTME: Retrieval paths are the individual strategies tried by the fallback chain
// ABOUTME: Direct fetch, pass-through proxy endpoints and an optional headless browser

package retrieval

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
)

// maxBodySize caps how much markup a single attempt reads
const maxBodySize = 10 * 1024 * 1024

// Path is one way of obtaining a page's markup
type Path interface {
	// Name identifies the path in diagnostics
	Name() string
	// Fetch performs exactly one attempt
	Fetch(ctx context.Context, targetURL string) (string, error)
}

// StatusError reports a non-success upstream status
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.StatusCode)
}

// errEmptyBody is returned when a path answers with success but no markup
var errEmptyBody = fmt.Errorf("empty response body")

// DirectPath fetches the target URL itself
type DirectPath struct {
	client interfaces.HTTPClient
}

// NewDirectPath creates the direct fetch path
func NewDirectPath(client interfaces.HTTPClient) *DirectPath {
	return &DirectPath{client: client}
}

func (p *DirectPath) Name() string { return "direct" }

func (p *DirectPath) Fetch(ctx context.Context, targetURL string) (string, error) {
	return fetchBody(ctx, p.client, targetURL)
}

// ProxyPath fetches the target through a public pass-through endpoint.
// The template's {url} placeholder receives the query-escaped target.
type ProxyPath struct {
	name     string
	template string
	client   interfaces.HTTPClient
}

// NewProxyPath creates a pass-through path from an endpoint template
func NewProxyPath(template string, client interfaces.HTTPClient) *ProxyPath {
	return &ProxyPath{name: proxyName(template), template: template, client: client}
}

func (p *ProxyPath) Name() string { return p.name }

func (p *ProxyPath) Fetch(ctx context.Context, targetURL string) (string, error) {
	endpoint := strings.ReplaceAll(p.template, "{url}", url.QueryEscape(targetURL))
	return fetchBody(ctx, p.client, endpoint)
}

// proxyName labels a proxy path by its host
func proxyName(template string) string {
	parsed, err := url.Parse(strings.ReplaceAll(template, "{url}", ""))
	if err != nil || parsed.Host == "" {
		return "proxy"
	}
	return "proxy:" + parsed.Host
}

func fetchBody(ctx context.Context, client interfaces.HTTPClient, target string) (string, error) {
	resp, err := client.Get(ctx, target)
	if err != nil {
		return "", err
	}
	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", &StatusError{StatusCode: resp.StatusCode()}
	}

	data, err := io.ReadAll(io.LimitReader(body, maxBodySize))
	if err != nil {
		return "", err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return "", errEmptyBody
	}
	return string(data), nil
}
