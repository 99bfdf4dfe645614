// ABOUTME: HTTP client backed by a colly collector, selectable with RETRIEVAL_TRANSPORT=colly
// ABOUTME: Non-2xx responses are returned to the caller rather than reported as errors

package colly

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gocolly/colly"

	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
	"github.com/DTI-Technologies/shades-webapp/pkg/headers"
)

const maxBodySize = 10 * 1024 * 1024

// CollyHTTPClient implements interfaces.HTTPClient with a fresh collector per request
type CollyHTTPClient struct {
	timeout      time.Duration
	maxRedirects int
}

// NewCollyHTTPClient creates a colly-backed client
func NewCollyHTTPClient(timeout time.Duration, maxRedirects int) *CollyHTTPClient {
	return &CollyHTTPClient{timeout: timeout, maxRedirects: maxRedirects}
}

func (c *CollyHTTPClient) newCollector() *colly.Collector {
	collector := colly.NewCollector(
		colly.UserAgent(headers.UserAgent),
		colly.MaxBodySize(maxBodySize),
		colly.Async(false),
		colly.AllowURLRevisit(),
		colly.IgnoreRobotsTxt(),
	)
	collector.ParseHTTPErrorResponse = true
	collector.SetRequestTimeout(c.timeout)

	maxRedirects := c.maxRedirects
	collector.RedirectHandler = func(req *http.Request, via []*http.Request) error {
		if len(via) >= maxRedirects {
			return fmt.Errorf("stopped after %d redirects", maxRedirects)
		}
		return nil
	}

	collector.OnRequest(func(r *colly.Request) {
		for k, v := range headers.Browser {
			r.Headers.Set(k, v)
		}
	})
	return collector
}

// Get performs an HTTP GET request
func (c *CollyHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return c.do(ctx, func(collector *colly.Collector) error {
		return collector.Visit(url)
	})
}

// Post performs an HTTP POST request with a JSON body
func (c *CollyHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, func(collector *colly.Collector) error {
		collector.OnRequest(func(r *colly.Request) {
			r.Headers.Set("Content-Type", "application/json")
		})
		return collector.PostRaw(url, data)
	})
}

type outcome struct {
	resp *collyResponse
	err  error
}

// do runs the visit in a goroutine so the caller's context can abandon it
func (c *CollyHTTPClient) do(ctx context.Context, visit func(*colly.Collector) error) (interfaces.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	collector := c.newCollector()
	var captured *collyResponse
	collector.OnResponse(func(r *colly.Response) {
		resp := &collyResponse{statusCode: r.StatusCode, body: r.Body}
		if r.Headers != nil {
			resp.headers = r.Headers.Clone()
		}
		captured = resp
	})

	done := make(chan outcome, 1)
	go func() {
		err := visit(collector)
		if err != nil && captured == nil {
			done <- outcome{err: err}
			return
		}
		if captured == nil {
			done <- outcome{err: fmt.Errorf("no response received")}
			return
		}
		done <- outcome{resp: captured}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case out := <-done:
		if out.err != nil {
			return nil, out.err
		}
		return out.resp, nil
	}
}

// collyResponse implements the Response interface over a buffered body
type collyResponse struct {
	statusCode int
	body       []byte
	headers    http.Header
}

func (r *collyResponse) StatusCode() int {
	return r.statusCode
}

func (r *collyResponse) Body() io.ReadCloser {
	return io.NopCloser(bytes.NewReader(r.body))
}

func (r *collyResponse) Header(key string) string {
	return r.headers.Get(key)
}
