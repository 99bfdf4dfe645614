// ABOUTME: Headless browser path renders script-built pages with chromedp
// ABOUTME: Used as the last alternate when enabled in configuration

package retrieval

import (
	"context"
	"strings"

	"github.com/chromedp/chromedp"

	"github.com/DTI-Technologies/shades-webapp/pkg/headers"
)

// BrowserPath launches a headless Chrome per attempt
type BrowserPath struct {
	execPath string
}

// NewBrowserPath creates the headless path. execPath may be empty to let chromedp find Chrome.
func NewBrowserPath(execPath string) *BrowserPath {
	return &BrowserPath{execPath: execPath}
}

func (p *BrowserPath) Name() string { return "browser" }

func (p *BrowserPath) Fetch(ctx context.Context, targetURL string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.UserAgent(headers.UserAgent),
		chromedp.DisableGPU,
		chromedp.WindowSize(1280, 800),
	)
	if p.execPath != "" {
		opts = append(opts, chromedp.ExecPath(p.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var markup string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(targetURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &markup, chromedp.ByQuery),
	)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(markup) == "" {
		return "", errEmptyBody
	}
	return markup, nil
}
