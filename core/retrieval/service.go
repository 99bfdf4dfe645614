// ABOUTME: Retrieval service fetches page markup through an ordered fallback chain
// ABOUTME: Records every failed attempt and caches successful markup by URL

package retrieval

import (
	"context"
	"errors"
	"net"
	"net/url"
	"time"

	coreerrors "github.com/DTI-Technologies/shades-webapp/core/errors"
	"github.com/DTI-Technologies/shades-webapp/core/interfaces"
	"github.com/DTI-Technologies/shades-webapp/pkg/config"
)

const (
	defaultDirectTimeout    = 15 * time.Second
	defaultAlternateTimeout = 20 * time.Second
)

// Options tunes the fallback chain
type Options struct {
	DirectTimeout    time.Duration
	AlternateTimeout time.Duration
	// OverallTimeout bounds the whole chain; 0 leaves only the caller's deadline
	OverallTimeout time.Duration
	// CacheTTL enables the markup cache when positive
	CacheTTL time.Duration
}

// Service implements interfaces.Retriever
type Service struct {
	deps       interfaces.Dependencies
	direct     Path
	alternates []Path
	opts       Options
}

// NewService builds the chain described by the retrieval configuration
func NewService(deps interfaces.Dependencies, cfg config.RetrievalConfig) *Service {
	alternates := make([]Path, 0, len(cfg.AlternateEndpoints)+1)
	for _, endpoint := range cfg.AlternateEndpoints {
		alternates = append(alternates, NewProxyPath(endpoint, deps.HTTPClient))
	}
	if cfg.BrowserFallback {
		alternates = append(alternates, NewBrowserPath(""))
	}

	return NewServiceWithPaths(deps, NewDirectPath(deps.HTTPClient), alternates, Options{
		DirectTimeout:    cfg.DirectTimeout,
		AlternateTimeout: cfg.AlternateTimeout,
		OverallTimeout:   cfg.OverallTimeout,
		CacheTTL:         cfg.CacheTTL,
	})
}

// NewServiceWithPaths creates a retriever over explicit paths
func NewServiceWithPaths(deps interfaces.Dependencies, direct Path, alternates []Path, opts Options) *Service {
	if opts.DirectTimeout <= 0 {
		opts.DirectTimeout = defaultDirectTimeout
	}
	if opts.AlternateTimeout <= 0 {
		opts.AlternateTimeout = defaultAlternateTimeout
	}
	return &Service{
		deps:       deps,
		direct:     direct,
		alternates: alternates,
		opts:       opts,
	}
}

type step struct {
	path    Path
	timeout time.Duration
}

// Retrieve returns the raw markup for targetURL. When preferAlternatePath is set
// the direct fetch is skipped. Attempts run strictly in order and stop at the first success.
func (s *Service) Retrieve(ctx context.Context, targetURL string, preferAlternatePath bool) (string, error) {
	if err := ValidateURL(targetURL); err != nil {
		return "", err
	}

	if markup, ok := s.fromCache(ctx, targetURL); ok {
		return markup, nil
	}

	if s.opts.OverallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.OverallTimeout)
		defer cancel()
	}

	var attempts []coreerrors.RetrievalAttempt
	lastPath := ""
	var lastErr error

	for i, st := range s.chain(preferAlternatePath) {
		if ctx.Err() != nil {
			break
		}
		lastPath = st.path.Name()

		attemptCtx, cancel := context.WithTimeout(ctx, st.timeout)
		started := time.Now()
		markup, err := st.path.Fetch(attemptCtx, targetURL)
		timedOut := errors.Is(attemptCtx.Err(), context.DeadlineExceeded)
		cancel()

		if err == nil {
			s.deps.Logger.Info("Retrieved page", map[string]interface{}{
				"url":         targetURL,
				"path":        st.path.Name(),
				"attempt":     i + 1,
				"duration_ms": time.Since(started).Milliseconds(),
				"bytes":       len(markup),
			})
			s.toCache(ctx, targetURL, markup)
			return markup, nil
		}

		attempt := classify(st.path.Name(), err, timedOut)
		attempts = append(attempts, attempt)
		lastErr = err

		s.deps.Logger.Warn("Retrieval attempt failed", map[string]interface{}{
			"url":     targetURL,
			"path":    attempt.Path,
			"cause":   string(attempt.Cause),
			"error":   err.Error(),
			"attempt": i + 1,
		})
	}

	cause := coreerrors.CauseAllPathsExhausted
	if ctxErr := ctx.Err(); ctxErr != nil {
		lastErr = ctxErr
		cause = coreerrors.CauseNoResponse
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			cause = coreerrors.CauseTimeout
		}
	}

	return "", &coreerrors.RetrievalError{
		URL:      targetURL,
		Path:     lastPath,
		Cause:    cause,
		Attempts: attempts,
		Err:      lastErr,
	}
}

func (s *Service) chain(preferAlternatePath bool) []step {
	steps := make([]step, 0, len(s.alternates)+1)
	if !preferAlternatePath && s.direct != nil {
		steps = append(steps, step{path: s.direct, timeout: s.opts.DirectTimeout})
	}
	for _, p := range s.alternates {
		steps = append(steps, step{path: p, timeout: s.opts.AlternateTimeout})
	}
	return steps
}

// classify maps an attempt failure onto the retrieval cause taxonomy
func classify(path string, err error, timedOut bool) coreerrors.RetrievalAttempt {
	attempt := coreerrors.RetrievalAttempt{Path: path, Err: err}

	var statusErr *StatusError
	var netErr net.Error
	switch {
	case errors.As(err, &statusErr):
		attempt.Cause = coreerrors.CauseUpstreamStatus
		attempt.StatusCode = statusErr.StatusCode
	case timedOut, errors.Is(err, context.DeadlineExceeded):
		attempt.Cause = coreerrors.CauseTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		attempt.Cause = coreerrors.CauseTimeout
	default:
		attempt.Cause = coreerrors.CauseNoResponse
	}
	return attempt
}

func (s *Service) fromCache(ctx context.Context, targetURL string) (string, bool) {
	if s.deps.Cache == nil || s.opts.CacheTTL <= 0 {
		return "", false
	}
	data, err := s.deps.Cache.Get(ctx, interfaces.PageKeyPrefix+targetURL)
	if err != nil || len(data) == 0 {
		return "", false
	}
	s.deps.Logger.Debug("Page served from cache", map[string]interface{}{"url": targetURL})
	return string(data), true
}

func (s *Service) toCache(ctx context.Context, targetURL, markup string) {
	if s.deps.Cache == nil || s.opts.CacheTTL <= 0 {
		return
	}
	if err := s.deps.Cache.Set(ctx, interfaces.PageKeyPrefix+targetURL, []byte(markup), s.opts.CacheTTL); err != nil {
		s.deps.Logger.Warn("Failed to cache page", map[string]interface{}{
			"url":   targetURL,
			"error": err.Error(),
		})
	}
}

// ValidateURL requires an absolute http(s) URL
func ValidateURL(targetURL string) error {
	parsed, err := url.Parse(targetURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return &coreerrors.ValidationError{Field: "url", Message: "must be an absolute http(s) URL"}
	}
	return nil
}
