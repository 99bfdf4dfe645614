// ABOUTME: Caller identity middleware reads the already-resolved user ID from a header
// ABOUTME: Stores it in the request context for handlers and activity logging

package middleware

import (
	"context"
	"net/http"
	"strings"
)

// UserIDHeader carries the caller identity resolved upstream
const UserIDHeader = "X-User-ID"

// AnonymousCaller is used when no identity header is present
const AnonymousCaller = "anonymous"

type callerKey struct{}

// CallerIdentityMiddleware stores the caller ID from UserIDHeader in the request context.
// No authentication happens here.
func CallerIdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if caller == "" {
			caller = AnonymousCaller
		}
		next.ServeHTTP(w, r.WithContext(WithCallerID(r.Context(), caller)))
	})
}

// WithCallerID returns a context carrying the caller ID
func WithCallerID(ctx context.Context, callerID string) context.Context {
	return context.WithValue(ctx, callerKey{}, callerID)
}

// CallerID returns the caller ID in ctx, or AnonymousCaller
func CallerID(ctx context.Context) string {
	if id, ok := ctx.Value(callerKey{}).(string); ok && id != "" {
		return id
	}
	return AnonymousCaller
}
