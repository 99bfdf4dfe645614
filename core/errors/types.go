// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for retrieval, validation and upstream failures

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents an error from an external API
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// RetrievalCause classifies why a page could not be fetched
type RetrievalCause string

const (
	CauseTimeout           RetrievalCause = "timeout"
	CauseUpstreamStatus    RetrievalCause = "upstream-status"
	CauseNoResponse        RetrievalCause = "no-response"
	CauseAllPathsExhausted RetrievalCause = "all-paths-exhausted"
)

// RetrievalAttempt records one failed step of the fallback chain
type RetrievalAttempt struct {
	Path       string
	Cause      RetrievalCause
	StatusCode int
	Err        error
}

// String renders the attempt for diagnostics
func (a RetrievalAttempt) String() string {
	if a.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (%d)", a.Path, a.Cause, a.StatusCode)
	}
	if a.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", a.Path, a.Cause, a.Err)
	}
	return fmt.Sprintf("%s: %s", a.Path, a.Cause)
}

// RetrievalError represents a failure to fetch the source page
type RetrievalError struct {
	URL      string
	Path     string
	Cause    RetrievalCause
	Attempts []RetrievalAttempt
	Err      error
}

// Error implements the error interface
func (e *RetrievalError) Error() string {
	msg := fmt.Sprintf("retrieval of %s failed via %s: %s", e.URL, e.Path, e.Cause)
	if len(e.Attempts) > 0 {
		parts := make([]string, len(e.Attempts))
		for i, a := range e.Attempts {
			parts[i] = a.String()
		}
		msg += " [" + strings.Join(parts, "; ") + "]"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error
func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsRetrieval checks if an error is a RetrievalError
func IsRetrieval(err error) bool {
	var retrievalErr *RetrievalError
	return errors.As(err, &retrievalErr)
}

// RetrievalCauseOf returns the cause of a RetrievalError in the chain, or "" if there is none
func RetrievalCauseOf(err error) RetrievalCause {
	var retrievalErr *RetrievalError
	if errors.As(err, &retrievalErr) {
		return retrievalErr.Cause
	}
	return ""
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
