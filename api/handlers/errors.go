// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"errors"
	"fmt"

	coreerrors "github.com/DTI-Technologies/shades-webapp/core/errors"
	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if coreerrors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if coreerrors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	// Retrieval failures tell the caller whether retrying via the alternate path may help
	var retrievalErr *coreerrors.RetrievalError
	if errors.As(err, &retrievalErr) {
		msg := fmt.Sprintf("Could not fetch the source page (%s)", retrievalErr.Cause)
		if retrievalErr.Cause == coreerrors.CauseTimeout {
			return huma.Error504GatewayTimeout(msg, err)
		}
		return huma.Error502BadGateway(msg, err)
	}

	var apiErr *coreerrors.ExternalAPIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode >= 500:
			return huma.Error503ServiceUnavailable("External service error", err)
		case apiErr.StatusCode == 429:
			return huma.Error429TooManyRequests("Rate limited by external service")
		case apiErr.StatusCode >= 400:
			return huma.Error400BadRequest("External service request error", err)
		default:
			return huma.Error500InternalServerError("Unexpected external service response", err)
		}
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
