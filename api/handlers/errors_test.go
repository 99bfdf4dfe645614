package handlers

import (
	"fmt"
	"testing"

	coreerrors "github.com/DTI-Technologies/shades-webapp/core/errors"
	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedInMsg  string
	}{
		{
			name:           "nil error returns nil",
			input:          nil,
			expectedStatus: 0,
		},
		{
			name:           "NotFoundError returns 404",
			input:          &coreerrors.NotFoundError{Resource: "website", ID: "abc"},
			expectedStatus: 404,
			expectedInMsg:  "website not found",
		},
		{
			name:           "ValidationError returns 400",
			input:          &coreerrors.ValidationError{Field: "colors.primary", Message: "target primary color is required"},
			expectedStatus: 400,
			expectedInMsg:  "colors.primary",
		},
		{
			name:           "retrieval timeout returns 504",
			input:          &coreerrors.RetrievalError{URL: "https://example.com", Cause: coreerrors.CauseTimeout},
			expectedStatus: 504,
			expectedInMsg:  "(timeout)",
		},
		{
			name:           "exhausted retrieval returns 502",
			input:          &coreerrors.RetrievalError{URL: "https://example.com", Cause: coreerrors.CauseAllPathsExhausted},
			expectedStatus: 502,
			expectedInMsg:  "all-paths-exhausted",
		},
		{
			name:           "ExternalAPIError with 500 returns 503",
			input:          &coreerrors.ExternalAPIError{StatusCode: 500, Message: "server error"},
			expectedStatus: 503,
			expectedInMsg:  "External service error",
		},
		{
			name:           "ExternalAPIError with 429 returns 429",
			input:          &coreerrors.ExternalAPIError{StatusCode: 429, Message: "rate limited"},
			expectedStatus: 429,
			expectedInMsg:  "Rate limited by external service",
		},
		{
			name:           "ExternalAPIError with 404 returns 400",
			input:          &coreerrors.ExternalAPIError{StatusCode: 404, Message: "not found"},
			expectedStatus: 400,
			expectedInMsg:  "External service request error",
		},
		{
			name:           "ExternalAPIError with unexpected status returns 500",
			input:          &coreerrors.ExternalAPIError{StatusCode: 200, Message: "ok but error"},
			expectedStatus: 500,
			expectedInMsg:  "Unexpected external service response",
		},
		{
			name:           "wrapped NotFoundError returns 404",
			input:          fmt.Errorf("wrapped: %w", &coreerrors.NotFoundError{Resource: "website"}),
			expectedStatus: 404,
			expectedInMsg:  "website not found",
		},
		{
			name:           "wrapped RetrievalError returns 502",
			input:          fmt.Errorf("scrape: %w", &coreerrors.RetrievalError{Cause: coreerrors.CauseUpstreamStatus}),
			expectedStatus: 502,
			expectedInMsg:  "upstream-status",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("some unknown error"),
			expectedStatus: 500,
			expectedInMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			if tt.input == nil {
				assert.Nil(t, result)
				return
			}

			humaErr, ok := result.(*huma.ErrorModel)
			require.True(t, ok, "Expected huma.ErrorModel")
			assert.Equal(t, tt.expectedStatus, humaErr.Status)
			assert.Contains(t, humaErr.Detail, tt.expectedInMsg)
		})
	}
}
