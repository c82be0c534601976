package handlers

import (
	"fmt"
	"testing"

	"catcare-web/core/errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedDetail string
	}{
		{
			name:           "NotFoundError returns 404",
			input:          &errors.NotFoundError{Resource: "article", ID: "missing"},
			expectedStatus: 404,
			expectedDetail: "article not found: missing",
		},
		{
			name:           "ValidationError returns 400",
			input:          &errors.ValidationError{Field: "slug", Message: "cannot be empty"},
			expectedStatus: 400,
			expectedDetail: "slug",
		},
		{
			name:           "ConfigError returns 503",
			input:          &errors.ConfigError{Key: "CONTENTFUL_SPACE_ID", Message: "must be set"},
			expectedStatus: 503,
			expectedDetail: "not configured",
		},
		{
			name:           "ExternalAPIError with 500 returns 503",
			input:          &errors.ExternalAPIError{API: "contentful", StatusCode: 500, Message: "server error"},
			expectedStatus: 503,
			expectedDetail: "Content store error",
		},
		{
			name:           "ExternalAPIError with 429 returns 429",
			input:          &errors.ExternalAPIError{API: "contentful", StatusCode: 429, Message: "RateLimitExceeded"},
			expectedStatus: 429,
			expectedDetail: "Rate limited",
		},
		{
			name:           "ExternalAPIError with 401 returns 502",
			input:          &errors.ExternalAPIError{API: "contentful", StatusCode: 401, Message: "AccessTokenInvalid"},
			expectedStatus: 502,
			expectedDetail: "credentials",
		},
		{
			name:           "ExternalAPIError with 404 returns 502",
			input:          &errors.ExternalAPIError{API: "contentful", StatusCode: 404, Message: "NotFound"},
			expectedStatus: 502,
			expectedDetail: "Content store request error",
		},
		{
			name:           "ExternalAPIError with unexpected status returns 500",
			input:          &errors.ExternalAPIError{API: "contentful", StatusCode: 200, Message: "odd"},
			expectedStatus: 500,
			expectedDetail: "Unexpected content store response",
		},
		{
			name:           "wrapped ExternalAPIError is unwrapped",
			input:          errors.WrapError(&errors.ExternalAPIError{StatusCode: 503}, "failed to list content types"),
			expectedStatus: 503,
			expectedDetail: "Content store error",
		},
		{
			name:           "wrapped NotFoundError returns 404",
			input:          fmt.Errorf("wrapped: %w", &errors.NotFoundError{Resource: "article", ID: "x"}),
			expectedStatus: 404,
			expectedDetail: "article not found",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("some unknown error"),
			expectedStatus: 500,
			expectedDetail: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			humaErr, ok := result.(*huma.ErrorModel)
			if assert.True(t, ok, "Expected huma.ErrorModel") {
				assert.Equal(t, tt.expectedStatus, humaErr.Status)
				assert.Contains(t, humaErr.Detail, tt.expectedDetail)
			}
		})
	}
}

func TestToHumaError_Nil(t *testing.T) {
	assert.Nil(t, toHumaError(nil))
}
