// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"

	"catcare-web/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsConfig(err) {
		return huma.Error503ServiceUnavailable("Content store is not configured")
	}

	var apiErr *errors.ExternalAPIError
	if stderrors.As(err, &apiErr) {
		// Map upstream status codes to ours
		switch {
		case apiErr.StatusCode >= 500:
			return huma.Error503ServiceUnavailable("Content store error", err)
		case apiErr.StatusCode == 429:
			return huma.Error429TooManyRequests("Rate limited by content store")
		case apiErr.StatusCode == 401 || apiErr.StatusCode == 403:
			return huma.Error502BadGateway("Content store rejected the credentials", err)
		case apiErr.StatusCode >= 400:
			return huma.Error502BadGateway("Content store request error", err)
		default:
			return huma.Error500InternalServerError("Unexpected content store response", err)
		}
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
