// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"

	"github.com/danielgtaylor/huma/v2"

	"markdown-collector-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsNoTabs(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsPendingExists(err) {
		return huma.Error409Conflict(err.Error())
	}

	if errors.IsAuth(err) {
		return huma.Error401Unauthorized(err.Error())
	}

	if errors.IsConnection(err) {
		return huma.Error503ServiceUnavailable("Refinement endpoint unreachable", err)
	}

	if errors.IsMalformedResponse(err) {
		return huma.Error502BadGateway("Refinement endpoint returned an unusable response", err)
	}

	if errors.IsConversion(err) {
		return huma.Error502BadGateway("Page could not be converted", err)
	}

	if errors.IsExternalAPI(err) {
		var apiErr *errors.ExternalAPIError
		if stderrors.As(err, &apiErr) {
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
	}

	if errors.IsStorage(err) {
		return huma.Error500InternalServerError("Storage failure", err)
	}

	if errors.IsClipboard(err) {
		return huma.Error500InternalServerError("Clipboard failure", err)
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
