// ABOUTME: Custom error types for the capture pipeline
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// NoTabsError indicates a capture was requested with no selectable tabs.
type NoTabsError struct{}

// Error implements the error interface
func (e *NoTabsError) Error() string {
	return "no tabs selected for capture"
}

// ConversionError represents a per-tab conversion failure. In multi-tab
// batches it is recoverable: the tab is skipped and siblings continue.
type ConversionError struct {
	URL     string
	Message string
}

// Error implements the error interface
func (e *ConversionError) Error() string {
	return fmt.Sprintf("failed to convert %s: %s", e.URL, e.Message)
}

// AuthError indicates the refinement credential was rejected (401).
type AuthError struct {
	Message string
}

// Error implements the error interface
func (e *AuthError) Error() string {
	if e.Message == "" {
		return "authentication error: invalid API key"
	}
	return fmt.Sprintf("authentication error: %s", e.Message)
}

// ConnectionError indicates the refinement endpoint could not be reached
// (network failure, DNS, base URL misconfiguration).
type ConnectionError struct {
	Message string
}

// Error implements the error interface
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %s", e.Message)
}

// MalformedResponseError indicates the refinement response lacked the
// expected structured payload. The caller falls back to the unrefined
// markdown rather than dropping content.
type MalformedResponseError struct {
	Message string
}

// Error implements the error interface
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed refinement response: %s", e.Message)
}

// ExternalAPIError represents any other non-2xx response from the
// refinement endpoint (rate limit, server error, bad request).
type ExternalAPIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("refinement API error: %d - %s", e.StatusCode, e.Message)
}

// StorageError indicates a persistence write failed. It is never silently
// swallowed; the user sees "content may not have been saved".
type StorageError struct {
	Key     string
	Message string
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error on key '%s': %s", e.Key, e.Message)
}

// ClipboardError indicates the clipboard write failed. Always downgraded
// to a warning; it never blocks save success.
type ClipboardError struct {
	Message string
}

// Error implements the error interface
func (e *ClipboardError) Error() string {
	return fmt.Sprintf("clipboard error: %s", e.Message)
}

// PendingExistsError indicates a second refinement-requiring capture was
// requested while the single pending slot is occupied.
type PendingExistsError struct{}

// Error implements the error interface
func (e *PendingExistsError) Error() string {
	return "a refinement is already pending; resolve or cancel it first"
}

// IsNoTabs checks if an error is a NoTabsError
func IsNoTabs(err error) bool {
	var noTabsErr *NoTabsError
	return errors.As(err, &noTabsErr)
}

// IsConversion checks if an error is a ConversionError
func IsConversion(err error) bool {
	var convErr *ConversionError
	return errors.As(err, &convErr)
}

// IsAuth checks if an error is an AuthError
func IsAuth(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsConnection checks if an error is a ConnectionError
func IsConnection(err error) bool {
	var connErr *ConnectionError
	return errors.As(err, &connErr)
}

// IsMalformedResponse checks if an error is a MalformedResponseError
func IsMalformedResponse(err error) bool {
	var malformedErr *MalformedResponseError
	return errors.As(err, &malformedErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsStorage checks if an error is a StorageError
func IsStorage(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// IsClipboard checks if an error is a ClipboardError
func IsClipboard(err error) bool {
	var clipErr *ClipboardError
	return errors.As(err, &clipErr)
}

// IsPendingExists checks if an error is a PendingExistsError
func IsPendingExists(err error) bool {
	var pendingErr *PendingExistsError
	return errors.As(err, &pendingErr)
}
