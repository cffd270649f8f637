// ABOUTME: Capture command handlers for the Huma API
// ABOUTME: Maps the extension's save/copy commands onto the coordinator

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"markdown-collector-api/core/capture"
	"markdown-collector-api/core/domain"
)

// CaptureHandler handles the capture commands
type CaptureHandler struct {
	coordinator *capture.Coordinator
}

// NewCaptureHandler creates a new capture handler
func NewCaptureHandler(coordinator *capture.Coordinator) *CaptureHandler {
	return &CaptureHandler{coordinator: coordinator}
}

// RegisterRoutes registers the capture command routes
func (h *CaptureHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "saveUrl",
		Method:      http.MethodPost,
		Path:        "/commands/save-url",
		Summary:     "Capture the selected tabs",
		Description: "Converts the selected tabs to Markdown and saves them to the collection. With refinement enabled the capture suspends until an instruction arrives.",
		Tags:        []string{"Commands"},
	}, h.SaveURL)

	huma.Register(api, huma.Operation{
		OperationID: "copyAsMarkdown",
		Method:      http.MethodPost,
		Path:        "/commands/copy-as-markdown",
		Summary:     "Capture the selected tabs and copy them",
		Description: "Same as save-url, additionally placing the wrapped Markdown on the clipboard once the capture completes.",
		Tags:        []string{"Commands"},
	}, h.CopyAsMarkdown)
}

// CaptureOutput defines the output for the capture operations
type CaptureOutput struct {
	Body domain.CaptureResult
}

// SaveURL handles the save-url command
func (h *CaptureHandler) SaveURL(ctx context.Context, input *struct{}) (*CaptureOutput, error) {
	result, err := h.coordinator.Capture(ctx, false)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &CaptureOutput{Body: result}, nil
}

// CopyAsMarkdown handles the copy-as-markdown command
func (h *CaptureHandler) CopyAsMarkdown(ctx context.Context, input *struct{}) (*CaptureOutput, error) {
	result, err := h.coordinator.Capture(ctx, true)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &CaptureOutput{Body: result}, nil
}
