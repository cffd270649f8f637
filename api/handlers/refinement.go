// ABOUTME: Refinement handlers for the Huma API
// ABOUTME: Exposes the pending slot: inspect, resolve with a prompt, cancel

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"markdown-collector-api/api/dto/requests"
	"markdown-collector-api/api/dto/responses"
	"markdown-collector-api/core/capture"
	"markdown-collector-api/core/domain"
)

// RefinementHandler handles the pending-refinement endpoints
type RefinementHandler struct {
	coordinator *capture.Coordinator
}

// NewRefinementHandler creates a new refinement handler
func NewRefinementHandler(coordinator *capture.Coordinator) *RefinementHandler {
	return &RefinementHandler{coordinator: coordinator}
}

// RegisterRoutes registers the refinement routes
func (h *RefinementHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getPendingRefinement",
		Method:      http.MethodGet,
		Path:        "/refinement/pending",
		Summary:     "Get the pending refinement",
		Description: "Returns the capture currently awaiting a refinement instruction, or null.",
		Tags:        []string{"Refinement"},
	}, h.GetPending)

	huma.Register(api, huma.Operation{
		OperationID: "processRefinement",
		Method:      http.MethodPost,
		Path:        "/refinement/process",
		Summary:     "Resolve the pending refinement",
		Description: "Applies the instruction to the pending capture and persists the result. An empty prompt saves without refinement; collective mode merges all tabs into one batch entry.",
		Tags:        []string{"Refinement"},
	}, h.Process)

	huma.Register(api, huma.Operation{
		OperationID: "cancelRefinement",
		Method:      http.MethodDelete,
		Path:        "/refinement/pending",
		Summary:     "Cancel the pending refinement",
		Description: "Discards the pending capture without saving anything.",
		Tags:        []string{"Refinement"},
	}, h.Cancel)
}

// PendingOutput defines the output for the GetPending operation
type PendingOutput struct {
	Body responses.PendingResponse
}

// GetPending returns the pending refinement, if any
func (h *RefinementHandler) GetPending(ctx context.Context, input *struct{}) (*PendingOutput, error) {
	out := &PendingOutput{}
	if pending, ok := h.coordinator.Pending(); ok {
		out.Body.Pending = &pending
	}
	return out, nil
}

// ProcessInput defines the input for the Process operation
type ProcessInput struct {
	Body requests.ProcessRefinementRequest
}

// ProcessOutput defines the output for the Process operation
type ProcessOutput struct {
	Body domain.CaptureResult
}

// Process resolves the pending refinement with the user's instruction
func (h *RefinementHandler) Process(ctx context.Context, input *ProcessInput) (*ProcessOutput, error) {
	result, err := h.coordinator.ProcessRefinement(ctx, input.Body.Prompt, input.Body.Collective)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ProcessOutput{Body: result}, nil
}

// CancelOutput defines the output for the Cancel operation
type CancelOutput struct {
	Body domain.CaptureResult
}

// Cancel discards the pending refinement
func (h *RefinementHandler) Cancel(ctx context.Context, input *struct{}) (*CancelOutput, error) {
	return &CancelOutput{Body: h.coordinator.CancelRefinement()}, nil
}
