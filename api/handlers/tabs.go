// ABOUTME: Tab registry handlers for the Huma API
// ABOUTME: Browser clients report tab snapshots and activation events here

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"markdown-collector-api/api/dto/requests"
	"markdown-collector-api/core/capture"
	"markdown-collector-api/core/tabs"
)

// TabsHandler handles the tab registry endpoints
type TabsHandler struct {
	registry    *tabs.Registry
	coordinator *capture.Coordinator
}

// NewTabsHandler creates a new tabs handler
func NewTabsHandler(registry *tabs.Registry, coordinator *capture.Coordinator) *TabsHandler {
	return &TabsHandler{
		registry:    registry,
		coordinator: coordinator,
	}
}

// RegisterRoutes registers the tab routes
func (h *TabsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "syncTabs",
		Method:      http.MethodPut,
		Path:        "/tabs",
		Summary:     "Sync the tab registry",
		Description: "Replaces the server's view of the browser's tabs with a fresh snapshot.",
		Tags:        []string{"Tabs"},
	}, h.SyncTabs)

	huma.Register(api, huma.Operation{
		OperationID: "tabActivated",
		Method:      http.MethodPost,
		Path:        "/tabs/activated",
		Summary:     "Report a tab activation",
		Description: "Invalidates the pending refinement when the user moves away from the capture's origin tabs.",
		Tags:        []string{"Tabs"},
	}, h.TabActivated)
}

// SyncTabsInput defines the input for the SyncTabs operation
type SyncTabsInput struct {
	Body requests.TabsSyncRequest
}

// SyncTabsOutput defines the output for the SyncTabs operation
type SyncTabsOutput struct {
	Body struct {
		Count int `json:"count"`
	}
}

// SyncTabs replaces the registry snapshot
func (h *TabsHandler) SyncTabs(ctx context.Context, input *SyncTabsInput) (*SyncTabsOutput, error) {
	h.registry.Sync(input.Body.Tabs, input.Body.FocusedWindowID)

	out := &SyncTabsOutput{}
	out.Body.Count = len(input.Body.Tabs)
	return out, nil
}

// TabActivatedInput defines the input for the TabActivated operation
type TabActivatedInput struct {
	Body requests.TabActivatedRequest
}

// TabActivated reports an activation event
func (h *TabsHandler) TabActivated(ctx context.Context, input *TabActivatedInput) (*struct{}, error) {
	h.coordinator.HandleTabActivated(input.Body.TabID, input.Body.WindowID)
	return &struct{}{}, nil
}
