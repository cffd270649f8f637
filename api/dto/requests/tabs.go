// ABOUTME: Request DTOs for the tab registry endpoints
// ABOUTME: Browser clients report their tab state through these

package requests

import "markdown-collector-api/core/domain"

// TabsSyncRequest replaces the registry with a fresh snapshot.
type TabsSyncRequest struct {
	Tabs            []domain.Tab `json:"tabs" doc:"All open tabs as the browser reports them"`
	FocusedWindowID int          `json:"focusedWindowId" doc:"Window that currently has focus"`
}

// TabActivatedRequest reports a tab activation event.
type TabActivatedRequest struct {
	TabID    int `json:"tabId" doc:"Tab that became active"`
	WindowID int `json:"windowId" doc:"Window the tab belongs to"`
}
