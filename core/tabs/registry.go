// ABOUTME: Tab registry mirrors browser tab state reported by the extension
// ABOUTME: Selection returns highlighted tabs of the focused window, or the active tab

package tabs

import (
	"context"
	"sync"

	"markdown-collector-api/core/domain"
	"markdown-collector-api/core/interfaces"
)

// Registry holds the last tab snapshot reported by the browser client
// and implements the TabSelector interface over it.
type Registry struct {
	mu              sync.RWMutex
	tabs            []domain.Tab
	focusedWindowID int
	logger          interfaces.Logger
}

// NewRegistry creates an empty tab registry.
func NewRegistry(logger interfaces.Logger) *Registry {
	return &Registry{logger: logger}
}

// Sync replaces the registry contents with a fresh snapshot.
func (r *Registry) Sync(tabs []domain.Tab, focusedWindowID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tabs = make([]domain.Tab, len(tabs))
	copy(r.tabs, tabs)
	r.focusedWindowID = focusedWindowID
}

// SelectTabs returns the capture targets. Multi-tab mode selects every
// highlighted tab in the focused window; otherwise only the active tab.
// A stale or empty registry yields an empty slice, never an error.
func (r *Registry) SelectTabs(ctx context.Context, multiTab bool) []domain.Tab {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.tabs) == 0 {
		r.logger.Warn("Tab selection requested with no tabs reported", nil)
		return nil
	}

	if multiTab {
		var selected []domain.Tab
		for _, tab := range r.tabs {
			if tab.WindowID == r.focusedWindowID && tab.Highlighted {
				selected = append(selected, tab)
			}
		}
		if len(selected) > 0 {
			return selected
		}
		// Nothing highlighted; fall through to the active tab.
	}

	for _, tab := range r.tabs {
		if tab.WindowID == r.focusedWindowID && tab.Active {
			return []domain.Tab{tab}
		}
	}

	r.logger.Warn("No active tab in focused window", map[string]interface{}{
		"windowId": r.focusedWindowID,
	})
	return nil
}

// HasMultipleSelected reports whether more than one tab is highlighted
// in the focused window.
func (r *Registry) HasMultipleSelected(ctx context.Context) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, tab := range r.tabs {
		if tab.WindowID == r.focusedWindowID && tab.Highlighted {
			count++
		}
	}
	return count > 1
}

// FocusedWindowID returns the window the browser reports as focused.
func (r *Registry) FocusedWindowID() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.focusedWindowID
}
