// ABOUTME: Tab domain model mirrors browser tab state reported by clients
// ABOUTME: Selection logic operates on highlighted/active flags per window

package domain

// Tab is the service-side view of one browser tab.
type Tab struct {
	ID          int    `json:"id"`
	WindowID    int    `json:"windowId"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Active      bool   `json:"active"`
	Highlighted bool   `json:"highlighted"`
}
