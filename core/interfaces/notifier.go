// ABOUTME: Notification surface for transient toasts and the pending badge
// ABOUTME: All methods are best-effort; delivery failure never fails a capture

package interfaces

import "markdown-collector-api/core/domain"

// Notifier is the sink for user-facing feedback.
type Notifier interface {
	// Notify queues a toast message for the UI.
	Notify(message string, kind domain.NotificationType)

	// ShowLoading signals the tab that a refinement call is in flight.
	ShowLoading(tabID int)

	// HideLoading clears the in-flight signal.
	HideLoading(tabID int)

	// SetBadge sets the persistent badge counter (pending work count).
	SetBadge(count int)
}
