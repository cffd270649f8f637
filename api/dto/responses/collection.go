// ABOUTME: Response DTOs for collection and refinement endpoints
// ABOUTME: Shapes match what the extension UI renders

package responses

import "markdown-collector-api/core/domain"

// CollectionResponse is the full collection plus its date grouping.
type CollectionResponse struct {
	Entries []domain.Entry            `json:"entries"`
	Groups  map[string][]domain.Entry `json:"groups"`
	Count   int                       `json:"count"`
}

// EntryResponse wraps one collection entry.
type EntryResponse struct {
	Entry *domain.Entry `json:"entry"`
}

// EntryUpdateResponse reports an in-place markdown update.
type EntryUpdateResponse struct {
	Found bool `json:"found"`
}

// EntryRefetchResponse reports a re-fetch with before/after sizes so
// the UI can show whether the page changed.
type EntryRefetchResponse struct {
	Found     bool `json:"found"`
	Changed   bool `json:"changed"`
	OldLength int  `json:"oldLength"`
	NewLength int  `json:"newLength"`
}

// EntryDeleteResponse reports how many entries a delete removed.
type EntryDeleteResponse struct {
	Removed int `json:"removed"`
}

// CopyResponse reports a clipboard copy of selected entries.
type CopyResponse struct {
	Copied int `json:"copied"`
}

// PendingResponse is the pending refinement, or null when the slot is
// empty.
type PendingResponse struct {
	Pending *domain.PendingRefinement `json:"pending"`
}

// NotificationsResponse drains the queued toasts.
type NotificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
}

// BadgeResponse is the persistent badge counter.
type BadgeResponse struct {
	Count int `json:"count"`
}
