// ABOUTME: Service contracts consumed by the coordinator and the API layer
// ABOUTME: Mirrors the component boundaries: converter, refiner, tab selector

package interfaces

import (
	"context"

	"markdown-collector-api/core/domain"
)

// ConvertOptions controls a single page conversion.
type ConvertOptions struct {
	// UseExtraction runs readability cleanup before conversion when true.
	UseExtraction bool
}

// PageConverter turns a page into Markdown.
type PageConverter interface {
	// Convert fetches the tab's page and converts it to Markdown.
	// Extraction failures fall back to full-page conversion; empty or
	// malformed HTML yields a minimal but valid document.
	Convert(ctx context.Context, tab domain.Tab, opts ConvertOptions) (string, error)
}

// Refiner restructures Markdown through an external LLM endpoint.
type Refiner interface {
	// Refine sends markdown plus a natural-language instruction and
	// returns the restructured document. Failures are typed (auth,
	// connection, malformed response, upstream error); a malformed
	// response falls back to returning the original markdown together
	// with the error.
	Refine(ctx context.Context, markdown, prompt string, creds domain.Credentials, tabID int) (string, error)
}

// TabSelector determines the target tabs for the next capture.
type TabSelector interface {
	// SelectTabs returns the highlighted tabs of the focused window when
	// multi-tab capture is enabled, otherwise the single active tab.
	// It never fails; query problems produce an empty slice and a log entry.
	SelectTabs(ctx context.Context, multiTab bool) []domain.Tab

	// HasMultipleSelected reports whether more than one tab is highlighted.
	HasMultipleSelected(ctx context.Context) bool
}
