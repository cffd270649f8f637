package collection

import (
	"time"

	"markdown-collector-api/core/domain"
)

// seedEntries returns the example entries a brand-new collection starts
// with, so the collection view is never an empty page on first open.
func seedEntries(now time.Time) []domain.Entry {
	return []domain.Entry{
		{
			URL:      "https://example.com/page1",
			Title:    "Example Page 1",
			Markdown: "## Example Markdown 1",
			SavedAt:  now.Add(-48 * time.Hour).Format(time.RFC3339),
		},
		{
			URL:      "https://example.net/page4",
			Title:    "Example Page 4",
			Markdown: "## Example Markdown 4",
			SavedAt:  now.Add(-48 * time.Hour).Format(time.RFC3339),
		},
		{
			URL:      "https://example.com/page2",
			Title:    "Example Page 2",
			Markdown: "## Example Markdown 2",
			SavedAt:  now.Add(-24 * time.Hour).Format(time.RFC3339),
		},
		{
			URL:      "https://example.com/page3",
			Title:    "Example Page 3",
			Markdown: "## Example Markdown 3",
			SavedAt:  now.Format(time.RFC3339),
		},
	}
}
