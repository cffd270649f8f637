// ABOUTME: Presentation helpers for the collection listing
// ABOUTME: Groups entries by save date and derives display domains

package collection

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"markdown-collector-api/core/domain"
)

// UnknownDateGroup is the bucket for entries whose savedAt cannot be parsed.
const UnknownDateGroup = "Unknown Date"

// GroupByDate buckets entries by their save date (YYYY-MM-DD), newest
// first within each bucket.
func GroupByDate(entries []domain.Entry) map[string][]domain.Entry {
	grouped := make(map[string][]domain.Entry)

	for _, entry := range entries {
		key := UnknownDateGroup
		if t, err := time.Parse(time.RFC3339, entry.SavedAt); err == nil {
			key = t.UTC().Format("2006-01-02")
		}
		grouped[key] = append(grouped[key], entry)
	}

	for key := range grouped {
		group := grouped[key]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].SavedAt > group[j].SavedAt
		})
	}
	return grouped
}

// CoreDomain extracts the registrable domain of a URL for display
// ("www.example.com/path" -> "example.com").
func CoreDomain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return rawURL
	}
	parts := strings.Split(parsed.Hostname(), ".")
	if len(parts) <= 2 {
		return parsed.Hostname()
	}
	return strings.Join(parts[len(parts)-2:], ".")
}
