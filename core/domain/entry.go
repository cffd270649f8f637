// ABOUTME: Entry domain model represents one saved page capture
// ABOUTME: Entries are unique by URL within the collection

package domain

import "time"

// Entry represents a single captured page in the collection.
type Entry struct {
	URL              string     `json:"url"`
	Title            string     `json:"title"`
	Markdown         string     `json:"markdown"`
	SavedAt          string     `json:"savedAt"` // RFC3339
	IsBatchProcessed bool       `json:"isBatchProcessed,omitempty"`
	BatchInfo        *BatchInfo `json:"batchInfo,omitempty"`
}

// BatchInfo describes a collective refinement that merged several tabs
// into a single entry.
type BatchInfo struct {
	Prompt  string        `json:"prompt"`
	Sources []BatchSource `json:"sources"`
}

// BatchSource identifies one tab that contributed to a batch entry.
type BatchSource struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// NewEntry creates an entry stamped with the current time.
func NewEntry(url, title, markdown string) Entry {
	return Entry{
		URL:      url,
		Title:    title,
		Markdown: markdown,
		SavedAt:  time.Now().UTC().Format(time.RFC3339),
	}
}

// Validate checks that the entry has the fields the collection requires.
func (e Entry) Validate() error {
	if e.URL == "" {
		return ErrEmptyURL
	}
	return nil
}
