// ABOUTME: Request DTOs for collection management endpoints
// ABOUTME: Entries are addressed by URL, the collection's unique key

package requests

// EntryMarkdownUpdateRequest replaces the markdown of one entry.
type EntryMarkdownUpdateRequest struct {
	URL      string `json:"url" minLength:"1" doc:"URL of the entry to update"`
	Markdown string `json:"markdown" doc:"Replacement markdown content"`
}

// EntryDeleteRequest removes entries by URL.
type EntryDeleteRequest struct {
	URLs []string `json:"urls" minItems:"1" doc:"URLs of the entries to delete"`
}

// EntryRefetchRequest re-fetches an entry's page and refreshes its markdown.
type EntryRefetchRequest struct {
	URL string `json:"url" minLength:"1" doc:"URL of the entry to re-fetch"`
}

// CopyEntriesRequest copies the selected entries to the clipboard.
type CopyEntriesRequest struct {
	URLs []string `json:"urls" minItems:"1" doc:"URLs of the entries to copy"`
}
