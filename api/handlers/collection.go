// ABOUTME: Collection management handlers for the Huma API
// ABOUTME: List, edit, re-fetch, delete and copy saved entries

package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"markdown-collector-api/api/dto/requests"
	"markdown-collector-api/api/dto/responses"
	"markdown-collector-api/core/capture"
	"markdown-collector-api/core/collection"
	"markdown-collector-api/core/domain"
	coreerrors "markdown-collector-api/core/errors"
	"markdown-collector-api/core/interfaces"
	"markdown-collector-api/core/settings"
)

// CollectionHandler handles the collection endpoints
type CollectionHandler struct {
	repository *collection.Repository
	converter  interfaces.PageConverter
	settings   *settings.Service
	clipboard  interfaces.Clipboard
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(repository *collection.Repository, converter interfaces.PageConverter, settingsService *settings.Service, clipboard interfaces.Clipboard) *CollectionHandler {
	return &CollectionHandler{
		repository: repository,
		converter:  converter,
		settings:   settingsService,
		clipboard:  clipboard,
	}
}

// RegisterRoutes registers all collection routes
func (h *CollectionHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getCollection",
		Method:      http.MethodGet,
		Path:        "/collection",
		Summary:     "List the collection",
		Description: "Returns every saved entry plus a by-date grouping for display.",
		Tags:        []string{"Collection"},
	}, h.GetCollection)

	huma.Register(api, huma.Operation{
		OperationID: "replaceCollection",
		Method:      http.MethodPut,
		Path:        "/collection",
		Summary:     "Replace the collection",
		Description: "Replaces the whole collection, e.g. when importing an export.",
		Tags:        []string{"Collection"},
	}, h.ReplaceCollection)

	huma.Register(api, huma.Operation{
		OperationID: "getEntry",
		Method:      http.MethodGet,
		Path:        "/collection/entries",
		Summary:     "Get one entry by URL",
		Tags:        []string{"Collection"},
	}, h.GetEntry)

	huma.Register(api, huma.Operation{
		OperationID: "updateEntryMarkdown",
		Method:      http.MethodPut,
		Path:        "/collection/entries",
		Summary:     "Edit an entry's markdown",
		Tags:        []string{"Collection"},
	}, h.UpdateEntryMarkdown)

	huma.Register(api, huma.Operation{
		OperationID: "deleteEntries",
		Method:      http.MethodDelete,
		Path:        "/collection/entries",
		Summary:     "Delete entries by URL",
		Tags:        []string{"Collection"},
	}, h.DeleteEntries)

	huma.Register(api, huma.Operation{
		OperationID: "refetchEntry",
		Method:      http.MethodPost,
		Path:        "/collection/entries/update",
		Summary:     "Re-fetch an entry's page",
		Description: "Fetches the entry's URL again, converts it, and replaces the stored markdown. Reports whether the content changed.",
		Tags:        []string{"Collection"},
	}, h.RefetchEntry)

	huma.Register(api, huma.Operation{
		OperationID: "copyEntries",
		Method:      http.MethodPost,
		Path:        "/collection/copy",
		Summary:     "Copy entries to the clipboard",
		Description: "Copies the selected entries with their URL and title markers, joined by blank lines.",
		Tags:        []string{"Collection"},
	}, h.CopyEntries)
}

// GetCollectionOutput defines the output for the GetCollection operation
type GetCollectionOutput struct {
	Body responses.CollectionResponse
}

// GetCollection lists the whole collection
func (h *CollectionHandler) GetCollection(ctx context.Context, input *struct{}) (*GetCollectionOutput, error) {
	entries, err := h.repository.Load(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetCollectionOutput{
		Body: responses.CollectionResponse{
			Entries: entries,
			Groups:  collection.GroupByDate(entries),
			Count:   len(entries),
		},
	}, nil
}

// ReplaceCollectionInput defines the input for the ReplaceCollection operation
type ReplaceCollectionInput struct {
	Body []domain.Entry
}

// ReplaceCollectionOutput defines the output for the ReplaceCollection operation
type ReplaceCollectionOutput struct {
	Body responses.CollectionResponse
}

// ReplaceCollection replaces the stored collection wholesale
func (h *CollectionHandler) ReplaceCollection(ctx context.Context, input *ReplaceCollectionInput) (*ReplaceCollectionOutput, error) {
	for _, entry := range input.Body {
		if err := entry.Validate(); err != nil {
			return nil, huma.Error400BadRequest(err.Error())
		}
	}

	// Collapse duplicate URLs, last writer wins, before persisting.
	deduped := collection.MergeEntries(nil, input.Body)

	if err := h.repository.Save(ctx, deduped); err != nil {
		return nil, toHumaError(err)
	}

	return &ReplaceCollectionOutput{
		Body: responses.CollectionResponse{
			Entries: deduped,
			Groups:  collection.GroupByDate(deduped),
			Count:   len(deduped),
		},
	}, nil
}

// GetEntryInput defines the input for the GetEntry operation
type GetEntryInput struct {
	URL string `query:"url" required:"true" doc:"URL of the entry"`
}

// GetEntryOutput defines the output for the GetEntry operation
type GetEntryOutput struct {
	Body responses.EntryResponse
}

// GetEntry returns one entry by URL
func (h *CollectionHandler) GetEntry(ctx context.Context, input *GetEntryInput) (*GetEntryOutput, error) {
	entry, err := h.repository.Find(ctx, input.URL)
	if err != nil {
		return nil, toHumaError(err)
	}
	if entry == nil {
		return nil, huma.Error404NotFound("no entry with that URL")
	}
	return &GetEntryOutput{Body: responses.EntryResponse{Entry: entry}}, nil
}

// UpdateEntryMarkdownInput defines the input for the UpdateEntryMarkdown operation
type UpdateEntryMarkdownInput struct {
	Body requests.EntryMarkdownUpdateRequest
}

// UpdateEntryMarkdownOutput defines the output for the UpdateEntryMarkdown operation
type UpdateEntryMarkdownOutput struct {
	Body responses.EntryUpdateResponse
}

// UpdateEntryMarkdown replaces an entry's markdown in place
func (h *CollectionHandler) UpdateEntryMarkdown(ctx context.Context, input *UpdateEntryMarkdownInput) (*UpdateEntryMarkdownOutput, error) {
	found, err := h.repository.UpdateMarkdown(ctx, input.Body.URL, input.Body.Markdown)
	if err != nil {
		return nil, toHumaError(err)
	}
	if !found {
		return nil, huma.Error404NotFound("no entry with that URL")
	}
	return &UpdateEntryMarkdownOutput{Body: responses.EntryUpdateResponse{Found: true}}, nil
}

// DeleteEntriesInput defines the input for the DeleteEntries operation
type DeleteEntriesInput struct {
	Body requests.EntryDeleteRequest
}

// DeleteEntriesOutput defines the output for the DeleteEntries operation
type DeleteEntriesOutput struct {
	Body responses.EntryDeleteResponse
}

// DeleteEntries removes entries by URL
func (h *CollectionHandler) DeleteEntries(ctx context.Context, input *DeleteEntriesInput) (*DeleteEntriesOutput, error) {
	removed, err := h.repository.Delete(ctx, input.Body.URLs)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &DeleteEntriesOutput{Body: responses.EntryDeleteResponse{Removed: removed}}, nil
}

// RefetchEntryInput defines the input for the RefetchEntry operation
type RefetchEntryInput struct {
	Body requests.EntryRefetchRequest
}

// RefetchEntryOutput defines the output for the RefetchEntry operation
type RefetchEntryOutput struct {
	Body responses.EntryRefetchResponse
}

// RefetchEntry re-fetches an entry's page and refreshes its markdown
func (h *CollectionHandler) RefetchEntry(ctx context.Context, input *RefetchEntryInput) (*RefetchEntryOutput, error) {
	entry, err := h.repository.Find(ctx, input.Body.URL)
	if err != nil {
		return nil, toHumaError(err)
	}
	if entry == nil {
		return nil, huma.Error404NotFound("no entry with that URL")
	}

	cfg := h.settings.Load(ctx)
	tab := domain.Tab{URL: entry.URL, Title: entry.Title}
	markdown, err := h.converter.Convert(ctx, tab, interfaces.ConvertOptions{UseExtraction: cfg.EnableCleanup})
	if err != nil {
		return nil, toHumaError(err)
	}

	changed := markdown != entry.Markdown
	if changed {
		if _, err := h.repository.UpdateMarkdown(ctx, entry.URL, markdown); err != nil {
			return nil, toHumaError(err)
		}
	}

	return &RefetchEntryOutput{
		Body: responses.EntryRefetchResponse{
			Found:     true,
			Changed:   changed,
			OldLength: len(entry.Markdown),
			NewLength: len(markdown),
		},
	}, nil
}

// CopyEntriesInput defines the input for the CopyEntries operation
type CopyEntriesInput struct {
	Body requests.CopyEntriesRequest
}

// CopyEntriesOutput defines the output for the CopyEntries operation
type CopyEntriesOutput struct {
	Body responses.CopyResponse
}

// CopyEntries copies the selected entries to the clipboard
func (h *CollectionHandler) CopyEntries(ctx context.Context, input *CopyEntriesInput) (*CopyEntriesOutput, error) {
	var blocks []string
	for _, url := range input.Body.URLs {
		entry, err := h.repository.Find(ctx, url)
		if err != nil {
			return nil, toHumaError(err)
		}
		if entry == nil {
			continue
		}
		blocks = append(blocks, capture.WrapEntry(*entry))
	}

	if len(blocks) == 0 {
		return nil, huma.Error404NotFound("none of the URLs are in the collection")
	}

	if err := h.clipboard.WriteText(strings.Join(blocks, "\n\n\n")); err != nil {
		return nil, toHumaError(&coreerrors.ClipboardError{Message: err.Error()})
	}

	return &CopyEntriesOutput{Body: responses.CopyResponse{Copied: len(blocks)}}, nil
}
