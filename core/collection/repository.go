// ABOUTME: Collection repository persists the whole entry list under one store key
// ABOUTME: Merge replaces by URL in place, appends new entries, writes atomically

package collection

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"markdown-collector-api/core/domain"
	coreerrors "markdown-collector-api/core/errors"
	"markdown-collector-api/core/interfaces"
)

// StoreKey is the single key the collection lives under.
const StoreKey = "markdownData"

// Repository loads and saves the collection as one unit.
type Repository struct {
	store  interfaces.KeyValueStore
	logger interfaces.Logger
}

// NewRepository creates a collection repository.
func NewRepository(deps interfaces.Dependencies) *Repository {
	return &Repository{
		store:  deps.Store,
		logger: deps.Logger,
	}
}

// Load returns the stored collection. A collection that was never
// written is created lazily, seeded with example entries. Only a
// genuine miss seeds; a backend failure must surface so a later write
// cannot clobber the stored collection with seed data.
func (r *Repository) Load(ctx context.Context) ([]domain.Entry, error) {
	data, err := r.store.Get(ctx, StoreKey)
	if errors.Is(err, interfaces.ErrKeyNotFound) {
		seeded := seedEntries(time.Now().UTC())
		if saveErr := r.Save(ctx, seeded); saveErr != nil {
			return nil, saveErr
		}
		r.logger.Info("Seeded empty collection with example entries", map[string]interface{}{
			"count": len(seeded),
		})
		return seeded, nil
	}
	if err != nil {
		return nil, &coreerrors.StorageError{Key: StoreKey, Message: err.Error()}
	}

	var entries []domain.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &coreerrors.StorageError{Key: StoreKey, Message: err.Error()}
	}
	return entries, nil
}

// Save writes the whole collection back in one store operation.
func (r *Repository) Save(ctx context.Context, entries []domain.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return &coreerrors.StorageError{Key: StoreKey, Message: err.Error()}
	}
	if err := r.store.Set(ctx, StoreKey, data); err != nil {
		return &coreerrors.StorageError{Key: StoreKey, Message: err.Error()}
	}
	return nil
}

// Merge folds newEntries into the collection and persists the result.
// An entry whose URL already exists replaces the old one in place; new
// URLs are appended in input order. The returned slice is the persisted
// collection.
func (r *Repository) Merge(ctx context.Context, newEntries []domain.Entry) ([]domain.Entry, error) {
	entries, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	merged := MergeEntries(entries, newEntries)
	if err := r.Save(ctx, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// MergeEntries is the pure merge: replace-by-url preserving position,
// append otherwise. The result never holds two entries with one URL.
func MergeEntries(entries, newEntries []domain.Entry) []domain.Entry {
	merged := make([]domain.Entry, len(entries))
	copy(merged, entries)

	for _, entry := range newEntries {
		replaced := false
		for i := range merged {
			if merged[i].URL == entry.URL {
				merged[i] = entry
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, entry)
		}
	}
	return merged
}

// UpdateMarkdown replaces the markdown of the entry with the given URL.
// Returns false when no entry matches.
func (r *Repository) UpdateMarkdown(ctx context.Context, url, markdown string) (bool, error) {
	entries, err := r.Load(ctx)
	if err != nil {
		return false, err
	}

	for i := range entries {
		if entries[i].URL == url {
			entries[i].Markdown = markdown
			entries[i].SavedAt = time.Now().UTC().Format(time.RFC3339)
			return true, r.Save(ctx, entries)
		}
	}
	return false, nil
}

// Delete removes every entry whose URL appears in urls.
func (r *Repository) Delete(ctx context.Context, urls []string) (int, error) {
	entries, err := r.Load(ctx)
	if err != nil {
		return 0, err
	}

	drop := make(map[string]bool, len(urls))
	for _, u := range urls {
		drop[u] = true
	}

	kept := entries[:0]
	removed := 0
	for _, entry := range entries {
		if drop[entry.URL] {
			removed++
			continue
		}
		kept = append(kept, entry)
	}

	if removed == 0 {
		return 0, nil
	}
	return removed, r.Save(ctx, kept)
}

// Find returns the entry with the given URL, if present.
func (r *Repository) Find(ctx context.Context, url string) (*domain.Entry, error) {
	entries, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].URL == url {
			entry := entries[i]
			return &entry, nil
		}
	}
	return nil, nil
}
