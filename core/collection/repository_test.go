package collection

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"markdown-collector-api/core/domain"
	coreerrors "markdown-collector-api/core/errors"
	"markdown-collector-api/core/interfaces"
)

func newTestRepository(store *mockStore) *Repository {
	return NewRepository(interfaces.Dependencies{
		Store:  store,
		Logger: &mockLogger{},
	})
}

func TestLoad_SeedsEmptyCollection(t *testing.T) {
	store := newMockStore()
	repo := newTestRepository(store)

	entries, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if len(entries) != 4 {
		t.Errorf("seeded collection has %d entries, want 4", len(entries))
	}
	if _, ok := store.data[StoreKey]; !ok {
		t.Error("seed entries should be persisted")
	}
}

func TestLoad_SeedsOnlyOnce(t *testing.T) {
	store := newMockStore()
	repo := newTestRepository(store)

	first, _ := repo.Load(context.Background())
	second, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("second Load returned error: %v", err)
	}

	if len(first) != len(second) {
		t.Errorf("second Load returned %d entries, want %d", len(second), len(first))
	}
}

func TestLoad_CorruptData(t *testing.T) {
	store := newMockStore()
	store.data[StoreKey] = []byte("{not json")
	repo := newTestRepository(store)

	_, err := repo.Load(context.Background())
	if !coreerrors.IsStorage(err) {
		t.Errorf("Load returned %v, want StorageError", err)
	}
}

func TestLoad_BackendFailureDoesNotReseed(t *testing.T) {
	store := newMockStore()
	saved, _ := json.Marshal([]domain.Entry{domain.NewEntry("https://a.test", "A", "# A")})
	store.data[StoreKey] = saved
	store.getErr = errors.New("i/o timeout")
	repo := newTestRepository(store)

	_, err := repo.Load(context.Background())
	if !coreerrors.IsStorage(err) {
		t.Errorf("Load returned %v, want StorageError", err)
	}
	if store.setCnt != 0 {
		t.Errorf("Load wrote %d times after a backend failure, want 0", store.setCnt)
	}
	if string(store.data[StoreKey]) != string(saved) {
		t.Error("stored collection changed after a failed Load")
	}
}

func TestMerge_BackendFailurePreservesCollection(t *testing.T) {
	store := newMockStore()
	saved, _ := json.Marshal([]domain.Entry{domain.NewEntry("https://a.test", "A", "# A")})
	store.data[StoreKey] = saved
	store.getErr = errors.New("i/o timeout")
	repo := newTestRepository(store)

	_, err := repo.Merge(context.Background(), []domain.Entry{
		domain.NewEntry("https://b.test", "B", "# B"),
	})
	if !coreerrors.IsStorage(err) {
		t.Errorf("Merge returned %v, want StorageError", err)
	}

	// The saved entry must survive the transient failure untouched.
	store.getErr = nil
	entries, loadErr := repo.Load(context.Background())
	if loadErr != nil {
		t.Fatalf("Load after recovery returned error: %v", loadErr)
	}
	if len(entries) != 1 || entries[0].URL != "https://a.test" {
		t.Errorf("collection after failed Merge = %+v, want only the original entry", entries)
	}
}

func TestMerge_AppendsNewEntry(t *testing.T) {
	store := newMockStore()
	store.data[StoreKey] = []byte(`[]`)
	repo := newTestRepository(store)

	entry := domain.NewEntry("https://example.com/a", "A", "# A")
	merged, err := repo.Merge(context.Background(), []domain.Entry{entry})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}

	if len(merged) != 1 {
		t.Fatalf("merged collection has %d entries, want 1", len(merged))
	}
	if merged[0].URL != entry.URL {
		t.Errorf("merged entry URL = %q, want %q", merged[0].URL, entry.URL)
	}
}

func TestMerge_ReplacesByURLInPlace(t *testing.T) {
	store := newMockStore()
	existing := []domain.Entry{
		{URL: "https://example.com/a", Title: "A", Markdown: "old a", SavedAt: "2026-08-01T00:00:00Z"},
		{URL: "https://example.com/b", Title: "B", Markdown: "old b", SavedAt: "2026-08-01T00:00:00Z"},
	}
	data, _ := json.Marshal(existing)
	store.data[StoreKey] = data
	repo := newTestRepository(store)

	update := domain.NewEntry("https://example.com/a", "A2", "new a")
	merged, err := repo.Merge(context.Background(), []domain.Entry{update})
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}

	if len(merged) != 2 {
		t.Fatalf("merged collection has %d entries, want 2", len(merged))
	}
	if merged[0].Markdown != "new a" || merged[0].Title != "A2" {
		t.Errorf("replaced entry = %+v, want the new content at position 0", merged[0])
	}
	if merged[1].Markdown != "old b" {
		t.Errorf("unrelated entry changed: %+v", merged[1])
	}
}

func TestMergeEntries_NeverDuplicatesURLs(t *testing.T) {
	existing := []domain.Entry{{URL: "https://example.com/a", Markdown: "v1"}}
	incoming := []domain.Entry{
		{URL: "https://example.com/a", Markdown: "v2"},
		{URL: "https://example.com/a", Markdown: "v3"},
	}

	merged := MergeEntries(existing, incoming)

	if len(merged) != 1 {
		t.Fatalf("merged collection has %d entries, want 1", len(merged))
	}
	if merged[0].Markdown != "v3" {
		t.Errorf("last write should win, got %q", merged[0].Markdown)
	}
}

func TestMergeEntries_DoesNotMutateInput(t *testing.T) {
	existing := []domain.Entry{{URL: "https://example.com/a", Markdown: "v1"}}
	incoming := []domain.Entry{{URL: "https://example.com/a", Markdown: "v2"}}

	MergeEntries(existing, incoming)

	if existing[0].Markdown != "v1" {
		t.Error("MergeEntries mutated its input slice")
	}
}

func TestUpdateMarkdown_ExistingEntry(t *testing.T) {
	store := newMockStore()
	data, _ := json.Marshal([]domain.Entry{
		{URL: "https://example.com/a", Markdown: "old", SavedAt: "2026-08-01T00:00:00Z"},
	})
	store.data[StoreKey] = data
	repo := newTestRepository(store)

	found, err := repo.UpdateMarkdown(context.Background(), "https://example.com/a", "edited")
	if err != nil {
		t.Fatalf("UpdateMarkdown returned error: %v", err)
	}
	if !found {
		t.Fatal("UpdateMarkdown should report the entry was found")
	}

	entries, _ := repo.Load(context.Background())
	if entries[0].Markdown != "edited" {
		t.Errorf("persisted markdown = %q, want %q", entries[0].Markdown, "edited")
	}
	if entries[0].SavedAt == "2026-08-01T00:00:00Z" {
		t.Error("SavedAt should be refreshed on update")
	}
}

func TestUpdateMarkdown_MissingEntry(t *testing.T) {
	store := newMockStore()
	store.data[StoreKey] = []byte(`[]`)
	repo := newTestRepository(store)

	found, err := repo.UpdateMarkdown(context.Background(), "https://example.com/missing", "x")
	if err != nil {
		t.Fatalf("UpdateMarkdown returned error: %v", err)
	}
	if found {
		t.Error("UpdateMarkdown should report false for an unknown URL")
	}
}

func TestDelete_RemovesMatchingURLs(t *testing.T) {
	store := newMockStore()
	data, _ := json.Marshal([]domain.Entry{
		{URL: "https://example.com/a"},
		{URL: "https://example.com/b"},
		{URL: "https://example.com/c"},
	})
	store.data[StoreKey] = data
	repo := newTestRepository(store)

	removed, err := repo.Delete(context.Background(), []string{"https://example.com/a", "https://example.com/c"})
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if removed != 2 {
		t.Errorf("Delete removed %d entries, want 2", removed)
	}

	entries, _ := repo.Load(context.Background())
	if len(entries) != 1 || entries[0].URL != "https://example.com/b" {
		t.Errorf("remaining entries = %+v, want only /b", entries)
	}
}

func TestDelete_NoMatchesSkipsWrite(t *testing.T) {
	store := newMockStore()
	store.data[StoreKey] = []byte(`[{"url":"https://example.com/a"}]`)
	repo := newTestRepository(store)
	writesBefore := store.setCnt

	removed, err := repo.Delete(context.Background(), []string{"https://example.com/missing"})
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if removed != 0 {
		t.Errorf("Delete removed %d entries, want 0", removed)
	}
	if store.setCnt != writesBefore {
		t.Error("Delete with no matches should not rewrite the collection")
	}
}

func TestFind(t *testing.T) {
	store := newMockStore()
	store.data[StoreKey] = []byte(`[{"url":"https://example.com/a","title":"A"}]`)
	repo := newTestRepository(store)

	entry, err := repo.Find(context.Background(), "https://example.com/a")
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if entry == nil || entry.Title != "A" {
		t.Errorf("Find returned %+v, want entry with title A", entry)
	}

	missing, err := repo.Find(context.Background(), "https://example.com/missing")
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if missing != nil {
		t.Errorf("Find returned %+v for a missing URL, want nil", missing)
	}
}

func TestSave_StoreFailure(t *testing.T) {
	store := newMockStore()
	store.data[StoreKey] = []byte(`[]`)
	store.setErr = errors.New("disk full")
	repo := newTestRepository(store)

	err := repo.Save(context.Background(), []domain.Entry{{URL: "https://example.com/a"}})
	if !coreerrors.IsStorage(err) {
		t.Errorf("Save returned %v, want StorageError", err)
	}
}
