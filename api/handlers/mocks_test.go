package handlers

import (
	"context"
	"fmt"
	"sync"

	"markdown-collector-api/core/capture"
	"markdown-collector-api/core/collection"
	"markdown-collector-api/core/domain"
	"markdown-collector-api/core/interfaces"
	"markdown-collector-api/core/notify"
	"markdown-collector-api/core/settings"
	"markdown-collector-api/core/tabs"
)

// mockStore is an in-memory KeyValueStore for handler tests
type mockStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMockStore() *mockStore {
	return &mockStore{data: map[string][]byte{}}
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	if !ok {
		return nil, interfaces.ErrKeyNotFound
	}
	return value, nil
}

func (m *mockStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *mockStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// mockConverter is a mock implementation of the page converter
type mockConverter struct {
	convertFunc func(ctx context.Context, tab domain.Tab, opts interfaces.ConvertOptions) (string, error)
}

func (m *mockConverter) Convert(ctx context.Context, tab domain.Tab, opts interfaces.ConvertOptions) (string, error) {
	if m.convertFunc != nil {
		return m.convertFunc(ctx, tab, opts)
	}
	return fmt.Sprintf("# %s", tab.Title), nil
}

// mockRefiner is a mock implementation of the refiner
type mockRefiner struct {
	refineFunc func(ctx context.Context, markdown, prompt string, creds domain.Credentials, tabID int) (string, error)
}

func (m *mockRefiner) Refine(ctx context.Context, markdown, prompt string, creds domain.Credentials, tabID int) (string, error) {
	if m.refineFunc != nil {
		return m.refineFunc(ctx, markdown, prompt, creds, tabID)
	}
	return "refined: " + markdown, nil
}

// mockSelector is a mock implementation of the tab selector
type mockSelector struct {
	tabs []domain.Tab
}

func (m *mockSelector) SelectTabs(ctx context.Context, multiTab bool) []domain.Tab {
	if !multiTab && len(m.tabs) > 1 {
		return m.tabs[:1]
	}
	return m.tabs
}

func (m *mockSelector) HasMultipleSelected(ctx context.Context) bool {
	return len(m.tabs) > 1
}

// mockClipboard is a mock implementation of the clipboard
type mockClipboard struct {
	mu      sync.Mutex
	written string
	err     error
}

func (m *mockClipboard) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.written = text
	return nil
}

func (m *mockClipboard) lastWritten() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.written
}

// mockLogger is a no-op logger
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

// fixture wires real core services over the mocks, the same shape the
// composition root builds in production.
type fixture struct {
	store      *mockStore
	converter  *mockConverter
	refiner    *mockRefiner
	selector   *mockSelector
	clipboard  *mockClipboard
	sink       *notify.Sink
	registry   *tabs.Registry
	repository *collection.Repository
	settings   *settings.Service
	coord      *capture.Coordinator
}

func newFixture() *fixture {
	store := newMockStore()
	// Start from an explicitly empty collection so tests never see the
	// first-run example entries.
	store.data[collection.StoreKey] = []byte("[]")

	logger := &mockLogger{}
	deps := interfaces.Dependencies{Store: store, Logger: logger}

	f := &fixture{
		store:      store,
		converter:  &mockConverter{},
		refiner:    &mockRefiner{},
		selector:   &mockSelector{},
		clipboard:  &mockClipboard{},
		sink:       notify.NewSink(logger),
		registry:   tabs.NewRegistry(logger),
		repository: collection.NewRepository(deps),
		settings:   settings.NewService(deps),
	}

	f.coord = capture.NewCoordinator(capture.Config{
		Converter:  f.converter,
		Refiner:    f.refiner,
		Selector:   f.selector,
		Repository: f.repository,
		Settings:   f.settings,
		Clipboard:  f.clipboard,
		Notifier:   f.sink,
		Logger:     &mockLogger{},
	})

	return f
}

// saveSettings persists settings through the real settings service.
func (f *fixture) saveSettings(s domain.Settings) {
	_ = f.settings.Save(context.Background(), s)
}

// seedEntry stores one entry directly through the repository.
func (f *fixture) seedEntry(entry domain.Entry) {
	_, _ = f.repository.Merge(context.Background(), []domain.Entry{entry})
}
