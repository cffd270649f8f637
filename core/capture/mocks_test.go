package capture

import (
	"context"
	"strings"
	"sync"

	"markdown-collector-api/core/domain"
	"markdown-collector-api/core/interfaces"
)

// mockConverter is a mock implementation of the PageConverter interface
type mockConverter struct {
	convertFunc func(ctx context.Context, tab domain.Tab, opts interfaces.ConvertOptions) (string, error)
	calls       []domain.Tab
}

func (m *mockConverter) Convert(ctx context.Context, tab domain.Tab, opts interfaces.ConvertOptions) (string, error) {
	m.calls = append(m.calls, tab)
	if m.convertFunc != nil {
		return m.convertFunc(ctx, tab, opts)
	}
	return "# " + tab.Title, nil
}

// mockRefiner is a mock implementation of the Refiner interface
type mockRefiner struct {
	refineFunc func(ctx context.Context, markdown, prompt string, creds domain.Credentials, tabID int) (string, error)
	calls      int
}

func (m *mockRefiner) Refine(ctx context.Context, markdown, prompt string, creds domain.Credentials, tabID int) (string, error) {
	m.calls++
	if m.refineFunc != nil {
		return m.refineFunc(ctx, markdown, prompt, creds, tabID)
	}
	return "refined: " + markdown, nil
}

// mockSelector is a mock implementation of the TabSelector interface
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

// mockClipboard records writes and can be made to fail
type mockClipboard struct {
	written []string
	err     error
}

func (m *mockClipboard) WriteText(text string) error {
	if m.err != nil {
		return m.err
	}
	m.written = append(m.written, text)
	return nil
}

// mockNotifier records toasts and badge changes
type mockNotifier struct {
	mu       sync.Mutex
	messages []string
	kinds    []domain.NotificationType
	badge    int
}

func (m *mockNotifier) Notify(message string, kind domain.NotificationType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, message)
	m.kinds = append(m.kinds, kind)
}

func (m *mockNotifier) ShowLoading(tabID int) {}

func (m *mockNotifier) HideLoading(tabID int) {}

func (m *mockNotifier) SetBadge(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.badge = count
}

func (m *mockNotifier) lastBadge() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.badge
}

func (m *mockNotifier) hasMessage(substr string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range m.messages {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

// mockStore is an in-memory KeyValueStore for tests
type mockStore struct {
	data map[string][]byte
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string][]byte)}
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, ok := m.data[key]
	if !ok {
		return nil, interfaces.ErrKeyNotFound
	}
	return data, nil
}

func (m *mockStore) Set(ctx context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

func (m *mockStore) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

// mockLogger discards all log output
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
