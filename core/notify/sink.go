// ABOUTME: In-process notification sink: toast queue, loading flags, badge count
// ABOUTME: Best-effort surface drained by UI clients; everything is also logged

package notify

import (
	"sync"
	"time"

	"markdown-collector-api/core/domain"
	"markdown-collector-api/core/interfaces"
)

// maxQueued bounds the toast queue; clients that never drain do not
// grow memory without limit.
const maxQueued = 50

// Sink implements the Notifier interface with an in-memory feed.
type Sink struct {
	mu      sync.Mutex
	queue   []domain.Notification
	loading map[int]bool
	badge   int
	logger  interfaces.Logger
}

// NewSink creates an empty notification sink.
func NewSink(logger interfaces.Logger) *Sink {
	return &Sink{
		loading: make(map[int]bool),
		logger:  logger,
	}
}

// Notify queues a toast message for the UI.
func (s *Sink) Notify(message string, kind domain.NotificationType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queue = append(s.queue, domain.Notification{
		Message:   message,
		Type:      kind,
		CreatedAt: time.Now().UTC(),
	})
	if len(s.queue) > maxQueued {
		s.queue = s.queue[len(s.queue)-maxQueued:]
	}

	fields := map[string]interface{}{"type": string(kind)}
	switch kind {
	case domain.NotificationError:
		s.logger.Error(message, fields)
	case domain.NotificationWarning:
		s.logger.Warn(message, fields)
	default:
		s.logger.Info(message, fields)
	}
}

// Drain returns the queued toasts and clears the queue.
func (s *Sink) Drain() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	drained := s.queue
	s.queue = nil
	return drained
}

// ShowLoading marks a tab as having a refinement call in flight.
func (s *Sink) ShowLoading(tabID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading[tabID] = true
}

// HideLoading clears the in-flight flag for a tab.
func (s *Sink) HideLoading(tabID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.loading, tabID)
}

// IsLoading reports whether a tab currently shows the spinner.
func (s *Sink) IsLoading(tabID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading[tabID]
}

// SetBadge sets the persistent badge counter.
func (s *Sink) SetBadge(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.badge = count
}

// Badge returns the current badge counter.
func (s *Sink) Badge() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.badge
}
