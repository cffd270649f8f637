// ABOUTME: Single-slot pending refinement state with generation tracking
// ABOUTME: All transitions funnel through Begin/Current/Clear/Cancel/Invalidate

package capture

import (
	"sync"

	"markdown-collector-api/core/domain"
	coreerrors "markdown-collector-api/core/errors"
	"markdown-collector-api/core/interfaces"
)

// pendingSlot owns the one PendingRefinement the coordinator may hold.
// The generation counter advances on every occupy and every clear, so a
// processing step can detect that its pending state was cancelled or
// invalidated while a network call was in flight: the call completes,
// the result is discarded.
type pendingSlot struct {
	mu         sync.Mutex
	value      *domain.PendingRefinement
	generation uint64
	notifier   interfaces.Notifier
}

func newPendingSlot(notifier interfaces.Notifier) *pendingSlot {
	return &pendingSlot{notifier: notifier}
}

// Begin occupies the slot. A slot that is already occupied rejects the
// new capture rather than silently dropping the first one.
func (s *pendingSlot) Begin(p domain.PendingRefinement) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.value != nil {
		return 0, &coreerrors.PendingExistsError{}
	}

	s.generation++
	copied := p
	s.value = &copied
	s.notifier.SetBadge(1)
	return s.generation, nil
}

// Current returns the pending refinement and its generation.
func (s *pendingSlot) Current() (domain.PendingRefinement, uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.value == nil {
		return domain.PendingRefinement{}, 0, false
	}
	return *s.value, s.generation, true
}

// StillCurrent reports whether the slot still holds the generation a
// processing step started from.
func (s *pendingSlot) StillCurrent(generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value != nil && s.generation == generation
}

// Clear releases the slot if it still holds the given generation.
func (s *pendingSlot) Clear(generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.value == nil || s.generation != generation {
		return false
	}
	s.value = nil
	s.generation++
	s.notifier.SetBadge(0)
	return true
}

// Cancel releases the slot unconditionally (explicit user cancel).
func (s *pendingSlot) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.value == nil {
		return false
	}
	s.value = nil
	s.generation++
	s.notifier.SetBadge(0)
	return true
}

// InvalidateOnTabSwitch releases the slot when focus moves outside the
// tabs or window the pending capture originated from.
func (s *pendingSlot) InvalidateOnTabSwitch(tabID, windowID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.value == nil {
		return false
	}
	if s.value.WindowID == windowID && s.value.OriginatesFrom(tabID) {
		return false
	}
	s.value = nil
	s.generation++
	s.notifier.SetBadge(0)
	return true
}
