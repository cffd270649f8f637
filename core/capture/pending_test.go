package capture

import (
	"testing"

	"markdown-collector-api/core/domain"
	coreerrors "markdown-collector-api/core/errors"
)

func TestPendingSlot_BeginAndCurrent(t *testing.T) {
	notifier := &mockNotifier{}
	slot := newPendingSlot(notifier)

	gen, err := slot.Begin(domain.PendingRefinement{URL: "https://a.test", OriginTabIDs: []int{1}})
	if err != nil {
		t.Fatalf("Begin returned error: %v", err)
	}

	pending, curGen, ok := slot.Current()
	if !ok {
		t.Fatal("Current should report an occupied slot")
	}
	if pending.URL != "https://a.test" {
		t.Errorf("pending URL = %q, want https://a.test", pending.URL)
	}
	if curGen != gen {
		t.Errorf("generation = %d, want %d", curGen, gen)
	}
	if notifier.lastBadge() != 1 {
		t.Errorf("badge = %d, want 1 while pending", notifier.lastBadge())
	}
}

func TestPendingSlot_RejectsSecondBegin(t *testing.T) {
	slot := newPendingSlot(&mockNotifier{})
	slot.Begin(domain.PendingRefinement{URL: "https://a.test"})

	_, err := slot.Begin(domain.PendingRefinement{URL: "https://b.test"})
	if !coreerrors.IsPendingExists(err) {
		t.Errorf("second Begin returned %v, want PendingExistsError", err)
	}

	pending, _, _ := slot.Current()
	if pending.URL != "https://a.test" {
		t.Errorf("first pending was replaced by %q", pending.URL)
	}
}

func TestPendingSlot_ClearRequiresMatchingGeneration(t *testing.T) {
	notifier := &mockNotifier{}
	slot := newPendingSlot(notifier)
	gen, _ := slot.Begin(domain.PendingRefinement{})

	if slot.Clear(gen + 1) {
		t.Error("Clear with a stale generation should be a no-op")
	}
	if !slot.StillCurrent(gen) {
		t.Error("slot should still hold the original generation")
	}

	if !slot.Clear(gen) {
		t.Error("Clear with the live generation should succeed")
	}
	if _, _, ok := slot.Current(); ok {
		t.Error("slot should be empty after Clear")
	}
	if notifier.lastBadge() != 0 {
		t.Errorf("badge = %d, want 0 after Clear", notifier.lastBadge())
	}
}

func TestPendingSlot_CancelInvalidatesInFlightGeneration(t *testing.T) {
	slot := newPendingSlot(&mockNotifier{})
	gen, _ := slot.Begin(domain.PendingRefinement{})

	if !slot.Cancel() {
		t.Fatal("Cancel should clear an occupied slot")
	}
	if slot.StillCurrent(gen) {
		t.Error("cancelled generation should no longer be current")
	}
	if slot.Cancel() {
		t.Error("Cancel on an empty slot should report false")
	}
}

func TestPendingSlot_InvalidateOnTabSwitch(t *testing.T) {
	tests := []struct {
		name        string
		tabID       int
		windowID    int
		wantCleared bool
	}{
		{"origin tab keeps pending", 5, 1, false},
		{"other tab same window clears", 7, 1, true},
		{"origin tab other window clears", 5, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := newPendingSlot(&mockNotifier{})
			slot.Begin(domain.PendingRefinement{OriginTabIDs: []int{5}, WindowID: 1})

			cleared := slot.InvalidateOnTabSwitch(tt.tabID, tt.windowID)

			if cleared != tt.wantCleared {
				t.Errorf("InvalidateOnTabSwitch(%d, %d) = %v, want %v", tt.tabID, tt.windowID, cleared, tt.wantCleared)
			}
			_, _, ok := slot.Current()
			if ok == tt.wantCleared {
				t.Errorf("slot occupied = %v after switch, want %v", ok, !tt.wantCleared)
			}
		})
	}
}
