// ABOUTME: Capture outcome types returned by the coordinator
// ABOUTME: Reports saved/copied/cancelled results with per-tab failure counts

package domain

// CaptureStatus is the terminal state of one capture operation.
type CaptureStatus string

const (
	CaptureSaved          CaptureStatus = "saved"
	CaptureCopied         CaptureStatus = "copied"
	CaptureCancelled      CaptureStatus = "cancelled"
	CaptureAwaitingPrompt CaptureStatus = "awaiting-instruction"
	CaptureFailed         CaptureStatus = "failed"
)

// CaptureResult summarizes a finished (or suspended) capture operation.
type CaptureResult struct {
	Status    CaptureStatus `json:"status"`
	Message   string        `json:"message,omitempty"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Copied    bool          `json:"copied"`
}
