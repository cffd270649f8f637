// ABOUTME: Request DTOs for the capture and refinement command endpoints
// ABOUTME: Mirrors the browser extension's message payloads

package requests

// ProcessRefinementRequest resolves the pending refinement with the
// user's instruction. An empty prompt saves without refinement.
type ProcessRefinementRequest struct {
	Prompt     string `json:"prompt" doc:"Natural-language refinement instruction; empty saves unrefined"`
	Collective bool   `json:"collective,omitempty" doc:"Merge all captured tabs into one batch entry"`
}
