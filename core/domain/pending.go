// ABOUTME: PendingRefinement holds a capture that is waiting for a user prompt
// ABOUTME: At most one exists at a time; it is scoped to its origin tabs/window

package domain

import "time"

// PendingRefinement is the transient state of a capture awaiting a
// refinement instruction. For single-tab captures Markdown carries the
// already-converted content; for multi-tab captures AllTabs lists the
// tabs still to be converted once the instruction arrives.
type PendingRefinement struct {
	Markdown            string    `json:"markdown,omitempty"`
	AllTabs             []Tab     `json:"allTabs,omitempty"`
	IsMultiTab          bool      `json:"isMultiTab"`
	TabCount            int       `json:"tabCount"`
	CopyAfterRefinement bool      `json:"copyAfterRefinement"`
	OriginTabIDs        []int     `json:"originTabIds"`
	WindowID            int       `json:"windowId"`
	URL                 string    `json:"url,omitempty"`
	Title               string    `json:"title,omitempty"`
	Timestamp           time.Time `json:"timestamp"`
}

// OriginatesFrom reports whether the given tab is one of the tabs the
// pending refinement was captured from.
func (p PendingRefinement) OriginatesFrom(tabID int) bool {
	for _, id := range p.OriginTabIDs {
		if id == tabID {
			return true
		}
	}
	return false
}
