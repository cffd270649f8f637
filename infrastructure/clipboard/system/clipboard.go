// ABOUTME: System clipboard implementation backed by atotto/clipboard
// ABOUTME: Fails cleanly on headless hosts; callers treat that as non-fatal

package system

import (
	"github.com/atotto/clipboard"
)

// Clipboard implements the Clipboard interface against the OS clipboard.
type Clipboard struct{}

// NewClipboard creates a system clipboard writer.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// WriteText places text on the system clipboard.
func (c *Clipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}
