package interfaces

// Clipboard defines the interface for writing to the system clipboard.
// Clipboard failures are always recoverable: persistence must succeed or
// fail independently of the copy convenience.
type Clipboard interface {
	// WriteText places text on the system clipboard.
	WriteText(text string) error
}
