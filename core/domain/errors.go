package domain

import "errors"

// ErrEmptyURL is returned when an entry or tab is missing its URL.
var ErrEmptyURL = errors.New("url cannot be empty")
