package store

import "errors"

// Sentinel errors returned by the sanitizer and the document store.
// Callers classify with errors.Is; the wrapped message carries detail.
var (
	ErrInvalidName = errors.New("invalid name")
	ErrPathEscape  = errors.New("path escapes documents directory")
	ErrNotFound    = errors.New("file not found")
	ErrNotText     = errors.New("file is not valid text")
	ErrExists      = errors.New("file already exists")
)
