package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrFormat       = errors.New("malformed content")
	ErrUnreadable   = errors.New("unable to read source")
	ErrLimit        = errors.New("resource limit exceeded")
)
