package storage

import "errors"

// Common storage errors
var (
	// ErrEventNotFound indicates that sync event was not found in storage
	ErrEventNotFound = errors.New("event not found")

	// ErrFileNotFound indicates that uploaded file was not found
	ErrFileNotFound = errors.New("file not found")
)
