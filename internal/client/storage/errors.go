package storage

import "errors"

// Common client storage errors
var (
	// ErrEventNotFound indicates that event was not found
	ErrEventNotFound = errors.New("event not found")

	// ErrEventExists indicates that an event with the same client event id is already stored
	ErrEventExists = errors.New("event already exists")

	// ErrFileNotFound indicates that stored file was not found
	ErrFileNotFound = errors.New("stored file not found")

	// ErrSessionNotFound indicates that no vendor session is stored
	ErrSessionNotFound = errors.New("session not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
