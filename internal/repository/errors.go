package repository

import "errors"

// Common repository errors
var (
	// ErrTaskNotFound is returned when no task has the requested id
	ErrTaskNotFound = errors.New("task not found")

	// ErrCorruptState is returned by Restore when the stored task list cannot be decoded
	ErrCorruptState = errors.New("stored task list is malformed")
)
