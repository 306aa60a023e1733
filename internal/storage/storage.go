// Package storage holds the string-keyed persistence backends the task
// repository mirrors its state into.
package storage

import (
	"context"
	"errors"
)

// ErrUnknownDriver is returned by Open for an unsupported driver name.
var ErrUnknownDriver = errors.New("unknown storage driver")

// KeyValueStore is a string-keyed store with get/set/remove semantics.
type KeyValueStore interface {
	// Get returns the value stored under key. The boolean is false when the
	// key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
