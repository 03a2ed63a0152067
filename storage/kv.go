// Package storage provides the durable key-value mirror used by the cart
// store. Values are opaque JSON blobs keyed by a fixed string.
package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: key not found")

type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete is idempotent; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
