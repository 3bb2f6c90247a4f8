package app

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KV.Get when the key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// KV is the persisted slot the cart lives in. Implementations: Redis for
// real deployments, an in-process map for tests and dev runs.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
