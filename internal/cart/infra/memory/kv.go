package memory

import (
	"context"
	"sync"

	"github.com/dwikikusuma/storefront-cart/internal/cart/app"
)

// KV is an in-process slot store for tests and dev runs without Redis.
type KV struct {
	mu   sync.RWMutex
	data map[string]string
}

func New() *KV {
	return &KV{data: make(map[string]string)}
}

func (k *KV) Get(ctx context.Context, key string) (string, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	val, ok := k.data[key]
	if !ok {
		return "", app.ErrKeyNotFound
	}
	return val, nil
}

func (k *KV) Set(ctx context.Context, key, value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.data[key] = value
	return nil
}
