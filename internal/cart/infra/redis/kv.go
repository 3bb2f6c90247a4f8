package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dwikikusuma/storefront-cart/internal/cart/app"
)

// KV backs the cart slot with a Redis string key.
type KV struct {
	client *goredis.Client
}

// New connects to the given redis:// URL and pings it so a bad address
// fails at startup rather than on the first cart read.
func New(redisURL string) (*KV, error) {
	opt, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := goredis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &KV{client: client}, nil
}

func (k *KV) Get(ctx context.Context, key string) (string, error) {
	val, err := k.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", app.ErrKeyNotFound
		}
		return "", err
	}
	return val, nil
}

func (k *KV) Set(ctx context.Context, key, value string) error {
	return k.client.Set(ctx, key, value, 0).Err()
}

func (k *KV) Close() error {
	return k.client.Close()
}
