package cache

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrCacheMiss = errors.New("cache: key not found")

// Store is a byte-oriented key/value cache with per-entry expiry.
// Get returns ErrCacheMiss for absent and expired keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// Purger is implemented by stores that keep expired entries until they are
// removed explicitly. Redis expires keys on its own and does not need it.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

func GetJSON[T any](ctx context.Context, store Store, key string) (T, error) {
	var out T

	raw, err := store.Get(ctx, key)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}

func SetJSON(ctx context.Context, store Store, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, raw, ttl)
}
