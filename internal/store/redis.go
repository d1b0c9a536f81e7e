package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"socialfit/internal/model"
)

// keyPrefix namespaces collection keys so the store can share a Redis
// instance with other tenants.
const keyPrefix = "socialfit:collection:"

// RedisStore keeps each collection as a JSON string value. SET is atomic, so
// readers see either the previous or the new document.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context, collection string, dst any) error {
	raw, err := s.client.Get(ctx, keyPrefix+collection).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load collection %q: %w: %w", collection, model.ErrStoreUnavailable, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode collection %q: %w", collection, err)
	}
	return nil
}

func (s *RedisStore) Save(ctx context.Context, collection string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", collection, err)
	}

	// No TTL: collections live for the lifetime of the store.
	if err := s.client.Set(ctx, keyPrefix+collection, raw, 0).Err(); err != nil {
		return fmt.Errorf("save collection %q: %w: %w", collection, model.ErrStoreUnavailable, err)
	}
	return nil
}
