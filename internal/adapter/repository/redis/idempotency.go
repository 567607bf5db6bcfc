package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces walletd idempotency keys in a shared Redis instance.
const keyPrefix = "walletd:idempotency:"

// pendingPlaceholder marks a batch submission that is still reconciling.
// The key is claimed before the transaction starts and overwritten with the
// final response via Update once the batch commits or is rejected.
const pendingPlaceholder = "processing"

// IdempotencyStore backs the Idempotency-Key header on batch submissions.
// A replayed key returns the stored response instead of re-running the batch,
// so a client retrying after a timeout cannot double-apply records.
type IdempotencyStore struct {
	client *redis.Client
	prefix string
}

// NewIdempotencyStore creates a new IdempotencyStore.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		prefix: keyPrefix,
	}
}

func (s *IdempotencyStore) keyFor(key string) string {
	return s.prefix + key
}

// CheckAndSet returns the stored response when the key is already claimed.
// Otherwise it claims the key: with the given response when one is provided,
// or with the pending placeholder when the batch has yet to run.
func (s *IdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	fullKey := s.keyFor(key)

	existing, err := s.client.Get(ctx, fullKey).Bytes()
	if err == nil {
		return true, existing, nil
	}
	if err != redis.Nil {
		return false, nil, err
	}

	if response != nil {
		if err := s.client.Set(ctx, fullKey, response, ttl).Err(); err != nil {
			return false, nil, err
		}
		return false, nil, nil
	}

	set, err := s.client.SetNX(ctx, fullKey, pendingPlaceholder, ttl).Result()
	if err != nil {
		return false, nil, err
	}
	if !set {
		// A concurrent submission claimed the key between Get and SetNX.
		existing, err := s.client.Get(ctx, fullKey).Bytes()
		if err != nil && err != redis.Nil {
			return false, nil, err
		}
		return true, existing, nil
	}

	return false, nil, nil
}

// Update overwrites a claimed key with the final batch response.
func (s *IdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return s.client.Set(ctx, s.keyFor(key), response, ttl).Err()
}
