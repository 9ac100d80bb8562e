package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/itineradev/itinera/internal/domain"
	"github.com/itineradev/itinera/internal/observability"
)

const (
	keyNamespace  = "itinera"
	scanBatchSize = 100
)

// DocumentStore persists serialized domain records as Redis strings
// under itinera:<collection>:<id>.
type DocumentStore struct {
	client *redis.Client
}

// NewDocumentStore creates a Redis document store adapter.
func NewDocumentStore(client *redis.Client) *DocumentStore {
	return &DocumentStore{client: client}
}

// Put stores a document under collection/id. The TTL is applied after
// the write, matching the vector index's expiry semantics.
func (s *DocumentStore) Put(ctx context.Context, collection, id string, data []byte, ttl time.Duration) error {
	key := s.key(collection, id)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	if ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		observability.FromContext(ctx).Error("document write failed",
			observability.String("key", key),
			observability.Error(err))
		return fmt.Errorf("failed to store document %s: %w", key, err)
	}
	return nil
}

// Get fetches a document, returning domain.ErrRecordNotFound when absent.
func (s *DocumentStore) Get(ctx context.Context, collection, id string) ([]byte, error) {
	key := s.key(collection, id)

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%s: %w", key, domain.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to fetch document %s: %w", key, err)
	}
	return data, nil
}

// Delete removes a single document. Deleting an absent document is not
// an error.
func (s *DocumentStore) Delete(ctx context.Context, collection, id string) error {
	if err := s.client.Del(ctx, s.key(collection, id)).Err(); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// DeleteAll removes every document in a collection and returns the count.
func (s *DocumentStore) DeleteAll(ctx context.Context, collection string) (int, error) {
	return deleteByPattern(ctx, s.client, fmt.Sprintf("%s:%s:*", keyNamespace, collection))
}

func (s *DocumentStore) key(collection, id string) string {
	return fmt.Sprintf("%s:%s:%s", keyNamespace, collection, id)
}

// deleteByPattern walks the keyspace with SCAN and deletes matches in
// batches, returning how many keys were removed.
func deleteByPattern(ctx context.Context, client *redis.Client, pattern string) (int, error) {
	var cursor uint64
	deleted := 0

	for {
		keys, next, err := client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			return deleted, fmt.Errorf("scan %s failed: %w", pattern, err)
		}

		if len(keys) > 0 {
			removed, delErr := client.Del(ctx, keys...).Result()
			if delErr != nil {
				return deleted, fmt.Errorf("delete failed: %w", delErr)
			}
			deleted += int(removed)
		}

		cursor = next
		if cursor == 0 {
			return deleted, nil
		}
	}
}
