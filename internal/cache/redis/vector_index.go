package redis

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/itineradev/itinera/internal/domain"
	"github.com/itineradev/itinera/internal/observability"
)

const (
	redisDialectVersion = 2

	vectorKeyPrefix = keyNamespace + ":vec:"
)

// VectorIndex implements nearest-neighbour search over query embeddings
// using Redis vector search. Each vector is stored as a hash alongside
// the filterable metadata of its query.
type VectorIndex struct {
	client             *redis.Client
	indexName          string
	embeddingDimension int
}

// NewVectorIndex creates a Redis vector index adapter, creating the
// search index if it does not exist yet.
func NewVectorIndex(client *redis.Client, indexName string, embeddingDimension int) (*VectorIndex, error) {
	v := &VectorIndex{
		client:             client,
		indexName:          indexName,
		embeddingDimension: embeddingDimension,
	}

	if err := v.createIndex(); err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	return v, nil
}

// floatsToBytes converts float64 slice to binary byte representation.
func floatsToBytes(fs []float64) []byte {
	const bytesPerFloat32 = 4
	buf := make([]byte, len(fs)*bytesPerFloat32)

	for i, f := range fs {
		// Convert float64 to float32 for Redis compatibility
		f32 := float32(f)
		u := math.Float32bits(f32)
		binary.LittleEndian.PutUint32(buf[i*bytesPerFloat32:], u)
	}

	return buf
}

// Upsert indexes a vector with its filter metadata under the given id.
// The TTL is applied after the write, so a crash in between can leave a
// record behind for the expiry sweep to reclaim.
func (v *VectorIndex) Upsert(
	ctx context.Context,
	id string,
	vector []float64,
	meta domain.VectorMetadata,
	ttl time.Duration,
) error {
	logger := observability.FromContext(ctx)
	logger.Debug("indexing query vector",
		observability.String("key", id),
		observability.Int("embedding_dim", len(vector)))

	key := vectorKeyPrefix + id
	pipe := v.client.Pipeline()

	pipe.HSet(ctx, key,
		"embedding", floatsToBytes(vector),
		"location", meta.Location,
		"categories", strings.Join(meta.Categories, ","),
		"duration", meta.DurationDays,
		"indexed_at", meta.IndexedAt.Unix(),
	)

	if ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}

	if _, execErr := pipe.Exec(ctx); execErr != nil {
		logger.Error("vector index write failed",
			observability.Error(execErr))
		return fmt.Errorf("failed to index vector: %w", execErr)
	}

	return nil
}

// Nearest returns up to k neighbours ordered by ascending cosine
// distance. Thresholding is the caller's concern; raw distances are
// returned untouched.
func (v *VectorIndex) Nearest(ctx context.Context, vector []float64, k int) ([]domain.Neighbor, error) {
	logger := observability.FromContext(ctx)
	logger.Debug("starting vector search",
		observability.String("index", v.indexName),
		observability.Int("embedding_dim", len(vector)),
		observability.Int("k", k))

	query := fmt.Sprintf("*=>[KNN %d @embedding $vec AS score]", k)

	results, err := v.client.FTSearchWithArgs(ctx, v.indexName, query,
		&redis.FTSearchOptions{
			Return: []redis.FTSearchReturn{
				{FieldName: "score"},
			},
			SortBy: []redis.FTSearchSortBy{
				{FieldName: "score", Asc: true},
			},
			LimitOffset:    0,
			Limit:          k,
			DialectVersion: redisDialectVersion,
			Params: map[string]any{
				"vec": floatsToBytes(vector),
			},
		},
	).Result()
	if err != nil {
		if isIndexMissing(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrIndexUnavailable, err)
		}
		logger.Error("vector search failed",
			observability.Error(err))
		return nil, fmt.Errorf("search failed: %w", err)
	}

	logger.Debug("vector search completed",
		observability.Int("total_docs", results.Total),
		observability.Int("docs_returned", len(results.Docs)))

	return v.parseNeighbors(results), nil
}

// Expired lists ids whose indexed_at predates the cutoff, up to limit.
func (v *VectorIndex) Expired(ctx context.Context, cutoff time.Time, limit int) ([]string, error) {
	query := fmt.Sprintf("@indexed_at:[-inf %d]", cutoff.Unix())

	results, err := v.client.FTSearchWithArgs(ctx, v.indexName, query,
		&redis.FTSearchOptions{
			NoContent:      true,
			LimitOffset:    0,
			Limit:          limit,
			DialectVersion: redisDialectVersion,
		},
	).Result()
	if err != nil {
		if isIndexMissing(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrIndexUnavailable, err)
		}
		return nil, fmt.Errorf("expired search failed: %w", err)
	}

	ids := make([]string, 0, len(results.Docs))
	for _, doc := range results.Docs {
		ids = append(ids, strings.TrimPrefix(doc.ID, vectorKeyPrefix))
	}
	return ids, nil
}

// Remove deletes the given ids from the index.
func (v *VectorIndex) Remove(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = vectorKeyPrefix + id
	}

	if err := v.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to remove vectors: %w", err)
	}
	return nil
}

// Clear drops every indexed vector and returns the count removed.
func (v *VectorIndex) Clear(ctx context.Context) (int, error) {
	return deleteByPattern(ctx, v.client, vectorKeyPrefix+"*")
}

// createIndex creates the Redis search index if it doesn't exist.
func (v *VectorIndex) createIndex() error {
	ctx := context.Background()
	logger := observability.FromContext(ctx)

	// Check if index already exists
	_, err := v.client.FTInfo(ctx, v.indexName).Result()
	if err == nil {
		logger.Info("redis search index already exists, skipping creation",
			observability.String("index_name", v.indexName))
		return nil
	}

	logger.Info("creating redis search index",
		observability.String("index_name", v.indexName),
		observability.Int("embedding_dimension", v.embeddingDimension))

	_, err = v.client.FTCreate(ctx, v.indexName,
		&redis.FTCreateOptions{
			OnHash: true,
			Prefix: []any{vectorKeyPrefix},
		},
		&redis.FieldSchema{
			FieldName: "embedding",
			FieldType: redis.SearchFieldTypeVector,
			VectorArgs: &redis.FTVectorArgs{
				FlatOptions: &redis.FTFlatOptions{
					Type:           "FLOAT32",
					Dim:            v.embeddingDimension,
					DistanceMetric: "COSINE",
				},
			},
		},
		&redis.FieldSchema{
			FieldName: "location",
			FieldType: redis.SearchFieldTypeTag,
		},
		&redis.FieldSchema{
			FieldName: "categories",
			FieldType: redis.SearchFieldTypeTag,
		},
		&redis.FieldSchema{
			FieldName: "duration",
			FieldType: redis.SearchFieldTypeNumeric,
		},
		&redis.FieldSchema{
			FieldName: "indexed_at",
			FieldType: redis.SearchFieldTypeNumeric,
			Sortable:  true,
		},
	).Result()
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	logger.Info("successfully created redis search index",
		observability.String("index_name", v.indexName))

	return nil
}

// parseNeighbors converts Redis search documents into neighbours,
// skipping any document with a missing or malformed score.
func (v *VectorIndex) parseNeighbors(result redis.FTSearchResult) []domain.Neighbor {
	neighbors := make([]domain.Neighbor, 0, len(result.Docs))

	for _, doc := range result.Docs {
		scoreStr, ok := doc.Fields["score"]
		if !ok {
			continue
		}
		distance, err := strconv.ParseFloat(scoreStr, 64)
		if err != nil {
			continue
		}

		neighbors = append(neighbors, domain.Neighbor{
			ID:       strings.TrimPrefix(doc.ID, vectorKeyPrefix),
			Distance: distance,
		})
	}

	return neighbors
}

// isIndexMissing reports whether a search error means the index has not
// been created, as opposed to the backend being unreachable.
func isIndexMissing(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unknown index") || strings.Contains(msg, "no such index")
}
