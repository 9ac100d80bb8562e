package domain

import (
	"context"
	"time"
)

// SemanticCache provides itinerary caching keyed on vector similarity.
type SemanticCache interface {
	// Lookup retrieves a cached itinerary for a semantically similar query.
	// A nil-hit result means miss; errors are limited to embedding failures.
	Lookup(ctx context.Context, query *TripQuery) (*CacheResult, error)

	// Store persists a generated itinerary keyed by the query embedding.
	Store(ctx context.Context, query *TripQuery, response *ItineraryResponse) error

	// Stats reports hit/miss counters over the trailing stats window.
	Stats(ctx context.Context) (*CacheStats, error)

	// Clear removes all cached queries, responses and vectors.
	Clear(ctx context.Context) (int, error)
}

// EmbeddingGenerator creates vector embeddings from text.
type EmbeddingGenerator interface {
	// Generate creates a vector embedding from text.
	Generate(ctx context.Context, text string) ([]float64, error)

	// Name returns the generator identifier.
	Name() string

	// Dimension returns the vector dimension.
	Dimension() int
}

// VectorIndex stores query embeddings and performs nearest-neighbour search.
type VectorIndex interface {
	// Upsert indexes a vector with its filter metadata under the given id.
	Upsert(ctx context.Context, id string, vector []float64, meta VectorMetadata, ttl time.Duration) error

	// Nearest returns up to k neighbours ordered by ascending distance.
	// An empty index yields an empty slice; a missing index yields
	// ErrIndexUnavailable.
	Nearest(ctx context.Context, vector []float64, k int) ([]Neighbor, error)

	// Expired lists ids indexed before the cutoff, up to limit.
	Expired(ctx context.Context, cutoff time.Time, limit int) ([]string, error)

	// Remove deletes the given ids from the index.
	Remove(ctx context.Context, ids ...string) error

	// Clear drops every indexed vector and returns the count removed.
	Clear(ctx context.Context) (int, error)
}

// Neighbor is a single nearest-neighbour match. Distance is the raw
// cosine distance reported by the index, in [0, 2].
type Neighbor struct {
	ID       string
	Distance float64
}

// VectorMetadata carries the filterable attributes stored next to a vector.
type VectorMetadata struct {
	Location     string
	Categories   []string
	DurationDays int
	IndexedAt    time.Time
}

// DocumentStore persists serialized domain records grouped by collection.
type DocumentStore interface {
	// Put stores a document under collection/id with the given TTL.
	// A zero TTL stores the document without expiry.
	Put(ctx context.Context, collection, id string, data []byte, ttl time.Duration) error

	// Get fetches a document, returning ErrRecordNotFound when absent.
	Get(ctx context.Context, collection, id string) ([]byte, error)

	// Delete removes a single document.
	Delete(ctx context.Context, collection, id string) error

	// DeleteAll removes every document in a collection and returns the count.
	DeleteAll(ctx context.Context, collection string) (int, error)
}
