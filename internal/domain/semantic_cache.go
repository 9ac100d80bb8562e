package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/itineradev/itinera/internal/observability"
)

const (
	collectionQuery    = "query"
	collectionResponse = "response"

	seriesHit   = "cache_hit"
	seriesMiss  = "cache_miss"
	seriesStore = "cache_store"
	seriesError = "cache_error"

	metricRecordTimeout = 2 * time.Second // Budget for one async metric write
	sweepBatchSize      = 256             // Max records reclaimed per sweep pass
)

// CacheOptions tunes the semantic cache engine.
type CacheOptions struct {
	// SimilarityThreshold is the minimum cosine similarity for a hit.
	SimilarityThreshold float64

	// TTL bounds the lifetime of cached queries, responses and vectors.
	TTL time.Duration

	// NeighborCount is the KNN breadth passed to the vector index.
	NeighborCount int

	// StatsWindow is the trailing period Stats aggregates over.
	StatsWindow time.Duration
}

// SemanticCacheService implements semantic itinerary caching using
// embeddings and vector search. Storage faults degrade lookups to misses;
// only embedding failures surface as errors.
type SemanticCacheService struct {
	embeddingGen EmbeddingGenerator
	vectorIndex  VectorIndex
	documents    DocumentStore
	metrics      MetricRecorder
	validator    *CompatibilityValidator
	opts         CacheOptions
}

// NewSemanticCacheService creates a new semantic cache engine.
func NewSemanticCacheService(
	embeddingGen EmbeddingGenerator,
	vectorIndex VectorIndex,
	documents DocumentStore,
	metrics MetricRecorder,
	validator *CompatibilityValidator,
	opts CacheOptions,
) *SemanticCacheService {
	return &SemanticCacheService{
		embeddingGen: embeddingGen,
		vectorIndex:  vectorIndex,
		documents:    documents,
		metrics:      metrics,
		validator:    validator,
		opts:         opts,
	}
}

// Lookup retrieves a cached itinerary for a semantically similar query.
// Only the single nearest neighbour is considered: it must clear the
// similarity threshold and pass the compatibility check, otherwise the
// lookup is a miss. The computed embedding is attached to query so a
// subsequent Store does not re-embed.
func (s *SemanticCacheService) Lookup(ctx context.Context, query *TripQuery) (*CacheResult, error) {
	logger := observability.FromContext(ctx)

	if query == nil {
		return nil, errors.New("query cannot be nil")
	}

	start := time.Now()
	queryText := CanonicalQueryText(query)
	logger.Info("semantic cache lookup started",
		observability.String("query_id", query.QueryID),
		observability.Int("query_length", len(queryText)))

	embedding, err := s.embeddingGen.Generate(ctx, queryText)
	if err != nil {
		logger.Error("failed to generate embedding",
			observability.Error(err))
		s.recordMetric(ctx, seriesError, query)
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}
	query.Embedding = embedding

	neighbors, err := s.vectorIndex.Nearest(ctx, embedding, s.opts.NeighborCount)
	if err != nil {
		if errors.Is(err, ErrIndexUnavailable) {
			logger.Info("vector index unavailable, treating as miss")
		} else {
			logger.Warn("vector search failed, treating as miss",
				observability.Error(err))
			s.recordMetric(ctx, seriesError, query)
		}
		return s.miss(ctx, query, start), nil
	}
	if len(neighbors) == 0 {
		logger.Info("no similar cached queries",
			observability.Float64("threshold", s.opts.SimilarityThreshold))
		return s.miss(ctx, query, start), nil
	}

	best := neighbors[0]
	similarity := 1 - best.Distance
	if similarity < s.opts.SimilarityThreshold {
		logger.Info("best candidate below similarity threshold",
			observability.String("cache_key", best.ID),
			observability.Float64("similarity", similarity),
			observability.Float64("threshold", s.opts.SimilarityThreshold))
		return s.miss(ctx, query, start), nil
	}

	cached, ok := s.loadQuery(ctx, best.ID)
	if !ok {
		return s.miss(ctx, query, start), nil
	}

	if compatible, reason := s.validator.Compatible(cached, query); !compatible {
		logger.Info("candidate rejected by compatibility check",
			observability.String("cache_key", best.ID),
			observability.String("reason", reason))
		return s.miss(ctx, query, start), nil
	}

	response, ok := s.loadResponse(ctx, best.ID)
	if !ok {
		return s.miss(ctx, query, start), nil
	}

	response.CacheHit = true
	s.recordMetric(ctx, seriesHit, query)
	logger.Info("cache hit",
		observability.String("cache_key", best.ID),
		observability.Float64("similarity", similarity))

	return &CacheResult{
		CacheHit:     true,
		Response:     response,
		Similarity:   similarity,
		SearchTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

// Store persists a generated itinerary keyed by the query embedding.
// The embedding is computed first so a provider failure leaves no partial
// records behind; document writes precede the vector upsert so a found
// neighbour always has documents to resolve.
func (s *SemanticCacheService) Store(ctx context.Context, query *TripQuery, response *ItineraryResponse) error {
	logger := observability.FromContext(ctx)

	if query == nil {
		return errors.New("query cannot be nil")
	}
	if response == nil {
		return errors.New("response cannot be nil")
	}

	if !query.HasEmbedding() {
		embedding, err := s.embeddingGen.Generate(ctx, CanonicalQueryText(query))
		if err != nil {
			logger.Error("failed to generate embedding for cache storage",
				observability.Error(err))
			return fmt.Errorf("failed to generate embedding: %w", err)
		}
		query.Embedding = embedding
	}

	queryData, err := json.Marshal(query)
	if err != nil {
		return fmt.Errorf("failed to marshal query: %w", err)
	}
	responseData, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if err := s.documents.Put(ctx, collectionQuery, query.QueryID, queryData, s.opts.TTL); err != nil {
		logger.Error("failed to store query document",
			observability.String("cache_key", query.QueryID),
			observability.Error(err))
		return fmt.Errorf("failed to store query: %w", err)
	}
	if err := s.documents.Put(ctx, collectionResponse, query.QueryID, responseData, s.opts.TTL); err != nil {
		logger.Error("failed to store response document",
			observability.String("cache_key", query.QueryID),
			observability.Error(err))
		return fmt.Errorf("failed to store response: %w", err)
	}

	meta := VectorMetadata{
		Location:     NormalizeLocation(query.Location),
		Categories:   NormalizeTags(query.Categories),
		DurationDays: query.DurationDays,
		IndexedAt:    time.Now(),
	}
	if err := s.vectorIndex.Upsert(ctx, query.QueryID, query.Embedding, meta, s.opts.TTL); err != nil {
		logger.Error("failed to index query vector",
			observability.String("cache_key", query.QueryID),
			observability.Error(err))
		return fmt.Errorf("failed to index query vector: %w", err)
	}

	s.recordMetric(ctx, seriesStore, query)
	logger.Info("itinerary cached",
		observability.String("cache_key", query.QueryID),
		observability.Duration("ttl", s.opts.TTL))
	return nil
}

// Stats reports hit/miss counters over the trailing stats window.
// Metric backend failures yield zeroed stats, never an error.
func (s *SemanticCacheService) Stats(ctx context.Context) (*CacheStats, error) {
	logger := observability.FromContext(ctx)

	stats := &CacheStats{}
	if s.metrics == nil {
		return stats, nil
	}

	to := time.Now()
	from := to.Add(-s.opts.StatsWindow)

	for _, series := range []struct {
		name string
		dest *int64
	}{
		{seriesHit, &stats.Hits},
		{seriesMiss, &stats.Misses},
		{seriesStore, &stats.Stores},
	} {
		points, err := s.metrics.Query(ctx, series.name, from, to)
		if err != nil {
			logger.Warn("metric query failed, reporting zeroed stats",
				observability.String("series", series.name),
				observability.Error(err))
			return &CacheStats{}, nil
		}
		var total float64
		for _, p := range points {
			total += p.Value
		}
		*series.dest = int64(total)
	}

	stats.TotalRequests = stats.Hits + stats.Misses
	if stats.TotalRequests > 0 {
		rate := float64(stats.Hits) / float64(stats.TotalRequests) * 100
		stats.HitRate = math.Round(rate*100) / 100
	}
	return stats, nil
}

// Clear removes every cached query, response and vector, returning the
// total number of records removed.
func (s *SemanticCacheService) Clear(ctx context.Context) (int, error) {
	logger := observability.FromContext(ctx)

	queries, err := s.documents.DeleteAll(ctx, collectionQuery)
	if err != nil {
		return queries, fmt.Errorf("failed to clear queries: %w", err)
	}
	responses, err := s.documents.DeleteAll(ctx, collectionResponse)
	if err != nil {
		return queries + responses, fmt.Errorf("failed to clear responses: %w", err)
	}
	vectors, err := s.vectorIndex.Clear(ctx)
	if err != nil {
		return queries + responses + vectors, fmt.Errorf("failed to clear vector index: %w", err)
	}

	total := queries + responses + vectors
	logger.Info("cache cleared",
		observability.Int("records_removed", total))
	return total, nil
}

// SweepExpired reclaims records that outlived the TTL without a key
// expiry, which happens when a crash lands between a write and its
// EXPIRE. It removes at most sweepBatchSize records per call.
func (s *SemanticCacheService) SweepExpired(ctx context.Context) (int, error) {
	logger := observability.FromContext(ctx)

	cutoff := time.Now().Add(-s.opts.TTL)
	ids, err := s.vectorIndex.Expired(ctx, cutoff, sweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list expired vectors: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	for _, id := range ids {
		if err := s.documents.Delete(ctx, collectionQuery, id); err != nil {
			logger.Warn("failed to delete expired query document",
				observability.String("cache_key", id),
				observability.Error(err))
		}
		if err := s.documents.Delete(ctx, collectionResponse, id); err != nil {
			logger.Warn("failed to delete expired response document",
				observability.String("cache_key", id),
				observability.Error(err))
		}
	}

	if err := s.vectorIndex.Remove(ctx, ids...); err != nil {
		return 0, fmt.Errorf("failed to remove expired vectors: %w", err)
	}

	logger.Info("swept expired cache records",
		observability.Int("records", len(ids)))
	return len(ids), nil
}

// StartSweeper runs SweepExpired on the given interval until ctx is
// cancelled. A non-positive interval disables the sweeper.
func (s *SemanticCacheService) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.SweepExpired(ctx); err != nil {
					observability.FromContext(ctx).Warn("expiry sweep failed",
						observability.Error(err))
				}
			}
		}
	}()
}

// loadQuery fetches and decodes a cached query document. All failures are
// logged and reported as not-ok so the lookup degrades to a miss.
func (s *SemanticCacheService) loadQuery(ctx context.Context, id string) (*TripQuery, bool) {
	logger := observability.FromContext(ctx)

	data, err := s.documents.Get(ctx, collectionQuery, id)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			logger.Info("cached query document expired",
				observability.String("cache_key", id))
		} else {
			logger.Warn("failed to load cached query, treating as miss",
				observability.String("cache_key", id),
				observability.Error(err))
		}
		return nil, false
	}

	var cached TripQuery
	if err := json.Unmarshal(data, &cached); err != nil {
		logger.Warn("failed to decode cached query, treating as miss",
			observability.String("cache_key", id),
			observability.Error(err))
		return nil, false
	}
	return &cached, true
}

// loadResponse fetches and decodes a cached itinerary response.
func (s *SemanticCacheService) loadResponse(ctx context.Context, id string) (*ItineraryResponse, bool) {
	logger := observability.FromContext(ctx)

	data, err := s.documents.Get(ctx, collectionResponse, id)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			logger.Info("cached response document expired",
				observability.String("cache_key", id))
		} else {
			logger.Warn("failed to load cached response, treating as miss",
				observability.String("cache_key", id),
				observability.Error(err))
		}
		return nil, false
	}

	var response ItineraryResponse
	if err := json.Unmarshal(data, &response); err != nil {
		logger.Warn("failed to decode cached response, treating as miss",
			observability.String("cache_key", id),
			observability.Error(err))
		return nil, false
	}
	return &response, true
}

// miss records a cache miss and builds the miss result.
func (s *SemanticCacheService) miss(ctx context.Context, query *TripQuery, start time.Time) *CacheResult {
	s.recordMetric(ctx, seriesMiss, query)
	return &CacheResult{
		CacheHit:     false,
		SearchTimeMs: time.Since(start).Milliseconds(),
	}
}

// recordMetric appends one sample to a series without blocking the
// request path. The timestamp is captured here, not in the goroutine, so
// samples carry event time. The write runs on a detached context so
// cancellation of the request does not drop the sample.
func (s *SemanticCacheService) recordMetric(ctx context.Context, series string, query *TripQuery) {
	if s.metrics == nil {
		return
	}

	at := time.Now()
	labels := s.metricLabels(query)
	detached := context.WithoutCancel(ctx)

	go func() {
		recordCtx, cancel := context.WithTimeout(detached, metricRecordTimeout)
		defer cancel()

		if err := s.metrics.Record(recordCtx, series, at, 1, labels); err != nil {
			observability.FromContext(recordCtx).Warn("metric record failed",
				observability.String("series", series),
				observability.Error(err))
		}
	}()
}

// metricLabels derives the label set attached to every cache metric.
func (s *SemanticCacheService) metricLabels(query *TripQuery) map[string]string {
	labels := map[string]string{
		"location": NormalizeLocation(query.Location),
		"duration": strconv.Itoa(query.DurationDays),
		"budget":   string(query.Preferences.Budget.Normalized()),
	}
	if categories := NormalizeTags(query.Categories); len(categories) > 0 {
		labels["categories"] = strings.Join(categories, "+")
	}
	return labels
}
