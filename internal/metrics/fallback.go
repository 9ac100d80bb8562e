package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/itineradev/itinera/internal/domain"
)

// FallbackRecorder records samples into capped Redis lists, one per
// series, for servers without the timeseries module. Each list is
// trimmed to a maximum length and expires after the configured TTL of
// inactivity, so an abandoned cache does not leak memory.
type FallbackRecorder struct {
	client     *redis.Client
	maxEntries int
	ttl        time.Duration
}

// metricEvent is the wire form of one fallback sample.
type metricEvent struct {
	Series    string            `json:"series"`
	Timestamp int64             `json:"ts"`
	Value     float64           `json:"value"`
	Labels    map[string]string `json:"labels,omitempty"`
}

// NewFallbackRecorder creates a list-backed recorder.
func NewFallbackRecorder(client *redis.Client, maxEntries int, ttl time.Duration) *FallbackRecorder {
	return &FallbackRecorder{
		client:     client,
		maxEntries: maxEntries,
		ttl:        ttl,
	}
}

// Record appends a sample to the named series at the given time.
func (r *FallbackRecorder) Record(ctx context.Context, series string, at time.Time, value float64, labels map[string]string) error {
	event := metricEvent{
		Series:    series,
		Timestamp: at.UnixMilli(),
		Value:     value,
		Labels:    labels,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal metric event: %w", err)
	}

	key := fallbackKeyPrefix + series
	pipe := r.client.Pipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, int64(r.maxEntries)-1)
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: list push %s: %s", domain.ErrMetricBackendUnavailable, series, err)
	}
	return nil
}

// Query returns the samples of a series within [from, to], oldest first.
// Malformed entries are skipped.
func (r *FallbackRecorder) Query(ctx context.Context, series string, from, to time.Time) ([]domain.MetricPoint, error) {
	entries, err := r.client.LRange(ctx, fallbackKeyPrefix+series, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: list range %s: %s", domain.ErrMetricBackendUnavailable, series, err)
	}

	fromMs := from.UnixMilli()
	toMs := to.UnixMilli()

	// LPUSH stores newest first; walk backwards for ascending order.
	points := make([]domain.MetricPoint, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		var event metricEvent
		if err := json.Unmarshal([]byte(entries[i]), &event); err != nil {
			continue
		}
		if event.Timestamp < fromMs || event.Timestamp > toMs {
			continue
		}
		points = append(points, domain.MetricPoint{
			Timestamp: time.UnixMilli(event.Timestamp),
			Value:     event.Value,
			Labels:    event.Labels,
		})
	}
	return points, nil
}

// Name returns the backend identifier.
func (r *FallbackRecorder) Name() string {
	return "redis-list"
}
