// Package metrics provides Redis-backed recorders for cache counters.
// The backend is picked once at startup: RedisTimeSeries when the module
// is loaded, otherwise a capped list that any Redis can serve.
package metrics

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/itineradev/itinera/internal/domain"
	"github.com/itineradev/itinera/internal/observability"
)

const (
	metricKeyPrefix   = "itinera:metrics:"
	fallbackKeyPrefix = metricKeyPrefix + "fallback:"
	probeKey          = metricKeyPrefix + "probe"
)

// Options tunes the metric recorders.
type Options struct {
	// Retention bounds how long RedisTimeSeries keeps samples.
	Retention time.Duration

	// FallbackMaxEntries caps each fallback list.
	FallbackMaxEntries int

	// FallbackTTL expires idle fallback lists.
	FallbackTTL time.Duration
}

// NewRecorder probes the Redis server for timeseries support and returns
// the matching recorder. The choice is made once; capability does not
// change while the process runs.
func NewRecorder(ctx context.Context, client *redis.Client, opts Options) domain.MetricRecorder {
	logger := observability.FromContext(ctx)

	err := client.TSInfo(ctx, probeKey).Err()
	if err != nil && isUnknownCommand(err) {
		logger.Warn("redis timeseries module unavailable, falling back to list-backed metrics")
		return NewFallbackRecorder(client, opts.FallbackMaxEntries, opts.FallbackTTL)
	}

	logger.Info("using redis timeseries metric backend",
		observability.Duration("retention", opts.Retention))
	return NewTimeSeriesRecorder(client, opts.Retention)
}

// isUnknownCommand reports whether err means the server lacks the
// command entirely, as opposed to a missing key or a connection fault.
func isUnknownCommand(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "unknown command")
}
