package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/itineradev/itinera/internal/domain"
)

// TimeSeriesRecorder records samples into RedisTimeSeries. Samples that
// land on the same millisecond are summed, so counters survive bursts.
// Labels are series-level metadata in RedisTimeSeries: they are attached
// when a series is first created and ignored afterwards.
type TimeSeriesRecorder struct {
	client    *redis.Client
	retention time.Duration
}

// NewTimeSeriesRecorder creates a RedisTimeSeries-backed recorder.
func NewTimeSeriesRecorder(client *redis.Client, retention time.Duration) *TimeSeriesRecorder {
	return &TimeSeriesRecorder{
		client:    client,
		retention: retention,
	}
}

// Record appends a sample to the named series at the given time.
func (r *TimeSeriesRecorder) Record(ctx context.Context, series string, at time.Time, value float64, labels map[string]string) error {
	seriesLabels := map[string]string{"series": series}
	for k, v := range labels {
		seriesLabels[k] = v
	}

	err := r.client.TSAddWithArgs(ctx, metricKeyPrefix+series, at.UnixMilli(), value,
		&redis.TSOptions{
			Retention:       int(r.retention.Milliseconds()),
			Labels:          seriesLabels,
			DuplicatePolicy: "SUM",
		},
	).Err()
	if err != nil {
		return fmt.Errorf("%w: ts add %s: %s", domain.ErrMetricBackendUnavailable, series, err)
	}
	return nil
}

// Query returns the samples of a series within [from, to]. A series that
// has never been written reads as empty, not as an error.
func (r *TimeSeriesRecorder) Query(ctx context.Context, series string, from, to time.Time) ([]domain.MetricPoint, error) {
	samples, err := r.client.TSRange(ctx, metricKeyPrefix+series,
		int(from.UnixMilli()), int(to.UnixMilli())).Result()
	if err != nil {
		if isMissingSeries(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: ts range %s: %s", domain.ErrMetricBackendUnavailable, series, err)
	}

	points := make([]domain.MetricPoint, 0, len(samples))
	for _, sample := range samples {
		points = append(points, domain.MetricPoint{
			Timestamp: time.UnixMilli(sample.Timestamp),
			Value:     sample.Value,
		})
	}
	return points, nil
}

// Name returns the backend identifier.
func (r *TimeSeriesRecorder) Name() string {
	return "redis-timeseries"
}

func isMissingSeries(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "does not exist")
}
