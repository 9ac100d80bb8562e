package domain

import (
	"context"
	"time"
)

// ItineraryGenerator produces a fresh itinerary for a trip query.
type ItineraryGenerator interface {
	// Generate builds an itinerary for the query.
	Generate(ctx context.Context, query *TripQuery) (*ItineraryResponse, error)

	// Name returns the generator identifier.
	Name() string
}

// GeneratorRegistry manages available itinerary generators.
type GeneratorRegistry interface {
	// Register adds a generator to the registry.
	Register(ctx context.Context, generator ItineraryGenerator) error

	// Get retrieves a generator by name.
	Get(ctx context.Context, generatorName string) (ItineraryGenerator, error)

	// List returns all available generators.
	List(ctx context.Context) ([]string, error)
}

// Router determines which generator to use.
type Router interface {
	// Route selects a generator based on request criteria.
	Route(ctx context.Context, req *RouteRequest) (string, error)
}

// RouteRequest contains criteria for generator selection.
type RouteRequest struct {
	// Preference names the wanted generator; "auto" or empty lets the
	// router pick the best available one.
	Preference string
}

// MetricRecorder records and queries time-stamped cache metrics.
// Implementations are selected at startup based on backend capability.
type MetricRecorder interface {
	// Record appends a sample to the named series at the given time.
	Record(ctx context.Context, series string, at time.Time, value float64, labels map[string]string) error

	// Query returns the samples of a series within [from, to].
	Query(ctx context.Context, series string, from, to time.Time) ([]MetricPoint, error)

	// Name returns the backend identifier.
	Name() string
}

// MetricPoint is a single sample in a metric series.
type MetricPoint struct {
	Timestamp time.Time
	Value     float64
	Labels    map[string]string
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
