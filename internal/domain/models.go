package domain

import (
	"time"

	"github.com/google/uuid"
)

// EmbeddingDimension is the vector size produced for canonical query text.
const EmbeddingDimension = 1536

// TripQuery represents one travel-planning request considered for caching.
type TripQuery struct {
	QueryID      string      `json:"query_id"`
	Location     string      `json:"location"`
	Categories   []string    `json:"categories,omitempty"`
	DurationDays int         `json:"duration_days"`
	Preferences  Preferences `json:"preferences"`
	Embedding    []float64   `json:"embedding,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// Preferences are the hard constraints attached to a trip query.
type Preferences struct {
	Budget        Budget   `json:"budget,omitempty"`
	Dietary       []string `json:"dietary,omitempty"`
	Accessibility bool     `json:"accessibility,omitempty"`
}

// NewTripQuery creates a query record with a fresh identifier and timestamp.
// The embedding is attached later, once canonical text has been vectorized.
func NewTripQuery(location string, categories []string, durationDays int, prefs Preferences) *TripQuery {
	return &TripQuery{
		QueryID:      uuid.NewString(),
		Location:     location,
		Categories:   categories,
		DurationDays: durationDays,
		Preferences:  prefs,
		CreatedAt:    time.Now(),
	}
}

// HasEmbedding reports whether the query has been vectorized.
func (q *TripQuery) HasEmbedding() bool {
	return len(q.Embedding) > 0
}

// Coordinates is a WGS84 point attached to an activity.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Activity is a single scheduled item inside a day plan.
type Activity struct {
	Place       string      `json:"place"`
	StartTime   string      `json:"start_time,omitempty"`
	Description string      `json:"description,omitempty"`
	Duration    string      `json:"duration,omitempty"`
	Cost        float64     `json:"cost,omitempty"`
	Address     string      `json:"address,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
}

// Itinerary is a tagged variant: either a structured day plan or a
// plain-text fallback when structured parsing failed at generation time.
// The shape is decided once, at generation, and carried through storage
// and retrieval untouched.
type Itinerary struct {
	Days map[string][]Activity `json:"days,omitempty"`
	Text string                `json:"text,omitempty"`
}

// StructuredItinerary builds the structured variant.
func StructuredItinerary(days map[string][]Activity) Itinerary {
	return Itinerary{Days: days}
}

// FreeformItinerary builds the plain-text fallback variant.
func FreeformItinerary(text string) Itinerary {
	return Itinerary{Text: text}
}

// IsStructured reports whether the itinerary carries day-by-day activities.
func (i Itinerary) IsStructured() bool {
	return len(i.Days) > 0
}

// ItineraryResponse represents a computed itinerary result. It is stored
// keyed by the originating query's id so future cache hits retrieve it
// directly; ResponseID equals that id for lookup simplicity.
type ItineraryResponse struct {
	ResponseID    string    `json:"response_id"`
	QueryID       string    `json:"query_id"`
	Itinerary     Itinerary `json:"itinerary"`
	EstimatedCost float64   `json:"estimated_cost,omitempty"`
	GeneratedAt   time.Time `json:"generated_at"`

	// CacheHit is a per-delivery flag, mutated when the response is served;
	// it is not part of the stored identity.
	CacheHit bool `json:"cache_hit"`
}

// CacheResult is the outcome of a cache lookup exposed to the transport.
type CacheResult struct {
	CacheHit     bool               `json:"cache_hit"`
	Response     *ItineraryResponse `json:"response,omitempty"`
	Similarity   float64            `json:"similarity,omitempty"`
	SearchTimeMs int64              `json:"search_time_ms"`
}

// CacheStats aggregates cache counters over a trailing window.
type CacheStats struct {
	Hits          int64   `json:"hits"`
	Misses        int64   `json:"misses"`
	Stores        int64   `json:"stores"`
	HitRate       float64 `json:"hit_rate"`
	TotalRequests int64   `json:"total_requests"`
}
