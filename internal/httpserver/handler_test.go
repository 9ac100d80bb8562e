package httpserver //nolint:testpackage // Need access to unexported setCacheHeaders function

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/itineradev/itinera/internal/domain"
	"github.com/itineradev/itinera/internal/mocks"
)

func TestHandlePlan_CacheHit_SetsHeaders(t *testing.T) {
	mockCache := mocks.NewMockSemanticCache(t)
	mockGenerator := mocks.NewMockItineraryGenerator(t)

	planner := domain.NewPlannerService(mockCache, mockGenerator, domain.NewCostCalculator(), nil)
	handler := NewHandler(planner, mockCache, domain.NewCostCalculator())

	generatedAt := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	cachedResponse := &domain.ItineraryResponse{
		ResponseID: "query-abc",
		QueryID:    "query-abc",
		Itinerary: domain.StructuredItinerary(map[string][]domain.Activity{
			"Day 1": {
				{Place: "Louvre", Cost: 25, Coordinates: domain.Coordinates{Lat: 48.8606, Lng: 2.3376}},
				{Place: "Cafe Marly", Cost: 40, Coordinates: domain.Coordinates{Lat: 48.8634, Lng: 2.335}},
			},
		}),
		EstimatedCost: 65,
		GeneratedAt:   generatedAt,
		CacheHit:      true,
	}

	// Mock cache hit
	mockCache.EXPECT().
		Lookup(mock.Anything, mock.MatchedBy(func(q *domain.TripQuery) bool {
			return q.Location == "Paris" && q.DurationDays == 3
		})).
		Return(&domain.CacheResult{
			CacheHit:     true,
			Response:     cachedResponse,
			Similarity:   0.96,
			SearchTimeMs: 12,
		}, nil)

	reqBody := []byte(`{"location":"Paris","categories":["museums"],"duration_days":3}`)
	httpReq := httptest.NewRequest(http.MethodPost, "/v1/itineraries", bytes.NewReader(reqBody))
	w := httptest.NewRecorder()

	handler.HandlePlan(w, httpReq)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "HIT", w.Header().Get("X-Itinera-Cache"))
	require.Equal(t, "0.9600", w.Header().Get("X-Itinera-Cache-Similarity"))
	require.Equal(t, "12", w.Header().Get("X-Itinera-Search-Time-Ms"))
	require.Equal(t, generatedAt.Format(time.RFC3339), w.Header().Get("X-Itinera-Cache-Timestamp"))

	// Age should be > 0 since we're comparing against time.Now()
	ageHeader := w.Header().Get("X-Itinera-Cache-Age")
	require.NotEmpty(t, ageHeader)

	var response planResponse
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	require.Equal(t, "query-abc", response.QueryID)
	require.True(t, response.CacheHit)
	require.InDelta(t, 0.96, response.Similarity, 0.0001)
	require.InDelta(t, 65.0, response.Cost.Total, 0.0001)
	require.Len(t, response.Itinerary.Days["Day 1"], 2)
}

func TestHandlePlan_CacheMiss_SetsHeaders(t *testing.T) {
	mockCache := mocks.NewMockSemanticCache(t)
	mockGenerator := mocks.NewMockItineraryGenerator(t)

	planner := domain.NewPlannerService(mockCache, mockGenerator, domain.NewCostCalculator(), nil)
	handler := NewHandler(planner, mockCache, domain.NewCostCalculator())

	freshResponse := &domain.ItineraryResponse{
		ResponseID: "query-def",
		QueryID:    "query-def",
		Itinerary: domain.StructuredItinerary(map[string][]domain.Activity{
			"Day 1": {
				{Place: "Sagrada Familia", Cost: 26, Coordinates: domain.Coordinates{Lat: 41.4036, Lng: 2.1744}},
			},
		}),
		GeneratedAt: time.Now(),
	}

	// Mock cache miss
	mockCache.EXPECT().
		Lookup(mock.Anything, mock.Anything).
		Return(&domain.CacheResult{CacheHit: false, SearchTimeMs: 8}, nil)

	// Mock generation
	mockGenerator.EXPECT().
		Generate(mock.Anything, mock.MatchedBy(func(q *domain.TripQuery) bool {
			return q.Location == "Barcelona"
		})).
		Return(freshResponse, nil)
	mockGenerator.EXPECT().Name().Return("static")

	// Mock cache store of the freshly generated itinerary
	mockCache.EXPECT().
		Store(mock.Anything, mock.Anything, mock.MatchedBy(func(resp *domain.ItineraryResponse) bool {
			return resp.EstimatedCost == 26
		})).
		Return(nil)

	reqBody := []byte(`{"location":"Barcelona","duration_days":1}`)
	httpReq := httptest.NewRequest(http.MethodPost, "/v1/itineraries", bytes.NewReader(reqBody))
	w := httptest.NewRecorder()

	handler.HandlePlan(w, httpReq)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "MISS", w.Header().Get("X-Itinera-Cache"))
	require.Empty(t, w.Header().Get("X-Itinera-Cache-Similarity"))
	require.Empty(t, w.Header().Get("X-Itinera-Cache-Timestamp"))
	require.Empty(t, w.Header().Get("X-Itinera-Cache-Age"))
	require.Equal(t, "8", w.Header().Get("X-Itinera-Search-Time-Ms"))

	var response planResponse
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	require.Equal(t, "query-def", response.QueryID)
	require.False(t, response.CacheHit)
	require.InDelta(t, 26.0, response.Cost.Total, 0.0001)
}

func TestHandlePlan_CacheDisabled_ReportsMiss(t *testing.T) {
	mockGenerator := mocks.NewMockItineraryGenerator(t)

	// Planner with nil cache (cache disabled)
	planner := domain.NewPlannerService(nil, mockGenerator, domain.NewCostCalculator(), nil)
	handler := NewHandler(planner, nil, domain.NewCostCalculator())

	freshResponse := &domain.ItineraryResponse{
		ResponseID:  "query-ghi",
		QueryID:     "query-ghi",
		Itinerary:   domain.FreeformItinerary("Spend the day wandering the old town."),
		GeneratedAt: time.Now(),
	}

	mockGenerator.EXPECT().
		Generate(mock.Anything, mock.Anything).
		Return(freshResponse, nil)
	mockGenerator.EXPECT().Name().Return("static")

	reqBody := []byte(`{"location":"Lisbon","duration_days":2}`)
	httpReq := httptest.NewRequest(http.MethodPost, "/v1/itineraries", bytes.NewReader(reqBody))
	w := httptest.NewRecorder()

	handler.HandlePlan(w, httpReq)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "MISS", w.Header().Get("X-Itinera-Cache"))
	require.Empty(t, w.Header().Get("X-Itinera-Cache-Similarity"))

	var response planResponse
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	require.False(t, response.CacheHit)
	require.False(t, response.Itinerary.IsStructured())
	require.InDelta(t, 0.0, response.Cost.Total, 0.0001)
}

func TestHandlePlan_MethodNotAllowed(t *testing.T) {
	mockCache := mocks.NewMockSemanticCache(t)
	mockGenerator := mocks.NewMockItineraryGenerator(t)
	planner := domain.NewPlannerService(mockCache, mockGenerator, domain.NewCostCalculator(), nil)
	handler := NewHandler(planner, mockCache, domain.NewCostCalculator())

	httpReq := httptest.NewRequest(http.MethodGet, "/v1/itineraries", nil)
	w := httptest.NewRecorder()

	handler.HandlePlan(w, httpReq)

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandlePlan_InvalidJSON(t *testing.T) {
	mockCache := mocks.NewMockSemanticCache(t)
	mockGenerator := mocks.NewMockItineraryGenerator(t)
	planner := domain.NewPlannerService(mockCache, mockGenerator, domain.NewCostCalculator(), nil)
	handler := NewHandler(planner, mockCache, domain.NewCostCalculator())

	httpReq := httptest.NewRequest(http.MethodPost, "/v1/itineraries", bytes.NewReader([]byte("invalid json")))
	w := httptest.NewRecorder()

	handler.HandlePlan(w, httpReq)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlePlan_MissingLocation(t *testing.T) {
	mockCache := mocks.NewMockSemanticCache(t)
	mockGenerator := mocks.NewMockItineraryGenerator(t)
	planner := domain.NewPlannerService(mockCache, mockGenerator, domain.NewCostCalculator(), nil)
	handler := NewHandler(planner, mockCache, domain.NewCostCalculator())

	reqBody := []byte(`{"location":"   ","duration_days":3}`)
	httpReq := httptest.NewRequest(http.MethodPost, "/v1/itineraries", bytes.NewReader(reqBody))
	w := httptest.NewRecorder()

	handler.HandlePlan(w, httpReq)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "location is required")
}

func TestHandlePlan_InvalidDuration(t *testing.T) {
	mockCache := mocks.NewMockSemanticCache(t)
	mockGenerator := mocks.NewMockItineraryGenerator(t)
	planner := domain.NewPlannerService(mockCache, mockGenerator, domain.NewCostCalculator(), nil)
	handler := NewHandler(planner, mockCache, domain.NewCostCalculator())

	reqBody := []byte(`{"location":"Tokyo","duration_days":0}`)
	httpReq := httptest.NewRequest(http.MethodPost, "/v1/itineraries", bytes.NewReader(reqBody))
	w := httptest.NewRecorder()

	handler.HandlePlan(w, httpReq)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "duration_days must be at least 1")
}

func TestHandlePlan_GeneratorError(t *testing.T) {
	mockCache := mocks.NewMockSemanticCache(t)
	mockGenerator := mocks.NewMockItineraryGenerator(t)
	planner := domain.NewPlannerService(mockCache, mockGenerator, domain.NewCostCalculator(), nil)
	handler := NewHandler(planner, mockCache, domain.NewCostCalculator())

	// Mock cache miss, then generation failure
	mockCache.EXPECT().
		Lookup(mock.Anything, mock.Anything).
		Return(&domain.CacheResult{CacheHit: false}, nil)
	mockGenerator.EXPECT().
		Generate(mock.Anything, mock.Anything).
		Return(nil, errors.New("model unavailable"))

	reqBody := []byte(`{"location":"Rome","duration_days":2}`)
	httpReq := httptest.NewRequest(http.MethodPost, "/v1/itineraries", bytes.NewReader(reqBody))
	w := httptest.NewRecorder()

	handler.HandlePlan(w, httpReq)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "model unavailable")
}

func TestSetCacheHeaders_NilResult(t *testing.T) {
	w := httptest.NewRecorder()

	setCacheHeaders(w, nil)

	require.Empty(t, w.Header().Get("X-Itinera-Cache"))
	require.Empty(t, w.Header().Get("X-Itinera-Cache-Similarity"))
	require.Empty(t, w.Header().Get("X-Itinera-Cache-Timestamp"))
	require.Empty(t, w.Header().Get("X-Itinera-Cache-Age"))
	require.Empty(t, w.Header().Get("X-Itinera-Search-Time-Ms"))
}

func TestSetCacheHeaders_CacheHit(t *testing.T) {
	w := httptest.NewRecorder()
	generatedAt := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

	result := &domain.CacheResult{
		CacheHit:     true,
		Similarity:   0.9234,
		SearchTimeMs: 4,
		Response: &domain.ItineraryResponse{
			ResponseID:  "query-abc",
			QueryID:     "query-abc",
			GeneratedAt: generatedAt,
		},
	}

	setCacheHeaders(w, result)

	require.Equal(t, "HIT", w.Header().Get("X-Itinera-Cache"))
	require.Equal(t, "0.9234", w.Header().Get("X-Itinera-Cache-Similarity"))
	require.Equal(t, "4", w.Header().Get("X-Itinera-Search-Time-Ms"))
	require.Equal(t, generatedAt.Format(time.RFC3339), w.Header().Get("X-Itinera-Cache-Timestamp"))

	ageHeader := w.Header().Get("X-Itinera-Cache-Age")
	require.NotEmpty(t, ageHeader)
}

func TestSetCacheHeaders_CacheMiss(t *testing.T) {
	w := httptest.NewRecorder()

	result := &domain.CacheResult{
		CacheHit:     false,
		SearchTimeMs: 6,
	}

	setCacheHeaders(w, result)

	require.Equal(t, "MISS", w.Header().Get("X-Itinera-Cache"))
	require.Equal(t, "6", w.Header().Get("X-Itinera-Search-Time-Ms"))
	require.Empty(t, w.Header().Get("X-Itinera-Cache-Similarity"))
	require.Empty(t, w.Header().Get("X-Itinera-Cache-Timestamp"))
	require.Empty(t, w.Header().Get("X-Itinera-Cache-Age"))
}

func TestHandleStats(t *testing.T) {
	mockCache := mocks.NewMockSemanticCache(t)
	mockGenerator := mocks.NewMockItineraryGenerator(t)
	planner := domain.NewPlannerService(mockCache, mockGenerator, domain.NewCostCalculator(), nil)
	handler := NewHandler(planner, mockCache, domain.NewCostCalculator())

	mockCache.EXPECT().
		Stats(mock.Anything).
		Return(&domain.CacheStats{
			Hits:          7,
			Misses:        3,
			Stores:        3,
			HitRate:       70.0,
			TotalRequests: 10,
		}, nil)

	httpReq := httptest.NewRequest(http.MethodGet, "/v1/cache/stats", nil)
	w := httptest.NewRecorder()

	handler.HandleStats(w, httpReq)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var stats domain.CacheStats
	err := json.NewDecoder(w.Body).Decode(&stats)
	require.NoError(t, err)
	require.Equal(t, int64(7), stats.Hits)
	require.Equal(t, int64(3), stats.Misses)
	require.InDelta(t, 70.0, stats.HitRate, 0.0001)
	require.Equal(t, int64(10), stats.TotalRequests)
}

func TestHandleStats_Error(t *testing.T) {
	mockCache := mocks.NewMockSemanticCache(t)
	mockGenerator := mocks.NewMockItineraryGenerator(t)
	planner := domain.NewPlannerService(mockCache, mockGenerator, domain.NewCostCalculator(), nil)
	handler := NewHandler(planner, mockCache, domain.NewCostCalculator())

	mockCache.EXPECT().
		Stats(mock.Anything).
		Return(nil, errors.New("metrics backend unavailable"))

	httpReq := httptest.NewRequest(http.MethodGet, "/v1/cache/stats", nil)
	w := httptest.NewRecorder()

	handler.HandleStats(w, httpReq)

	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleStats_MethodNotAllowed(t *testing.T) {
	mockCache := mocks.NewMockSemanticCache(t)
	mockGenerator := mocks.NewMockItineraryGenerator(t)
	planner := domain.NewPlannerService(mockCache, mockGenerator, domain.NewCostCalculator(), nil)
	handler := NewHandler(planner, mockCache, domain.NewCostCalculator())

	httpReq := httptest.NewRequest(http.MethodPost, "/v1/cache/stats", nil)
	w := httptest.NewRecorder()

	handler.HandleStats(w, httpReq)

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandleClear(t *testing.T) {
	mockCache := mocks.NewMockSemanticCache(t)
	mockGenerator := mocks.NewMockItineraryGenerator(t)
	planner := domain.NewPlannerService(mockCache, mockGenerator, domain.NewCostCalculator(), nil)
	handler := NewHandler(planner, mockCache, domain.NewCostCalculator())

	mockCache.EXPECT().
		Clear(mock.Anything).
		Return(5, nil)

	httpReq := httptest.NewRequest(http.MethodDelete, "/v1/cache", nil)
	w := httptest.NewRecorder()

	handler.HandleClear(w, httpReq)

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]int
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	require.Equal(t, 5, response["removed"])
}

func TestHandleClear_Error(t *testing.T) {
	mockCache := mocks.NewMockSemanticCache(t)
	mockGenerator := mocks.NewMockItineraryGenerator(t)
	planner := domain.NewPlannerService(mockCache, mockGenerator, domain.NewCostCalculator(), nil)
	handler := NewHandler(planner, mockCache, domain.NewCostCalculator())

	mockCache.EXPECT().
		Clear(mock.Anything).
		Return(0, errors.New("index unavailable"))

	httpReq := httptest.NewRequest(http.MethodDelete, "/v1/cache", nil)
	w := httptest.NewRecorder()

	handler.HandleClear(w, httpReq)

	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleClear_CacheDisabled(t *testing.T) {
	mockGenerator := mocks.NewMockItineraryGenerator(t)
	planner := domain.NewPlannerService(nil, mockGenerator, domain.NewCostCalculator(), nil)
	handler := NewHandler(planner, nil, domain.NewCostCalculator())

	httpReq := httptest.NewRequest(http.MethodDelete, "/v1/cache", nil)
	w := httptest.NewRecorder()

	handler.HandleClear(w, httpReq)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleHealth(t *testing.T) {
	mockCache := mocks.NewMockSemanticCache(t)
	mockGenerator := mocks.NewMockItineraryGenerator(t)
	planner := domain.NewPlannerService(mockCache, mockGenerator, domain.NewCostCalculator(), nil)
	handler := NewHandler(planner, mockCache, domain.NewCostCalculator())

	httpReq := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.HandleHealth(w, httpReq)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response map[string]string
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err)
	require.Equal(t, "healthy", response["status"])
}
