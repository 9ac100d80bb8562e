package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/itineradev/itinera/internal/domain"
	"github.com/itineradev/itinera/internal/observability"
)

// Cache decision headers attached to planning responses.
const (
	headerCache           = "X-Itinera-Cache"
	headerCacheSimilarity = "X-Itinera-Cache-Similarity"
	headerCacheTimestamp  = "X-Itinera-Cache-Timestamp"
	headerCacheAge        = "X-Itinera-Cache-Age"
	headerSearchTime      = "X-Itinera-Search-Time-Ms"
)

// Handler handles HTTP requests.
type Handler struct {
	planner *domain.PlannerService
	cache   domain.SemanticCache
	costs   *domain.CostCalculator
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(planner *domain.PlannerService, cache domain.SemanticCache, costs *domain.CostCalculator) *Handler {
	return &Handler{
		planner: planner,
		cache:   cache,
		costs:   costs,
	}
}

// planRequest is the wire form of a trip-planning request.
type planRequest struct {
	Location      string   `json:"location"`
	Categories    []string `json:"categories,omitempty"`
	DurationDays  int      `json:"duration_days"`
	Budget        string   `json:"budget,omitempty"`
	Dietary       []string `json:"dietary,omitempty"`
	Accessibility bool     `json:"accessibility,omitempty"`
}

// planResponse is the JSON envelope for a planning response. The cache
// decision is mirrored in headers for clients that skip the body.
type planResponse struct {
	QueryID      string             `json:"query_id"`
	CacheHit     bool               `json:"cache_hit"`
	Similarity   float64            `json:"similarity,omitempty"`
	SearchTimeMs int64              `json:"search_time_ms"`
	Itinerary    domain.Itinerary   `json:"itinerary"`
	Cost         domain.CostSummary `json:"cost"`
	GeneratedAt  time.Time          `json:"generated_at"`
}

// HandlePlan processes trip-planning requests.
func (h *Handler) HandlePlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Early validation.
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse request.
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Location) == "" {
		http.Error(w, "location is required", http.StatusBadRequest)
		return
	}
	if req.DurationDays < 1 {
		http.Error(w, "duration_days must be at least 1", http.StatusBadRequest)
		return
	}

	query := domain.NewTripQuery(req.Location, req.Categories, req.DurationDays, domain.Preferences{
		Budget:        domain.ParseBudget(req.Budget),
		Dietary:       req.Dietary,
		Accessibility: req.Accessibility,
	})

	// Inject query identity into context for downstream logging.
	ctx = observability.WithQueryID(ctx, query.QueryID)
	ctx = observability.WithLocation(ctx, query.Location)

	logger := observability.FromContext(ctx)
	logger.Info("itinerary request received",
		observability.String("location", query.Location),
		observability.Int("duration_days", query.DurationDays),
		observability.Strings("categories", query.Categories),
	)

	result, err := h.planner.PlanTrip(ctx, query)
	if err != nil {
		logger.Error("planning failed", observability.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	setCacheHeaders(w, result)

	logger.Info("itinerary request served",
		observability.Bool("cache_hit", result.CacheHit),
		observability.Float64("estimated_cost", result.Response.EstimatedCost),
	)

	w.Header().Set("Content-Type", "application/json")
	encodeErr := json.NewEncoder(w).Encode(h.buildPlanResponse(result))
	if encodeErr != nil {
		logger.Error("failed to encode response", observability.Error(encodeErr))
		http.Error(w, fmt.Sprintf("failed to encode response: %v", encodeErr), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) buildPlanResponse(result *domain.CacheResult) planResponse {
	resp := result.Response
	return planResponse{
		QueryID:      resp.QueryID,
		CacheHit:     result.CacheHit,
		Similarity:   result.Similarity,
		SearchTimeMs: result.SearchTimeMs,
		Itinerary:    resp.Itinerary,
		Cost:         h.costs.Summarize(resp.Itinerary),
		GeneratedAt:  resp.GeneratedAt,
	}
}

// HandleStats reports cache hit/miss counters over the trailing window.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.cache == nil {
		http.Error(w, "cache is disabled", http.StatusServiceUnavailable)
		return
	}

	stats, err := h.cache.Stats(ctx)
	if err != nil {
		observability.FromContext(ctx).Error("failed to read cache stats", observability.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		http.Error(w, fmt.Sprintf("failed to encode response: %v", err), http.StatusInternalServerError)
		return
	}
}

// HandleClear flushes every cached query, vector and itinerary.
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodDelete {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.cache == nil {
		http.Error(w, "cache is disabled", http.StatusServiceUnavailable)
		return
	}

	removed, err := h.cache.Clear(ctx)
	if err != nil {
		observability.FromContext(ctx).Error("failed to clear cache", observability.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	observability.FromContext(ctx).Info("cache cleared", observability.Int("removed", removed))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]int{"removed": removed}); err != nil {
		http.Error(w, fmt.Sprintf("failed to encode response: %v", err), http.StatusInternalServerError)
		return
	}
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	}); err != nil {
		// Already written status, can't change it, just log.
		return
	}
}

// setCacheHeaders reports the cache decision on the response. Search time
// is always present; similarity, timestamp and age only describe a hit.
func setCacheHeaders(w http.ResponseWriter, result *domain.CacheResult) {
	if result == nil {
		return
	}

	w.Header().Set(headerSearchTime, strconv.FormatInt(result.SearchTimeMs, 10))

	if !result.CacheHit {
		w.Header().Set(headerCache, "MISS")
		return
	}

	w.Header().Set(headerCache, "HIT")
	w.Header().Set(headerCacheSimilarity, fmt.Sprintf("%.4f", result.Similarity))

	if result.Response != nil && !result.Response.GeneratedAt.IsZero() {
		w.Header().Set(headerCacheTimestamp, result.Response.GeneratedAt.Format(time.RFC3339))
		age := int(time.Since(result.Response.GeneratedAt).Seconds())
		w.Header().Set(headerCacheAge, strconv.Itoa(age))
	}
}
