package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/itineradev/itinera/internal/observability"
)

// PlannerService orchestrates trip planning: serve from the semantic
// cache when possible, otherwise generate a fresh itinerary and cache it.
type PlannerService struct {
	cache     SemanticCache
	generator ItineraryGenerator
	costs     *CostCalculator
	events    EventPublisher
}

// NewPlannerService creates a new planner service (DI constructor).
func NewPlannerService(
	cache SemanticCache,
	generator ItineraryGenerator,
	costs *CostCalculator,
	events EventPublisher,
) *PlannerService {
	return &PlannerService{
		cache:     cache,
		generator: generator,
		costs:     costs,
		events:    events,
	}
}

// PlanTrip handles a trip query. Cache faults never fail the request;
// only generation failures do.
func (p *PlannerService) PlanTrip(ctx context.Context, query *TripQuery) (*CacheResult, error) {
	if err := validateQuery(query); err != nil {
		return nil, err
	}

	logger := observability.FromContext(ctx)

	var lookup *CacheResult
	if p.cache == nil {
		logger.Info("cache is disabled (nil cache)")
	} else {
		var err error
		lookup, err = p.cache.Lookup(ctx, query)
		if err != nil {
			logger.Warn("cache lookup failed, continuing without cache",
				observability.Error(err))
		}
		if lookup != nil && lookup.CacheHit {
			logger.Info("cache HIT - returning cached itinerary",
				observability.Float64("similarity", lookup.Similarity),
				observability.Int64("search_time_ms", lookup.SearchTimeMs))
			p.publish(ctx, "itinerary_served_from_cache", map[string]interface{}{
				"query_id":       query.QueryID,
				"source_query":   lookup.Response.QueryID,
				"similarity":     lookup.Similarity,
				"search_time_ms": lookup.SearchTimeMs,
			})
			return lookup, nil
		}
		logger.Info("cache MISS - generating itinerary")
	}

	response, err := p.generator.Generate(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("itinerary generation failed: %w", err)
	}

	// Cost estimation lives in the domain layer, not in generators.
	summary := p.costs.Summarize(response.Itinerary)
	response.EstimatedCost = summary.Total

	if p.cache != nil {
		if storeErr := p.cache.Store(ctx, query, response); storeErr != nil {
			logger.Warn("failed to store itinerary in cache",
				observability.Error(storeErr))
		}
	}

	p.publish(ctx, "itinerary_generated", map[string]interface{}{
		"query_id":       query.QueryID,
		"generator":      p.generator.Name(),
		"structured":     response.Itinerary.IsStructured(),
		"estimated_cost": summary.Total,
	})

	result := &CacheResult{
		CacheHit: false,
		Response: response,
	}
	if lookup != nil {
		result.SearchTimeMs = lookup.SearchTimeMs
	}
	return result, nil
}

func (p *PlannerService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if p.events == nil {
		return
	}
	p.events.Publish(ctx, eventType, data)
}

// validateQuery enforces the minimal invariants every trip query carries.
func validateQuery(query *TripQuery) error {
	if query == nil {
		return errors.New("query cannot be nil")
	}
	if strings.TrimSpace(query.Location) == "" {
		return errors.New("location cannot be empty")
	}
	if query.DurationDays < 1 {
		return errors.New("duration must be at least one day")
	}
	return nil
}
