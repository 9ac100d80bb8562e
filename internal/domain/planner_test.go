package domain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/itineradev/itinera/internal/domain"
	"github.com/itineradev/itinera/internal/mocks"
)

func TestPlannerService_PlanTrip(t *testing.T) {
	t.Run("should return cached itinerary on cache hit", func(t *testing.T) {
		mockCache := mocks.NewMockSemanticCache(t)
		mockGenerator := mocks.NewMockItineraryGenerator(t)
		mockEvents := mocks.NewMockEventPublisher(t)

		planner := domain.NewPlannerService(mockCache, mockGenerator, domain.NewCostCalculator(), mockEvents)

		query := domain.NewTripQuery("Paris", []string{"museums"}, 3, domain.Preferences{})
		cached := &domain.CacheResult{
			CacheHit: true,
			Response: &domain.ItineraryResponse{
				ResponseID: "source-query",
				QueryID:    "source-query",
				CacheHit:   true,
			},
			Similarity:   0.97,
			SearchTimeMs: 12,
		}

		mockCache.EXPECT().Lookup(mock.Anything, query).Return(cached, nil)
		mockEvents.EXPECT().
			Publish(mock.Anything, "itinerary_served_from_cache", mock.MatchedBy(func(data map[string]interface{}) bool {
				return data["source_query"] == "source-query"
			})).
			Return()

		result, err := planner.PlanTrip(context.Background(), query)

		require.NoError(t, err)
		require.True(t, result.CacheHit)
		require.InEpsilon(t, 0.97, result.Similarity, 0.001)
		require.Equal(t, int64(12), result.SearchTimeMs)
	})

	t.Run("should generate and store on cache miss", func(t *testing.T) {
		mockCache := mocks.NewMockSemanticCache(t)
		mockGenerator := mocks.NewMockItineraryGenerator(t)
		mockEvents := mocks.NewMockEventPublisher(t)

		planner := domain.NewPlannerService(mockCache, mockGenerator, domain.NewCostCalculator(), mockEvents)

		query := domain.NewTripQuery("Barcelona", nil, 2, domain.Preferences{})
		generated := &domain.ItineraryResponse{
			ResponseID: query.QueryID,
			QueryID:    query.QueryID,
			Itinerary: domain.StructuredItinerary(map[string][]domain.Activity{
				"Day 1": {{Place: "Sagrada Familia", Cost: 26}, {Place: "Park Güell", Cost: 10}},
			}),
			GeneratedAt: time.Now(),
		}

		mockCache.EXPECT().Lookup(mock.Anything, query).
			Return(&domain.CacheResult{CacheHit: false, SearchTimeMs: 8}, nil)
		mockGenerator.EXPECT().Generate(mock.Anything, query).Return(generated, nil)
		mockGenerator.EXPECT().Name().Return("static")
		mockCache.EXPECT().Store(mock.Anything, query, generated).Return(nil)
		mockEvents.EXPECT().
			Publish(mock.Anything, "itinerary_generated", mock.MatchedBy(func(data map[string]interface{}) bool {
				return data["generator"] == "static" && data["structured"] == true
			})).
			Return()

		result, err := planner.PlanTrip(context.Background(), query)

		require.NoError(t, err)
		require.False(t, result.CacheHit)
		require.InDelta(t, 36.0, result.Response.EstimatedCost, 0.001)
		require.Equal(t, int64(8), result.SearchTimeMs)
	})

	t.Run("should continue when cache lookup fails", func(t *testing.T) {
		mockCache := mocks.NewMockSemanticCache(t)
		mockGenerator := mocks.NewMockItineraryGenerator(t)
		mockEvents := mocks.NewMockEventPublisher(t)

		planner := domain.NewPlannerService(mockCache, mockGenerator, domain.NewCostCalculator(), mockEvents)

		query := domain.NewTripQuery("Tokyo", nil, 4, domain.Preferences{})
		generated := &domain.ItineraryResponse{
			ResponseID: query.QueryID,
			QueryID:    query.QueryID,
			Itinerary:  domain.FreeformItinerary("Day 1: Shibuya."),
		}

		mockCache.EXPECT().Lookup(mock.Anything, query).
			Return(nil, errors.New("embedding provider down"))
		mockGenerator.EXPECT().Generate(mock.Anything, query).Return(generated, nil)
		mockGenerator.EXPECT().Name().Return("static")
		mockCache.EXPECT().Store(mock.Anything, query, generated).Return(nil)
		mockEvents.EXPECT().Publish(mock.Anything, "itinerary_generated", mock.Anything).Return()

		result, err := planner.PlanTrip(context.Background(), query)

		require.NoError(t, err)
		require.False(t, result.CacheHit)
		require.NotNil(t, result.Response)
	})

	t.Run("should tolerate store failures", func(t *testing.T) {
		mockCache := mocks.NewMockSemanticCache(t)
		mockGenerator := mocks.NewMockItineraryGenerator(t)
		mockEvents := mocks.NewMockEventPublisher(t)

		planner := domain.NewPlannerService(mockCache, mockGenerator, domain.NewCostCalculator(), mockEvents)

		query := domain.NewTripQuery("Lisbon", nil, 2, domain.Preferences{})
		generated := &domain.ItineraryResponse{
			ResponseID: query.QueryID,
			QueryID:    query.QueryID,
			Itinerary:  domain.FreeformItinerary("Day 1: Alfama."),
		}

		mockCache.EXPECT().Lookup(mock.Anything, query).
			Return(&domain.CacheResult{CacheHit: false}, nil)
		mockGenerator.EXPECT().Generate(mock.Anything, query).Return(generated, nil)
		mockGenerator.EXPECT().Name().Return("static")
		mockCache.EXPECT().Store(mock.Anything, query, generated).
			Return(errors.New("redis write failed"))
		mockEvents.EXPECT().Publish(mock.Anything, "itinerary_generated", mock.Anything).Return()

		result, err := planner.PlanTrip(context.Background(), query)

		require.NoError(t, err)
		require.False(t, result.CacheHit)
	})

	t.Run("should fail when generation fails", func(t *testing.T) {
		mockCache := mocks.NewMockSemanticCache(t)
		mockGenerator := mocks.NewMockItineraryGenerator(t)
		mockEvents := mocks.NewMockEventPublisher(t)

		planner := domain.NewPlannerService(mockCache, mockGenerator, domain.NewCostCalculator(), mockEvents)

		query := domain.NewTripQuery("Oslo", nil, 2, domain.Preferences{})

		mockCache.EXPECT().Lookup(mock.Anything, query).
			Return(&domain.CacheResult{CacheHit: false}, nil)
		mockGenerator.EXPECT().Generate(mock.Anything, query).
			Return(nil, errors.New("model unavailable"))

		result, err := planner.PlanTrip(context.Background(), query)

		require.Error(t, err)
		require.Nil(t, result)
		require.Contains(t, err.Error(), "itinerary generation failed")
	})

	t.Run("should plan without cache", func(t *testing.T) {
		mockGenerator := mocks.NewMockItineraryGenerator(t)

		planner := domain.NewPlannerService(nil, mockGenerator, domain.NewCostCalculator(), nil)

		query := domain.NewTripQuery("Porto", nil, 1, domain.Preferences{})
		generated := &domain.ItineraryResponse{
			ResponseID: query.QueryID,
			QueryID:    query.QueryID,
			Itinerary:  domain.FreeformItinerary("Day 1: Ribeira."),
		}

		mockGenerator.EXPECT().Generate(mock.Anything, query).Return(generated, nil)
		mockGenerator.EXPECT().Name().Return("static")

		result, err := planner.PlanTrip(context.Background(), query)

		require.NoError(t, err)
		require.False(t, result.CacheHit)
		require.Equal(t, int64(0), result.SearchTimeMs)
	})

	t.Run("should reject nil query", func(t *testing.T) {
		mockCache := mocks.NewMockSemanticCache(t)
		mockGenerator := mocks.NewMockItineraryGenerator(t)

		planner := domain.NewPlannerService(mockCache, mockGenerator, domain.NewCostCalculator(), nil)

		result, err := planner.PlanTrip(context.Background(), nil)

		require.Error(t, err)
		require.Nil(t, result)
		require.Contains(t, err.Error(), "query cannot be nil")
	})

	t.Run("should reject empty location", func(t *testing.T) {
		mockCache := mocks.NewMockSemanticCache(t)
		mockGenerator := mocks.NewMockItineraryGenerator(t)

		planner := domain.NewPlannerService(mockCache, mockGenerator, domain.NewCostCalculator(), nil)

		query := domain.NewTripQuery("   ", nil, 2, domain.Preferences{})
		result, err := planner.PlanTrip(context.Background(), query)

		require.Error(t, err)
		require.Nil(t, result)
		require.Contains(t, err.Error(), "location cannot be empty")
	})

	t.Run("should reject non-positive duration", func(t *testing.T) {
		mockCache := mocks.NewMockSemanticCache(t)
		mockGenerator := mocks.NewMockItineraryGenerator(t)

		planner := domain.NewPlannerService(mockCache, mockGenerator, domain.NewCostCalculator(), nil)

		query := domain.NewTripQuery("Paris", nil, 0, domain.Preferences{})
		result, err := planner.PlanTrip(context.Background(), query)

		require.Error(t, err)
		require.Nil(t, result)
		require.Contains(t, err.Error(), "duration must be at least one day")
	})
}
