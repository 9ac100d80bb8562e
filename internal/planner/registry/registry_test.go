package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/itineradev/itinera/internal/domain"
	"github.com/itineradev/itinera/internal/planner/registry"
)

// mockGenerator is a mock implementation of domain.ItineraryGenerator for testing.
type mockGenerator struct {
	name string
}

func (m *mockGenerator) Generate(_ context.Context, query *domain.TripQuery) (*domain.ItineraryResponse, error) {
	return &domain.ItineraryResponse{
		ResponseID: query.QueryID,
		QueryID:    query.QueryID,
		Itinerary:  domain.FreeformItinerary("mock plan"),
	}, nil
}

func (m *mockGenerator) Name() string {
	return m.name
}

func TestRegistry_Register(t *testing.T) {
	t.Run("should register generator successfully", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		generator := &mockGenerator{name: "test-generator"}

		err := reg.Register(ctx, generator)
		require.NoError(t, err)

		registered, err := reg.Get(ctx, "test-generator")
		require.NoError(t, err)
		require.NotNil(t, registered)
		require.Equal(t, "test-generator", registered.Name())
	})

	t.Run("should return error when generator is nil", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		err := reg.Register(ctx, nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "generator cannot be nil")
	})

	t.Run("should return error when generator name is empty", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		generator := &mockGenerator{name: ""}

		err := reg.Register(ctx, generator)
		require.Error(t, err)
		require.Contains(t, err.Error(), "generator name cannot be empty")
	})

	t.Run("should return error when generator already registered", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		first := &mockGenerator{name: "test-generator"}
		second := &mockGenerator{name: "test-generator"}

		err := reg.Register(ctx, first)
		require.NoError(t, err)

		err = reg.Register(ctx, second)
		require.Error(t, err)
		require.Contains(t, err.Error(), "already registered")
	})
}

func TestRegistry_Get(t *testing.T) {
	t.Run("should get registered generator", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		generator := &mockGenerator{name: "test-generator"}
		err := reg.Register(ctx, generator)
		require.NoError(t, err)

		retrieved, err := reg.Get(ctx, "test-generator")
		require.NoError(t, err)
		require.NotNil(t, retrieved)
		require.Equal(t, "test-generator", retrieved.Name())
	})

	t.Run("should return error when generator name is empty", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		_, err := reg.Get(ctx, "")
		require.Error(t, err)
		require.Contains(t, err.Error(), "generator name cannot be empty")
	})

	t.Run("should return error when generator not found", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		_, err := reg.Get(ctx, "nonexistent")
		require.Error(t, err)
		require.Contains(t, err.Error(), "not found")
	})
}

func TestRegistry_List(t *testing.T) {
	t.Run("should return empty list when no generators registered", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		generators, err := reg.List(ctx)
		require.NoError(t, err)
		require.NotNil(t, generators)
		require.Empty(t, generators)
	})

	t.Run("should list generators in name order", func(t *testing.T) {
		reg := registry.NewRegistry()
		ctx := context.Background()

		require.NoError(t, reg.Register(ctx, &mockGenerator{name: "static"}))
		require.NoError(t, reg.Register(ctx, &mockGenerator{name: "openai"}))

		generators, err := reg.List(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"openai", "static"}, generators)
	})
}
