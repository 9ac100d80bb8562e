package routing

import (
	"context"
	"errors"
	"fmt"

	"github.com/itineradev/itinera/internal/domain"
)

// RouteAuto lets the router choose the best available generator.
const RouteAuto = "auto"

// Generators tried in order when routing automatically.
var autoPreference = []string{"openai", "static"}

// SimpleRouter implements basic generator selection logic.
type SimpleRouter struct {
	registry domain.GeneratorRegistry
}

// NewRouter creates a new router.
func NewRouter(registry domain.GeneratorRegistry) *SimpleRouter {
	return &SimpleRouter{
		registry: registry,
	}
}

// Route selects a generator by name. A concrete preference must be
// registered; "auto" or an empty preference picks the best available
// generator, trying the LLM-backed one before the offline fallback.
func (r *SimpleRouter) Route(ctx context.Context, req *domain.RouteRequest) (string, error) {
	if req == nil {
		return "", errors.New("route request cannot be nil")
	}

	if req.Preference != "" && req.Preference != RouteAuto {
		if _, err := r.registry.Get(ctx, req.Preference); err != nil {
			return "", fmt.Errorf("preferred generator unavailable: %w", err)
		}
		return req.Preference, nil
	}

	names, err := r.registry.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list generators: %w", err)
	}

	if len(names) == 0 {
		return "", errors.New("no generators available")
	}

	registered := make(map[string]struct{}, len(names))
	for _, name := range names {
		registered[name] = struct{}{}
	}

	for _, name := range autoPreference {
		if _, ok := registered[name]; ok {
			return name, nil
		}
	}

	return names[0], nil
}
