package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/itineradev/itinera/internal/domain"
)

// Registry implements the GeneratorRegistry interface.
type Registry struct {
	mu         sync.RWMutex
	generators map[string]domain.ItineraryGenerator
}

// NewRegistry creates a new generator registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:         sync.RWMutex{},
		generators: make(map[string]domain.ItineraryGenerator),
	}
}

// Register adds a generator to the registry.
func (r *Registry) Register(_ context.Context, generator domain.ItineraryGenerator) error {
	if generator == nil {
		return errors.New("generator cannot be nil")
	}

	name := generator.Name()
	if name == "" {
		return errors.New("generator name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.generators[name]; exists {
		return fmt.Errorf("generator %s already registered", name)
	}

	r.generators[name] = generator

	return nil
}

// Get retrieves a generator by name.
func (r *Registry) Get(_ context.Context, generatorName string) (domain.ItineraryGenerator, error) {
	if generatorName == "" {
		return nil, errors.New("generator name cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	generator, exists := r.generators[generatorName]
	if !exists {
		return nil, fmt.Errorf("generator %s not found", generatorName)
	}

	return generator, nil
}

// List returns all available generators in name order.
func (r *Registry) List(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}
