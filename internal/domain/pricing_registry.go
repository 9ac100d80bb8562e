package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// InMemoryPriceGuide stores activity rates in memory.
type InMemoryPriceGuide struct {
	mu    sync.RWMutex
	rates map[string]ActivityRate
}

// NewInMemoryPriceGuide creates a new in-memory price guide.
func NewInMemoryPriceGuide() *InMemoryPriceGuide {
	return &InMemoryPriceGuide{
		mu:    sync.RWMutex{},
		rates: make(map[string]ActivityRate),
	}
}

// RateFor retrieves the rate for a category.
func (g *InMemoryPriceGuide) RateFor(_ context.Context, category string) (ActivityRate, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rate, exists := g.rates[category]
	if !exists {
		return ActivityRate{}, fmt.Errorf("rate not found for category: %s", category)
	}

	return rate, nil
}

// RegisterRate adds or replaces the rate for a category.
func (g *InMemoryPriceGuide) RegisterRate(_ context.Context, category string, rate ActivityRate) error {
	if category == "" {
		return errors.New("category cannot be empty")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.rates[category] = rate
	return nil
}
