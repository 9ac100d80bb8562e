package static

import (
	"context"
	"fmt"

	"github.com/itineradev/itinera/internal/domain"
)

// Baseline per-activity rates at a moderate budget.
var defaultRates = map[string]domain.ActivityRate{
	"attractions": {AverageCost: 25, TypicalDuration: "2 hours"},
	"museums":     {AverageCost: 18, TypicalDuration: "3 hours"},
	"dining":      {AverageCost: 35, TypicalDuration: "1.5 hours"},
	"food":        {AverageCost: 30, TypicalDuration: "1.5 hours"},
	"nightlife":   {AverageCost: 40, TypicalDuration: "3 hours"},
	"shopping":    {AverageCost: 50, TypicalDuration: "2 hours"},
	"nature":      {AverageCost: 10, TypicalDuration: "4 hours"},
	"culture":     {AverageCost: 15, TypicalDuration: "2 hours"},
}

// RegisterRates registers the baseline category rates with the guide.
func RegisterRates(ctx context.Context, guide domain.PriceGuide) error {
	for category, rate := range defaultRates {
		if err := guide.RegisterRate(ctx, category, rate); err != nil {
			return fmt.Errorf("failed to register %s rate: %w", category, err)
		}
	}
	return nil
}
