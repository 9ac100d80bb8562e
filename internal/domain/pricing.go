package domain

import "context"

// ActivityRate contains typical cost figures for one activity category.
type ActivityRate struct {
	AverageCost     float64 // USD per activity at a moderate budget
	TypicalDuration string  // usual visit length, e.g. "2 hours"
}

// PriceGuide maintains cost estimates for activity categories. Offline
// generators consult it to attach plausible costs to planned activities.
type PriceGuide interface {
	// RateFor returns the rate registered for a category.
	RateFor(ctx context.Context, category string) (ActivityRate, error)

	// RegisterRate adds or replaces the rate for a category.
	RegisterRate(ctx context.Context, category string, rate ActivityRate) error
}
