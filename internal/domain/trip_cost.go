package domain

import (
	"math"
	"sort"
)

// CostSummary aggregates the activity costs of an itinerary.
type CostSummary struct {
	Total      float64            `json:"total"`
	PerDay     map[string]float64 `json:"per_day,omitempty"`
	Activities int                `json:"activities"`
}

// CostCalculator derives cost estimates from itinerary activity costs.
type CostCalculator struct{}

// NewCostCalculator creates a new cost calculator.
func NewCostCalculator() *CostCalculator {
	return &CostCalculator{}
}

// Summarize totals activity costs per day and overall. A freeform
// itinerary carries no activity costs and yields a zero summary.
// Amounts are rounded to whole cents.
func (c *CostCalculator) Summarize(itinerary Itinerary) CostSummary {
	summary := CostSummary{}
	if !itinerary.IsStructured() {
		return summary
	}

	summary.PerDay = make(map[string]float64, len(itinerary.Days))
	for day, activities := range itinerary.Days {
		var dayTotal float64
		for _, activity := range activities {
			dayTotal += activity.Cost
			summary.Activities++
		}
		summary.PerDay[day] = roundCents(dayTotal)
		summary.Total += dayTotal
	}
	summary.Total = roundCents(summary.Total)

	return summary
}

// DayNames returns the itinerary's day keys in sorted order, giving
// callers a deterministic iteration order over the plan.
func DayNames(itinerary Itinerary) []string {
	names := make([]string, 0, len(itinerary.Days))
	for day := range itinerary.Days {
		names = append(names, day)
	}
	sort.Strings(names)
	return names
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
