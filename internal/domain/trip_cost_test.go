package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/itineradev/itinera/internal/domain"
)

func TestCostCalculator_Summarize(t *testing.T) {
	calculator := domain.NewCostCalculator()

	tests := []struct {
		name           string
		itinerary      domain.Itinerary
		wantTotal      float64
		wantActivities int
	}{
		{
			name: "sums activity costs across days",
			itinerary: domain.StructuredItinerary(map[string][]domain.Activity{
				"Day 1": {{Place: "Louvre", Cost: 22}, {Place: "Bistro", Cost: 35}},
				"Day 2": {{Place: "Versailles", Cost: 21.5}},
			}),
			wantTotal:      78.5,
			wantActivities: 3,
		},
		{
			name:           "freeform itinerary yields zero summary",
			itinerary:      domain.FreeformItinerary("Day 1: wander the old town."),
			wantTotal:      0,
			wantActivities: 0,
		},
		{
			name: "free activities count but cost nothing",
			itinerary: domain.StructuredItinerary(map[string][]domain.Activity{
				"Day 1": {{Place: "City park"}, {Place: "Harbour walk"}},
			}),
			wantTotal:      0,
			wantActivities: 2,
		},
		{
			name: "totals are rounded to cents",
			itinerary: domain.StructuredItinerary(map[string][]domain.Activity{
				"Day 1": {{Place: "Tour", Cost: 10.555}, {Place: "Lunch", Cost: 20.115}},
			}),
			wantTotal:      30.67,
			wantActivities: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := calculator.Summarize(tt.itinerary)

			require.InDelta(t, tt.wantTotal, summary.Total, 0.001)
			require.Equal(t, tt.wantActivities, summary.Activities)
		})
	}
}

func TestCostCalculator_Summarize_PerDay(t *testing.T) {
	calculator := domain.NewCostCalculator()

	summary := calculator.Summarize(domain.StructuredItinerary(map[string][]domain.Activity{
		"Day 1": {{Place: "Louvre", Cost: 22}},
		"Day 2": {{Place: "Versailles", Cost: 21.5}, {Place: "Dinner", Cost: 40}},
	}))

	require.Len(t, summary.PerDay, 2)
	require.InDelta(t, 22.0, summary.PerDay["Day 1"], 0.001)
	require.InDelta(t, 61.5, summary.PerDay["Day 2"], 0.001)
}

func TestDayNames_Sorted(t *testing.T) {
	itinerary := domain.StructuredItinerary(map[string][]domain.Activity{
		"Day 3": {}, "Day 1": {}, "Day 2": {},
	})

	require.Equal(t, []string{"Day 1", "Day 2", "Day 3"}, domain.DayNames(itinerary))
}

func TestDayNames_Freeform(t *testing.T) {
	require.Empty(t, domain.DayNames(domain.FreeformItinerary("no structure")))
}
