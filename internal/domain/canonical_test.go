package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/itineradev/itinera/internal/domain"
)

func TestCanonicalQueryText_Format(t *testing.T) {
	query := &domain.TripQuery{
		Location:     "  New   York ",
		Categories:   []string{"Food", "MUSEUMS", "food"},
		DurationDays: 4,
		Preferences: domain.Preferences{
			Budget:        domain.BudgetLuxury,
			Dietary:       []string{"Vegan"},
			Accessibility: true,
		},
	}

	text := domain.CanonicalQueryText(query)

	require.Equal(t,
		"location: new york | categories: food,museums | duration: 4 days | dietary: vegan | "+
			"budget: luxury | accessible: true | trip: 4-day food+museums trip (luxury budget)",
		text)
}

func TestCanonicalQueryText_EmptySets(t *testing.T) {
	query := &domain.TripQuery{Location: "Lisbon", DurationDays: 2}

	text := domain.CanonicalQueryText(query)

	require.Equal(t,
		"location: lisbon | categories: none | duration: 2 days | dietary: none | "+
			"budget: any | accessible: false | trip: 2-day general trip (any budget)",
		text)
}

func TestCanonicalQueryText_Deterministic(t *testing.T) {
	a := &domain.TripQuery{
		Location:     "Rome",
		Categories:   []string{"art", "food", "history"},
		DurationDays: 5,
		Preferences:  domain.Preferences{Dietary: []string{"kosher", "vegetarian"}},
	}
	b := &domain.TripQuery{
		Location:     "rome",
		Categories:   []string{"History", "FOOD", "art"},
		DurationDays: 5,
		Preferences:  domain.Preferences{Dietary: []string{"Vegetarian", "Kosher"}},
	}

	require.Equal(t, domain.CanonicalQueryText(a), domain.CanonicalQueryText(b))
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "trims lowercases and sorts",
			in:   []string{" Museums ", "FOOD"},
			want: []string{"food", "museums"},
		},
		{
			name: "drops duplicates and empties",
			in:   []string{"food", "Food", "", "  "},
			want: []string{"food"},
		},
		{
			name: "nil input yields empty slice",
			in:   nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, domain.NormalizeTags(tt.in))
		})
	}
}

func TestNormalizeLocation(t *testing.T) {
	require.Equal(t, "new york", domain.NormalizeLocation("  New    York  "))
	require.Equal(t, "paris", domain.NormalizeLocation("PARIS"))
	require.Equal(t, "", domain.NormalizeLocation("   "))
}
