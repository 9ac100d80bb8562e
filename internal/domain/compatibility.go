package domain

import "fmt"

// CompatibilityValidator gates cache hits on the hard constraints of a
// trip request. Embedding similarity measures intent; the validator
// verifies the facts a reused itinerary cannot fudge.
type CompatibilityValidator struct {
	categoryOverlapMin float64
}

func NewCompatibilityValidator(categoryOverlapMin float64) *CompatibilityValidator {
	return &CompatibilityValidator{categoryOverlapMin: categoryOverlapMin}
}

// Compatible reports whether an itinerary computed for cached can be
// served for incoming. Duration, budget, dietary restrictions and
// accessibility must match exactly; categories must overlap by at least
// the configured Jaccard ratio unless either side declares none.
// The returned reason is empty on success and names the first failed
// check otherwise.
func (v *CompatibilityValidator) Compatible(cached, incoming *TripQuery) (bool, string) {
	if cached.DurationDays != incoming.DurationDays {
		return false, fmt.Sprintf("duration mismatch: cached %d days, requested %d days",
			cached.DurationDays, incoming.DurationDays)
	}

	cachedBudget := cached.Preferences.Budget.Normalized()
	incomingBudget := incoming.Preferences.Budget.Normalized()
	if cachedBudget != incomingBudget {
		return false, fmt.Sprintf("budget mismatch: cached %s, requested %s", cachedBudget, incomingBudget)
	}

	if !equalTagSets(cached.Preferences.Dietary, incoming.Preferences.Dietary) {
		return false, "dietary restrictions differ"
	}

	if cached.Preferences.Accessibility != incoming.Preferences.Accessibility {
		return false, "accessibility requirement differs"
	}

	cachedCategories := NormalizeTags(cached.Categories)
	incomingCategories := NormalizeTags(incoming.Categories)
	if len(cachedCategories) > 0 && len(incomingCategories) > 0 {
		overlap := jaccard(cachedCategories, incomingCategories)
		if overlap < v.categoryOverlapMin {
			return false, fmt.Sprintf("category overlap %.2f below %.2f", overlap, v.categoryOverlapMin)
		}
	}

	return true, ""
}

// equalTagSets compares two tag slices as sets, ignoring order, case and
// duplicates. Dietary restrictions are binding, so anything short of set
// equality is a mismatch.
func equalTagSets(a, b []string) bool {
	na := NormalizeTags(a)
	nb := NormalizeTags(b)
	if len(na) != len(nb) {
		return false
	}
	for i := range na {
		if na[i] != nb[i] {
			return false
		}
	}
	return true
}

// jaccard computes |a ∩ b| / |a ∪ b| over two normalized tag slices.
func jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}

	set := make(map[string]struct{}, len(a))
	for _, tag := range a {
		set[tag] = struct{}{}
	}

	intersection := 0
	for _, tag := range b {
		if _, ok := set[tag]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 1
	}
	return float64(intersection) / float64(union)
}
