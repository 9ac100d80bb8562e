package domain

import (
	"fmt"
	"sort"
	"strings"
)

// CanonicalQueryText builds the deterministic text representation of a
// query used for embedding. Two logically identical queries must always
// yield the same string regardless of input ordering, so the embeddings
// they produce are comparable: tag sets are normalized and sorted, the
// location is whitespace-collapsed, and the whole string is lower-cased.
//
// The trailing trip-type tag repeats duration, categories and budget to
// amplify the weight of those hard constraints in the embedding space.
func CanonicalQueryText(q *TripQuery) string {
	categories := NormalizeTags(q.Categories)
	dietary := NormalizeTags(q.Preferences.Dietary)
	budget := q.Preferences.Budget.Normalized()

	var parts []string

	parts = append(parts, fmt.Sprintf("location: %s", NormalizeLocation(q.Location)))
	parts = append(parts, fmt.Sprintf("categories: %s", joinOrNone(categories, ",")))
	parts = append(parts, fmt.Sprintf("duration: %d days", q.DurationDays))
	parts = append(parts, fmt.Sprintf("dietary: %s", joinOrNone(dietary, ",")))
	parts = append(parts, fmt.Sprintf("budget: %s", budget))
	parts = append(parts, fmt.Sprintf("accessible: %t", q.Preferences.Accessibility))
	parts = append(parts, fmt.Sprintf("trip: %s", tripTypeTag(q.DurationDays, categories, budget)))

	return strings.ToLower(strings.Join(parts, " | "))
}

// NormalizeLocation lower-cases a destination string and collapses runs of
// whitespace. Locations are matched textually, never semantically parsed.
func NormalizeLocation(location string) string {
	return strings.ToLower(strings.Join(strings.Fields(location), " "))
}

// NormalizeTags trims, lower-cases, de-duplicates and sorts a tag set.
// Empty entries are dropped. The result is order-insensitive.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))

	for _, tag := range tags {
		cleaned := strings.ToLower(strings.TrimSpace(tag))
		if cleaned == "" {
			continue
		}
		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}
		normalized = append(normalized, cleaned)
	}

	sort.Strings(normalized)
	return normalized
}

// tripTypeTag derives a compact tag from the dimensions that must match
// exactly (duration, budget) or overlap strongly (categories).
func tripTypeTag(durationDays int, categories []string, budget Budget) string {
	kind := "general"
	if len(categories) > 0 {
		kind = strings.Join(categories, "+")
	}
	return fmt.Sprintf("%d-day %s trip (%s budget)", durationDays, kind, budget)
}

func joinOrNone(values []string, sep string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, sep)
}
