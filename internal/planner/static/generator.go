// Package static provides an offline itinerary generator that builds
// deterministic day plans from the query fields alone. It implements the
// domain.ItineraryGenerator interface without making external API calls,
// serving development setups and tests, and acting as the fallback when
// no OpenAI key is configured.
package static

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/itineradev/itinera/internal/domain"
	"github.com/itineradev/itinera/internal/observability"
)

const generatorName = "static"

// Time slots filled on each planned day, in order.
var slotTimes = []string{"09:00", "13:00", "16:00"}

// Categories assumed when the query names none.
var defaultCategories = []string{"attractions", "dining"}

// Rate assumed for categories missing from the price guide.
var fallbackRate = domain.ActivityRate{AverageCost: 20, TypicalDuration: "2 hours"}

// Generator implements the domain.ItineraryGenerator interface with
// deterministic offline plans. Costs come from the price guide scaled to
// the query's budget tier.
type Generator struct {
	guide domain.PriceGuide
}

// NewGenerator creates a new static generator.
func NewGenerator(guide domain.PriceGuide) *Generator {
	return &Generator{
		guide: guide,
	}
}

// Generate builds a deterministic itinerary for the query. The same
// query fields always produce the same plan.
func (g *Generator) Generate(ctx context.Context, query *domain.TripQuery) (*domain.ItineraryResponse, error) {
	if query == nil {
		return nil, errors.New("query cannot be nil")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("building static itinerary",
		observability.Int("duration_days", query.DurationDays))

	categories := domain.NormalizeTags(query.Categories)
	if len(categories) == 0 {
		categories = defaultCategories
	}

	location := domain.NormalizeLocation(query.Location)
	costFactor := query.Preferences.Budget.CostFactor()

	days := make(map[string][]domain.Activity, query.DurationDays)
	for day := 1; day <= query.DurationDays; day++ {
		activities := make([]domain.Activity, 0, len(slotTimes))
		for slot, startTime := range slotTimes {
			category := categories[(day+slot)%len(categories)]
			rate := g.rateFor(ctx, category)

			activities = append(activities, domain.Activity{
				Place:       fmt.Sprintf("%s stop %d", titleCase(category), slot+1),
				StartTime:   startTime,
				Description: g.describe(query, category, day),
				Duration:    rate.TypicalDuration,
				Cost:        roundCents(rate.AverageCost * costFactor),
				Address:     fmt.Sprintf("%d High Street, %s", 100+day*10+slot, titleCase(location)),
				Coordinates: pseudoCoordinates(fmt.Sprintf("%s/%d/%d", location, day, slot)),
			})
		}
		days[fmt.Sprintf("Day %d", day)] = activities
	}

	return &domain.ItineraryResponse{
		ResponseID:  query.QueryID,
		QueryID:     query.QueryID,
		Itinerary:   domain.StructuredItinerary(days),
		GeneratedAt: time.Now(),
		CacheHit:    false,
	}, nil
}

// Name returns the generator identifier.
func (g *Generator) Name() string {
	return generatorName
}

// rateFor consults the price guide, falling back to a flat default so an
// unseeded guide never blocks generation.
func (g *Generator) rateFor(ctx context.Context, category string) domain.ActivityRate {
	if g.guide == nil {
		return fallbackRate
	}

	rate, err := g.guide.RateFor(ctx, category)
	if err != nil {
		return fallbackRate
	}
	return rate
}

// describe renders the activity description, folding in the dietary and
// accessibility constraints the plan honours.
func (g *Generator) describe(query *domain.TripQuery, category string, day int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Recommended %s option for day %d in %s.", category, day, domain.NormalizeLocation(query.Location))

	if isDining(category) {
		if dietary := domain.NormalizeTags(query.Preferences.Dietary); len(dietary) > 0 {
			fmt.Fprintf(&b, " Menu options for: %s.", strings.Join(dietary, ", "))
		}
	}

	if query.Preferences.Accessibility {
		b.WriteString(" Step-free access.")
	}

	return b.String()
}

func isDining(category string) bool {
	return category == "dining" || category == "food" || category == "restaurants"
}

// pseudoCoordinates derives stable fake coordinates from a seed so that
// repeated generations of the same plan agree with each other.
func pseudoCoordinates(seed string) domain.Coordinates {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	v := h.Sum32()

	return domain.Coordinates{
		Lat: float64(v%18000)/100 - 90,
		Lng: float64(v/18000%36000)/100 - 180,
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func roundCents(amount float64) float64 {
	return float64(int(amount*100+0.5)) / 100
}
