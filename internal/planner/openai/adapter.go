// Package openai provides an itinerary generator backed by the OpenAI API
// using the official SDK. It implements the domain.ItineraryGenerator
// interface, prompting the model for a day-by-day JSON plan and falling
// back to the raw text when the output cannot be parsed.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/itineradev/itinera/internal/domain"
	"github.com/itineradev/itinera/internal/observability"
)

const (
	generatorName = "openai"

	// Completion budget for a full multi-day itinerary.
	maxItineraryTokens = 4096

	// Mild creativity: itineraries should vary in wording, not in shape.
	completionTemperature = 0.7
)

const systemPrompt = `You are a travel planner. Respond with a single JSON object and no other text.
The object must have a "days" field mapping day names ("Day 1", "Day 2", ...) to arrays of activities.
Each activity must have: "place", "start_time" (HH:MM), "description", "duration" (e.g. "2 hours"), "cost" (number, USD), "address", and "coordinates" with "lat" and "lng" numbers.`

// Generator implements the domain.ItineraryGenerator interface for OpenAI.
type Generator struct {
	client openai.Client
	model  string
}

// NewGenerator creates a new OpenAI itinerary generator.
func NewGenerator(config Config) (*Generator, error) {
	if config.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	if config.Model == "" {
		config.Model = "gpt-4o-mini"
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	if config.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(config.MaxRetries))
	}

	return &Generator{
		client: openai.NewClient(opts...),
		model:  config.Model,
	}, nil
}

// Generate builds an itinerary for the query. API faults surface as a
// domain.ProviderError; unparseable model output does not, it becomes
// the freeform itinerary variant.
func (g *Generator) Generate(ctx context.Context, query *domain.TripQuery) (*domain.ItineraryResponse, error) {
	if query == nil {
		return nil, errors.New("query cannot be nil")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling OpenAI API for itinerary",
		observability.String("model", g.model))

	//nolint:exhaustruct // OpenAI SDK struct has many optional fields
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(BuildPrompt(query)),
		},
		Temperature: openai.Float(completionTemperature),
		MaxTokens:   openai.Int(maxItineraryTokens),
	})
	if err != nil {
		logger.Error("OpenAI API call failed", observability.Error(err))
		return nil, domain.NewProviderError(generatorName, fmt.Errorf("OpenAI API call failed: %w", err))
	}

	if len(resp.Choices) == 0 {
		return nil, domain.NewProviderError(generatorName, errors.New("no completion returned"))
	}

	content := resp.Choices[0].Message.Content
	itinerary := ParseItinerary(content)

	logger.Debug("OpenAI itinerary generated",
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
		observability.Bool("structured", itinerary.IsStructured()))

	return &domain.ItineraryResponse{
		ResponseID:  query.QueryID,
		QueryID:     query.QueryID,
		Itinerary:   itinerary,
		GeneratedAt: time.Now(),
		CacheHit:    false,
	}, nil
}

// Name returns the generator identifier.
func (g *Generator) Name() string {
	return generatorName
}

// BuildPrompt renders the user prompt for a query. The wording is
// deterministic so prompt changes show up in tests, not in production.
func BuildPrompt(query *domain.TripQuery) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Plan a %d-day trip to %s.\n", query.DurationDays, strings.TrimSpace(query.Location))

	if categories := domain.NormalizeTags(query.Categories); len(categories) > 0 {
		fmt.Fprintf(&b, "Focus on: %s.\n", strings.Join(categories, ", "))
	}

	fmt.Fprintf(&b, "Budget level: %s.\n", query.Preferences.Budget.Normalized())

	if dietary := domain.NormalizeTags(query.Preferences.Dietary); len(dietary) > 0 {
		fmt.Fprintf(&b, "Dietary restrictions: %s.\n", strings.Join(dietary, ", "))
	}

	if query.Preferences.Accessibility {
		b.WriteString("All venues must be wheelchair accessible.\n")
	}

	fmt.Fprintf(&b, "Return exactly %d days.", query.DurationDays)

	return b.String()
}

// ParseItinerary decodes model output into the structured variant. Any
// parse failure yields the freeform variant carrying the raw text; bad
// model output is a quality problem, not an error.
func ParseItinerary(content string) domain.Itinerary {
	raw := extractJSON(content)
	if raw == "" {
		return domain.FreeformItinerary(content)
	}

	var parsed struct {
		Days map[string][]domain.Activity `json:"days"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil || len(parsed.Days) == 0 {
		return domain.FreeformItinerary(content)
	}

	return domain.StructuredItinerary(parsed.Days)
}

// extractJSON trims prose the model may wrap around the JSON object,
// such as markdown fences or a leading sentence.
func extractJSON(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return content[start : end+1]
}
