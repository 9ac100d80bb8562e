package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"go.uber.org/zap"

	cacheredis "github.com/itineradev/itinera/internal/cache/redis"
	"github.com/itineradev/itinera/internal/config"
	"github.com/itineradev/itinera/internal/domain"
	embeddingopenai "github.com/itineradev/itinera/internal/embedding/openai"
	"github.com/itineradev/itinera/internal/httpserver"
	"github.com/itineradev/itinera/internal/httpserver/middleware"
	"github.com/itineradev/itinera/internal/metrics"
	"github.com/itineradev/itinera/internal/observability"
	planneropenai "github.com/itineradev/itinera/internal/planner/openai"
	"github.com/itineradev/itinera/internal/planner/registry"
	"github.com/itineradev/itinera/internal/planner/static"
	"github.com/itineradev/itinera/internal/routing"
)

// ErrGeneratorNotConfigured indicates that a generator is not configured and should be skipped.
var ErrGeneratorNotConfigured = errors.New("generator not configured")

func main() {
	container := buildContainer()

	err := container.Invoke(func(
		server *httpserver.Server,
		cache *domain.SemanticCacheService,
		client *goredis.Client,
		cfg *config.Config,
		logger *zap.Logger,
	) {
		runCtx, cancel := context.WithCancel(context.Background())
		defer cancel()

		cache.StartSweeper(runCtx, time.Duration(cfg.Cache.SweepIntervalSeconds)*time.Second)

		// Graceful shutdown on SIGINT/SIGTERM.
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

		go func() {
			if err := server.Start(); err != nil {
				log.Fatalf("Server failed to start: %v", err)
			}
		}()

		<-quit
		logger.Info("received shutdown signal")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("error during shutdown", zap.Error(err))
		}

		// Stop the expiry sweeper before tearing down storage.
		cancel()

		if err := client.Close(); err != nil {
			logger.Warn("failed to close redis client", zap.Error(err))
		}

		logger.Info("server stopped gracefully")
		_ = logger.Sync()
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(observability.NewEventBus); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}
	if err := container.Provide(func(bus *observability.EventBus) domain.EventPublisher {
		return bus
	}); err != nil {
		log.Fatalf("Failed to provide event publisher: %v", err)
	}

	// Redis client shared by the vector index, document store and metrics
	if err := container.Provide(func(cfg *config.RedisConfig) (*goredis.Client, error) {
		return cacheredis.NewClient(context.Background(), cfg.Addr, cfg.Password, cfg.DB)
	}); err != nil {
		log.Fatalf("Failed to provide redis client: %v", err)
	}

	// Cache storage
	if err := container.Provide(func(client *goredis.Client, cfg *config.CacheConfig) (domain.VectorIndex, error) {
		return cacheredis.NewVectorIndex(client, cfg.IndexName, cfg.EmbeddingDimension)
	}); err != nil {
		log.Fatalf("Failed to provide vector index: %v", err)
	}
	if err := container.Provide(func(client *goredis.Client) domain.DocumentStore {
		return cacheredis.NewDocumentStore(client)
	}); err != nil {
		log.Fatalf("Failed to provide document store: %v", err)
	}

	// Metric recorder: RedisTimeSeries when the server supports it,
	// capped-list fallback otherwise
	if err := container.Provide(func(client *goredis.Client, cfg *config.MetricsConfig) domain.MetricRecorder {
		return metrics.NewRecorder(context.Background(), client, metrics.Options{
			Retention:          time.Duration(cfg.RetentionSeconds) * time.Second,
			FallbackMaxEntries: cfg.FallbackMaxEntries,
			FallbackTTL:        time.Duration(cfg.FallbackTTLSeconds) * time.Second,
		})
	}); err != nil {
		log.Fatalf("Failed to provide metric recorder: %v", err)
	}

	// Embedding generator
	if err := container.Provide(func(cfg *embeddingopenai.Config) (domain.EmbeddingGenerator, error) {
		return embeddingopenai.NewGenerator(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide embedding generator: %v", err)
	}

	// Generator Registry
	if err := container.Provide(func() domain.GeneratorRegistry {
		return registry.NewRegistry()
	}); err != nil {
		log.Fatalf("Failed to provide generator registry: %v", err)
	}

	// Activity price guide backing the static generator
	if err := container.Provide(func() (domain.PriceGuide, error) {
		guide := domain.NewInMemoryPriceGuide()
		if err := static.RegisterRates(context.Background(), guide); err != nil {
			return nil, fmt.Errorf("failed to seed price guide: %w", err)
		}
		return guide, nil
	}); err != nil {
		log.Fatalf("Failed to provide price guide: %v", err)
	}

	// Static generator (always available)
	if err := container.Provide(static.NewGenerator); err != nil {
		log.Fatalf("Failed to provide static generator: %v", err)
	}

	// OpenAI generator (optional: requires an API key)
	if err := container.Provide(func(cfg *planneropenai.Config) (*planneropenai.Generator, error) {
		if cfg.APIKey == "" {
			return nil, ErrGeneratorNotConfigured
		}
		return planneropenai.NewGenerator(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide OpenAI generator: %v", err)
	}

	// Register the static generator (invoked for side effects)
	if err := container.Invoke(func(reg domain.GeneratorRegistry, generator *static.Generator) error {
		if err := reg.Register(context.Background(), generator); err != nil {
			return fmt.Errorf("failed to register static generator: %w", err)
		}
		return nil
	}); err != nil {
		log.Fatalf("Failed to register static generator: %v", err)
	}

	// Register OpenAI if enabled
	if err := container.Invoke(func(reg domain.GeneratorRegistry, generator *planneropenai.Generator) error {
		if err := reg.Register(context.Background(), generator); err != nil {
			return fmt.Errorf("failed to register OpenAI generator: %w", err)
		}
		return nil
	}); err != nil {
		// Ignore ErrGeneratorNotConfigured as it's expected for optional generators
		if !errors.Is(err, ErrGeneratorNotConfigured) {
			log.Fatalf("Failed to register OpenAI generator: %v", err)
		}
	}

	// Routing
	if err := container.Provide(routing.NewRouter); err != nil {
		log.Fatalf("Failed to provide router: %v", err)
	}

	// Serving generator, selected once at startup per configured preference
	if err := container.Provide(func(
		router *routing.SimpleRouter,
		reg domain.GeneratorRegistry,
		cfg *config.PlannerConfig,
	) (domain.ItineraryGenerator, error) {
		ctx := context.Background()
		name, err := router.Route(ctx, &domain.RouteRequest{Preference: cfg.Provider})
		if err != nil {
			return nil, fmt.Errorf("failed to select generator: %w", err)
		}
		return reg.Get(ctx, name)
	}); err != nil {
		log.Fatalf("Failed to provide itinerary generator: %v", err)
	}

	// Domain Services
	if err := container.Provide(func(cfg *config.CacheConfig) *domain.CompatibilityValidator {
		return domain.NewCompatibilityValidator(cfg.CategoryOverlapMin)
	}); err != nil {
		log.Fatalf("Failed to provide compatibility validator: %v", err)
	}
	if err := container.Provide(func(
		embeddingGen domain.EmbeddingGenerator,
		vectorIndex domain.VectorIndex,
		documents domain.DocumentStore,
		recorder domain.MetricRecorder,
		validator *domain.CompatibilityValidator,
		cfg *config.CacheConfig,
	) *domain.SemanticCacheService {
		return domain.NewSemanticCacheService(embeddingGen, vectorIndex, documents, recorder, validator,
			domain.CacheOptions{
				SimilarityThreshold: cfg.SimilarityThreshold,
				TTL:                 time.Duration(cfg.TTLSeconds) * time.Second,
				NeighborCount:       cfg.NeighborCount,
				StatsWindow:         time.Duration(cfg.StatsWindowSeconds) * time.Second,
			})
	}); err != nil {
		log.Fatalf("Failed to provide semantic cache: %v", err)
	}
	if err := container.Provide(func(cache *domain.SemanticCacheService) domain.SemanticCache {
		return cache
	}); err != nil {
		log.Fatalf("Failed to provide semantic cache binding: %v", err)
	}
	if err := container.Provide(domain.NewCostCalculator); err != nil {
		log.Fatalf("Failed to provide cost calculator: %v", err)
	}
	if err := container.Provide(domain.NewPlannerService); err != nil {
		log.Fatalf("Failed to provide planner service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(httpserver.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(httpserver.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
