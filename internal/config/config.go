package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	embeddingopenai "github.com/itineradev/itinera/internal/embedding/openai"
	planneropenai "github.com/itineradev/itinera/internal/planner/openai"
)

// Config represents the itinera service configuration.
type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Metrics   MetricsConfig
	Planner   PlannerConfig
	Embedding embeddingopenai.Config
	OpenAI    planneropenai.Config
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int `env:"SERVER_PORT"             envDefault:"8080"`
	ReadTimeout     int `env:"SERVER_READ_TIMEOUT"     envDefault:"30"`
	WriteTimeout    int `env:"SERVER_WRITE_TIMEOUT"    envDefault:"30"`
	ShutdownTimeout int `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// RedisConfig contains connection settings for the Redis backend shared
// by the vector index, the document store and the metric recorders.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB"       envDefault:"0"`
}

// CacheConfig tunes the semantic cache engine.
type CacheConfig struct {
	SimilarityThreshold  float64 `env:"CACHE_SIMILARITY_THRESHOLD"   envDefault:"0.95"`
	TTLSeconds           int     `env:"CACHE_TTL_SECONDS"            envDefault:"3600"`
	CategoryOverlapMin   float64 `env:"CACHE_CATEGORY_OVERLAP_MIN"   envDefault:"0.6"`
	NeighborCount        int     `env:"CACHE_NEIGHBOR_COUNT"         envDefault:"10"`
	IndexName            string  `env:"CACHE_INDEX_NAME"             envDefault:"idx:itinera_queries"`
	EmbeddingDimension   int     `env:"CACHE_EMBEDDING_DIMENSION"    envDefault:"1536"`
	StatsWindowSeconds   int     `env:"CACHE_STATS_WINDOW_SECONDS"   envDefault:"3600"`
	SweepIntervalSeconds int     `env:"CACHE_SWEEP_INTERVAL_SECONDS" envDefault:"300"`
}

// MetricsConfig tunes the metric recorder backends.
type MetricsConfig struct {
	RetentionSeconds   int `env:"METRICS_RETENTION_SECONDS"    envDefault:"86400"`
	FallbackMaxEntries int `env:"METRICS_FALLBACK_MAX_ENTRIES" envDefault:"2048"`
	FallbackTTLSeconds int `env:"METRICS_FALLBACK_TTL_SECONDS" envDefault:"1800"`
}

// PlannerConfig selects the itinerary generator.
type PlannerConfig struct {
	// Provider names the wanted generator; "auto" prefers openai when
	// configured and falls back to the static generator otherwise.
	Provider string `env:"PLANNER_PROVIDER" envDefault:"auto"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*RedisConfig
	*CacheConfig
	*MetricsConfig
	*PlannerConfig
	Embedding *embeddingopenai.Config
	OpenAI    *planneropenai.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Server,
		&cfg.CORS,
		&cfg.Redis,
		&cfg.Cache,
		&cfg.Metrics,
		&cfg.Planner,
		&cfg.Embedding,
		&cfg.OpenAI,
	}
}
