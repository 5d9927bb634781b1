package main

import (
	"context"
	"log"
	"os"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/ramalMr/cocktail-advisor/internal/cache"
	cacheredis "github.com/ramalMr/cocktail-advisor/internal/cache/redis"
	"github.com/ramalMr/cocktail-advisor/internal/config"
	"github.com/ramalMr/cocktail-advisor/internal/corpus"
	"github.com/ramalMr/cocktail-advisor/internal/domain"
	embeddingecho "github.com/ramalMr/cocktail-advisor/internal/embedding/echo"
	embeddingopenai "github.com/ramalMr/cocktail-advisor/internal/embedding/openai"
	"github.com/ramalMr/cocktail-advisor/internal/embedding/retry"
	"github.com/ramalMr/cocktail-advisor/internal/http"
	"github.com/ramalMr/cocktail-advisor/internal/http/middleware"
	"github.com/ramalMr/cocktail-advisor/internal/index"
	"github.com/ramalMr/cocktail-advisor/internal/observability"
	"github.com/ramalMr/cocktail-advisor/internal/prefs"
	providerecho "github.com/ramalMr/cocktail-advisor/internal/provider/echo"
	provideropenai "github.com/ramalMr/cocktail-advisor/internal/provider/openai"
)

func main() {
	container := buildContainer()

	// Initialize the global logger before anything logs.
	if err := container.Invoke(func(_ *zap.Logger) {}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Load the cocktail corpus before serving traffic.
	err := container.Invoke(func(service *domain.CorpusService, cfg *corpus.Config) error {
		ctx := context.Background()

		if _, statErr := os.Stat(cfg.Path); statErr != nil {
			observability.FromContext(ctx).Warn("corpus file not found, starting with an empty index",
				observability.String("path", cfg.Path))
			return nil
		}

		cocktails, readErr := corpus.ReadFile(cfg.Path)
		if readErr != nil {
			return readErr
		}
		return service.LoadCorpus(ctx, cocktails)
	})
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}

	err = container.Invoke(func(server *http.Server) {
		if err := server.Start(); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

//nolint:funlen // container wiring is intentionally linear
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

	// Redis-backed persistence; disabled when no address is configured.
	if err := container.Provide(func(cfg *config.RedisConfig) *goredis.Client {
		if cfg.Addr == "" {
			return nil
		}
		return goredis.NewClient(&goredis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}); err != nil {
		log.Fatalf("Failed to provide redis client: %v", err)
	}

	if err := container.Provide(func(client *goredis.Client) domain.CacheStore {
		if client == nil {
			return nil
		}
		return cacheredis.NewStore(client)
	}); err != nil {
		log.Fatalf("Failed to provide cache store: %v", err)
	}

	if err := container.Provide(func(client *goredis.Client) domain.PreferenceStore {
		if client == nil {
			return prefs.NewMemory()
		}
		return cacheredis.NewPreferenceStore(client)
	}); err != nil {
		log.Fatalf("Failed to provide preference store: %v", err)
	}

	// Embedding generator: OpenAI when configured, deterministic echo otherwise.
	if err := container.Provide(func(
		embedCfg *embeddingopenai.Config,
		retryCfg *retry.Config,
	) (domain.EmbeddingGenerator, error) {
		if embedCfg.APIKey == "" {
			return embeddingecho.NewGenerator(0), nil
		}

		generator, err := embeddingopenai.NewGenerator(*embedCfg)
		if err != nil {
			return nil, err
		}
		return retry.NewGenerator(generator, *retryCfg), nil
	}); err != nil {
		log.Fatalf("Failed to provide embedding generator: %v", err)
	}

	// Reply generator: OpenAI when configured, echo otherwise.
	if err := container.Provide(func(chatCfg *provideropenai.Config) (domain.ReplyGenerator, error) {
		if chatCfg.APIKey == "" {
			return providerecho.NewProvider(), nil
		}
		return provideropenai.NewProvider(*chatCfg)
	}); err != nil {
		log.Fatalf("Failed to provide reply generator: %v", err)
	}

	// Vector index sized by the embedding dimension.
	if err := container.Provide(func(embedder domain.EmbeddingGenerator) domain.VectorIndex {
		return index.NewMemory(embedder.Dimension())
	}); err != nil {
		log.Fatalf("Failed to provide vector index: %v", err)
	}

	// Compute cache with single-flight deduplication.
	if err := container.Provide(func(store domain.CacheStore, cfg *cache.Config) domain.ComputeCache {
		return cache.NewSingleFlight(store, cfg)
	}); err != nil {
		log.Fatalf("Failed to provide compute cache: %v", err)
	}

	// Domain services
	if err := container.Provide(func(advisorCfg *domain.AdvisorConfig) *domain.PreferenceFilter {
		return domain.NewPreferenceFilter(advisorCfg.BoostWeight)
	}); err != nil {
		log.Fatalf("Failed to provide preference filter: %v", err)
	}
	if err := container.Provide(domain.NewCorpusService); err != nil {
		log.Fatalf("Failed to provide corpus service: %v", err)
	}
	if err := container.Provide(domain.NewAdvisorService); err != nil {
		log.Fatalf("Failed to provide advisor service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(http.NewSessionStore); err != nil {
		log.Fatalf("Failed to provide session store: %v", err)
	}
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
