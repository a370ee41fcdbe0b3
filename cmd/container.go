package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/shreegen/internal/catalog"
	"github.com/davidbz/shreegen/internal/config"
	"github.com/davidbz/shreegen/internal/domain"
	httpapi "github.com/davidbz/shreegen/internal/http"
	"github.com/davidbz/shreegen/internal/http/middleware"
	"github.com/davidbz/shreegen/internal/observability"
	"github.com/davidbz/shreegen/internal/provider/aggregator"
	"github.com/davidbz/shreegen/internal/provider/anthropic"
	"github.com/davidbz/shreegen/internal/provider/echo"
	"github.com/davidbz/shreegen/internal/provider/gemini"
	"github.com/davidbz/shreegen/internal/provider/openai"
	"github.com/davidbz/shreegen/internal/provider/registry"
	"github.com/davidbz/shreegen/internal/routing"
	"github.com/davidbz/shreegen/internal/secret"
	"github.com/davidbz/shreegen/internal/store/memory"
	redisstore "github.com/davidbz/shreegen/internal/store/redis"
	"github.com/davidbz/shreegen/internal/telemetry"
)

// providerParams collects every adapter config; the OpenAI-compatible ones are named.
type providerParams struct {
	dig.In

	OpenAI     *openai.Config `name:"openai"`
	XAI        *openai.Config `name:"xai"`
	Anthropic  *anthropic.Config
	Gemini     *gemini.Config
	Aggregator *aggregator.Config
	Echo       *echo.Config
}

func buildContainer() (*dig.Container, error) {
	container := dig.New()

	constructors := []struct {
		name string
		fn   any
	}{
		// Configuration
		{"config", config.Parse},
		{"config dependencies", config.ParseDependenciesConfig},

		// Observability
		{"logger", provideLogger},
		{"metrics registry", provideMetricsRegistry},
		{"metrics gatherer", func(r *prometheus.Registry) prometheus.Gatherer { return r }},
		{"attempt recorder", provideRecorder},
		{"attempt sink", func(r *telemetry.Recorder) domain.AttemptRecorder { return r }},
		{"attempt history", func(r *telemetry.Recorder) httpapi.AttemptHistory { return r }},

		// Registry
		{"registry store", provideStore},
		{"registry service", provideRegistryService},
		{"model registry", func(s *domain.RegistryService) domain.ModelRegistry { return s }},
		{"candidate selector", provideSelector},

		// Providers
		{"provider registry", provideProviders},

		// Domain Services
		{"dispatch policy", func(cfg *config.RouterConfig) domain.DispatchPolicy { return cfg.DispatchPolicy() }},
		{"gateway service", domain.NewGatewayService},

		// HTTP Layer
		{"middleware chain", middleware.BuildMiddlewareChain},
		{"HTTP handler", httpapi.NewHandler},
		{"admin handler", httpapi.NewAdminHandler},
		{"HTTP server", httpapi.NewServer},
	}

	for _, c := range constructors {
		if err := container.Provide(c.fn); err != nil {
			return nil, fmt.Errorf("failed to provide %s: %w", c.name, err)
		}
	}

	return container, nil
}

func provideLogger(cfg *config.LogConfig) (*zap.Logger, error) {
	return observability.InitLogger(cfg.Level, cfg.Development)
}

func provideMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideRecorder(reg *prometheus.Registry, cfg *config.TelemetryConfig) *telemetry.Recorder {
	return telemetry.NewRecorder(reg, cfg.AttemptHistory)
}

// provideStore builds the configured registry store. The logger dependency
// orders logger initialization before any store logging.
func provideStore(cfg *config.StoreConfig, _ *zap.Logger) (domain.RegistryStore, error) {
	switch cfg.Driver {
	case config.StoreDriverRedis:
		sealer, err := secret.NewCipher(cfg.EncryptionKey, cfg.EncryptionSalt)
		if err != nil {
			return nil, fmt.Errorf("failed to create credential cipher: %w", err)
		}

		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}

		return redisstore.NewStore(client, sealer, cfg.KeyPrefix, cfg.AuditLimit)
	default:
		return memory.NewStore(cfg.AuditLimit), nil
	}
}

func provideRegistryService(
	store domain.RegistryStore,
	storeCfg *config.StoreConfig,
	routerCfg *config.RouterConfig,
) (*domain.RegistryService, error) {
	service := domain.NewRegistryService(store, routerCfg.CategorySet())

	if storeCfg.SeedDirect {
		if _, err := service.SeedDirect(context.Background(), catalog.DirectEntries()); err != nil {
			return nil, fmt.Errorf("failed to seed direct catalog: %w", err)
		}
	}

	return service, nil
}

func provideSelector(models domain.ModelRegistry) domain.CandidateSelector {
	return routing.NewSelector(models, routing.NewShuffleRanker())
}

// provideProviders registers every adapter under its targets.
func provideProviders(params providerParams, _ *zap.Logger) (domain.ProviderRegistry, error) {
	ctx := context.Background()
	reg := registry.NewRegistry()

	openaiProvider, err := openai.NewOpenAIProvider(*params.OpenAI)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI provider: %w", err)
	}
	xaiProvider, err := openai.NewXAIProvider(*params.XAI)
	if err != nil {
		return nil, fmt.Errorf("failed to create xAI provider: %w", err)
	}

	providers := []domain.Provider{
		openaiProvider,
		xaiProvider,
		anthropic.NewProvider(*params.Anthropic),
		gemini.NewProvider(*params.Gemini),
		aggregator.NewProvider(*params.Aggregator),
	}
	if params.Echo.Enabled {
		providers = append(providers, echo.NewProvider())
	}

	for _, provider := range providers {
		if err := reg.Register(ctx, provider); err != nil {
			return nil, fmt.Errorf("failed to register %s provider: %w", provider.Name(), err)
		}
	}

	targets, err := reg.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}

	names := make([]string, 0, len(targets))
	for _, target := range targets {
		names = append(names, target.String())
	}
	observability.FromContext(ctx).Info("providers registered", observability.Strings("targets", names))

	return reg, nil
}
