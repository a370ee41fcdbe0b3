package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/shreegen/internal/config"
	"github.com/davidbz/shreegen/internal/domain"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 200, cfg.Server.WriteTimeout)
		require.Equal(t, "info", cfg.Log.Level)
		require.Empty(t, cfg.Admin.Token)

		require.Equal(t, config.StoreDriverMemory, cfg.Store.Driver)
		require.Equal(t, "shreegen", cfg.Store.KeyPrefix)
		require.Equal(t, 1000, cfg.Store.AuditLimit)
		require.True(t, cfg.Store.SeedDirect)

		require.Equal(t, 60*time.Second, cfg.Router.AttemptTimeout)
		require.Equal(t, 3*time.Minute, cfg.Router.RequestTimeout)
		require.Equal(t, "google", cfg.Router.DefaultVendor)
		require.Equal(t, "gemini-3-flash-preview", cfg.Router.DefaultModel)
		require.InDelta(t, 0.7, cfg.Router.Temperature, 1e-9)

		require.Equal(t, 60, cfg.OpenAI.Timeout)
		require.Equal(t, 60, cfg.XAI.Timeout)
		require.Equal(t, int64(4096), cfg.Anthropic.MaxTokens)
		require.Equal(t, int64(24000), cfg.Anthropic.ThinkingBudget)
		require.Equal(t, int32(24000), cfg.Gemini.ThinkingBudget)
		require.Equal(t, "https://api.{gateway}.com/v1", cfg.Aggregator.URLPattern)
		require.False(t, cfg.Echo.Enabled)
		require.Equal(t, 100, cfg.Telemetry.AttemptHistory)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("OPENAI_BASE_URL", "https://test.openai.com/v1")
		t.Setenv("XAI_BASE_URL", "https://api.x.ai/v1")
		t.Setenv("XAI_TIMEOUT", "30")
		t.Setenv("ROUTER_CATEGORIES", "fast,Deep Research")
		t.Setenv("ROUTER_DEFAULT_MODELS", "research=gemini-2.5-pro")
		t.Setenv("ROUTER_ATTEMPT_TIMEOUT", "15s")
		t.Setenv("AGGREGATOR_BASE_URLS", "acme=https://llm.acme.dev/v1")

		cfg := config.Load()

		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, "https://test.openai.com/v1", cfg.OpenAI.BaseURL)
		require.Equal(t, "https://api.x.ai/v1", cfg.XAI.BaseURL)
		require.Equal(t, 30, cfg.XAI.Timeout)
		require.Equal(t, 60, cfg.OpenAI.Timeout)
		require.Equal(t, 15*time.Second, cfg.Router.AttemptTimeout)
		require.Equal(t, map[string]string{"acme": "https://llm.acme.dev/v1"}, cfg.Aggregator.BaseURLs)

		categories := cfg.Router.CategorySet()
		_, err := categories.Parse("research")
		require.NoError(t, err)
		_, err = categories.Parse("thinking")
		require.ErrorIs(t, err, domain.ErrInvalidCategory)
	})
}

func TestParse(t *testing.T) {
	t.Run("should require an encryption key for the redis store", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("STORE_DRIVER", "redis")

		_, err := config.Parse()

		require.ErrorContains(t, err, "STORE_ENCRYPTION_KEY")
	})

	t.Run("should accept the redis store with a key", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("STORE_DRIVER", "redis")
		t.Setenv("STORE_ENCRYPTION_KEY", "correct horse battery staple")

		cfg, err := config.Parse()

		require.NoError(t, err)
		require.Equal(t, config.StoreDriverRedis, cfg.Store.Driver)
	})

	t.Run("should reject unknown store drivers", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("STORE_DRIVER", "sqlite")

		_, err := config.Parse()

		require.ErrorContains(t, err, "sqlite")
	})

	t.Run("should reject a request deadline outliving the write timeout", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("SERVER_WRITE_TIMEOUT", "120")
		t.Setenv("ROUTER_REQUEST_TIMEOUT", "3m")

		_, err := config.Parse()

		require.ErrorContains(t, err, "ROUTER_REQUEST_TIMEOUT")
	})

	t.Run("should reject an unbounded request deadline behind a write timeout", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("ROUTER_REQUEST_TIMEOUT", "0s")

		_, err := config.Parse()

		require.ErrorContains(t, err, "SERVER_WRITE_TIMEOUT")
	})

	t.Run("should accept any request deadline without a write timeout", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("SERVER_WRITE_TIMEOUT", "0")
		t.Setenv("ROUTER_REQUEST_TIMEOUT", "10m")

		cfg, err := config.Parse()

		require.NoError(t, err)
		require.Equal(t, 10*time.Minute, cfg.Router.RequestTimeout)
	})

	t.Run("should reject default models for unknown categories", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("ROUTER_DEFAULT_MODELS", "poetry=gpt-4o")

		_, err := config.Parse()

		require.ErrorIs(t, err, domain.ErrInvalidCategory)
	})
}

func TestRouterConfig_DispatchPolicy(t *testing.T) {
	t.Run("should map router settings onto the dispatch policy", func(t *testing.T) {
		router := config.RouterConfig{
			AttemptTimeout: 10 * time.Second,
			RequestTimeout: time.Minute,
			DefaultVendor:  "google",
			DefaultModel:   "gemini-3-flash-preview",
			DefaultModels:  map[string]string{"Deep Research": "gemini-2.5-pro"},
			DefaultAPIKey:  "AIza-live",
			Temperature:    0.2,
		}

		policy := router.DispatchPolicy()

		require.Equal(t, 10*time.Second, policy.AttemptTimeout)
		require.Equal(t, time.Minute, policy.RequestTimeout)
		require.InDelta(t, 0.2, policy.Temperature, 1e-9)
		require.True(t, policy.Default.Configured())
		require.Equal(t, "gemini-2.5-pro", policy.Default.ModelFor(domain.CategoryResearch))
		require.Equal(t, "gemini-3-flash-preview", policy.Default.ModelFor(domain.CategoryFast))
	})
}

func TestParseDependenciesConfig(t *testing.T) {
	t.Run("should expose pointers into the parsed config", func(t *testing.T) {
		cfg := &config.Config{}
		deps := config.ParseDependenciesConfig(cfg)

		require.Same(t, &cfg.Server, deps.ServerConfig)
		require.Same(t, &cfg.OpenAI, deps.OpenAI)
		require.Same(t, &cfg.XAI, deps.XAI)
		require.NotSame(t, deps.OpenAI, deps.XAI)
	})
}
