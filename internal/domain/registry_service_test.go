package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/shreegen/internal/domain"
	"github.com/davidbz/shreegen/internal/mocks"
	"github.com/davidbz/shreegen/internal/store/memory"
)

func directSeed(id string, enabled bool, usage string) domain.ModelEntry {
	return domain.ModelEntry{
		ID:         id,
		Label:      id,
		Vendor:     "openai",
		Model:      id,
		Category:   domain.CategoryFast,
		Kind:       domain.KindDirect,
		Credential: "sk-...",
		Enabled:    enabled,
		Usage:      usage,
	}
}

func TestRegistryService_AddAggregated(t *testing.T) {
	t.Run("should create an enabled aggregated entry", func(t *testing.T) {
		store := memory.NewStore(100)
		service := domain.NewRegistryService(store, nil)
		ctx := context.Background()

		created, err := service.AddAggregated(ctx, "ops", domain.AggregatedRequest{
			Gateway:    "OpenRouter",
			Model:      "meta-llama/llama-3.1-70b-instruct",
			Credential: "sk-or-v1-0123456789",
			Category:   "Deep Research",
		})

		require.NoError(t, err)
		require.Regexp(t, `^agg-[0-9a-f-]{36}$`, created.ID)
		require.Equal(t, domain.KindAggregated, created.Kind)
		require.Equal(t, domain.CategoryResearch, created.Category)
		require.Equal(t, "OpenRouter", created.Vendor)
		require.Equal(t, "meta-llama/llama-3.1-70b-instruct", created.Label)
		require.Equal(t, "Accessed via OpenRouter aggregator.", created.Description)
		require.True(t, created.Enabled)
		require.Equal(t, domain.AggregatorGateway("openrouter"), created.Target())

		snapshot, err := service.Snapshot(ctx)
		require.NoError(t, err)
		require.Len(t, snapshot.Aggregated, 1)
		require.Equal(t, created.ID, snapshot.Aggregated[0].ID)

		events, err := service.Audit(ctx, 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
		require.Equal(t, domain.AuditCreated, events[0].Action)
		require.Equal(t, "ops", events[0].Actor)
		require.NotContains(t, events[0].CredentialHint, "0123456789")
	})

	t.Run("should reject missing fields", func(t *testing.T) {
		service := domain.NewRegistryService(memory.NewStore(10), nil)

		for name, req := range map[string]domain.AggregatedRequest{
			"gateway":    {Model: "m", Credential: "k", Category: "fast"},
			"model":      {Gateway: "groq", Credential: "k", Category: "fast"},
			"credential": {Gateway: "groq", Model: "m", Credential: "  ", Category: "fast"},
			"category":   {Gateway: "groq", Model: "m", Credential: "k"},
		} {
			t.Run("should reject missing "+name, func(t *testing.T) {
				_, err := service.AddAggregated(context.Background(), "ops", req)
				require.ErrorIs(t, err, domain.ErrInvalidEntry)
			})
		}
	})

	t.Run("should reject an unknown category", func(t *testing.T) {
		service := domain.NewRegistryService(memory.NewStore(10), nil)

		_, err := service.AddAggregated(context.Background(), "ops", domain.AggregatedRequest{
			Gateway: "groq", Model: "llama3", Credential: "gsk_key", Category: "poetry",
		})

		require.ErrorIs(t, err, domain.ErrInvalidCategory)
	})

	t.Run("should surface store failures", func(t *testing.T) {
		store := mocks.NewMockRegistryStore(t)
		store.EXPECT().Put(mock.Anything, mock.Anything).Return(errors.New("disk full"))

		service := domain.NewRegistryService(store, nil)

		_, err := service.AddAggregated(context.Background(), "ops", domain.AggregatedRequest{
			Gateway: "groq", Model: "llama3", Credential: "gsk_key", Category: "fast",
		})

		require.ErrorContains(t, err, "disk full")
	})
}

func TestRegistryService_SeedDirect(t *testing.T) {
	t.Run("should insert missing entries only", func(t *testing.T) {
		store := memory.NewStore(100)
		service := domain.NewRegistryService(store, nil)
		ctx := context.Background()

		seeded, err := service.SeedDirect(ctx, []domain.ModelEntry{directSeed("gpt-4o", true, "")})
		require.NoError(t, err)
		require.Equal(t, 1, seeded)

		_, err = service.SetCredential(ctx, "ops", "gpt-4o", "sk-proj-real-credential")
		require.NoError(t, err)

		seeded, err = service.SeedDirect(ctx, []domain.ModelEntry{
			directSeed("gpt-4o", true, ""),
			directSeed("gpt-4o-mini", true, ""),
		})
		require.NoError(t, err)
		require.Equal(t, 1, seeded)

		stored, err := store.Get(ctx, "gpt-4o")
		require.NoError(t, err)
		require.Equal(t, "sk-proj-real-credential", stored.Credential)
	})

	t.Run("should reject aggregated seed entries", func(t *testing.T) {
		service := domain.NewRegistryService(memory.NewStore(10), nil)

		seed := directSeed("x", true, "")
		seed.Kind = domain.KindAggregated

		_, err := service.SeedDirect(context.Background(), []domain.ModelEntry{seed})
		require.ErrorIs(t, err, domain.ErrInvalidEntry)
	})
}

func TestRegistryService_SetEnabled(t *testing.T) {
	t.Run("should toggle and audit only real changes", func(t *testing.T) {
		service := domain.NewRegistryService(memory.NewStore(100), nil)
		ctx := context.Background()

		_, err := service.SeedDirect(ctx, []domain.ModelEntry{directSeed("gpt-4", false, "")})
		require.NoError(t, err)

		updated, err := service.SetEnabled(ctx, "ops", "gpt-4", true)
		require.NoError(t, err)
		require.True(t, updated.Enabled)

		_, err = service.SetEnabled(ctx, "ops", "gpt-4", true)
		require.NoError(t, err)

		events, err := service.Audit(ctx, 0)
		require.NoError(t, err)
		require.Len(t, events, 2)
		require.Equal(t, domain.AuditEnabled, events[0].Action)
		require.Equal(t, domain.AuditSeeded, events[1].Action)
		require.Equal(t, "system", events[1].Actor)
	})

	t.Run("should return not found for unknown ids", func(t *testing.T) {
		service := domain.NewRegistryService(memory.NewStore(10), nil)

		_, err := service.SetEnabled(context.Background(), "ops", "missing", true)
		require.ErrorIs(t, err, domain.ErrEntryNotFound)
	})
}

func TestRegistryService_SetCredential(t *testing.T) {
	t.Run("should rotate the credential and record only a hint", func(t *testing.T) {
		service := domain.NewRegistryService(memory.NewStore(100), nil)
		ctx := context.Background()

		_, err := service.SeedDirect(ctx, []domain.ModelEntry{directSeed("gpt-4o", true, "")})
		require.NoError(t, err)

		updated, err := service.SetCredential(ctx, "", "gpt-4o", "  sk-proj-abcdefgh12345678  ")
		require.NoError(t, err)
		require.Equal(t, "sk-proj-abcdefgh12345678", updated.Credential)

		events, err := service.Audit(ctx, 1)
		require.NoError(t, err)
		require.Len(t, events, 1)
		require.Equal(t, domain.AuditCredentialRotated, events[0].Action)
		require.Equal(t, "anonymous", events[0].Actor)
		require.Equal(t, "sk-…5678", events[0].CredentialHint)
	})

	t.Run("should reject an empty credential", func(t *testing.T) {
		service := domain.NewRegistryService(memory.NewStore(10), nil)

		_, err := service.SetCredential(context.Background(), "ops", "gpt-4o", " ")
		require.ErrorIs(t, err, domain.ErrInvalidEntry)
	})
}

func TestRegistryService_RemoveAggregated(t *testing.T) {
	t.Run("should delete aggregated entries", func(t *testing.T) {
		service := domain.NewRegistryService(memory.NewStore(100), nil)
		ctx := context.Background()

		created, err := service.AddAggregated(ctx, "ops", domain.AggregatedRequest{
			Gateway: "groq", Model: "llama3-70b", Credential: "gsk_live", Category: "fast",
		})
		require.NoError(t, err)

		require.NoError(t, service.RemoveAggregated(ctx, "ops", created.ID))

		snapshot, err := service.Snapshot(ctx)
		require.NoError(t, err)
		require.Empty(t, snapshot.Aggregated)

		events, err := service.Audit(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, domain.AuditRemoved, events[0].Action)
	})

	t.Run("should refuse to delete direct entries", func(t *testing.T) {
		service := domain.NewRegistryService(memory.NewStore(10), nil)
		ctx := context.Background()

		_, err := service.SeedDirect(ctx, []domain.ModelEntry{directSeed("gpt-4o", true, "")})
		require.NoError(t, err)

		err = service.RemoveAggregated(ctx, "ops", "gpt-4o")
		require.ErrorIs(t, err, domain.ErrDirectEntryNotRemovable)

		snapshot, err := service.Snapshot(ctx)
		require.NoError(t, err)
		require.Len(t, snapshot.Direct, 1)
	})
}

func TestRegistryService_Stats(t *testing.T) {
	t.Run("should count enabled entries and sum their usage", func(t *testing.T) {
		service := domain.NewRegistryService(memory.NewStore(100), nil)
		ctx := context.Background()

		_, err := service.SeedDirect(ctx, []domain.ModelEntry{
			directSeed("a", true, "1.2M tokens"),
			directSeed("b", true, "500K tokens"),
			directSeed("c", false, "5M tokens"),
			directSeed("d", true, "Local"),
		})
		require.NoError(t, err)

		_, err = service.AddAggregated(ctx, "ops", domain.AggregatedRequest{
			Gateway: "groq", Model: "llama3", Credential: "gsk_live", Category: "fast",
		})
		require.NoError(t, err)

		stats, err := service.Stats(ctx)
		require.NoError(t, err)
		require.Equal(t, 3, stats.ActiveDirect)
		require.Equal(t, 1, stats.ActiveAggregated)
		require.Equal(t, 4, stats.TotalActive)
		require.Equal(t, "1.7M", stats.TotalUsage)
	})
}
