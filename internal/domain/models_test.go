package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/shreegen/internal/domain"
)

func TestNormalizeCategory(t *testing.T) {
	cases := map[string]domain.Category{
		"Fast":           domain.CategoryFast,
		" thinking ":     domain.CategoryThinking,
		"Deep Reasoning": domain.CategoryReasoning,
		"Deep Research":  domain.CategoryResearch,
		"Img Generation": domain.CategoryImageGeneration,
		"image":          domain.CategoryImageGeneration,
		"Code   Review":  domain.Category("code-review"),
		"":               domain.Category(""),
	}

	for label, expected := range cases {
		t.Run("should normalize "+label, func(t *testing.T) {
			require.Equal(t, expected, domain.NormalizeCategory(label))
		})
	}
}

func TestCategorySet(t *testing.T) {
	t.Run("should fall back to the default categories", func(t *testing.T) {
		set := domain.NewCategorySet(nil)

		for _, category := range domain.DefaultCategories() {
			parsed, err := set.Parse(string(category))
			require.NoError(t, err)
			require.Equal(t, category, parsed)
		}
	})

	t.Run("should accept aliases of configured categories", func(t *testing.T) {
		set := domain.NewCategorySet([]string{"fast", "research"})

		parsed, err := set.Parse("Deep Research")
		require.NoError(t, err)
		require.Equal(t, domain.CategoryResearch, parsed)
	})

	t.Run("should reject categories outside the set", func(t *testing.T) {
		set := domain.NewCategorySet([]string{"fast"})

		_, err := set.Parse("thinking")
		require.ErrorIs(t, err, domain.ErrInvalidCategory)
	})
}

func TestModelEntry_Target(t *testing.T) {
	t.Run("should map kinds to targets", func(t *testing.T) {
		direct := domain.ModelEntry{Vendor: "OpenAI", Kind: domain.KindDirect}
		aggregated := domain.ModelEntry{Vendor: " Groq ", Kind: domain.KindAggregated}

		require.Equal(t, domain.Target{Kind: domain.KindDirect, Name: "openai"}, direct.Target())
		require.Equal(t, domain.Target{Kind: domain.KindAggregated, Name: "groq"}, aggregated.Target())
		require.Equal(t, "aggregated:groq", aggregated.Target().String())
	})
}

func TestCompletionResult_Accepted(t *testing.T) {
	t.Run("should require text and no error flag", func(t *testing.T) {
		require.True(t, domain.Success("hi", nil).Accepted())
		require.False(t, domain.Success("", nil).Accepted())
		require.False(t, domain.Failure(domain.ReasonTransport).Accepted())

		flagged := domain.Success("hi", nil)
		flagged.Error = true
		require.False(t, flagged.Accepted())
	})

	t.Run("should always carry a non-nil sources slice", func(t *testing.T) {
		require.NotNil(t, domain.Success("hi", nil).Sources)
		require.NotNil(t, domain.Failure(domain.ReasonTransport).Sources)
	})
}
