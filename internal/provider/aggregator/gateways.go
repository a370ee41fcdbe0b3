package aggregator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/davidbz/shreegen/internal/domain"
)

const gatewayPlaceholder = "{gateway}"

// knownGateways maps gateway slugs to OpenAI-compatible base URLs.
//
//nolint:gochecknoglobals // Static lookup table
var knownGateways = map[string]string{
	"openrouter":  "https://openrouter.ai/api/v1",
	"groq":        "https://api.groq.com/openai/v1",
	"mistral":     "https://api.mistral.ai/v1",
	"mistralai":   "https://api.mistral.ai/v1",
	"deepseek":    "https://api.deepseek.com/v1",
	"together":    "https://api.together.xyz/v1",
	"togetherai":  "https://api.together.xyz/v1",
	"fireworks":   "https://api.fireworks.ai/inference/v1",
	"fireworksai": "https://api.fireworks.ai/inference/v1",
	"perplexity":  "https://api.perplexity.ai",
	"huggingface": "https://router.huggingface.co/v1",
	"nebius":      "https://api.studio.nebius.com/v1",
}

// unsupportedGateways expose prediction APIs rather than chat completions.
//
//nolint:gochecknoglobals // Static lookup table
var unsupportedGateways = map[string]struct{}{
	"replicate": {},
	"falai":     {},
	"fal":       {},
}

// Slug reduces a gateway display name to lowercase alphanumerics,
// e.g. "Mistral AI" -> "mistralai", "Fal.ai" -> "falai".
func Slug(gateway string) string {
	var builder strings.Builder
	for _, r := range strings.ToLower(gateway) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// Resolver derives the chat completions base URL of a gateway.
type Resolver struct {
	overrides map[string]string
	pattern   string
}

// NewResolver creates a resolver from operator overrides and the fallback pattern.
func NewResolver(overrides map[string]string, pattern string) *Resolver {
	normalized := make(map[string]string, len(overrides))
	for name, url := range overrides {
		if slug := Slug(name); slug != "" && url != "" {
			normalized[slug] = strings.TrimRight(url, "/")
		}
	}

	return &Resolver{
		overrides: normalized,
		pattern:   pattern,
	}
}

// BaseURL returns the base URL for the gateway or ErrUnsupportedProvider.
func (r *Resolver) BaseURL(gateway string) (string, error) {
	slug := Slug(gateway)
	if slug == "" {
		return "", fmt.Errorf("%w: empty gateway name", domain.ErrUnsupportedProvider)
	}

	if url, ok := r.overrides[slug]; ok {
		return url, nil
	}

	if _, ok := unsupportedGateways[slug]; ok {
		return "", fmt.Errorf("%w: %s is not chat-completion compatible", domain.ErrUnsupportedProvider, gateway)
	}

	if url, ok := knownGateways[slug]; ok {
		return url, nil
	}

	if r.pattern == "" || !strings.Contains(r.pattern, gatewayPlaceholder) {
		return "", fmt.Errorf("%w: no endpoint known for %s", domain.ErrUnsupportedProvider, gateway)
	}

	return strings.TrimRight(strings.ReplaceAll(r.pattern, gatewayPlaceholder, slug), "/"), nil
}
