package aggregator_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/davidbz/shreegen/internal/domain"
	"github.com/davidbz/shreegen/internal/observability"
	"github.com/davidbz/shreegen/internal/provider/aggregator"
)

const testCredential = "sk-or-v1-secret-credential-0001"

func newTestProvider(t *testing.T, handler http.HandlerFunc) (*aggregator.Provider, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	provider := aggregator.NewProvider(aggregator.Config{
		Timeout:    5,
		BaseURLs:   map[string]string{"OpenRouter": server.URL + "/api/v1"},
		URLPattern: "",
	})

	return provider, &hits
}

func invocation(gateway string) *domain.Invocation {
	return &domain.Invocation{
		Prompt:            "Summarize the French revolution",
		Model:             "meta-llama/llama-3-70b",
		Credential:        testCredential,
		Target:            domain.AggregatorGateway(gateway),
		Category:          domain.CategoryFast,
		SystemInstruction: "be brief",
		Temperature:       0.7,
	}
}

func TestProvider_Identity(t *testing.T) {
	provider := aggregator.NewProvider(aggregator.Config{})

	require.Equal(t, "aggregator", provider.Name())
	require.Equal(t, []domain.Target{domain.AggregatorGateway(domain.GatewayWildcard)}, provider.Targets())
}

func TestProvider_Invoke(t *testing.T) {
	t.Run("should post chat completion and extract content", func(t *testing.T) {
		provider, hits := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/v1/chat/completions", r.URL.Path)
			require.Equal(t, "Bearer "+testCredential, r.Header.Get("Authorization"))

			var body struct {
				Model    string `json:"model"`
				Messages []struct {
					Role    string `json:"role"`
					Content string `json:"content"`
				} `json:"messages"`
				Temperature float64 `json:"temperature"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "meta-llama/llama-3-70b", body.Model)
			require.Len(t, body.Messages, 2)
			require.Equal(t, "system", body.Messages[0].Role)
			require.Equal(t, "user", body.Messages[1].Role)
			require.InDelta(t, 0.7, body.Temperature, 0.0001)

			_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "It began in 1789."}}]}`))
		})

		result := provider.Invoke(context.Background(), invocation("OpenRouter"))

		require.False(t, result.Error)
		require.Equal(t, "It began in 1789.", result.Text)
		require.NotNil(t, result.Sources)
		require.Empty(t, result.Sources)
		require.Equal(t, int32(1), hits.Load())
	})

	t.Run("should treat error field on success status as vendor error", func(t *testing.T) {
		provider, _ := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"error": {"message": "model overloaded"}}`))
		})

		result := provider.Invoke(context.Background(), invocation("OpenRouter"))

		require.True(t, result.Error)
		require.Empty(t, result.Text)
		require.Equal(t, domain.ReasonVendorError, result.Reason)
	})

	t.Run("should report non-2xx status", func(t *testing.T) {
		provider, hits := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		result := provider.Invoke(context.Background(), invocation("OpenRouter"))

		require.True(t, result.Error)
		require.Equal(t, domain.ReasonHTTPStatus, result.Reason)
		require.Equal(t, int32(1), hits.Load())
	})

	t.Run("should report missing content as empty", func(t *testing.T) {
		provider, _ := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"choices": []}`))
		})

		result := provider.Invoke(context.Background(), invocation("OpenRouter"))

		require.True(t, result.Error)
		require.Equal(t, domain.ReasonEmptyContent, result.Reason)
	})

	t.Run("should report malformed JSON as vendor error", func(t *testing.T) {
		provider, _ := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html>gateway down</html>`))
		})

		result := provider.Invoke(context.Background(), invocation("OpenRouter"))

		require.True(t, result.Error)
		require.Equal(t, domain.ReasonVendorError, result.Reason)
	})

	t.Run("should fail closed for unsupported gateways without calling out", func(t *testing.T) {
		provider, hits := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		for _, gateway := range []string{"Replicate", "Fal.ai", "Unknown Cloud"} {
			result := provider.Invoke(context.Background(), invocation(gateway))

			require.True(t, result.Error, gateway)
			require.Equal(t, domain.ReasonUnsupported, result.Reason, gateway)
		}
		require.Equal(t, int32(0), hits.Load())
	})

	t.Run("should never log the credential", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		observability.SetLogger(zap.New(core))
		t.Cleanup(func() { observability.SetLogger(zap.NewNop()) })

		provider, _ := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": {"message": "invalid key ` + testCredential + `"}}`))
		})

		result := provider.Invoke(context.Background(), invocation("OpenRouter"))
		require.True(t, result.Error)

		require.NotZero(t, logs.Len())
		for _, entry := range logs.All() {
			require.NotContains(t, entry.Message, testCredential)
			for key, value := range entry.ContextMap() {
				require.NotContains(t, key, testCredential)
				if text, ok := value.(string); ok {
					require.NotContains(t, text, testCredential)
				}
			}
		}
	})
}

func TestResolver_BaseURL(t *testing.T) {
	resolver := aggregator.NewResolver(
		map[string]string{"My Gateway": "https://gw.internal/v1/"},
		"https://api.{gateway}.com/v1",
	)

	tests := []struct {
		name    string
		gateway string
		want    string
		wantErr bool
	}{
		{name: "should resolve OpenRouter", gateway: "OpenRouter", want: "https://openrouter.ai/api/v1"},
		{name: "should resolve Groq", gateway: "Groq", want: "https://api.groq.com/openai/v1"},
		{name: "should resolve Mistral AI", gateway: "Mistral AI", want: "https://api.mistral.ai/v1"},
		{name: "should resolve Together AI", gateway: "Together AI", want: "https://api.together.xyz/v1"},
		{name: "should resolve overrides by slug", gateway: "my-gateway", want: "https://gw.internal/v1"},
		{name: "should apply the pattern to unknown gateways", gateway: "Acme", want: "https://api.acme.com/v1"},
		{name: "should reject Replicate", gateway: "Replicate", wantErr: true},
		{name: "should reject Fal.ai", gateway: "Fal.ai", wantErr: true},
		{name: "should reject empty gateway", gateway: " - ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.BaseURL(tt.gateway)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrUnsupportedProvider)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	t.Run("should reject unknown gateways when no pattern is configured", func(t *testing.T) {
		_, err := aggregator.NewResolver(nil, "").BaseURL("Acme")
		require.ErrorIs(t, err, domain.ErrUnsupportedProvider)
	})
}

func TestSlug(t *testing.T) {
	require.Equal(t, "mistralai", aggregator.Slug("Mistral AI"))
	require.Equal(t, "falai", aggregator.Slug("Fal.ai"))
	require.Equal(t, "huggingface", aggregator.Slug("HuggingFace"))
}
