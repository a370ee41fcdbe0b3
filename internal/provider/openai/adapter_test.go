package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/davidbz/shreegen/internal/domain"
	"github.com/davidbz/shreegen/internal/observability"
	"github.com/davidbz/shreegen/internal/provider/openai"
)

const testCredential = "sk-test-credential-0001"

func newInvocation(category domain.Category) *domain.Invocation {
	return &domain.Invocation{
		Prompt:            "Explain photosynthesis",
		Model:             "gpt-4o",
		Credential:        testCredential,
		Target:            domain.DirectVendor(openai.OpenAIVendor),
		Category:          category,
		SystemInstruction: "be helpful",
		Temperature:       0.7,
	}
}

func newTestProvider(t *testing.T, handler http.HandlerFunc) (*openai.Provider, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	provider, err := openai.NewOpenAIProvider(openai.Config{BaseURL: server.URL, Timeout: 5})
	require.NoError(t, err)

	return provider, &hits
}

func writeCompletion(w http.ResponseWriter, model, content string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"id": "x", "object": "chat.completion", "created": 1, "model": "` + model + `",
		"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "` + content + `"}}]}`))
}

type chatRequest struct {
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	ReasoningEffort string `json:"reasoning_effort"`
}

func TestNewProvider(t *testing.T) {
	t.Run("should create openai provider with default base URL", func(t *testing.T) {
		provider, err := openai.NewOpenAIProvider(openai.Config{})
		require.NoError(t, err)
		require.Equal(t, "openai", provider.Name())
		require.Equal(t, []domain.Target{domain.DirectVendor("openai")}, provider.Targets())
	})

	t.Run("should create xai provider", func(t *testing.T) {
		provider, err := openai.NewXAIProvider(openai.Config{})
		require.NoError(t, err)
		require.Equal(t, "xai", provider.Name())
		require.Equal(t, []domain.Target{domain.DirectVendor("xai")}, provider.Targets())
	})

	t.Run("should return error when vendor name is empty", func(t *testing.T) {
		provider, err := openai.NewProvider("", "https://example.com", openai.Config{})
		require.Error(t, err)
		require.Nil(t, provider)
		require.Contains(t, err.Error(), "vendor name is required")
	})

	t.Run("should return error when no base URL can be derived", func(t *testing.T) {
		_, err := openai.NewProvider("custom", "", openai.Config{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "base URL is required")
	})
}

func TestProvider_Invoke(t *testing.T) {
	t.Run("should return completion text on success", func(t *testing.T) {
		provider, hits := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/chat/completions", r.URL.Path)
			require.Equal(t, "Bearer "+testCredential, r.Header.Get("Authorization"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "gpt-4o", body["model"])
			require.InDelta(t, 0.7, body["temperature"], 0.0001)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": "chatcmpl-1",
				"object": "chat.completion",
				"created": 1,
				"model": "gpt-4o",
				"choices": [{"index": 0, "finish_reason": "stop",
					"message": {"role": "assistant", "content": "Plants turn light into sugar."}}],
				"usage": {"prompt_tokens": 3, "completion_tokens": 6, "total_tokens": 9}
			}`))
		})

		result := provider.Invoke(context.Background(), newInvocation(domain.CategoryFast))

		require.False(t, result.Error)
		require.Equal(t, "Plants turn light into sugar.", result.Text)
		require.NotNil(t, result.Sources)
		require.Empty(t, result.Sources)
		require.Equal(t, int32(1), hits.Load())
	})

	t.Run("should report http status failure without retrying", func(t *testing.T) {
		provider, hits := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error": {"message": "boom", "type": "server_error"}}`))
		})

		result := provider.Invoke(context.Background(), newInvocation(domain.CategoryFast))

		require.True(t, result.Error)
		require.Empty(t, result.Text)
		require.Empty(t, result.Sources)
		require.Equal(t, domain.ReasonHTTPStatus, result.Reason)
		require.Equal(t, int32(1), hits.Load())
	})

	t.Run("should report empty content as failure", func(t *testing.T) {
		provider, _ := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": "x", "object": "chat.completion", "created": 1, "model": "gpt-4o",
				"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": ""}}]}`))
		})

		result := provider.Invoke(context.Background(), newInvocation(domain.CategoryFast))

		require.True(t, result.Error)
		require.Equal(t, domain.ReasonEmptyContent, result.Reason)
	})

	t.Run("should omit temperature for reasoning models", func(t *testing.T) {
		provider, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.NotContains(t, body, "temperature")
			require.Equal(t, "high", body["reasoning_effort"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": "x", "object": "chat.completion", "created": 1, "model": "o1",
				"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "42"}}]}`))
		})

		inv := newInvocation(domain.CategoryReasoning)
		inv.Model = "o1"

		result := provider.Invoke(context.Background(), inv)
		require.False(t, result.Error)
		require.Equal(t, "42", result.Text)
	})

	t.Run("should return image markdown and source for image generation", func(t *testing.T) {
		provider, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/images/generations", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"created": 1, "data": [{"url": "https://img.example/cell.png"}]}`))
		})

		inv := newInvocation(domain.CategoryImageGeneration)
		inv.Model = "dall-e-3"
		inv.Prompt = "a plant cell"

		result := provider.Invoke(context.Background(), inv)

		require.False(t, result.Error)
		require.Equal(t, "![a plant cell](https://img.example/cell.png)", result.Text)
		require.Equal(t, []domain.Source{{Title: "Generated image", URI: "https://img.example/cell.png"}}, result.Sources)
	})

	t.Run("should report timeout when context deadline passes", func(t *testing.T) {
		provider, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
			w.WriteHeader(http.StatusGatewayTimeout)
		})

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		result := provider.Invoke(ctx, newInvocation(domain.CategoryFast))

		require.True(t, result.Error)
		require.Equal(t, domain.ReasonTimeout, result.Reason)
	})

	t.Run("should reject empty prompt without calling vendor", func(t *testing.T) {
		provider, hits := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		inv := newInvocation(domain.CategoryFast)
		inv.Prompt = "  "

		result := provider.Invoke(context.Background(), inv)

		require.True(t, result.Error)
		require.Equal(t, domain.ReasonInvalidInput, result.Reason)
		require.Equal(t, int32(0), hits.Load())
	})

	t.Run("should never log the credential", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		observability.SetLogger(zap.New(core))
		t.Cleanup(func() { observability.SetLogger(zap.NewNop()) })

		provider, _ := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": {"message": "Incorrect API key provided: ` + testCredential + `", "type": "invalid_request_error"}}`))
		})

		result := provider.Invoke(context.Background(), newInvocation(domain.CategoryFast))
		require.True(t, result.Error)
		require.Equal(t, domain.ReasonHTTPStatus, result.Reason)

		require.NotZero(t, logs.FilterMessage("vendor API returned an error").Len())
		for _, entry := range logs.All() {
			require.NotContains(t, entry.Message, testCredential)
			for _, value := range entry.ContextMap() {
				if text, ok := value.(string); ok {
					require.NotContains(t, text, testCredential)
				}
			}
		}
	})
}

func TestProvider_Persona(t *testing.T) {
	tests := []struct {
		name       string
		model      string
		category   domain.Category
		wantRoles  []string
		wantUser   string
		wantEffort string
	}{
		{
			name:      "should send the persona as a system message to chat models",
			model:     "gpt-4o",
			category:  domain.CategoryFast,
			wantRoles: []string{"system", "user"},
			wantUser:  "Explain photosynthesis",
		},
		{
			name:       "should send the persona as a developer message to reasoning models",
			model:      "o3-mini",
			category:   domain.CategoryReasoning,
			wantRoles:  []string{"developer", "user"},
			wantUser:   "Explain photosynthesis",
			wantEffort: "high",
		},
		{
			name:      "should fold the persona into the prompt for o1-preview",
			model:     "o1-preview",
			category:  domain.CategoryReasoning,
			wantRoles: []string{"user"},
			wantUser:  "be helpful\n\nExplain photosynthesis",
		},
		{
			name:      "should fold the persona into the prompt for o1-mini",
			model:     "o1-mini",
			category:  domain.CategoryReasoning,
			wantRoles: []string{"user"},
			wantUser:  "be helpful\n\nExplain photosynthesis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var request chatRequest
			provider, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
				writeCompletion(w, tt.model, "done")
			})

			inv := newInvocation(tt.category)
			inv.Model = tt.model

			result := provider.Invoke(context.Background(), inv)
			require.False(t, result.Error)

			roles := make([]string, 0, len(request.Messages))
			for _, message := range request.Messages {
				roles = append(roles, message.Role)
			}
			require.Equal(t, tt.wantRoles, roles)
			require.Equal(t, tt.wantUser, request.Messages[len(request.Messages)-1].Content)
			require.Equal(t, tt.wantEffort, request.ReasoningEffort)
		})
	}
}
