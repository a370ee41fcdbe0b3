// Package gemini provides an adapter for the Google Gemini API using the
// genai SDK. Research invocations enable Google Search grounding and surface
// the grounding chunks as sources.
package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/davidbz/shreegen/internal/domain"
	"github.com/davidbz/shreegen/internal/observability"
)

// Vendor is the registry vendor name served by this provider.
const Vendor = "google"

// Provider implements the domain.Provider interface for Gemini.
type Provider struct {
	httpClient     *http.Client
	httpOptions    genai.HTTPOptions
	thinkingBudget int32
}

// NewProvider creates a new Gemini provider.
// A genai client is built per invocation because the credential is per entry.
func NewProvider(config Config) *Provider {
	httpClient := &http.Client{}
	if config.Timeout > 0 {
		httpClient.Timeout = time.Duration(config.Timeout) * time.Second
	}

	return &Provider{
		httpClient: httpClient,
		httpOptions: genai.HTTPOptions{
			BaseURL:    config.BaseURL,
			APIVersion: config.APIVersion,
		},
		thinkingBudget: config.ThinkingBudget,
	}
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return Vendor
}

// Targets returns the direct google target.
func (p *Provider) Targets() []domain.Target {
	return []domain.Target{domain.DirectVendor(Vendor)}
}

// Invoke sends one generateContent request.
func (p *Provider) Invoke(ctx context.Context, inv *domain.Invocation) domain.CompletionResult {
	if inv == nil || strings.TrimSpace(inv.Prompt) == "" {
		return domain.Failure(domain.ReasonInvalidInput)
	}

	logger := observability.FromContext(ctx)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      inv.Credential,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  p.httpClient,
		HTTPOptions: p.httpOptions,
	})
	if err != nil {
		logger.Warn("failed to create Gemini client",
			observability.String("error", domain.RedactCredential(err.Error(), inv.Credential)))
		return domain.Failure(domain.ReasonTransport)
	}

	if inv.Category == domain.CategoryImageGeneration {
		return p.generateImage(ctx, client, inv)
	}

	logger.Debug("calling Gemini generateContent API")

	resp, err := client.Models.GenerateContent(ctx, inv.Model, genai.Text(inv.Prompt), p.buildConfig(inv))
	if err != nil {
		return p.failure(ctx, inv, err)
	}

	content, sources := processResponse(resp)
	if strings.TrimSpace(content) == "" {
		logger.Warn("vendor returned empty content")
		return domain.Failure(domain.ReasonEmptyContent)
	}

	logger.Debug("Gemini call succeeded", observability.Int("sources", len(sources)))

	return domain.Success(content, sources)
}

// generateImage calls the Imagen predict endpoint and inlines the first
// image as a markdown data URI.
func (p *Provider) generateImage(
	ctx context.Context,
	client *genai.Client,
	inv *domain.Invocation,
) domain.CompletionResult {
	logger := observability.FromContext(ctx)
	logger.Debug("calling Imagen generateImages API")

	resp, err := client.Models.GenerateImages(ctx, inv.Model, inv.Prompt, nil)
	if err != nil {
		return p.failure(ctx, inv, err)
	}

	if resp == nil || len(resp.GeneratedImages) == 0 {
		logger.Warn("vendor returned no images")
		return domain.Failure(domain.ReasonEmptyContent)
	}

	generated := resp.GeneratedImages[0]
	if generated == nil || generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
		logger.Warn("vendor returned an empty image")
		return domain.Failure(domain.ReasonEmptyContent)
	}

	mimeType := generated.Image.MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}

	uri := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(generated.Image.ImageBytes)
	return domain.Success("![Generated image]("+uri+")", nil)
}

func (p *Provider) buildConfig(inv *domain.Invocation) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}

	if inv.SystemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(inv.SystemInstruction, genai.RoleUser)
	}

	if inv.Temperature > 0 {
		config.Temperature = ptr(float32(inv.Temperature))
	}

	switch inv.Category {
	case domain.CategoryResearch:
		config.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	case domain.CategoryReasoning:
		if p.thinkingBudget > 0 {
			config.ThinkingConfig = &genai.ThinkingConfig{
				ThinkingBudget: ptr(p.thinkingBudget),
			}
		}
	}

	return config
}

// processResponse joins the non-thought text parts of the first candidate and
// collects its web grounding chunks in order.
func processResponse(resp *genai.GenerateContentResponse) (string, []domain.Source) {
	sources := []domain.Source{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", sources
	}

	candidate := resp.Candidates[0]

	var builder strings.Builder
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			builder.WriteString(part.Text)
		}
	}

	if candidate.GroundingMetadata != nil {
		for _, chunk := range candidate.GroundingMetadata.GroundingChunks {
			if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			sources = append(sources, domain.Source{Title: chunk.Web.Title, URI: chunk.Web.URI})
		}
	}

	return builder.String(), sources
}

// failure classifies an SDK error and logs it with the credential redacted.
func (p *Provider) failure(ctx context.Context, inv *domain.Invocation, err error) domain.CompletionResult {
	logger := observability.FromContext(ctx)
	message := domain.RedactCredential(err.Error(), inv.Credential)

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		logger.Warn("Gemini API returned an error",
			observability.Int("status_code", apiErr.Code),
			observability.String("status", apiErr.Status),
			observability.String("error", message))
		return domain.Failure(domain.ReasonHTTPStatus)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("Gemini API call timed out", observability.String("error", message))
		return domain.Failure(domain.ReasonTimeout)
	case errors.Is(err, context.Canceled):
		return domain.Failure(domain.ReasonCanceled)
	}

	logger.Warn("Gemini API call failed", observability.String("error", message))
	return domain.Failure(domain.ReasonTransport)
}

func ptr[T any](v T) *T {
	return &v
}
