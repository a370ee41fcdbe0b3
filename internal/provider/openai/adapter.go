// Package openai provides an adapter for OpenAI-compatible vendor APIs using
// the official SDK. One Provider instance serves one vendor (OpenAI or xAI)
// and normalizes every outcome into a domain.CompletionResult.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/davidbz/shreegen/internal/domain"
	"github.com/davidbz/shreegen/internal/observability"
)

const (
	// OpenAIVendor is the registry vendor name served by NewOpenAIProvider.
	OpenAIVendor = "openai"
	// XAIVendor is the registry vendor name served by NewXAIProvider.
	XAIVendor = "xai"

	openAIBaseURL = "https://api.openai.com/v1"
	xaiBaseURL    = "https://api.x.ai/v1"
)

// Provider implements the domain.Provider interface for one OpenAI-compatible vendor.
type Provider struct {
	client    openai.Client
	name      string
	imageSize string
}

// NewOpenAIProvider creates a provider for the OpenAI API.
func NewOpenAIProvider(config Config) (*Provider, error) {
	return NewProvider(OpenAIVendor, openAIBaseURL, config)
}

// NewXAIProvider creates a provider for the xAI API.
func NewXAIProvider(config Config) (*Provider, error) {
	return NewProvider(XAIVendor, xaiBaseURL, config)
}

// NewProvider creates a provider for an arbitrary OpenAI-compatible vendor.
// Credentials are supplied per invocation, not at construction time.
func NewProvider(vendor, defaultBaseURL string, config Config) (*Provider, error) {
	if vendor == "" {
		return nil, errors.New("vendor name is required")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required for vendor %s", vendor)
	}

	opts := []option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	imageSize := config.ImageSize
	if imageSize == "" {
		imageSize = string(openai.ImageGenerateParamsSize1024x1024)
	}

	return &Provider{
		client:    openai.NewClient(opts...),
		name:      vendor,
		imageSize: imageSize,
	}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return p.name
}

// Targets returns the single direct vendor target this provider serves.
func (p *Provider) Targets() []domain.Target {
	return []domain.Target{domain.DirectVendor(p.name)}
}

// Invoke issues one chat completion, or one image generation for
// image-generation invocations.
func (p *Provider) Invoke(ctx context.Context, inv *domain.Invocation) domain.CompletionResult {
	if inv == nil || strings.TrimSpace(inv.Prompt) == "" {
		return domain.Failure(domain.ReasonInvalidInput)
	}

	if inv.Category == domain.CategoryImageGeneration {
		return p.generateImage(ctx, inv)
	}

	return p.complete(ctx, inv)
}

func (p *Provider) complete(ctx context.Context, inv *domain.Invocation) domain.CompletionResult {
	logger := observability.FromContext(ctx)
	logger.Debug("calling chat completions API")

	resp, err := p.client.Chat.Completions.New(ctx, p.toSDKParams(inv), option.WithAPIKey(inv.Credential))
	if err != nil {
		return p.failure(ctx, inv, err)
	}

	content := ""
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
	}

	if strings.TrimSpace(content) == "" {
		if len(resp.Choices) > 0 && resp.Choices[0].Message.Refusal != "" {
			logger.Warn("vendor refused the prompt")
			return domain.Failure(domain.ReasonVendorError)
		}
		logger.Warn("vendor returned empty content")
		return domain.Failure(domain.ReasonEmptyContent)
	}

	logger.Debug("chat completion succeeded",
		observability.Int("prompt_tokens", int(resp.Usage.PromptTokens)),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
	)

	return domain.Success(content, nil)
}

func (p *Provider) generateImage(ctx context.Context, inv *domain.Invocation) domain.CompletionResult {
	logger := observability.FromContext(ctx)
	logger.Debug("calling image generation API")

	resp, err := p.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt: inv.Prompt,
		Model:  openai.ImageModel(inv.Model),
		N:      openai.Int(1),
		Size:   openai.ImageGenerateParamsSize(p.imageSize),
	}, option.WithAPIKey(inv.Credential))
	if err != nil {
		return p.failure(ctx, inv, err)
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		logger.Warn("vendor returned no image")
		return domain.Failure(domain.ReasonEmptyContent)
	}

	image := resp.Data[0]
	caption := image.RevisedPrompt
	if caption == "" {
		caption = inv.Prompt
	}

	text := fmt.Sprintf("![%s](%s)", sanitizeAltText(caption), image.URL)
	return domain.Success(text, []domain.Source{{Title: "Generated image", URI: image.URL}})
}

// failure classifies an SDK error and logs it with the credential redacted.
func (p *Provider) failure(ctx context.Context, inv *domain.Invocation, err error) domain.CompletionResult {
	logger := observability.FromContext(ctx)
	message := domain.RedactCredential(err.Error(), inv.Credential)

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		logger.Warn("vendor API returned an error",
			observability.Int("status_code", apiErr.StatusCode),
			observability.String("error", message))
		return domain.Failure(domain.ReasonHTTPStatus)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		logger.Warn("vendor API call timed out", observability.String("error", message))
		return domain.Failure(domain.ReasonTimeout)
	}
	if errors.Is(err, context.Canceled) {
		return domain.Failure(domain.ReasonCanceled)
	}

	logger.Warn("vendor API call failed", observability.String("error", message))
	return domain.Failure(domain.ReasonTransport)
}

// toSDKParams converts an invocation to SDK ChatCompletionNewParams.
func (p *Provider) toSDKParams(inv *domain.Invocation) openai.ChatCompletionNewParams {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	prompt := inv.Prompt

	// o1-preview and o1-mini accept only user and assistant turns; newer
	// reasoning models take the persona as a developer message.
	switch {
	case inv.SystemInstruction == "":
	case isLegacyReasoningModel(inv.Model):
		prompt = inv.SystemInstruction + "\n\n" + inv.Prompt
	case isReasoningModel(inv.Model):
		messages = append(messages, openai.DeveloperMessage(inv.SystemInstruction))
	default:
		messages = append(messages, openai.SystemMessage(inv.SystemInstruction))
	}
	messages = append(messages, openai.UserMessage(prompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(inv.Model),
		Messages: messages,
	}

	// Reasoning models reject sampling parameters.
	if inv.Temperature > 0 && !isReasoningModel(inv.Model) {
		params.Temperature = openai.Float(inv.Temperature)
	}

	if inv.Category == domain.CategoryReasoning && isReasoningModel(inv.Model) && !isLegacyReasoningModel(inv.Model) {
		params.ReasoningEffort = openai.ReasoningEffortHigh
	}

	return params
}

func isReasoningModel(model string) bool {
	model = strings.ToLower(model)
	return strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4")
}

func isLegacyReasoningModel(model string) bool {
	model = strings.ToLower(model)
	return strings.HasPrefix(model, "o1-preview") || strings.HasPrefix(model, "o1-mini")
}

func sanitizeAltText(text string) string {
	text = strings.NewReplacer("[", "(", "]", ")", "\n", " ").Replace(text)
	const maxAltText = 120
	if len(text) > maxAltText {
		text = text[:maxAltText]
	}
	return strings.TrimSpace(text)
}
