// Package anthropic provides an adapter for the Anthropic Messages API using
// the official SDK.
package anthropic

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/davidbz/shreegen/internal/domain"
	"github.com/davidbz/shreegen/internal/observability"
)

const (
	// Vendor is the registry vendor name served by this provider.
	Vendor = "anthropic"

	defaultMaxTokens = 4096
	// minThinkingBudget is the smallest budget the Messages API accepts.
	minThinkingBudget = 1024
)

// Provider implements the domain.Provider interface for Anthropic.
type Provider struct {
	client         anthropic.Client
	maxTokens      int64
	thinkingBudget int64
}

// NewProvider creates a new Anthropic provider.
// Credentials are supplied per invocation.
func NewProvider(config Config) *Provider {
	opts := []option.RequestOption{
		option.WithMaxRetries(0),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	maxTokens := config.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return &Provider{
		client:         anthropic.NewClient(opts...),
		maxTokens:      maxTokens,
		thinkingBudget: config.ThinkingBudget,
	}
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return Vendor
}

// Targets returns the direct anthropic target.
func (p *Provider) Targets() []domain.Target {
	return []domain.Target{domain.DirectVendor(Vendor)}
}

// Invoke sends one Messages API request. Reasoning invocations enable
// extended thinking; only text blocks make it into the result.
func (p *Provider) Invoke(ctx context.Context, inv *domain.Invocation) domain.CompletionResult {
	if inv == nil || strings.TrimSpace(inv.Prompt) == "" {
		return domain.Failure(domain.ReasonInvalidInput)
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling Anthropic messages API")

	message, err := p.client.Messages.New(ctx, p.toSDKParams(inv), option.WithAPIKey(inv.Credential))
	if err != nil {
		return p.failure(ctx, inv, err)
	}

	var builder strings.Builder
	for _, block := range message.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			builder.WriteString(variant.Text)
		}
	}

	content := builder.String()
	if strings.TrimSpace(content) == "" {
		logger.Warn("vendor returned empty content", observability.String("stop_reason", string(message.StopReason)))
		return domain.Failure(domain.ReasonEmptyContent)
	}

	logger.Debug("Anthropic call succeeded",
		observability.Int("input_tokens", int(message.Usage.InputTokens)),
		observability.Int("output_tokens", int(message.Usage.OutputTokens)),
	)

	return domain.Success(content, nil)
}

func (p *Provider) toSDKParams(inv *domain.Invocation) anthropic.MessageNewParams {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(inv.Model),
		MaxTokens: p.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(inv.Prompt)),
		},
	}

	if inv.SystemInstruction != "" {
		params.System = []anthropic.TextBlockParam{{Text: inv.SystemInstruction}}
	}

	if inv.Category == domain.CategoryReasoning && p.thinkingBudget >= minThinkingBudget && supportsThinking(inv.Model) {
		// max_tokens must exceed the thinking budget; temperature must stay default.
		params.Thinking = anthropic.ThinkingConfigParamOfEnabled(p.thinkingBudget)
		params.MaxTokens = p.thinkingBudget + p.maxTokens
		return params
	}

	if inv.Temperature > 0 {
		params.Temperature = anthropic.Float(inv.Temperature)
	}

	return params
}

// supportsThinking reports whether a model accepts extended thinking. Claude 3
// models other than 3.7 Sonnet reject the parameter.
func supportsThinking(model string) bool {
	model = strings.ToLower(model)
	if strings.HasPrefix(model, "claude-3-7") {
		return true
	}
	return !strings.HasPrefix(model, "claude-3-") && !strings.HasPrefix(model, "claude-2") && !strings.HasPrefix(model, "claude-instant")
}

// failure classifies an SDK error and logs it with the credential redacted.
func (p *Provider) failure(ctx context.Context, inv *domain.Invocation, err error) domain.CompletionResult {
	logger := observability.FromContext(ctx)
	message := domain.RedactCredential(err.Error(), inv.Credential)

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		logger.Warn("Anthropic API returned an error",
			observability.Int("status_code", apiErr.StatusCode),
			observability.String("error", message))
		return domain.Failure(domain.ReasonHTTPStatus)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("Anthropic API call timed out", observability.String("error", message))
		return domain.Failure(domain.ReasonTimeout)
	case errors.Is(err, context.Canceled):
		return domain.Failure(domain.ReasonCanceled)
	}

	logger.Warn("Anthropic API call failed", observability.String("error", message))
	return domain.Failure(domain.ReasonTransport)
}
