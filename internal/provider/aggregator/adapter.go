// Package aggregator provides an adapter for OpenAI-compatible model gateways
// (OpenRouter, Groq, Mistral and similar). A single Provider serves every
// aggregated target by resolving the gateway name to a base URL.
package aggregator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/davidbz/shreegen/internal/domain"
	"github.com/davidbz/shreegen/internal/observability"
)

const (
	providerName = "aggregator"

	// maxResponseBytes caps how much of a gateway response is read.
	maxResponseBytes = 4 << 20

	contentPath  = "choices.0.message.content"
	errorPath    = "error.message"
	errorAltPath = "error"
)

// Provider implements the domain.Provider interface for gateway-routed entries.
type Provider struct {
	resolver   *Resolver
	httpClient *http.Client
}

// NewProvider creates a new aggregator provider.
func NewProvider(config Config) *Provider {
	httpClient := &http.Client{}
	if config.Timeout > 0 {
		httpClient.Timeout = time.Duration(config.Timeout) * time.Second
	}

	return &Provider{
		resolver:   NewResolver(config.BaseURLs, config.URLPattern),
		httpClient: httpClient,
	}
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return providerName
}

// Targets returns the gateway wildcard target.
func (p *Provider) Targets() []domain.Target {
	return []domain.Target{domain.AggregatorGateway(domain.GatewayWildcard)}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
}

// Invoke posts one chat completion to the invocation's gateway.
func (p *Provider) Invoke(ctx context.Context, inv *domain.Invocation) domain.CompletionResult {
	if inv == nil || strings.TrimSpace(inv.Prompt) == "" {
		return domain.Failure(domain.ReasonInvalidInput)
	}

	logger := observability.FromContext(ctx).With(observability.String("gateway", inv.Target.Name))

	baseURL, err := p.resolver.BaseURL(inv.Target.Name)
	if err != nil {
		logger.Warn("gateway cannot be dispatched", observability.Error(err))
		return domain.Failure(domain.ReasonUnsupported)
	}

	messages := make([]chatMessage, 0, 2)
	if inv.SystemInstruction != "" {
		messages = append(messages, chatMessage{Role: "system", Content: inv.SystemInstruction})
	}
	messages = append(messages, chatMessage{Role: "user", Content: inv.Prompt})

	reqBody, err := json.Marshal(chatRequest{
		Model:       inv.Model,
		Messages:    messages,
		Temperature: inv.Temperature,
	})
	if err != nil {
		logger.Error("failed to marshal gateway request", observability.Error(err))
		return domain.Failure(domain.ReasonInvalidInput)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		baseURL+"/chat/completions",
		bytes.NewReader(reqBody),
	)
	if err != nil {
		logger.Warn("failed to create gateway request", observability.Error(err))
		return domain.Failure(domain.ReasonUnsupported)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+inv.Credential)

	logger.Debug("calling gateway", observability.String("base_url", baseURL))

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return p.transportFailure(ctx, inv, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return p.transportFailure(ctx, inv, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Warn("gateway returned non-success status",
			observability.Int("status_code", resp.StatusCode),
			observability.String("error", domain.RedactCredential(vendorError(body), inv.Credential)))
		return domain.Failure(domain.ReasonHTTPStatus)
	}

	if !gjson.ValidBytes(body) {
		logger.Warn("gateway returned malformed JSON")
		return domain.Failure(domain.ReasonVendorError)
	}

	if message := vendorError(body); message != "" {
		logger.Warn("gateway reported an error",
			observability.String("error", domain.RedactCredential(message, inv.Credential)))
		return domain.Failure(domain.ReasonVendorError)
	}

	content := gjson.GetBytes(body, contentPath).String()
	if strings.TrimSpace(content) == "" {
		logger.Warn("gateway returned empty content")
		return domain.Failure(domain.ReasonEmptyContent)
	}

	return domain.Success(content, nil)
}

func (p *Provider) transportFailure(ctx context.Context, inv *domain.Invocation, err error) domain.CompletionResult {
	logger := observability.FromContext(ctx)

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		logger.Warn("gateway call timed out", observability.String("gateway", inv.Target.Name))
		return domain.Failure(domain.ReasonTimeout)
	case errors.Is(err, context.Canceled):
		return domain.Failure(domain.ReasonCanceled)
	}

	logger.Warn("gateway call failed",
		observability.String("gateway", inv.Target.Name),
		observability.String("error", domain.RedactCredential(fmt.Sprint(err), inv.Credential)))
	return domain.Failure(domain.ReasonTransport)
}

// vendorError extracts the error text from a gateway body, if any.
func vendorError(body []byte) string {
	if message := gjson.GetBytes(body, errorPath); message.Exists() && message.String() != "" {
		return message.String()
	}
	if raw := gjson.GetBytes(body, errorAltPath); raw.Type == gjson.String {
		return raw.String()
	}
	return ""
}
