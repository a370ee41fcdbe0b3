// Package echo provides an offline provider that echoes back the prompt.
// It implements the domain.Provider interface without making external API calls,
// providing deterministic responses for development and tests.
package echo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/davidbz/shreegen/internal/domain"
	"github.com/davidbz/shreegen/internal/observability"
)

const (
	// Vendor is the registry vendor name served by the echo provider.
	Vendor = "echo"

	// FailModel always produces a vendor failure, for exercising fallback.
	FailModel = "echo-fail"
	// EmptyModel always produces empty content.
	EmptyModel = "echo-empty"
	// SlowModel never answers and returns once ctx is done.
	SlowModel = "echo-slow"
)

// Config toggles the echo provider.
type Config struct {
	Enabled bool `env:"ECHO_ENABLED" envDefault:"false"`
}

// Provider implements the domain.Provider interface for echo testing.
type Provider struct {
	name string
}

// NewProvider creates a new echo provider.
// No configuration is required as this provider operates entirely in-memory.
func NewProvider() *Provider {
	return &Provider{
		name: Vendor,
	}
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return p.name
}

// Targets returns the direct echo target.
func (p *Provider) Targets() []domain.Target {
	return []domain.Target{domain.DirectVendor(p.name)}
}

// Invoke echoes the prompt back, tagged with the model and category.
func (p *Provider) Invoke(ctx context.Context, inv *domain.Invocation) domain.CompletionResult {
	if inv == nil || strings.TrimSpace(inv.Prompt) == "" {
		return domain.Failure(domain.ReasonInvalidInput)
	}

	if err := ctx.Err(); err != nil {
		return domain.Failure(domain.ReasonCanceled)
	}

	logger := observability.FromContext(ctx)

	switch inv.Model {
	case FailModel:
		logger.Debug("echo simulating vendor failure")
		return domain.Failure(domain.ReasonVendorError)
	case EmptyModel:
		logger.Debug("echo simulating empty content")
		return domain.Failure(domain.ReasonEmptyContent)
	case SlowModel:
		<-ctx.Done()
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return domain.Failure(domain.ReasonTimeout)
		}
		return domain.Failure(domain.ReasonCanceled)
	}

	content := buildEchoContent(inv)

	logger.Debug("echo completed", observability.Int("words", countWords(content)))

	return domain.Success(content, nil)
}

// buildEchoContent constructs the echo response from the invocation.
func buildEchoContent(inv *domain.Invocation) string {
	return fmt.Sprintf("[%s/%s]: %s", inv.Model, inv.Category, inv.Prompt)
}

// countWords performs simple word counting.
func countWords(content string) int {
	if content == "" {
		return 0
	}
	return len(strings.Fields(content))
}
