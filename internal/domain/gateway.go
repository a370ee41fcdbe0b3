package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/davidbz/shreegen/internal/observability"
)

// DefaultRoute is the pre-designated vendor used when no candidate is eligible.
type DefaultRoute struct {
	Vendor         string
	Model          string
	CategoryModels map[Category]string
	Credential     string
}

// ModelFor returns the model configured for the category, or the fallback model.
func (d DefaultRoute) ModelFor(category Category) string {
	if model, ok := d.CategoryModels[category]; ok && model != "" {
		return model
	}
	return d.Model
}

// Configured reports whether the default path can be attempted.
func (d DefaultRoute) Configured() bool {
	return d.Vendor != "" && d.Model != "" && HasCredential(d.Credential)
}

// DispatchPolicy holds the orchestrator's tunables.
type DispatchPolicy struct {
	SystemInstruction string
	Temperature       float64
	AttemptTimeout    time.Duration
	RequestTimeout    time.Duration
	TerminalMessage   string
	Default           DefaultRoute
}

// DefaultEntryID prefixes the modelUsed value of default-path results.
const DefaultEntryID = "default"

// GatewayService runs the candidate fallback loop for completion requests.
type GatewayService struct {
	selector  CandidateSelector
	providers ProviderRegistry
	recorder  AttemptRecorder
	policy    DispatchPolicy
}

// NewGatewayService creates a new gateway service (DI constructor).
func NewGatewayService(
	selector CandidateSelector,
	providers ProviderRegistry,
	recorder AttemptRecorder,
	policy DispatchPolicy,
) *GatewayService {
	if policy.SystemInstruction == "" {
		policy.SystemInstruction = DefaultSystemInstruction
	}
	if policy.TerminalMessage == "" {
		policy.TerminalMessage = DefaultTerminalMessage
	}

	return &GatewayService{
		selector:  selector,
		providers: providers,
		recorder:  recorder,
		policy:    policy,
	}
}

// RunCompletion dispatches the prompt to the eligible candidates for the
// category, one at a time, and returns the first accepted result.
func (g *GatewayService) RunCompletion(ctx context.Context, prompt string, category Category) CompletionResult {
	ctx = observability.WithCategory(ctx, string(category))
	logger := observability.FromContext(ctx)

	if strings.TrimSpace(prompt) == "" {
		logger.Warn("rejecting empty prompt")
		return g.terminal(ReasonInvalidInput)
	}

	if g.policy.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.policy.RequestTimeout)
		defer cancel()
	}

	candidates, err := g.selector.Select(ctx, category)
	if err != nil {
		if !errors.Is(err, ErrNoCandidates) {
			logger.Warn("candidate selection failed, using default path", observability.Error(err))
		}
		return g.runDefault(ctx, prompt, category)
	}

	logger.Info("dispatching completion", observability.Int("candidates", len(candidates)))

	for i, candidate := range candidates {
		if ctx.Err() != nil {
			logger.Warn("request aborted before next candidate",
				observability.Int("remaining", len(candidates)-i),
				observability.Error(ctx.Err()))
			return g.terminal(reasonFromContext(ctx))
		}

		result := g.attempt(ctx, candidate, prompt, category, false)
		if result.Accepted() {
			result.ModelUsed = candidate.ID
			return result
		}

		logger.Warn("candidate failed, trying next",
			observability.String("candidate_id", candidate.ID),
			observability.String("target", candidate.Target().String()),
			observability.String("reason", string(result.Reason)),
			observability.Int("remaining", len(candidates)-i-1))
	}

	if ctx.Err() != nil {
		return g.terminal(reasonFromContext(ctx))
	}

	logger.Error("all candidates exhausted", observability.Int("candidates", len(candidates)))
	return g.terminal(ReasonExhausted)
}

// runDefault makes the single fallback call used when the pool is empty.
func (g *GatewayService) runDefault(ctx context.Context, prompt string, category Category) CompletionResult {
	logger := observability.FromContext(ctx)

	route := g.policy.Default
	if !route.Configured() {
		logger.Warn("no candidates and no default credential configured")
		return g.terminal(ReasonNoCandidates)
	}

	model := route.ModelFor(category)
	entry := ModelEntry{
		ID:         DefaultEntryID + ":" + model,
		Label:      "default route",
		Vendor:     route.Vendor,
		Model:      model,
		Category:   category,
		Kind:       KindDirect,
		Credential: route.Credential,
		Enabled:    true,
	}

	logger.Info("using default route",
		observability.String("vendor", route.Vendor),
		observability.String("default_model", model))

	result := g.attempt(ctx, entry, prompt, category, true)
	if !result.Accepted() {
		logger.Error("default route failed", observability.String("reason", string(result.Reason)))
		return g.terminal(ReasonNoCandidates)
	}

	result.ModelUsed = entry.ID
	return result
}

// attempt runs exactly one adapter invocation and records its telemetry.
func (g *GatewayService) attempt(
	ctx context.Context,
	entry ModelEntry,
	prompt string,
	category Category,
	defaultPath bool,
) CompletionResult {
	startedAt := time.Now()
	target := entry.Target()

	result := g.invoke(ctx, entry, target, prompt, category)

	// A canceled caller discards whatever the adapter produced.
	if ctx.Err() != nil {
		result = Failure(reasonFromContext(ctx))
	}
	if !result.Accepted() {
		result.Error = true
		if result.Reason == ReasonNone {
			result.Reason = ReasonEmptyContent
		}
	}

	outcome := OutcomeSuccess
	if !result.Accepted() {
		outcome = OutcomeFailure
	}

	if g.recorder != nil {
		g.recorder.Record(ctx, Attempt{
			RequestID:   observability.GetRequestID(ctx),
			CandidateID: entry.ID,
			Target:      target,
			Model:       entry.Model,
			Category:    category,
			Outcome:     outcome,
			Reason:      result.Reason,
			Latency:     time.Since(startedAt),
			DefaultPath: defaultPath,
			StartedAt:   startedAt,
		})
	}

	return result
}

func (g *GatewayService) invoke(
	ctx context.Context,
	entry ModelEntry,
	target Target,
	prompt string,
	category Category,
) CompletionResult {
	provider, err := g.providers.Get(ctx, target)
	if err != nil {
		observability.FromContext(ctx).Warn("no adapter for candidate",
			observability.String("candidate_id", entry.ID),
			observability.String("target", target.String()),
			observability.Error(err))
		return Failure(ReasonUnsupported)
	}

	attemptCtx := observability.WithProvider(ctx, provider.Name())
	attemptCtx = observability.WithModel(attemptCtx, entry.Model)
	if g.policy.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(attemptCtx, g.policy.AttemptTimeout)
		defer cancel()
	}

	result := provider.Invoke(attemptCtx, &Invocation{
		Prompt:            prompt,
		Model:             entry.Model,
		Credential:        entry.Credential,
		Target:            target,
		Category:          category,
		SystemInstruction: g.policy.SystemInstruction,
		Temperature:       g.policy.Temperature,
	})

	if !result.Accepted() && errors.Is(attemptCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		result.Reason = ReasonTimeout
	}

	return result
}

// terminal builds the fixed user-facing failure result.
func (g *GatewayService) terminal(reason FailureReason) CompletionResult {
	result := Failure(reason)
	result.Message = g.policy.TerminalMessage
	return result
}

func reasonFromContext(ctx context.Context) FailureReason {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ReasonTimeout
	}
	return ReasonCanceled
}
