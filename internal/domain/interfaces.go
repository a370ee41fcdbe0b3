package domain

import "context"

// Provider adapts one backend family to the completion result contract.
type Provider interface {
	// Invoke issues exactly one upstream call and normalizes its outcome.
	// It never returns an error; failures are reported via CompletionResult.Error.
	Invoke(ctx context.Context, inv *Invocation) CompletionResult

	// Name returns the provider identifier.
	Name() string

	// Targets returns the routing targets this provider serves.
	Targets() []Target
}

// ProviderRegistry binds routing targets to providers.
type ProviderRegistry interface {
	// Register adds a provider under every target it serves.
	Register(ctx context.Context, provider Provider) error

	// Get retrieves the provider for a target.
	Get(ctx context.Context, target Target) (Provider, error)

	// List returns all registered targets.
	List(ctx context.Context) ([]Target, error)
}

// ModelRegistry is the read side of the model configuration.
type ModelRegistry interface {
	// Snapshot returns the current direct and aggregated entries.
	Snapshot(ctx context.Context) (RegistrySnapshot, error)
}

// RegistryStore persists model entries and their audit trail.
type RegistryStore interface {
	ModelRegistry

	// Get returns a single entry by id.
	Get(ctx context.Context, id string) (ModelEntry, error)

	// Put inserts or replaces an entry.
	Put(ctx context.Context, entry ModelEntry) error

	// Delete removes an entry by id.
	Delete(ctx context.Context, id string) error

	// AppendAudit records an audit event.
	AppendAudit(ctx context.Context, event AuditEvent) error

	// ListAudit returns the most recent audit events, newest first.
	ListAudit(ctx context.Context, limit int) ([]AuditEvent, error)
}

// CandidateSelector turns a category into an ordered attempt sequence.
type CandidateSelector interface {
	// Select returns eligible entries in attempt order, or ErrNoCandidates.
	Select(ctx context.Context, category Category) ([]ModelEntry, error)
}

// AttemptRecorder receives one record per adapter invocation.
type AttemptRecorder interface {
	// Record stores an attempt for operator inspection.
	Record(ctx context.Context, attempt Attempt)
}
