package domain

import (
	"fmt"
	"strings"
	"time"
)

// Category is the capability tag shared by registry entries and callers.
type Category string

// Default category set.
const (
	CategoryFast            Category = "fast"
	CategoryThinking        Category = "thinking"
	CategoryReasoning       Category = "reasoning"
	CategoryResearch        Category = "research"
	CategoryImageGeneration Category = "image-generation"
)

// DefaultCategories returns the category set used when none is configured.
func DefaultCategories() []Category {
	return []Category{
		CategoryFast,
		CategoryThinking,
		CategoryReasoning,
		CategoryResearch,
		CategoryImageGeneration,
	}
}

// categoryAliases maps labels used by the operator console and older clients.
//
//nolint:gochecknoglobals // Static lookup table
var categoryAliases = map[string]Category{
	"deep-reasoning":   CategoryReasoning,
	"deep-research":    CategoryResearch,
	"img-generation":   CategoryImageGeneration,
	"image":            CategoryImageGeneration,
	"image-generation": CategoryImageGeneration,
}

// NormalizeCategory lowercases a label, collapses whitespace into dashes and
// resolves known aliases. It does not validate against a category set.
func NormalizeCategory(label string) Category {
	normalized := strings.ToLower(strings.Join(strings.Fields(label), "-"))
	if alias, ok := categoryAliases[normalized]; ok {
		return alias
	}
	return Category(normalized)
}

// CategorySet is the closed set of categories accepted by the router.
type CategorySet map[Category]struct{}

// NewCategorySet builds a set from labels, normalizing each one.
func NewCategorySet(labels []string) CategorySet {
	set := make(CategorySet, len(labels))
	for _, label := range labels {
		if category := NormalizeCategory(label); category != "" {
			set[category] = struct{}{}
		}
	}
	if len(set) == 0 {
		for _, category := range DefaultCategories() {
			set[category] = struct{}{}
		}
	}
	return set
}

// Parse normalizes the label and checks it belongs to the set.
func (s CategorySet) Parse(label string) (Category, error) {
	category := NormalizeCategory(label)
	if _, ok := s[category]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, label)
	}
	return category, nil
}

// RoutingKind distinguishes vendor-native entries from gateway-routed ones.
type RoutingKind string

const (
	// KindDirect entries are served by a vendor-native adapter.
	KindDirect RoutingKind = "direct"

	// KindAggregated entries are served through an OpenAI-compatible gateway.
	KindAggregated RoutingKind = "aggregated"
)

// Target names the adapter family an entry dispatches to.
type Target struct {
	Kind RoutingKind `json:"kind"`
	Name string      `json:"name"`
}

// GatewayWildcard is the target name an aggregator adapter registers to
// serve every gateway it can resolve.
const GatewayWildcard = "*"

// DirectVendor builds a target for a vendor-native adapter.
func DirectVendor(name string) Target {
	return Target{Kind: KindDirect, Name: strings.ToLower(strings.TrimSpace(name))}
}

// AggregatorGateway builds a target for a gateway-routed adapter.
func AggregatorGateway(name string) Target {
	return Target{Kind: KindAggregated, Name: strings.ToLower(strings.TrimSpace(name))}
}

func (t Target) String() string {
	return string(t.Kind) + ":" + t.Name
}

// ModelEntry is one configured completion backend.
type ModelEntry struct {
	ID          string      `json:"id"`
	Label       string      `json:"label"`
	Vendor      string      `json:"vendor"`
	Model       string      `json:"model"`
	Category    Category    `json:"category"`
	Kind        RoutingKind `json:"kind"`
	Credential  string      `json:"-"`
	Enabled     bool        `json:"enabled"`
	Description string      `json:"description,omitempty"`

	// Display-only counters, never consulted by the router.
	Usage     string    `json:"usage,omitempty"`
	Status    string    `json:"status,omitempty"`
	AddedDate time.Time `json:"added_date"`
}

// Target returns the adapter target for the entry.
func (e ModelEntry) Target() Target {
	if e.Kind == KindAggregated {
		return AggregatorGateway(e.Vendor)
	}
	return DirectVendor(e.Vendor)
}

// RegistrySnapshot is a point-in-time read of both registry collections.
type RegistrySnapshot struct {
	Direct     []ModelEntry
	Aggregated []ModelEntry
}

// Source is one grounding or citation reference.
type Source struct {
	Title string `json:"title,omitempty"`
	URI   string `json:"uri"`
}

// FailureReason classifies why an attempt did not produce a usable result.
type FailureReason string

const (
	ReasonNone         FailureReason = ""
	ReasonTransport    FailureReason = "transport"
	ReasonHTTPStatus   FailureReason = "http_status"
	ReasonVendorError  FailureReason = "vendor_error"
	ReasonEmptyContent FailureReason = "empty_content"
	ReasonUnsupported  FailureReason = "unsupported_provider"
	ReasonTimeout      FailureReason = "timeout"
	ReasonCanceled     FailureReason = "canceled"
	ReasonInvalidInput FailureReason = "invalid_input"
	ReasonNoCandidates FailureReason = "no_candidates"
	ReasonExhausted    FailureReason = "exhausted"
)

// CompletionResult is the normalized outcome every adapter produces.
type CompletionResult struct {
	Text      string   `json:"text"`
	Sources   []Source `json:"sources"`
	ModelUsed string   `json:"modelUsed,omitempty"`
	Error     bool     `json:"error"`

	// Message carries the user-facing notice of a terminal failure.
	Message string `json:"message,omitempty"`

	Reason FailureReason `json:"-"`
}

// Accepted reports whether the orchestrator may return the result as final.
func (r CompletionResult) Accepted() bool {
	return !r.Error && r.Text != ""
}

// Failure builds a failed result with the given reason.
func Failure(reason FailureReason) CompletionResult {
	return CompletionResult{
		Text:    "",
		Sources: []Source{},
		Error:   true,
		Reason:  reason,
	}
}

// Success builds a successful result.
func Success(text string, sources []Source) CompletionResult {
	if sources == nil {
		sources = []Source{}
	}
	return CompletionResult{
		Text:    text,
		Sources: sources,
		Error:   false,
	}
}

// Invocation is one normalized adapter request.
type Invocation struct {
	Prompt            string
	Model             string
	Credential        string
	Target            Target
	Category          Category
	SystemInstruction string
	Temperature       float64
}

// AttemptOutcome is the result class of one dispatch attempt.
type AttemptOutcome string

const (
	OutcomeSuccess AttemptOutcome = "success"
	OutcomeFailure AttemptOutcome = "failure"
)

// Attempt is the telemetry record of one adapter invocation.
type Attempt struct {
	RequestID   string         `json:"request_id,omitempty"`
	CandidateID string         `json:"candidate_id"`
	Target      Target         `json:"target"`
	Model       string         `json:"model"`
	Category    Category       `json:"category"`
	Outcome     AttemptOutcome `json:"outcome"`
	Reason      FailureReason  `json:"reason,omitempty"`
	Latency     time.Duration  `json:"latency"`
	DefaultPath bool           `json:"default_path"`
	StartedAt   time.Time      `json:"started_at"`
}

// AuditAction names an operator mutation of the registry.
type AuditAction string

const (
	AuditCreated           AuditAction = "created"
	AuditSeeded            AuditAction = "seeded"
	AuditEnabled           AuditAction = "enabled"
	AuditDisabled          AuditAction = "disabled"
	AuditCredentialRotated AuditAction = "credential_rotated"
	AuditRemoved           AuditAction = "removed"
)

// AuditEvent records who changed what in the registry.
type AuditEvent struct {
	ID             string      `json:"id"`
	At             time.Time   `json:"at"`
	Actor          string      `json:"actor"`
	Action         AuditAction `json:"action"`
	EntryID        string      `json:"entry_id"`
	Kind           RoutingKind `json:"kind"`
	CredentialHint string      `json:"credential_hint,omitempty"`
}
