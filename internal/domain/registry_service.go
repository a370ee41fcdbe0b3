package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/davidbz/shreegen/internal/observability"
)

const (
	aggregatedIDPrefix = "agg-"
	initialUsage       = "0 tokens"
	statusOnline       = "online"
)

// AggregatedRequest carries the operator input for a new gateway-routed entry.
type AggregatedRequest struct {
	Gateway    string `json:"gateway"`
	Model      string `json:"model"`
	Credential string `json:"credential"`
	Category   string `json:"category"`
}

// RegistryStats summarizes the registry for the operator dashboard.
type RegistryStats struct {
	ActiveDirect     int    `json:"active_direct"`
	ActiveAggregated int    `json:"active_aggregated"`
	TotalActive      int    `json:"total_active"`
	TotalUsage       string `json:"total_usage"`
}

// RegistryService applies operator mutations to the registry store and
// records an audit event for each of them.
type RegistryService struct {
	store      RegistryStore
	categories CategorySet
	now        func() time.Time

	// mu serializes read-modify-write cycles against the store.
	mu sync.Mutex
}

// NewRegistryService creates a new registry service (DI constructor).
func NewRegistryService(store RegistryStore, categories CategorySet) *RegistryService {
	if categories == nil {
		categories = NewCategorySet(nil)
	}
	return &RegistryService{
		store:      store,
		categories: categories,
		now:        time.Now,
	}
}

// Snapshot implements ModelRegistry.
func (s *RegistryService) Snapshot(ctx context.Context) (RegistrySnapshot, error) {
	return s.store.Snapshot(ctx)
}

// Categories returns the accepted category set.
func (s *RegistryService) Categories() CategorySet {
	return s.categories
}

// Stats computes active node counts and the estimated token usage of enabled entries.
func (s *RegistryService) Stats(ctx context.Context) (RegistryStats, error) {
	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		return RegistryStats{}, fmt.Errorf("failed to read registry: %w", err)
	}

	var stats RegistryStats
	var usage float64
	for _, entry := range snapshot.Direct {
		if entry.Enabled {
			stats.ActiveDirect++
			usage += ParseUsage(entry.Usage)
		}
	}
	for _, entry := range snapshot.Aggregated {
		if entry.Enabled {
			stats.ActiveAggregated++
			usage += ParseUsage(entry.Usage)
		}
	}
	stats.TotalActive = stats.ActiveDirect + stats.ActiveAggregated
	stats.TotalUsage = FormatUsage(usage)

	return stats, nil
}

// AddAggregated creates an enabled aggregated entry from operator input.
func (s *RegistryService) AddAggregated(ctx context.Context, actor string, req AggregatedRequest) (ModelEntry, error) {
	gateway := strings.TrimSpace(req.Gateway)
	model := strings.TrimSpace(req.Model)
	credential := strings.TrimSpace(req.Credential)

	if gateway == "" || model == "" || credential == "" || strings.TrimSpace(req.Category) == "" {
		return ModelEntry{}, fmt.Errorf("%w: gateway, model, credential and category are required", ErrInvalidEntry)
	}

	category, err := s.categories.Parse(req.Category)
	if err != nil {
		return ModelEntry{}, err
	}

	now := s.now().UTC()
	entry := ModelEntry{
		ID:          aggregatedIDPrefix + uuid.New().String(),
		Label:       model,
		Vendor:      gateway,
		Model:       model,
		Category:    category,
		Kind:        KindAggregated,
		Credential:  credential,
		Enabled:     true,
		Description: fmt.Sprintf("Accessed via %s aggregator.", gateway),
		Usage:       initialUsage,
		Status:      statusOnline,
		AddedDate:   now.Truncate(24 * time.Hour),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Put(ctx, entry); err != nil {
		return ModelEntry{}, fmt.Errorf("failed to store entry: %w", err)
	}

	s.audit(ctx, actor, AuditCreated, entry)

	observability.FromContext(ctx).Info("aggregated entry created",
		observability.String("entry_id", entry.ID),
		observability.String("gateway", entry.Vendor),
		observability.String("model", entry.Model),
		observability.String("category", string(entry.Category)))

	return entry, nil
}

// SeedDirect inserts catalog entries that are not yet stored. Existing
// entries are never overwritten so operator keys and toggles survive restarts.
func (s *RegistryService) SeedDirect(ctx context.Context, entries []ModelEntry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seeded := 0
	for _, entry := range entries {
		if entry.ID == "" || entry.Kind != KindDirect {
			return seeded, fmt.Errorf("%w: seed entries must be direct and carry an id", ErrInvalidEntry)
		}

		if _, err := s.store.Get(ctx, entry.ID); err == nil {
			continue
		} else if !isNotFound(err) {
			return seeded, fmt.Errorf("failed to look up entry %s: %w", entry.ID, err)
		}

		if entry.AddedDate.IsZero() {
			entry.AddedDate = s.now().UTC().Truncate(24 * time.Hour)
		}
		if err := s.store.Put(ctx, entry); err != nil {
			return seeded, fmt.Errorf("failed to seed entry %s: %w", entry.ID, err)
		}

		s.audit(ctx, "system", AuditSeeded, entry)
		seeded++
	}

	if seeded > 0 {
		observability.FromContext(ctx).Info("seeded direct catalog", observability.Int("entries", seeded))
	}

	return seeded, nil
}

// SetEnabled toggles an entry of either kind.
func (s *RegistryService) SetEnabled(ctx context.Context, actor, id string, enabled bool) (ModelEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.store.Get(ctx, id)
	if err != nil {
		return ModelEntry{}, err
	}

	if entry.Enabled == enabled {
		return entry, nil
	}

	entry.Enabled = enabled
	if err := s.store.Put(ctx, entry); err != nil {
		return ModelEntry{}, fmt.Errorf("failed to store entry: %w", err)
	}

	action := AuditDisabled
	if enabled {
		action = AuditEnabled
	}
	s.audit(ctx, actor, action, entry)

	return entry, nil
}

// SetCredential replaces the credential of an entry of either kind.
func (s *RegistryService) SetCredential(ctx context.Context, actor, id, credential string) (ModelEntry, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return ModelEntry{}, fmt.Errorf("%w: credential is required", ErrInvalidEntry)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.store.Get(ctx, id)
	if err != nil {
		return ModelEntry{}, err
	}

	entry.Credential = credential
	if err := s.store.Put(ctx, entry); err != nil {
		return ModelEntry{}, fmt.Errorf("failed to store entry: %w", err)
	}

	s.audit(ctx, actor, AuditCredentialRotated, entry)

	observability.FromContext(ctx).Info("credential rotated",
		observability.String("entry_id", entry.ID),
		observability.String("credential_hint", CredentialHint(credential)))

	return entry, nil
}

// RemoveAggregated deletes an aggregated entry. Direct entries can only be disabled.
func (s *RegistryService) RemoveAggregated(ctx context.Context, actor, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}

	if entry.Kind != KindAggregated {
		return fmt.Errorf("%w: %s", ErrDirectEntryNotRemovable, id)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	s.audit(ctx, actor, AuditRemoved, entry)

	return nil
}

// Audit returns the most recent audit events, newest first.
func (s *RegistryService) Audit(ctx context.Context, limit int) ([]AuditEvent, error) {
	return s.store.ListAudit(ctx, limit)
}

// audit appends an event; a failed write is logged and does not undo the mutation.
func (s *RegistryService) audit(ctx context.Context, actor string, action AuditAction, entry ModelEntry) {
	if actor == "" {
		actor = "anonymous"
	}

	event := AuditEvent{
		ID:             uuid.New().String(),
		At:             s.now().UTC(),
		Actor:          actor,
		Action:         action,
		EntryID:        entry.ID,
		Kind:           entry.Kind,
		CredentialHint: CredentialHint(entry.Credential),
	}

	if err := s.store.AppendAudit(ctx, event); err != nil {
		observability.FromContext(ctx).Error("failed to append audit event",
			observability.String("entry_id", entry.ID),
			observability.String("action", string(action)),
			observability.Error(err))
	}
}

func isNotFound(err error) bool {
	return err != nil && errors.Is(err, ErrEntryNotFound)
}
