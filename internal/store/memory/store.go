// Package memory provides an in-process registry store for development and tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/davidbz/shreegen/internal/domain"
)

const defaultAuditLimit = 1000

// Store implements domain.RegistryStore in memory.
// Direct entries keep insertion order; aggregated entries are newest first.
type Store struct {
	mu         sync.RWMutex
	entries    map[string]domain.ModelEntry
	direct     []string
	aggregated []string
	audit      []domain.AuditEvent
	auditLimit int
}

// NewStore creates an empty store. A non-positive auditLimit uses the default.
func NewStore(auditLimit int) *Store {
	if auditLimit <= 0 {
		auditLimit = defaultAuditLimit
	}
	return &Store{
		entries:    make(map[string]domain.ModelEntry),
		auditLimit: auditLimit,
	}
}

// Snapshot returns copies of both collections.
func (s *Store) Snapshot(_ context.Context) (domain.RegistrySnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.RegistrySnapshot{
		Direct:     s.collect(s.direct),
		Aggregated: s.collect(s.aggregated),
	}, nil
}

// Get returns the entry with the given id.
func (s *Store) Get(_ context.Context, id string) (domain.ModelEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	if !ok {
		return domain.ModelEntry{}, fmt.Errorf("%w: %s", domain.ErrEntryNotFound, id)
	}
	return entry, nil
}

// Put inserts or replaces an entry. An id cannot move between collections.
func (s *Store) Put(_ context.Context, entry domain.ModelEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("%w: id is required", domain.ErrInvalidEntry)
	}
	if entry.Kind != domain.KindDirect && entry.Kind != domain.KindAggregated {
		return fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidEntry, entry.Kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.entries[entry.ID]; ok {
		if existing.Kind != entry.Kind {
			return fmt.Errorf("%w: %s is a %s entry", domain.ErrDuplicateEntry, entry.ID, existing.Kind)
		}
		s.entries[entry.ID] = entry
		return nil
	}

	s.entries[entry.ID] = entry
	if entry.Kind == domain.KindDirect {
		s.direct = append(s.direct, entry.ID)
	} else {
		s.aggregated = append([]string{entry.ID}, s.aggregated...)
	}

	return nil
}

// Delete removes an entry.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrEntryNotFound, id)
	}

	delete(s.entries, id)
	if entry.Kind == domain.KindDirect {
		s.direct = slices.DeleteFunc(s.direct, func(other string) bool { return other == id })
	} else {
		s.aggregated = slices.DeleteFunc(s.aggregated, func(other string) bool { return other == id })
	}

	return nil
}

// AppendAudit records an event, discarding the oldest beyond the limit.
func (s *Store) AppendAudit(_ context.Context, event domain.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.audit = append(s.audit, event)
	if overflow := len(s.audit) - s.auditLimit; overflow > 0 {
		s.audit = slices.Delete(s.audit, 0, overflow)
	}

	return nil
}

// ListAudit returns up to limit events, newest first. A non-positive limit returns all.
func (s *Store) ListAudit(_ context.Context, limit int) ([]domain.AuditEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.audit) {
		limit = len(s.audit)
	}

	events := make([]domain.AuditEvent, 0, limit)
	for i := len(s.audit) - 1; i >= 0 && len(events) < limit; i-- {
		events = append(events, s.audit[i])
	}

	return events, nil
}

func (s *Store) collect(ids []string) []domain.ModelEntry {
	entries := make([]domain.ModelEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, s.entries[id])
	}
	return entries
}
