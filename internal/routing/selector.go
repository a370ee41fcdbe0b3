// Package routing selects and orders the registry entries eligible for a
// completion request.
package routing

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/davidbz/shreegen/internal/domain"
	"github.com/davidbz/shreegen/internal/observability"
)

// Ranker orders an eligible candidate pool for attempt.
type Ranker interface {
	// Rank returns the candidates in attempt order. It may reorder in place.
	Rank(candidates []domain.ModelEntry) []domain.ModelEntry
}

// ShuffleRanker produces a uniformly random permutation on every call.
type ShuffleRanker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewShuffleRanker creates a ranker seeded from the runtime's entropy source.
func NewShuffleRanker() *ShuffleRanker {
	return &ShuffleRanker{
		mu:  sync.Mutex{},
		rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint:gosec // Load spreading, not security
	}
}

// NewSeededShuffleRanker creates a ranker with a fixed seed for reproducible tests.
func NewSeededShuffleRanker(seed1, seed2 uint64) *ShuffleRanker {
	return &ShuffleRanker{
		mu:  sync.Mutex{},
		rnd: rand.New(rand.NewPCG(seed1, seed2)), //nolint:gosec // Deterministic by intent
	}
}

// Rank shuffles the candidates in place.
func (r *ShuffleRanker) Rank(candidates []domain.ModelEntry) []domain.ModelEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rnd.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return candidates
}

// Selector implements domain.CandidateSelector over a model registry.
type Selector struct {
	registry domain.ModelRegistry
	ranker   Ranker
}

// NewSelector creates a selector. A nil ranker defaults to ShuffleRanker.
func NewSelector(registry domain.ModelRegistry, ranker Ranker) *Selector {
	if ranker == nil {
		ranker = NewShuffleRanker()
	}
	return &Selector{
		registry: registry,
		ranker:   ranker,
	}
}

// Select returns the eligible entries for the category in ranked order.
func (s *Selector) Select(ctx context.Context, category domain.Category) ([]domain.ModelEntry, error) {
	if category == "" {
		return nil, errors.New("category cannot be empty")
	}

	snapshot, err := s.registry.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read model registry: %w", err)
	}

	pool := Eligible(snapshot, category)
	if len(pool) == 0 {
		observability.FromContext(ctx).Info("no eligible candidates",
			observability.Int("direct_entries", len(snapshot.Direct)),
			observability.Int("aggregated_entries", len(snapshot.Aggregated)))
		return nil, domain.ErrNoCandidates
	}

	return s.ranker.Rank(pool), nil
}

// Eligible merges the filtered direct and aggregated collections, direct first.
func Eligible(snapshot domain.RegistrySnapshot, category domain.Category) []domain.ModelEntry {
	pool := make([]domain.ModelEntry, 0, len(snapshot.Direct)+len(snapshot.Aggregated))
	for _, entry := range snapshot.Direct {
		if DirectEligible(entry, category) {
			pool = append(pool, entry)
		}
	}
	for _, entry := range snapshot.Aggregated {
		if AggregatedEligible(entry, category) {
			pool = append(pool, entry)
		}
	}
	return pool
}

// DirectEligible reports whether a direct entry may serve the category.
func DirectEligible(entry domain.ModelEntry, category domain.Category) bool {
	return entry.Enabled &&
		entry.Category == category &&
		domain.HasCredential(entry.Credential) &&
		!domain.IsPlaceholderCredential(entry.Credential)
}

// AggregatedEligible reports whether an aggregated entry may serve the category.
// Operator-submitted gateway keys are not checked against the placeholder list.
func AggregatedEligible(entry domain.ModelEntry, category domain.Category) bool {
	return entry.Enabled &&
		entry.Category == category &&
		domain.HasCredential(entry.Credential)
}
