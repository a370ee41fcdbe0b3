package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/davidbz/shreegen/internal/domain"
)

// Registry implements the ProviderRegistry interface.
type Registry struct {
	mu        sync.RWMutex
	providers map[domain.Target]domain.Provider
}

// NewRegistry creates a new provider registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:        sync.RWMutex{},
		providers: make(map[domain.Target]domain.Provider),
	}
}

// Register adds a provider under every target it serves.
func (r *Registry) Register(_ context.Context, provider domain.Provider) error {
	if provider == nil {
		return errors.New("provider cannot be nil")
	}

	name := provider.Name()
	if name == "" {
		return errors.New("provider name cannot be empty")
	}

	targets := provider.Targets()
	if len(targets) == 0 {
		return fmt.Errorf("provider %s serves no targets", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, target := range targets {
		if target.Name == "" {
			return fmt.Errorf("provider %s declares an empty target", name)
		}
		if existing, exists := r.providers[target]; exists {
			return fmt.Errorf("target %s already registered by %s", target, existing.Name())
		}
	}

	for _, target := range targets {
		r.providers[target] = provider
	}

	return nil
}

// Get retrieves the provider for a target. Aggregated targets without a
// dedicated provider resolve to the gateway wildcard provider.
func (r *Registry) Get(_ context.Context, target domain.Target) (domain.Provider, error) {
	if target.Name == "" {
		return nil, fmt.Errorf("%w: empty target name", domain.ErrProviderNotFound)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if provider, exists := r.providers[target]; exists {
		return provider, nil
	}

	if target.Kind == domain.KindAggregated {
		if provider, exists := r.providers[domain.AggregatorGateway(domain.GatewayWildcard)]; exists {
			return provider, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrProviderNotFound, target)
}

// List returns all registered targets in a stable order.
func (r *Registry) List(_ context.Context) ([]domain.Target, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	targets := make([]domain.Target, 0, len(r.providers))
	for target := range r.providers {
		targets = append(targets, target)
	}

	sort.Slice(targets, func(i, j int) bool {
		return targets[i].String() < targets[j].String()
	})

	return targets, nil
}
