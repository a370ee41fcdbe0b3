// Package redis provides a durable registry store on Redis hashes, with
// credentials sealed at rest and a capped audit list.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/shreegen/internal/domain"
	"github.com/davidbz/shreegen/internal/observability"
)

const defaultAuditLimit = 1000

// Sealer encrypts credentials before they reach Redis.
type Sealer interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}

// Store implements domain.RegistryStore on Redis.
//
// Layout:
//
//	<prefix>:models:direct      hash id -> record JSON
//	<prefix>:models:aggregated  hash id -> record JSON
//	<prefix>:models:kind        hash id -> kind
//	<prefix>:audit              list of event JSON, newest first
type Store struct {
	client     *redis.Client
	sealer     Sealer
	prefix     string
	auditLimit int
}

// record is the stored form of an entry; the credential only travels sealed.
type record struct {
	domain.ModelEntry

	SealedCredential string `json:"sealed_credential,omitempty"`
}

// NewStore creates a new Redis registry store.
func NewStore(client *redis.Client, sealer Sealer, prefix string, auditLimit int) (*Store, error) {
	if client == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if sealer == nil {
		return nil, errors.New("credential sealer cannot be nil")
	}
	if prefix == "" {
		prefix = "shreegen"
	}
	if auditLimit <= 0 {
		auditLimit = defaultAuditLimit
	}

	return &Store{
		client:     client,
		sealer:     sealer,
		prefix:     prefix,
		auditLimit: auditLimit,
	}, nil
}

func (s *Store) collectionKey(kind domain.RoutingKind) string {
	return s.prefix + ":models:" + string(kind)
}

func (s *Store) kindKey() string {
	return s.prefix + ":models:kind"
}

func (s *Store) auditKey() string {
	return s.prefix + ":audit"
}

// Snapshot reads both collections in one round trip.
func (s *Store) Snapshot(ctx context.Context) (domain.RegistrySnapshot, error) {
	pipe := s.client.Pipeline()
	directCmd := pipe.HGetAll(ctx, s.collectionKey(domain.KindDirect))
	aggregatedCmd := pipe.HGetAll(ctx, s.collectionKey(domain.KindAggregated))

	if _, err := pipe.Exec(ctx); err != nil {
		return domain.RegistrySnapshot{}, fmt.Errorf("failed to read registry: %w", err)
	}

	direct := s.decodeAll(ctx, directCmd.Val())
	aggregated := s.decodeAll(ctx, aggregatedCmd.Val())

	sort.Slice(direct, func(i, j int) bool {
		return direct[i].ID < direct[j].ID
	})
	sort.Slice(aggregated, func(i, j int) bool {
		if !aggregated[i].AddedDate.Equal(aggregated[j].AddedDate) {
			return aggregated[i].AddedDate.After(aggregated[j].AddedDate)
		}
		return aggregated[i].ID < aggregated[j].ID
	})

	return domain.RegistrySnapshot{Direct: direct, Aggregated: aggregated}, nil
}

// Get returns the entry with the given id.
func (s *Store) Get(ctx context.Context, id string) (domain.ModelEntry, error) {
	kind, err := s.kindOf(ctx, id)
	if err != nil {
		return domain.ModelEntry{}, err
	}

	raw, err := s.client.HGet(ctx, s.collectionKey(kind), id).Result()
	if errors.Is(err, redis.Nil) {
		return domain.ModelEntry{}, fmt.Errorf("%w: %s", domain.ErrEntryNotFound, id)
	}
	if err != nil {
		return domain.ModelEntry{}, fmt.Errorf("failed to read entry %s: %w", id, err)
	}

	return s.decode(raw)
}

// Put inserts or replaces an entry. An id cannot move between collections.
func (s *Store) Put(ctx context.Context, entry domain.ModelEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("%w: id is required", domain.ErrInvalidEntry)
	}
	if entry.Kind != domain.KindDirect && entry.Kind != domain.KindAggregated {
		return fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidEntry, entry.Kind)
	}

	existing, err := s.kindOf(ctx, entry.ID)
	switch {
	case err == nil && existing != entry.Kind:
		return fmt.Errorf("%w: %s is a %s entry", domain.ErrDuplicateEntry, entry.ID, existing)
	case err != nil && !errors.Is(err, domain.ErrEntryNotFound):
		return err
	}

	raw, err := s.encode(entry)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.collectionKey(entry.Kind), entry.ID, raw)
		pipe.HSet(ctx, s.kindKey(), entry.ID, string(entry.Kind))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write entry %s: %w", entry.ID, err)
	}

	return nil
}

// Delete removes an entry.
func (s *Store) Delete(ctx context.Context, id string) error {
	kind, err := s.kindOf(ctx, id)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HDel(ctx, s.collectionKey(kind), id)
		pipe.HDel(ctx, s.kindKey(), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", id, err)
	}

	return nil
}

// AppendAudit pushes an event and trims the list to the configured limit.
func (s *Store) AppendAudit(ctx context.Context, event domain.AuditEvent) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, s.auditKey(), raw)
		pipe.LTrim(ctx, s.auditKey(), 0, int64(s.auditLimit-1))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append audit event: %w", err)
	}

	return nil
}

// ListAudit returns up to limit events, newest first. A non-positive limit returns all.
func (s *Store) ListAudit(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	values, err := s.client.LRange(ctx, s.auditKey(), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read audit trail: %w", err)
	}

	events := make([]domain.AuditEvent, 0, len(values))
	for _, raw := range values {
		var event domain.AuditEvent
		if err := json.Unmarshal([]byte(raw), &event); err != nil {
			observability.FromContext(ctx).Warn("skipping unreadable audit event", observability.Error(err))
			continue
		}
		events = append(events, event)
	}

	return events, nil
}

func (s *Store) kindOf(ctx context.Context, id string) (domain.RoutingKind, error) {
	kind, err := s.client.HGet(ctx, s.kindKey(), id).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", domain.ErrEntryNotFound, id)
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up entry %s: %w", id, err)
	}
	return domain.RoutingKind(kind), nil
}

func (s *Store) encode(entry domain.ModelEntry) (string, error) {
	sealed, err := s.sealer.Seal(entry.Credential)
	if err != nil {
		return "", fmt.Errorf("failed to seal credential for %s: %w", entry.ID, err)
	}

	raw, err := json.Marshal(record{ModelEntry: entry, SealedCredential: sealed})
	if err != nil {
		return "", fmt.Errorf("failed to marshal entry %s: %w", entry.ID, err)
	}

	return string(raw), nil
}

func (s *Store) decode(raw string) (domain.ModelEntry, error) {
	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return domain.ModelEntry{}, fmt.Errorf("failed to unmarshal entry: %w", err)
	}

	credential, err := s.sealer.Open(rec.SealedCredential)
	if err != nil {
		return domain.ModelEntry{}, fmt.Errorf("failed to open credential for %s: %w", rec.ID, err)
	}

	entry := rec.ModelEntry
	entry.Credential = credential

	return entry, nil
}

// decodeAll skips entries that cannot be decoded so one corrupt record does
// not take the whole collection offline.
func (s *Store) decodeAll(ctx context.Context, values map[string]string) []domain.ModelEntry {
	entries := make([]domain.ModelEntry, 0, len(values))
	for id, raw := range values {
		entry, err := s.decode(raw)
		if err != nil {
			observability.FromContext(ctx).Error("skipping unreadable registry entry",
				observability.String("entry_id", id),
				observability.Error(err))
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}
