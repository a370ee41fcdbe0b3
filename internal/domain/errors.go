package domain

import "errors"

var (
	// ErrNoCandidates indicates no registry entry is eligible for the request.
	ErrNoCandidates = errors.New("no eligible candidates")

	// ErrInvalidCategory indicates a category outside the configured set.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrEntryNotFound indicates the registry has no entry with the given id.
	ErrEntryNotFound = errors.New("model entry not found")

	// ErrDuplicateEntry indicates an entry id is already taken.
	ErrDuplicateEntry = errors.New("model entry already exists")

	// ErrDirectEntryNotRemovable indicates an attempt to delete a seeded direct entry.
	ErrDirectEntryNotRemovable = errors.New("direct entries can only be disabled")

	// ErrInvalidEntry indicates missing or malformed entry fields.
	ErrInvalidEntry = errors.New("invalid model entry")

	// ErrProviderNotFound indicates no adapter is registered for a target.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrUnsupportedProvider indicates a gateway whose endpoint cannot be derived.
	ErrUnsupportedProvider = errors.New("unsupported provider")
)
