package provider

import (
	"context"

	"jobscout-engine/internal/domain"
)

// Provider is implemented once per external job source. Search never
// returns an error for ordinary upstream trouble (HTTP failure, bad
// payload, missing credentials); adapters absorb those and return
// either an empty list or tagged sample postings. An error here means
// the call itself could not run (cancelled context, bad criteria).
type Provider interface {
	Name() string
	Search(ctx context.Context, c domain.SearchCriteria) ([]domain.Posting, error)
}

// Registered pairs a provider with its dedup priority. Lower number wins
// a collision. Priority is explicit configuration, not slice position,
// so sources can be reordered without silently changing semantics.
type Registered struct {
	Provider
	Priority int
}
