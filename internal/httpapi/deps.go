package httpapi

import (
	"context"
	"database/sql"
	"sync/atomic"

	"jobscout-engine/internal/config"
	"jobscout-engine/internal/contacts"
	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/events"
	"jobscout-engine/internal/provider"
)

// Searcher is the aggregation entrypoint, injected for testability.
type Searcher interface {
	Search(ctx context.Context, c domain.SearchCriteria) domain.AggregatedResult
}

// ContactFinder is the profile lookup entrypoint.
type ContactFinder interface {
	Search(ctx context.Context, params contacts.SearchParams) []domain.Profile
	AdvancedSearch(ctx context.Context, params contacts.AdvancedParams) []domain.Profile
}

type Deps struct {
	DB *sql.DB

	Hub *events.Hub

	Searcher Searcher
	Contacts ContactFinder

	// the registry in fixed registration order, for GET /sources
	Providers []provider.Registered

	// Atomic store holding config.Config
	CfgVal *atomic.Value

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}
