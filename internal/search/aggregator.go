// Package search is the multi-source aggregation engine: it fans a
// single query out to every registered provider, tolerates per-provider
// failure, deduplicates overlapping postings, and ranks the merged set.
package search

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/provider"
)

type Aggregator struct {
	providers  []provider.Registered
	priorities map[string]int
}

func New(providers []provider.Registered) *Aggregator {
	prios := make(map[string]int, len(providers))
	for _, p := range providers {
		prios[p.Name()] = p.Priority
	}
	return &Aggregator{providers: providers, priorities: prios}
}

// Providers returns the registry in fixed registration order.
func (a *Aggregator) Providers() []provider.Registered { return a.providers }

// Search runs the full pipeline: settle-all fan-out, flatten, dedup,
// rank, summarize. It never fails outright. A provider timing out or
// erroring degrades that provider's SourceResult and nothing else, and
// even a fully failed run returns a well-formed empty result.
func (a *Aggregator) Search(ctx context.Context, c domain.SearchCriteria) domain.AggregatedResult {
	start := time.Now()

	results := make([]domain.SourceResult, len(a.providers))

	var g errgroup.Group
	for i, p := range a.providers {
		i, p := i, p
		g.Go(func() error {
			// adapters bound their own HTTP calls; the aggregator only
			// measures time, it never imposes deadlines
			t0 := time.Now()
			jobs, err := p.Search(ctx, c)
			if err != nil {
				log.Printf("[search] source=%s err=%v", p.Name(), err)
				results[i] = domain.SourceResult{
					Source:  p.Name(),
					Success: false,
					Jobs:    []domain.Posting{},
					Error:   err.Error(),
				}
				return nil // best-effort: never cancel sibling providers
			}
			results[i] = domain.SourceResult{
				Source:    p.Name(),
				Success:   true,
				Jobs:      jobs,
				LatencyMS: time.Since(t0).Milliseconds(),
			}
			return nil
		})
	}
	_ = g.Wait()

	var flattened []domain.Posting
	for _, r := range results {
		flattened = append(flattened, r.Jobs...)
	}

	unique := Dedup(flattened, a.priorities)
	Rank(unique, c, a.priorities)

	bySource := make(map[string]int)
	for _, p := range unique {
		bySource[p.Source]++
	}

	res := domain.AggregatedResult{
		Jobs:              unique,
		Sources:           results,
		TotalCount:        len(unique),
		JobsBySource:      bySource,
		DuplicatesRemoved: len(flattened) - len(unique),
		TookMS:            time.Since(start).Milliseconds(),
	}

	ok := 0
	for _, r := range results {
		if r.Success {
			ok++
		}
	}
	log.Printf("[search] query=%q sources_ok=%d/%d total=%d dupes=%d took_ms=%d",
		c.Query, ok, len(results), res.TotalCount, res.DuplicatesRemoved, res.TookMS)

	return res
}
