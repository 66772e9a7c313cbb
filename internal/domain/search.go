package domain

// SearchCriteria describes one user-initiated search. Immutable per
// invocation; providers receive the same value concurrently.
type SearchCriteria struct {
	Query            string `json:"query"`
	City             string `json:"city,omitempty"`
	Country          string `json:"country,omitempty"`
	SalaryMin        int    `json:"salaryMin,omitempty"`
	SalaryMax        int    `json:"salaryMax,omitempty"`
	JobType          string `json:"jobType,omitempty"`
	Remote           bool   `json:"remote,omitempty"`
	PostedWithinDays int    `json:"postedWithinDays,omitempty"`
	// Description is a free-text job-description blob some providers use
	// for semantic matching.
	Description string `json:"description,omitempty"`
}

// SourceResult is the per-provider outcome of one aggregated search.
// Exactly one is produced per configured provider, success or not.
type SourceResult struct {
	Source    string    `json:"source"`
	Success   bool      `json:"success"`
	Jobs      []Posting `json:"jobs"`
	Error     string    `json:"error,omitempty"`
	LatencyMS int64     `json:"latencyMs"`
}

// AggregatedResult is the merged, deduplicated, ranked output of one
// search across every provider.
type AggregatedResult struct {
	Jobs              []Posting      `json:"jobs"`
	Sources           []SourceResult `json:"sources"`
	TotalCount        int            `json:"totalCount"`
	JobsBySource      map[string]int `json:"jobsBySource"`
	DuplicatesRemoved int            `json:"duplicatesRemoved"`
	TookMS            int64          `json:"tookMs"`
}
