package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"jobscout-engine/internal/domain"
)

// SearchRecord is one row of search history: the criteria sent in plus
// the aggregate outcome, with the per-source breakdown kept as JSON.
type SearchRecord struct {
	ID                int64                 `json:"id"`
	Query             string                `json:"query"`
	Criteria          domain.SearchCriteria `json:"criteria"`
	TotalCount        int                   `json:"totalCount"`
	DuplicatesRemoved int                   `json:"duplicatesRemoved"`
	TookMS            int64                 `json:"tookMs"`
	Sources           []domain.SourceResult `json:"sources"`
	CreatedAt         string                `json:"createdAt"`
}

// InsertSearch records one completed aggregated search. Posting bodies
// are stored separately; the history row keeps only the summary.
func InsertSearch(db *sql.DB, c domain.SearchCriteria, res domain.AggregatedResult) (int64, error) {
	criteria, err := json.Marshal(c)
	if err != nil {
		return 0, fmt.Errorf("marshal criteria: %w", err)
	}

	// strip posting bodies from the stored source breakdown
	slim := make([]domain.SourceResult, len(res.Sources))
	for i, s := range res.Sources {
		s.Jobs = nil
		slim[i] = s
	}
	sources, err := json.Marshal(slim)
	if err != nil {
		return 0, fmt.Errorf("marshal sources: %w", err)
	}

	r, err := db.Exec(`
INSERT INTO searches (query, criteria, total_count, duplicates_removed, took_ms, sources, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?);`,
		c.Query, string(criteria), res.TotalCount, res.DuplicatesRemoved, res.TookMS,
		string(sources), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("insert search: %w", err)
	}
	return r.LastInsertId()
}

// ListSearches returns recent history, newest first.
func ListSearches(db *sql.DB, limit int) ([]SearchRecord, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := db.Query(`
SELECT id, query, criteria, total_count, duplicates_removed, took_ms, sources, created_at
FROM searches
ORDER BY id DESC
LIMIT ?;`, limit)
	if err != nil {
		return nil, fmt.Errorf("list searches: %w", err)
	}
	defer rows.Close()

	out := []SearchRecord{}
	for rows.Next() {
		var rec SearchRecord
		var criteria, sources string
		if err := rows.Scan(&rec.ID, &rec.Query, &criteria, &rec.TotalCount,
			&rec.DuplicatesRemoved, &rec.TookMS, &sources, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan search: %w", err)
		}
		_ = json.Unmarshal([]byte(criteria), &rec.Criteria)
		_ = json.Unmarshal([]byte(sources), &rec.Sources)
		out = append(out, rec)
	}
	return out, rows.Err()
}
