package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"jobscout-engine/internal/domain"
)

// UpsertPosting inserts the posting or, when its provider-namespaced
// id is already known, refreshes the row and bumps last_seen.
func UpsertPosting(db *sql.DB, p domain.Posting) error {
	reqs, _ := json.Marshal(p.Requirements)
	bens, _ := json.Marshal(p.Benefits)
	now := time.Now().UTC().Format(time.RFC3339)

	remote := 0
	if p.Remote {
		remote = 1
	}

	_, err := db.Exec(`
INSERT INTO postings (id, title, company, location, salary, salary_min, salary_max,
  description, apply_url, posted_at, source, job_type, experience_level, remote,
  requirements, benefits, first_seen, last_seen)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  title = excluded.title,
  company = excluded.company,
  location = excluded.location,
  salary = excluded.salary,
  salary_min = excluded.salary_min,
  salary_max = excluded.salary_max,
  description = excluded.description,
  apply_url = excluded.apply_url,
  posted_at = excluded.posted_at,
  job_type = excluded.job_type,
  experience_level = excluded.experience_level,
  remote = excluded.remote,
  requirements = excluded.requirements,
  benefits = excluded.benefits,
  last_seen = excluded.last_seen;`,
		p.ID, p.Title, p.Company, p.Location, p.Salary, p.SalaryMin, p.SalaryMax,
		p.Description, p.ApplyURL, p.PostedAt, p.Source, p.JobType, p.ExperienceLevel,
		remote, string(reqs), string(bens), now, now,
	)
	if err != nil {
		return fmt.Errorf("upsert posting: %w", err)
	}
	return nil
}

// SavePostings upserts a batch, returning the first error but only
// after attempting every row.
func SavePostings(db *sql.DB, postings []domain.Posting) error {
	var firstErr error
	for _, p := range postings {
		if err := UpsertPosting(db, p); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// ListRecentPostings returns postings ordered by last_seen descending.
func ListRecentPostings(db *sql.DB, limit int) ([]domain.Posting, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := db.Query(`
SELECT id, title, company, location, salary, salary_min, salary_max,
  description, apply_url, posted_at, source, job_type, experience_level, remote,
  requirements, benefits
FROM postings
ORDER BY last_seen DESC, id
LIMIT ?;`, limit)
	if err != nil {
		return nil, fmt.Errorf("list postings: %w", err)
	}
	defer rows.Close()

	out := []domain.Posting{}
	for rows.Next() {
		var p domain.Posting
		var remote int
		var reqs, bens string
		if err := rows.Scan(&p.ID, &p.Title, &p.Company, &p.Location, &p.Salary,
			&p.SalaryMin, &p.SalaryMax, &p.Description, &p.ApplyURL, &p.PostedAt,
			&p.Source, &p.JobType, &p.ExperienceLevel, &remote, &reqs, &bens); err != nil {
			return nil, fmt.Errorf("scan posting: %w", err)
		}
		p.Remote = remote != 0
		_ = json.Unmarshal([]byte(reqs), &p.Requirements)
		_ = json.Unmarshal([]byte(bens), &p.Benefits)
		out = append(out, p)
	}
	return out, rows.Err()
}

func CountPostings(db *sql.DB) (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM postings;`).Scan(&n)
	return n, err
}
