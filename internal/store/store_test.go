package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobscout-engine/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db.Pool))
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, Migrate(db.Pool))
}

func TestSearchHistoryRoundTrip(t *testing.T) {
	db := openTestDB(t)

	criteria := domain.SearchCriteria{Query: "golang engineer", City: "Austin", SalaryMin: 120000}
	res := domain.AggregatedResult{
		TotalCount:        7,
		DuplicatesRemoved: 2,
		TookMS:            340,
		Sources: []domain.SourceResult{
			{Source: "jsearch", Success: true, LatencyMS: 120},
			{Source: "adzuna", Success: false, Error: "timeout"},
		},
	}

	id, err := InsertSearch(db.Pool, criteria, res)
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := ListSearches(db.Pool, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "golang engineer", got[0].Query)
	assert.Equal(t, criteria, got[0].Criteria)
	assert.Equal(t, 7, got[0].TotalCount)
	assert.Equal(t, 2, got[0].DuplicatesRemoved)
	require.Len(t, got[0].Sources, 2)
	assert.Equal(t, "timeout", got[0].Sources[1].Error)
	assert.Empty(t, got[0].Sources[0].Jobs, "posting bodies are not stored in history")
}

func TestListSearchesNewestFirst(t *testing.T) {
	db := openTestDB(t)

	for _, q := range []string{"first", "second", "third"} {
		_, err := InsertSearch(db.Pool, domain.SearchCriteria{Query: q}, domain.AggregatedResult{})
		require.NoError(t, err)
	}

	got, err := ListSearches(db.Pool, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "third", got[0].Query)
	assert.Equal(t, "second", got[1].Query)
}

func TestUpsertPostingRefreshesExistingRow(t *testing.T) {
	db := openTestDB(t)

	p := domain.Posting{
		ID:           "jsearch-abc",
		Title:        "Backend Engineer",
		Company:      "Acme",
		Location:     "Austin, TX",
		Salary:       "120k",
		SalaryMin:    120000,
		Source:       "jsearch",
		Remote:       true,
		Requirements: []string{"Go", "SQL"},
	}
	require.NoError(t, UpsertPosting(db.Pool, p))

	p.Title = "Senior Backend Engineer"
	p.SalaryMin = 140000
	require.NoError(t, UpsertPosting(db.Pool, p))

	n, err := CountPostings(db.Pool)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := ListRecentPostings(db.Pool, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Senior Backend Engineer", got[0].Title)
	assert.Equal(t, 140000, got[0].SalaryMin)
	assert.True(t, got[0].Remote)
	assert.Equal(t, []string{"Go", "SQL"}, got[0].Requirements)
}

func TestSavePostingsBatch(t *testing.T) {
	db := openTestDB(t)

	batch := []domain.Posting{
		{ID: "a-1", Title: "One", Company: "C1", Source: "a"},
		{ID: "b-2", Title: "Two", Company: "C2", Source: "b"},
	}
	require.NoError(t, SavePostings(db.Pool, batch))

	n, err := CountPostings(db.Pool)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
