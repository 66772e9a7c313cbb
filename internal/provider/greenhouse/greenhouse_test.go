package greenhouse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/provider/fallback"
	"jobscout-engine/internal/provider/util"
)

func testFetcher(t *testing.T, boards []string, handler http.HandlerFunc) *Fetcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{Boards: boards, BaseURL: srv.URL}, util.NewHostLimiter(100, 100))
}

func boardPayload(jobs ...boardJob) []byte {
	b, _ := json.Marshal(boardResponse{Jobs: jobs})
	return b
}

func TestSearchNormalizesBoardJobs(t *testing.T) {
	f := testFetcher(t, []string{"acme-robotics"}, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/acme-robotics/jobs", r.URL.Path)
		w.Write(boardPayload(boardJob{
			ID:          42,
			Title:       "Senior Software Engineer",
			AbsoluteURL: "https://boards.greenhouse.io/acme-robotics/jobs/42",
			Content:     "<p>Build robots in Go. Remote friendly.</p>",
		}))
	})

	got, err := f.Search(context.Background(), domain.SearchCriteria{Query: "engineer"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	p := got[0]
	assert.Equal(t, "greenhouse:acme-robotics:42", p.ID)
	assert.Equal(t, "Senior Software Engineer", p.Title)
	assert.Equal(t, "Acme Robotics", p.Company)
	assert.Equal(t, "Senior", p.ExperienceLevel)
	assert.True(t, p.Remote)
	assert.NotContains(t, p.Description, "<p>")

	// boards never carry these, so they are synthesized like every
	// other adapter does
	assert.NotEmpty(t, p.Requirements)
	assert.NotEmpty(t, p.Benefits)
}

func TestSearchFiltersByQuery(t *testing.T) {
	f := testFetcher(t, []string{"acme"}, func(w http.ResponseWriter, r *http.Request) {
		w.Write(boardPayload(
			boardJob{ID: 1, Title: "Software Engineer", Content: "code"},
			boardJob{ID: 2, Title: "Office Chef", Content: "cook"},
		))
	})

	got, err := f.Search(context.Background(), domain.SearchCriteria{Query: "engineer"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Software Engineer", got[0].Title)
}

func TestSearchDeadBoardSkipped(t *testing.T) {
	calls := 0
	f := testFetcher(t, []string{"dead", "alive"}, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path == "/dead/jobs" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write(boardPayload(boardJob{ID: 7, Title: "Engineer"}))
	})

	got, err := f.Search(context.Background(), domain.SearchCriteria{Query: "engineer"})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, got, 1)
}

func TestSearchAllBoardsDownReturnsError(t *testing.T) {
	f := testFetcher(t, []string{"dead"}, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := f.Search(context.Background(), domain.SearchCriteria{Query: "engineer"})
	assert.Error(t, err)
}

func TestSearchNoBoardsConfiguredReturnsSamples(t *testing.T) {
	f := New(Config{}, util.NewHostLimiter(100, 100))

	got, err := f.Search(context.Background(), domain.SearchCriteria{Query: "engineer"})
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.Contains(t, p.Description, fallback.Marker)
	}
}

func TestBoardCompany(t *testing.T) {
	assert.Equal(t, "Acme Robotics", boardCompany("acme-robotics"))
	assert.Equal(t, "Globex", boardCompany("globex"))
	assert.Equal(t, "A B", boardCompany("a_b"))
}
