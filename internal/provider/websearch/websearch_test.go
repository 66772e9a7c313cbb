package websearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/provider/util"
)

func TestDecodeRedirect(t *testing.T) {
	wrapped := "https://duckduckgo.com/l/?uddg=https%3A%2F%2Fboards.greenhouse.io%2Facme%2Fjobs%2F42&rut=abc"
	assert.Equal(t, "https://boards.greenhouse.io/acme/jobs/42", decodeRedirect(wrapped))
	assert.Equal(t, "https://example.com/x", decodeRedirect("https://example.com/x"))
}

func TestCompanyFromURL(t *testing.T) {
	tests := []struct {
		raw, host, want string
	}{
		{"https://boards.greenhouse.io/acme-robotics/jobs/42", "boards.greenhouse.io", "Acme robotics"},
		{"https://jobs.lever.co/globex/abc", "jobs.lever.co", "Globex"},
		{"https://careers.initech.com/postings/7", "careers.initech.com", "Careers"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, companyFromURL(tc.raw, tc.host), "raw=%s", tc.raw)
	}
}

func TestLooksLikeJobTitle(t *testing.T) {
	assert.True(t, looksLikeJobTitle("Senior Software Engineer at Acme"))
	assert.False(t, looksLikeJobTitle("Top 10 interview questions"))
	assert.False(t, looksLikeJobTitle("How to become a developer"))
}

func TestSearchParsesResults(t *testing.T) {
	page := `<html><body>
<div class="result">
  <a class="result__a" href="https://duckduckgo.com/l/?uddg=https%3A%2F%2Fjobs.lever.co%2Facme%2F1">Software Engineer - Acme</a>
  <div class="result__snippet">Build things in Go. Remote friendly.</div>
</div>
<div class="result">
  <a class="result__a" href="https://blog.example.com/how-to">How to get hired</a>
</div>
</body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL}, util.NewHostLimiter(100, 100))
	got, err := c.Search(context.Background(), domain.SearchCriteria{Query: "software engineer"})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Software Engineer", got[0].Title)
	assert.Equal(t, "Acme", got[0].Company)
	assert.Equal(t, "https://jobs.lever.co/acme/1", got[0].ApplyURL)
	assert.True(t, got[0].Remote)
	assert.Equal(t, "websearch", got[0].Source)
}
