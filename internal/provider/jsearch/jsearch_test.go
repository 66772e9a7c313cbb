package jsearch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"jobscout-engine/internal/domain"
)

func TestPrimaryKeyword(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"senior software engineer golang", "Software Engineer"},
		{"SWE internship", "Software Engineer"},
		{"enterprise sales rep", "Account Executive"},
		{"ml engineer nlp", "Data Scientist"},
		{"product owner fintech", "Product Manager"},
		{"front-end react", "Frontend Developer"},
		{"site reliability engineer", "DevOps Engineer"},
		// no rule: first word title-cased
		{"ASTRONAUT candidate", "Astronaut"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, PrimaryKeyword(tc.in), "in=%q", tc.in)
	}
}

func TestBroadenQueries(t *testing.T) {
	got := broadenQueries(domain.SearchCriteria{Query: "senior software engineer", City: "Austin"})
	assert.Equal(t, []string{
		"senior software engineer in Austin",
		"senior software engineer",
		"Software Engineer",
	}, got)
}

func TestBroadenQueriesNoCityNoCollapse(t *testing.T) {
	got := broadenQueries(domain.SearchCriteria{Query: "Astronaut"})
	assert.Equal(t, []string{"Astronaut"}, got)
}

func TestNormalizeJobType(t *testing.T) {
	assert.Equal(t, "FULLTIME", normalizeJobType("Full Time"))
	assert.Equal(t, "PARTTIME", normalizeJobType("part-time"))
	assert.Equal(t, "CONTRACTOR", normalizeJobType("Contract"))
	assert.Equal(t, "INTERN", normalizeJobType("internship"))
	assert.Equal(t, "FULLTIME", normalizeJobType("whatever"))
}

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, "Austin, TX", joinNonEmpty(", ", "Austin", "", "TX"))
	assert.Equal(t, "", joinNonEmpty(", "))
}

func TestNormalizeKeylessPayloadsGetDistinctIDs(t *testing.T) {
	c := New(Config{}, nil)

	a := c.normalize(map[string]any{
		"job_title":      "Software Engineer",
		"employer_name":  "Acme",
		"job_apply_link": "https://acme.example/jobs/1",
	})
	b := c.normalize(map[string]any{
		"job_title":      "Software Engineer",
		"employer_name":  "Acme",
		"job_apply_link": "https://acme.example/jobs/2",
	})

	assert.True(t, strings.HasPrefix(a.ID, "jsearch:"))
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.ID, c.normalize(map[string]any{
		"job_title":      "Software Engineer",
		"employer_name":  "Acme",
		"job_apply_link": "https://acme.example/jobs/1",
	}).ID)
}
