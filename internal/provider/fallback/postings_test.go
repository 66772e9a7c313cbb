package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobscout-engine/internal/domain"
)

func TestPostingsCarryMarker(t *testing.T) {
	got := Postings("jsearch", domain.SearchCriteria{Query: "golang developer"}, 4)

	require.Len(t, got, 4)
	for _, p := range got {
		assert.Contains(t, p.Description, Marker)
		assert.Equal(t, "jsearch", p.Source)
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Company)
		assert.NotEmpty(t, p.Requirements)
		assert.NotEmpty(t, p.Benefits)
	}
}

func TestPostingsDeterministic(t *testing.T) {
	c := domain.SearchCriteria{Query: "data analyst", City: "Berlin"}
	assert.Equal(t, Postings("adzuna", c, 3), Postings("adzuna", c, 3))
}

func TestPostingsSourcesDontCollide(t *testing.T) {
	c := domain.SearchCriteria{Query: "engineer"}
	a := Postings("jsearch", c, 3)
	b := Postings("adzuna", c, 3)

	// different sources offset into different sample companies, so the
	// first postings of two fallen-back providers are distinct jobs
	assert.NotEqual(t, a[0].Company, b[0].Company)
}

func TestPostingsDefaultsWhenCriteriaEmpty(t *testing.T) {
	got := Postings("remotive", domain.SearchCriteria{}, 1)

	require.Len(t, got, 1)
	assert.Contains(t, got[0].Title, "Software Engineer")
	assert.Equal(t, "Remote", got[0].Location)
}

func TestRequirementsSeniorityAddsMentorship(t *testing.T) {
	reqs := Requirements("Senior Software Engineer")
	assert.Contains(t, reqs, "Mentorship of junior team members")

	base := Requirements("Software Engineer")
	assert.NotContains(t, base, "Mentorship of junior team members")
}
