package alerts

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/provider/fallback"
)

func TestExtractLeads(t *testing.T) {
	raw := `
<html><body>
<a href="https://example.com/jobs/123?src=alert">Senior Golang Engineer - Acme</a>
<a href="https://example.com/unsubscribe">Unsubscribe</a>
<a href="https://example.com/jobs/456">Data&nbsp;Platform Engineer</a>
<a href="mailto:x@y.z">contact</a>
<a href="https://example.com/nav">Help</a>
</body></html>`

	leads := extractLeads(raw)

	require.Len(t, leads, 2)
	assert.Equal(t, "Senior Golang Engineer - Acme", leads[0].title)
	assert.Equal(t, "https://example.com/jobs/123?src=alert", leads[0].url)
	assert.Equal(t, "https://example.com/jobs/456", leads[1].url)
}

func TestNormalizeLeadsFromOneMessageGetDistinctIDs(t *testing.T) {
	f := New(Config{})
	m := message{UID: 7, Subject: "New jobs for you"}

	a := f.normalize(lead{title: "Senior Golang Engineer", url: "https://example.com/jobs/123"}, m)
	b := f.normalize(lead{title: "Data Platform Engineer", url: "https://example.com/jobs/456"}, m)

	assert.True(t, strings.HasPrefix(a.ID, "alerts:7:"))
	assert.True(t, strings.HasPrefix(b.ID, "alerts:7:"))
	assert.NotEqual(t, a.ID, b.ID)
}

func TestMatchesCriteria(t *testing.T) {
	sc := domain.SearchCriteria{Query: "golang engineer"}
	assert.True(t, matchesCriteria("Senior Golang Developer", sc))
	assert.True(t, matchesCriteria("Platform Engineer", sc))
	assert.False(t, matchesCriteria("Accountant", sc))
	assert.True(t, matchesCriteria("Anything", domain.SearchCriteria{}))
}

func TestIsAlertSenderDefaults(t *testing.T) {
	f := New(Config{})
	assert.True(t, f.isAlertSender("LinkedIn Job Alerts <jobalerts-noreply@linkedin.com>"))
	assert.False(t, f.isAlertSender("boss@company.com"))
}

func TestIsAlertSenderConfigured(t *testing.T) {
	f := New(Config{Senders: []string{"@greatjobs.example"}})
	assert.True(t, f.isAlertSender("digest@greatjobs.example"))
	assert.False(t, f.isAlertSender("jobalerts-noreply@linkedin.com"))
}

func TestUnconfiguredReturnsSamples(t *testing.T) {
	f := New(Config{})
	got, err := f.Search(context.Background(), domain.SearchCriteria{Query: "engineer"})

	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.Contains(t, p.Description, fallback.Marker)
	}
}
