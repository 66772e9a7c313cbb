// Package alerts turns job-alert emails sitting in an IMAP inbox into
// postings. It is a push-shaped source wrapped in the pull-shaped
// Provider contract: each search scans recent alert mail and keeps the
// links whose anchor text matches the criteria.
package alerts

import (
	"context"
	"fmt"
	"html"
	"log"
	"regexp"
	"strings"
	"time"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/provider/fallback"
	"jobscout-engine/internal/provider/util"
)

const maxMessages = 40

type Config struct {
	IMAPAddr string // host:port
	Username string
	Password string
	// Senders restricts which From addresses count as job alerts.
	// Substring match; empty means the default well-known senders.
	Senders []string
}

var defaultSenders = []string{"jobalerts", "jobs-noreply", "alert@", "noreply@jobs"}

type Fetcher struct {
	cfg Config
}

func New(cfg Config) *Fetcher {
	if len(cfg.Senders) == 0 {
		cfg.Senders = defaultSenders
	}
	return &Fetcher{cfg: cfg}
}

func (f *Fetcher) Name() string { return "alerts" }

func (f *Fetcher) Search(ctx context.Context, sc domain.SearchCriteria) ([]domain.Posting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.cfg.IMAPAddr == "" || f.cfg.Username == "" || f.cfg.Password == "" {
		log.Printf("[alerts] imap not configured; returning sample data")
		return fallback.Postings(f.Name(), sc, 2), nil
	}

	c, err := dialAndLogin(ctx, f.cfg.IMAPAddr, f.cfg.Username, f.cfg.Password)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("[alerts] %v; returning sample data", err)
		return fallback.Postings(f.Name(), sc, 2), nil
	}
	defer logoutAndClose(c)

	since := time.Now().AddDate(0, -1, 0)
	if sc.PostedWithinDays > 0 {
		since = time.Now().AddDate(0, 0, -sc.PostedWithinDays)
	}

	msgs, err := fetchRecent(ctx, c, since, maxMessages)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("[alerts] fetch: %v; returning sample data", err)
		return fallback.Postings(f.Name(), sc, 2), nil
	}

	var out []domain.Posting
	seen := map[string]bool{}
	for _, m := range msgs {
		if !f.isAlertSender(m.From) {
			continue
		}
		for _, lead := range extractLeads(string(m.Raw)) {
			if seen[lead.url] || !matchesCriteria(lead.title, sc) {
				continue
			}
			seen[lead.url] = true
			out = append(out, f.normalize(lead, m))
		}
	}

	// an empty inbox is a real answer, not a failure: no samples here
	log.Printf("[alerts] messages=%d postings=%d", len(msgs), len(out))
	return out, nil
}

func (f *Fetcher) isAlertSender(from string) bool {
	low := strings.ToLower(from)
	for _, s := range f.cfg.Senders {
		if strings.Contains(low, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

func matchesCriteria(title string, sc domain.SearchCriteria) bool {
	q := strings.ToLower(util.CleanText(sc.Query))
	if q == "" {
		return true
	}
	t := strings.ToLower(title)
	for _, word := range strings.Fields(q) {
		if strings.Contains(t, word) {
			return true
		}
	}
	return false
}

type lead struct {
	title string
	url   string
}

var (
	reHref = regexp.MustCompile(`(?is)<a[^>]+href=["']([^"'#]+)["'][^>]*>(.*?)</a>`)
	reTags = regexp.MustCompile(`(?is)<[^>]+>`)
)

// extractLeads pulls (anchor text, href) pairs that look like job links
// out of a raw alert email body.
func extractLeads(raw string) []lead {
	var out []lead
	for _, m := range reHref.FindAllStringSubmatch(raw, -1) {
		href := strings.TrimSpace(html.UnescapeString(m[1]))
		txt := strings.TrimSpace(reTags.ReplaceAllString(m[2], " "))
		txt = strings.Join(strings.Fields(html.UnescapeString(txt)), " ")

		if href == "" || !strings.HasPrefix(href, "http") {
			continue
		}
		// anchor text shorter than a plausible title is navigation chrome
		if len(txt) < 8 || looksLikeChrome(txt) {
			continue
		}
		out = append(out, lead{title: txt, url: href})
	}
	return out
}

func looksLikeChrome(t string) bool {
	l := strings.ToLower(t)
	for _, junk := range []string{"unsubscribe", "view all", "see more", "manage", "help", "privacy", "settings"} {
		if strings.Contains(l, junk) {
			return true
		}
	}
	return false
}

func (f *Fetcher) normalize(l lead, m message) domain.Posting {
	title := util.Default(l.title, util.NoTitle)
	posted := util.NoPostedAt
	if !m.Date.IsZero() {
		posted = m.Date.Format(time.RFC3339)
	}
	remote := util.InferRemote(title, m.Subject)

	// One alert email carries several leads, so the message UID alone is
	// not a unique posting identity.
	return domain.Posting{
		ID:              fmt.Sprintf("alerts:%d:%s", m.UID, util.ShortHash(l.url+"|"+l.title)),
		Title:           title,
		Company:         util.NoCompany, // alert emails rarely carry a clean company field
		Location:        util.NoLocation,
		Salary:          util.NoSalary,
		Description:     util.Default(m.Subject, "Job alert email."),
		ApplyURL:        l.url,
		PostedAt:        posted,
		Source:          f.Name(),
		JobType:         "Full-time",
		ExperienceLevel: util.ClassifyExperience(title),
		Requirements:    fallback.Requirements(title),
		Benefits:        fallback.Benefits("", remote),
		Remote:          remote,
	}
}
