// Package jsearch queries a RapidAPI JSearch-style endpoint. It is the
// primary provider: exact-phrase matching upstream is strict, so a zero
// result triggers progressively broader retries before synthetic data.
package jsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/provider/fallback"
	"jobscout-engine/internal/provider/util"
)

const defaultHost = "jsearch.p.rapidapi.com"

type Config struct {
	APIKey string
	Host   string // RapidAPI host header; defaults to defaultHost
	// BaseURL overrides the upstream endpoint, used by tests.
	BaseURL string
}

type Client struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
}

func New(cfg Config, limiter *util.HostLimiter) *Client {
	if cfg.Host == "" {
		cfg.Host = defaultHost
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://" + cfg.Host
	}
	return &Client{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
	}
}

func (c *Client) Name() string { return "jsearch" }

// Search runs the three-tier retry: exact phrase with location, then
// location-agnostic, then primary-keyword-only, then sample data. Each
// tier that errors is absorbed; the next tier still runs.
func (c *Client) Search(ctx context.Context, sc domain.SearchCriteria) ([]domain.Posting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.cfg.APIKey == "" {
		log.Printf("[jsearch] no API key configured; returning sample data")
		return fallback.Postings(c.Name(), sc, 5), nil
	}

	queries := broadenQueries(sc)
	for tier, q := range queries {
		jobs, err := c.fetch(ctx, q, sc)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("[jsearch] tier=%d query=%q err=%v", tier+1, q, err)
			continue
		}
		if len(jobs) > 0 {
			return jobs, nil
		}
	}

	log.Printf("[jsearch] all query tiers empty; returning sample data")
	return fallback.Postings(c.Name(), sc, 5), nil
}

// broadenQueries builds the ordered query tiers for one criteria set.
func broadenQueries(sc domain.SearchCriteria) []string {
	q := util.CleanText(sc.Query)
	var out []string
	if sc.City != "" {
		out = append(out, fmt.Sprintf("%s in %s", q, util.CleanText(sc.City)))
	}
	out = append(out, q)
	if kw := PrimaryKeyword(q); kw != "" && kw != q {
		out = append(out, kw)
	}
	return out
}

// collapseRules maps phrase families onto a single canonical keyword.
// Checked in order; first hit wins.
var collapseRules = []struct {
	any       []string
	canonical string
}{
	{[]string{"software engineer", "software developer", "swe", "backend engineer", "full stack"}, "Software Engineer"},
	{[]string{"account executive", "sales executive", "enterprise sales"}, "Account Executive"},
	{[]string{"data scientist", "machine learning", "ml engineer"}, "Data Scientist"},
	{[]string{"product manager", "product owner"}, "Product Manager"},
	{[]string{"frontend", "front end", "front-end"}, "Frontend Developer"},
	{[]string{"devops", "site reliability", "sre"}, "DevOps Engineer"},
}

// PrimaryKeyword collapses a free-text query to its canonical family
// keyword, or the first word title-cased when no rule matches.
func PrimaryKeyword(query string) string {
	q := util.CleanText(query)
	if q == "" {
		return ""
	}
	low := strings.ToLower(q)
	for _, r := range collapseRules {
		for _, needle := range r.any {
			if strings.Contains(low, needle) {
				return r.canonical
			}
		}
	}
	fields := strings.Fields(q)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[0][:1]) + strings.ToLower(fields[0][1:])
}

type response struct {
	Status string           `json:"status"`
	Data   []map[string]any `json:"data"`
}

func (c *Client) fetch(ctx context.Context, query string, sc domain.SearchCriteria) ([]domain.Posting, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", "1")
	params.Set("num_pages", "1")
	if sc.PostedWithinDays > 0 {
		switch {
		case sc.PostedWithinDays <= 1:
			params.Set("date_posted", "today")
		case sc.PostedWithinDays <= 3:
			params.Set("date_posted", "3days")
		case sc.PostedWithinDays <= 7:
			params.Set("date_posted", "week")
		default:
			params.Set("date_posted", "month")
		}
	}
	if sc.Remote {
		params.Set("remote_jobs_only", "true")
	}
	if sc.JobType != "" {
		params.Set("employment_types", normalizeJobType(sc.JobType))
	}

	reqURL := c.cfg.BaseURL + "/search?" + params.Encode()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	req.Header.Set("X-RapidAPI-Key", c.cfg.APIKey)
	req.Header.Set("X-RapidAPI-Host", c.cfg.Host)

	if c.limiter != nil {
		if err := c.limiter.WaitURL(ctx, reqURL); err != nil {
			return nil, err
		}
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jsearch get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("jsearch status %d", res.StatusCode)
	}

	var body response
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("jsearch decode: %w", err)
	}

	out := make([]domain.Posting, 0, len(body.Data))
	for _, m := range body.Data {
		out = append(out, c.normalize(m))
	}
	return out, nil
}

// normalize maps the loose upstream payload onto the canonical Posting.
// Alias order is the documented precedence: newest API field name first,
// then legacy names, then sentinel default.
func (c *Client) normalize(m map[string]any) domain.Posting {
	title := util.Default(util.PickString(m, "job_title", "title"), util.NoTitle)
	company := util.Default(util.PickString(m, "employer_name", "company_name", "company"), util.NoCompany)

	city := util.PickString(m, "job_city", "city")
	state := util.PickString(m, "job_state", "state")
	country := util.PickString(m, "job_country", "country")
	location := util.NormalizeLocation(joinNonEmpty(", ", city, state, country))
	if location == "" {
		location = util.Default(util.PickString(m, "job_location", "location"), util.NoLocation)
	}

	salaryMin := int(util.PickFloat(m, "job_min_salary", "min_salary"))
	salaryMax := int(util.PickFloat(m, "job_max_salary", "max_salary"))
	salary := util.PickString(m, "job_salary", "salary")
	if salary == "" && salaryMin > 0 {
		salary = fmt.Sprintf("$%dk - $%dk", salaryMin/1000, salaryMax/1000)
	}
	salary = util.Default(salary, util.NoSalary)

	desc := util.Default(util.PickString(m, "job_description", "description"), "No description provided.")
	remote := util.PickBool(m, "job_is_remote", "is_remote") || util.InferRemote(location, title)

	reqs := util.PickStrings(m, "job_highlights")
	if len(reqs) == 0 {
		reqs = fallback.Requirements(title)
	}
	benefits := util.PickStrings(m, "job_benefits")
	if len(benefits) == 0 {
		benefits = fallback.Benefits(company, remote)
	}

	applyURL := util.PickString(m, "job_apply_link", "job_url", "url")

	id := util.PickString(m, "job_id", "id")
	if id == "" {
		id = util.ShortHash(title + "|" + company + "|" + applyURL)
	}

	return domain.Posting{
		ID:              "jsearch:" + id,
		Title:           title,
		Company:         company,
		Location:        location,
		Salary:          salary,
		SalaryMin:       salaryMin,
		SalaryMax:       salaryMax,
		Description:     desc,
		ApplyURL:        applyURL,
		PostedAt:        util.Default(util.PickString(m, "job_posted_at", "job_posted_at_datetime_utc", "posted_at"), util.NoPostedAt),
		Source:          c.Name(),
		JobType:         util.Default(util.PickString(m, "job_employment_type", "employment_type"), "Full-time"),
		ExperienceLevel: util.ClassifyExperience(title),
		Requirements:    reqs,
		Benefits:        benefits,
		Remote:          remote,
	}
}

func normalizeJobType(t string) string {
	switch strings.ToLower(util.CleanText(t)) {
	case "full-time", "full time", "fulltime":
		return "FULLTIME"
	case "part-time", "part time", "parttime":
		return "PARTTIME"
	case "contract", "contractor":
		return "CONTRACTOR"
	case "intern", "internship":
		return "INTERN"
	default:
		return "FULLTIME"
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
