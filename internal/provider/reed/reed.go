// Package reed queries the Reed job-board API (basic-auth API key).
package reed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/provider/fallback"
	"jobscout-engine/internal/provider/util"
)

type Config struct {
	APIKey  string
	BaseURL string // test override
}

type Client struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
}

func New(cfg Config, limiter *util.HostLimiter) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.reed.co.uk/api/1.0"
	}
	return &Client{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 15 * time.Second},
		limiter: limiter,
	}
}

func (c *Client) Name() string { return "reed" }

type response struct {
	Results []result `json:"results"`
}

type result struct {
	JobID          int64   `json:"jobId"`
	JobTitle       string  `json:"jobTitle"`
	EmployerName   string  `json:"employerName"`
	LocationName   string  `json:"locationName"`
	MinimumSalary  float64 `json:"minimumSalary"`
	MaximumSalary  float64 `json:"maximumSalary"`
	Date           string  `json:"date"`
	JobDescription string  `json:"jobDescription"`
	JobURL         string  `json:"jobUrl"`
}

func (c *Client) Search(ctx context.Context, sc domain.SearchCriteria) ([]domain.Posting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.cfg.APIKey == "" {
		log.Printf("[reed] REED_API_KEY not set; returning sample data")
		return fallback.Postings(c.Name(), sc, 4), nil
	}

	params := url.Values{}
	params.Set("keywords", util.CleanText(sc.Query))
	if sc.City != "" {
		params.Set("locationName", util.CleanText(sc.City))
	}
	if sc.SalaryMin > 0 {
		params.Set("minimumSalary", strconv.Itoa(sc.SalaryMin))
	}
	params.Set("resultsToTake", "50")

	reqURL := c.cfg.BaseURL + "/search?" + params.Encode()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	req.SetBasicAuth(c.cfg.APIKey, "")

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
		log.Printf("[reed] get: %v; returning sample data", err)
		return fallback.Postings(c.Name(), sc, 4), nil
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		log.Printf("[reed] status %d; returning sample data", res.StatusCode)
		return fallback.Postings(c.Name(), sc, 4), nil
	}

	var body response
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		log.Printf("[reed] decode: %v; returning sample data", err)
		return fallback.Postings(c.Name(), sc, 4), nil
	}

	out := make([]domain.Posting, 0, len(body.Results))
	for _, r := range body.Results {
		out = append(out, c.normalize(r))
	}
	return out, nil
}

func (c *Client) normalize(r result) domain.Posting {
	title := util.Default(r.JobTitle, util.NoTitle)
	company := util.Default(r.EmployerName, util.NoCompany)
	location := util.Default(util.NormalizeLocation(r.LocationName), util.NoLocation)

	salary := util.NoSalary
	if r.MinimumSalary > 0 {
		salary = fmt.Sprintf("£%dk - £%dk", int(r.MinimumSalary)/1000, int(r.MaximumSalary)/1000)
	}
	remote := util.InferRemote(location, title, r.JobDescription)

	return domain.Posting{
		ID:              fmt.Sprintf("reed:%d", r.JobID),
		Title:           title,
		Company:         company,
		Location:        location,
		Salary:          salary,
		SalaryMin:       int(r.MinimumSalary),
		SalaryMax:       int(r.MaximumSalary),
		Description:     util.Default(r.JobDescription, "No description provided."),
		ApplyURL:        r.JobURL,
		PostedAt:        util.Default(r.Date, util.NoPostedAt),
		Source:          c.Name(),
		JobType:         "Full-time",
		ExperienceLevel: util.ClassifyExperience(title),
		Requirements:    fallback.Requirements(title),
		Benefits:        fallback.Benefits(company, remote),
		Remote:          remote,
	}
}
