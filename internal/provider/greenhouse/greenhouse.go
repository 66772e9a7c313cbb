// Package greenhouse reads configured company boards through the
// public Greenhouse boards API. Unlike the query-driven sources it
// pulls whole boards and filters client-side, so a misconfigured or
// offline board costs that board only, never the search.
package greenhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/provider/fallback"
	"jobscout-engine/internal/provider/util"
)

const sourceName = "greenhouse"

type Config struct {
	// board slugs as in boards.greenhouse.io/<slug>
	Boards  []string
	BaseURL string
}

type Fetcher struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
}

func New(cfg Config, limiter *util.HostLimiter) *Fetcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://boards-api.greenhouse.io/v1/boards"
	}
	return &Fetcher{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
	}
}

func (f *Fetcher) Name() string { return sourceName }

func (f *Fetcher) Search(ctx context.Context, c domain.SearchCriteria) ([]domain.Posting, error) {
	if len(f.cfg.Boards) == 0 {
		return fallback.Postings(sourceName, c, 3), nil
	}

	var out []domain.Posting
	var lastErr error
	for _, slug := range f.cfg.Boards {
		jobs, err := f.fetchBoard(ctx, slug, c)
		if err != nil {
			// one dead board must not sink the rest
			log.Printf("[greenhouse] board=%s err=%v", slug, err)
			lastErr = err
			continue
		}
		out = append(out, jobs...)
	}
	if len(out) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return out, nil
}

type boardJob struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	AbsoluteURL string `json:"absolute_url"`
	UpdatedAt   string `json:"updated_at"`
	Content     string `json:"content"`
	Location    struct {
		Name string `json:"name"`
	} `json:"location"`
	Company struct {
		Name string `json:"name"`
	} `json:"company"`
}

type boardResponse struct {
	Jobs []boardJob `json:"jobs"`
}

func (f *Fetcher) fetchBoard(ctx context.Context, slug string, c domain.SearchCriteria) ([]domain.Posting, error) {
	u := fmt.Sprintf("%s/%s/jobs?content=true", f.cfg.BaseURL, slug)
	if err := f.limiter.WaitURL(ctx, u); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("greenhouse board: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("greenhouse board status %d", resp.StatusCode)
	}

	var payload boardResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode greenhouse board: %w", err)
	}

	company := boardCompany(slug)
	var out []domain.Posting
	for _, j := range payload.Jobs {
		if !matchesQuery(j, c.Query) {
			continue
		}
		out = append(out, normalize(j, slug, company, c))
	}
	return out, nil
}

// matchesQuery keeps a board job when any query word appears in its
// title or body. Boards are fetched whole, so with no query everything
// passes through and ranking decides.
func matchesQuery(j boardJob, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	haystack := strings.ToLower(j.Title + " " + j.Content)
	for _, w := range strings.Fields(strings.ToLower(query)) {
		if strings.Contains(haystack, w) {
			return true
		}
	}
	return false
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

func normalize(j boardJob, slug, company string, c domain.SearchCriteria) domain.Posting {
	if j.Company.Name != "" {
		company = j.Company.Name
	}
	loc := util.Default(util.NormalizeLocation(j.Location.Name), util.NoLocation)

	desc := html.UnescapeString(tagRe.ReplaceAllString(j.Content, " "))
	desc = util.CleanText(desc)
	if len(desc) > 1500 {
		desc = desc[:1500]
	}

	title := util.Default(util.CleanText(j.Title), util.NoTitle)
	remote := util.InferRemote(title, loc, desc)
	return domain.Posting{
		ID:              fmt.Sprintf("%s:%s:%d", sourceName, slug, j.ID),
		Title:           title,
		Company:         company,
		Location:        loc,
		Salary:          util.NoSalary,
		Description:     util.Default(desc, "See the posting for details."),
		ApplyURL:        j.AbsoluteURL,
		PostedAt:        util.Default(j.UpdatedAt, util.NoPostedAt),
		Source:          sourceName,
		JobType:         util.Default(c.JobType, "Full-time"),
		ExperienceLevel: util.ClassifyExperience(title),
		Requirements:    fallback.Requirements(title),
		Benefits:        fallback.Benefits(company, remote),
		Remote:          remote,
	}
}

// boardCompany turns a slug like "acme-robotics" into "Acme Robotics"
// for boards whose payload carries no company name.
func boardCompany(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
