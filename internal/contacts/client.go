// Package contacts is the external profile lookup client: a single
// rate-limited, credential-rotating, cached client used by contact
// discovery flows. It degrades to company-aware synthetic profiles on
// quota, throttle, and transport errors, so callers always get a
// usable result set.
package contacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"jobscout-engine/internal/domain"
)

// minInterval is the single-flight throttle gap between upstream
// calls, shared across all callers of one Client instance.
const minInterval = 30 * time.Second

const defaultBaseURL = "https://api.profileapis.com/v1/people/search"

// SearchParams identify one lookup. Their serialized form is the cache
// key, so two lookups with identical params within the TTL hit cache.
type SearchParams struct {
	Company  string `json:"company"`
	Keywords string `json:"keywords,omitempty"`
	Location string `json:"location,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

// AdvancedParams extend SearchParams with client-side filtering and
// ordering applied after the base lookup.
type AdvancedParams struct {
	SearchParams
	ExperienceLevel string `json:"experienceLevel,omitempty"`
	SortBy          string `json:"sortBy,omitempty"`
}

type Client struct {
	baseURL string
	hc      *http.Client
	cache   *lookupCache

	// mu serializes the throttle decision, the credential cursor, and
	// the per-credential counters across concurrent callers.
	mu      sync.Mutex
	pool    *keyPool
	lastReq time.Time

	// clock hooks, overridable in tests
	now   func() time.Time
	sleep func(time.Duration)
}

// NewClient builds a lookup client over the given credential pool. An
// empty pool is valid; every lookup then synthesizes data locally
// without touching the network.
func NewClient(apiKeys []string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		hc:      &http.Client{Timeout: 20 * time.Second},
		cache:   newLookupCache(),
		pool:    newKeyPool(apiKeys),
		now:     time.Now,
		sleep:   time.Sleep,
	}
}

// Search returns profiles at the target company. It never returns an
// error to the caller: upstream failure of any kind yields a tagged
// synthetic result set instead.
func (c *Client) Search(ctx context.Context, params SearchParams) []domain.Profile {
	key := cacheKey(params)
	if cached, ok := c.cache.get(key, c.now()); ok {
		return cached
	}

	if c.poolEmpty() {
		log.Printf("[contacts] no credentials configured, serving sample profiles company=%q", params.Company)
		out := syntheticProfiles(params)
		c.cache.put(key, out, c.now())
		return out
	}

	apiKey, wait := c.reserve()
	if wait > 0 {
		c.sleep(wait)
	}

	profiles, err := c.call(ctx, apiKey, params)
	switch {
	case err == nil:
		c.noteSuccess()
		c.cache.put(key, profiles, c.now())
		return profiles
	case isStatus(err, http.StatusForbidden):
		// quota exhausted on this credential: rotate and fall back
		log.Printf("[contacts] credential quota exhausted, rotating company=%q", params.Company)
		c.rotate()
	case isStatus(err, http.StatusTooManyRequests):
		// transient throttling, keep the credential
		log.Printf("[contacts] rate limited upstream company=%q", params.Company)
	default:
		log.Printf("[contacts] lookup failed company=%q err=%v", params.Company, err)
	}

	out := syntheticProfiles(params)
	c.cache.put(key, out, c.now())
	return out
}

// AdvancedSearch runs Search and then applies experience-level
// filtering and the requested ordering client-side.
func (c *Client) AdvancedSearch(ctx context.Context, params AdvancedParams) []domain.Profile {
	base := c.Search(ctx, params.SearchParams)

	// filter into a fresh slice so cached entries are never reordered
	profiles := make([]domain.Profile, 0, len(base))
	for _, p := range base {
		if params.ExperienceLevel == "" || MatchesExperience(p, params.ExperienceLevel) {
			profiles = append(profiles, p)
		}
	}

	SortProfiles(profiles, params.SortBy)
	return profiles
}

func (c *Client) poolEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pool.empty()
}

// reserve picks the credential for the next upstream call and claims a
// throttle slot. The interval check and the timestamp update happen
// under one lock acquisition, so two concurrent callers can never both
// decide the gap has passed. The returned wait is measured against the
// previous request's issue time, and the reserved slot becomes this
// request's issue time.
func (c *Client) reserve() (apiKey string, wait time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	apiKey = c.pool.current()

	now := c.now()
	issueAt := c.lastReq.Add(minInterval)
	if c.lastReq.IsZero() || !issueAt.After(now) {
		c.lastReq = now
		return apiKey, 0
	}
	c.lastReq = issueAt
	return apiKey, issueAt.Sub(now)
}

func (c *Client) noteSuccess() {
	c.mu.Lock()
	c.pool.increment()
	c.mu.Unlock()
}

func (c *Client) rotate() {
	c.mu.Lock()
	c.pool.rotate()
	c.mu.Unlock()
}

type statusError struct {
	code int
}

func (e statusError) Error() string { return fmt.Sprintf("upstream status %d", e.code) }

func isStatus(err error, code int) bool {
	se, ok := err.(statusError)
	return ok && se.code == code
}

type upstreamProfile struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Headline          string `json:"headline"`
	Company           string `json:"company"`
	Location          string `json:"location"`
	ConnectionDegree  int    `json:"connection_degree"`
	MutualConnections int    `json:"mutual_connections"`
	ProfileURL        string `json:"profile_url"`
}

type upstreamResponse struct {
	Results []upstreamProfile `json:"results"`
}

func (c *Client) call(ctx context.Context, apiKey string, params SearchParams) ([]domain.Profile, error) {
	q := url.Values{}
	q.Set("company", params.Company)
	if params.Keywords != "" {
		q.Set("keywords", params.Keywords)
	}
	if params.Location != "" {
		q.Set("location", params.Location)
	}
	if params.Limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", params.Limit))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("profile lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, statusError{code: resp.StatusCode}
	}

	var payload upstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode profile response: %w", err)
	}

	out := make([]domain.Profile, 0, len(payload.Results))
	for _, u := range payload.Results {
		out = append(out, normalizeProfile(u, params.Company))
	}
	return out, nil
}

func normalizeProfile(u upstreamProfile, company string) domain.Profile {
	first, last := u.FirstName, u.LastName
	if first == "" && u.Name != "" {
		first, last, _ = strings.Cut(u.Name, " ")
	}
	if u.Company == "" {
		u.Company = company
	}
	return domain.Profile{
		ID:                u.ID,
		FirstName:         first,
		LastName:          last,
		Headline:          u.Headline,
		Company:           u.Company,
		Location:          u.Location,
		ConnectionDegree:  connectionDegree(u.ConnectionDegree),
		MutualConnections: u.MutualConnections,
		ProfileURL:        u.ProfileURL,
		Category:          categorize(u.Headline),
	}
}

func connectionDegree(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	}
	return "potential"
}

func categorize(headline string) string {
	h := strings.ToLower(headline)
	switch {
	case strings.Contains(h, "recruit") || strings.Contains(h, "talent"):
		return "recruiter"
	case strings.Contains(h, "hiring") || strings.Contains(h, "manager") || strings.Contains(h, "director"):
		return "hiring-manager"
	}
	return "employee"
}

func cacheKey(params SearchParams) string {
	b, _ := json.Marshal(params)
	return string(b)
}
