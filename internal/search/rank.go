package search

import (
	"sort"
	"strings"

	"jobscout-engine/internal/domain"
)

// Additive relevance weights. Scores are comparable only within one
// search; there is no normalization.
const (
	weightTitleMatch  = 10
	weightCityMatch   = 5
	weightCountry     = 3
	weightRemoteMatch = 5
	weightSalaryMet   = 3
	tiebreakBase      = 10
)

// Score computes the relevance of one posting against the criteria.
// The source tiebreak (tiebreakBase minus source priority) means a
// posting from a higher-precedence source edges out an otherwise
// identical one, but never outweighs a real field match.
func Score(p domain.Posting, c domain.SearchCriteria, priorities map[string]int) int {
	score := 0

	if c.Query != "" && strings.Contains(strings.ToLower(p.Title), strings.ToLower(c.Query)) {
		score += weightTitleMatch
	}
	loc := strings.ToLower(p.Location)
	if c.City != "" && strings.Contains(loc, strings.ToLower(c.City)) {
		score += weightCityMatch
	}
	if c.Country != "" && strings.Contains(loc, strings.ToLower(c.Country)) {
		score += weightCountry
	}
	if c.Remote && p.Remote {
		score += weightRemoteMatch
	}
	if c.SalaryMin > 0 && postingSalary(p) >= c.SalaryMin {
		score += weightSalaryMet
	}

	// Applied even when the priority exceeds the base, so sources past
	// the tenth rank lose a point per extra step instead of tying.
	if prio, ok := priorities[p.Source]; ok {
		score += tiebreakBase - prio
	}
	return score
}

// Rank sorts postings by descending score in place. The sort is stable,
// so equal-score postings keep their dedup order and repeated runs over
// the same input produce the same output.
func Rank(postings []domain.Posting, c domain.SearchCriteria, priorities map[string]int) {
	type scored struct {
		posting domain.Posting
		score   int
	}
	rows := make([]scored, len(postings))
	for i, p := range postings {
		rows[i] = scored{posting: p, score: Score(p, c, priorities)}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].score > rows[j].score })
	for i, r := range rows {
		postings[i] = r.posting
	}
}
