package contacts

import (
	"sort"
	"strings"

	"jobscout-engine/internal/domain"
)

// experienceKeywords maps each experience tier to the title/headline
// keywords that place a profile in it. The "mid" and "senior" sets
// overlap on purpose: a "Senior Lead Analyst" matches both tiers, and
// which filter claims them depends on which the caller asks for.
var experienceKeywords = map[string][]string{
	"entry":     {"junior", "entry", "associate", "intern"},
	"mid":       {"senior", "lead", "specialist", "analyst"},
	"senior":    {"senior", "lead", "principal", "staff"},
	"executive": {"director", "vp", "ceo", "cto", "cfo"},
}

// MatchesExperience reports whether the profile's headline places it
// in the given experience tier. Unknown tiers match everything.
func MatchesExperience(p domain.Profile, level string) bool {
	keywords, ok := experienceKeywords[strings.ToLower(level)]
	if !ok {
		return true
	}
	h := strings.ToLower(p.Headline)
	for _, kw := range keywords {
		if strings.Contains(h, kw) {
			return true
		}
	}
	return false
}

// SortProfiles orders profiles in place by the requested key:
// "recency" by last interaction descending, "connections" by mutual
// connection count descending, anything else (including empty) by
// relevance, meaning mutual connections then name.
func SortProfiles(profiles []domain.Profile, sortBy string) {
	switch strings.ToLower(sortBy) {
	case "recency":
		sort.SliceStable(profiles, func(i, j int) bool {
			return profiles[i].LastInteraction.After(profiles[j].LastInteraction)
		})
	case "connections":
		sort.SliceStable(profiles, func(i, j int) bool {
			return profiles[i].MutualConnections > profiles[j].MutualConnections
		})
	default:
		sort.SliceStable(profiles, func(i, j int) bool {
			if profiles[i].MutualConnections != profiles[j].MutualConnections {
				return profiles[i].MutualConnections > profiles[j].MutualConnections
			}
			ni := profiles[i].LastName + " " + profiles[i].FirstName
			nj := profiles[j].LastName + " " + profiles[j].FirstName
			return ni < nj
		})
	}
}
