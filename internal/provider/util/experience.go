package util

import "strings"

// ClassifyExperience buckets a job title into an experience tier by
// keyword. First match wins; anything unmatched is Mid-level.
func ClassifyExperience(title string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "senior") || strings.Contains(t, "sr."):
		return "Senior"
	case strings.Contains(t, "lead"):
		return "Lead"
	case strings.Contains(t, "principal"):
		return "Principal"
	case strings.Contains(t, "junior") || strings.Contains(t, "jr."):
		return "Junior"
	default:
		return "Mid-level"
	}
}
