package search

import (
	"strings"
	"unicode"

	"jobscout-engine/internal/domain"
)

// DedupKey collapses a posting's title and company into the identity
// used for cross-source deduplication: lowercased, punctuation stripped,
// inner whitespace collapsed. "Software Engineer" at "Google" and
// "software engineer!" at "GOOGLE." are the same job.
func DedupKey(p domain.Posting) string {
	return normalizeToken(p.Title) + "-" + normalizeToken(p.Company)
}

func normalizeToken(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
		// punctuation and symbols dropped
	}
	return strings.TrimRight(b.String(), " ")
}

// Dedup removes duplicate postings, keeping first-seen order. When two
// sources carry the same job, the posting from the higher-precedence
// source (lower priority number) wins; a later higher-precedence copy
// replaces the earlier one in place rather than moving to the back, so
// output order depends only on input order, never on source ranking.
func Dedup(postings []domain.Posting, priorities map[string]int) []domain.Posting {
	out := make([]domain.Posting, 0, len(postings))
	index := make(map[string]int, len(postings))

	for _, p := range postings {
		key := DedupKey(p)
		at, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, p)
			continue
		}
		if sourcePriority(priorities, p.Source) < sourcePriority(priorities, out[at].Source) {
			out[at] = p
		}
	}
	return out
}

func sourcePriority(priorities map[string]int, source string) int {
	if prio, ok := priorities[source]; ok {
		return prio
	}
	// unknown sources rank behind every registered one
	return 1 << 20
}
