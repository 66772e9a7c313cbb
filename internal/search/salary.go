package search

import (
	"strconv"
	"strings"

	"jobscout-engine/internal/domain"
)

// postingSalary extracts a comparable annual minimum from a posting.
// Structured minimums win; otherwise the display string is parsed for a
// leading "NNNk" figure. Anything unparseable compares as zero, which
// keeps such postings in results but denies them the salary bonus.
func postingSalary(p domain.Posting) int {
	if p.SalaryMin > 0 {
		return p.SalaryMin
	}
	return parseSalaryString(p.Salary)
}

func parseSalaryString(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.TrimLeft(s, "$£€ ")

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0
	}
	rest := strings.ToLower(strings.TrimSpace(s[i:]))
	if strings.HasPrefix(rest, "k") {
		n *= 1000
	}
	return n
}
