// Package fallback generates clearly-tagged placeholder postings when a
// provider cannot reach its upstream. The UI keys a persistent banner off
// the marker, so every synthetic posting must carry it in a visible field.
package fallback

import (
	"fmt"
	"strings"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/provider/util"
)

// Marker appears in the description of every synthetic posting.
const Marker = "Sample Data"

var sampleCompanies = []string{
	"TechCorp Solutions",
	"Innovate Labs",
	"Digital Dynamics",
	"CloudScale Systems",
	"NextGen Software",
	"BrightPath Analytics",
	"Summit Technologies",
	"BlueRiver Consulting",
}

var titleVariants = []string{"%s", "Senior %s", "%s II", "Lead %s", "Junior %s", "%s (Contract)"}

// Postings builds n deterministic sample postings for a provider that
// could not return live data. Company choice is offset by the source name
// so two providers falling back on the same query don't collide in dedup.
func Postings(source string, c domain.SearchCriteria, n int) []domain.Posting {
	title := util.CleanText(c.Query)
	if title == "" {
		title = "Software Engineer"
	}

	loc := util.CleanText(c.City)
	if loc == "" {
		loc = util.CleanText(c.Country)
	}
	if loc == "" {
		loc = "Remote"
	}

	offset := 0
	for _, r := range source {
		offset += int(r)
	}

	out := make([]domain.Posting, 0, n)
	for i := 0; i < n; i++ {
		company := sampleCompanies[(offset+i)%len(sampleCompanies)]
		t := fmt.Sprintf(titleVariants[i%len(titleVariants)], titleWords(title))
		remote := c.Remote || i%3 == 0
		salary := fmt.Sprintf("$%dk - $%dk", 90+10*(i%4), 120+10*(i%4))

		out = append(out, domain.Posting{
			ID:              fmt.Sprintf("%s:sample-%d", source, i+1),
			Title:           t,
			Company:         company,
			Location:        loc,
			Salary:          salary,
			Description:     fmt.Sprintf("[%s] Placeholder listing for %q while %s is unavailable. Configure credentials to see live results.", Marker, title, source),
			ApplyURL:        fmt.Sprintf("https://example.com/jobs/%s/%d", source, i+1),
			PostedAt:        fmt.Sprintf("%d days ago", i+1),
			Source:          source,
			JobType:         util.Default(c.JobType, "Full-time"),
			ExperienceLevel: util.ClassifyExperience(t),
			Requirements:    Requirements(t),
			Benefits:        Benefits(company, remote),
			Remote:          remote,
		})
	}
	return out
}

func titleWords(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		fields[i] = strings.ToUpper(f[:1]) + f[1:]
	}
	return strings.Join(fields, " ")
}

// Requirements derives a plausible requirement list from title keywords.
// Deterministic: the same title always yields the same list.
func Requirements(title string) []string {
	t := strings.ToLower(title)
	reqs := []string{"3+ years of relevant professional experience"}

	switch {
	case strings.Contains(t, "engineer") || strings.Contains(t, "developer"):
		reqs = append(reqs,
			"Proficiency in at least one modern programming language",
			"Experience with version control and code review workflows",
		)
	case strings.Contains(t, "data"):
		reqs = append(reqs,
			"Strong SQL and data modeling skills",
			"Experience with statistical analysis or ML tooling",
		)
	case strings.Contains(t, "manager") || strings.Contains(t, "executive"):
		reqs = append(reqs,
			"Track record of leading cross-functional initiatives",
			"Excellent stakeholder communication skills",
		)
	default:
		reqs = append(reqs, "Strong written and verbal communication skills")
	}

	if strings.Contains(t, "senior") || strings.Contains(t, "lead") || strings.Contains(t, "principal") {
		reqs = append(reqs, "Mentorship of junior team members")
	}
	return reqs
}

// Benefits derives a benefit list from the company name and remote flag.
func Benefits(company string, remote bool) []string {
	out := []string{"Health, dental, and vision insurance", "401(k) with company match", "Paid time off"}
	if remote {
		out = append(out, "Flexible remote work")
	}
	c := strings.ToLower(company)
	if strings.Contains(c, "tech") || strings.Contains(c, "labs") || strings.Contains(c, "systems") {
		out = append(out, "Equity compensation")
	}
	return out
}
