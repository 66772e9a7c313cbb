package contacts

import (
	"fmt"
	"strings"
	"time"

	"jobscout-engine/internal/domain"
)

// Marker tags every synthetic profile in its headline so downstream
// layers can tell sample data from genuine upstream data.
const Marker = "Test Data"

type seedProfile struct {
	first, last string
	headline    string
	location    string
	degree      string
	mutual      int
	category    string
}

// curatedProfiles maps lowercased company names to hand-built sample
// sets. Companies outside the table get genericProfiles.
var curatedProfiles = map[string][]seedProfile{
	"spacex": {
		{"Sarah", "Chen", "Senior Technical Recruiter at SpaceX", "Hawthorne, CA", "2nd", 12, "recruiter"},
		{"Marcus", "Webb", "Talent Acquisition Lead, Propulsion", "Hawthorne, CA", "3rd", 4, "recruiter"},
		{"Priya", "Raman", "Engineering Manager, Flight Software", "Hawthorne, CA", "2nd", 9, "hiring-manager"},
		{"David", "Okafor", "Director of Avionics Engineering", "Redmond, WA", "3rd", 2, "hiring-manager"},
		{"Elena", "Vasquez", "Senior Software Engineer, Starlink", "Redmond, WA", "2nd", 15, "employee"},
		{"Tom", "Lindqvist", "Staff Engineer, Ground Systems", "Cape Canaveral, FL", "3rd", 6, "employee"},
	},
	"google": {
		{"Amanda", "Foster", "Technical Recruiter, Cloud", "Mountain View, CA", "2nd", 18, "recruiter"},
		{"Raj", "Patel", "Engineering Manager, Search Infrastructure", "Mountain View, CA", "3rd", 7, "hiring-manager"},
		{"Lisa", "Park", "Senior Software Engineer", "Seattle, WA", "2nd", 11, "employee"},
		{"James", "Murray", "Staff Software Engineer, Spanner", "New York, NY", "3rd", 3, "employee"},
	},
	"tesla": {
		{"Nicole", "Brandt", "Lead Recruiter, Autopilot", "Palo Alto, CA", "2nd", 8, "recruiter"},
		{"Carlos", "Mendez", "Engineering Manager, Vehicle Firmware", "Fremont, CA", "3rd", 5, "hiring-manager"},
		{"Anna", "Kowalski", "Senior Embedded Engineer", "Austin, TX", "2nd", 10, "employee"},
		{"Derek", "Shaw", "Software Engineer, Energy Products", "Fremont, CA", "3rd", 2, "employee"},
	},
	"stripe": {
		{"Hannah", "Goldberg", "University & Technical Recruiting", "San Francisco, CA", "2nd", 14, "recruiter"},
		{"Wei", "Zhang", "Engineering Manager, Payments Platform", "San Francisco, CA", "3rd", 6, "hiring-manager"},
		{"Oliver", "Bennett", "Senior API Engineer", "Dublin, Ireland", "2nd", 9, "employee"},
		{"Maya", "Singh", "Software Engineer, Risk", "Remote", "3rd", 4, "employee"},
	},
}

var genericProfiles = []seedProfile{
	{"Jordan", "Reeves", "Technical Recruiter", "Remote", "2nd", 7, "recruiter"},
	{"Sam", "Whitfield", "Engineering Manager", "Remote", "3rd", 5, "hiring-manager"},
	{"Alex", "Moreau", "Senior Software Engineer", "Remote", "2nd", 8, "employee"},
	{"Casey", "Tran", "Software Engineer", "Remote", "3rd", 3, "employee"},
}

// syntheticProfiles builds the fallback result set for a lookup. The
// set is company-aware and every profile carries the Marker in its
// headline.
func syntheticProfiles(params SearchParams) []domain.Profile {
	company := strings.TrimSpace(params.Company)
	seeds, ok := curatedProfiles[strings.ToLower(company)]
	if !ok {
		seeds = genericProfiles
	}
	if company == "" {
		company = "Unknown Company"
	}

	out := make([]domain.Profile, 0, len(seeds))
	for i, s := range seeds {
		out = append(out, domain.Profile{
			ID:                fmt.Sprintf("sample-%s-%d", strings.ToLower(strings.ReplaceAll(company, " ", "-")), i+1),
			FirstName:         s.first,
			LastName:          s.last,
			Headline:          s.headline + " (" + Marker + ")",
			Company:           company,
			Location:          s.location,
			ConnectionDegree:  s.degree,
			MutualConnections: s.mutual,
			ProfileURL:        fmt.Sprintf("https://www.linkedin.com/in/%s-%s-sample", strings.ToLower(s.first), strings.ToLower(s.last)),
			Category:          s.category,
			LastInteraction:   time.Now().AddDate(0, 0, -(i*3 + 1)),
		})
	}
	if params.Limit > 0 && params.Limit < len(out) {
		out = out[:params.Limit]
	}
	return out
}
