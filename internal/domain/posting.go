package domain

// Posting is the canonical normalized job listing, regardless of which
// provider produced it. Adapters fill every field; missing upstream data
// is replaced with sentinel strings so consumers never branch on absence.
type Posting struct {
	ID              string   `json:"id"` // provider-namespaced, e.g. "adzuna:4182..."
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	Salary          string   `json:"salary"` // free text, e.g. "$120k - $150k"
	SalaryMin       int      `json:"salaryMin,omitempty"`
	SalaryMax       int      `json:"salaryMax,omitempty"`
	Description     string   `json:"description"`
	ApplyURL        string   `json:"applyUrl"`
	PostedAt        string   `json:"postedAt"` // relative age or RFC3339
	Source          string   `json:"source"`
	JobType         string   `json:"jobType"`
	ExperienceLevel string   `json:"experienceLevel"`
	Requirements    []string `json:"requirements"`
	Benefits        []string `json:"benefits"`
	Remote          bool     `json:"remote"`
}
