package domain

import "time"

// Profile is one discovered contact at a target company.
type Profile struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Headline          string    `json:"headline"`
	Company           string    `json:"company"`
	Location          string    `json:"location"`
	ConnectionDegree  string    `json:"connectionDegree"` // "1st"/"2nd"/"3rd"/"potential"
	MutualConnections int       `json:"mutualConnections"`
	ProfileURL        string    `json:"profileUrl"`
	Category          string    `json:"category"` // recruiter / hiring-manager / employee
	LastInteraction   time.Time `json:"lastInteraction,omitempty"`
}
