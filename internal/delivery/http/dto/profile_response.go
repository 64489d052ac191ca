package dto

import "time"

type ProfileWeights struct {
	Role     float64 `json:"role,omitempty"`
	Skill    float64 `json:"skill,omitempty"`
	Location float64 `json:"location,omitempty"`
}

type ProfileResponse struct {
	FullName    string         `json:"full_name,omitempty"`
	Roles       []string       `json:"roles"`
	Skills      []string       `json:"skills"`
	Locations   []string       `json:"locations"`
	BadKeywords []string       `json:"bad_keywords"`
	RemoteOnly  bool           `json:"remote_only"`
	Weights     ProfileWeights `json:"weights"`
	UpdatedAt   *time.Time     `json:"updated_at,omitempty"`
}
