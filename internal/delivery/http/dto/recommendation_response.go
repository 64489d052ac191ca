package dto

import (
	"github.com/google/uuid"
)

type BreakdownCategoryItem struct {
	Matched      []string `json:"matched"`
	Contribution float64  `json:"contribution"`
}

type BreakdownResponse struct {
	Categories  map[string]BreakdownCategoryItem `json:"categories"`
	BadKeywords []string                         `json:"bad_keywords,omitempty"`
}

type RecommendationResponse struct {
	ID          uuid.UUID         `json:"id"`
	Source      string            `json:"source,omitempty"`
	Title       string            `json:"title"`
	Company     string            `json:"company"`
	Location    string            `json:"location"`
	Description string            `json:"description"`
	ApplyURL    string            `json:"apply_url"`
	PostedAt    string            `json:"posted_at,omitempty"`
	IngestedAt  string            `json:"ingested_at"`
	Score       float64           `json:"score"`
	Breakdown   BreakdownResponse `json:"breakdown"`
}
