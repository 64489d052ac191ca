package dto

type IngestResultResponse struct {
	Status      string  `json:"status"`
	Reason      string  `json:"reason,omitempty"`
	Score       float64 `json:"score"`
	Outcome     string  `json:"outcome,omitempty"`
	CanonicalID string  `json:"canonical_id,omitempty"`
}

type IngestBatchResponse struct {
	Results []IngestResultResponse `json:"results"`
}
