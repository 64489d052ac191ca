package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

const recommendCachePattern = "recommend:*"

type recommendCacheKeyInput struct {
	MinScore float64 `json:"min_score"`
	Limit    int     `json:"limit"`
	Since    string  `json:"since"`
}

func RecommendCacheKey(params RecommendationParams) string {
	in := recommendCacheKeyInput{
		MinScore: params.MinScore,
		Limit:    params.Limit,
	}
	if params.Since != nil {
		in.Since = params.Since.UTC().Format(time.RFC3339Nano)
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "recommend:" + hex.EncodeToString(sum[:])
}
