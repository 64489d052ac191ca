package posting

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"job-hunt-agent/internal/domain/scoring"

	"github.com/google/uuid"
)

// Posting is one ingested job advertisement. CanonicalID is the dedup key;
// no two stored postings share it.
type Posting struct {
	ID          uuid.UUID
	CanonicalID string
	Source      string
	ExternalID  string
	Title       string
	Company     string
	Location    string
	Description string
	ApplyURL    string
	PostedAt    *time.Time
	IngestedAt  time.Time
	Score       float64
	Breakdown   scoring.Breakdown
}

// CanonicalID derives the stable dedup key. When the origin supplies an
// external id the key is bound to (source, external id); otherwise it falls
// back to the normalized content fields so re-ingesting the same ad from a
// feed without ids still collides.
func CanonicalID(source, externalID, title, company, applyURL string) string {
	externalID = strings.TrimSpace(externalID)
	if externalID != "" {
		return hashKey(strings.TrimSpace(source) + "\x00" + externalID)
	}
	return hashKey(normalize(title) + "|" + normalize(company) + "|" + normalize(applyURL))
}

// ShouldRefresh decides the duplicate policy: mutable fields are refreshed
// only when the incoming posted timestamp is present and the stored one is
// absent or strictly older.
func ShouldRefresh(incoming, stored *time.Time) bool {
	if incoming == nil {
		return false
	}
	if stored == nil {
		return true
	}
	return incoming.After(*stored)
}

func hashKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}
