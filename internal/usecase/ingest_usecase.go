package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"job-hunt-agent/internal/domain/posting"
	"job-hunt-agent/internal/domain/profile"
	"job-hunt-agent/internal/domain/scoring"
	"job-hunt-agent/internal/repository"

	"github.com/google/uuid"
)

// Candidate is one externally supplied job posting offered for ingestion.
type Candidate struct {
	Source      string
	ExternalID  string
	Title       string
	Company     string
	Location    string
	Description string
	ApplyURL    string
	PostedAt    *time.Time
}

type ResultStatus string

const (
	ResultScored   ResultStatus = "scored"
	ResultRejected ResultStatus = "rejected"
)

const (
	ReasonInvalidPayload     = "invalid_payload"
	ReasonStorageUnavailable = "storage_unavailable"
)

// Result is the per-candidate ingestion outcome. Scored results carry the
// computed score and the repository outcome (a duplicate rejection is a
// normal outcome, not a failure); rejected results carry a reason and mean
// nothing was written.
type Result struct {
	Status      ResultStatus
	Reason      string
	Score       float64
	Outcome     repository.UpsertOutcome
	CanonicalID string
	Breakdown   scoring.Breakdown
}

type IngestUsecase interface {
	IngestOne(ctx context.Context, c Candidate) (Result, error)
	IngestBatch(ctx context.Context, candidates []Candidate) ([]Result, error)
}

type Ingest struct {
	postings repository.PostingRepository
	profiles repository.ProfileRepository
	cache    RecommendCache
	logger   *log.Logger
}

func NewIngestUsecase(postings repository.PostingRepository, profiles repository.ProfileRepository, cache RecommendCache, logger *log.Logger) *Ingest {
	return &Ingest{postings: postings, profiles: profiles, cache: cache, logger: logger}
}

func (u *Ingest) IngestOne(ctx context.Context, c Candidate) (Result, error) {
	results, err := u.IngestBatch(ctx, []Candidate{c})
	if err != nil {
		return Result{}, err
	}
	return results[0], nil
}

// IngestBatch processes candidates independently: one rejection never aborts
// its siblings, and results preserve input order. The profile is snapshotted
// once so every item in the batch is scored against the same profile even if
// a replace lands mid-batch.
func (u *Ingest) IngestBatch(ctx context.Context, candidates []Candidate) ([]Result, error) {
	snapshot, _, err := u.profiles.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	scoringProfile := toScoringProfile(snapshot)

	results := make([]Result, 0, len(candidates))
	wrote := false
	for _, c := range candidates {
		res := u.ingestOne(ctx, scoringProfile, c)
		if res.Outcome == repository.OutcomeInserted || res.Outcome == repository.OutcomeDuplicateRefreshed {
			wrote = true
		}
		results = append(results, res)
	}

	if wrote && u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, recommendCachePattern); err != nil && u.logger != nil {
			u.logger.Printf("[Ingest] cache invalidation failed: %v", err)
		}
	}

	return results, nil
}

func (u *Ingest) ingestOne(ctx context.Context, prof scoring.Profile, c Candidate) Result {
	title := strings.TrimSpace(c.Title)
	company := strings.TrimSpace(c.Company)
	applyURL := strings.TrimSpace(c.ApplyURL)
	if title == "" || company == "" || applyURL == "" {
		return Result{Status: ResultRejected, Reason: ReasonInvalidPayload}
	}

	scored := scoring.Score(scoring.Posting{
		Title:       title,
		Company:     company,
		Location:    c.Location,
		Description: c.Description,
	}, prof)

	p := posting.Posting{
		ID:          uuid.New(),
		CanonicalID: posting.CanonicalID(c.Source, c.ExternalID, title, company, applyURL),
		Source:      strings.TrimSpace(c.Source),
		ExternalID:  strings.TrimSpace(c.ExternalID),
		Title:       title,
		Company:     company,
		Location:    strings.TrimSpace(c.Location),
		Description: c.Description,
		ApplyURL:    applyURL,
		PostedAt:    c.PostedAt,
		IngestedAt:  time.Now().UTC(),
		Score:       scored.Score,
		Breakdown:   scored.Breakdown,
	}

	outcome, err := u.postings.Upsert(ctx, p)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Ingest] upsert failed canonical_id=%s: %v", p.CanonicalID, err)
		}
		return Result{Status: ResultRejected, Reason: ReasonStorageUnavailable, CanonicalID: p.CanonicalID}
	}

	return Result{
		Status:      ResultScored,
		Score:       scored.Score,
		Outcome:     outcome,
		CanonicalID: p.CanonicalID,
		Breakdown:   scored.Breakdown,
	}
}

func toScoringProfile(p profile.Profile) scoring.Profile {
	return scoring.Profile{
		Roles:       p.Roles,
		Skills:      p.Skills,
		Locations:   p.Locations,
		BadKeywords: p.BadKeywords,
		RemoteOnly:  p.RemoteOnly,
		Weights: scoring.Weights{
			Role:     p.Weights.Role,
			Skill:    p.Weights.Skill,
			Location: p.Weights.Location,
		},
	}
}
