package repository

import (
	"context"
	"sort"
	"sync"

	"job-hunt-agent/internal/domain/posting"
)

// MemoryPostingRepository keeps postings in a mutex-guarded map. It backs
// deployments without Postgres and the package tests; it honors the same
// upsert and ordering contract as the Postgres implementation.
type MemoryPostingRepository struct {
	mu    sync.RWMutex
	items map[string]posting.Posting
}

func NewMemoryPostingRepository() *MemoryPostingRepository {
	return &MemoryPostingRepository{items: make(map[string]posting.Posting)}
}

func (r *MemoryPostingRepository) Upsert(_ context.Context, p posting.Posting) (UpsertOutcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[p.CanonicalID]
	if !ok {
		r.items[p.CanonicalID] = p
		return OutcomeInserted, nil
	}

	if !posting.ShouldRefresh(p.PostedAt, stored.PostedAt) {
		return OutcomeDuplicateRejected, nil
	}

	stored.Description = p.Description
	stored.Location = p.Location
	stored.PostedAt = p.PostedAt
	stored.Score = p.Score
	stored.Breakdown = p.Breakdown
	r.items[p.CanonicalID] = stored
	return OutcomeDuplicateRefreshed, nil
}

func (r *MemoryPostingRepository) List(_ context.Context, f PostingFilter) ([]posting.Posting, error) {
	r.mu.RLock()
	out := make([]posting.Posting, 0, len(r.items))
	for _, p := range r.items {
		if p.Score < f.MinScore {
			continue
		}
		if f.Since != nil && p.IngestedAt.Before(*f.Since) {
			continue
		}
		out = append(out, p)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		pi, pj := out[i].PostedAt, out[j].PostedAt
		switch {
		case pi != nil && pj != nil && !pi.Equal(*pj):
			return pi.After(*pj)
		case pi != nil && pj == nil:
			return true
		case pi == nil && pj != nil:
			return false
		}
		return out[i].CanonicalID < out[j].CanonicalID
	})

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Len reports the number of stored postings.
func (r *MemoryPostingRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
