package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"job-hunt-agent/internal/domain/posting"

	"github.com/google/uuid"
)

func newPosting(canonicalID string, score float64, postedAt *time.Time) posting.Posting {
	return posting.Posting{
		ID:          uuid.New(),
		CanonicalID: canonicalID,
		Source:      "test",
		Title:       "Backend Engineer",
		Company:     "Acme",
		ApplyURL:    "https://acme.example/apply/" + canonicalID,
		PostedAt:    postedAt,
		IngestedAt:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Score:       score,
	}
}

func TestMemoryPostingRepository_UpsertIdempotent(t *testing.T) {
	repo := NewMemoryPostingRepository()
	ctx := context.Background()

	posted := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	p := newPosting("abc", 80, &posted)

	outcome, err := repo.Upsert(ctx, p)
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if outcome != OutcomeInserted {
		t.Fatalf("first Upsert() = %s, want %s", outcome, OutcomeInserted)
	}

	outcome, err = repo.Upsert(ctx, p)
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if outcome != OutcomeDuplicateRejected {
		t.Fatalf("second Upsert() = %s, want %s", outcome, OutcomeDuplicateRejected)
	}

	if repo.Len() != 1 {
		t.Fatalf("repository holds %d postings, want 1", repo.Len())
	}
}

func TestMemoryPostingRepository_RefreshOnNewerPostedAt(t *testing.T) {
	repo := NewMemoryPostingRepository()
	ctx := context.Background()

	older := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(48 * time.Hour)

	first := newPosting("abc", 50, &older)
	first.Description = "old text"
	if _, err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	second := newPosting("abc", 75, &newer)
	second.Description = "new text"
	second.Location = "Remote"

	outcome, err := repo.Upsert(ctx, second)
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if outcome != OutcomeDuplicateRefreshed {
		t.Fatalf("Upsert() = %s, want %s", outcome, OutcomeDuplicateRefreshed)
	}

	got, err := repo.List(ctx, PostingFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("List() returned %d postings, want 1", len(got))
	}
	if got[0].Description != "new text" || got[0].Score != 75 {
		t.Errorf("refresh did not replace mutable fields: %+v", got[0])
	}
	if got[0].PostedAt == nil || !got[0].PostedAt.Equal(newer) {
		t.Errorf("refresh did not advance posted_at")
	}
}

func TestMemoryPostingRepository_NoRefreshWithoutPostedAt(t *testing.T) {
	repo := NewMemoryPostingRepository()
	ctx := context.Background()

	posted := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	if _, err := repo.Upsert(ctx, newPosting("abc", 50, &posted)); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	undated := newPosting("abc", 99, nil)
	outcome, err := repo.Upsert(ctx, undated)
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if outcome != OutcomeDuplicateRejected {
		t.Fatalf("undated duplicate = %s, want %s", outcome, OutcomeDuplicateRejected)
	}

	got, _ := repo.List(ctx, PostingFilter{})
	if got[0].Score != 50 {
		t.Errorf("undated duplicate must not overwrite stored fields")
	}
}

func TestMemoryPostingRepository_ListOrdering(t *testing.T) {
	repo := NewMemoryPostingRepository()
	ctx := context.Background()

	early := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	seed := []posting.Posting{
		newPosting("ccc", 80, &early),
		newPosting("bbb", 80, &late),
		newPosting("ddd", 95, nil),
		newPosting("aaa", 80, nil),
		newPosting("eee", 10, &late),
	}
	for _, p := range seed {
		if _, err := repo.Upsert(ctx, p); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
	}

	got, err := repo.List(ctx, PostingFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	// score DESC, posted_at DESC with NULLs last, canonical id ASC
	want := []string{"ddd", "bbb", "ccc", "aaa", "eee"}
	if len(got) != len(want) {
		t.Fatalf("List() returned %d postings, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].CanonicalID != id {
			t.Fatalf("position %d: got %s, want %s", i, got[i].CanonicalID, id)
		}
	}

	// Repeated reads come back in the same order.
	again, _ := repo.List(ctx, PostingFilter{})
	for i := range got {
		if got[i].CanonicalID != again[i].CanonicalID {
			t.Fatalf("ordering not stable across calls at position %d", i)
		}
	}
}

func TestMemoryPostingRepository_ListFilters(t *testing.T) {
	repo := NewMemoryPostingRepository()
	ctx := context.Background()

	cutoff := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	oldOne := newPosting("old", 90, nil)
	oldOne.IngestedAt = cutoff.Add(-time.Hour)
	fresh := newPosting("fresh", 90, nil)
	fresh.IngestedAt = cutoff.Add(time.Hour)
	weak := newPosting("weak", 5, nil)
	weak.IngestedAt = cutoff.Add(time.Hour)

	for _, p := range []posting.Posting{oldOne, fresh, weak} {
		if _, err := repo.Upsert(ctx, p); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
	}

	got, err := repo.List(ctx, PostingFilter{MinScore: 10, Since: &cutoff})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 || got[0].CanonicalID != "fresh" {
		t.Fatalf("filter returned %v, want only 'fresh'", got)
	}
}

func TestMemoryPostingRepository_ListLimit(t *testing.T) {
	repo := NewMemoryPostingRepository()
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		p := newPosting(fmt.Sprintf("p%03d", i), float64(i), nil)
		if _, err := repo.Upsert(ctx, p); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
	}

	got, err := repo.List(ctx, PostingFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 50 {
		t.Fatalf("default limit returned %d postings, want 50", len(got))
	}

	got, _ = repo.List(ctx, PostingFilter{Limit: 3})
	if len(got) != 3 {
		t.Fatalf("Limit 3 returned %d postings", len(got))
	}
	if got[0].Score != 59 {
		t.Errorf("limit must keep the highest scores, got top score %v", got[0].Score)
	}
}
