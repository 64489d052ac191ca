package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"job-hunt-agent/internal/database"
	"job-hunt-agent/internal/domain/posting"
	"job-hunt-agent/internal/domain/scoring"

	"github.com/jackc/pgx/v5"
)

type UpsertOutcome string

const (
	OutcomeInserted           UpsertOutcome = "inserted"
	OutcomeDuplicateRejected  UpsertOutcome = "duplicate_rejected"
	OutcomeDuplicateRefreshed UpsertOutcome = "duplicate_refreshed"
)

// PostingFilter narrows List results. Limit <= 0 means no explicit limit;
// callers apply their own default cap.
type PostingFilter struct {
	MinScore float64
	Since    *time.Time
	Limit    int
}

type PostingRepository interface {
	// Upsert inserts the posting or applies the duplicate policy when a
	// posting with the same canonical identity exists. Concurrent upserts of
	// one identity are serialized.
	Upsert(ctx context.Context, p posting.Posting) (UpsertOutcome, error)

	// List returns postings matching the filter ordered by score DESC,
	// posted_at DESC (NULLs last), canonical id ASC.
	List(ctx context.Context, f PostingFilter) ([]posting.Posting, error)
}

type PostgresPostingRepository struct {
	db database.DB
}

func NewPostgresPostingRepository(db database.DB) *PostgresPostingRepository {
	return &PostgresPostingRepository{db: db}
}

func (r *PostgresPostingRepository) Upsert(ctx context.Context, p posting.Posting) (UpsertOutcome, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Row lock serializes concurrent upserts of the same identity.
	var stored *time.Time
	row := tx.QueryRow(ctx, `SELECT posted_at FROM postings WHERE canonical_id = $1 FOR UPDATE`, p.CanonicalID)
	err = row.Scan(&stored)

	switch {
	case err == nil:
		if !posting.ShouldRefresh(p.PostedAt, stored) {
			if err := tx.Commit(ctx); err != nil {
				return "", err
			}
			return OutcomeDuplicateRejected, nil
		}

		breakdown, err := json.Marshal(p.Breakdown)
		if err != nil {
			return "", err
		}
		_, err = tx.Exec(ctx,
			`UPDATE postings
			 SET description = $2, location = $3, posted_at = $4, score = $5, breakdown = $6
			 WHERE canonical_id = $1`,
			p.CanonicalID, p.Description, p.Location, p.PostedAt, p.Score, breakdown,
		)
		if err != nil {
			return "", err
		}
		if err := tx.Commit(ctx); err != nil {
			return "", err
		}
		return OutcomeDuplicateRefreshed, nil

	case errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows):
		breakdown, err := json.Marshal(p.Breakdown)
		if err != nil {
			return "", err
		}
		affected, err := tx.Exec(ctx,
			`INSERT INTO postings (
				canonical_id, id, source, external_id, title, company,
				location, description, apply_url, posted_at, ingested_at, score, breakdown
			 ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
			 ON CONFLICT (canonical_id) DO NOTHING`,
			p.CanonicalID, p.ID, p.Source, p.ExternalID, p.Title, p.Company,
			p.Location, p.Description, p.ApplyURL, p.PostedAt, p.IngestedAt, p.Score, breakdown,
		)
		if err != nil {
			return "", err
		}
		if err := tx.Commit(ctx); err != nil {
			return "", err
		}
		if affected == 0 {
			// Lost an insert race after the lock probe saw no row.
			return OutcomeDuplicateRejected, nil
		}
		return OutcomeInserted, nil

	default:
		return "", err
	}
}

func (r *PostgresPostingRepository) List(ctx context.Context, f PostingFilter) ([]posting.Posting, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(ctx,
		`SELECT canonical_id, id, source, external_id, title, company,
			location, description, apply_url, posted_at, ingested_at, score, breakdown
		 FROM postings
		 WHERE score >= $1
		   AND ($2::timestamptz IS NULL OR ingested_at >= $2)
		 ORDER BY score DESC, posted_at DESC NULLS LAST, canonical_id ASC
		 LIMIT $3`,
		f.MinScore, f.Since, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]posting.Posting, 0)
	for rows.Next() {
		var p posting.Posting
		var breakdown []byte
		if err := rows.Scan(
			&p.CanonicalID, &p.ID, &p.Source, &p.ExternalID, &p.Title, &p.Company,
			&p.Location, &p.Description, &p.ApplyURL, &p.PostedAt, &p.IngestedAt, &p.Score, &breakdown,
		); err != nil {
			return nil, err
		}
		if len(breakdown) > 0 {
			if err := json.Unmarshal(breakdown, &p.Breakdown); err != nil {
				return nil, err
			}
		}
		if p.Breakdown.Categories == nil {
			p.Breakdown.Categories = map[string]scoring.CategoryBreakdown{}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
