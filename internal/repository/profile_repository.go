package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"job-hunt-agent/internal/database"
	"job-hunt-agent/internal/domain/profile"

	"github.com/jackc/pgx/v5"
)

// profileRowID is the sentinel key of the single profile row.
const profileRowID = 1

type ProfileRepository interface {
	// Get returns the stored profile and whether one was ever saved.
	Get(ctx context.Context) (profile.Profile, bool, error)

	// Replace atomically swaps the stored profile.
	Replace(ctx context.Context, p profile.Profile) error
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) Get(ctx context.Context) (profile.Profile, bool, error) {
	row := r.db.QueryRow(ctx,
		`SELECT full_name, roles, skills, locations, bad_keywords, remote_only, weights, updated_at
		 FROM user_profile WHERE id = $1`,
		profileRowID,
	)

	var p profile.Profile
	var roles, skills, locations, badKeywords, weights []byte
	err := row.Scan(&p.FullName, &roles, &skills, &locations, &badKeywords, &p.RemoteOnly, &weights, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return profile.Default(), false, nil
		}
		return profile.Profile{}, false, err
	}

	for _, pair := range []struct {
		raw  []byte
		dest *[]string
	}{
		{roles, &p.Roles},
		{skills, &p.Skills},
		{locations, &p.Locations},
		{badKeywords, &p.BadKeywords},
	} {
		*pair.dest = []string{}
		if len(pair.raw) > 0 {
			if err := json.Unmarshal(pair.raw, pair.dest); err != nil {
				return profile.Profile{}, false, err
			}
		}
	}
	if len(weights) > 0 {
		if err := json.Unmarshal(weights, &p.Weights); err != nil {
			return profile.Profile{}, false, err
		}
	}

	return p, true, nil
}

func (r *PostgresProfileRepository) Replace(ctx context.Context, p profile.Profile) error {
	roles, err := json.Marshal(p.Roles)
	if err != nil {
		return err
	}
	skills, err := json.Marshal(p.Skills)
	if err != nil {
		return err
	}
	locations, err := json.Marshal(p.Locations)
	if err != nil {
		return err
	}
	badKeywords, err := json.Marshal(p.BadKeywords)
	if err != nil {
		return err
	}
	weights, err := json.Marshal(p.Weights)
	if err != nil {
		return err
	}

	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO user_profile (id, full_name, roles, skills, locations, bad_keywords, remote_only, weights, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 ON CONFLICT (id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			roles = EXCLUDED.roles,
			skills = EXCLUDED.skills,
			locations = EXCLUDED.locations,
			bad_keywords = EXCLUDED.bad_keywords,
			remote_only = EXCLUDED.remote_only,
			weights = EXCLUDED.weights,
			updated_at = EXCLUDED.updated_at`,
		profileRowID, p.FullName, roles, skills, locations, badKeywords, p.RemoteOnly, weights, updatedAt,
	)
	return err
}
