package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"job-hunt-agent/internal/domain/profile"
	"job-hunt-agent/internal/repository"
)

var (
	ErrInvalidProfile     = errors.New("invalid profile")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context) (profile.Profile, error)
	ReplaceProfile(ctx context.Context, p profile.Profile) (profile.Profile, error)
}

type Profile struct {
	profiles repository.ProfileRepository
	cache    RecommendCache
	logger   *log.Logger
}

func NewProfileUsecase(profiles repository.ProfileRepository, cache RecommendCache, logger *log.Logger) *Profile {
	return &Profile{profiles: profiles, cache: cache, logger: logger}
}

// GetProfile never fails on "not yet set": the default empty profile is
// returned until the first replace.
func (u *Profile) GetProfile(ctx context.Context) (profile.Profile, error) {
	p, _, err := u.profiles.Get(ctx)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return p, nil
}

// ReplaceProfile validates and atomically swaps the stored profile.
// Validation is all-or-nothing; nothing is written on failure. Cached
// recommendations are invalidated because rankings may change.
func (u *Profile) ReplaceProfile(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	normalized, err := profile.Normalize(p)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	normalized.UpdatedAt = time.Now().UTC()

	if err := u.profiles.Replace(ctx, normalized); err != nil {
		return profile.Profile{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, recommendCachePattern); err != nil && u.logger != nil {
			u.logger.Printf("[Profile] cache invalidation failed: %v", err)
		}
	}

	return normalized, nil
}
