package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"job-hunt-agent/internal/domain/posting"
	"job-hunt-agent/internal/domain/profile"
	"job-hunt-agent/internal/repository"
)

var errStorageDown = errors.New("storage down")

// fakeCache is an in-memory RecommendCache recording invalidations.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = raw
	return nil
}

func (c *fakeCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletes = append(c.deletes, pattern)
	c.entries = make(map[string][]byte)
	return nil
}

func (c *fakeCache) deleteCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.deletes)
}

type failingPostingRepository struct{}

func (failingPostingRepository) Upsert(context.Context, posting.Posting) (repository.UpsertOutcome, error) {
	return "", errStorageDown
}

func (failingPostingRepository) List(context.Context, repository.PostingFilter) ([]posting.Posting, error) {
	return nil, errStorageDown
}

type failingProfileRepository struct{}

func (failingProfileRepository) Get(context.Context) (profile.Profile, bool, error) {
	return profile.Profile{}, false, errStorageDown
}

func (failingProfileRepository) Replace(context.Context, profile.Profile) error {
	return errStorageDown
}
