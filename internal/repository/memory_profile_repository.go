package repository

import (
	"context"
	"sync"

	"job-hunt-agent/internal/domain/profile"
)

// MemoryProfileRepository holds the singleton profile in memory.
type MemoryProfileRepository struct {
	mu    sync.RWMutex
	set   bool
	value profile.Profile
}

func NewMemoryProfileRepository() *MemoryProfileRepository {
	return &MemoryProfileRepository{}
}

func (r *MemoryProfileRepository) Get(_ context.Context) (profile.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.set {
		return profile.Default(), false, nil
	}
	return r.value, true, nil
}

func (r *MemoryProfileRepository) Replace(_ context.Context, p profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = p
	r.set = true
	return nil
}
