package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fastline/analytics-engine/internal/core/domain"
)

var (
	_ domain.FastStore    = (*MemoryStore)(nil)
	_ domain.BodyLogStore = (*MemoryStore)(nil)
	_ domain.ProfileStore = (*MemoryStore)(nil)
)

// MemoryStore backs tests and local development with the whole store
// contract in one mutex-guarded struct. The Seed methods exist because
// the engine itself never writes; fixtures have to come in somehow.
type MemoryStore struct {
	mu       sync.RWMutex
	fasts    map[string]*domain.Fast
	entries  map[string]*domain.BodyLogEntry
	profiles map[string]*domain.UserProfile
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		fasts:    make(map[string]*domain.Fast),
		entries:  make(map[string]*domain.BodyLogEntry),
		profiles: make(map[string]*domain.UserProfile),
	}
}

func (s *MemoryStore) SeedFast(f *domain.Fast) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fasts[f.ID] = f
}

func (s *MemoryStore) SeedEntry(e *domain.BodyLogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[e.ID] = e
}

func (s *MemoryStore) SeedProfile(p *domain.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.UserID] = p
}

func (s *MemoryStore) GetFastByID(ctx context.Context, id string) (*domain.Fast, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fast, ok := s.fasts[id]
	if !ok {
		return nil, domain.ErrFastNotFound
	}
	return fast, nil
}

func (s *MemoryStore) GetFastsByUserAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]*domain.Fast, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fasts := []*domain.Fast{}
	for _, f := range s.fasts {
		if f.UserID != userID {
			continue
		}
		if f.StartTime.Before(start) || f.StartTime.After(end) {
			continue
		}
		fasts = append(fasts, f)
	}

	sort.Slice(fasts, func(i, j int) bool {
		return fasts[i].StartTime.After(fasts[j].StartTime)
	})

	return fasts, nil
}

func (s *MemoryStore) GetBodyLogEntriesByFastID(ctx context.Context, fastID string) ([]*domain.BodyLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := []*domain.BodyLogEntry{}
	for _, e := range s.entries {
		if e.FastID != nil && *e.FastID == fastID {
			entries = append(entries, e)
		}
	}

	sortByLoggedAt(entries)
	return entries, nil
}

func (s *MemoryStore) GetBodyLogEntriesByFastIDs(ctx context.Context, fastIDs []string) (map[string][]*domain.BodyLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]bool, len(fastIDs))
	for _, id := range fastIDs {
		wanted[id] = true
	}

	byFast := make(map[string][]*domain.BodyLogEntry, len(fastIDs))
	for _, e := range s.entries {
		if e.FastID == nil || !wanted[*e.FastID] {
			continue
		}
		byFast[*e.FastID] = append(byFast[*e.FastID], e)
	}

	for _, entries := range byFast {
		sortByLoggedAt(entries)
	}
	return byFast, nil
}

func (s *MemoryStore) GetBodyLogEntriesByUser(ctx context.Context, userID string, q domain.BodyLogQuery) ([]*domain.BodyLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := []*domain.BodyLogEntry{}
	for _, e := range s.entries {
		if e.UserID != userID {
			continue
		}
		if !q.IncludeSecondary && !e.IsCanonical {
			continue
		}
		if q.StartDate != nil && e.LoggedAt.Before(*q.StartDate) {
			continue
		}
		if q.EndDate != nil && e.LoggedAt.After(*q.EndDate) {
			continue
		}
		entries = append(entries, e)
	}

	sortByLoggedAt(entries)
	return entries, nil
}

func (s *MemoryStore) GetCanonicalEntriesByRange(ctx context.Context, userID string, start, end time.Time) ([]*domain.BodyLogEntry, error) {
	return s.GetBodyLogEntriesByUser(ctx, userID, domain.BodyLogQuery{
		StartDate: &start,
		EndDate:   &end,
	})
}

func (s *MemoryStore) GetUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return profile, nil
}

func sortByLoggedAt(entries []*domain.BodyLogEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LoggedAt.Before(entries[j].LoggedAt)
	})
}
