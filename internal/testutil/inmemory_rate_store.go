package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/adspacehq/adspace/internal/domain/rate"
	ierr "github.com/adspacehq/adspace/internal/errors"
	"github.com/adspacehq/adspace/internal/types"
)

// InMemoryRateStore implements rate.Repository
type InMemoryRateStore struct {
	mu      sync.RWMutex
	entries map[string]*rate.RateEntry
}

func NewInMemoryRateStore() *InMemoryRateStore {
	return &InMemoryRateStore{
		entries: make(map[string]*rate.RateEntry),
	}
}

func (s *InMemoryRateStore) Upsert(ctx context.Context, entry *rate.RateEntry) error {
	if entry == nil {
		return ierr.NewError("rate entry cannot be nil").
			WithHint("Rate entry data is required").
			Mark(ierr.ErrValidation)
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Replace an existing active entry with the same key
	for id, existing := range s.entries {
		if existing.Size == entry.Size && existing.Level == entry.Level && existing.Category == entry.Category &&
			existing.Status == types.StatusActive {
			delete(s.entries, id)
		}
	}

	s.entries[entry.ID] = entry
	return nil
}

func (s *InMemoryRateStore) Get(ctx context.Context, id string) (*rate.RateEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if entry, exists := s.entries[id]; exists && entry.Status != types.StatusDeleted {
		return entry, nil
	}
	return nil, ierr.NewError("rate entry not found").
		WithHintf("Rate entry with ID %s was not found", id).
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryRateStore) List(ctx context.Context) ([]*rate.RateEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*rate.RateEntry
	for _, entry := range s.entries {
		if entry.Status == types.StatusActive {
			result = append(result, entry)
		}
	}

	sortRateEntries(result)
	return result, nil
}

func (s *InMemoryRateStore) ListBySizes(ctx context.Context, sizes []string) ([]*rate.RateEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*rate.RateEntry
	for _, entry := range s.entries {
		if entry.Status == types.StatusActive && lo.Contains(sizes, entry.Size) {
			result = append(result, entry)
		}
	}

	sortRateEntries(result)
	return result, nil
}

func (s *InMemoryRateStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.entries[id]
	if !exists || entry.Status == types.StatusDeleted {
		return ierr.NewError("rate entry not found").
			WithHintf("Rate entry with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	entry.Status = types.StatusDeleted
	return nil
}

// Clear removes all entries from the store
func (s *InMemoryRateStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*rate.RateEntry)
}

func sortRateEntries(entries []*rate.RateEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Size != entries[j].Size {
			return entries[i].Size < entries[j].Size
		}
		if entries[i].Level != entries[j].Level {
			return entries[i].Level < entries[j].Level
		}
		return entries[i].Category < entries[j].Category
	})
}
