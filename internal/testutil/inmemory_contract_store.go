package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/adspacehq/adspace/internal/domain/contract"
	ierr "github.com/adspacehq/adspace/internal/errors"
	"github.com/adspacehq/adspace/internal/types"
)

// InMemoryContractStore implements contract.Repository
type InMemoryContractStore struct {
	mu        sync.RWMutex
	contracts map[string]*contract.Contract
}

func NewInMemoryContractStore() *InMemoryContractStore {
	return &InMemoryContractStore{
		contracts: make(map[string]*contract.Contract),
	}
}

func (s *InMemoryContractStore) Create(ctx context.Context, c *contract.Contract) error {
	if c == nil {
		return ierr.NewError("contract cannot be nil").
			WithHint("Contract data is required").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.contracts[c.ID]; exists {
		return ierr.NewError("contract already exists").
			WithHintf("Contract with ID %s already exists", c.ID).
			Mark(ierr.ErrAlreadyExists)
	}

	s.contracts[c.ID] = c
	return nil
}

func (s *InMemoryContractStore) Get(ctx context.Context, id string) (*contract.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, exists := s.contracts[id]; exists && c.Status != types.StatusDeleted {
		return c, nil
	}
	return nil, ierr.NewError("contract not found").
		WithHintf("Contract with ID %s was not found", id).
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryContractStore) List(ctx context.Context) ([]*contract.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*contract.Contract
	for _, c := range s.contracts {
		if c.Status != types.StatusDeleted {
			result = append(result, c)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (s *InMemoryContractStore) Update(ctx context.Context, c *contract.Contract) error {
	if c == nil {
		return ierr.NewError("contract cannot be nil").
			WithHint("Contract data is required").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.contracts[c.ID]
	if !exists || existing.Status == types.StatusDeleted {
		return ierr.NewError("contract not found").
			WithHintf("Contract with ID %s was not found", c.ID).
			Mark(ierr.ErrNotFound)
	}

	s.contracts[c.ID] = c
	return nil
}

func (s *InMemoryContractStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, exists := s.contracts[id]
	if !exists || c.Status == types.StatusDeleted {
		return ierr.NewError("contract not found").
			WithHintf("Contract with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	c.Status = types.StatusDeleted
	return nil
}

// Clear removes all contracts from the store
func (s *InMemoryContractStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contracts = make(map[string]*contract.Contract)
}
