package memory

import (
	"context"
	"sync"

	"github.com/PudgyPigeon/MockBankSystem/internal/model"
	"github.com/PudgyPigeon/MockBankSystem/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// It mirrors the file store's whole-table semantics so services behave
// identically against either backend.
type Storage struct {
	mu       sync.Mutex
	accounts []model.Account
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) Load(ctx context.Context) ([]model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTable(s.accounts), nil
}

func (s *Storage) Save(ctx context.Context, accounts []model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = cloneTable(accounts)
	return nil
}

func (s *Storage) Update(ctx context.Context, fn storage.UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := fn(cloneTable(s.accounts))
	if err != nil {
		return err
	}
	s.accounts = cloneTable(updated)
	return nil
}

// cloneTable copies the table so callers never share slices with the store
func cloneTable(accounts []model.Account) []model.Account {
	out := make([]model.Account, len(accounts))
	copy(out, accounts)
	return out
}
