package storage

import (
	"context"

	"github.com/PudgyPigeon/MockBankSystem/internal/model"
)

// UpdateFunc transforms the full account table during an atomic update.
// It receives the freshly loaded rows and returns the rows to persist.
// Returning an error aborts the update without writing anything.
type UpdateFunc func(accounts []model.Account) ([]model.Account, error)

// Store defines the interface for account table persistence.
// The table is the single source of truth: Load reads the whole table,
// Save overwrites it wholesale, and Update runs one load-mutate-save
// round trip atomically with respect to other callers of the store.
type Store interface {
	Load(ctx context.Context) ([]model.Account, error)
	Save(ctx context.Context, accounts []model.Account) error
	Update(ctx context.Context, fn UpdateFunc) error
}
