package directory

import (
	"context"
	"log/slog"

	"github.com/PudgyPigeon/MockBankSystem/internal/dependencies/clock"
	"github.com/PudgyPigeon/MockBankSystem/internal/model"
	"github.com/PudgyPigeon/MockBankSystem/internal/storage"
)

// Service enforces username uniqueness and owns account record creation
// and lookup. It never touches balances beyond the starting value.
type Service struct {
	store  storage.Store
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new directory service
func New(store storage.Store, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Exists reports whether a record with the given username is in the table.
// Usernames are case-sensitive.
func (s *Service) Exists(ctx context.Context, username model.Username) (bool, error) {
	accounts, err := s.store.Load(ctx)
	if err != nil {
		return false, err
	}
	return findRow(accounts, username) >= 0, nil
}

// Find returns the record for the given username
func (s *Service) Find(ctx context.Context, username model.Username) (*model.Account, error) {
	accounts, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := findRow(accounts, username)
	if i < 0 {
		return nil, model.ErrAccountNotFound
	}
	account := accounts[i]
	return &account, nil
}

// Create appends a new record with the given credential digest and starting
// balance. The duplicate check, append, and save happen inside one atomic
// store update, so a duplicate failure leaves the table untouched.
func (s *Service) Create(
	ctx context.Context,
	username model.Username,
	credentialDigest string,
	startingBalance float64,
) (*model.Account, error) {
	if startingBalance < 0 {
		return nil, model.ErrInvalidAmount
	}

	account := model.Account{
		Username:       username,
		PasswordDigest: credentialDigest,
		Balance:        startingBalance,
		CreatedAt:      s.clock.Now(),
	}

	err := s.store.Update(ctx, func(accounts []model.Account) ([]model.Account, error) {
		if findRow(accounts, username) >= 0 {
			return nil, model.ErrDuplicateUsername
		}
		return append(accounts, account), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("account created",
		slog.String("username", string(username)),
		slog.Float64("starting_balance", startingBalance),
	)

	return &account, nil
}

// findRow returns the index of the username's row, or -1.
// The store rejects duplicate rows at load, so at most one row matches.
func findRow(accounts []model.Account, username model.Username) int {
	for i, a := range accounts {
		if a.Username == username {
			return i
		}
	}
	return -1
}
