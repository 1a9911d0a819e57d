package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/PudgyPigeon/MockBankSystem/internal/model"
	"github.com/PudgyPigeon/MockBankSystem/internal/storage"
)

// Service owns balance mutation and its invariants. Every operation
// re-reads the table from the store, locates the target row, computes the
// new value, and persists the whole table inside one atomic store update;
// no balance held in memory is trusted across operations.
type Service struct {
	store  storage.Store
	logger *slog.Logger
}

// New creates a new ledger service
func New(store storage.Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Balance returns the current stored balance for the username
func (s *Service) Balance(ctx context.Context, username model.Username) (float64, error) {
	accounts, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	i := findRow(accounts, username)
	if i < 0 {
		return 0, model.ErrAccountNotFound
	}
	return accounts[i].Balance, nil
}

// Deposit adds amount to the account's balance. The amount must be
// positive; there is no upper bound.
func (s *Service) Deposit(ctx context.Context, username model.Username, amount float64) (float64, error) {
	if !validAmount(amount) {
		return 0, model.ErrInvalidAmount
	}

	var newBalance float64
	err := s.store.Update(ctx, func(accounts []model.Account) ([]model.Account, error) {
		i := findRow(accounts, username)
		if i < 0 {
			return nil, model.ErrAccountNotFound
		}
		accounts[i].Balance += amount
		newBalance = accounts[i].Balance
		return accounts, nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("deposit",
		slog.String("username", string(username)),
		slog.Float64("amount", amount),
		slog.Float64("balance", newBalance),
	)
	return newBalance, nil
}

// Withdraw subtracts amount from the account's balance. A withdrawal that
// would leave the balance negative is rejected before any mutation.
func (s *Service) Withdraw(ctx context.Context, username model.Username, amount float64) (float64, error) {
	if !validAmount(amount) {
		return 0, model.ErrInvalidAmount
	}

	var newBalance float64
	err := s.store.Update(ctx, func(accounts []model.Account) ([]model.Account, error) {
		i := findRow(accounts, username)
		if i < 0 {
			return nil, model.ErrAccountNotFound
		}
		if amount > accounts[i].Balance {
			return nil, model.ErrInsufficientFunds
		}
		accounts[i].Balance -= amount
		newBalance = accounts[i].Balance
		return accounts, nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("withdrawal",
		slog.String("username", string(username)),
		slog.Float64("amount", amount),
		slog.Float64("balance", newBalance),
	)
	return newBalance, nil
}

// Transfer moves amount from the source account to the destination account
// as one guarded operation: both accounts must exist and be distinct, and
// the source must have sufficient funds, all checked before either row is
// touched. Both new balances are then persisted in a single store write, so
// the source is never debited without the destination being credited. It
// returns the source's new balance.
func (s *Service) Transfer(ctx context.Context, source, dest model.Username, amount float64) (float64, error) {
	if !validAmount(amount) {
		return 0, model.ErrInvalidAmount
	}
	if source == dest {
		return 0, model.ErrSameAccount
	}

	var newBalance float64
	validated := false
	err := s.store.Update(ctx, func(accounts []model.Account) ([]model.Account, error) {
		si := findRow(accounts, source)
		if si < 0 {
			return nil, model.ErrAccountNotFound
		}
		di := findRow(accounts, dest)
		if di < 0 {
			return nil, model.ErrAccountNotFound
		}
		if amount > accounts[si].Balance {
			return nil, model.ErrInsufficientFunds
		}
		validated = true

		accounts[si].Balance -= amount
		accounts[di].Balance += amount
		newBalance = accounts[si].Balance
		return accounts, nil
	})
	if err != nil {
		if validated {
			// Both rows passed validation but the single write did not
			// land, so neither side changed on disk.
			return 0, fmt.Errorf("%w: %v", model.ErrTransferFailed, err)
		}
		return 0, err
	}

	s.logger.Info("transfer",
		slog.String("source", string(source)),
		slog.String("destination", string(dest)),
		slog.Float64("amount", amount),
		slog.Float64("source_balance", newBalance),
	)
	return newBalance, nil
}

// validAmount reports whether amount is a positive, finite number. NaN
// compares false to everything, so the comparison must be phrased as
// amount > 0 rather than a rejection of amount <= 0, or NaN would slip
// through and poison the stored balance.
func validAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 1)
}

// findRow returns the index of the username's row, or -1
func findRow(accounts []model.Account, username model.Username) int {
	for i, a := range accounts {
		if a.Username == username {
			return i
		}
	}
	return -1
}
