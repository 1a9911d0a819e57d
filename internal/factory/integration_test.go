package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/PudgyPigeon/MockBankSystem/internal/model"
	"github.com/PudgyPigeon/MockBankSystem/internal/storage/csvfile"
	"github.com/PudgyPigeon/MockBankSystem/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: complete flow from account creation to a cross-account transfer
func (s *IntegrationSuite) TestCompleteBankingFlow() {
	// Step 1: Create two accounts
	s.Require().NoError(s.app.SeedAccount(s.ctx, "alice", "password123", 399))
	s.Require().NoError(s.app.SeedAccount(s.ctx, "bob", "hunter2", 1000))

	// Step 2: A failed login does not lock the account
	_, err := s.app.BankController.Login(s.ctx, "alice", "wrong")
	s.ErrorIs(err, model.ErrInvalidCredentials)

	session, err := s.app.BankController.Login(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	// Step 3: Deposit and withdraw
	balance, err := session.Deposit(s.ctx, 100)
	s.Require().NoError(err)
	s.Equal(499.0, balance)

	balance, err = session.Withdraw(s.ctx, 150)
	s.Require().NoError(err)
	s.Equal(349.0, balance)

	// Step 4: An oversized withdrawal is rejected without mutation
	_, err = session.Withdraw(s.ctx, 1e9)
	s.ErrorIs(err, model.ErrInsufficientFunds)

	balance, err = session.Balance(s.ctx)
	s.Require().NoError(err)
	s.Equal(349.0, balance)

	// Step 5: Transfer to bob
	balance, err = session.Transfer(s.ctx, "bob", 100)
	s.Require().NoError(err)
	s.Equal(249.0, balance)

	bobBalance, err := s.app.LedgerService.Balance(s.ctx, "bob")
	s.Require().NoError(err)
	s.Equal(1100.0, bobBalance)

	// Step 6: Transfer to a missing account leaves the source untouched
	_, err = session.Transfer(s.ctx, "nobody", 50)
	s.ErrorIs(err, model.ErrAccountNotFound)

	balance, err = session.Balance(s.ctx)
	s.Require().NoError(err)
	s.Equal(249.0, balance)
}

func (s *IntegrationSuite) TestFactoryRejectsUnknownStorageType() {
	_, err := New(Config{StorageType: "postgres"})
	s.Error(err)
}

func (s *IntegrationSuite) TestFactoryRequiresCSVConfigForCSVStorage() {
	_, err := New(Config{StorageType: StorageTypeCSV})
	s.Error(err)
}

// Test: the same flow against the real file-backed store
func (s *IntegrationSuite) TestFileBackedFlowPersistsAcrossApps() {
	path := filepath.Join(s.T().TempDir(), "bank_system.csv")
	storeCfg := csvfile.DefaultConfig()
	storeCfg.Path = path
	storeCfg.CreateIfMissing = true

	newApp := func() *App {
		app, err := New(Config{
			Logger:      testutil.NopLogger(),
			StorageType: StorageTypeCSV,
			CSVConfig:   &storeCfg,
		})
		s.Require().NoError(err)
		return app
	}

	// First run: create an account and deposit
	first := newApp()
	_, err := first.BankController.CreateAccount(s.ctx, "alice", "password123", 100)
	s.Require().NoError(err)

	session, err := first.BankController.Login(s.ctx, "alice", "password123")
	s.Require().NoError(err)
	_, err = session.Deposit(s.ctx, 25)
	s.Require().NoError(err)

	// Second run: the file is the single source of truth
	second := newApp()
	session, err = second.BankController.Login(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	balance, err := session.Balance(s.ctx)
	s.Require().NoError(err)
	s.Equal(125.0, balance)
}
