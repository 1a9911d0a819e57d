package bank

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/PudgyPigeon/MockBankSystem/internal/dependencies/mocks"
	"github.com/PudgyPigeon/MockBankSystem/internal/model"
	"github.com/PudgyPigeon/MockBankSystem/internal/services/auth"
	"github.com/PudgyPigeon/MockBankSystem/internal/services/directory"
	"github.com/PudgyPigeon/MockBankSystem/internal/services/ledger"
	"github.com/PudgyPigeon/MockBankSystem/internal/storage/memory"
	"github.com/PudgyPigeon/MockBankSystem/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	logger := testutil.NopLogger()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	s.storage = memory.New()
	dir := directory.New(s.storage, clk, logger)
	authService := auth.New(dir, clk, logger)
	ledgerService := ledger.New(s.storage, logger)
	s.controller = NewController(dir, authService, ledgerService, logger)
	s.ctx = context.Background()
}

func (s *ControllerSuite) TestCreateAccountStoresDigestNotPlaintext() {
	account, err := s.controller.CreateAccount(s.ctx, "alice", "password123", 50)
	s.Require().NoError(err)

	s.Equal(auth.HashSecret("password123"), account.PasswordDigest)
	s.NotEqual("password123", account.PasswordDigest)
	s.Equal(50.0, account.Balance)
}

func (s *ControllerSuite) TestCreateAccountFailsOnDuplicate() {
	_, err := s.controller.CreateAccount(s.ctx, "alice", "password123", 0)
	s.Require().NoError(err)

	_, err = s.controller.CreateAccount(s.ctx, "alice", "different", 0)
	s.ErrorIs(err, model.ErrDuplicateUsername)
}

func (s *ControllerSuite) TestCreateAccountFailsOnNegativeBalance() {
	_, err := s.controller.CreateAccount(s.ctx, "alice", "password123", -5)
	s.ErrorIs(err, model.ErrInvalidAmount)
}

func (s *ControllerSuite) TestLoginReturnsBoundSession() {
	_, err := s.controller.CreateAccount(s.ctx, "alice", "password123", 399)
	s.Require().NoError(err)

	session, err := s.controller.Login(s.ctx, "alice", "password123")
	s.Require().NoError(err)
	s.Equal(model.Username("alice"), session.Username())
	s.NotEmpty(session.Token())

	balance, err := session.Balance(s.ctx)
	s.Require().NoError(err)
	s.Equal(399.0, balance)
}

func (s *ControllerSuite) TestLoginFailsWithBadCredentials() {
	_, err := s.controller.CreateAccount(s.ctx, "alice", "password123", 0)
	s.Require().NoError(err)

	_, err = s.controller.Login(s.ctx, "alice", "wrong")
	s.ErrorIs(err, model.ErrInvalidCredentials)

	_, err = s.controller.Login(s.ctx, "nobody", "password123")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ControllerSuite) TestSessionOperationsMutateStore() {
	_, err := s.controller.CreateAccount(s.ctx, "alice", "password123", 399)
	s.Require().NoError(err)
	_, err = s.controller.CreateAccount(s.ctx, "bob", "hunter2", 1000)
	s.Require().NoError(err)

	session, err := s.controller.Login(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	balance, err := session.Deposit(s.ctx, 100)
	s.Require().NoError(err)
	s.Equal(499.0, balance)

	balance, err = session.Withdraw(s.ctx, 150)
	s.Require().NoError(err)
	s.Equal(349.0, balance)

	balance, err = session.Transfer(s.ctx, "bob", 49)
	s.Require().NoError(err)
	s.Equal(300.0, balance)

	// The store, not the session, is the source of truth
	bobSession, err := s.controller.Login(s.ctx, "bob", "hunter2")
	s.Require().NoError(err)
	bobBalance, err := bobSession.Balance(s.ctx)
	s.Require().NoError(err)
	s.Equal(1049.0, bobBalance)
}

func (s *ControllerSuite) TestSessionSeesWritesFromOtherSessions() {
	_, err := s.controller.CreateAccount(s.ctx, "alice", "password123", 100)
	s.Require().NoError(err)

	first, err := s.controller.Login(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	// Mutate the row behind the session's back
	s.Require().NoError(s.storage.Update(s.ctx, func(accounts []model.Account) ([]model.Account, error) {
		accounts[0].Balance = 777
		return accounts, nil
	}))

	balance, err := first.Balance(s.ctx)
	s.Require().NoError(err)
	s.Equal(777.0, balance)
}
