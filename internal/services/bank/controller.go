package bank

import (
	"context"
	"log/slog"

	"github.com/PudgyPigeon/MockBankSystem/internal/model"
	"github.com/PudgyPigeon/MockBankSystem/internal/services/auth"
	"github.com/PudgyPigeon/MockBankSystem/internal/services/directory"
	"github.com/PudgyPigeon/MockBankSystem/internal/services/ledger"
)

// Controller is the core-facing API consumed by the session controller
// (the interactive entrypoint). Account creation hashes the secret before
// it reaches the directory; login hands back a Session through which all
// balance operations for the authenticated username run.
type Controller struct {
	directory *directory.Service
	auth      *auth.Service
	ledger    *ledger.Service
	logger    *slog.Logger
}

// NewController creates a new bank controller
func NewController(
	dir *directory.Service,
	authService *auth.Service,
	ledgerService *ledger.Service,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		directory: dir,
		auth:      authService,
		ledger:    ledgerService,
		logger:    logger,
	}
}

// CreateAccount registers a new account. The plaintext secret is hashed
// here and never stored or logged.
func (c *Controller) CreateAccount(
	ctx context.Context,
	username model.Username,
	secret string,
	startingBalance float64,
) (*model.Account, error) {
	return c.directory.Create(ctx, username, auth.HashSecret(secret), startingBalance)
}

// Login authenticates the username and returns a session handle bound to it
func (c *Controller) Login(ctx context.Context, username model.Username, secret string) (*Session, error) {
	authSession, err := c.auth.Login(ctx, username, secret)
	if err != nil {
		return nil, err
	}
	return &Session{
		controller: c,
		session:    authSession,
	}, nil
}

// Session is the authenticated handle for one username. Every operation
// goes back through the ledger and the store; the handle itself holds no
// balance state.
type Session struct {
	controller *Controller
	session    *auth.Session
}

// Username returns the authenticated username
func (s *Session) Username() model.Username {
	return s.session.Username
}

// Token returns the opaque session token
func (s *Session) Token() string {
	return s.session.Token
}

// Balance returns the current stored balance
func (s *Session) Balance(ctx context.Context) (float64, error) {
	return s.controller.ledger.Balance(ctx, s.session.Username)
}

// Deposit adds amount to the authenticated account and returns the new balance
func (s *Session) Deposit(ctx context.Context, amount float64) (float64, error) {
	return s.controller.ledger.Deposit(ctx, s.session.Username, amount)
}

// Withdraw subtracts amount from the authenticated account and returns the new balance
func (s *Session) Withdraw(ctx context.Context, amount float64) (float64, error) {
	return s.controller.ledger.Withdraw(ctx, s.session.Username, amount)
}

// Transfer moves amount to the destination account and returns the
// authenticated account's new balance
func (s *Session) Transfer(ctx context.Context, dest model.Username, amount float64) (float64, error) {
	return s.controller.ledger.Transfer(ctx, s.session.Username, dest, amount)
}
