package factory

import (
	"context"
	"time"

	"github.com/PudgyPigeon/MockBankSystem/internal/dependencies/mocks"
	"github.com/PudgyPigeon/MockBankSystem/internal/model"
	"github.com/PudgyPigeon/MockBankSystem/internal/storage/memory"
	"github.com/PudgyPigeon/MockBankSystem/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, mockClock, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}

// SeedAccount creates an account directly through the controller
func (t *TestApp) SeedAccount(ctx context.Context, username model.Username, secret string, balance float64) error {
	_, err := t.BankController.CreateAccount(ctx, username, secret, balance)
	return err
}
