package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/PudgyPigeon/MockBankSystem/internal/dependencies/clock"
	"github.com/PudgyPigeon/MockBankSystem/internal/services/auth"
	"github.com/PudgyPigeon/MockBankSystem/internal/services/bank"
	"github.com/PudgyPigeon/MockBankSystem/internal/services/directory"
	"github.com/PudgyPigeon/MockBankSystem/internal/services/ledger"
	"github.com/PudgyPigeon/MockBankSystem/internal/storage"
	"github.com/PudgyPigeon/MockBankSystem/internal/storage/csvfile"
	"github.com/PudgyPigeon/MockBankSystem/internal/storage/memory"
)

// Storage type constants
const (
	StorageTypeCSV    = "csv"
	StorageTypeMemory = "memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Store

	// External dependencies
	Clock clock.Clock

	// Services
	DirectoryService *directory.Service
	AuthService      *auth.Service
	LedgerService    *ledger.Service
	BankController   *bank.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("csv" or "memory")
	// If empty, defaults to "csv"
	StorageType string
	// CSVConfig holds the table file settings (required if StorageType is "csv")
	CSVConfig *csvfile.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Store
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeCSV
	}

	switch storageType {
	case StorageTypeCSV:
		if cfg.CSVConfig == nil {
			return nil, errors.New("CSVConfig required when StorageType is csv")
		}
		csvStore, err := csvfile.New(*cfg.CSVConfig)
		if err != nil {
			return nil, err
		}
		store = csvStore
	case StorageTypeMemory:
		store = memory.New()
	default:
		return nil, errors.New("invalid StorageType: must be 'csv' or 'memory'")
	}

	clk := clock.New()

	return newWithDependencies(store, clk, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Store, clk clock.Clock, logger *slog.Logger) *App {
	// Create services
	directoryService := directory.New(store, clk, logger)
	authService := auth.New(directoryService, clk, logger)
	ledgerService := ledger.New(store, logger)
	bankController := bank.NewController(directoryService, authService, ledgerService, logger)

	return &App{
		Storage:          store,
		Clock:            clk,
		DirectoryService: directoryService,
		AuthService:      authService,
		LedgerService:    ledgerService,
		BankController:   bankController,
	}
}
