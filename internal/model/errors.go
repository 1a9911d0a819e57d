package model

import "errors"

// Common errors used across the application
var (
	// Store errors
	ErrStoreUnavailable = errors.New("account store unavailable")

	// Directory errors
	ErrDuplicateUsername = errors.New("username already exists")
	ErrAccountNotFound   = errors.New("account not found")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Ledger errors
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrSameAccount       = errors.New("source and destination are the same account")
	ErrTransferFailed    = errors.New("transfer failed")
)
