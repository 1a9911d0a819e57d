package model

import "time"

// Username uniquely identifies an account across the system
type Username string

// Account is a single row of the account table
type Account struct {
	Username       Username
	PasswordDigest string // hex sha-256 of the secret, never the plaintext
	Balance        float64
	CreatedAt      time.Time // process-local bookkeeping, not persisted
}
