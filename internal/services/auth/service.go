package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/PudgyPigeon/MockBankSystem/internal/dependencies/clock"
	"github.com/PudgyPigeon/MockBankSystem/internal/model"
	"github.com/PudgyPigeon/MockBankSystem/internal/services/directory"
)

// Session represents an authenticated session for one username.
// It is process-local state, never persisted, and gone when the run ends.
// There is no logout transition; a session stays logged in until teardown.
type Session struct {
	Token     string
	Username  model.Username
	LoggedIn  bool
	CreatedAt time.Time
}

// Service verifies supplied secrets against stored credential digests and
// tracks the live sessions for the current run
type Service struct {
	directory *directory.Service
	clock     clock.Clock
	logger    *slog.Logger

	mu       sync.RWMutex
	sessions map[model.Username]*Session
}

// New creates a new auth service
func New(dir *directory.Service, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		directory: dir,
		clock:     clock,
		logger:    logger,
		sessions:  make(map[model.Username]*Session),
	}
}

// Login verifies the secret for the named account and returns an
// authenticated session. A missing account and a wrong secret both fail
// with ErrInvalidCredentials; neither is retried here, and the supplied
// secret is never logged. Logging in again while a session for the same
// username is already live is an idempotent no-op success.
func (s *Service) Login(ctx context.Context, username model.Username, secret string) (*Session, error) {
	s.mu.RLock()
	existing := s.sessions[username]
	s.mu.RUnlock()

	if existing != nil && existing.LoggedIn {
		s.logger.Debug("already logged in", slog.String("username", string(username)))
		return existing, nil
	}

	if err := s.Verify(ctx, username, secret); err != nil {
		return nil, err
	}

	session := &Session{
		Token:     generateToken(),
		Username:  username,
		LoggedIn:  true,
		CreatedAt: s.clock.Now(),
	}

	s.mu.Lock()
	s.sessions[username] = session
	s.mu.Unlock()

	s.logger.Info("login succeeded", slog.String("username", string(username)))
	return session, nil
}

// Verify checks the secret against the stored digest for the named account.
// It returns ErrInvalidCredentials when the record is absent or the digest
// does not match, and never mutates session state.
func (s *Service) Verify(ctx context.Context, username model.Username, secret string) error {
	record, err := s.directory.Find(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return model.ErrInvalidCredentials
		}
		return err
	}

	if !digestsEqual(record.PasswordDigest, HashSecret(secret)) {
		return model.ErrInvalidCredentials
	}
	return nil
}

// generateToken returns an opaque session token
func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}
