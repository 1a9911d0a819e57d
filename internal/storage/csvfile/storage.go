package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/PudgyPigeon/MockBankSystem/internal/model"
	"github.com/PudgyPigeon/MockBankSystem/internal/storage"
)

// lockRetryDelay is how often the advisory file lock is retried while
// another cooperating process holds it
const lockRetryDelay = 10 * time.Millisecond

// Storage is the CSV table-of-rows implementation of the storage interface.
//
// Every operation reads or rewrites the whole file; there is no in-memory
// cache of the table between operations. A process-wide mutex plus an
// advisory file lock make each Load, Save, and Update exclusive with
// respect to other callers in this process and to cooperating processes.
// A process that writes the file directly, bypassing the store, is not
// excluded; that remains a documented limitation.
type Storage struct {
	cfg Config

	mu  sync.Mutex
	flk *flock.Flock
}

// New creates a file store for the table at cfg.Path
func New(cfg Config) (*Storage, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("store path is empty: %w", model.ErrStoreUnavailable)
	}
	if cfg.FileMode == 0 {
		cfg.FileMode = DefaultConfig().FileMode
	}

	s := &Storage{
		cfg: cfg,
		flk: flock.New(cfg.Path + ".lock"),
	}

	if cfg.CreateIfMissing {
		if err := s.init(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

// Path returns the location of the backing table file
func (s *Storage) Path() string {
	return s.cfg.Path
}

func (s *Storage) Load(ctx context.Context) ([]model.Account, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.unlock()

	return s.readTable()
}

func (s *Storage) Save(ctx context.Context, accounts []model.Account) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.unlock()

	return s.writeTable(accounts)
}

// Update runs one load-mutate-save round trip under the store locks, so
// "load current state, decide, persist new state" is atomic with respect
// to every other caller going through this store.
func (s *Storage) Update(ctx context.Context, fn storage.UpdateFunc) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.unlock()

	accounts, err := s.readTable()
	if err != nil {
		return err
	}

	updated, err := fn(accounts)
	if err != nil {
		return err
	}

	return s.writeTable(updated)
}

// init writes a header-only table if no file exists yet
func (s *Storage) init() error {
	if _, err := os.Stat(s.cfg.Path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat table file: %w: %v", model.ErrStoreUnavailable, err)
	}

	if dir := filepath.Dir(s.cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create table directory: %w: %v", model.ErrStoreUnavailable, err)
		}
	}
	return s.writeTable(nil)
}

func (s *Storage) readTable() ([]model.Account, error) {
	f, err := os.Open(s.cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open table file: %w: %v", model.ErrStoreUnavailable, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse table file: %w: %v", model.ErrStoreUnavailable, err)
	}

	return decodeTable(records)
}

// writeTable overwrites the whole file in one call, via a temporary file
// in the same directory renamed over the original, so a failed write
// never leaves a half-written table behind.
func (s *Storage) writeTable(accounts []model.Account) error {
	tmp := s.cfg.Path + ".tmp"

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, s.cfg.FileMode)
	if err != nil {
		return fmt.Errorf("create temp table file: %w: %v", model.ErrStoreUnavailable, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(encodeTable(accounts)); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("write table file: %w: %v", model.ErrStoreUnavailable, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close table file: %w: %v", model.ErrStoreUnavailable, err)
	}

	if err := os.Rename(tmp, s.cfg.Path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace table file: %w: %v", model.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *Storage) lock(ctx context.Context) error {
	s.mu.Lock()
	if _, err := s.flk.TryLockContext(ctx, lockRetryDelay); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("acquire store lock: %w: %v", model.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *Storage) unlock() {
	_ = s.flk.Unlock()
	s.mu.Unlock()
}
