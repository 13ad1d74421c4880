// Package jsonfile persists the account store as a single flat JSON
// document, the layout the application has always used on disk.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mhealy/healthtrack/internal/core/domain"
	"github.com/mhealy/healthtrack/internal/core/repository"
)

type store struct {
	path string
	log  *slog.Logger
}

// New returns an AccountRepository backed by a JSON file at path. The file
// does not need to exist yet.
func New(path string, log *slog.Logger) repository.AccountRepository {
	return &store{path: path, log: log}
}

func (s *store) Load(ctx context.Context) (domain.Accounts, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.log.Debug("store file absent, starting empty", "path", s.path)
		return domain.Accounts{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrStorageRead, err)
	}

	var accounts domain.Accounts
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrStorageRead, err)
	}

	// The username lives in the map key on disk. A null record is valid
	// JSON but not a valid account.
	for username, account := range accounts {
		if account == nil {
			return nil, fmt.Errorf("%w: null account record for %q", repository.ErrStorageRead, username)
		}
		account.Username = username
	}

	s.log.Debug("loaded account store", "path", s.path, "accounts", len(accounts))
	return accounts, nil
}

// Save writes to a temp file in the store's directory and renames it over
// the old one, so a reader never observes a partial document.
func (s *store) Save(ctx context.Context, accounts domain.Accounts) error {
	data, err := json.MarshalIndent(accounts, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrStorageWrite, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".users-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrStorageWrite, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", repository.ErrStorageWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", repository.ErrStorageWrite, err)
	}

	// CreateTemp gives 0600; carry over the existing store's mode so the
	// rename doesn't tighten it
	mode := os.FileMode(0o644)
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", repository.ErrStorageWrite, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", repository.ErrStorageWrite, err)
	}

	s.log.Debug("saved account store", "path", s.path, "accounts", len(accounts))
	return nil
}

func (s *store) Close() error {
	return nil
}
