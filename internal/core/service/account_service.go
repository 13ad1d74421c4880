package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/mhealy/healthtrack/internal/core/domain"
	"github.com/mhealy/healthtrack/internal/core/repository"
)

// AccountService owns account registration, credential verification and the
// remember flag. Every mutating operation persists the full store before
// returning; a crash beforehand simply loses the mutation.
type AccountService struct {
	repo repository.AccountRepository
}

func NewAccountService(repo repository.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// HashPassword returns the hex-encoded sha-256 digest of the password. The
// digest is deliberately deterministic and unsalted; the persisted layout
// depends on it.
func (s *AccountService) HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword compares a candidate password against a stored digest.
func (s *AccountService) VerifyPassword(password, hash string) bool {
	candidate := s.HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(hash)) == 1
}

// Register creates a new account with the default profile and empty history.
// The username is used as-is; trimming applies only to the emptiness check.
func (s *AccountService) Register(ctx context.Context, username, password string) (*domain.Account, error) {
	accounts, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	if _, ok := accounts[username]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateUsername, username)
	}
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("%w: username and password cannot be empty", ErrInvalidInput)
	}

	account := domain.NewAccount(username, s.HashPassword(password))
	accounts[username] = account

	if err := s.repo.Save(ctx, accounts); err != nil {
		return nil, err
	}
	return account, nil
}

// Authenticate succeeds only on an exact digest match.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*domain.Account, error) {
	accounts, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	account, ok := accounts[username]
	if !ok || !s.VerifyPassword(password, account.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

// Get returns one account by username.
func (s *AccountService) Get(ctx context.Context, username string) (*domain.Account, error) {
	accounts, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	account, ok := accounts[username]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, username)
	}
	return account, nil
}

// SetRemembered marks an account for auto login. Setting true first clears
// the flag on every other account so at most one account is ever
// remembered; clearing touches only the named account.
func (s *AccountService) SetRemembered(ctx context.Context, username string, remembered bool) error {
	accounts, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	account, ok := accounts[username]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAccount, username)
	}

	if remembered {
		for _, other := range accounts {
			other.Remember = false
		}
	}
	account.Remember = remembered

	return s.repo.Save(ctx, accounts)
}

// FindRemembered returns the remembered account, or nil if there is none.
// Usernames are walked in sorted order so the result is deterministic even
// if a hand-edited store file holds more than one remembered account.
func (s *AccountService) FindRemembered(ctx context.Context) (*domain.Account, error) {
	accounts, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	usernames := make([]string, 0, len(accounts))
	for username := range accounts {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)

	for _, username := range usernames {
		if accounts[username].Remember {
			return accounts[username], nil
		}
	}
	return nil, nil
}
