package sqlite

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mhealy/healthtrack/internal/core/domain"
	"github.com/mhealy/healthtrack/internal/core/repository"
)

type accountRow struct {
	Username string  `db:"username"`
	Password string  `db:"password"`
	Weight   float64 `db:"weight"`
	Height   int     `db:"height"`
	Calories int     `db:"calories"`
	Water    int     `db:"water"`
	Exercise int     `db:"exercise"`
	Remember bool    `db:"remember"`
}

type historyRow struct {
	ID       string  `db:"id"`
	Username string  `db:"username"`
	Seq      int     `db:"seq"`
	Date     string  `db:"date"`
	BMI      float64 `db:"bmi"`
	Calories int     `db:"calories"`
	Water    int     `db:"water"`
	Exercise int     `db:"exercise"`
}

type accountRepository struct {
	db  *DB
	log *slog.Logger
}

// NewAccountRepository returns an AccountRepository backed by the embedded
// database. It keeps the same full-store Load/Save contract as the JSON
// file backend, but a save is one transaction, so concurrent sessions get
// a consistent view instead of a clobbered file.
func NewAccountRepository(db *DB, log *slog.Logger) repository.AccountRepository {
	return &accountRepository{db: db, log: log}
}

func (r *accountRepository) Load(ctx context.Context) (domain.Accounts, error) {
	var rows []accountRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT username, password, weight, height, calories, water, exercise, remember FROM account`); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrStorageRead, err)
	}

	accounts := domain.Accounts{}
	for _, row := range rows {
		accounts[row.Username] = &domain.Account{
			Username:     row.Username,
			PasswordHash: row.Password,
			Profile: domain.Profile{
				Weight:   row.Weight,
				Height:   row.Height,
				Calories: row.Calories,
				Water:    row.Water,
				Exercise: row.Exercise,
			},
			History:  []domain.HistoryEntry{},
			Remember: row.Remember,
		}
	}

	var history []historyRow
	if err := r.db.SelectContext(ctx, &history, `SELECT id, username, seq, date, bmi, calories, water, exercise FROM history_entry ORDER BY username, seq`); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrStorageRead, err)
	}

	for _, row := range history {
		account, ok := accounts[row.Username]
		if !ok {
			return nil, fmt.Errorf("%w: history for unknown account %s", repository.ErrStorageRead, row.Username)
		}
		account.History = append(account.History, domain.HistoryEntry{
			Date:     row.Date,
			BMI:      row.BMI,
			Calories: row.Calories,
			Water:    row.Water,
			Exercise: row.Exercise,
		})
	}

	r.log.Debug("loaded account store", "accounts", len(accounts))
	return accounts, nil
}

// Save replaces the full store in one transaction, matching the
// last-writer-wins overwrite semantics of the flat-file layout.
func (r *accountRepository) Save(ctx context.Context, accounts domain.Accounts) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrStorageWrite, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM history_entry`); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrStorageWrite, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM account`); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrStorageWrite, err)
	}

	for username, account := range accounts {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO account (username, password, weight, height, calories, water, exercise, remember)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			username,
			account.PasswordHash,
			account.Profile.Weight,
			account.Profile.Height,
			account.Profile.Calories,
			account.Profile.Water,
			account.Profile.Exercise,
			account.Remember,
		)
		if err != nil {
			return fmt.Errorf("%w: %v", repository.ErrStorageWrite, err)
		}

		for seq, entry := range account.History {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO history_entry (id, username, seq, date, bmi, calories, water, exercise)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				uuid.NewString(),
				username,
				seq,
				entry.Date,
				entry.BMI,
				entry.Calories,
				entry.Water,
				entry.Exercise,
			)
			if err != nil {
				return fmt.Errorf("%w: %v", repository.ErrStorageWrite, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrStorageWrite, err)
	}

	r.log.Debug("saved account store", "accounts", len(accounts))
	return nil
}

func (r *accountRepository) Close() error {
	return r.db.Close()
}
