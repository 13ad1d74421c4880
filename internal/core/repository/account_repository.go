package repository

import (
	"context"

	"github.com/mhealy/healthtrack/internal/core/domain"
)

// AccountRepository is the durable account store. The contract is
// deliberately whole-store: Load returns the complete mapping and Save
// replaces it. Persistence is last-writer-wins at full-store granularity,
// single-writer.
type AccountRepository interface {
	// Load returns the persisted accounts, or an empty mapping if no
	// prior state exists.
	Load(ctx context.Context) (domain.Accounts, error)

	// Save replaces the persisted state. Readers never observe a partial
	// write.
	Save(ctx context.Context, accounts domain.Accounts) error

	Close() error
}
