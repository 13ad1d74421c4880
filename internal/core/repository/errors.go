package repository

import "errors"

var (
	// ErrStorageRead indicates persisted state is present but unreadable
	// or malformed.
	ErrStorageRead = errors.New("failed to read account store")

	// ErrStorageWrite indicates the store could not be persisted.
	ErrStorageWrite = errors.New("failed to write account store")
)
