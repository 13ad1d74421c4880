package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS account (
	username TEXT PRIMARY KEY,
	password TEXT NOT NULL,
	weight REAL NOT NULL,
	height INTEGER NOT NULL,
	calories INTEGER NOT NULL,
	water INTEGER NOT NULL,
	exercise INTEGER NOT NULL,
	remember INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS history_entry (
	id TEXT PRIMARY KEY,
	username TEXT NOT NULL,
	seq INTEGER NOT NULL,
	date TEXT NOT NULL,
	bmi REAL NOT NULL,
	calories INTEGER NOT NULL,
	water INTEGER NOT NULL,
	exercise INTEGER NOT NULL,
	FOREIGN KEY (username) REFERENCES account(username) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_history_username_seq ON history_entry(username, seq);
`

type DB struct {
	*sqlx.DB
}

func New(dbPath string) (*DB, error) {
	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// The store is single-writer; one connection also keeps :memory:
	// databases coherent across queries.
	db.SetMaxOpenConns(1)

	// WAL mode so an interrupted save never leaves a torn file
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
