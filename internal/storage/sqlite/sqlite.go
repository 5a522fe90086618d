// Package sqlite provides the SQLite-backed engine for both Storage Ports.
//
// WHY SQLite?
// ───────────
// SQLite stores everything in a single file on disk. There is no network,
// no separate server process and no installation beyond the driver, which
// makes it the default engine for local runs and tests.
//
// This package only opens the file and creates the schema; the queries
// themselves live in sqlstore and are rendered for the sqlite3 dialect.
package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"

	"github.com/aanand-mishra/roster-api/internal/config"
	"github.com/aanand-mishra/roster-api/internal/storage/sqlstore"
)

// schema is idempotent — safe to run on every startup.
//
// founded_date is declared DATETIME so the driver hands it back as a
// time.Time instead of a string.
const schema = `
CREATE TABLE IF NOT EXISTS students (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name TEXT    NOT NULL,
	last_name  TEXT    NOT NULL,
	age        INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS teams (
	id              INTEGER  PRIMARY KEY AUTOINCREMENT,
	name            TEXT     NOT NULL,
	sport_type      TEXT     NOT NULL,
	founded_date    DATETIME NOT NULL,
	home_stadium    TEXT     NOT NULL,
	max_roster_size INTEGER  NOT NULL
);
`

// SQLite satisfies storage.StudentRepository and storage.TeamRepository
// through the embedded *sqlstore.Store.
type SQLite struct {
	*sqlstore.Store
}

// New opens the SQLite file named by cfg.Storage.DSN, creates the tables
// if they do not exist yet and returns a ready-to-use *SQLite.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sqlx.Open("sqlite3", cfg.Storage.DSN)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// SQLite allows a single writer at a time; one pooled connection
	// avoids "database is locked" errors under concurrent requests.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create tables: %w", err)
	}

	store, err := sqlstore.New(db, sqlstore.DialectSQLite)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: %w", err)
	}

	return &SQLite{Store: store}, nil
}
