// Package postgres provides the PostgreSQL-backed engine for both Storage
// Ports. Like the sqlite package it only owns the connection and schema;
// queries come from sqlstore rendered for the postgres dialect.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	// Blank import: side-effect only (registers the "postgres" driver).
	_ "github.com/lib/pq"

	"github.com/aanand-mishra/roster-api/internal/config"
	"github.com/aanand-mishra/roster-api/internal/storage/sqlstore"
)

const schema = `
CREATE TABLE IF NOT EXISTS students (
	id         BIGSERIAL PRIMARY KEY,
	first_name TEXT      NOT NULL,
	last_name  TEXT      NOT NULL,
	age        INTEGER   NOT NULL CHECK (age >= 0)
);

CREATE TABLE IF NOT EXISTS teams (
	id              BIGSERIAL   PRIMARY KEY,
	name            TEXT        NOT NULL,
	sport_type      TEXT        NOT NULL,
	founded_date    TIMESTAMPTZ NOT NULL,
	home_stadium    TEXT        NOT NULL,
	max_roster_size INTEGER     NOT NULL
);
`

// connectTimeout bounds the startup ping and schema creation.
const connectTimeout = 10 * time.Second

type Postgres struct {
	*sqlstore.Store
}

// New connects to the server named by cfg.Storage.DSN (a lib/pq URL or
// key=value string), creates the tables and returns a ready *Postgres.
func New(cfg *config.Config) (*Postgres, error) {
	db, err := sqlx.Open("postgres", cfg.Storage.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: open db: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres.New: ping: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres.New: create tables: %w", err)
	}

	store, err := sqlstore.New(db, sqlstore.DialectPostgres)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres.New: %w", err)
	}

	return &Postgres{Store: store}, nil
}
