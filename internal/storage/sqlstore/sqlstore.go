// Package sqlstore implements both Storage Ports on top of any database/sql
// driver. The engine packages (sqlite, postgres) open the connection,
// create the schema and hand the pool to New together with the goqu
// dialect name; every query is then built for that dialect.
//
// HOW QUERIES ARE BUILT
// ─────────────────────
// goqu renders each statement with Prepared(true), so values never end up
// inside the SQL text; they travel separately as bind arguments, using the
// placeholder style of the dialect (? for SQLite, $1 for PostgreSQL).
// sqlx then scans result rows straight into the row structs below using
// their db:"..." tags.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	// Dialect registration: side-effect only.
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"

	"github.com/aanand-mishra/roster-api/internal/storage"
)

// Dialect names accepted by New.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

// Table and column names shared with the engines' schema DDL.
const (
	TableStudents = "students"
	TableTeams    = "teams"

	colID            = "id"
	colFirstName     = "first_name"
	colLastName      = "last_name"
	colAge           = "age"
	colName          = "name"
	colSportType     = "sport_type"
	colFoundedDate   = "founded_date"
	colHomeStadium   = "home_stadium"
	colMaxRosterSize = "max_roster_size"
)

type studentRow struct {
	ID        int64  `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Age       int    `db:"age"`
}

type teamRow struct {
	ID            int64     `db:"id"`
	Name          string    `db:"name"`
	SportType     string    `db:"sport_type"`
	FoundedDate   time.Time `db:"founded_date"`
	HomeStadium   string    `db:"home_stadium"`
	MaxRosterSize int       `db:"max_roster_size"`
}

// Store satisfies storage.StudentRepository and storage.TeamRepository.
// The underlying *sqlx.DB is a connection pool and safe for concurrent use;
// each method borrows one connection for the duration of the call.
type Store struct {
	db      *sqlx.DB
	dialect goqu.DialectWrapper

	// returning is true when the dialect hands back generated ids through
	// INSERT ... RETURNING instead of sql.Result.LastInsertId.
	returning bool
}

var (
	_ storage.StudentRepository = (*Store)(nil)
	_ storage.TeamRepository    = (*Store)(nil)
)

// New wraps an open pool. dialect must be DialectSQLite or DialectPostgres.
func New(db *sqlx.DB, dialect string) (*Store, error) {
	switch dialect {
	case DialectSQLite, DialectPostgres:
	default:
		return nil, fmt.Errorf("sqlstore.New: unsupported dialect %q", dialect)
	}

	return &Store{
		db:        db,
		dialect:   goqu.Dialect(dialect),
		returning: dialect == DialectPostgres,
	}, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// insert runs an INSERT and returns the generated primary key.
func (s *Store) insert(ctx context.Context, op string, table string, rec goqu.Record) (int64, error) {
	ds := s.dialect.Insert(table).Rows(rec).Prepared(true)

	if s.returning {
		query, args, err := ds.Returning(colID).ToSQL()
		if err != nil {
			return 0, fmt.Errorf("%s: build: %w", op, err)
		}

		var id int64
		if err := s.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("%s: exec: %w", op, err)
		}
		return id, nil
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return 0, fmt.Errorf("%s: build: %w", op, err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: exec: %w", op, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}
	return id, nil
}

// update runs an UPDATE ... WHERE id = ? and maps zero affected rows to
// storage.ErrNotFound.
func (s *Store) update(ctx context.Context, op string, table string, id int64, rec goqu.Record) error {
	query, args, err := s.dialect.Update(table).
		Set(rec).
		Where(goqu.C(colID).Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("%s: build: %w", op, err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: exec: %w", op, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: id %d: %w", op, id, storage.ErrNotFound)
	}

	return nil
}

func (s *Store) deleteByID(ctx context.Context, op string, table string, id int64) error {
	query, args, err := s.dialect.Delete(table).
		Where(goqu.C(colID).Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("%s: build: %w", op, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: exec: %w", op, err)
	}
	return nil
}

func (s *Store) exists(ctx context.Context, op string, table string, id int64) (bool, error) {
	query, args, err := s.dialect.From(table).
		Select(goqu.COUNT(colID)).
		Where(goqu.C(colID).Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("%s: build: %w", op, err)
	}

	var n int64
	if err := s.db.GetContext(ctx, &n, query, args...); err != nil {
		return false, fmt.Errorf("%s: query: %w", op, err)
	}
	return n > 0, nil
}

// getOne scans a single row into dest, reporting found=false on no rows.
func (s *Store) getOne(ctx context.Context, op string, dest any, ds *goqu.SelectDataset) (bool, error) {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return false, fmt.Errorf("%s: build: %w", op, err)
	}

	if err := s.db.GetContext(ctx, dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%s: query: %w", op, err)
	}
	return true, nil
}

func (s *Store) getAll(ctx context.Context, op string, dest any, ds *goqu.SelectDataset) error {
	query, args, err := ds.Order(goqu.I(colID).Asc()).Prepared(true).ToSQL()
	if err != nil {
		return fmt.Errorf("%s: build: %w", op, err)
	}

	if err := s.db.SelectContext(ctx, dest, query, args...); err != nil {
		return fmt.Errorf("%s: query: %w", op, err)
	}
	return nil
}
