package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/roster-api/internal/config"
	"github.com/aanand-mishra/roster-api/internal/storage"
	"github.com/aanand-mishra/roster-api/internal/storage/storagetest"
)

// newTestSQLite opens a fresh database file per test; ":memory:" would
// give every pooled connection its own empty database.
func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()

	cfg := &config.Config{
		Storage: config.Storage{
			Driver: config.DriverSQLite,
			DSN:    filepath.Join(t.TempDir(), "roster.db"),
		},
	}

	s, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestStudentRepository(t *testing.T) {
	storagetest.RunStudentRepository(t, func(t *testing.T) storage.StudentRepository {
		return newTestSQLite(t)
	})
}

func TestTeamRepository(t *testing.T) {
	storagetest.RunTeamRepository(t, func(t *testing.T) storage.TeamRepository {
		return newTestSQLite(t)
	})
}

func TestNew_SchemaIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.db")
	cfg := &config.Config{Storage: config.Storage{Driver: config.DriverSQLite, DSN: path}}

	first, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}
