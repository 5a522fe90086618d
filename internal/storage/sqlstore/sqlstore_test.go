package sqlstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/roster-api/internal/storage"
	"github.com/aanand-mishra/roster-api/internal/types"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func setupMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	store, err := New(sqlx.NewDb(db, "postgres"), DialectPostgres)
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return store, mock
}

func mustStudent(t *testing.T) types.Student {
	t.Helper()

	s, err := types.NewStudent("John", "Doe", 20)
	require.NoError(t, err)
	return s
}

// =============================================================================
// TESTS
// =============================================================================

func TestNew_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = New(sqlx.NewDb(db, "mysql"), "mysql")
	assert.Error(t, err)
}

func TestAddStudent_UsesReturningOnPostgres(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(`INSERT INTO "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	added, err := store.AddStudent(context.Background(), mustStudent(t))
	require.NoError(t, err)
	assert.Equal(t, int64(5), added.ID())
	assert.Equal(t, "John", added.FirstName())
}

func TestAddStudent_PropagatesDriverError(t *testing.T) {
	store, mock := setupMockStore(t)

	boom := errors.New("connection reset by peer")
	mock.ExpectQuery(`INSERT INTO "students"`).WillReturnError(boom)

	_, err := store.AddStudent(context.Background(), mustStudent(t))
	assert.ErrorIs(t, err, boom)
}

func TestUpdateStudent_NoRowsAffectedIsNotFound(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectExec(`UPDATE "students"`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.UpdateStudent(context.Background(), mustStudent(t).WithID(99))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateTeam_OneRowAffected(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectExec(`UPDATE "teams"`).WillReturnResult(sqlmock.NewResult(0, 1))

	team := types.NewTeam("TestTeam1", "Hockey", time.Now(), "Arena", 10)
	team.ID = 1
	assert.NoError(t, store.UpdateTeam(context.Background(), team))
}

func TestDeleteTeamByID_PropagatesDriverError(t *testing.T) {
	store, mock := setupMockStore(t)

	boom := errors.New("disk I/O error")
	mock.ExpectExec(`DELETE FROM "teams"`).WillReturnError(boom)

	err := store.DeleteTeamByID(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}

func TestGetStudentByID_NoRows(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(`SELECT .* FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "age"}))

	_, found, err := store.GetStudentByID(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetStudentByID_InvalidStoredRowIsStorageError(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(`SELECT .* FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "age"}).
			AddRow(1, "   ", "Doe", 20))

	_, _, err := store.GetStudentByID(context.Background(), 1)

	require.ErrorIs(t, err, storage.ErrCorruptRecord)

	var vErr *types.ValidationError
	assert.False(t, errors.As(err, &vErr), "a bad stored row must not look like bad input")
	assert.Contains(t, err.Error(), "firstName")
}

func TestListStudents_OneCorruptRowFailsAsStorageError(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(`SELECT .* FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "age"}).
			AddRow(1, "Ok", "Doe", 20).
			AddRow(2, "", "Doe", 20))

	students, err := store.ListStudents(context.Background())

	require.ErrorIs(t, err, storage.ErrCorruptRecord)
	assert.Nil(t, students)

	var vErr *types.ValidationError
	assert.False(t, errors.As(err, &vErr))
}

func TestTeamExists(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(`SELECT COUNT`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := store.TeamExists(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, exists)
}
