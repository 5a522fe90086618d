// Package storagetest holds the Storage Port contract as reusable tests.
// Every engine runs the same suite from its own _test.go file so the
// engines stay interchangeable.
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/roster-api/internal/storage"
	"github.com/aanand-mishra/roster-api/internal/types"
)

// RunStudentRepository runs the student contract. newRepo must return an
// empty repository on every call.
func RunStudentRepository(t *testing.T, newRepo func(t *testing.T) storage.StudentRepository) {
	t.Helper()

	t.Run("list on empty storage", func(t *testing.T) {
		repo := newRepo(t)

		students, err := repo.ListStudents(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, students)
		assert.Empty(t, students)
	})

	t.Run("add then get round-trips", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		added, err := repo.AddStudent(ctx, mustStudent(t, "John", "Doe", 20))
		require.NoError(t, err)
		assert.NotZero(t, added.ID())

		got, found, err := repo.GetStudentByID(ctx, added.ID())
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, added, got)
		assert.Equal(t, "John", got.FirstName())
		assert.Equal(t, "Doe", got.LastName())
		assert.Equal(t, 20, got.Age())
	})

	t.Run("get absent id", func(t *testing.T) {
		repo := newRepo(t)

		_, found, err := repo.GetStudentByID(context.Background(), 4242)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("ids are distinct and list is ordered", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first, err := repo.AddStudent(ctx, mustStudent(t, "A", "One", 1))
		require.NoError(t, err)
		second, err := repo.AddStudent(ctx, mustStudent(t, "B", "Two", 2))
		require.NoError(t, err)
		assert.NotEqual(t, first.ID(), second.ID())

		students, err := repo.ListStudents(ctx)
		require.NoError(t, err)
		require.Len(t, students, 2)
		assert.Equal(t, first, students[0])
		assert.Equal(t, second, students[1])
	})

	t.Run("update replaces fields", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		added, err := repo.AddStudent(ctx, mustStudent(t, "John", "Doe", 20))
		require.NoError(t, err)

		replacement := mustStudent(t, "Johnny", "Doe", 21).WithID(added.ID())
		require.NoError(t, repo.UpdateStudent(ctx, replacement))

		got, found, err := repo.GetStudentByID(ctx, added.ID())
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, replacement, got)
	})

	t.Run("update absent id", func(t *testing.T) {
		repo := newRepo(t)

		err := repo.UpdateStudent(context.Background(), mustStudent(t, "John", "Doe", 20).WithID(999))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		added, err := repo.AddStudent(ctx, mustStudent(t, "John", "Doe", 20))
		require.NoError(t, err)

		exists, err := repo.StudentExists(ctx, added.ID())
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, repo.DeleteStudentByID(ctx, added.ID()))
		exists, err = repo.StudentExists(ctx, added.ID())
		require.NoError(t, err)
		assert.False(t, exists)

		require.NoError(t, repo.DeleteStudentByID(ctx, added.ID()))
		exists, err = repo.StudentExists(ctx, added.ID())
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("canceled context", func(t *testing.T) {
		repo := newRepo(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := repo.AddStudent(ctx, mustStudent(t, "John", "Doe", 20))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

// RunTeamRepository runs the team contract. newRepo must return an empty
// repository on every call.
func RunTeamRepository(t *testing.T, newRepo func(t *testing.T) storage.TeamRepository) {
	t.Helper()

	founded := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("list on empty storage", func(t *testing.T) {
		repo := newRepo(t)

		teams, err := repo.ListTeams(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, teams)
		assert.Empty(t, teams)
	})

	t.Run("add then get round-trips", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		added, err := repo.AddTeam(ctx, types.NewTeam("TestTeam1", "Hockey", founded, "Arena", 10))
		require.NoError(t, err)
		assert.NotZero(t, added.ID)

		got, found, err := repo.GetTeamByID(ctx, added.ID)
		require.NoError(t, err)
		require.True(t, found)
		assertTeamEqual(t, added, got)
	})

	t.Run("get absent id", func(t *testing.T) {
		repo := newRepo(t)

		_, found, err := repo.GetTeamByID(context.Background(), 4242)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("empty fields are stored as given", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		added, err := repo.AddTeam(ctx, types.NewTeam("", "", founded, "", 0))
		require.NoError(t, err)

		got, found, err := repo.GetTeamByID(ctx, added.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "", got.Name)
	})

	t.Run("update replaces fields", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		added, err := repo.AddTeam(ctx, types.NewTeam("TestTeam1", "Hockey", founded, "Arena", 10))
		require.NoError(t, err)

		replacement := types.NewTeam("Renamed", "Soccer", founded.AddDate(1, 0, 0), "Stadium", 25)
		replacement.ID = added.ID
		require.NoError(t, repo.UpdateTeam(ctx, replacement))

		got, found, err := repo.GetTeamByID(ctx, added.ID)
		require.NoError(t, err)
		require.True(t, found)
		assertTeamEqual(t, replacement, got)

		teams, err := repo.ListTeams(ctx)
		require.NoError(t, err)
		require.Len(t, teams, 1)
		assertTeamEqual(t, replacement, teams[0])
	})

	t.Run("update absent id", func(t *testing.T) {
		repo := newRepo(t)

		team := types.NewTeam("Ghost", "Hockey", founded, "Nowhere", 1)
		team.ID = 999

		assert.ErrorIs(t, repo.UpdateTeam(context.Background(), team), storage.ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		added, err := repo.AddTeam(ctx, types.NewTeam("TestTeam1", "Hockey", founded, "Arena", 10))
		require.NoError(t, err)

		require.NoError(t, repo.DeleteTeamByID(ctx, added.ID))
		require.NoError(t, repo.DeleteTeamByID(ctx, added.ID))

		exists, err := repo.TeamExists(ctx, added.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func mustStudent(t *testing.T, firstName, lastName string, age int) types.Student {
	t.Helper()

	s, err := types.NewStudent(firstName, lastName, age)
	require.NoError(t, err)
	return s
}

// assertTeamEqual compares dates by instant; engines may hand back a
// different *time.Location for the same moment.
func assertTeamEqual(t *testing.T, want, got types.Team) {
	t.Helper()

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.SportType, got.SportType)
	assert.Equal(t, want.HomeStadium, got.HomeStadium)
	assert.Equal(t, want.MaxRosterSize, got.MaxRosterSize)
	assert.Truef(t, want.FoundedDate.Equal(got.FoundedDate),
		"founded date: want %s, got %s", want.FoundedDate, got.FoundedDate)
}
