package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/roster-api/internal/app/student"
	"github.com/aanand-mishra/roster-api/internal/app/team"
	"github.com/aanand-mishra/roster-api/internal/dispatch"
	"github.com/aanand-mishra/roster-api/internal/storage"
	"github.com/aanand-mishra/roster-api/internal/storage/memory"
	"github.com/aanand-mishra/roster-api/internal/types"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestDispatcher(t *testing.T) *dispatch.Dispatcher {
	t.Helper()

	store := memory.New()
	d, err := NewDispatcher(store, store, discardLogger())
	require.NoError(t, err)
	return d
}

func TestNewDispatcher_ServesEveryKind(t *testing.T) {
	d := newTestDispatcher(t)

	assert.ElementsMatch(t, Kinds(), d.Kinds())
}

func TestStudentLifecycle(t *testing.T) {
	d := newTestDispatcher(t)
	ctx := context.Background()

	created, err := dispatch.Send[student.Record](ctx, d, student.Create{FirstName: "John", LastName: "Doe", Age: 20})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "John", created.FirstName)
	assert.Equal(t, "Doe", created.LastName)
	assert.Equal(t, 20, created.Age)

	got, err := dispatch.Send[student.Lookup](ctx, d, student.GetByID{ID: created.ID})
	require.NoError(t, err)
	require.True(t, got.Found)
	assert.Equal(t, created, got.Record)

	err = dispatch.Exec(ctx, d, student.Update{ID: created.ID, FirstName: "John", LastName: "Doe", Age: 21})
	require.NoError(t, err)

	got, err = dispatch.Send[student.Lookup](ctx, d, student.GetByID{ID: created.ID})
	require.NoError(t, err)
	require.True(t, got.Found)
	assert.Equal(t, 21, got.Record.Age)

	require.NoError(t, dispatch.Exec(ctx, d, student.Delete{ID: created.ID}))

	got, err = dispatch.Send[student.Lookup](ctx, d, student.GetByID{ID: created.ID})
	require.NoError(t, err)
	assert.False(t, got.Found)

	// Second delete of the same id is still a success.
	assert.NoError(t, dispatch.Exec(ctx, d, student.Delete{ID: created.ID}))
}

func TestTeamLifecycle(t *testing.T) {
	d := newTestDispatcher(t)
	ctx := context.Background()
	founded := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	created, err := dispatch.Send[team.Record](ctx, d, team.Create{
		Name:          "TestTeam1",
		SportType:     "Hockey",
		FoundedDate:   founded,
		HomeStadium:   "Arena",
		MaxRosterSize: 10,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	err = dispatch.Exec(ctx, d, team.Update{
		ID:            created.ID,
		Name:          "TestTeam1",
		SportType:     "Hockey",
		FoundedDate:   founded,
		HomeStadium:   "New Arena",
		MaxRosterSize: 12,
	})
	require.NoError(t, err)

	teams, err := dispatch.Send[[]team.Record](ctx, d, team.List{})
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "New Arena", teams[0].HomeStadium)
	assert.Equal(t, 12, teams[0].MaxRosterSize)

	require.NoError(t, dispatch.Exec(ctx, d, team.Delete{ID: created.ID}))

	got, err := dispatch.Send[team.Lookup](ctx, d, team.GetByID{ID: created.ID})
	require.NoError(t, err)
	assert.False(t, got.Found)
}

func TestErrorLevel(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want slog.Level
	}{
		{"validation", &types.ValidationError{Field: "age", Reason: "cannot be negative"}, slog.LevelWarn},
		{"not found", storage.ErrNotFound, slog.LevelWarn},
		{"canceled", context.Canceled, slog.LevelWarn},
		{"deadline", context.DeadlineExceeded, slog.LevelWarn},
		{"storage", errors.New("disk full"), slog.LevelError},
		{"corrupt record", fmt.Errorf("stored student 1: %w: invalid firstName", storage.ErrCorruptRecord), slog.LevelError},
		{"config", &dispatch.ConfigError{Kind: "x", Err: dispatch.ErrMissingHandler}, slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorLevel(tt.err))
		})
	}
}
