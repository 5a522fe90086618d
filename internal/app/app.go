// Package app composes the request handlers of every aggregate into one
// immutable dispatcher. It is the only place that knows the full set of
// request kinds.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aanand-mishra/roster-api/internal/app/student"
	"github.com/aanand-mishra/roster-api/internal/app/team"
	"github.com/aanand-mishra/roster-api/internal/dispatch"
	"github.com/aanand-mishra/roster-api/internal/storage"
	"github.com/aanand-mishra/roster-api/internal/types"
)

// Kinds lists every request kind the service must be able to serve.
func Kinds() []dispatch.Kind {
	return append(student.Kinds(), team.Kinds()...)
}

// NewDispatcher wires the student and team handlers to their repositories.
// The returned error is a *dispatch.ConfigError (or a join of them) and is
// meant to abort startup.
func NewDispatcher(students storage.StudentRepository, teams storage.TeamRepository, log *slog.Logger) (*dispatch.Dispatcher, error) {
	return dispatch.NewBuilder(
		dispatch.WithLogger(log),
		dispatch.WithErrorLevel(ErrorLevel),
	).
		Register(student.NewHandlers(students, log).Routes()...).
		Register(team.NewHandlers(teams, log).Routes()...).
		Build(Kinds()...)
}

// ErrorLevel logs caller mistakes and cancellations at WARN and everything
// else (storage, configuration) at ERROR.
func ErrorLevel(err error) slog.Level {
	var vErr *types.ValidationError
	switch {
	case errors.As(err, &vErr),
		errors.Is(err, storage.ErrNotFound),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
