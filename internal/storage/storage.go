// Package storage defines the Storage Port: the CRUD contracts that any
// persistence engine must satisfy for the request handlers to work.
//
// WHY INTERFACES?
// ───────────────
// Handlers never know which database they are talking to. Swapping SQLite
// for PostgreSQL (or the in-memory engine used in tests) means picking a
// different implementation in main.go; no handler changes.
//
// One port exists per entity kind. The method names carry the entity so a
// single engine type can satisfy both ports at once.
package storage

import (
	"context"
	"errors"

	"github.com/aanand-mishra/roster-api/internal/types"
)

// ErrNotFound is returned by Update* when no record carries the identifier.
// Reads report absence through their bool result instead.
var ErrNotFound = errors.New("storage: record not found")

// ErrCorruptRecord is returned when a stored row no longer satisfies the
// entity invariants. It is a storage failure, not a caller mistake.
var ErrCorruptRecord = errors.New("storage: corrupt record")

// StudentRepository is the Storage Port for students.
type StudentRepository interface {
	// ListStudents returns every student ordered by identifier.
	// An empty store yields an empty (non-nil) slice.
	ListStudents(ctx context.Context) ([]types.Student, error)

	// GetStudentByID reports found=false (and no error) when the id is absent.
	GetStudentByID(ctx context.Context, id int64) (student types.Student, found bool, err error)

	// AddStudent persists s and returns it with the assigned identifier.
	AddStudent(ctx context.Context, s types.Student) (types.Student, error)

	// UpdateStudent replaces every mutable field of the record with s.ID().
	// Returns ErrNotFound if no such record exists.
	UpdateStudent(ctx context.Context, s types.Student) error

	// DeleteStudentByID is a no-op for an absent id.
	DeleteStudentByID(ctx context.Context, id int64) error

	StudentExists(ctx context.Context, id int64) (bool, error)
}

// TeamRepository is the Storage Port for teams. Same semantics as
// StudentRepository.
type TeamRepository interface {
	ListTeams(ctx context.Context) ([]types.Team, error)
	GetTeamByID(ctx context.Context, id int64) (team types.Team, found bool, err error)
	AddTeam(ctx context.Context, t types.Team) (types.Team, error)
	UpdateTeam(ctx context.Context, t types.Team) error
	DeleteTeamByID(ctx context.Context, id int64) error
	TeamExists(ctx context.Context, id int64) (bool, error)
}
