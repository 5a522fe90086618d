// Package memory is an in-process engine satisfying both Storage Ports.
//
// It backs the "memory" storage driver (handy for local runs) and the
// handler tests. Records live in maps guarded by a single RWMutex; ids are
// assigned from per-kind counters starting at 1 and never reused.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aanand-mishra/roster-api/internal/storage"
	"github.com/aanand-mishra/roster-api/internal/types"
)

// Store is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	students      map[int64]types.Student
	nextStudentID int64

	teams      map[int64]types.Team
	nextTeamID int64
}

var (
	_ storage.StudentRepository = (*Store)(nil)
	_ storage.TeamRepository    = (*Store)(nil)
)

func New() *Store {
	return &Store{
		students: make(map[int64]types.Student),
		teams:    make(map[int64]types.Team),
	}
}

// ── Students ─────────────────────────────────────────────────────────────

func (s *Store) ListStudents(ctx context.Context) ([]types.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	students := make([]types.Student, 0, len(s.students))
	for _, st := range s.students {
		students = append(students, st)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID() < students[j].ID() })

	return students, nil
}

func (s *Store) GetStudentByID(ctx context.Context, id int64) (types.Student, bool, error) {
	if err := ctx.Err(); err != nil {
		return types.Student{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.students[id]
	return st, ok, nil
}

func (s *Store) AddStudent(ctx context.Context, st types.Student) (types.Student, error) {
	if err := ctx.Err(); err != nil {
		return types.Student{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextStudentID++
	st = st.WithID(s.nextStudentID)
	s.students[st.ID()] = st

	return st, nil
}

func (s *Store) UpdateStudent(ctx context.Context, st types.Student) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[st.ID()]; !ok {
		return storage.ErrNotFound
	}
	s.students[st.ID()] = st

	return nil
}

func (s *Store) DeleteStudentByID(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.students, id)
	return nil
}

func (s *Store) StudentExists(ctx context.Context, id int64) (bool, error) {
	_, ok, err := s.GetStudentByID(ctx, id)
	return ok, err
}

// ── Teams ────────────────────────────────────────────────────────────────

func (s *Store) ListTeams(ctx context.Context) ([]types.Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	teams := make([]types.Team, 0, len(s.teams))
	for _, t := range s.teams {
		teams = append(teams, t)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })

	return teams, nil
}

func (s *Store) GetTeamByID(ctx context.Context, id int64) (types.Team, bool, error) {
	if err := ctx.Err(); err != nil {
		return types.Team{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[id]
	return t, ok, nil
}

func (s *Store) AddTeam(ctx context.Context, t types.Team) (types.Team, error) {
	if err := ctx.Err(); err != nil {
		return types.Team{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextTeamID++
	t.ID = s.nextTeamID
	s.teams[t.ID] = t

	return t, nil
}

func (s *Store) UpdateTeam(ctx context.Context, t types.Team) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[t.ID]; !ok {
		return storage.ErrNotFound
	}
	s.teams[t.ID] = t

	return nil
}

func (s *Store) DeleteTeamByID(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.teams, id)
	return nil
}

func (s *Store) TeamExists(ctx context.Context, id int64) (bool, error) {
	_, ok, err := s.GetTeamByID(ctx, id)
	return ok, err
}
