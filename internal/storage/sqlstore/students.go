package sqlstore

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/aanand-mishra/roster-api/internal/storage"
	"github.com/aanand-mishra/roster-api/internal/types"
)

var studentColumns = []any{colID, colFirstName, colLastName, colAge}

func (s *Store) ListStudents(ctx context.Context) ([]types.Student, error) {
	// Pre-allocate so an empty table encodes as [] rather than null.
	rows := make([]studentRow, 0)
	if err := s.getAll(ctx, "sqlstore.ListStudents", &rows,
		s.dialect.From(TableStudents).Select(studentColumns...)); err != nil {
		return nil, err
	}

	students := make([]types.Student, 0, len(rows))
	for _, row := range rows {
		st, err := row.toStudent()
		if err != nil {
			return nil, fmt.Errorf("sqlstore.ListStudents: %w", err)
		}
		students = append(students, st)
	}
	return students, nil
}

func (s *Store) GetStudentByID(ctx context.Context, id int64) (types.Student, bool, error) {
	var row studentRow
	found, err := s.getOne(ctx, "sqlstore.GetStudentByID", &row,
		s.dialect.From(TableStudents).Select(studentColumns...).Where(goqu.C(colID).Eq(id)).Limit(1))
	if err != nil || !found {
		return types.Student{}, false, err
	}

	st, err := row.toStudent()
	if err != nil {
		return types.Student{}, false, fmt.Errorf("sqlstore.GetStudentByID: %w", err)
	}
	return st, true, nil
}

func (s *Store) AddStudent(ctx context.Context, st types.Student) (types.Student, error) {
	id, err := s.insert(ctx, "sqlstore.AddStudent", TableStudents, studentRecord(st))
	if err != nil {
		return types.Student{}, err
	}
	return st.WithID(id), nil
}

func (s *Store) UpdateStudent(ctx context.Context, st types.Student) error {
	return s.update(ctx, "sqlstore.UpdateStudent", TableStudents, st.ID(), studentRecord(st))
}

func (s *Store) DeleteStudentByID(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "sqlstore.DeleteStudentByID", TableStudents, id)
}

func (s *Store) StudentExists(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, "sqlstore.StudentExists", TableStudents, id)
}

func studentRecord(st types.Student) goqu.Record {
	return goqu.Record{
		colFirstName: st.FirstName(),
		colLastName:  st.LastName(),
		colAge:       st.Age(),
	}
}

// toStudent re-validates what was read back; a row written behind the
// application's back must not produce an invalid Student. The validation
// error is flattened with %v so callers see storage.ErrCorruptRecord only.
func (r studentRow) toStudent() (types.Student, error) {
	st, err := types.NewStudent(r.FirstName, r.LastName, r.Age)
	if err != nil {
		return types.Student{}, fmt.Errorf("stored student %d: %w: %v", r.ID, storage.ErrCorruptRecord, err)
	}
	return st.WithID(r.ID), nil
}
