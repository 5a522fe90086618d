package student

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/roster-api/internal/storage"
	"github.com/aanand-mishra/roster-api/internal/storage/memory"
	"github.com/aanand-mishra/roster-api/internal/types"
)

// failingRepo fails every call with err and counts the calls it received.
type failingRepo struct {
	err   error
	calls int
}

func (r *failingRepo) ListStudents(context.Context) ([]types.Student, error) {
	r.calls++
	return nil, r.err
}

func (r *failingRepo) GetStudentByID(context.Context, int64) (types.Student, bool, error) {
	r.calls++
	return types.Student{}, false, r.err
}

func (r *failingRepo) AddStudent(context.Context, types.Student) (types.Student, error) {
	r.calls++
	return types.Student{}, r.err
}

func (r *failingRepo) UpdateStudent(context.Context, types.Student) error {
	r.calls++
	return r.err
}

func (r *failingRepo) DeleteStudentByID(context.Context, int64) error {
	r.calls++
	return r.err
}

func (r *failingRepo) StudentExists(context.Context, int64) (bool, error) {
	r.calls++
	return false, r.err
}

var _ storage.StudentRepository = (*failingRepo)(nil)

func newHandlers(repo storage.StudentRepository) *Handlers {
	return NewHandlers(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreate_ValidationFailsBeforeStorage(t *testing.T) {
	tests := []struct {
		name  string
		req   Create
		field string
	}{
		{"blank first name", Create{FirstName: " ", LastName: "Doe", Age: 20}, "firstName"},
		{"empty last name", Create{FirstName: "John", LastName: "", Age: 20}, "lastName"},
		{"negative age", Create{FirstName: "John", LastName: "Doe", Age: -1}, "age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &failingRepo{err: errors.New("must not be called")}

			_, err := newHandlers(repo).Create(context.Background(), tt.req)

			var vErr *types.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Zero(t, repo.calls)
		})
	}
}

func TestUpdate_ValidationFailsBeforeStorage(t *testing.T) {
	repo := &failingRepo{err: errors.New("must not be called")}

	err := newHandlers(repo).Update(context.Background(), Update{ID: 1, FirstName: "John", LastName: "Doe", Age: -3})

	var vErr *types.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Zero(t, repo.calls)
}

func TestHandlers_PropagateStorageErrors(t *testing.T) {
	boom := errors.New("connection refused")
	h := newHandlers(&failingRepo{err: boom})
	ctx := context.Background()

	_, err := h.Create(ctx, Create{FirstName: "John", LastName: "Doe", Age: 20})
	assert.ErrorIs(t, err, boom)

	_, err = h.GetByID(ctx, GetByID{ID: 1})
	assert.ErrorIs(t, err, boom)

	_, err = h.List(ctx, List{})
	assert.ErrorIs(t, err, boom)

	assert.ErrorIs(t, h.Update(ctx, Update{ID: 1, FirstName: "John", LastName: "Doe", Age: 20}), boom)
	assert.ErrorIs(t, h.Delete(ctx, Delete{ID: 1}), boom)
}

func TestUpdate_MissingIDIsNotFound(t *testing.T) {
	h := newHandlers(memory.New())

	err := h.Update(context.Background(), Update{ID: 404, FirstName: "John", LastName: "Doe", Age: 20})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestList_EmptyStorage(t *testing.T) {
	records, err := newHandlers(memory.New()).List(context.Background(), List{})
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestGetByID_Absent(t *testing.T) {
	lookup, err := newHandlers(memory.New()).GetByID(context.Background(), GetByID{ID: 1})
	require.NoError(t, err)
	assert.False(t, lookup.Found)
}

func TestHandlers_StopOnCanceledContext(t *testing.T) {
	repo := &failingRepo{err: errors.New("must not be called")}
	h := newHandlers(repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Create(ctx, Create{FirstName: "John", LastName: "Doe", Age: 20})
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, h.Delete(ctx, Delete{ID: 1}), context.Canceled)
	assert.Zero(t, repo.calls)
}
