package student

import (
	"context"
	"log/slog"

	"github.com/aanand-mishra/roster-api/internal/dispatch"
	"github.com/aanand-mishra/roster-api/internal/storage"
	"github.com/aanand-mishra/roster-api/internal/types"
)

// Handlers serves every student request kind against one StudentRepository.
//
// Storage failures are returned unchanged (wrapped only by the engine);
// nothing here retries or swallows them.
type Handlers struct {
	repo storage.StudentRepository
	log  *slog.Logger
}

// NewHandlers returns handlers bound to repo.
func NewHandlers(repo storage.StudentRepository, log *slog.Logger) *Handlers {
	return &Handlers{repo: repo, log: log}
}

// Routes binds each handler method to its request kind.
func (h *Handlers) Routes() []dispatch.Route {
	return []dispatch.Route{
		dispatch.Bind(h.Create),
		dispatch.Bind(h.GetByID),
		dispatch.Bind(h.List),
		dispatch.BindCommand(h.Update),
		dispatch.BindCommand(h.Delete),
	}
}

// Create validates the input, stores the new student and returns it with
// its assigned identifier.
func (h *Handlers) Create(ctx context.Context, req Create) (Record, error) {
	s, err := types.NewStudent(req.FirstName, req.LastName, req.Age)
	if err != nil {
		return Record{}, err
	}

	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	added, err := h.repo.AddStudent(ctx, s)
	if err != nil {
		return Record{}, err
	}

	h.log.Info("student created", slog.Int64("id", added.ID()))
	return toRecord(added), nil
}

// GetByID reports an absent student as Lookup{Found: false}.
func (h *Handlers) GetByID(ctx context.Context, req GetByID) (Lookup, error) {
	if err := ctx.Err(); err != nil {
		return Lookup{}, err
	}

	s, found, err := h.repo.GetStudentByID(ctx, req.ID)
	if err != nil || !found {
		return Lookup{}, err
	}
	return Lookup{Record: toRecord(s), Found: true}, nil
}

// List never returns nil on success; an empty store gives an empty slice.
func (h *Handlers) List(ctx context.Context, _ List) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	students, err := h.repo.ListStudents(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(students))
	for _, s := range students {
		records = append(records, toRecord(s))
	}
	return records, nil
}

// Update builds the replacement student (same invariants as Create) and
// calls the repository without checking existence first. A missing id
// comes back from storage as storage.ErrNotFound.
func (h *Handlers) Update(ctx context.Context, req Update) error {
	s, err := types.NewStudent(req.FirstName, req.LastName, req.Age)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := h.repo.UpdateStudent(ctx, s.WithID(req.ID)); err != nil {
		return err
	}

	h.log.Info("student updated", slog.Int64("id", req.ID))
	return nil
}

// Delete is idempotent: an absent id is not an error.
func (h *Handlers) Delete(ctx context.Context, req Delete) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := h.repo.DeleteStudentByID(ctx, req.ID); err != nil {
		return err
	}

	h.log.Info("student deleted", slog.Int64("id", req.ID))
	return nil
}
