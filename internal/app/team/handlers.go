package team

import (
	"context"
	"log/slog"

	"github.com/aanand-mishra/roster-api/internal/dispatch"
	"github.com/aanand-mishra/roster-api/internal/storage"
	"github.com/aanand-mishra/roster-api/internal/types"
)

// Handlers serves every team request kind against one TeamRepository.
// Storage failures are returned unchanged.
type Handlers struct {
	repo storage.TeamRepository
	log  *slog.Logger
}

// NewHandlers returns handlers bound to repo.
func NewHandlers(repo storage.TeamRepository, log *slog.Logger) *Handlers {
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

// Create stores the team as given and returns it with its identifier.
func (h *Handlers) Create(ctx context.Context, req Create) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	added, err := h.repo.AddTeam(ctx, types.NewTeam(
		req.Name, req.SportType, req.FoundedDate, req.HomeStadium, req.MaxRosterSize))
	if err != nil {
		return Record{}, err
	}

	h.log.Info("team created", slog.Int64("id", added.ID))
	return toRecord(added), nil
}

// GetByID reports an absent team as Lookup{Found: false}.
func (h *Handlers) GetByID(ctx context.Context, req GetByID) (Lookup, error) {
	if err := ctx.Err(); err != nil {
		return Lookup{}, err
	}

	t, found, err := h.repo.GetTeamByID(ctx, req.ID)
	if err != nil || !found {
		return Lookup{}, err
	}
	return Lookup{Record: toRecord(t), Found: true}, nil
}

// List returns an empty slice, never nil, for an empty store.
func (h *Handlers) List(ctx context.Context, _ List) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	teams, err := h.repo.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(teams))
	for _, t := range teams {
		records = append(records, toRecord(t))
	}
	return records, nil
}

// Update calls the repository unconditionally; storage.ErrNotFound comes
// back for an unknown id.
func (h *Handlers) Update(ctx context.Context, req Update) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t := types.NewTeam(req.Name, req.SportType, req.FoundedDate, req.HomeStadium, req.MaxRosterSize)
	t.ID = req.ID

	if err := h.repo.UpdateTeam(ctx, t); err != nil {
		return err
	}

	h.log.Info("team updated", slog.Int64("id", req.ID))
	return nil
}

// Delete is idempotent: an absent id is not an error.
func (h *Handlers) Delete(ctx context.Context, req Delete) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := h.repo.DeleteTeamByID(ctx, req.ID); err != nil {
		return err
	}

	h.log.Info("team deleted", slog.Int64("id", req.ID))
	return nil
}
