package sqlstore

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/aanand-mishra/roster-api/internal/types"
)

var teamColumns = []any{colID, colName, colSportType, colFoundedDate, colHomeStadium, colMaxRosterSize}

func (s *Store) ListTeams(ctx context.Context) ([]types.Team, error) {
	rows := make([]teamRow, 0)
	if err := s.getAll(ctx, "sqlstore.ListTeams", &rows,
		s.dialect.From(TableTeams).Select(teamColumns...)); err != nil {
		return nil, err
	}

	teams := make([]types.Team, 0, len(rows))
	for _, row := range rows {
		teams = append(teams, row.toTeam())
	}
	return teams, nil
}

func (s *Store) GetTeamByID(ctx context.Context, id int64) (types.Team, bool, error) {
	var row teamRow
	found, err := s.getOne(ctx, "sqlstore.GetTeamByID", &row,
		s.dialect.From(TableTeams).Select(teamColumns...).Where(goqu.C(colID).Eq(id)).Limit(1))
	if err != nil || !found {
		return types.Team{}, false, err
	}
	return row.toTeam(), true, nil
}

func (s *Store) AddTeam(ctx context.Context, t types.Team) (types.Team, error) {
	id, err := s.insert(ctx, "sqlstore.AddTeam", TableTeams, teamRecord(t))
	if err != nil {
		return types.Team{}, err
	}
	t.ID = id
	return t, nil
}

func (s *Store) UpdateTeam(ctx context.Context, t types.Team) error {
	return s.update(ctx, "sqlstore.UpdateTeam", TableTeams, t.ID, teamRecord(t))
}

func (s *Store) DeleteTeamByID(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "sqlstore.DeleteTeamByID", TableTeams, id)
}

func (s *Store) TeamExists(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, "sqlstore.TeamExists", TableTeams, id)
}

// Dates are stored in UTC so every engine hands back the same instant.
func teamRecord(t types.Team) goqu.Record {
	return goqu.Record{
		colName:          t.Name,
		colSportType:     t.SportType,
		colFoundedDate:   t.FoundedDate.UTC(),
		colHomeStadium:   t.HomeStadium,
		colMaxRosterSize: t.MaxRosterSize,
	}
}

func (r teamRow) toTeam() types.Team {
	return types.Team{
		ID:            r.ID,
		Name:          r.Name,
		SportType:     r.SportType,
		FoundedDate:   r.FoundedDate,
		HomeStadium:   r.HomeStadium,
		MaxRosterSize: r.MaxRosterSize,
	}
}
