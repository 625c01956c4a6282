// Package field implements the Field registry repository using PostgreSQL.
package field

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/sampletracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

const table = "fields"

var columns = []string{"team_name", "name", "display_name", "kind", "position"}

// Repo provides field definition persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new field repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	TeamName    string `db:"team_name"`
	Name        string `db:"name"`
	DisplayName string `db:"display_name"`
	Kind        string `db:"kind"`
	Position    int    `db:"position"`
}

// ListAll returns every field definition ordered by team, then position.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Field, error) {
	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("team_name", "position", "name"))
}

// ListByTeam returns the ordered field definitions of one team.
func (r *Repo) ListByTeam(ctx context.Context, team string) ([]domain.Field, error) {
	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"team_name": team}).
		OrderBy("position", "name"))
}

// ListByTeams returns the field definitions of several teams in one query,
// ordered by team, then position. Used by the per-request loader.
func (r *Repo) ListByTeams(ctx context.Context, teams []string) ([]domain.Field, error) {
	if len(teams) == 0 {
		return []domain.Field{}, nil
	}
	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"team_name": teams}).
		OrderBy("team_name", "position", "name"))
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]domain.Field, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list fields query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}

	fields := make([]domain.Field, len(rows))
	for i, rw := range rows {
		fields[i] = domain.Field{
			TeamName:    rw.TeamName,
			Name:        rw.Name,
			DisplayName: rw.DisplayName,
			Kind:        domain.FieldKind(rw.Kind),
			Position:    rw.Position,
		}
	}
	return fields, nil
}
