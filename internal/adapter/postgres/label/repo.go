// Package label implements the Label repository using PostgreSQL.
package label

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/sampletracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

const table = "labels"

var columns = []string{"id", "team_name", "name", "width", "height", "template", "active", "created_at"}

// Repo provides label persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new label repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	TeamName  string    `db:"team_name"`
	Name      string    `db:"name"`
	Width     int       `db:"width"`
	Height    int       `db:"height"`
	Template  []byte    `db:"template"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
}

// ListAll returns all labels grouped by team.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Label, error) {
	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("team_name", "created_at"))
}

// ListByTeam returns the labels of one team.
func (r *Repo) ListByTeam(ctx context.Context, team string) ([]domain.Label, error) {
	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"team_name": team}).
		OrderBy("created_at"))
}

// GetActive returns the active label of the given size for team.
func (r *Repo) GetActive(ctx context.Context, team string, width, height int) (domain.Label, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"team_name": team, "width": width, "height": height, "active": true}).
		ToSql()
	if err != nil {
		return domain.Label{}, fmt.Errorf("build get active label query: %w", err)
	}

	var got row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &got, query, args...); err != nil {
		return domain.Label{}, postgres.MapError(err, "label", fmt.Sprintf("%s/%dx%d", team, width, height))
	}
	return toDomain(got)
}

// Create inserts a label and returns the stored row.
func (r *Repo) Create(ctx context.Context, l domain.Label) (domain.Label, error) {
	tmpl, err := json.Marshal(nonNil(l.Template))
	if err != nil {
		return domain.Label{}, fmt.Errorf("label %s marshal template: %w", l.ID, err)
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(l.ID, l.TeamName, l.Name, l.Width, l.Height, tmpl, l.Active, l.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.Label{}, fmt.Errorf("build insert label query: %w", err)
	}

	var got row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &got, query, args...); err != nil {
		return domain.Label{}, postgres.MapError(err, "label", l.ID.String())
	}
	return toDomain(got)
}

// DeactivateSize clears the active flag on every label of team with the
// given size and returns how many were changed.
func (r *Repo) DeactivateSize(ctx context.Context, team string, width, height int) (int64, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("active", false).
		Where(squirrel.Eq{"team_name": team, "width": width, "height": height, "active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build deactivate labels query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("deactivate labels %s %dx%d: %w", team, width, height, err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]domain.Label, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list labels query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}

	labels := make([]domain.Label, len(rows))
	for i, rw := range rows {
		l, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		labels[i] = l
	}
	return labels, nil
}

func nonNil(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

func toDomain(rw row) (domain.Label, error) {
	l := domain.Label{
		ID:        rw.ID,
		TeamName:  rw.TeamName,
		Name:      rw.Name,
		Width:     rw.Width,
		Height:    rw.Height,
		Active:    rw.Active,
		CreatedAt: rw.CreatedAt,
		Template:  map[string]any{},
	}
	if len(rw.Template) > 0 {
		if err := json.Unmarshal(rw.Template, &l.Template); err != nil {
			return domain.Label{}, fmt.Errorf("label %s unmarshal template: %w", rw.ID, err)
		}
	}
	return l, nil
}
