// Package sample implements the Sample repository using PostgreSQL.
// Team-defined attributes are stored in a JSONB data column.
package sample

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

const table = "samples"

var columns = []string{"id", "team_name", "date_created", "date_modified", "expiration_date", "data"}

// Repo provides sample persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new sample repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID             string    `db:"id"`
	TeamName       string    `db:"team_name"`
	DateCreated    time.Time `db:"date_created"`
	DateModified   time.Time `db:"date_modified"`
	ExpirationDate time.Time `db:"expiration_date"`
	Data           []byte    `db:"data"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListAll returns every sample ordered by team and creation time.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Sample, error) {
	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("team_name", "date_created", "id"))
}

// ListByTeam returns the samples of one team ordered by creation time.
func (r *Repo) ListByTeam(ctx context.Context, team string) ([]domain.Sample, error) {
	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"team_name": team}).
		OrderBy("date_created", "id"))
}

// GetByID returns a single sample.
func (r *Repo) GetByID(ctx context.Context, id string) (domain.Sample, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Sample{}, fmt.Errorf("build get sample query: %w", err)
	}

	var got row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &got, query, args...); err != nil {
		return domain.Sample{}, postgres.MapError(err, "sample", id)
	}
	return toDomain(got)
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]domain.Sample, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list samples query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list samples: %w", err)
	}

	samples := make([]domain.Sample, len(rows))
	for i, rw := range rows {
		s, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		samples[i] = s
	}
	return samples, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a sample. An empty ID is replaced by a generated one.
func (r *Repo) Create(ctx context.Context, s domain.Sample) (domain.Sample, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	data, err := marshalData(s.Data)
	if err != nil {
		return domain.Sample{}, fmt.Errorf("sample %s: %w", s.ID, err)
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(s.ID, s.TeamName, s.DateCreated, s.DateModified, s.ExpirationDate, data).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return domain.Sample{}, fmt.Errorf("build insert sample query: %w", err)
	}

	var got row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &got, query, args...); err != nil {
		return domain.Sample{}, postgres.MapError(err, "sample", s.ID)
	}
	return toDomain(got)
}

// Update replaces the mutable attributes of a sample and returns the stored row.
func (r *Repo) Update(ctx context.Context, id string, u domain.SampleUpdate) (domain.Sample, error) {
	data, err := marshalData(u.Data)
	if err != nil {
		return domain.Sample{}, fmt.Errorf("sample %s: %w", id, err)
	}

	query, args, err := postgres.Builder().
		Update(table).
		Set("team_name", u.TeamName).
		Set("date_created", u.DateCreated).
		Set("date_modified", u.DateModified).
		Set("expiration_date", u.ExpirationDate).
		Set("data", data).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return domain.Sample{}, fmt.Errorf("build update sample query: %w", err)
	}

	var got row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &got, query, args...); err != nil {
		return domain.Sample{}, postgres.MapError(err, "sample", id)
	}
	return toDomain(got)
}

// Delete removes a sample. Deleting a missing sample returns ErrNotFound.
func (r *Repo) Delete(ctx context.Context, id string) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete sample query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "sample", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sample %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteExpired removes up to limit samples whose expiration date is before
// cutoff and returns the removed samples.
func (r *Repo) DeleteExpired(ctx context.Context, cutoff time.Time, limit int) ([]domain.Sample, error) {
	// Question placeholders here; the outer builder renumbers them.
	sub := squirrel.
		Select("id").
		From(table).
		Where(squirrel.Lt{"expiration_date": cutoff}).
		OrderBy("expiration_date").
		Limit(uint64(limit))

	subSQL, subArgs, err := sub.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build expired samples subquery: %w", err)
	}

	query, args, err := postgres.Builder().
		Delete(table).
		Where("id IN ("+subSQL+")", subArgs...).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete expired samples query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("delete expired samples: %w", err)
	}

	samples := make([]domain.Sample, len(rows))
	for i, rw := range rows {
		s, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		samples[i] = s
	}
	return samples, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func returning() string {
	return strings.Join(columns, ", ")
}

func marshalData(data map[string]any) ([]byte, error) {
	if data == nil {
		data = map[string]any{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal data: %w", err)
	}
	return raw, nil
}

func toDomain(rw row) (domain.Sample, error) {
	s := domain.Sample{
		ID:             rw.ID,
		TeamName:       rw.TeamName,
		DateCreated:    rw.DateCreated,
		DateModified:   rw.DateModified,
		ExpirationDate: rw.ExpirationDate,
		Data:           map[string]any{},
	}
	if len(rw.Data) > 0 {
		if err := json.Unmarshal(rw.Data, &s.Data); err != nil {
			return domain.Sample{}, fmt.Errorf("sample %s unmarshal data: %w", rw.ID, err)
		}
	}
	return s, nil
}
