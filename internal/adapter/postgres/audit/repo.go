// Package audit implements the sample audit repository using PostgreSQL.
// It provides append-only operations for sample history records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/sampletracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

const table = "sample_audit"

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	AuditID     int64     `db:"audit_id"`
	SampleID    string    `db:"sample_id"`
	AuditNumber int       `db:"audit_number"`
	Action      string    `db:"action"`
	Snapshot    []byte    `db:"snapshot"`
	CreatedAt   time.Time `db:"created_at"`
}

// snapshot is the JSONB form of a sample stored with each audit record.
type snapshot struct {
	ID             string         `json:"id"`
	TeamName       string         `json:"team_name"`
	DateCreated    time.Time      `json:"date_created"`
	DateModified   time.Time      `json:"date_modified"`
	ExpirationDate time.Time      `json:"expiration_date"`
	Data           map[string]any `json:"data"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends an audit record. The audit number is the next one for the
// sample; the persisted record is returned.
func (r *Repo) Create(ctx context.Context, rec domain.SampleAudit) (domain.SampleAudit, error) {
	raw, err := json.Marshal(toSnapshot(rec.Snapshot))
	if err != nil {
		return domain.SampleAudit{}, fmt.Errorf("sample_audit marshal snapshot: %w", err)
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("sample_id", "audit_number", "action", "snapshot", "created_at").
		Values(
			rec.SampleID,
			squirrel.Expr("(SELECT COALESCE(MAX(audit_number), 0) + 1 FROM sample_audit WHERE sample_id = ?)", rec.SampleID),
			string(rec.Action),
			raw,
			rec.CreatedAt,
		).
		Suffix("RETURNING audit_id, audit_number").
		ToSql()
	if err != nil {
		return domain.SampleAudit{}, fmt.Errorf("build insert sample_audit query: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&rec.AuditID, &rec.AuditNumber); err != nil {
		return domain.SampleAudit{}, postgres.MapError(err, "sample_audit", rec.SampleID)
	}
	return rec, nil
}

// Log creates an audit record without returning it.
func (r *Repo) Log(ctx context.Context, rec domain.SampleAudit) error {
	_, err := r.Create(ctx, rec)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListBySample returns the change history of a sample, newest first.
func (r *Repo) ListBySample(ctx context.Context, sampleID string) ([]domain.SampleAudit, error) {
	query, args, err := postgres.Builder().
		Select("audit_id", "sample_id", "audit_number", "action", "snapshot", "created_at").
		From(table).
		Where(squirrel.Eq{"sample_id": sampleID}).
		OrderBy("audit_number DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list sample_audit query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list sample_audit %s: %w", sampleID, err)
	}

	records := make([]domain.SampleAudit, len(rows))
	for i, rw := range rows {
		rec, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toSnapshot(s domain.Sample) snapshot {
	return snapshot{
		ID:             s.ID,
		TeamName:       s.TeamName,
		DateCreated:    s.DateCreated,
		DateModified:   s.DateModified,
		ExpirationDate: s.ExpirationDate,
		Data:           s.Data,
	}
}

func toDomain(rw row) (domain.SampleAudit, error) {
	rec := domain.SampleAudit{
		AuditID:     rw.AuditID,
		SampleID:    rw.SampleID,
		AuditNumber: rw.AuditNumber,
		Action:      domain.AuditAction(rw.Action),
		CreatedAt:   rw.CreatedAt,
	}

	if len(rw.Snapshot) > 0 {
		var snap snapshot
		if err := json.Unmarshal(rw.Snapshot, &snap); err != nil {
			return domain.SampleAudit{}, fmt.Errorf("sample_audit %d unmarshal snapshot: %w", rw.AuditID, err)
		}
		rec.Snapshot = domain.Sample{
			ID:             snap.ID,
			TeamName:       snap.TeamName,
			DateCreated:    snap.DateCreated,
			DateModified:   snap.DateModified,
			ExpirationDate: snap.ExpirationDate,
			Data:           snap.Data,
		}
	}
	return rec, nil
}
