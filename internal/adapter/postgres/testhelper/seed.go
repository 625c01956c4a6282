package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueTeam returns a team name no other test uses, so tests sharing the
// container do not see each other's rows.
func UniqueTeam() string {
	return "team-" + uniqueSuffix()
}

// SeedField inserts a field definition for team.
func SeedField(t *testing.T, pool *pgxpool.Pool, team, name string, kind domain.FieldKind, position int) domain.Field {
	t.Helper()

	f := domain.Field{
		TeamName:    team,
		Name:        name,
		DisplayName: "Field " + name,
		Kind:        kind,
		Position:    position,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO fields (team_name, name, display_name, kind, position) VALUES ($1, $2, $3, $4, $5)`,
		f.TeamName, f.Name, f.DisplayName, string(f.Kind), f.Position,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedField insert: %v", err)
	}
	return f
}

// SeedSample inserts a sample for team with the given data map.
func SeedSample(t *testing.T, pool *pgxpool.Pool, team string, data map[string]any) domain.Sample {
	t.Helper()

	if data == nil {
		data = map[string]any{}
	}
	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.Sample{
		ID:             "sample-" + uniqueSuffix(),
		TeamName:       team,
		DateCreated:    now,
		DateModified:   now,
		ExpirationDate: now.AddDate(1, 0, 0),
		Data:           data,
	}

	raw, err := json.Marshal(s.Data)
	if err != nil {
		t.Fatalf("testhelper: SeedSample marshal data: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO samples (id, team_name, date_created, date_modified, expiration_date, data)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.TeamName, s.DateCreated, s.DateModified, s.ExpirationDate, raw,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSample insert: %v", err)
	}
	return s
}
