// Package table drives the editable sample table: loading a team's view,
// committing cell edits, and bulk actions over the current selection.
package table

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
	"github.com/heartmarshall/sampletracker-backend/internal/grid"
)

//go:generate moq -out sample_store_mock_test.go -pkg table . sampleStore
//go:generate moq -out field_source_mock_test.go -pkg table . fieldSource

type sampleStore interface {
	ListAll(ctx context.Context) ([]domain.Sample, error)
	ListByTeam(ctx context.Context, team string) ([]domain.Sample, error)
	Get(ctx context.Context, id string) (domain.Sample, error)
	Update(ctx context.Context, id string, u domain.SampleUpdate) (domain.Sample, error)
	Delete(ctx context.Context, id string) error
}

type fieldSource interface {
	ListByTeam(ctx context.Context, team string) ([]domain.Field, error)
	Invalidate(ctx context.Context, team string)
}

// Service provides table view operations.
type Service struct {
	samples   sampleStore
	fields    fieldSource
	projector *grid.Projector
	log       *slog.Logger
}

// NewService creates a new Table service.
func NewService(
	log *slog.Logger,
	samples sampleStore,
	fields fieldSource,
	projector *grid.Projector,
) *Service {
	return &Service{
		samples:   samples,
		fields:    fields,
		projector: projector,
		log:       log.With("service", "table"),
	}
}

func normalizeTeam(team string) (string, error) {
	team = domain.NormalizeTeamName(team)
	if team == "" {
		return "", domain.NewValidationError("team_name", "required")
	}
	return team, nil
}
