package sample

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

// Create stores a new sample and records its creation.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Sample, error) {
	if err := input.Validate(); err != nil {
		return domain.Sample{}, err
	}

	now := s.now()
	created := input.DateCreated
	if created.IsZero() {
		created = now
	}
	data := input.Data
	if data == nil {
		data = map[string]any{}
	}

	sample := domain.Sample{
		ID:             input.ID,
		TeamName:       domain.NormalizeTeamName(input.TeamName),
		DateCreated:    created,
		DateModified:   now,
		ExpirationDate: input.ExpirationDate,
		Data:           data,
	}

	var stored domain.Sample
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		stored, createErr = s.samples.Create(txCtx, sample)
		if createErr != nil {
			return fmt.Errorf("create sample: %w", createErr)
		}
		if auditErr := s.record(txCtx, domain.AuditActionCreate, stored); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.Sample{}, err
	}

	s.log.InfoContext(ctx, "sample created",
		slog.String("sample_id", stored.ID),
		slog.String("team", stored.TeamName),
	)

	return stored, nil
}
