package sample

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

// ListAll returns every sample across teams.
func (s *Service) ListAll(ctx context.Context) ([]domain.Sample, error) {
	samples, err := s.samples.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list samples: %w", err)
	}
	return samples, nil
}

// ListByTeam returns the samples owned by team.
func (s *Service) ListByTeam(ctx context.Context, team string) ([]domain.Sample, error) {
	team = domain.NormalizeTeamName(team)
	if team == "" {
		return nil, domain.NewValidationError("team_name", "required")
	}

	samples, err := s.samples.ListByTeam(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("list samples for team %s: %w", team, err)
	}
	return samples, nil
}

// Get returns a single sample.
func (s *Service) Get(ctx context.Context, id string) (domain.Sample, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Sample{}, domain.NewValidationError("id", "required")
	}
	return s.samples.GetByID(ctx, id)
}

// ListAudit returns the change history of a sample, newest first. History
// outlives the sample itself.
func (s *Service) ListAudit(ctx context.Context, id string) ([]domain.SampleAudit, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "required")
	}

	records, err := s.audit.ListBySample(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list audit for sample %s: %w", id, err)
	}
	return records, nil
}
