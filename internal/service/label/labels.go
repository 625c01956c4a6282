package label

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

// ListAll returns the labels of every team.
func (s *Service) ListAll(ctx context.Context) ([]domain.Label, error) {
	labels, err := s.labels.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	return labels, nil
}

// ListByTeam returns the labels owned by team.
func (s *Service) ListByTeam(ctx context.Context, team string) ([]domain.Label, error) {
	team = domain.NormalizeTeamName(team)
	if team == "" {
		return nil, domain.NewValidationError("team_name", "required")
	}

	labels, err := s.labels.ListByTeam(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("list labels for team %s: %w", team, err)
	}
	return labels, nil
}

// Create stores a new label. An active label replaces the team's previously
// active label of the same size.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Label, error) {
	if err := input.Validate(); err != nil {
		return domain.Label{}, err
	}

	label := domain.Label{
		ID:       uuid.New(),
		TeamName: domain.NormalizeTeamName(input.TeamName),
		Name:     strings.TrimSpace(input.Name),
		Width:    input.Width,
		Height:   input.Height,
		Template: input.Template,
		Active:   input.Active,
	}
	if label.Template == nil {
		label.Template = map[string]any{}
	}

	var (
		created     domain.Label
		deactivated int64
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if label.Active {
			n, deactErr := s.labels.DeactivateSize(txCtx, label.TeamName, label.Width, label.Height)
			if deactErr != nil {
				return fmt.Errorf("deactivate labels: %w", deactErr)
			}
			deactivated = n
		}

		var createErr error
		created, createErr = s.labels.Create(txCtx, label)
		if createErr != nil {
			return fmt.Errorf("create label: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return domain.Label{}, err
	}

	s.log.InfoContext(ctx, "label created",
		slog.String("label_id", created.ID.String()),
		slog.String("team", created.TeamName),
		slog.Int("width", created.Width),
		slog.Int("height", created.Height),
		slog.Bool("active", created.Active),
		slog.Int64("deactivated", deactivated),
	)

	return created, nil
}
