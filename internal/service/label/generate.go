package label

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

const renderConcurrency = 4

// Generate renders the team's active label of the requested size for every
// selected sample. Images come back in SampleIDs order.
func (s *Service) Generate(ctx context.Context, input JobInput) ([]domain.LabelImage, error) {
	if s.renderer == nil {
		return nil, fmt.Errorf("label rendering: %w", domain.ErrNotImplemented)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	team := domain.NormalizeTeamName(input.TeamName)
	label, err := s.labels.GetActive(ctx, team, input.Width, input.Height)
	if err != nil {
		return nil, fmt.Errorf("active label %dx%d: %w", input.Width, input.Height, err)
	}

	images := make([]domain.LabelImage, len(input.SampleIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(renderConcurrency)
	for i, id := range input.SampleIDs {
		g.Go(func() error {
			sample, getErr := s.samples.GetByID(gctx, id)
			if getErr != nil {
				return fmt.Errorf("get sample %s: %w", id, getErr)
			}
			if sample.TeamName != team {
				return domain.NewValidationError("sample_ids", fmt.Sprintf("sample %s belongs to another team", id))
			}
			img, renderErr := s.renderer.Render(gctx, label, sample)
			if renderErr != nil {
				return fmt.Errorf("render sample %s: %w", id, renderErr)
			}
			if img.SampleID == "" {
				img.SampleID = id
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "labels generated",
		slog.String("team", team),
		slog.String("label_id", label.ID.String()),
		slog.Int("count", len(images)),
	)

	return images, nil
}

// Print generates the labels and sends them to the printer as one job.
func (s *Service) Print(ctx context.Context, input JobInput) (int, error) {
	if s.printer == nil {
		return 0, fmt.Errorf("label printing: %w", domain.ErrNotImplemented)
	}

	images, err := s.Generate(ctx, input)
	if err != nil {
		return 0, err
	}
	if err := s.printer.Print(ctx, images); err != nil {
		return 0, fmt.Errorf("print labels: %w", err)
	}

	s.log.InfoContext(ctx, "labels printed",
		slog.String("team", domain.NormalizeTeamName(input.TeamName)),
		slog.Int("count", len(images)),
	)

	return len(images), nil
}
