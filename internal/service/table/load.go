package table

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
	"github.com/heartmarshall/sampletracker-backend/internal/grid"
)

// Load returns the current table view of team.
func (s *Service) Load(ctx context.Context, team string) (*grid.View, error) {
	team, err := normalizeTeam(team)
	if err != nil {
		return nil, err
	}

	view, err := grid.Refresh(ctx, s.samples, s.fields, s.projector, team)
	if err != nil {
		return nil, fmt.Errorf("load table %s: %w", team, err)
	}
	return view, nil
}

// Refresh discards the cached field definitions of team and reloads its view.
func (s *Service) Refresh(ctx context.Context, team string) (*grid.View, error) {
	team, err := normalizeTeam(team)
	if err != nil {
		return nil, err
	}

	s.fields.Invalidate(ctx, team)
	view, err := s.Load(ctx, team)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "table refreshed",
		slog.String("team", team),
		slog.Int("rows", len(view.Rows)),
		slog.Int("columns", len(view.Columns)),
	)
	return view, nil
}

// LoadAll returns one view per team that owns samples, ordered by team name.
// Field lookups for all teams are issued concurrently so that a batching
// field source can serve them with one query.
func (s *Service) LoadAll(ctx context.Context) ([]*grid.View, error) {
	samples, err := s.samples.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list samples: %w", err)
	}

	byTeam := make(map[string][]domain.Sample)
	for _, smp := range samples {
		byTeam[smp.TeamName] = append(byTeam[smp.TeamName], smp)
	}
	teams := make([]string, 0, len(byTeam))
	for team := range byTeam {
		teams = append(teams, team)
	}
	slices.Sort(teams)

	views := make([]*grid.View, len(teams))

	g, gctx := errgroup.WithContext(ctx)
	for i, team := range teams {
		g.Go(func() error {
			fields, fieldsErr := s.fields.ListByTeam(gctx, team)
			if fieldsErr != nil {
				return fmt.Errorf("list fields for team %s: %w", team, fieldsErr)
			}
			codec := grid.NewCodec(s.projector, fields)
			views[i] = &grid.View{
				Team:    team,
				Samples: byTeam[team],
				Fields:  fields,
				Columns: codec.Columns(),
				Rows:    codec.UnpackAll(byTeam[team]),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return views, nil
}
