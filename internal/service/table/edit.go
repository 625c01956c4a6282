package table

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
	"github.com/heartmarshall/sampletracker-backend/internal/grid"
)

// CommitEdit repacks an edited row of team into an update, stores it, and
// returns the row rebuilt from the stored sample. The sample must belong to
// team. Creation and modification dates are taken from the stored sample,
// never from the submitted rows.
func (s *Service) CommitEdit(ctx context.Context, team string, edit grid.Edit) (grid.Row, error) {
	team, err := normalizeTeam(team)
	if err != nil {
		return grid.Row{}, err
	}

	if edit.Old.ID == "" {
		return grid.Row{}, domain.NewValidationError(domain.AttrID, "required")
	}
	current, err := s.samples.Get(ctx, edit.Old.ID)
	if err != nil {
		return grid.Row{}, fmt.Errorf("load sample %s: %w", edit.Old.ID, err)
	}
	if domain.NormalizeTeamName(current.TeamName) != team {
		return grid.Row{}, fmt.Errorf("sample %s in team %s: %w", edit.Old.ID, team, domain.ErrNotFound)
	}
	edit.Old.DateCreated = grid.ValidTimestamp(current.DateCreated).Stored()
	edit.Old.DateModified = grid.ValidTimestamp(current.DateModified).Stored()

	fields, err := s.fields.ListByTeam(ctx, team)
	if err != nil {
		return grid.Row{}, fmt.Errorf("list fields for team %s: %w", team, err)
	}
	codec := grid.NewCodec(s.projector, fields)

	commit, err := codec.Repack(team, edit)
	if err != nil {
		return grid.Row{}, err
	}

	stored, err := s.samples.Update(ctx, commit.SampleID, commit.Update)
	if err != nil {
		return grid.Row{}, fmt.Errorf("commit edit: %w", err)
	}

	s.log.InfoContext(ctx, "row committed",
		slog.String("team", team),
		slog.String("sample_id", commit.SampleID),
		slog.Any("edited", edit.Edited),
	)

	return codec.Unpack(&stored), nil
}
