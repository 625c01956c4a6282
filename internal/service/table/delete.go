package table

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
	"github.com/heartmarshall/sampletracker-backend/internal/grid"
)

// DeleteResult reports a bulk delete. Missing holds requested ids that are
// not among the team's current samples; they are never deleted.
type DeleteResult struct {
	grid.DeleteResult
	Missing []string
}

// DeleteSelected deletes the samples of team whose ids are selected. The
// selection is resolved against the team's current samples, so stale or
// foreign ids are skipped. Failures do not stop the remaining deletes.
func (s *Service) DeleteSelected(ctx context.Context, team string, ids []string) (DeleteResult, error) {
	team, err := normalizeTeam(team)
	if err != nil {
		return DeleteResult{}, err
	}
	if len(ids) == 0 {
		return DeleteResult{}, domain.NewValidationError("ids", "at least one id required")
	}

	current, err := s.samples.ListByTeam(ctx, team)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("list samples for team %s: %w", team, err)
	}

	var tracker grid.Tracker
	tracker.OnSelectionChange(current, ids)

	selected := make(map[string]struct{}, tracker.Len())
	for _, id := range tracker.IDs() {
		selected[id] = struct{}{}
	}
	var missing []string
	for _, id := range ids {
		if _, ok := selected[id]; !ok {
			missing = append(missing, id)
		}
	}

	res := DeleteResult{
		DeleteResult: grid.DeleteSelected(ctx, s.samples, tracker.Selected()),
		Missing:      missing,
	}

	s.log.InfoContext(ctx, "bulk delete finished",
		slog.String("team", team),
		slog.Int("requested", len(ids)),
		slog.Int("deleted", len(res.Deleted)),
		slog.Int("failed", len(res.Failed)),
		slog.Int("missing", len(res.Missing)),
	)
	if joined := res.Err(); joined != nil {
		s.log.WarnContext(ctx, "bulk delete partial failure",
			slog.String("team", team),
			slog.String("error", joined.Error()),
		)
	}

	return res, nil
}
