package sample

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

// Update replaces the mutable attributes of sample id. The modification
// timestamp is always stamped by the server; the one in u is ignored.
func (s *Service) Update(ctx context.Context, id string, u domain.SampleUpdate) (domain.Sample, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Sample{}, domain.NewValidationError("id", "required")
	}

	u.TeamName = domain.NormalizeTeamName(u.TeamName)
	u.DateModified = s.now()
	if u.Data == nil {
		u.Data = map[string]any{}
	}
	if err := u.Validate(); err != nil {
		return domain.Sample{}, err
	}

	var updated domain.Sample
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.samples.Update(txCtx, id, u)
		if updateErr != nil {
			return fmt.Errorf("update sample: %w", updateErr)
		}
		if auditErr := s.record(txCtx, domain.AuditActionUpdate, updated); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.Sample{}, err
	}

	s.log.InfoContext(ctx, "sample updated",
		slog.String("sample_id", id),
		slog.String("team", updated.TeamName),
	)

	return updated, nil
}
