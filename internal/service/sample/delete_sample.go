package sample

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

// Delete removes sample id. The last known state is kept in the audit history.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.NewValidationError("id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.samples.GetByID(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("get sample: %w", getErr)
		}
		if delErr := s.samples.Delete(txCtx, id); delErr != nil {
			return fmt.Errorf("delete sample: %w", delErr)
		}
		if auditErr := s.record(txCtx, domain.AuditActionDelete, old); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "sample deleted", slog.String("sample_id", id))
	return nil
}

// PurgeExpired deletes samples that expired before cutoff, batchSize at a
// time, until none remain. Each batch commits on its own.
func (s *Service) PurgeExpired(ctx context.Context, cutoff time.Time, batchSize int) (PurgeResult, error) {
	if batchSize <= 0 {
		return PurgeResult{}, domain.NewValidationError("batch_size", "must be positive")
	}

	var res PurgeResult
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		var n int
		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			deleted, delErr := s.samples.DeleteExpired(txCtx, cutoff, batchSize)
			if delErr != nil {
				return fmt.Errorf("delete expired samples: %w", delErr)
			}
			for _, old := range deleted {
				if auditErr := s.record(txCtx, domain.AuditActionDelete, old); auditErr != nil {
					return fmt.Errorf("audit log: %w", auditErr)
				}
			}
			n = len(deleted)
			return nil
		})
		if err != nil {
			return res, err
		}

		if n == 0 {
			break
		}
		res.Deleted += n
		res.Batches++
		if n < batchSize {
			break
		}
	}

	s.log.InfoContext(ctx, "expired samples purged",
		slog.Time("cutoff", cutoff),
		slog.Int("deleted", res.Deleted),
		slog.Int("batches", res.Batches),
	)

	return res, nil
}
