package sample

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

//go:generate moq -out sample_repo_mock_test.go -pkg sample . sampleRepo
//go:generate moq -out audit_repo_mock_test.go -pkg sample . auditRepo
//go:generate moq -out tx_manager_mock_test.go -pkg sample . txManager

type sampleRepo interface {
	ListAll(ctx context.Context) ([]domain.Sample, error)
	ListByTeam(ctx context.Context, team string) ([]domain.Sample, error)
	GetByID(ctx context.Context, id string) (domain.Sample, error)
	Create(ctx context.Context, s domain.Sample) (domain.Sample, error)
	Update(ctx context.Context, id string, u domain.SampleUpdate) (domain.Sample, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, cutoff time.Time, limit int) ([]domain.Sample, error)
}

type auditRepo interface {
	Log(ctx context.Context, rec domain.SampleAudit) error
	ListBySample(ctx context.Context, sampleID string) ([]domain.SampleAudit, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides sample storage operations. Every mutation is recorded in
// the sample's audit history within the same transaction.
type Service struct {
	samples sampleRepo
	audit   auditRepo
	tx      txManager
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new Sample service.
func NewService(
	log *slog.Logger,
	samples sampleRepo,
	audit auditRepo,
	tx txManager,
) *Service {
	return &Service{
		samples: samples,
		audit:   audit,
		tx:      tx,
		log:     log.With("service", "sample"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) record(ctx context.Context, action domain.AuditAction, snapshot domain.Sample) error {
	return s.audit.Log(ctx, domain.SampleAudit{
		SampleID: snapshot.ID,
		Action:   action,
		Snapshot: snapshot,
	})
}
