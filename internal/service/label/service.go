// Package label manages team label layouts and hands rendering and printing
// off to external collaborators.
package label

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

//go:generate moq -out label_repo_mock_test.go -pkg label . labelRepo
//go:generate moq -out sample_getter_mock_test.go -pkg label . sampleGetter
//go:generate moq -out tx_manager_mock_test.go -pkg label . txManager
//go:generate moq -out renderer_mock_test.go -pkg label . Renderer
//go:generate moq -out printer_mock_test.go -pkg label . Printer

type labelRepo interface {
	ListAll(ctx context.Context) ([]domain.Label, error)
	ListByTeam(ctx context.Context, team string) ([]domain.Label, error)
	GetActive(ctx context.Context, team string, width, height int) (domain.Label, error)
	Create(ctx context.Context, l domain.Label) (domain.Label, error)
	DeactivateSize(ctx context.Context, team string, width, height int) (int64, error)
}

type sampleGetter interface {
	GetByID(ctx context.Context, id string) (domain.Sample, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Renderer turns a label layout and a sample into a printable image.
type Renderer interface {
	Render(ctx context.Context, label domain.Label, sample domain.Sample) (domain.LabelImage, error)
}

// Printer sends rendered labels to a printer.
type Printer interface {
	Print(ctx context.Context, images []domain.LabelImage) error
}

// Service provides label operations.
type Service struct {
	labels   labelRepo
	samples  sampleGetter
	tx       txManager
	renderer Renderer
	printer  Printer
	log      *slog.Logger
}

// NewService creates a new Label service. renderer and printer may be nil, in
// which case Generate and Print report domain.ErrNotImplemented.
func NewService(
	log *slog.Logger,
	labels labelRepo,
	samples sampleGetter,
	tx txManager,
	renderer Renderer,
	printer Printer,
) *Service {
	return &Service{
		labels:   labels,
		samples:  samples,
		tx:       tx,
		renderer: renderer,
		printer:  printer,
		log:      log.With("service", "label"),
	}
}
