package labelprint

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

// Printer submits print jobs to the external printer endpoint.
type Printer struct {
	client
}

// NewPrinter creates a Printer posting to url.
func NewPrinter(url string, timeout time.Duration, log *slog.Logger) *Printer {
	return &Printer{client: newClient(url, timeout, log, "label_printer")}
}

// Print submits images as one job.
func (p *Printer) Print(ctx context.Context, images []domain.LabelImage) error {
	if len(images) == 0 {
		return nil
	}

	req := printRequest{Labels: make([]imageDoc, len(images))}
	for i, img := range images {
		req.Labels[i] = imageDoc{
			SampleID:    img.SampleID,
			ContentType: img.ContentType,
			Content:     img.Content,
		}
	}

	resp, err := p.post(ctx, req)
	if err != nil {
		return fmt.Errorf("label printer: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	p.log.InfoContext(ctx, "print job submitted",
		slog.Int("labels", len(images)),
		slog.Int("status", resp.StatusCode),
	)
	return nil
}
