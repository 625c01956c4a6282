package labelprint

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

// Renderer renders labels through the external renderer endpoint.
type Renderer struct {
	client
}

// NewRenderer creates a Renderer posting to url.
func NewRenderer(url string, timeout time.Duration, log *slog.Logger) *Renderer {
	return &Renderer{client: newClient(url, timeout, log, "label_renderer")}
}

// Render returns the image of label filled in with sample.
func (r *Renderer) Render(ctx context.Context, label domain.Label, sample domain.Sample) (domain.LabelImage, error) {
	resp, err := r.post(ctx, renderRequest{Label: toLabelDoc(label), Sample: toSampleDoc(sample)})
	if err != nil {
		return domain.LabelImage{}, fmt.Errorf("label renderer: %w", err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return domain.LabelImage{}, fmt.Errorf("label renderer: read body: %w", err)
	}
	if len(content) > maxImageBytes {
		return domain.LabelImage{}, fmt.Errorf("label renderer: image exceeds %d bytes", maxImageBytes)
	}
	if len(content) == 0 {
		return domain.LabelImage{}, fmt.Errorf("label renderer: empty image")
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	r.log.DebugContext(ctx, "label rendered",
		slog.String("sample_id", sample.ID),
		slog.String("content_type", contentType),
		slog.Int("bytes", len(content)),
	)

	return domain.LabelImage{
		SampleID:    sample.ID,
		ContentType: contentType,
		Content:     content,
	}, nil
}
