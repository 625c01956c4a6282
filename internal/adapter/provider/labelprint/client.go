// Package labelprint talks to the external label renderer and printer over
// HTTP. Rendering produces one image per sample; printing submits a batch of
// rendered images as a single job.
package labelprint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

const (
	defaultTimeout = 15 * time.Second
	retryDelay     = 500 * time.Millisecond
	maxImageBytes  = 10 << 20
)

// client posts JSON documents to a single endpoint.
type client struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

func newClient(url string, timeout time.Duration, log *slog.Logger, adapter string) client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With("adapter", adapter),
	}
}

// post sends body as JSON and returns the successful response. The caller
// closes the response body.
func (c client) post(ctx context.Context, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	return resp, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c client) doWithRetry(ctx context.Context, payload []byte) (*http.Response, error) {
	resp, err := c.do(ctx, payload)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "label service retry", slog.String("url", c.url), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(retryDelay):
	}

	return c.do(ctx, payload)
}

func (c client) do(ctx context.Context, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.httpClient.Do(req)
}

// ---------------------------------------------------------------------------
// Wire types
// ---------------------------------------------------------------------------

type labelDoc struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Width    int            `json:"width"`
	Height   int            `json:"height"`
	Template map[string]any `json:"template"`
}

type sampleDoc struct {
	ID             string         `json:"id"`
	TeamName       string         `json:"team_name"`
	DateCreated    time.Time      `json:"date_created"`
	ExpirationDate time.Time      `json:"expiration_date"`
	Data           map[string]any `json:"data"`
}

type renderRequest struct {
	Label  labelDoc  `json:"label"`
	Sample sampleDoc `json:"sample"`
}

type imageDoc struct {
	SampleID    string `json:"sample_id"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"content"`
}

type printRequest struct {
	Labels []imageDoc `json:"labels"`
}

func toLabelDoc(l domain.Label) labelDoc {
	return labelDoc{
		ID:       l.ID.String(),
		Name:     l.Name,
		Width:    l.Width,
		Height:   l.Height,
		Template: l.Template,
	}
}

func toSampleDoc(s domain.Sample) sampleDoc {
	return sampleDoc{
		ID:             s.ID,
		TeamName:       s.TeamName,
		DateCreated:    s.DateCreated,
		ExpirationDate: s.ExpirationDate,
		Data:           s.Data,
	}
}
