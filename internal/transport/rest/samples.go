package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
	"github.com/heartmarshall/sampletracker-backend/internal/service/sample"
)

//go:generate moq -out sample_service_mock_test.go -pkg rest . sampleService

// sampleService defines the sample operations needed by SampleHandler.
type sampleService interface {
	ListAll(ctx context.Context) ([]domain.Sample, error)
	ListByTeam(ctx context.Context, team string) ([]domain.Sample, error)
	Create(ctx context.Context, input sample.CreateInput) (domain.Sample, error)
	Update(ctx context.Context, id string, u domain.SampleUpdate) (domain.Sample, error)
	Delete(ctx context.Context, id string) error
	ListAudit(ctx context.Context, id string) ([]domain.SampleAudit, error)
}

// SampleHandler serves the /samples endpoints.
type SampleHandler struct {
	svc sampleService
	log *slog.Logger
}

// NewSampleHandler creates a SampleHandler.
func NewSampleHandler(svc sampleService, logger *slog.Logger) *SampleHandler {
	return &SampleHandler{svc: svc, log: logger.With("handler", "samples")}
}

// List handles GET /samples.
func (h *SampleHandler) List(w http.ResponseWriter, r *http.Request) {
	samples, err := h.svc.ListAll(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSampleResponses(samples))
}

// ListByTeam handles GET /samples/{team}.
func (h *SampleHandler) ListByTeam(w http.ResponseWriter, r *http.Request) {
	samples, err := h.svc.ListByTeam(r.Context(), r.PathValue("team"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSampleResponses(samples))
}

// Create handles POST /samples.
func (h *SampleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSampleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := sample.CreateInput{
		ID:             req.ID,
		TeamName:       req.TeamName,
		ExpirationDate: req.ExpirationDate,
		Data:           req.Data,
	}
	if req.DateCreated != nil {
		input.DateCreated = *req.DateCreated
	}

	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSampleResponse(created))
}

// Update handles PUT /samples/{id}.
func (h *SampleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateSampleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), r.PathValue("id"), domain.SampleUpdate{
		ExpirationDate: req.ExpirationDate,
		DateCreated:    req.DateCreated,
		DateModified:   req.DateModified,
		TeamName:       req.TeamName,
		Data:           req.Data,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSampleResponse(updated))
}

// Delete handles DELETE /samples/{id}.
func (h *SampleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Audit handles GET /samples/audit/{id}.
func (h *SampleHandler) Audit(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.ListAudit(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuditResponses(records))
}
