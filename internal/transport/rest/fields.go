package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

//go:generate moq -out field_service_mock_test.go -pkg rest . fieldService

type fieldService interface {
	ListAll(ctx context.Context) ([]domain.Field, error)
	ListByTeam(ctx context.Context, team string) ([]domain.Field, error)
}

// FieldHandler serves the read-only /fields endpoints.
type FieldHandler struct {
	svc fieldService
	log *slog.Logger
}

// NewFieldHandler creates a FieldHandler.
func NewFieldHandler(svc fieldService, logger *slog.Logger) *FieldHandler {
	return &FieldHandler{svc: svc, log: logger.With("handler", "fields")}
}

// List handles GET /fields.
func (h *FieldHandler) List(w http.ResponseWriter, r *http.Request) {
	fields, err := h.svc.ListAll(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toFieldResponses(fields))
}

// ListByTeam handles GET /fields/{team}.
func (h *FieldHandler) ListByTeam(w http.ResponseWriter, r *http.Request) {
	fields, err := h.svc.ListByTeam(r.Context(), r.PathValue("team"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toFieldResponses(fields))
}
