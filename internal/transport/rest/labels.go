package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
	"github.com/heartmarshall/sampletracker-backend/internal/service/label"
)

//go:generate moq -out label_service_mock_test.go -pkg rest . labelService

type labelService interface {
	ListAll(ctx context.Context) ([]domain.Label, error)
	ListByTeam(ctx context.Context, team string) ([]domain.Label, error)
	Create(ctx context.Context, input label.CreateInput) (domain.Label, error)
	Generate(ctx context.Context, input label.JobInput) ([]domain.LabelImage, error)
	Print(ctx context.Context, input label.JobInput) (int, error)
}

// LabelHandler serves the /teams/labels endpoints.
type LabelHandler struct {
	svc labelService
	log *slog.Logger
}

// NewLabelHandler creates a LabelHandler.
func NewLabelHandler(svc labelService, logger *slog.Logger) *LabelHandler {
	return &LabelHandler{svc: svc, log: logger.With("handler", "labels")}
}

// List handles GET /teams/labels.
func (h *LabelHandler) List(w http.ResponseWriter, r *http.Request) {
	labels, err := h.svc.ListAll(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toLabelResponses(labels))
}

// ListByTeam handles GET /teams/labels/{team}.
func (h *LabelHandler) ListByTeam(w http.ResponseWriter, r *http.Request) {
	labels, err := h.svc.ListByTeam(r.Context(), r.PathValue("team"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toLabelResponses(labels))
}

// Create handles POST /teams/labels/{team}.
func (h *LabelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLabelRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.svc.Create(r.Context(), label.CreateInput{
		TeamName: r.PathValue("team"),
		Name:     req.Name,
		Width:    req.Width,
		Height:   req.Height,
		Template: req.Template,
		Active:   req.Active,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLabelResponse(created))
}

// Generate handles POST /teams/labels/generate.
func (h *LabelHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req labelJobRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	images, err := h.svc.Generate(r.Context(), toJobInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toLabelImages(images))
}

// Print handles POST /teams/labels/print.
func (h *LabelHandler) Print(w http.ResponseWriter, r *http.Request) {
	var req labelJobRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	printed, err := h.svc.Print(r.Context(), toJobInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, printResponse{Printed: printed})
}

func toJobInput(req labelJobRequest) label.JobInput {
	return label.JobInput{
		TeamName:  req.TeamName,
		Width:     req.Width,
		Height:    req.Height,
		SampleIDs: req.SampleIDs,
	}
}
