package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/sampletracker-backend/internal/grid"
	"github.com/heartmarshall/sampletracker-backend/internal/service/table"
)

//go:generate moq -out table_service_mock_test.go -pkg rest . tableService

type tableService interface {
	LoadAll(ctx context.Context) ([]*grid.View, error)
	Load(ctx context.Context, team string) (*grid.View, error)
	Refresh(ctx context.Context, team string) (*grid.View, error)
	CommitEdit(ctx context.Context, team string, edit grid.Edit) (grid.Row, error)
	DeleteSelected(ctx context.Context, team string, ids []string) (table.DeleteResult, error)
}

// TableHandler serves the editable table view under /table.
type TableHandler struct {
	svc tableService
	log *slog.Logger
}

// NewTableHandler creates a TableHandler.
func NewTableHandler(svc tableService, logger *slog.Logger) *TableHandler {
	return &TableHandler{svc: svc, log: logger.With("handler", "table")}
}

// ListAll handles GET /table: one view per team that has samples.
func (h *TableHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.LoadAll(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	out := make([]tableViewResponse, len(views))
	for i, v := range views {
		out[i] = toTableView(v)
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /table/{team}.
func (h *TableHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Load(r.Context(), r.PathValue("team"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTableView(view))
}

// Refresh handles POST /table/{team}/refresh.
func (h *TableHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Refresh(r.Context(), r.PathValue("team"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTableView(view))
}

// CommitEdit handles POST /table/{team}/rows. The body is the edited row
// before and after the change; the response is the stored row.
func (h *TableHandler) CommitEdit(w http.ResponseWriter, r *http.Request) {
	var edit grid.Edit
	if !decodeJSON(w, r, &edit) {
		return
	}

	row, err := h.svc.CommitEdit(r.Context(), r.PathValue("team"), edit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

// DeleteSelected handles POST /table/{team}/delete. Per-sample failures are
// reported in the body; the request itself succeeds.
func (h *TableHandler) DeleteSelected(w http.ResponseWriter, r *http.Request) {
	var req deleteSelectedRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.DeleteSelected(r.Context(), r.PathValue("team"), req.IDs)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeleteSelectedResponse(res))
}
