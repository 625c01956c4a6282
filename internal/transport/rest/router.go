package rest

import "net/http"

// Handlers groups the endpoint handlers mounted by NewRouter. Metrics is
// optional and mounted at MetricsPath when set.
type Handlers struct {
	Health  *HealthHandler
	Samples *SampleHandler
	Fields  *FieldHandler
	Labels  *LabelHandler
	Table   *TableHandler

	Metrics     http.Handler
	MetricsPath string
}

// NewRouter registers every route on a new ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET "+h.MetricsPath, h.Metrics)
	}

	mux.HandleFunc("GET /samples", h.Samples.List)
	mux.HandleFunc("GET /samples/{team}", h.Samples.ListByTeam)
	mux.HandleFunc("GET /samples/audit/{id}", h.Samples.Audit)
	mux.HandleFunc("POST /samples", h.Samples.Create)
	mux.HandleFunc("PUT /samples/{id}", h.Samples.Update)
	mux.HandleFunc("DELETE /samples/{id}", h.Samples.Delete)

	mux.HandleFunc("GET /fields", h.Fields.List)
	mux.HandleFunc("GET /fields/{team}", h.Fields.ListByTeam)

	mux.HandleFunc("GET /teams/labels", h.Labels.List)
	mux.HandleFunc("GET /teams/labels/{team}", h.Labels.ListByTeam)
	mux.HandleFunc("POST /teams/labels/{team}", h.Labels.Create)
	mux.HandleFunc("POST /teams/labels/generate", h.Labels.Generate)
	mux.HandleFunc("POST /teams/labels/print", h.Labels.Print)

	mux.HandleFunc("GET /table", h.Table.ListAll)
	mux.HandleFunc("GET /table/{team}", h.Table.Get)
	mux.HandleFunc("POST /table/{team}/rows", h.Table.CommitEdit)
	mux.HandleFunc("POST /table/{team}/delete", h.Table.DeleteSelected)
	mux.HandleFunc("POST /table/{team}/refresh", h.Table.Refresh)

	return mux
}
