package rest

import (
	"time"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
	"github.com/heartmarshall/sampletracker-backend/internal/grid"
	"github.com/heartmarshall/sampletracker-backend/internal/service/table"
)

type sampleResponse struct {
	ID             string         `json:"id"`
	TeamName       string         `json:"team_name"`
	DateCreated    time.Time      `json:"date_created"`
	DateModified   time.Time      `json:"date_modified"`
	ExpirationDate time.Time      `json:"expiration_date"`
	Data           map[string]any `json:"data"`
}

type createSampleRequest struct {
	ID             string         `json:"id"`
	TeamName       string         `json:"team_name"`
	DateCreated    *time.Time     `json:"date_created"`
	ExpirationDate time.Time      `json:"expiration_date"`
	Data           map[string]any `json:"data"`
}

// updateSampleRequest is the repacked row payload. DateModified is accepted
// for compatibility but the server stamps its own.
type updateSampleRequest struct {
	ExpirationDate time.Time      `json:"expiration_date"`
	DateCreated    time.Time      `json:"date_created"`
	DateModified   time.Time      `json:"date_modified"`
	TeamName       string         `json:"team_name"`
	Data           map[string]any `json:"data"`
}

type auditResponse struct {
	AuditID     int64          `json:"audit_id"`
	SampleID    string         `json:"sample_id"`
	AuditNumber int            `json:"audit_number"`
	Action      string         `json:"action"`
	Snapshot    sampleResponse `json:"snapshot"`
	CreatedAt   time.Time      `json:"created_at"`
}

type fieldResponse struct {
	TeamName    string `json:"team_name"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Kind        string `json:"kind"`
	Position    int    `json:"position"`
}

type labelResponse struct {
	ID        string         `json:"id"`
	TeamName  string         `json:"team_name"`
	Name      string         `json:"name"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Template  map[string]any `json:"template"`
	Active    bool           `json:"active"`
	CreatedAt time.Time      `json:"created_at"`
}

type createLabelRequest struct {
	Name     string         `json:"name"`
	Width    int            `json:"width"`
	Height   int            `json:"height"`
	Template map[string]any `json:"template"`
	Active   bool           `json:"active"`
}

type labelJobRequest struct {
	TeamName  string   `json:"team_name"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	SampleIDs []string `json:"sample_ids"`
}

// labelImageResponse carries the rendered image; Content is base64 in JSON.
type labelImageResponse struct {
	SampleID    string `json:"sample_id"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"content"`
}

type printResponse struct {
	Printed int `json:"printed"`
}

type tableViewResponse struct {
	Team    string        `json:"team"`
	Columns []grid.Column `json:"columns"`
	Rows    []grid.Row    `json:"rows"`
}

type deleteSelectedRequest struct {
	IDs []string `json:"ids"`
}

type deleteSelectedResponse struct {
	Deleted []string          `json:"deleted"`
	Failed  map[string]string `json:"failed,omitempty"`
	Missing []string          `json:"missing,omitempty"`
}

func toSampleResponse(s domain.Sample) sampleResponse {
	data := s.Data
	if data == nil {
		data = map[string]any{}
	}
	return sampleResponse{
		ID:             s.ID,
		TeamName:       s.TeamName,
		DateCreated:    s.DateCreated,
		DateModified:   s.DateModified,
		ExpirationDate: s.ExpirationDate,
		Data:           data,
	}
}

func toSampleResponses(samples []domain.Sample) []sampleResponse {
	out := make([]sampleResponse, len(samples))
	for i, s := range samples {
		out[i] = toSampleResponse(s)
	}
	return out
}

func toAuditResponses(records []domain.SampleAudit) []auditResponse {
	out := make([]auditResponse, len(records))
	for i, a := range records {
		out[i] = auditResponse{
			AuditID:     a.AuditID,
			SampleID:    a.SampleID,
			AuditNumber: a.AuditNumber,
			Action:      a.Action.String(),
			Snapshot:    toSampleResponse(a.Snapshot),
			CreatedAt:   a.CreatedAt,
		}
	}
	return out
}

func toFieldResponses(fields []domain.Field) []fieldResponse {
	out := make([]fieldResponse, len(fields))
	for i, f := range fields {
		out[i] = fieldResponse{
			TeamName:    f.TeamName,
			Name:        f.Name,
			DisplayName: f.DisplayName,
			Kind:        f.EffectiveKind().String(),
			Position:    f.Position,
		}
	}
	return out
}

func toLabelResponse(l domain.Label) labelResponse {
	tmpl := l.Template
	if tmpl == nil {
		tmpl = map[string]any{}
	}
	return labelResponse{
		ID:        l.ID.String(),
		TeamName:  l.TeamName,
		Name:      l.Name,
		Width:     l.Width,
		Height:    l.Height,
		Template:  tmpl,
		Active:    l.Active,
		CreatedAt: l.CreatedAt,
	}
}

func toLabelResponses(labels []domain.Label) []labelResponse {
	out := make([]labelResponse, len(labels))
	for i, l := range labels {
		out[i] = toLabelResponse(l)
	}
	return out
}

func toLabelImages(images []domain.LabelImage) []labelImageResponse {
	out := make([]labelImageResponse, len(images))
	for i, img := range images {
		out[i] = labelImageResponse{SampleID: img.SampleID, ContentType: img.ContentType, Content: img.Content}
	}
	return out
}

func toTableView(v *grid.View) tableViewResponse {
	rows := v.Rows
	if rows == nil {
		rows = []grid.Row{}
	}
	return tableViewResponse{Team: v.Team, Columns: v.Columns, Rows: rows}
}

func toDeleteSelectedResponse(res table.DeleteResult) deleteSelectedResponse {
	out := deleteSelectedResponse{Deleted: res.Deleted, Missing: res.Missing}
	if out.Deleted == nil {
		out.Deleted = []string{}
	}
	if len(res.Failed) > 0 {
		out.Failed = make(map[string]string, len(res.Failed))
		for id, err := range res.Failed {
			out.Failed[id] = err.Error()
		}
	}
	return out
}
