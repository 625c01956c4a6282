package grid

import (
	"maps"
	"reflect"
	"time"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

// Row is the flat editable form of a sample. Fixed attributes keep their
// stored (normalized) form, Data holds stored team field values, and Cells
// holds the top-level display value of every column, keyed by column key.
type Row struct {
	ID             string         `json:"id"`
	TeamName       string         `json:"team_name"`
	DateCreated    string         `json:"date_created"`
	DateModified   string         `json:"date_modified"`
	ExpirationDate string         `json:"expiration_date"`
	Data           map[string]any `json:"data"`
	Cells          map[string]any `json:"cells,omitempty"`
}

func (r *Row) ensureData() {
	if r.Data == nil {
		r.Data = make(map[string]any)
	}
}

// Clone returns a copy of r with its own Data and Cells maps.
func (r Row) Clone() Row {
	out := r
	out.Data = make(map[string]any, len(r.Data))
	maps.Copy(out.Data, r.Data)
	if r.Cells != nil {
		out.Cells = make(map[string]any, len(r.Cells))
		maps.Copy(out.Cells, r.Cells)
	}
	return out
}

// Edit is a committed cell edit as reported by the table: the row before and
// after editing plus the keys of the columns the user changed. A nil Edited
// list falls back to detecting edits from the cells: a key present in
// New.Cells that is missing from Old.Cells or holds a different value.
type Edit struct {
	Old    Row      `json:"old"`
	New    Row      `json:"new"`
	Edited []string `json:"edited,omitempty"`
}

// Commit is the outcome of repacking an edit.
type Commit struct {
	SampleID string
	Update   domain.SampleUpdate
	Row      Row
}

// Codec converts between samples and rows for one team's column layout.
type Codec struct {
	proj    *Projector
	columns []Column
	byKey   map[string]Column
}

// NewCodec builds a codec for the given field definitions.
func NewCodec(p *Projector, fields []domain.Field) *Codec {
	cols := p.Columns(fields)
	byKey := make(map[string]Column, len(cols))
	for _, c := range cols {
		// Fixed columns win over dynamic columns with a reserved name.
		if existing, ok := byKey[c.Key]; ok && existing.Fixed {
			continue
		}
		byKey[c.Key] = c
	}
	return &Codec{proj: p, columns: cols, byKey: byKey}
}

// Columns returns the column layout.
func (c *Codec) Columns() []Column { return c.columns }

// EnsureDefaults fills every date-kind team field that has no stored value
// with the current normalized timestamp. It mutates s and returns the keys
// it filled.
func (c *Codec) EnsureDefaults(s *domain.Sample) []string {
	var filled []string
	for _, col := range c.columns {
		if col.Fixed || col.Kind != domain.FieldKindDate || domain.IsReservedName(col.Key) {
			continue
		}
		if v, ok := s.Data[col.Key]; ok && v != nil {
			continue
		}
		if s.Data == nil {
			s.Data = make(map[string]any)
		}
		s.Data[col.Key] = ValidTimestamp(c.proj.Now()).Stored()
		filled = append(filled, col.Key)
	}
	return filled
}

// Unpack fills defaults on s and returns its row with every cell computed.
func (c *Codec) Unpack(s *domain.Sample) Row {
	c.EnsureDefaults(s)

	r := Row{
		ID:             s.ID,
		TeamName:       s.TeamName,
		DateCreated:    storedTime(s.DateCreated),
		DateModified:   storedTime(s.DateModified),
		ExpirationDate: storedTime(s.ExpirationDate),
		Data:           make(map[string]any, len(s.Data)),
	}
	maps.Copy(r.Data, s.Data)
	r.Cells = c.cells(&r)
	return r
}

// UnpackAll unpacks samples in order. Defaults are filled in place.
func (c *Codec) UnpackAll(samples []domain.Sample) []Row {
	rows := make([]Row, len(samples))
	for i := range samples {
		rows[i] = c.Unpack(&samples[i])
	}
	return rows
}

func (c *Codec) cells(r *Row) map[string]any {
	cells := make(map[string]any, len(c.columns))
	for _, col := range c.columns {
		if !col.Fixed {
			cells[col.Key] = col.Read(r)
		}
	}
	for _, col := range c.columns {
		if col.Fixed {
			cells[col.Key] = col.Read(r)
		}
	}
	return cells
}

// Repack turns an edit into an update payload for team. Edited team fields
// are written into the row's data map and removed from its top-level cells;
// edits to id, date_created and date_modified are ignored. An unparseable
// timestamp yields a validation error and no commit.
func (c *Codec) Repack(team string, e Edit) (Commit, error) {
	if e.Old.ID == "" {
		return Commit{}, domain.NewValidationError(domain.AttrID, "required")
	}

	row := e.New.Clone()
	row.ensureData()
	row.ID = e.Old.ID
	row.DateCreated = e.Old.DateCreated
	row.DateModified = e.Old.DateModified

	var errs []domain.FieldError
	for _, key := range c.editedKeys(e) {
		col, ok := c.byKey[key]
		if !ok || !col.Editable {
			continue
		}
		if !col.Fixed && domain.IsReservedName(key) {
			continue
		}
		v, present := row.Cells[key]
		if !present {
			continue
		}
		if _, ok := col.Write(&row, v); !ok {
			errs = append(errs, domain.FieldError{Field: key, Message: "invalid value"})
			continue
		}
		if col.Fixed {
			row.Cells[key] = col.Read(&row)
		} else {
			delete(row.Cells, key)
		}
	}

	created := ParseTimestamp(row.DateCreated, c.proj.loc)
	modified := ParseTimestamp(row.DateModified, c.proj.loc)
	expires := ParseTimestamp(row.ExpirationDate, c.proj.loc)
	if !created.Valid {
		errs = append(errs, domain.FieldError{Field: domain.AttrDateCreated, Message: "invalid timestamp"})
	}
	if !modified.Valid {
		errs = append(errs, domain.FieldError{Field: domain.AttrDateModified, Message: "invalid timestamp"})
	}
	if !expires.Valid {
		errs = append(errs, domain.FieldError{Field: domain.AttrExpirationDate, Message: "invalid timestamp"})
	}
	if len(errs) > 0 {
		return Commit{}, domain.NewValidationErrors(errs)
	}

	row.TeamName = team
	return Commit{
		SampleID: e.Old.ID,
		Update: domain.SampleUpdate{
			ExpirationDate: expires.Time,
			DateCreated:    created.Time,
			DateModified:   modified.Time,
			TeamName:       team,
			Data:           row.Data,
		},
		Row: row,
	}, nil
}

// editedKeys returns the explicit edit list, or the editable keys whose cell
// is new or changed between Old and New.
func (c *Codec) editedKeys(e Edit) []string {
	if e.Edited != nil {
		return e.Edited
	}

	var keys []string
	for _, col := range c.columns {
		newV, inNew := e.New.Cells[col.Key]
		if !inNew {
			continue
		}
		if !col.Editable {
			continue
		}
		if oldV, inOld := e.Old.Cells[col.Key]; !inOld || !reflect.DeepEqual(oldV, newV) {
			keys = append(keys, col.Key)
		}
	}
	return keys
}

func storedTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(StoredLayout)
}
