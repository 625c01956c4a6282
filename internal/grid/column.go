// Package grid maps samples onto the editable table view: it projects team
// field definitions into column descriptors, converts samples to flat rows and
// back into update payloads, and tracks row selection for bulk actions.
package grid

import (
	"time"

	"github.com/heartmarshall/sampletracker-backend/internal/domain"
)

// MissingText is displayed for text cells without a stored value.
const MissingText = "N/A"

// Column describes how one attribute is displayed and edited.
type Column struct {
	Key      string           `json:"field"`
	Label    string           `json:"header_name"`
	Kind     domain.FieldKind `json:"type"`
	Editable bool             `json:"editable"`
	Fixed    bool             `json:"fixed"`

	read  func(r *Row) any
	write func(r *Row, v any) (any, bool)
}

// Read computes the display value of the column for r. It never mutates r.
func (c Column) Read(r *Row) any {
	if r == nil || c.read == nil {
		return nil
	}
	return c.read(r)
}

// Write converts an edited display value into its stored form and writes it
// into r, returning the committed stored value. A nil target is a
// preview-only call: nothing is written and ok is false. ok is also false
// when v cannot be converted.
func (c Column) Write(r *Row, v any) (stored any, ok bool) {
	if r == nil || c.write == nil {
		return nil, false
	}
	return c.write(r, v)
}

// Projector builds column descriptors. Dates are displayed in loc; now
// supplies the timestamp used for date cells that have no stored value.
type Projector struct {
	loc *time.Location
	now func() time.Time
}

// NewProjector creates a Projector. A nil loc means UTC; a nil now means time.Now.
func NewProjector(loc *time.Location, now func() time.Time) *Projector {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Projector{loc: loc, now: now}
}

// Location returns the display location.
func (p *Projector) Location() *time.Location { return p.loc }

// Now returns the current time according to the projector's clock.
func (p *Projector) Now() time.Time { return p.now().In(p.loc) }

// Project returns one dynamic column per field, in field order.
func (p *Projector) Project(fields []domain.Field) []Column {
	cols := make([]Column, 0, len(fields))
	for _, f := range fields {
		cols = append(cols, p.dynamicColumn(f))
	}
	return cols
}

// Fixed returns the fixed columns in their canonical order: id,
// date_created, date_modified, expiration_date.
func (p *Projector) Fixed() []Column {
	return []Column{
		{
			Key:   domain.AttrID,
			Label: "ID",
			Kind:  domain.FieldKindText,
			Fixed: true,
			read:  func(r *Row) any { return r.ID },
		},
		p.fixedDate(domain.AttrDateCreated, "Date Created", func(r *Row) *string { return &r.DateCreated }, false),
		p.fixedDate(domain.AttrDateModified, "Date Modified", func(r *Row) *string { return &r.DateModified }, false),
		p.fixedDate(domain.AttrExpirationDate, "Expiration Date", func(r *Row) *string { return &r.ExpirationDate }, true),
	}
}

// Columns returns the full column layout for fields.
func (p *Projector) Columns(fields []domain.Field) []Column {
	return Layout(p.Fixed(), p.Project(fields))
}

// Layout places the first fixed column (id) first, dynamic columns next and
// the remaining fixed columns last.
func Layout(fixed, dynamic []Column) []Column {
	if len(fixed) == 0 {
		return append([]Column(nil), dynamic...)
	}
	cols := make([]Column, 0, len(fixed)+len(dynamic))
	cols = append(cols, fixed[0])
	cols = append(cols, dynamic...)
	cols = append(cols, fixed[1:]...)
	return cols
}

func (p *Projector) fixedDate(key, label string, attr func(r *Row) *string, editable bool) Column {
	col := Column{
		Key:      key,
		Label:    label,
		Kind:     domain.FieldKindDate,
		Editable: editable,
		Fixed:    true,
		read: func(r *Row) any {
			return ParseTimestamp(*attr(r), p.loc).Display(p.loc)
		},
	}
	if editable {
		col.write = func(r *Row, v any) (any, bool) {
			ts := TimestampOf(v, p.loc)
			if !ts.Valid {
				return nil, false
			}
			*attr(r) = ts.Stored()
			return *attr(r), true
		}
	}
	return col
}

func (p *Projector) dynamicColumn(f domain.Field) Column {
	key := f.Name
	kind := f.EffectiveKind()

	col := Column{
		Key:      key,
		Label:    f.DisplayName,
		Kind:     kind,
		Editable: true,
	}

	if kind == domain.FieldKindDate {
		col.read = func(r *Row) any {
			v, ok := r.Data[key]
			if !ok || v == nil {
				return ValidTimestamp(p.Now()).Display(p.loc)
			}
			return TimestampOf(v, p.loc).Display(p.loc)
		}
		col.write = func(r *Row, v any) (any, bool) {
			ts := TimestampOf(v, p.loc)
			if !ts.Valid {
				return nil, false
			}
			r.ensureData()
			r.Data[key] = ts.Stored()
			return r.Data[key], true
		}
		return col
	}

	col.read = func(r *Row) any {
		v, ok := r.Data[key]
		if !ok || v == nil {
			return MissingText
		}
		return v
	}
	col.write = func(r *Row, v any) (any, bool) {
		r.ensureData()
		r.Data[key] = v
		return r.Data[key], true
	}
	return col
}
