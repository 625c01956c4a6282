package domain

import (
	"maps"
	"time"
)

// Sample is a tracked physical/lab item. Fixed attributes live on the struct;
// team-defined attributes live in Data keyed by field name.
type Sample struct {
	ID             string
	TeamName       string
	DateCreated    time.Time
	DateModified   time.Time
	ExpirationDate time.Time
	Data           map[string]any
}

// Clone returns a copy of the sample with its own data map. Nested values are
// shared.
func (s Sample) Clone() Sample {
	out := s
	out.Data = make(map[string]any, len(s.Data))
	maps.Copy(out.Data, s.Data)
	return out
}

// SampleUpdate is the partial update payload accepted by the sample store.
// Identifiers are never part of it.
type SampleUpdate struct {
	ExpirationDate time.Time
	DateCreated    time.Time
	DateModified   time.Time
	TeamName       string
	Data           map[string]any
}

// Validate checks all fields and collects all errors.
func (u SampleUpdate) Validate() error {
	var errs []FieldError

	if u.TeamName == "" {
		errs = append(errs, FieldError{Field: "team_name", Message: "required"})
	}
	if u.DateCreated.IsZero() {
		errs = append(errs, FieldError{Field: "date_created", Message: "required"})
	}
	if u.ExpirationDate.IsZero() {
		errs = append(errs, FieldError{Field: "expiration_date", Message: "required"})
	}
	if !u.DateModified.IsZero() && u.DateModified.Before(u.DateCreated) {
		errs = append(errs, FieldError{Field: "date_modified", Message: "before date_created"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Reserved attribute names. A team field with one of these names never
// shadows the fixed attribute of the same name.
const (
	AttrID             = "id"
	AttrTeamName       = "team_name"
	AttrDateCreated    = "date_created"
	AttrDateModified   = "date_modified"
	AttrExpirationDate = "expiration_date"
	AttrData           = "data"
)

// IsReservedName reports whether name collides with a fixed sample attribute.
func IsReservedName(name string) bool {
	switch name {
	case AttrID, AttrTeamName, AttrDateCreated, AttrDateModified, AttrExpirationDate, AttrData:
		return true
	}
	return false
}
